package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// IssueRelationsClient implements redmine.IssueRelationsClient.
type IssueRelationsClient struct {
	requester redmine.Requester
}

// NewIssueRelationsClient creates a new issue relations client.
func NewIssueRelationsClient(requester redmine.Requester) *IssueRelationsClient {
	return &IssueRelationsClient{requester: requester}
}

// List implements redmine.IssueRelationsClient.List.
func (c *IssueRelationsClient) List(ctx context.Context, issueID uint64) ([]redmine.IssueRelation, error) {
	path := fmt.Sprintf("issues/%d/relations.json", issueID)

	wrapper, err := redmine.Object[issueRelationsWrapper](ctx, c.requester, getObject(path, nil))
	if err != nil {
		return nil, fmt.Errorf("listing issue relations: %w", err)
	}

	return wrapper.Relations, nil
}

// Get implements redmine.IssueRelationsClient.Get.
func (c *IssueRelationsClient) Get(ctx context.Context, id uint64) (*redmine.IssueRelation, error) {
	wrapper, err := redmine.Object[issueRelationWrapper](ctx, c.requester, getObject(fmt.Sprintf("relations/%d.json", id), nil))
	if err != nil {
		return nil, fmt.Errorf("getting issue relation: %w", err)
	}

	return &wrapper.Relation, nil
}

// Create implements redmine.IssueRelationsClient.Create.
func (c *IssueRelationsClient) Create(ctx context.Context, issueID uint64, req *redmine.IssueRelationCreateRequest) (*redmine.IssueRelation, error) {
	path := fmt.Sprintf("issues/%d/relations.json", issueID)

	wrapper, err := redmine.Object[issueRelationWrapper](ctx, c.requester, postObject(path, issueRelationCreateWrapper{Relation: req}))
	if err != nil {
		return nil, fmt.Errorf("creating issue relation: %w", err)
	}

	return &wrapper.Relation, nil
}

// Delete implements redmine.IssueRelationsClient.Delete.
func (c *IssueRelationsClient) Delete(ctx context.Context, id uint64) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, deleteRaw(fmt.Sprintf("relations/%d.json", id), nil))
	if err != nil {
		return fmt.Errorf("deleting issue relation: %w", err)
	}

	return nil
}

type issueRelationWrapper struct {
	Relation redmine.IssueRelation `json:"relation"`
}

type issueRelationsWrapper struct {
	Relations []redmine.IssueRelation `json:"relations"`
}

type issueRelationCreateWrapper struct {
	Relation *redmine.IssueRelationCreateRequest `json:"relation"`
}

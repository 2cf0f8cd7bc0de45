package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// IssueCategoriesClient implements redmine.IssueCategoriesClient.
type IssueCategoriesClient struct {
	requester redmine.Requester
}

// NewIssueCategoriesClient creates a new issue categories client.
func NewIssueCategoriesClient(requester redmine.Requester) *IssueCategoriesClient {
	return &IssueCategoriesClient{requester: requester}
}

// List implements redmine.IssueCategoriesClient.List.
func (c *IssueCategoriesClient) List(ctx context.Context, projectIDOrIdentifier string) ([]redmine.IssueCategory, error) {
	path := fmt.Sprintf("projects/%s/issue_categories.json", projectIDOrIdentifier)

	wrapper, err := redmine.Object[issueCategoriesWrapper](ctx, c.requester, getObject(path, nil))
	if err != nil {
		return nil, fmt.Errorf("listing issue categories: %w", err)
	}

	return wrapper.IssueCategories, nil
}

// Get implements redmine.IssueCategoriesClient.Get.
func (c *IssueCategoriesClient) Get(ctx context.Context, id uint64) (*redmine.IssueCategory, error) {
	wrapper, err := redmine.Object[issueCategoryWrapper](ctx, c.requester, getObject(fmt.Sprintf("issue_categories/%d.json", id), nil))
	if err != nil {
		return nil, fmt.Errorf("getting issue category: %w", err)
	}

	return &wrapper.IssueCategory, nil
}

// Create implements redmine.IssueCategoriesClient.Create.
func (c *IssueCategoriesClient) Create(ctx context.Context, projectIDOrIdentifier string, req *redmine.IssueCategoryCreateRequest) (*redmine.IssueCategory, error) {
	path := fmt.Sprintf("projects/%s/issue_categories.json", projectIDOrIdentifier)

	wrapper, err := redmine.Object[issueCategoryWrapper](ctx, c.requester, postObject(path, issueCategoryCreateWrapper{IssueCategory: req}))
	if err != nil {
		return nil, fmt.Errorf("creating issue category: %w", err)
	}

	return &wrapper.IssueCategory, nil
}

// Update implements redmine.IssueCategoriesClient.Update.
func (c *IssueCategoriesClient) Update(ctx context.Context, id uint64, req *redmine.IssueCategoryUpdateRequest) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, putRaw(fmt.Sprintf("issue_categories/%d.json", id), issueCategoryUpdateWrapper{IssueCategory: req}))
	if err != nil {
		return fmt.Errorf("updating issue category: %w", err)
	}

	return nil
}

// Delete implements redmine.IssueCategoriesClient.Delete.
func (c *IssueCategoriesClient) Delete(ctx context.Context, id uint64, reassignToID *uint64) error {
	params := redmine.NewQueryParams().PushOpt("reassign_to_id", redmine.OptUint(reassignToID))

	err := redmine.IgnoreResponseBody(ctx, c.requester, deleteRaw(fmt.Sprintf("issue_categories/%d.json", id), params))
	if err != nil {
		return fmt.Errorf("deleting issue category: %w", err)
	}

	return nil
}

type issueCategoryWrapper struct {
	IssueCategory redmine.IssueCategory `json:"issue_category"`
}

type issueCategoriesWrapper struct {
	IssueCategories []redmine.IssueCategory `json:"issue_categories"`
}

type issueCategoryCreateWrapper struct {
	IssueCategory *redmine.IssueCategoryCreateRequest `json:"issue_category"`
}

type issueCategoryUpdateWrapper struct {
	IssueCategory *redmine.IssueCategoryUpdateRequest `json:"issue_category"`
}

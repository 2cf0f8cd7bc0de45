package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// MembershipsClient implements redmine.MembershipsClient.
type MembershipsClient struct {
	requester redmine.Requester
}

// NewMembershipsClient creates a new memberships client.
func NewMembershipsClient(requester redmine.Requester) *MembershipsClient {
	return &MembershipsClient{requester: requester}
}

// List implements redmine.MembershipsClient.List.
func (c *MembershipsClient) List(ctx context.Context, projectIDOrIdentifier string) ([]redmine.Membership, error) {
	path := fmt.Sprintf("projects/%s/memberships.json", projectIDOrIdentifier)

	memberships, err := redmine.AllPages[redmine.Membership](ctx, c.requester, getPaged(path, "memberships", nil))
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}

	return memberships, nil
}

// ListPage implements redmine.MembershipsClient.ListPage.
func (c *MembershipsClient) ListPage(ctx context.Context, projectIDOrIdentifier string, offset, limit int) (*redmine.ResponsePage[redmine.Membership], error) {
	path := fmt.Sprintf("projects/%s/memberships.json", projectIDOrIdentifier)

	page, err := redmine.Page[redmine.Membership](ctx, c.requester, getPaged(path, "memberships", nil), offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}

	return page, nil
}

// Get implements redmine.MembershipsClient.Get.
func (c *MembershipsClient) Get(ctx context.Context, id uint64) (*redmine.Membership, error) {
	wrapper, err := redmine.Object[membershipWrapper](ctx, c.requester, getObject(fmt.Sprintf("memberships/%d.json", id), nil))
	if err != nil {
		return nil, fmt.Errorf("getting membership: %w", err)
	}

	return &wrapper.Membership, nil
}

// Create implements redmine.MembershipsClient.Create.
func (c *MembershipsClient) Create(ctx context.Context, projectIDOrIdentifier string, req *redmine.MembershipCreateRequest) (*redmine.Membership, error) {
	path := fmt.Sprintf("projects/%s/memberships.json", projectIDOrIdentifier)

	wrapper, err := redmine.Object[membershipWrapper](ctx, c.requester, postObject(path, membershipCreateWrapper{Membership: req}))
	if err != nil {
		return nil, fmt.Errorf("creating membership: %w", err)
	}

	return &wrapper.Membership, nil
}

// Update implements redmine.MembershipsClient.Update.
func (c *MembershipsClient) Update(ctx context.Context, id uint64, req *redmine.MembershipUpdateRequest) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, putRaw(fmt.Sprintf("memberships/%d.json", id), membershipUpdateWrapper{Membership: req}))
	if err != nil {
		return fmt.Errorf("updating membership: %w", err)
	}

	return nil
}

// Delete implements redmine.MembershipsClient.Delete.
func (c *MembershipsClient) Delete(ctx context.Context, id uint64) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, deleteRaw(fmt.Sprintf("memberships/%d.json", id), nil))
	if err != nil {
		return fmt.Errorf("deleting membership: %w", err)
	}

	return nil
}

type membershipWrapper struct {
	Membership redmine.Membership `json:"membership"`
}

type membershipCreateWrapper struct {
	Membership *redmine.MembershipCreateRequest `json:"membership"`
}

type membershipUpdateWrapper struct {
	Membership *redmine.MembershipUpdateRequest `json:"membership"`
}

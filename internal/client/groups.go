package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// GroupsClient implements redmine.GroupsClient.
type GroupsClient struct {
	requester redmine.Requester
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(requester redmine.Requester) *GroupsClient {
	return &GroupsClient{requester: requester}
}

// List implements redmine.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context) ([]redmine.Group, error) {
	groups, err := redmine.AllPages[redmine.Group](ctx, c.requester, getPaged("groups.json", "groups", nil))
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	return groups, nil
}

// ListPage implements redmine.GroupsClient.ListPage.
func (c *GroupsClient) ListPage(ctx context.Context, offset, limit int) (*redmine.ResponsePage[redmine.Group], error) {
	page, err := redmine.Page[redmine.Group](ctx, c.requester, getPaged("groups.json", "groups", nil), offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	return page, nil
}

// Get implements redmine.GroupsClient.Get.
func (c *GroupsClient) Get(ctx context.Context, id uint64, opts *redmine.GroupGetOptions) (*redmine.Group, error) {
	params := redmine.NewQueryParams()

	if opts != nil && len(opts.Include) > 0 {
		include := make([]string, 0, len(opts.Include))
		for _, inc := range opts.Include {
			include = append(include, string(inc))
		}

		params.Push("include", redmine.StringList(include))
	}

	wrapper, err := redmine.Object[groupWrapper](ctx, c.requester, getObject(fmt.Sprintf("groups/%d.json", id), params))
	if err != nil {
		return nil, fmt.Errorf("getting group: %w", err)
	}

	return &wrapper.Group, nil
}

// Create implements redmine.GroupsClient.Create.
func (c *GroupsClient) Create(ctx context.Context, req *redmine.GroupCreateRequest) (*redmine.Group, error) {
	wrapper, err := redmine.Object[groupWrapper](ctx, c.requester, postObject("groups.json", groupCreateWrapper{Group: req}))
	if err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}

	return &wrapper.Group, nil
}

// Update implements redmine.GroupsClient.Update.
func (c *GroupsClient) Update(ctx context.Context, id uint64, req *redmine.GroupUpdateRequest) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, putRaw(fmt.Sprintf("groups/%d.json", id), groupUpdateWrapper{Group: req}))
	if err != nil {
		return fmt.Errorf("updating group: %w", err)
	}

	return nil
}

// Delete implements redmine.GroupsClient.Delete.
func (c *GroupsClient) Delete(ctx context.Context, id uint64) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, deleteRaw(fmt.Sprintf("groups/%d.json", id), nil))
	if err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}

	return nil
}

// AddUser implements redmine.GroupsClient.AddUser.
func (c *GroupsClient) AddUser(ctx context.Context, groupID, userID uint64) error {
	payload := groupUserWrapper{UserID: userID}

	err := redmine.IgnoreResponseBody(ctx, c.requester, postRaw(fmt.Sprintf("groups/%d/users.json", groupID), payload))
	if err != nil {
		return fmt.Errorf("adding user to group: %w", err)
	}

	return nil
}

// RemoveUser implements redmine.GroupsClient.RemoveUser.
func (c *GroupsClient) RemoveUser(ctx context.Context, groupID, userID uint64) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, deleteRaw(fmt.Sprintf("groups/%d/users/%d.json", groupID, userID), nil))
	if err != nil {
		return fmt.Errorf("removing user from group: %w", err)
	}

	return nil
}

type groupWrapper struct {
	Group redmine.Group `json:"group"`
}

type groupCreateWrapper struct {
	Group *redmine.GroupCreateRequest `json:"group"`
}

type groupUpdateWrapper struct {
	Group *redmine.GroupUpdateRequest `json:"group"`
}

type groupUserWrapper struct {
	UserID uint64 `json:"user_id"`
}

package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// UsersClient implements redmine.UsersClient.
type UsersClient struct {
	requester redmine.Requester
}

// NewUsersClient creates a new users client.
func NewUsersClient(requester redmine.Requester) *UsersClient {
	return &UsersClient{requester: requester}
}

func usersListParams(opts *redmine.UsersListOptions) *redmine.QueryParams {
	params := redmine.NewQueryParams()
	if opts == nil {
		return params
	}

	if opts.Status != nil {
		params.Push("status", redmine.String(string(*opts.Status)))
	}

	params.PushOpt("name", redmine.OptString(opts.Name)).
		PushOpt("group_id", redmine.OptUint(opts.GroupID))

	return params
}

func userIncludeParams(opts *redmine.UserGetOptions) *redmine.QueryParams {
	params := redmine.NewQueryParams()
	if opts == nil || len(opts.Include) == 0 {
		return params
	}

	include := make([]string, 0, len(opts.Include))
	for _, inc := range opts.Include {
		include = append(include, string(inc))
	}

	params.Push("include", redmine.StringList(include))

	return params
}

// List implements redmine.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, opts *redmine.UsersListOptions) ([]redmine.User, error) {
	users, err := redmine.AllPages[redmine.User](ctx, c.requester, getPaged("users.json", "users", usersListParams(opts)))
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return users, nil
}

// ListPage implements redmine.UsersClient.ListPage.
func (c *UsersClient) ListPage(ctx context.Context, opts *redmine.UsersListOptions, offset, limit int) (*redmine.ResponsePage[redmine.User], error) {
	page, err := redmine.Page[redmine.User](ctx, c.requester, getPaged("users.json", "users", usersListParams(opts)), offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return page, nil
}

// Get implements redmine.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, id uint64, opts *redmine.UserGetOptions) (*redmine.User, error) {
	wrapper, err := redmine.Object[userWrapper](ctx, c.requester, getObject(fmt.Sprintf("users/%d.json", id), userIncludeParams(opts)))
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return &wrapper.User, nil
}

// Current implements redmine.UsersClient.Current.
func (c *UsersClient) Current(ctx context.Context, opts *redmine.UserGetOptions) (*redmine.User, error) {
	wrapper, err := redmine.Object[userWrapper](ctx, c.requester, getObject("users/current.json", userIncludeParams(opts)))
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return &wrapper.User, nil
}

// MyAccount implements redmine.UsersClient.MyAccount.
func (c *UsersClient) MyAccount(ctx context.Context) (*redmine.User, error) {
	wrapper, err := redmine.Object[userWrapper](ctx, c.requester, getObject("my/account.json", nil))
	if err != nil {
		return nil, fmt.Errorf("getting my account: %w", err)
	}

	return &wrapper.User, nil
}

// Create implements redmine.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, req *redmine.UserCreateRequest) (*redmine.User, error) {
	wrapper, err := redmine.Object[userWrapper](ctx, c.requester, postObject("users.json", userCreateWrapper{User: req}))
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &wrapper.User, nil
}

// Update implements redmine.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, id uint64, req *redmine.UserUpdateRequest) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, putRaw(fmt.Sprintf("users/%d.json", id), userUpdateWrapper{User: req}))
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

// Delete implements redmine.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, id uint64) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, deleteRaw(fmt.Sprintf("users/%d.json", id), nil))
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

type userWrapper struct {
	User redmine.User `json:"user"`
}

type userCreateWrapper struct {
	User *redmine.UserCreateRequest `json:"user"`
}

type userUpdateWrapper struct {
	User *redmine.UserUpdateRequest `json:"user"`
}

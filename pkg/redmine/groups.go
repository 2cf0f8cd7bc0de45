package redmine

import "context"

// Group represents a Redmine user group.
type Group struct {
	ID   uint64 `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
	// Users is filled when the include parameter requests it.
	Users []IDName `json:"users,omitempty" yaml:"users,omitempty"`
	// Memberships is filled when the include parameter requests it.
	Memberships  []Membership  `json:"memberships,omitempty"   yaml:"memberships,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty" yaml:"custom_fields,omitempty"`
}

// GroupInclude names associated data fetched along with a group.
type GroupInclude string

// Group include values.
const (
	GroupIncludeUsers       GroupInclude = "users"
	GroupIncludeMemberships GroupInclude = "memberships"
)

// GroupGetOptions are the options for fetching a single group.
type GroupGetOptions struct {
	Include []GroupInclude
}

// GroupCreateRequest represents a request to create a group.
type GroupCreateRequest struct {
	Name    string   `json:"name"               yaml:"name"`
	UserIDs []uint64 `json:"user_ids,omitempty" yaml:"user_ids,omitempty"`
}

// GroupUpdateRequest represents a request to update a group. Nil fields
// are left unchanged.
type GroupUpdateRequest struct {
	Name    *string  `json:"name,omitempty"     yaml:"name,omitempty"`
	UserIDs []uint64 `json:"user_ids,omitempty" yaml:"user_ids,omitempty"`
}

// GroupsClient provides access to the groups resource. All operations
// require admin privileges.
type GroupsClient interface {
	List(ctx context.Context) ([]Group, error)
	ListPage(ctx context.Context, offset, limit int) (*ResponsePage[Group], error)
	Get(ctx context.Context, id uint64, opts *GroupGetOptions) (*Group, error)
	Create(ctx context.Context, req *GroupCreateRequest) (*Group, error)
	Update(ctx context.Context, id uint64, req *GroupUpdateRequest) error
	Delete(ctx context.Context, id uint64) error
	// AddUser puts a user into the group.
	AddUser(ctx context.Context, groupID, userID uint64) error
	// RemoveUser takes a user out of the group.
	RemoveUser(ctx context.Context, groupID, userID uint64) error
}

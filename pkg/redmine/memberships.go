package redmine

import "context"

// Membership represents a user's or group's membership in a project.
// Exactly one of User and Group is set.
type Membership struct {
	ID      uint64  `json:"id,omitempty"    yaml:"id,omitempty"`
	Project *IDName `json:"project,omitempty" yaml:"project,omitempty"`
	User    *IDName `json:"user,omitempty"  yaml:"user,omitempty"`
	Group   *IDName `json:"group,omitempty" yaml:"group,omitempty"`
	Roles   []MembershipRole `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// MembershipRole is a role within a membership. Inherited marks roles
// coming from a group or parent project membership.
type MembershipRole struct {
	ID        uint64 `json:"id"                  yaml:"id"`
	Name      string `json:"name,omitempty"      yaml:"name,omitempty"`
	Inherited bool   `json:"inherited,omitempty" yaml:"inherited,omitempty"`
}

// MembershipCreateRequest represents a request to add a user or group to
// a project. UserID also accepts a group id; Redmine treats them alike
// here.
type MembershipCreateRequest struct {
	UserID  uint64   `json:"user_id"  yaml:"user_id"`
	RoleIDs []uint64 `json:"role_ids" yaml:"role_ids"`
}

// MembershipUpdateRequest represents a request to change the roles of a
// membership.
type MembershipUpdateRequest struct {
	RoleIDs []uint64 `json:"role_ids" yaml:"role_ids"`
}

// MembershipsClient provides access to the project memberships resource.
type MembershipsClient interface {
	// List fetches all memberships of a project across all pages.
	List(ctx context.Context, projectIDOrIdentifier string) ([]Membership, error)
	ListPage(ctx context.Context, projectIDOrIdentifier string, offset, limit int) (*ResponsePage[Membership], error)
	Get(ctx context.Context, id uint64) (*Membership, error)
	Create(ctx context.Context, projectIDOrIdentifier string, req *MembershipCreateRequest) (*Membership, error)
	Update(ctx context.Context, id uint64, req *MembershipUpdateRequest) error
	Delete(ctx context.Context, id uint64) error
}

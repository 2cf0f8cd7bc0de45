package redmine

import "context"

// IssueCategory represents an issue category within a project.
type IssueCategory struct {
	ID         uint64  `json:"id"                    yaml:"id"`
	Project    IDName  `json:"project"               yaml:"project"`
	Name       string  `json:"name"                  yaml:"name"`
	AssignedTo *IDName `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
}

// IssueCategoryCreateRequest represents a request to create an issue
// category in a project.
type IssueCategoryCreateRequest struct {
	Name string `json:"name" yaml:"name"`
	// AssignedToID sets the default assignee for issues in this category.
	AssignedToID *uint64 `json:"assigned_to_id,omitempty" yaml:"assigned_to_id,omitempty"`
}

// IssueCategoryUpdateRequest represents a request to update an issue
// category. Nil fields are left unchanged.
type IssueCategoryUpdateRequest struct {
	Name         *string `json:"name,omitempty"           yaml:"name,omitempty"`
	AssignedToID *uint64 `json:"assigned_to_id,omitempty" yaml:"assigned_to_id,omitempty"`
}

// IssueCategoriesClient provides access to the issue categories of a
// project. The category list is not paginated by the service.
type IssueCategoriesClient interface {
	List(ctx context.Context, projectIDOrIdentifier string) ([]IssueCategory, error)
	Get(ctx context.Context, id uint64) (*IssueCategory, error)
	Create(ctx context.Context, projectIDOrIdentifier string, req *IssueCategoryCreateRequest) (*IssueCategory, error)
	Update(ctx context.Context, id uint64, req *IssueCategoryUpdateRequest) error
	// Delete removes the category; reassignToID moves its issues to
	// another category instead of clearing them when non-nil.
	Delete(ctx context.Context, id uint64, reassignToID *uint64) error
}

package redmine

import "context"

// VersionStatus describes whether issues can still be assigned to a
// version.
type VersionStatus string

// Version status values.
const (
	VersionStatusOpen   VersionStatus = "open"
	VersionStatusLocked VersionStatus = "locked"
	VersionStatusClosed VersionStatus = "closed"
)

// VersionSharing describes which projects share a version.
type VersionSharing string

// Version sharing values.
const (
	VersionSharingNone        VersionSharing = "none"
	VersionSharingDescendants VersionSharing = "descendants"
	VersionSharingHierarchy   VersionSharing = "hierarchy"
	VersionSharingTree        VersionSharing = "tree"
	VersionSharingSystem      VersionSharing = "system"
)

// Version represents a project version (milestone).
type Version struct {
	ID            uint64         `json:"id"                        yaml:"id"`
	Project       IDName         `json:"project"                   yaml:"project"`
	Name          string         `json:"name"                      yaml:"name"`
	Description   string         `json:"description,omitempty"     yaml:"description,omitempty"`
	Status        VersionStatus  `json:"status,omitempty"          yaml:"status,omitempty"`
	DueDate       *Date          `json:"due_date,omitempty"        yaml:"due_date,omitempty"`
	Sharing       VersionSharing `json:"sharing,omitempty"         yaml:"sharing,omitempty"`
	WikiPageTitle string         `json:"wiki_page_title,omitempty" yaml:"wiki_page_title,omitempty"`
	CustomFields  []CustomField  `json:"custom_fields,omitempty"   yaml:"custom_fields,omitempty"`
	CreatedOn     *Timestamp     `json:"created_on,omitempty"      yaml:"created_on,omitempty"`
	UpdatedOn     *Timestamp     `json:"updated_on,omitempty"      yaml:"updated_on,omitempty"`
}

// VersionCreateRequest represents a request to create a version in a
// project.
type VersionCreateRequest struct {
	Name          string          `json:"name"                      yaml:"name"`
	Status        *VersionStatus  `json:"status,omitempty"          yaml:"status,omitempty"`
	Sharing       *VersionSharing `json:"sharing,omitempty"         yaml:"sharing,omitempty"`
	DueDate       *Date           `json:"due_date,omitempty"        yaml:"due_date,omitempty"`
	Description   *string         `json:"description,omitempty"     yaml:"description,omitempty"`
	WikiPageTitle *string         `json:"wiki_page_title,omitempty" yaml:"wiki_page_title,omitempty"`
}

// VersionUpdateRequest represents a request to update a version. Nil
// fields are left unchanged.
type VersionUpdateRequest struct {
	Name          *string         `json:"name,omitempty"            yaml:"name,omitempty"`
	Status        *VersionStatus  `json:"status,omitempty"          yaml:"status,omitempty"`
	Sharing       *VersionSharing `json:"sharing,omitempty"         yaml:"sharing,omitempty"`
	DueDate       *Date           `json:"due_date,omitempty"        yaml:"due_date,omitempty"`
	Description   *string         `json:"description,omitempty"     yaml:"description,omitempty"`
	WikiPageTitle *string         `json:"wiki_page_title,omitempty" yaml:"wiki_page_title,omitempty"`
}

// VersionsClient provides access to the versions resource. The version
// list of a project is not paginated by the service.
type VersionsClient interface {
	// List fetches all versions of a project, including inherited shared
	// versions.
	List(ctx context.Context, projectIDOrIdentifier string) ([]Version, error)
	Get(ctx context.Context, id uint64) (*Version, error)
	Create(ctx context.Context, projectIDOrIdentifier string, req *VersionCreateRequest) (*Version, error)
	Update(ctx context.Context, id uint64, req *VersionUpdateRequest) error
	Delete(ctx context.Context, id uint64) error
}

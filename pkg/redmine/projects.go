package redmine

import "context"

// Project represents a Redmine project.
type Project struct {
	ID          uint64  `json:"id"                    yaml:"id"`
	Name        string  `json:"name"                  yaml:"name"`
	Identifier  string  `json:"identifier"            yaml:"identifier"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Homepage    string  `json:"homepage,omitempty"    yaml:"homepage,omitempty"`
	Parent      *IDName `json:"parent,omitempty"      yaml:"parent,omitempty"`
	// Status is 1 for active and 5 for archived projects.
	Status         uint64        `json:"status"                    yaml:"status"`
	IsPublic       *bool         `json:"is_public,omitempty"       yaml:"is_public,omitempty"`
	InheritMembers *bool         `json:"inherit_members,omitempty" yaml:"inherit_members,omitempty"`
	DefaultVersion *IDName       `json:"default_version,omitempty" yaml:"default_version,omitempty"`
	CustomFields   []CustomField `json:"custom_fields,omitempty"   yaml:"custom_fields,omitempty"`
	CreatedOn      *Timestamp    `json:"created_on,omitempty"      yaml:"created_on,omitempty"`
	UpdatedOn      *Timestamp    `json:"updated_on,omitempty"      yaml:"updated_on,omitempty"`
	// The remaining fields are filled when the include parameter
	// requests them.
	Trackers            []IDName `json:"trackers,omitempty"              yaml:"trackers,omitempty"`
	IssueCategories     []IDName `json:"issue_categories,omitempty"      yaml:"issue_categories,omitempty"`
	TimeEntryActivities []IDName `json:"time_entry_activities,omitempty" yaml:"time_entry_activities,omitempty"`
	EnabledModules      []IDName `json:"enabled_modules,omitempty"       yaml:"enabled_modules,omitempty"`
}

// ProjectInclude names associated data fetched along with a project.
type ProjectInclude string

// Project include values.
const (
	ProjectIncludeTrackers            ProjectInclude = "trackers"
	ProjectIncludeIssueCategories     ProjectInclude = "issue_categories"
	ProjectIncludeEnabledModules      ProjectInclude = "enabled_modules"
	ProjectIncludeTimeEntryActivities ProjectInclude = "time_entry_activities"
)

// ProjectsListOptions are the optional filters for listing projects.
type ProjectsListOptions struct {
	Include []ProjectInclude
}

// ProjectGetOptions are the options for fetching a single project.
type ProjectGetOptions struct {
	Include []ProjectInclude
}

// ProjectCreateRequest represents a request to create a project.
type ProjectCreateRequest struct {
	Name        string  `json:"name"                  yaml:"name"`
	Identifier  string  `json:"identifier"            yaml:"identifier"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Homepage    *string `json:"homepage,omitempty"    yaml:"homepage,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"   yaml:"is_public,omitempty"`
	ParentID    *uint64 `json:"parent_id,omitempty"   yaml:"parent_id,omitempty"`
	InheritMembers     *bool    `json:"inherit_members,omitempty"       yaml:"inherit_members,omitempty"`
	DefaultVersionID   *uint64  `json:"default_version_id,omitempty"    yaml:"default_version_id,omitempty"`
	TrackerIDs         []uint64 `json:"tracker_ids,omitempty"           yaml:"tracker_ids,omitempty"`
	EnabledModuleNames []string `json:"enabled_module_names,omitempty"  yaml:"enabled_module_names,omitempty"`
	CustomFields       []CustomField `json:"custom_fields,omitempty"    yaml:"custom_fields,omitempty"`
}

// ProjectUpdateRequest represents a request to update a project. Nil
// fields are left unchanged.
type ProjectUpdateRequest struct {
	Name               *string       `json:"name,omitempty"                 yaml:"name,omitempty"`
	Description        *string       `json:"description,omitempty"          yaml:"description,omitempty"`
	Homepage           *string       `json:"homepage,omitempty"             yaml:"homepage,omitempty"`
	IsPublic           *bool         `json:"is_public,omitempty"            yaml:"is_public,omitempty"`
	ParentID           *uint64       `json:"parent_id,omitempty"            yaml:"parent_id,omitempty"`
	InheritMembers     *bool         `json:"inherit_members,omitempty"      yaml:"inherit_members,omitempty"`
	DefaultVersionID   *uint64       `json:"default_version_id,omitempty"   yaml:"default_version_id,omitempty"`
	TrackerIDs         []uint64      `json:"tracker_ids,omitempty"          yaml:"tracker_ids,omitempty"`
	EnabledModuleNames []string      `json:"enabled_module_names,omitempty" yaml:"enabled_module_names,omitempty"`
	CustomFields       []CustomField `json:"custom_fields,omitempty"        yaml:"custom_fields,omitempty"`
}

// ProjectsClient provides access to the projects resource. Projects are
// addressed by numeric id or by their string identifier.
type ProjectsClient interface {
	List(ctx context.Context, opts *ProjectsListOptions) ([]Project, error)
	ListPage(ctx context.Context, opts *ProjectsListOptions, offset, limit int) (*ResponsePage[Project], error)
	Get(ctx context.Context, idOrIdentifier string, opts *ProjectGetOptions) (*Project, error)
	Create(ctx context.Context, req *ProjectCreateRequest) (*Project, error)
	Update(ctx context.Context, idOrIdentifier string, req *ProjectUpdateRequest) error
	Delete(ctx context.Context, idOrIdentifier string) error
	// Archive hides the project from regular use; Unarchive reverts it.
	Archive(ctx context.Context, idOrIdentifier string) error
	Unarchive(ctx context.Context, idOrIdentifier string) error
}

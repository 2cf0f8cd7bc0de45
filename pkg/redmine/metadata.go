package redmine

import "context"

// IssueStatus represents an issue status definition.
type IssueStatus struct {
	ID       uint64 `json:"id"                  yaml:"id"`
	Name     string `json:"name"                yaml:"name"`
	IsClosed bool   `json:"is_closed,omitempty" yaml:"is_closed,omitempty"`
}

// IssueStatusesClient lists the issue statuses defined on the instance.
// The list is not paginated by the service.
type IssueStatusesClient interface {
	List(ctx context.Context) ([]IssueStatus, error)
}

// Tracker represents a tracker (issue type) definition.
type Tracker struct {
	ID            uint64  `json:"id"                       yaml:"id"`
	Name          string  `json:"name"                     yaml:"name"`
	DefaultStatus *IDName `json:"default_status,omitempty" yaml:"default_status,omitempty"`
	Description   string  `json:"description,omitempty"    yaml:"description,omitempty"`
	// EnabledStandardFields is only returned by Redmine 5.0 and later.
	EnabledStandardFields []string `json:"enabled_standard_fields,omitempty" yaml:"enabled_standard_fields,omitempty"`
}

// TrackersClient lists the trackers defined on the instance. The list is
// not paginated by the service.
type TrackersClient interface {
	List(ctx context.Context) ([]Tracker, error)
}

// Role represents a role definition. The list endpoint returns only id
// and name; Get fills in the permissions.
type Role struct {
	ID          uint64   `json:"id"                    yaml:"id"`
	Name        string   `json:"name"                  yaml:"name"`
	Assignable  *bool    `json:"assignable,omitempty"  yaml:"assignable,omitempty"`
	Permissions []string `json:"permissions,omitempty" yaml:"permissions,omitempty"`
}

// RolesClient provides access to the roles resource. The list is not
// paginated by the service.
type RolesClient interface {
	List(ctx context.Context) ([]Role, error)
	Get(ctx context.Context, id uint64) (*Role, error)
}

// Enumeration represents an enumeration value: an issue priority, a time
// entry activity, or a document category.
type Enumeration struct {
	ID        uint64 `json:"id"                   yaml:"id"`
	Name      string `json:"name"                 yaml:"name"`
	IsDefault bool   `json:"is_default,omitempty" yaml:"is_default,omitempty"`
	Active    *bool  `json:"active,omitempty"     yaml:"active,omitempty"`
}

// EnumerationsClient lists the enumerations defined on the instance.
// These lists are not paginated by the service.
type EnumerationsClient interface {
	ListIssuePriorities(ctx context.Context) ([]Enumeration, error)
	ListTimeEntryActivities(ctx context.Context) ([]Enumeration, error)
	ListDocumentCategories(ctx context.Context) ([]Enumeration, error)
}

// Query represents a saved (custom) issue query.
type Query struct {
	ID       uint64 `json:"id"                   yaml:"id"`
	Name     string `json:"name"                 yaml:"name"`
	IsPublic bool   `json:"is_public"            yaml:"is_public"`
	// ProjectID is nil for global queries.
	ProjectID *uint64 `json:"project_id,omitempty" yaml:"project_id,omitempty"`
}

// QueriesClient lists the saved queries visible to the API key.
type QueriesClient interface {
	List(ctx context.Context) ([]Query, error)
	ListPage(ctx context.Context, offset, limit int) (*ResponsePage[Query], error)
}

// CustomFieldDefinition describes a custom field configured on the
// instance.
type CustomFieldDefinition struct {
	ID             uint64   `json:"id"                        yaml:"id"`
	Name           string   `json:"name"                      yaml:"name"`
	CustomizedType string   `json:"customized_type"           yaml:"customized_type"`
	FieldFormat    string   `json:"field_format"              yaml:"field_format"`
	Regexp         string   `json:"regexp,omitempty"          yaml:"regexp,omitempty"`
	MinLength      *uint64  `json:"min_length,omitempty"      yaml:"min_length,omitempty"`
	MaxLength      *uint64  `json:"max_length,omitempty"      yaml:"max_length,omitempty"`
	IsRequired     bool     `json:"is_required,omitempty"     yaml:"is_required,omitempty"`
	IsFilter       bool     `json:"is_filter,omitempty"       yaml:"is_filter,omitempty"`
	Searchable     bool     `json:"searchable,omitempty"      yaml:"searchable,omitempty"`
	Multiple       bool     `json:"multiple,omitempty"        yaml:"multiple,omitempty"`
	DefaultValue   string   `json:"default_value,omitempty"   yaml:"default_value,omitempty"`
	Visible        bool     `json:"visible,omitempty"         yaml:"visible,omitempty"`
	PossibleValues []CustomFieldPossibleValue `json:"possible_values,omitempty" yaml:"possible_values,omitempty"`
	Trackers       []IDName `json:"trackers,omitempty"        yaml:"trackers,omitempty"`
	Roles          []IDName `json:"roles,omitempty"           yaml:"roles,omitempty"`
}

// CustomFieldPossibleValue is one selectable value of a list-format
// custom field.
type CustomFieldPossibleValue struct {
	Value string `json:"value"           yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// CustomFieldsClient lists the custom field definitions. Requires admin
// privileges. The list is not paginated by the service.
type CustomFieldsClient interface {
	List(ctx context.Context) ([]CustomFieldDefinition, error)
}

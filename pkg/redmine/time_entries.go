package redmine

import "context"

// TimeEntry represents time spent on a project or issue.
type TimeEntry struct {
	ID           uint64        `json:"id"                      yaml:"id"`
	Project      IDName        `json:"project"                 yaml:"project"`
	Issue        *IDRef        `json:"issue,omitempty"         yaml:"issue,omitempty"`
	User         IDName        `json:"user"                    yaml:"user"`
	Activity     IDName        `json:"activity"                yaml:"activity"`
	Hours        float64       `json:"hours"                   yaml:"hours"`
	Comments     string        `json:"comments,omitempty"      yaml:"comments,omitempty"`
	SpentOn      *Date         `json:"spent_on,omitempty"      yaml:"spent_on,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty" yaml:"custom_fields,omitempty"`
	CreatedOn    *Timestamp    `json:"created_on,omitempty"    yaml:"created_on,omitempty"`
	UpdatedOn    *Timestamp    `json:"updated_on,omitempty"    yaml:"updated_on,omitempty"`
}

// TimeEntriesListOptions are the optional filters for listing time
// entries.
type TimeEntriesListOptions struct {
	// ProjectID limits results to one project (numeric id or identifier).
	ProjectID *string
	// IssueID limits results to one issue.
	IssueID *uint64
	// UserID limits results to entries by one user.
	UserID *uint64
	// SpentOn limits results to a single day.
	SpentOn *Date
	// From and To bound the spent_on date range.
	From *Date
	To   *Date
}

// TimeEntryCreateRequest represents a request to create a time entry.
// Exactly one of IssueID and ProjectID must be set.
type TimeEntryCreateRequest struct {
	IssueID   *uint64 `json:"issue_id,omitempty"   yaml:"issue_id,omitempty"`
	ProjectID *uint64 `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	// SpentOn defaults to today.
	SpentOn *Date   `json:"spent_on,omitempty" yaml:"spent_on,omitempty"`
	Hours   float64 `json:"hours"              yaml:"hours"`
	// ActivityID is required unless the instance defines a default
	// activity.
	ActivityID   *uint64       `json:"activity_id,omitempty"   yaml:"activity_id,omitempty"`
	Comments     *string       `json:"comments,omitempty"      yaml:"comments,omitempty"`
	UserID       *uint64       `json:"user_id,omitempty"       yaml:"user_id,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty" yaml:"custom_fields,omitempty"`
}

// TimeEntryUpdateRequest represents a request to update a time entry. Nil
// fields are left unchanged.
type TimeEntryUpdateRequest struct {
	IssueID      *uint64       `json:"issue_id,omitempty"      yaml:"issue_id,omitempty"`
	ProjectID    *uint64       `json:"project_id,omitempty"    yaml:"project_id,omitempty"`
	SpentOn      *Date         `json:"spent_on,omitempty"      yaml:"spent_on,omitempty"`
	Hours        *float64      `json:"hours,omitempty"         yaml:"hours,omitempty"`
	ActivityID   *uint64       `json:"activity_id,omitempty"   yaml:"activity_id,omitempty"`
	Comments     *string       `json:"comments,omitempty"      yaml:"comments,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty" yaml:"custom_fields,omitempty"`
}

// TimeEntriesClient provides access to the time entries resource.
type TimeEntriesClient interface {
	List(ctx context.Context, opts *TimeEntriesListOptions) ([]TimeEntry, error)
	ListPage(ctx context.Context, opts *TimeEntriesListOptions, offset, limit int) (*ResponsePage[TimeEntry], error)
	Get(ctx context.Context, id uint64) (*TimeEntry, error)
	Create(ctx context.Context, req *TimeEntryCreateRequest) (*TimeEntry, error)
	Update(ctx context.Context, id uint64, req *TimeEntryUpdateRequest) error
	Delete(ctx context.Context, id uint64) error
}

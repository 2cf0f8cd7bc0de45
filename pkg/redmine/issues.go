package redmine

import "context"

// Issue represents a Redmine issue.
type Issue struct {
	ID             uint64        `json:"id"                        yaml:"id"`
	Project        IDName        `json:"project"                   yaml:"project"`
	Tracker        IDName        `json:"tracker"                   yaml:"tracker"`
	Status         IDName        `json:"status"                    yaml:"status"`
	Priority       IDName        `json:"priority"                  yaml:"priority"`
	Author         IDName        `json:"author"                    yaml:"author"`
	AssignedTo     *IDName       `json:"assigned_to,omitempty"     yaml:"assigned_to,omitempty"`
	Category       *IDName       `json:"category,omitempty"        yaml:"category,omitempty"`
	FixedVersion   *IDName       `json:"fixed_version,omitempty"   yaml:"fixed_version,omitempty"`
	Parent         *IDRef        `json:"parent,omitempty"          yaml:"parent,omitempty"`
	Subject        string        `json:"subject"                   yaml:"subject"`
	Description    string        `json:"description,omitempty"     yaml:"description,omitempty"`
	StartDate      *Date         `json:"start_date,omitempty"      yaml:"start_date,omitempty"`
	DueDate        *Date         `json:"due_date,omitempty"        yaml:"due_date,omitempty"`
	DoneRatio      uint64        `json:"done_ratio"                yaml:"done_ratio"`
	IsPrivate      bool          `json:"is_private,omitempty"      yaml:"is_private,omitempty"`
	EstimatedHours *float64      `json:"estimated_hours,omitempty" yaml:"estimated_hours,omitempty"`
	SpentHours     *float64      `json:"spent_hours,omitempty"     yaml:"spent_hours,omitempty"`
	CustomFields   []CustomField `json:"custom_fields,omitempty"   yaml:"custom_fields,omitempty"`
	CreatedOn      *Timestamp    `json:"created_on,omitempty"      yaml:"created_on,omitempty"`
	UpdatedOn      *Timestamp    `json:"updated_on,omitempty"      yaml:"updated_on,omitempty"`
	ClosedOn       *Timestamp    `json:"closed_on,omitempty"       yaml:"closed_on,omitempty"`
	// The remaining fields are filled when the include parameter
	// requests them.
	Journals    []Journal       `json:"journals,omitempty"    yaml:"journals,omitempty"`
	Attachments []Attachment    `json:"attachments,omitempty" yaml:"attachments,omitempty"`
	Relations   []IssueRelation `json:"relations,omitempty"   yaml:"relations,omitempty"`
	Children    []Issue         `json:"children,omitempty"    yaml:"children,omitempty"`
	Watchers    []IDName        `json:"watchers,omitempty"    yaml:"watchers,omitempty"`
}

// Journal is one entry of an issue's history.
type Journal struct {
	ID           uint64          `json:"id"                      yaml:"id"`
	User         IDName          `json:"user"                    yaml:"user"`
	Notes        string          `json:"notes,omitempty"         yaml:"notes,omitempty"`
	CreatedOn    *Timestamp      `json:"created_on,omitempty"    yaml:"created_on,omitempty"`
	PrivateNotes bool            `json:"private_notes,omitempty" yaml:"private_notes,omitempty"`
	Details      []JournalDetail `json:"details,omitempty"       yaml:"details,omitempty"`
}

// JournalDetail is one changed attribute within a journal entry.
type JournalDetail struct {
	Property string  `json:"property"            yaml:"property"`
	Name     string  `json:"name"                yaml:"name"`
	OldValue *string `json:"old_value,omitempty" yaml:"old_value,omitempty"`
	NewValue *string `json:"new_value,omitempty" yaml:"new_value,omitempty"`
}

// IssuesListOptions are the optional filters for listing issues. All
// filters combine with AND.
type IssuesListOptions struct {
	// ProjectID limits results to one project (numeric id or identifier).
	ProjectID *string
	// SubprojectID controls subproject inclusion; "!*" excludes
	// subprojects.
	SubprojectID *string
	// TrackerID filters by tracker.
	TrackerID *uint64
	// StatusID filters by status: a numeric id, "open", "closed", or "*".
	StatusID *string
	// AssignedToID filters by assignee; "me" works with impersonation.
	AssignedToID *string
	// AuthorID filters by author id.
	AuthorID *uint64
	// PriorityID filters by priority.
	PriorityID *uint64
	// IssueIDs restricts the result to the given issue ids.
	IssueIDs []uint64
	// ParentID filters by parent issue.
	ParentID *uint64
	// CreatedOn and UpdatedOn accept Redmine date expressions such as
	// ">=2024-01-01" or "><2024-01-01|2024-12-31".
	CreatedOn *string
	UpdatedOn *string
	// Sort orders the result, e.g. "category:desc,updated_on".
	Sort *string
}

// IssueInclude names associated data fetched along with an issue.
type IssueInclude string

// Issue include values.
const (
	IssueIncludeChildren      IssueInclude = "children"
	IssueIncludeAttachments   IssueInclude = "attachments"
	IssueIncludeRelations     IssueInclude = "relations"
	IssueIncludeChangesets    IssueInclude = "changesets"
	IssueIncludeJournals      IssueInclude = "journals"
	IssueIncludeWatchers      IssueInclude = "watchers"
	IssueIncludeAllowedStatus IssueInclude = "allowed_statuses"
)

// IssueGetOptions are the options for fetching a single issue.
type IssueGetOptions struct {
	Include []IssueInclude
}

// IssueCreateRequest represents a request to create an issue. ProjectID is
// required; everything else falls back to the project's defaults.
type IssueCreateRequest struct {
	ProjectID      uint64        `json:"project_id"                  yaml:"project_id"`
	TrackerID      *uint64       `json:"tracker_id,omitempty"        yaml:"tracker_id,omitempty"`
	StatusID       *uint64       `json:"status_id,omitempty"         yaml:"status_id,omitempty"`
	PriorityID     *uint64       `json:"priority_id,omitempty"       yaml:"priority_id,omitempty"`
	Subject        *string       `json:"subject,omitempty"           yaml:"subject,omitempty"`
	Description    *string       `json:"description,omitempty"       yaml:"description,omitempty"`
	CategoryID     *uint64       `json:"category_id,omitempty"       yaml:"category_id,omitempty"`
	FixedVersionID *uint64       `json:"fixed_version_id,omitempty"  yaml:"fixed_version_id,omitempty"`
	AssignedToID   *uint64       `json:"assigned_to_id,omitempty"    yaml:"assigned_to_id,omitempty"`
	ParentIssueID  *uint64       `json:"parent_issue_id,omitempty"   yaml:"parent_issue_id,omitempty"`
	StartDate      *Date         `json:"start_date,omitempty"        yaml:"start_date,omitempty"`
	DueDate        *Date         `json:"due_date,omitempty"          yaml:"due_date,omitempty"`
	EstimatedHours *float64      `json:"estimated_hours,omitempty"   yaml:"estimated_hours,omitempty"`
	IsPrivate      *bool         `json:"is_private,omitempty"        yaml:"is_private,omitempty"`
	CustomFields   []CustomField `json:"custom_fields,omitempty"     yaml:"custom_fields,omitempty"`
	WatcherUserIDs []uint64      `json:"watcher_user_ids,omitempty"  yaml:"watcher_user_ids,omitempty"`
	// Uploads attaches files previously registered via the uploads
	// endpoint.
	Uploads []UploadReference `json:"uploads,omitempty" yaml:"uploads,omitempty"`
}

// IssueUpdateRequest represents a request to update an issue. Nil fields
// are left unchanged.
type IssueUpdateRequest struct {
	ProjectID      *uint64       `json:"project_id,omitempty"       yaml:"project_id,omitempty"`
	TrackerID      *uint64       `json:"tracker_id,omitempty"       yaml:"tracker_id,omitempty"`
	StatusID       *uint64       `json:"status_id,omitempty"        yaml:"status_id,omitempty"`
	PriorityID     *uint64       `json:"priority_id,omitempty"      yaml:"priority_id,omitempty"`
	Subject        *string       `json:"subject,omitempty"          yaml:"subject,omitempty"`
	Description    *string       `json:"description,omitempty"      yaml:"description,omitempty"`
	CategoryID     *uint64       `json:"category_id,omitempty"      yaml:"category_id,omitempty"`
	FixedVersionID *uint64       `json:"fixed_version_id,omitempty" yaml:"fixed_version_id,omitempty"`
	AssignedToID   *uint64       `json:"assigned_to_id,omitempty"   yaml:"assigned_to_id,omitempty"`
	ParentIssueID  *uint64       `json:"parent_issue_id,omitempty"  yaml:"parent_issue_id,omitempty"`
	StartDate      *Date         `json:"start_date,omitempty"       yaml:"start_date,omitempty"`
	DueDate        *Date         `json:"due_date,omitempty"         yaml:"due_date,omitempty"`
	EstimatedHours *float64      `json:"estimated_hours,omitempty"  yaml:"estimated_hours,omitempty"`
	IsPrivate      *bool         `json:"is_private,omitempty"       yaml:"is_private,omitempty"`
	CustomFields   []CustomField `json:"custom_fields,omitempty"    yaml:"custom_fields,omitempty"`
	// Notes adds a journal entry alongside the update.
	Notes        *string           `json:"notes,omitempty"         yaml:"notes,omitempty"`
	PrivateNotes *bool             `json:"private_notes,omitempty" yaml:"private_notes,omitempty"`
	Uploads      []UploadReference `json:"uploads,omitempty"       yaml:"uploads,omitempty"`
}

// IssuesClient provides access to the issues resource.
type IssuesClient interface {
	// List fetches all issues matching opts across all pages.
	List(ctx context.Context, opts *IssuesListOptions) ([]Issue, error)
	// ListPage fetches a single page of issues.
	ListPage(ctx context.Context, opts *IssuesListOptions, offset, limit int) (*ResponsePage[Issue], error)
	Get(ctx context.Context, id uint64, opts *IssueGetOptions) (*Issue, error)
	Create(ctx context.Context, req *IssueCreateRequest) (*Issue, error)
	Update(ctx context.Context, id uint64, req *IssueUpdateRequest) error
	Delete(ctx context.Context, id uint64) error
	// AddWatcher subscribes a user to issue notifications.
	AddWatcher(ctx context.Context, issueID, userID uint64) error
	// RemoveWatcher unsubscribes a user from issue notifications.
	RemoveWatcher(ctx context.Context, issueID, userID uint64) error
}

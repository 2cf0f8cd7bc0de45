package redmine

import (
	"net/url"
	"time"
)

// Logger interface for logging. Diagnostics are advisory and never affect
// returned values or errors.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a redmine.Client.
//
// BaseURL and APIKey are required. Per-request timeouts should generally
// be controlled via the context passed to client methods; HTTPTimeout is a
// transport-level backstop. Retries are off by default and can be enabled
// via RetryMax; the core never retries on its own.
type Config struct {
	// BaseURL is the absolute URL of the Redmine instance, optionally with
	// a path prefix (e.g. "https://redmine.example.com/redmine/").
	BaseURL string
	// APIKey is the Redmine API key, sent as the x-redmine-api-key header
	// on every request. It never appears in logs or error messages.
	APIKey string
	// ImpersonateUserID makes all calls on behalf of the given user via
	// the X-Redmine-Switch-User header. Requires admin privileges on the
	// API key. Zero means no impersonation.
	ImpersonateUserID uint64
	// HTTPTimeout is the transport-level timeout. Zero means the default.
	HTTPTimeout time.Duration
	// RetryMax enables transport-level retries for transient failures
	// when greater than zero.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug enables response-body logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// CoreClients provides access to the central project-management resources.
type CoreClients interface {
	Issues() IssuesClient
	Projects() ProjectsClient
	Users() UsersClient
	Groups() GroupsClient
}

// TrackingClients provides access to time tracking and planning resources.
type TrackingClients interface {
	TimeEntries() TimeEntriesClient
	Versions() VersionsClient
	IssueCategories() IssueCategoriesClient
	IssueRelations() IssueRelationsClient
	Memberships() MembershipsClient
}

// ContentClients provides access to content and document resources.
type ContentClients interface {
	News() NewsClient
	WikiPages() WikiPagesClient
	Attachments() AttachmentsClient
	Uploads() UploadsClient
	Files() FilesClient
	Search() SearchClient
}

// MetadataClients provides access to the mostly-static configuration
// resources of an instance.
type MetadataClients interface {
	IssueStatuses() IssueStatusesClient
	Trackers() TrackersClient
	Roles() RolesClient
	Enumerations() EnumerationsClient
	Queries() QueriesClient
	CustomFields() CustomFieldsClient
}

// Client is the long-lived handle binding a base URL, an API key, an
// optional impersonation identity, and a transport. Create one per
// Redmine instance and reuse it; concurrent calls are safe as long as the
// impersonation identity is not mutated concurrently.
type Client interface {
	CoreClients
	TrackingClients
	ContentClients
	MetadataClients

	// Requester exposes the low-level dispatch operation so callers can
	// define endpoints this package does not cover.
	Requester

	// Impersonate makes all subsequent calls on behalf of the given user.
	Impersonate(userID uint64)
	// ClearImpersonation reverts Impersonate.
	ClearImpersonation()

	// IssueURL returns the browser URL for an issue. Client-side only.
	IssueURL(issueID uint64) (*url.URL, error)
}

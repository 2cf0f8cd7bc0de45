// Package client implements the redmine resource client interfaces on top
// of the low-level HTTP client.
package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/redmine-go/redmine/internal/constants"
	"github.com/redmine-go/redmine/internal/http"
	"github.com/redmine-go/redmine/pkg/redmine"
)

// Client implements the redmine.Client interface.
type Client struct {
	httpClient *http.Client
	logger     redmine.Logger

	// Resource clients
	issues          redmine.IssuesClient
	projects        redmine.ProjectsClient
	users           redmine.UsersClient
	groups          redmine.GroupsClient
	timeEntries     redmine.TimeEntriesClient
	versions        redmine.VersionsClient
	issueCategories redmine.IssueCategoriesClient
	issueRelations  redmine.IssueRelationsClient
	memberships     redmine.MembershipsClient
	news            redmine.NewsClient
	wikiPages       redmine.WikiPagesClient
	attachments     redmine.AttachmentsClient
	uploads         redmine.UploadsClient
	files           redmine.FilesClient
	search          redmine.SearchClient
	issueStatuses   redmine.IssueStatusesClient
	trackers        redmine.TrackersClient
	roles           redmine.RolesClient
	enumerations    redmine.EnumerationsClient
	queries         redmine.QueriesClient
	customFields    redmine.CustomFieldsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *redmine.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.ImpersonateUserID > 0 {
		httpOpts = append(httpOpts, http.WithImpersonation(config.ImpersonateUserID))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Redmine API client.
func New(config *redmine.Config) (*Client, error) {
	if config == nil {
		return nil, redmine.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, redmine.ErrBaseURLRequired
	}

	if config.APIKey == "" {
		return nil, redmine.ErrAPIKeyRequired
	}

	httpClient, err := http.NewClient(config.BaseURL, config.APIKey, createHTTPClientOptions(config)...)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP client: %w", err)
	}

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Rest implements redmine.Requester by delegating to the HTTP client.
func (c *Client) Rest(ctx context.Context, method, path string, params *redmine.QueryParams, body *redmine.RequestBody) (int, []byte, error) {
	return c.httpClient.Rest(ctx, method, path, params, body)
}

// Impersonate implements redmine.Client.Impersonate.
func (c *Client) Impersonate(userID uint64) {
	c.httpClient.SetImpersonation(userID)
}

// ClearImpersonation implements redmine.Client.ClearImpersonation.
func (c *Client) ClearImpersonation() {
	c.httpClient.ClearImpersonation()
}

// IssueURL implements redmine.Client.IssueURL.
func (c *Client) IssueURL(issueID uint64) (*url.URL, error) {
	target, err := c.httpClient.BaseURL().Parse(fmt.Sprintf("issues/%d", issueID))
	if err != nil {
		return nil, &redmine.URLParseError{Value: fmt.Sprintf("issues/%d", issueID), Err: err}
	}

	return target, nil
}

// Resource client accessors

// Issues implements redmine.Client.Issues.
func (c *Client) Issues() redmine.IssuesClient {
	return c.issues
}

// Projects implements redmine.Client.Projects.
func (c *Client) Projects() redmine.ProjectsClient {
	return c.projects
}

// Users implements redmine.Client.Users.
func (c *Client) Users() redmine.UsersClient {
	return c.users
}

// Groups implements redmine.Client.Groups.
func (c *Client) Groups() redmine.GroupsClient {
	return c.groups
}

// TimeEntries implements redmine.Client.TimeEntries.
func (c *Client) TimeEntries() redmine.TimeEntriesClient {
	return c.timeEntries
}

// Versions implements redmine.Client.Versions.
func (c *Client) Versions() redmine.VersionsClient {
	return c.versions
}

// IssueCategories implements redmine.Client.IssueCategories.
func (c *Client) IssueCategories() redmine.IssueCategoriesClient {
	return c.issueCategories
}

// IssueRelations implements redmine.Client.IssueRelations.
func (c *Client) IssueRelations() redmine.IssueRelationsClient {
	return c.issueRelations
}

// Memberships implements redmine.Client.Memberships.
func (c *Client) Memberships() redmine.MembershipsClient {
	return c.memberships
}

// News implements redmine.Client.News.
func (c *Client) News() redmine.NewsClient {
	return c.news
}

// WikiPages implements redmine.Client.WikiPages.
func (c *Client) WikiPages() redmine.WikiPagesClient {
	return c.wikiPages
}

// Attachments implements redmine.Client.Attachments.
func (c *Client) Attachments() redmine.AttachmentsClient {
	return c.attachments
}

// Uploads implements redmine.Client.Uploads.
func (c *Client) Uploads() redmine.UploadsClient {
	return c.uploads
}

// Files implements redmine.Client.Files.
func (c *Client) Files() redmine.FilesClient {
	return c.files
}

// Search implements redmine.Client.Search.
func (c *Client) Search() redmine.SearchClient {
	return c.search
}

// IssueStatuses implements redmine.Client.IssueStatuses.
func (c *Client) IssueStatuses() redmine.IssueStatusesClient {
	return c.issueStatuses
}

// Trackers implements redmine.Client.Trackers.
func (c *Client) Trackers() redmine.TrackersClient {
	return c.trackers
}

// Roles implements redmine.Client.Roles.
func (c *Client) Roles() redmine.RolesClient {
	return c.roles
}

// Enumerations implements redmine.Client.Enumerations.
func (c *Client) Enumerations() redmine.EnumerationsClient {
	return c.enumerations
}

// Queries implements redmine.Client.Queries.
func (c *Client) Queries() redmine.QueriesClient {
	return c.queries
}

// CustomFields implements redmine.Client.CustomFields.
func (c *Client) CustomFields() redmine.CustomFieldsClient {
	return c.customFields
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.issues = NewIssuesClient(c)
	c.projects = NewProjectsClient(c)
	c.users = NewUsersClient(c)
	c.groups = NewGroupsClient(c)
	c.timeEntries = NewTimeEntriesClient(c)
	c.versions = NewVersionsClient(c)
	c.issueCategories = NewIssueCategoriesClient(c)
	c.issueRelations = NewIssueRelationsClient(c)
	c.memberships = NewMembershipsClient(c)
	c.news = NewNewsClient(c)
	c.wikiPages = NewWikiPagesClient(c)
	c.attachments = NewAttachmentsClient(c)
	c.uploads = NewUploadsClient(c)
	c.files = NewFilesClient(c)
	c.search = NewSearchClient(c)
	c.issueStatuses = NewIssueStatusesClient(c)
	c.trackers = NewTrackersClient(c)
	c.roles = NewRolesClient(c)
	c.enumerations = NewEnumerationsClient(c)
	c.queries = NewQueriesClient(c)
	c.customFields = NewCustomFieldsClient(c)
}

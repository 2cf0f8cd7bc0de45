package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// IssueStatusesClient implements redmine.IssueStatusesClient.
type IssueStatusesClient struct {
	requester redmine.Requester
}

// NewIssueStatusesClient creates a new issue statuses client.
func NewIssueStatusesClient(requester redmine.Requester) *IssueStatusesClient {
	return &IssueStatusesClient{requester: requester}
}

// List implements redmine.IssueStatusesClient.List.
func (c *IssueStatusesClient) List(ctx context.Context) ([]redmine.IssueStatus, error) {
	wrapper, err := redmine.Object[issueStatusesWrapper](ctx, c.requester, getObject("issue_statuses.json", nil))
	if err != nil {
		return nil, fmt.Errorf("listing issue statuses: %w", err)
	}

	return wrapper.IssueStatuses, nil
}

// TrackersClient implements redmine.TrackersClient.
type TrackersClient struct {
	requester redmine.Requester
}

// NewTrackersClient creates a new trackers client.
func NewTrackersClient(requester redmine.Requester) *TrackersClient {
	return &TrackersClient{requester: requester}
}

// List implements redmine.TrackersClient.List.
func (c *TrackersClient) List(ctx context.Context) ([]redmine.Tracker, error) {
	wrapper, err := redmine.Object[trackersWrapper](ctx, c.requester, getObject("trackers.json", nil))
	if err != nil {
		return nil, fmt.Errorf("listing trackers: %w", err)
	}

	return wrapper.Trackers, nil
}

// RolesClient implements redmine.RolesClient.
type RolesClient struct {
	requester redmine.Requester
}

// NewRolesClient creates a new roles client.
func NewRolesClient(requester redmine.Requester) *RolesClient {
	return &RolesClient{requester: requester}
}

// List implements redmine.RolesClient.List.
func (c *RolesClient) List(ctx context.Context) ([]redmine.Role, error) {
	wrapper, err := redmine.Object[rolesWrapper](ctx, c.requester, getObject("roles.json", nil))
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}

	return wrapper.Roles, nil
}

// Get implements redmine.RolesClient.Get.
func (c *RolesClient) Get(ctx context.Context, id uint64) (*redmine.Role, error) {
	wrapper, err := redmine.Object[roleWrapper](ctx, c.requester, getObject(fmt.Sprintf("roles/%d.json", id), nil))
	if err != nil {
		return nil, fmt.Errorf("getting role: %w", err)
	}

	return &wrapper.Role, nil
}

// EnumerationsClient implements redmine.EnumerationsClient.
type EnumerationsClient struct {
	requester redmine.Requester
}

// NewEnumerationsClient creates a new enumerations client.
func NewEnumerationsClient(requester redmine.Requester) *EnumerationsClient {
	return &EnumerationsClient{requester: requester}
}

func (c *EnumerationsClient) list(ctx context.Context, kind string) ([]redmine.Enumeration, error) {
	path := fmt.Sprintf("enumerations/%s.json", kind)

	wrapper, err := redmine.Object[enumerationsWrapper](ctx, c.requester, getObject(path, nil))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", kind, err)
	}

	values, ok := (*wrapper)[kind]
	if !ok {
		return nil, &redmine.PaginationKeyMissingError{Key: kind}
	}

	return values, nil
}

// ListIssuePriorities implements redmine.EnumerationsClient.ListIssuePriorities.
func (c *EnumerationsClient) ListIssuePriorities(ctx context.Context) ([]redmine.Enumeration, error) {
	return c.list(ctx, "issue_priorities")
}

// ListTimeEntryActivities implements redmine.EnumerationsClient.ListTimeEntryActivities.
func (c *EnumerationsClient) ListTimeEntryActivities(ctx context.Context) ([]redmine.Enumeration, error) {
	return c.list(ctx, "time_entry_activities")
}

// ListDocumentCategories implements redmine.EnumerationsClient.ListDocumentCategories.
func (c *EnumerationsClient) ListDocumentCategories(ctx context.Context) ([]redmine.Enumeration, error) {
	return c.list(ctx, "document_categories")
}

// QueriesClient implements redmine.QueriesClient.
type QueriesClient struct {
	requester redmine.Requester
}

// NewQueriesClient creates a new queries client.
func NewQueriesClient(requester redmine.Requester) *QueriesClient {
	return &QueriesClient{requester: requester}
}

// List implements redmine.QueriesClient.List.
func (c *QueriesClient) List(ctx context.Context) ([]redmine.Query, error) {
	queries, err := redmine.AllPages[redmine.Query](ctx, c.requester, getPaged("queries.json", "queries", nil))
	if err != nil {
		return nil, fmt.Errorf("listing queries: %w", err)
	}

	return queries, nil
}

// ListPage implements redmine.QueriesClient.ListPage.
func (c *QueriesClient) ListPage(ctx context.Context, offset, limit int) (*redmine.ResponsePage[redmine.Query], error) {
	page, err := redmine.Page[redmine.Query](ctx, c.requester, getPaged("queries.json", "queries", nil), offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing queries: %w", err)
	}

	return page, nil
}

// CustomFieldsClient implements redmine.CustomFieldsClient.
type CustomFieldsClient struct {
	requester redmine.Requester
}

// NewCustomFieldsClient creates a new custom fields client.
func NewCustomFieldsClient(requester redmine.Requester) *CustomFieldsClient {
	return &CustomFieldsClient{requester: requester}
}

// List implements redmine.CustomFieldsClient.List.
func (c *CustomFieldsClient) List(ctx context.Context) ([]redmine.CustomFieldDefinition, error) {
	wrapper, err := redmine.Object[customFieldsWrapper](ctx, c.requester, getObject("custom_fields.json", nil))
	if err != nil {
		return nil, fmt.Errorf("listing custom fields: %w", err)
	}

	return wrapper.CustomFields, nil
}

type issueStatusesWrapper struct {
	IssueStatuses []redmine.IssueStatus `json:"issue_statuses"`
}

type trackersWrapper struct {
	Trackers []redmine.Tracker `json:"trackers"`
}

type roleWrapper struct {
	Role redmine.Role `json:"role"`
}

type rolesWrapper struct {
	Roles []redmine.Role `json:"roles"`
}

// enumerationsWrapper keys the response by the enumeration kind, e.g.
// {"issue_priorities": [...]}.
type enumerationsWrapper map[string][]redmine.Enumeration

type customFieldsWrapper struct {
	CustomFields []redmine.CustomFieldDefinition `json:"custom_fields"`
}

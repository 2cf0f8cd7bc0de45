package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// TimeEntriesClient implements redmine.TimeEntriesClient.
type TimeEntriesClient struct {
	requester redmine.Requester
}

// NewTimeEntriesClient creates a new time entries client.
func NewTimeEntriesClient(requester redmine.Requester) *TimeEntriesClient {
	return &TimeEntriesClient{requester: requester}
}

func timeEntriesListParams(opts *redmine.TimeEntriesListOptions) *redmine.QueryParams {
	params := redmine.NewQueryParams()
	if opts == nil {
		return params
	}

	params.PushOpt("project_id", redmine.OptString(opts.ProjectID)).
		PushOpt("issue_id", redmine.OptUint(opts.IssueID)).
		PushOpt("user_id", redmine.OptUint(opts.UserID))

	if opts.SpentOn != nil {
		params.Push("spent_on", redmine.DateParam(opts.SpentOn.Time))
	}

	if opts.From != nil {
		params.Push("from", redmine.DateParam(opts.From.Time))
	}

	if opts.To != nil {
		params.Push("to", redmine.DateParam(opts.To.Time))
	}

	return params
}

// List implements redmine.TimeEntriesClient.List.
func (c *TimeEntriesClient) List(ctx context.Context, opts *redmine.TimeEntriesListOptions) ([]redmine.TimeEntry, error) {
	entries, err := redmine.AllPages[redmine.TimeEntry](ctx, c.requester, getPaged("time_entries.json", "time_entries", timeEntriesListParams(opts)))
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}

	return entries, nil
}

// ListPage implements redmine.TimeEntriesClient.ListPage.
func (c *TimeEntriesClient) ListPage(ctx context.Context, opts *redmine.TimeEntriesListOptions, offset, limit int) (*redmine.ResponsePage[redmine.TimeEntry], error) {
	page, err := redmine.Page[redmine.TimeEntry](ctx, c.requester, getPaged("time_entries.json", "time_entries", timeEntriesListParams(opts)), offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}

	return page, nil
}

// Get implements redmine.TimeEntriesClient.Get.
func (c *TimeEntriesClient) Get(ctx context.Context, id uint64) (*redmine.TimeEntry, error) {
	wrapper, err := redmine.Object[timeEntryWrapper](ctx, c.requester, getObject(fmt.Sprintf("time_entries/%d.json", id), nil))
	if err != nil {
		return nil, fmt.Errorf("getting time entry: %w", err)
	}

	return &wrapper.TimeEntry, nil
}

// Create implements redmine.TimeEntriesClient.Create.
func (c *TimeEntriesClient) Create(ctx context.Context, req *redmine.TimeEntryCreateRequest) (*redmine.TimeEntry, error) {
	wrapper, err := redmine.Object[timeEntryWrapper](ctx, c.requester, postObject("time_entries.json", timeEntryCreateWrapper{TimeEntry: req}))
	if err != nil {
		return nil, fmt.Errorf("creating time entry: %w", err)
	}

	return &wrapper.TimeEntry, nil
}

// Update implements redmine.TimeEntriesClient.Update.
func (c *TimeEntriesClient) Update(ctx context.Context, id uint64, req *redmine.TimeEntryUpdateRequest) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, putRaw(fmt.Sprintf("time_entries/%d.json", id), timeEntryUpdateWrapper{TimeEntry: req}))
	if err != nil {
		return fmt.Errorf("updating time entry: %w", err)
	}

	return nil
}

// Delete implements redmine.TimeEntriesClient.Delete.
func (c *TimeEntriesClient) Delete(ctx context.Context, id uint64) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, deleteRaw(fmt.Sprintf("time_entries/%d.json", id), nil))
	if err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}

	return nil
}

type timeEntryWrapper struct {
	TimeEntry redmine.TimeEntry `json:"time_entry"`
}

type timeEntryCreateWrapper struct {
	TimeEntry *redmine.TimeEntryCreateRequest `json:"time_entry"`
}

type timeEntryUpdateWrapper struct {
	TimeEntry *redmine.TimeEntryUpdateRequest `json:"time_entry"`
}

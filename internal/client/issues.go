package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// IssuesClient implements redmine.IssuesClient.
type IssuesClient struct {
	requester redmine.Requester
}

// NewIssuesClient creates a new issues client.
func NewIssuesClient(requester redmine.Requester) *IssuesClient {
	return &IssuesClient{requester: requester}
}

func issuesListParams(opts *redmine.IssuesListOptions) *redmine.QueryParams {
	params := redmine.NewQueryParams()
	if opts == nil {
		return params
	}

	params.PushOpt("project_id", redmine.OptString(opts.ProjectID)).
		PushOpt("subproject_id", redmine.OptString(opts.SubprojectID)).
		PushOpt("tracker_id", redmine.OptUint(opts.TrackerID)).
		PushOpt("status_id", redmine.OptString(opts.StatusID)).
		PushOpt("assigned_to_id", redmine.OptString(opts.AssignedToID)).
		PushOpt("author_id", redmine.OptUint(opts.AuthorID)).
		PushOpt("priority_id", redmine.OptUint(opts.PriorityID)).
		PushOpt("issue_id", redmine.UintList(opts.IssueIDs)).
		PushOpt("parent_id", redmine.OptUint(opts.ParentID)).
		PushOpt("created_on", redmine.OptString(opts.CreatedOn)).
		PushOpt("updated_on", redmine.OptString(opts.UpdatedOn)).
		PushOpt("sort", redmine.OptString(opts.Sort))

	return params
}

// List implements redmine.IssuesClient.List.
func (c *IssuesClient) List(ctx context.Context, opts *redmine.IssuesListOptions) ([]redmine.Issue, error) {
	issues, err := redmine.AllPages[redmine.Issue](ctx, c.requester, getPaged("issues.json", "issues", issuesListParams(opts)))
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}

	return issues, nil
}

// ListPage implements redmine.IssuesClient.ListPage.
func (c *IssuesClient) ListPage(ctx context.Context, opts *redmine.IssuesListOptions, offset, limit int) (*redmine.ResponsePage[redmine.Issue], error) {
	page, err := redmine.Page[redmine.Issue](ctx, c.requester, getPaged("issues.json", "issues", issuesListParams(opts)), offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}

	return page, nil
}

// Get implements redmine.IssuesClient.Get.
func (c *IssuesClient) Get(ctx context.Context, id uint64, opts *redmine.IssueGetOptions) (*redmine.Issue, error) {
	params := redmine.NewQueryParams()

	if opts != nil && len(opts.Include) > 0 {
		include := make([]string, 0, len(opts.Include))
		for _, inc := range opts.Include {
			include = append(include, string(inc))
		}

		params.Push("include", redmine.StringList(include))
	}

	wrapper, err := redmine.Object[issueWrapper](ctx, c.requester, getObject(fmt.Sprintf("issues/%d.json", id), params))
	if err != nil {
		return nil, fmt.Errorf("getting issue: %w", err)
	}

	return &wrapper.Issue, nil
}

// Create implements redmine.IssuesClient.Create.
func (c *IssuesClient) Create(ctx context.Context, req *redmine.IssueCreateRequest) (*redmine.Issue, error) {
	wrapper, err := redmine.Object[issueWrapper](ctx, c.requester, postObject("issues.json", issueCreateWrapper{Issue: req}))
	if err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}

	return &wrapper.Issue, nil
}

// Update implements redmine.IssuesClient.Update.
func (c *IssuesClient) Update(ctx context.Context, id uint64, req *redmine.IssueUpdateRequest) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, putRaw(fmt.Sprintf("issues/%d.json", id), issueUpdateWrapper{Issue: req}))
	if err != nil {
		return fmt.Errorf("updating issue: %w", err)
	}

	return nil
}

// Delete implements redmine.IssuesClient.Delete.
func (c *IssuesClient) Delete(ctx context.Context, id uint64) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, deleteRaw(fmt.Sprintf("issues/%d.json", id), nil))
	if err != nil {
		return fmt.Errorf("deleting issue: %w", err)
	}

	return nil
}

// AddWatcher implements redmine.IssuesClient.AddWatcher.
func (c *IssuesClient) AddWatcher(ctx context.Context, issueID, userID uint64) error {
	payload := watcherWrapper{UserID: userID}

	err := redmine.IgnoreResponseBody(ctx, c.requester, postRaw(fmt.Sprintf("issues/%d/watchers.json", issueID), payload))
	if err != nil {
		return fmt.Errorf("adding watcher: %w", err)
	}

	return nil
}

// RemoveWatcher implements redmine.IssuesClient.RemoveWatcher.
func (c *IssuesClient) RemoveWatcher(ctx context.Context, issueID, userID uint64) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, deleteRaw(fmt.Sprintf("issues/%d/watchers/%d.json", issueID, userID), nil))
	if err != nil {
		return fmt.Errorf("removing watcher: %w", err)
	}

	return nil
}

type issueWrapper struct {
	Issue redmine.Issue `json:"issue"`
}

type issueCreateWrapper struct {
	Issue *redmine.IssueCreateRequest `json:"issue"`
}

type issueUpdateWrapper struct {
	Issue *redmine.IssueUpdateRequest `json:"issue"`
}

type watcherWrapper struct {
	UserID uint64 `json:"user_id"`
}

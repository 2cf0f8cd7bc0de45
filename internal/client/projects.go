package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// ProjectsClient implements redmine.ProjectsClient.
type ProjectsClient struct {
	requester redmine.Requester
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(requester redmine.Requester) *ProjectsClient {
	return &ProjectsClient{requester: requester}
}

func projectIncludeParams(include []redmine.ProjectInclude) *redmine.QueryParams {
	params := redmine.NewQueryParams()
	if len(include) == 0 {
		return params
	}

	names := make([]string, 0, len(include))
	for _, inc := range include {
		names = append(names, string(inc))
	}

	params.Push("include", redmine.StringList(names))

	return params
}

// List implements redmine.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, opts *redmine.ProjectsListOptions) ([]redmine.Project, error) {
	var include []redmine.ProjectInclude
	if opts != nil {
		include = opts.Include
	}

	projects, err := redmine.AllPages[redmine.Project](ctx, c.requester, getPaged("projects.json", "projects", projectIncludeParams(include)))
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	return projects, nil
}

// ListPage implements redmine.ProjectsClient.ListPage.
func (c *ProjectsClient) ListPage(ctx context.Context, opts *redmine.ProjectsListOptions, offset, limit int) (*redmine.ResponsePage[redmine.Project], error) {
	var include []redmine.ProjectInclude
	if opts != nil {
		include = opts.Include
	}

	page, err := redmine.Page[redmine.Project](ctx, c.requester, getPaged("projects.json", "projects", projectIncludeParams(include)), offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	return page, nil
}

// Get implements redmine.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, idOrIdentifier string, opts *redmine.ProjectGetOptions) (*redmine.Project, error) {
	var include []redmine.ProjectInclude
	if opts != nil {
		include = opts.Include
	}

	path := fmt.Sprintf("projects/%s.json", idOrIdentifier)

	wrapper, err := redmine.Object[projectWrapper](ctx, c.requester, getObject(path, projectIncludeParams(include)))
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	return &wrapper.Project, nil
}

// Create implements redmine.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, req *redmine.ProjectCreateRequest) (*redmine.Project, error) {
	wrapper, err := redmine.Object[projectWrapper](ctx, c.requester, postObject("projects.json", projectCreateWrapper{Project: req}))
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return &wrapper.Project, nil
}

// Update implements redmine.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, idOrIdentifier string, req *redmine.ProjectUpdateRequest) error {
	path := fmt.Sprintf("projects/%s.json", idOrIdentifier)

	err := redmine.IgnoreResponseBody(ctx, c.requester, putRaw(path, projectUpdateWrapper{Project: req}))
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}

	return nil
}

// Delete implements redmine.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, idOrIdentifier string) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, deleteRaw(fmt.Sprintf("projects/%s.json", idOrIdentifier), nil))
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}

// Archive implements redmine.ProjectsClient.Archive. Requires Redmine 5.0.
func (c *ProjectsClient) Archive(ctx context.Context, idOrIdentifier string) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, putRaw(fmt.Sprintf("projects/%s/archive.json", idOrIdentifier), nil))
	if err != nil {
		return fmt.Errorf("archiving project: %w", err)
	}

	return nil
}

// Unarchive implements redmine.ProjectsClient.Unarchive. Requires Redmine
// 5.0.
func (c *ProjectsClient) Unarchive(ctx context.Context, idOrIdentifier string) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, putRaw(fmt.Sprintf("projects/%s/unarchive.json", idOrIdentifier), nil))
	if err != nil {
		return fmt.Errorf("unarchiving project: %w", err)
	}

	return nil
}

type projectWrapper struct {
	Project redmine.Project `json:"project"`
}

type projectCreateWrapper struct {
	Project *redmine.ProjectCreateRequest `json:"project"`
}

type projectUpdateWrapper struct {
	Project *redmine.ProjectUpdateRequest `json:"project"`
}

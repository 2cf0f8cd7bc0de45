package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// FilesClient implements redmine.FilesClient.
type FilesClient struct {
	requester redmine.Requester
}

// NewFilesClient creates a new files client.
func NewFilesClient(requester redmine.Requester) *FilesClient {
	return &FilesClient{requester: requester}
}

// List implements redmine.FilesClient.List.
func (c *FilesClient) List(ctx context.Context, projectIDOrIdentifier string) ([]redmine.File, error) {
	path := fmt.Sprintf("projects/%s/files.json", projectIDOrIdentifier)

	wrapper, err := redmine.Object[filesWrapper](ctx, c.requester, getObject(path, nil))
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	return wrapper.Files, nil
}

// Create implements redmine.FilesClient.Create.
func (c *FilesClient) Create(ctx context.Context, projectIDOrIdentifier string, req *redmine.FileCreateRequest) error {
	path := fmt.Sprintf("projects/%s/files.json", projectIDOrIdentifier)

	err := redmine.IgnoreResponseBody(ctx, c.requester, postRaw(path, fileCreateWrapper{File: req}))
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	return nil
}

type filesWrapper struct {
	Files []redmine.File `json:"files"`
}

type fileCreateWrapper struct {
	File *redmine.FileCreateRequest `json:"file"`
}

package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// UploadsClient implements redmine.UploadsClient.
type UploadsClient struct {
	requester redmine.Requester
}

// NewUploadsClient creates a new uploads client.
func NewUploadsClient(requester redmine.Requester) *UploadsClient {
	return &UploadsClient{requester: requester}
}

// UploadFile implements redmine.UploadsClient.UploadFile.
func (c *UploadsClient) UploadFile(ctx context.Context, path string, opts *redmine.UploadOptions) (*redmine.Upload, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &redmine.UploadFileError{Path: path, Err: err}
	}

	filename := filepath.Base(path)
	if opts != nil && opts.Filename != nil {
		filename = *opts.Filename
	}

	return c.UploadBytes(ctx, filename, content)
}

// UploadBytes implements redmine.UploadsClient.UploadBytes.
func (c *UploadsClient) UploadBytes(ctx context.Context, filename string, content []byte) (*redmine.Upload, error) {
	params := redmine.NewQueryParams().Push("filename", redmine.String(filename))

	wrapper, err := redmine.Object[uploadWrapper](ctx, c.requester, postUpload("uploads.json", params, content))
	if err != nil {
		return nil, fmt.Errorf("uploading file: %w", err)
	}

	return &wrapper.Upload, nil
}

type uploadWrapper struct {
	Upload redmine.Upload `json:"upload"`
}

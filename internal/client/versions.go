package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// VersionsClient implements redmine.VersionsClient.
type VersionsClient struct {
	requester redmine.Requester
}

// NewVersionsClient creates a new versions client.
func NewVersionsClient(requester redmine.Requester) *VersionsClient {
	return &VersionsClient{requester: requester}
}

// List implements redmine.VersionsClient.List.
func (c *VersionsClient) List(ctx context.Context, projectIDOrIdentifier string) ([]redmine.Version, error) {
	path := fmt.Sprintf("projects/%s/versions.json", projectIDOrIdentifier)

	wrapper, err := redmine.Object[versionsWrapper](ctx, c.requester, getObject(path, nil))
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}

	return wrapper.Versions, nil
}

// Get implements redmine.VersionsClient.Get.
func (c *VersionsClient) Get(ctx context.Context, id uint64) (*redmine.Version, error) {
	wrapper, err := redmine.Object[versionWrapper](ctx, c.requester, getObject(fmt.Sprintf("versions/%d.json", id), nil))
	if err != nil {
		return nil, fmt.Errorf("getting version: %w", err)
	}

	return &wrapper.Version, nil
}

// Create implements redmine.VersionsClient.Create.
func (c *VersionsClient) Create(ctx context.Context, projectIDOrIdentifier string, req *redmine.VersionCreateRequest) (*redmine.Version, error) {
	path := fmt.Sprintf("projects/%s/versions.json", projectIDOrIdentifier)

	wrapper, err := redmine.Object[versionWrapper](ctx, c.requester, postObject(path, versionCreateWrapper{Version: req}))
	if err != nil {
		return nil, fmt.Errorf("creating version: %w", err)
	}

	return &wrapper.Version, nil
}

// Update implements redmine.VersionsClient.Update.
func (c *VersionsClient) Update(ctx context.Context, id uint64, req *redmine.VersionUpdateRequest) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, putRaw(fmt.Sprintf("versions/%d.json", id), versionUpdateWrapper{Version: req}))
	if err != nil {
		return fmt.Errorf("updating version: %w", err)
	}

	return nil
}

// Delete implements redmine.VersionsClient.Delete.
func (c *VersionsClient) Delete(ctx context.Context, id uint64) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, deleteRaw(fmt.Sprintf("versions/%d.json", id), nil))
	if err != nil {
		return fmt.Errorf("deleting version: %w", err)
	}

	return nil
}

type versionWrapper struct {
	Version redmine.Version `json:"version"`
}

type versionsWrapper struct {
	Versions []redmine.Version `json:"versions"`
}

type versionCreateWrapper struct {
	Version *redmine.VersionCreateRequest `json:"version"`
}

type versionUpdateWrapper struct {
	Version *redmine.VersionUpdateRequest `json:"version"`
}

package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// AttachmentsClient implements redmine.AttachmentsClient.
type AttachmentsClient struct {
	requester redmine.Requester
}

// NewAttachmentsClient creates a new attachments client.
func NewAttachmentsClient(requester redmine.Requester) *AttachmentsClient {
	return &AttachmentsClient{requester: requester}
}

// Get implements redmine.AttachmentsClient.Get.
func (c *AttachmentsClient) Get(ctx context.Context, id uint64) (*redmine.Attachment, error) {
	wrapper, err := redmine.Object[attachmentWrapper](ctx, c.requester, getObject(fmt.Sprintf("attachments/%d.json", id), nil))
	if err != nil {
		return nil, fmt.Errorf("getting attachment: %w", err)
	}

	return &wrapper.Attachment, nil
}

// Update implements redmine.AttachmentsClient.Update.
func (c *AttachmentsClient) Update(ctx context.Context, id uint64, req *redmine.AttachmentUpdateRequest) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, putRaw(fmt.Sprintf("attachments/%d.json", id), attachmentUpdateWrapper{Attachment: req}))
	if err != nil {
		return fmt.Errorf("updating attachment: %w", err)
	}

	return nil
}

// Delete implements redmine.AttachmentsClient.Delete.
func (c *AttachmentsClient) Delete(ctx context.Context, id uint64) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, deleteRaw(fmt.Sprintf("attachments/%d.json", id), nil))
	if err != nil {
		return fmt.Errorf("deleting attachment: %w", err)
	}

	return nil
}

type attachmentWrapper struct {
	Attachment redmine.Attachment `json:"attachment"`
}

type attachmentUpdateWrapper struct {
	Attachment *redmine.AttachmentUpdateRequest `json:"attachment"`
}

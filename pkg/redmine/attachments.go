package redmine

import "context"

// Attachment represents a file attached to an issue, wiki page, or other
// container.
type Attachment struct {
	ID          uint64     `json:"id"                    yaml:"id"`
	Filename    string     `json:"filename"              yaml:"filename"`
	Filesize    uint64     `json:"filesize"              yaml:"filesize"`
	ContentType string     `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	ContentURL  string     `json:"content_url,omitempty" yaml:"content_url,omitempty"`
	Author      IDName     `json:"author"                yaml:"author"`
	CreatedOn   *Timestamp `json:"created_on,omitempty"  yaml:"created_on,omitempty"`
}

// AttachmentUpdateRequest represents a request to update an attachment's
// metadata. Nil fields are left unchanged.
type AttachmentUpdateRequest struct {
	Filename    *string `json:"filename,omitempty"    yaml:"filename,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// AttachmentsClient provides access to the attachments resource.
type AttachmentsClient interface {
	Get(ctx context.Context, id uint64) (*Attachment, error)
	Update(ctx context.Context, id uint64, req *AttachmentUpdateRequest) error
	Delete(ctx context.Context, id uint64) error
}

package redmine

import "context"

// WikiPage represents a wiki page of a project. The list endpoint returns
// only the index fields; Get fills in the text and attachments.
type WikiPage struct {
	Title     string     `json:"title"                yaml:"title"`
	Parent    *WikiPageParent `json:"parent,omitempty" yaml:"parent,omitempty"`
	Text      string     `json:"text,omitempty"       yaml:"text,omitempty"`
	Version   uint64     `json:"version"              yaml:"version"`
	Author    *IDName    `json:"author,omitempty"     yaml:"author,omitempty"`
	Comments  string     `json:"comments,omitempty"   yaml:"comments,omitempty"`
	CreatedOn *Timestamp `json:"created_on,omitempty" yaml:"created_on,omitempty"`
	UpdatedOn *Timestamp `json:"updated_on,omitempty" yaml:"updated_on,omitempty"`
	// Attachments is filled when the include parameter requests it.
	Attachments []Attachment `json:"attachments,omitempty" yaml:"attachments,omitempty"`
}

// WikiPageParent names the parent page within the same wiki.
type WikiPageParent struct {
	Title string `json:"title" yaml:"title"`
}

// WikiPageWriteRequest represents a request to create or update a wiki
// page. Creating and updating use the same PUT endpoint.
type WikiPageWriteRequest struct {
	Text string `json:"text" yaml:"text"`
	// Comments describes the change in the page history.
	Comments *string `json:"comments,omitempty" yaml:"comments,omitempty"`
	// Version must match the current version to detect conflicting
	// concurrent edits; omit to overwrite unconditionally.
	Version *uint64           `json:"version,omitempty" yaml:"version,omitempty"`
	Uploads []UploadReference `json:"uploads,omitempty" yaml:"uploads,omitempty"`
}

// WikiPagesClient provides access to the wiki pages of a project. The
// page index is not paginated by the service.
type WikiPagesClient interface {
	// List fetches the title index of a project's wiki.
	List(ctx context.Context, projectIDOrIdentifier string) ([]WikiPage, error)
	// Get fetches a page, optionally at a specific historic version.
	Get(ctx context.Context, projectIDOrIdentifier, title string, version *uint64) (*WikiPage, error)
	// Write creates the page or updates it if it exists.
	Write(ctx context.Context, projectIDOrIdentifier, title string, req *WikiPageWriteRequest) error
	Delete(ctx context.Context, projectIDOrIdentifier, title string) error
}

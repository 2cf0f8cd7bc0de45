package redmine

import "context"

// File represents a file published in a project's Files section.
type File struct {
	ID          uint64     `json:"id"                     yaml:"id"`
	Filename    string     `json:"filename"               yaml:"filename"`
	Filesize    uint64     `json:"filesize"               yaml:"filesize"`
	ContentType string     `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	Description string     `json:"description,omitempty"  yaml:"description,omitempty"`
	ContentURL  string     `json:"content_url,omitempty"  yaml:"content_url,omitempty"`
	Author      *IDName    `json:"author,omitempty"       yaml:"author,omitempty"`
	CreatedOn   *Timestamp `json:"created_on,omitempty"   yaml:"created_on,omitempty"`
	Version     *IDName    `json:"version,omitempty"      yaml:"version,omitempty"`
	Digest      string     `json:"digest,omitempty"       yaml:"digest,omitempty"`
	Downloads   uint64     `json:"downloads,omitempty"    yaml:"downloads,omitempty"`
}

// FileCreateRequest represents a request to publish an uploaded file in
// a project's Files section. Token comes from a prior upload.
type FileCreateRequest struct {
	Token       string  `json:"token"                  yaml:"token"`
	VersionID   *uint64 `json:"version_id,omitempty"   yaml:"version_id,omitempty"`
	Filename    *string `json:"filename,omitempty"     yaml:"filename,omitempty"`
	Description *string `json:"description,omitempty"  yaml:"description,omitempty"`
}

// FilesClient provides access to the project files resource. The file
// list is not paginated by the service.
type FilesClient interface {
	List(ctx context.Context, projectIDOrIdentifier string) ([]File, error)
	Create(ctx context.Context, projectIDOrIdentifier string, req *FileCreateRequest) error
}

package redmine

import "context"

// Upload is the token handed out by the uploads endpoint. Reference it in
// a subsequent create or update to attach the file.
type Upload struct {
	ID    uint64 `json:"id,omitempty" yaml:"id,omitempty"`
	Token string `json:"token"        yaml:"token"`
}

// UploadReference attaches a previously uploaded file to an object.
type UploadReference struct {
	Token       string `json:"token"                  yaml:"token"`
	Filename    string `json:"filename,omitempty"     yaml:"filename,omitempty"`
	Description string `json:"description,omitempty"  yaml:"description,omitempty"`
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`
}

// UploadOptions are the options for uploading a file.
type UploadOptions struct {
	// Filename overrides the name sent to the service; defaults to the
	// base name of the local path.
	Filename *string
}

// UploadsClient provides access to the uploads resource. The file is read
// fully into memory when the request is built; streaming uploads are not
// supported.
type UploadsClient interface {
	// UploadFile reads the file at path and registers it with the
	// service, returning the token to reference in a create or update.
	UploadFile(ctx context.Context, path string, opts *UploadOptions) (*Upload, error)
	// UploadBytes registers an in-memory payload under the given
	// filename.
	UploadBytes(ctx context.Context, filename string, content []byte) (*Upload, error)
}

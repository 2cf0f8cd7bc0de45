package redmine

import "context"

// News represents a news item posted in a project.
type News struct {
	ID          uint64     `json:"id"                    yaml:"id"`
	Project     IDName     `json:"project"               yaml:"project"`
	Author      IDName     `json:"author"                yaml:"author"`
	Title       string     `json:"title"                 yaml:"title"`
	Summary     string     `json:"summary,omitempty"     yaml:"summary,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedOn   *Timestamp `json:"created_on,omitempty"  yaml:"created_on,omitempty"`
}

// NewsListOptions are the optional filters for listing news.
type NewsListOptions struct {
	// ProjectID limits results to one project (numeric id or identifier).
	ProjectID *string
}

// NewsClient provides access to the news resource.
type NewsClient interface {
	List(ctx context.Context, opts *NewsListOptions) ([]News, error)
	ListPage(ctx context.Context, opts *NewsListOptions, offset, limit int) (*ResponsePage[News], error)
}

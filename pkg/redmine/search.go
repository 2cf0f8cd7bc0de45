package redmine

import "context"

// SearchResult represents one hit of a full-text search.
type SearchResult struct {
	ID          uint64     `json:"id"                    yaml:"id"`
	Title       string     `json:"title"                 yaml:"title"`
	Type        string     `json:"type"                  yaml:"type"`
	URL         string     `json:"url"                   yaml:"url"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Datetime    *Timestamp `json:"datetime,omitempty"    yaml:"datetime,omitempty"`
}

// SearchOptions narrows a full-text search. Nil fields are omitted from
// the query.
type SearchOptions struct {
	// Scope restricts the search to "all", "my_project" or "subprojects".
	Scope *string
	// TitlesOnly searches titles instead of full content.
	TitlesOnly *bool
	// OpenIssues restricts issue hits to open issues.
	OpenIssues *bool
	// Types limits hits to the named object types, e.g. "issues",
	// "wiki_pages", "news", "documents".
	Types []string
	// AllWords requires every query word to match.
	AllWords *bool
}

// SearchClient performs full-text searches across the instance or a
// single project.
type SearchClient interface {
	// Search fetches all hits for the query across all pages.
	Search(ctx context.Context, query string, opts *SearchOptions) ([]SearchResult, error)
	SearchPage(ctx context.Context, query string, opts *SearchOptions, offset, limit int) (*ResponsePage[SearchResult], error)
	// SearchProject limits the search to one project.
	SearchProject(ctx context.Context, projectIDOrIdentifier, query string, opts *SearchOptions) ([]SearchResult, error)
}

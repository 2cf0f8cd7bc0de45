package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// SearchClient implements redmine.SearchClient.
type SearchClient struct {
	requester redmine.Requester
}

// NewSearchClient creates a new search client.
func NewSearchClient(requester redmine.Requester) *SearchClient {
	return &SearchClient{requester: requester}
}

func searchParams(query string, opts *redmine.SearchOptions) *redmine.QueryParams {
	params := redmine.NewQueryParams().Push("q", redmine.String(query))
	if opts == nil {
		return params
	}

	params.PushOpt("scope", redmine.OptString(opts.Scope)).
		PushOpt("titles_only", redmine.OptBool(opts.TitlesOnly)).
		PushOpt("open_issues", redmine.OptBool(opts.OpenIssues)).
		PushOpt("all_words", redmine.OptBool(opts.AllWords))

	for _, t := range opts.Types {
		params.Push(t, redmine.Bool(true))
	}

	return params
}

// Search implements redmine.SearchClient.Search.
func (c *SearchClient) Search(ctx context.Context, query string, opts *redmine.SearchOptions) ([]redmine.SearchResult, error) {
	results, err := redmine.AllPages[redmine.SearchResult](ctx, c.requester, getPaged("search.json", "results", searchParams(query, opts)))
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	return results, nil
}

// SearchPage implements redmine.SearchClient.SearchPage.
func (c *SearchClient) SearchPage(ctx context.Context, query string, opts *redmine.SearchOptions, offset, limit int) (*redmine.ResponsePage[redmine.SearchResult], error) {
	page, err := redmine.Page[redmine.SearchResult](ctx, c.requester, getPaged("search.json", "results", searchParams(query, opts)), offset, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	return page, nil
}

// SearchProject implements redmine.SearchClient.SearchProject.
func (c *SearchClient) SearchProject(ctx context.Context, projectIDOrIdentifier, query string, opts *redmine.SearchOptions) ([]redmine.SearchResult, error) {
	path := fmt.Sprintf("projects/%s/search.json", projectIDOrIdentifier)

	results, err := redmine.AllPages[redmine.SearchResult](ctx, c.requester, getPaged(path, "results", searchParams(query, opts)))
	if err != nil {
		return nil, fmt.Errorf("searching project: %w", err)
	}

	return results, nil
}

package client

import (
	"context"
	"fmt"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// NewsClient implements redmine.NewsClient.
type NewsClient struct {
	requester redmine.Requester
}

// NewNewsClient creates a new news client.
func NewNewsClient(requester redmine.Requester) *NewsClient {
	return &NewsClient{requester: requester}
}

func newsPath(opts *redmine.NewsListOptions) string {
	if opts != nil && opts.ProjectID != nil {
		return fmt.Sprintf("projects/%s/news.json", *opts.ProjectID)
	}

	return "news.json"
}

// List implements redmine.NewsClient.List.
func (c *NewsClient) List(ctx context.Context, opts *redmine.NewsListOptions) ([]redmine.News, error) {
	news, err := redmine.AllPages[redmine.News](ctx, c.requester, getPaged(newsPath(opts), "news", nil))
	if err != nil {
		return nil, fmt.Errorf("listing news: %w", err)
	}

	return news, nil
}

// ListPage implements redmine.NewsClient.ListPage.
func (c *NewsClient) ListPage(ctx context.Context, opts *redmine.NewsListOptions, offset, limit int) (*redmine.ResponsePage[redmine.News], error) {
	page, err := redmine.Page[redmine.News](ctx, c.requester, getPaged(newsPath(opts), "news", nil), offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing news: %w", err)
	}

	return page, nil
}

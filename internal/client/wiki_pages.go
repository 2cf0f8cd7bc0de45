package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// WikiPagesClient implements redmine.WikiPagesClient.
type WikiPagesClient struct {
	requester redmine.Requester
}

// NewWikiPagesClient creates a new wiki pages client.
func NewWikiPagesClient(requester redmine.Requester) *WikiPagesClient {
	return &WikiPagesClient{requester: requester}
}

func wikiPagePath(projectIDOrIdentifier, title string) string {
	return fmt.Sprintf("projects/%s/wiki/%s.json", projectIDOrIdentifier, url.PathEscape(title))
}

// List implements redmine.WikiPagesClient.List.
func (c *WikiPagesClient) List(ctx context.Context, projectIDOrIdentifier string) ([]redmine.WikiPage, error) {
	path := fmt.Sprintf("projects/%s/wiki/index.json", projectIDOrIdentifier)

	wrapper, err := redmine.Object[wikiPagesWrapper](ctx, c.requester, getObject(path, nil))
	if err != nil {
		return nil, fmt.Errorf("listing wiki pages: %w", err)
	}

	return wrapper.WikiPages, nil
}

// Get implements redmine.WikiPagesClient.Get.
func (c *WikiPagesClient) Get(ctx context.Context, projectIDOrIdentifier, title string, version *uint64) (*redmine.WikiPage, error) {
	path := wikiPagePath(projectIDOrIdentifier, title)
	if version != nil {
		path = fmt.Sprintf("projects/%s/wiki/%s/%d.json", projectIDOrIdentifier, url.PathEscape(title), *version)
	}

	wrapper, err := redmine.Object[wikiPageWrapper](ctx, c.requester, getObject(path, nil))
	if err != nil {
		return nil, fmt.Errorf("getting wiki page: %w", err)
	}

	return &wrapper.WikiPage, nil
}

// Write implements redmine.WikiPagesClient.Write.
func (c *WikiPagesClient) Write(ctx context.Context, projectIDOrIdentifier, title string, req *redmine.WikiPageWriteRequest) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, putRaw(wikiPagePath(projectIDOrIdentifier, title), wikiPageWriteWrapper{WikiPage: req}))
	if err != nil {
		return fmt.Errorf("writing wiki page: %w", err)
	}

	return nil
}

// Delete implements redmine.WikiPagesClient.Delete.
func (c *WikiPagesClient) Delete(ctx context.Context, projectIDOrIdentifier, title string) error {
	err := redmine.IgnoreResponseBody(ctx, c.requester, deleteRaw(wikiPagePath(projectIDOrIdentifier, title), nil))
	if err != nil {
		return fmt.Errorf("deleting wiki page: %w", err)
	}

	return nil
}

type wikiPageWrapper struct {
	WikiPage redmine.WikiPage `json:"wiki_page"`
}

type wikiPagesWrapper struct {
	WikiPages []redmine.WikiPage `json:"wiki_pages"`
}

type wikiPageWriteWrapper struct {
	WikiPage *redmine.WikiPageWriteRequest `json:"wiki_page"`
}

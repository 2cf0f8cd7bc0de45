package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmine-go/redmine/pkg/redmine"
)

func TestWikiPagesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/projects/demo/wiki/index.json", request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"wiki_pages": [
			{"title": "Wiki", "version": 3},
			{"title": "Setup_Guide", "version": 1, "parent": {"title": "Wiki"}}
		]}`))
	}))
	defer server.Close()

	pages, err := newTestClient(t, server.URL).WikiPages().List(context.Background(), "demo")
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "Setup_Guide", pages[1].Title)
}

func TestWikiPagesClient_Get_EscapesTitle(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/projects/demo/wiki/Release%20Notes.json", request.URL.EscapedPath())

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"wiki_page": {"title": "Release Notes", "text": "h1. Releases", "version": 7}}`))
	}))
	defer server.Close()

	page, err := newTestClient(t, server.URL).WikiPages().Get(context.Background(), "demo", "Release Notes", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), page.Version)
	assert.Equal(t, "h1. Releases", page.Text)
}

func TestWikiPagesClient_Get_Version(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/projects/demo/wiki/Wiki/2.json", request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"wiki_page": {"title": "Wiki", "version": 2}}`))
	}))
	defer server.Close()

	version := uint64(2)

	page, err := newTestClient(t, server.URL).WikiPages().Get(context.Background(), "demo", "Wiki", &version)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), page.Version)
}

func TestWikiPagesClient_Write(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPut, request.Method)
		assert.Equal(t, "/projects/demo/wiki/Wiki.json", request.URL.Path)

		var body struct {
			WikiPage redmine.WikiPageWriteRequest `json:"wiki_page"`
		}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "h1. Updated", body.WikiPage.Text)

		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := newTestClient(t, server.URL).WikiPages().Write(context.Background(), "demo", "Wiki",
		&redmine.WikiPageWriteRequest{Text: "h1. Updated"})
	require.NoError(t, err)
}

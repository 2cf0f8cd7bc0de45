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

func TestProjectsClient_Get_ByIdentifier(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/projects/demo.json", request.URL.Path)
		assert.Equal(t, "trackers", request.URL.Query().Get("include"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"project": {"id": 1, "name": "Demo", "identifier": "demo", "trackers": [{"id": 1, "name": "Bug"}]}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	project, err := c.Projects().Get(context.Background(), "demo", &redmine.ProjectGetOptions{
		Include: []redmine.ProjectInclude{redmine.ProjectIncludeTrackers},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), project.ID)
	assert.Equal(t, "demo", project.Identifier)
	require.Len(t, project.Trackers, 1)
	assert.Equal(t, "Bug", project.Trackers[0].Name)
}

func TestProjectsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/projects.json", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body struct {
			Project redmine.ProjectCreateRequest `json:"project"`
		}

		err := json.NewDecoder(request.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "Demo", body.Project.Name)
		assert.Equal(t, "demo", body.Project.Identifier)

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"project": {"id": 1, "name": "Demo", "identifier": "demo"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	project, err := c.Projects().Create(context.Background(), &redmine.ProjectCreateRequest{
		Name:       "Demo",
		Identifier: "demo",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), project.ID)
}

func TestProjectsClient_Archive(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/projects/demo/archive.json", request.URL.Path)
		assert.Equal(t, "PUT", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	err := c.Projects().Archive(context.Background(), "demo")
	require.NoError(t, err)
}

func TestProjectsClient_Unarchive(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/projects/demo/unarchive.json", request.URL.Path)
		assert.Equal(t, "PUT", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	err := c.Projects().Unarchive(context.Background(), "demo")
	require.NoError(t, err)
}

func TestProjectsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/projects/demo.json", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	err := c.Projects().Delete(context.Background(), "demo")
	require.NoError(t, err)
}

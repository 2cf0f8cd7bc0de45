package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmine-go/redmine/pkg/redmine"
)

func TestIssueStatusesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/issue_statuses.json", request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"issue_statuses": [
			{"id": 1, "name": "New"},
			{"id": 5, "name": "Closed", "is_closed": true}
		]}`))
	}))
	defer server.Close()

	statuses, err := newTestClient(t, server.URL).IssueStatuses().List(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "New", statuses[0].Name)
	assert.True(t, statuses[1].IsClosed)
}

func TestEnumerationsClient_ListIssuePriorities(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/enumerations/issue_priorities.json", request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"issue_priorities": [
			{"id": 1, "name": "Low"},
			{"id": 2, "name": "Normal", "is_default": true},
			{"id": 3, "name": "High"}
		]}`))
	}))
	defer server.Close()

	priorities, err := newTestClient(t, server.URL).Enumerations().ListIssuePriorities(context.Background())
	require.NoError(t, err)
	require.Len(t, priorities, 3)
	assert.Equal(t, "Normal", priorities[1].Name)
	assert.True(t, priorities[1].IsDefault)
}

func TestEnumerationsClient_MissingKind(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"unexpected": []}`))
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Enumerations().ListTimeEntryActivities(context.Background())
	require.Error(t, err)

	var keyErr *redmine.PaginationKeyMissingError

	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "time_entry_activities", keyErr.Key)
}

func TestQueriesClient_ListPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/queries.json", request.URL.Path)
		assert.Equal(t, "offset=0&limit=25", request.URL.RawQuery)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{
			"queries": [{"id": 11, "name": "Open bugs", "is_public": true, "project_id": 3}],
			"total_count": 1, "offset": 0, "limit": 25
		}`))
	}))
	defer server.Close()

	page, err := newTestClient(t, server.URL).Queries().ListPage(context.Background(), 0, 25)
	require.NoError(t, err)
	require.Len(t, page.Values, 1)
	assert.Equal(t, "Open bugs", page.Values[0].Name)
	assert.Equal(t, uint64(1), page.TotalCount)
}

package redmine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// recordedCall captures one dispatch seen by the fake requester.
type recordedCall struct {
	method string
	path   string
	query  string
	body   *redmine.RequestBody
}

// fakeRequester replays canned responses in order and records every call.
type fakeRequester struct {
	responses []fakeResponse
	calls     []recordedCall
}

type fakeResponse struct {
	status int
	body   string
	err    error
}

func (f *fakeRequester) Rest(_ context.Context, method, path string, params *redmine.QueryParams, body *redmine.RequestBody) (int, []byte, error) {
	query, err := params.Encode()
	if err != nil {
		return 0, nil, err
	}

	f.calls = append(f.calls, recordedCall{method: method, path: path, query: query, body: body})

	if len(f.responses) == 0 {
		return 200, nil, nil
	}

	resp := f.responses[0]
	f.responses = f.responses[1:]

	return resp.status, []byte(resp.body), resp.err
}

type objectEndpoint struct {
	redmine.JSONResponse
	redmine.NotPaginated
	path   string
	params *redmine.QueryParams
}

func (e *objectEndpoint) Method() string { return "GET" }
func (e *objectEndpoint) Path() string   { return e.path }

func (e *objectEndpoint) QueryParams() *redmine.QueryParams {
	if e.params == nil {
		return redmine.NewQueryParams()
	}

	return e.params
}

func (e *objectEndpoint) Body() (*redmine.RequestBody, error) { return nil, nil }

type pagedEndpoint struct {
	redmine.JSONResponse
	path       string
	wrapperKey string
	params     *redmine.QueryParams
}

func (e *pagedEndpoint) Method() string { return "GET" }
func (e *pagedEndpoint) Path() string   { return e.path }

func (e *pagedEndpoint) QueryParams() *redmine.QueryParams {
	if e.params == nil {
		return redmine.NewQueryParams()
	}

	return e.params
}

func (e *pagedEndpoint) Body() (*redmine.RequestBody, error) { return nil, nil }
func (e *pagedEndpoint) ResponseWrapperKey() string          { return e.wrapperKey }

// conflictedEndpoint claims both pagination capabilities at once.
type conflictedEndpoint struct {
	pagedEndpoint
	redmine.NotPaginated
}

type testRecord struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func TestObject(t *testing.T) {
	t.Parallel()

	t.Run("decodes response body", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: `{"id": 5, "name": "alice"}`},
		}}

		record, err := redmine.Object[testRecord](context.Background(), requester, &objectEndpoint{path: "users/5.json"})
		require.NoError(t, err)
		assert.Equal(t, uint64(5), record.ID)
		assert.Equal(t, "alice", record.Name)

		require.Len(t, requester.calls, 1)
		assert.Equal(t, "GET", requester.calls[0].method)
		assert.Equal(t, "users/5.json", requester.calls[0].path)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 204, body: ""},
		}}

		_, err := redmine.Object[testRecord](context.Background(), requester, &objectEndpoint{path: "users/5.json"})

		var emptyErr *redmine.EmptyResponseBodyError
		require.ErrorAs(t, err, &emptyErr)
		assert.Equal(t, 204, emptyErr.Status)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: `<html>`},
		}}

		_, err := redmine.Object[testRecord](context.Background(), requester, &objectEndpoint{path: "users/5.json"})

		var decodeErr *redmine.JSONDecodeError
		require.ErrorAs(t, err, &decodeErr)
	})
}

func TestPage(t *testing.T) {
	t.Parallel()

	t.Run("decodes one page", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: `{"total_count": 3, "offset": 0, "limit": 2, "records": [{"id": 1, "name": "a"}, {"id": 2, "name": "b"}]}`},
		}}

		page, err := redmine.Page[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"}, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), page.TotalCount)
		assert.Equal(t, uint64(0), page.Offset)
		assert.Equal(t, uint64(2), page.Limit)
		require.Len(t, page.Values, 2)
		assert.Equal(t, "a", page.Values[0].Name)
	})

	t.Run("offset and limit appended after endpoint params", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: `{"total_count": 0, "offset": 25, "limit": 5, "records": []}`},
		}}

		params := redmine.NewQueryParams().Push("project_id", redmine.Uint(1))
		endpoint := &pagedEndpoint{path: "records.json", wrapperKey: "records", params: params}

		_, err := redmine.Page[testRecord](context.Background(), requester, endpoint, 25, 5)
		require.NoError(t, err)

		require.Len(t, requester.calls, 1)
		assert.Equal(t, "project_id=1&offset=25&limit=5", requester.calls[0].query)

		// The endpoint's own params are untouched.
		assert.Equal(t, 1, endpoint.params.Len())
	})

	t.Run("missing pagination key", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: `{"total_count": 1, "offset": 0, "records": []}`},
		}}

		_, err := redmine.Page[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"}, 0, 25)

		var missingErr *redmine.PaginationKeyMissingError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, "limit", missingErr.Key)
	})

	t.Run("missing wrapper key", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: `{"total_count": 1, "offset": 0, "limit": 25}`},
		}}

		_, err := redmine.Page[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"}, 0, 25)

		var missingErr *redmine.PaginationKeyMissingError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, "records", missingErr.Key)
	})

	t.Run("pagination key wrong type", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: `{"total_count": "many", "offset": 0, "limit": 25, "records": []}`},
		}}

		_, err := redmine.Page[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"}, 0, 25)

		var typeErr *redmine.PaginationKeyTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "total_count", typeErr.Key)
	})

	t.Run("wrapper key not an array", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: `{"total_count": 1, "offset": 0, "limit": 25, "records": {"id": 1}}`},
		}}

		_, err := redmine.Page[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"}, 0, 25)

		var typeErr *redmine.PaginationKeyTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "records", typeErr.Key)
	})

	t.Run("non-object root", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: `[1, 2, 3]`},
		}}

		_, err := redmine.Page[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"}, 0, 25)

		var rootErr *redmine.NonObjectResponseBodyError
		require.ErrorAs(t, err, &rootErr)
		assert.Equal(t, 200, rootErr.Status)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: ""},
		}}

		_, err := redmine.Page[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"}, 0, 25)

		var emptyErr *redmine.EmptyResponseBodyError
		require.ErrorAs(t, err, &emptyErr)
	})
}

func TestEndpointConflictRejectedBeforeDispatch(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{}

	endpoint := &conflictedEndpoint{}
	endpoint.path = "records.json"
	endpoint.wrapperKey = "records"

	_, err := redmine.Page[testRecord](context.Background(), requester, endpoint, 0, 25)

	var conflictErr *redmine.EndpointConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "records.json", conflictErr.Path)
	assert.Empty(t, requester.calls)
}

func TestIgnoreResponseBody(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{responses: []fakeResponse{
		{status: 204, body: ""},
	}}

	endpoint := &objectEndpoint{path: "issues/9.json"}

	err := redmine.IgnoreResponseBody(context.Background(), requester, endpoint)
	require.NoError(t, err)
	require.Len(t, requester.calls, 1)
}

func TestCheckStatus(t *testing.T) {
	t.Parallel()

	assert.NoError(t, redmine.CheckStatus(200))
	assert.NoError(t, redmine.CheckStatus(204))
	assert.NoError(t, redmine.CheckStatus(302))

	err := redmine.CheckStatus(404)

	var httpErr *redmine.HTTPErrorResponse
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
}

package client

import (
	"encoding/json"

	"github.com/redmine-go/redmine/internal/constants"
	"github.com/redmine-go/redmine/pkg/redmine"
)

// baseEndpoint is the value behind every endpoint this package builds.
type baseEndpoint struct {
	method  string
	path    string
	params  *redmine.QueryParams
	body    *redmine.RequestBody
	bodyErr error
}

func (e *baseEndpoint) Method() string { return e.method }
func (e *baseEndpoint) Path() string   { return e.path }

func (e *baseEndpoint) QueryParams() *redmine.QueryParams {
	if e.params == nil {
		return redmine.NewQueryParams()
	}

	return e.params
}

func (e *baseEndpoint) Body() (*redmine.RequestBody, error) {
	if e.bodyErr != nil {
		return nil, e.bodyErr
	}

	return e.body, nil
}

// objectEndpoint is a JSON endpoint returning a single wrapped object.
type objectEndpoint struct {
	baseEndpoint
	redmine.JSONResponse
	redmine.NotPaginated
}

// pagedEndpoint is a JSON endpoint returning offset/limit pages nested
// under wrapperKey.
type pagedEndpoint struct {
	baseEndpoint
	redmine.JSONResponse
	wrapperKey string
}

func (e *pagedEndpoint) ResponseWrapperKey() string { return e.wrapperKey }

// rawEndpoint carries no response-decoding capability; use it with
// IgnoreResponseBody.
type rawEndpoint struct {
	baseEndpoint
}

func getObject(path string, params *redmine.QueryParams) *objectEndpoint {
	endpoint := &objectEndpoint{}
	endpoint.method = "GET"
	endpoint.path = path
	endpoint.params = params

	return endpoint
}

func getPaged(path, wrapperKey string, params *redmine.QueryParams) *pagedEndpoint {
	endpoint := &pagedEndpoint{wrapperKey: wrapperKey}
	endpoint.method = "GET"
	endpoint.path = path
	endpoint.params = params

	return endpoint
}

func postObject(path string, payload interface{}) *objectEndpoint {
	endpoint := &objectEndpoint{}
	endpoint.method = "POST"
	endpoint.path = path
	endpoint.body, endpoint.bodyErr = jsonBody(payload)

	return endpoint
}

func postRaw(path string, payload interface{}) *rawEndpoint {
	endpoint := &rawEndpoint{}
	endpoint.method = "POST"
	endpoint.path = path

	if payload != nil {
		endpoint.body, endpoint.bodyErr = jsonBody(payload)
	}

	return endpoint
}

func postUpload(path string, params *redmine.QueryParams, content []byte) *objectEndpoint {
	endpoint := &objectEndpoint{}
	endpoint.method = "POST"
	endpoint.path = path
	endpoint.params = params
	endpoint.body = &redmine.RequestBody{
		ContentType: constants.ContentTypeOctetStream,
		Content:     content,
	}

	return endpoint
}

func putRaw(path string, payload interface{}) *rawEndpoint {
	endpoint := &rawEndpoint{}
	endpoint.method = "PUT"
	endpoint.path = path

	if payload != nil {
		endpoint.body, endpoint.bodyErr = jsonBody(payload)
	}

	return endpoint
}

func deleteRaw(path string, params *redmine.QueryParams) *rawEndpoint {
	endpoint := &rawEndpoint{}
	endpoint.method = "DELETE"
	endpoint.path = path
	endpoint.params = params

	return endpoint
}

// jsonBody marshals a request payload. Failures surface as BuildError
// before any request is sent.
func jsonBody(payload interface{}) (*redmine.RequestBody, error) {
	content, err := json.Marshal(payload)
	if err != nil {
		return nil, &redmine.BuildError{Err: err}
	}

	return &redmine.RequestBody{
		ContentType: constants.ContentTypeJSON,
		Content:     content,
	}, nil
}

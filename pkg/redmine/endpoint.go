package redmine

// RequestBody is a request payload with its content type. Bodies are built
// fully in memory at construction time; streaming uploads are not
// supported.
type RequestBody struct {
	ContentType string
	Content     []byte
}

// Endpoint describes one HTTP call to the Redmine API: the method, the
// path suffix joined to the client's base URL, the query parameters, and
// an optional request body. Endpoint values are immutable once built and
// short-lived; build one per call.
//
// Body may fail, e.g. when an upload endpoint reads a local file. A body
// failure short-circuits dispatch before any request is sent.
type Endpoint interface {
	Method() string
	Path() string
	QueryParams() *QueryParams
	Body() (*RequestBody, error)
}

// JSONResponseEndpoint marks an endpoint whose response body is valid JSON
// and can be decoded by Object, Page, or AllPages.
type JSONResponseEndpoint interface {
	Endpoint
	ReturnsJSONResponse()
}

// PageableEndpoint is a JSON endpoint whose response is paginated by
// offset/limit. ResponseWrapperKey names the JSON object field under which
// the array of records for one page is nested (e.g. "issues", "users").
type PageableEndpoint interface {
	JSONResponseEndpoint
	ResponseWrapperKey() string
}

// SingleObjectEndpoint is a JSON endpoint that rejects offset/limit.
// Object dispatch is restricted to this type, so requesting a single
// object from a pageable endpoint does not compile.
type SingleObjectEndpoint interface {
	JSONResponseEndpoint
	NoPagination()
}

// JSONResponse is embedded by endpoint values to claim the returns-json
// capability.
type JSONResponse struct{}

// ReturnsJSONResponse implements JSONResponseEndpoint.
func (JSONResponse) ReturnsJSONResponse() {}

// NotPaginated is embedded by endpoint values to claim the no-pagination
// capability. Mutually exclusive with implementing PageableEndpoint.
type NotPaginated struct{}

// NoPagination implements SingleObjectEndpoint.
func (NotPaginated) NoPagination() {}

// validateEndpoint rejects endpoints that claim both pageable and
// no-pagination. The dispatch signatures prevent most mis-dispatch at
// compile time; this catches a value implementing both markers before any
// I/O happens.
func validateEndpoint(ep Endpoint) error {
	_, pageable := ep.(interface{ ResponseWrapperKey() string })
	_, notPaginated := ep.(interface{ NoPagination() })

	if pageable && notPaginated {
		return &EndpointConflictError{Path: ep.Path()}
	}

	return nil
}

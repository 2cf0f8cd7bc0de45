package redmine

import (
	"errors"
	"fmt"
	"time"
)

// Static errors for guard conditions.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrAPIKeyRequired  = errors.New("API key is required")
	ErrNoMoreItems     = errors.New("no more items")
)

// TransportError wraps a failure in the HTTP transport: connect, TLS,
// timeout, or reading the response body. The API key is carried in a
// header, never in the URL, so the URL is safe to include here.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// URLParseError reports a base URL or path suffix that could not be parsed.
type URLParseError struct {
	Value string
	Err   error
}

func (e *URLParseError) Error() string {
	return fmt.Sprintf("parsing URL %q: %v", e.Value, e.Err)
}

func (e *URLParseError) Unwrap() error { return e.Err }

// ConfigError reports missing or malformed configuration input, e.g. an
// unset environment variable in FromEnv.
type ConfigError struct {
	Name string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error for %s: %v", e.Name, e.Err)
	}

	return fmt.Sprintf("configuration error: %s is required", e.Name)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// EmptyResponseBodyError reports a response with no body where one was
// required to decode.
type EmptyResponseBodyError struct {
	Status int
}

func (e *EmptyResponseBodyError) Error() string {
	return fmt.Sprintf("empty response body (HTTP status %d)", e.Status)
}

// NonObjectResponseBodyError reports a paginated response whose root is not
// a JSON object.
type NonObjectResponseBodyError struct {
	Status int
}

func (e *NonObjectResponseBodyError) Error() string {
	return fmt.Sprintf("response body is not a JSON object (HTTP status %d)", e.Status)
}

// PaginationKeyMissingError reports a paginated response missing one of
// total_count, offset, limit, or the endpoint's wrapper key.
type PaginationKeyMissingError struct {
	Key string
}

func (e *PaginationKeyMissingError) Error() string {
	return fmt.Sprintf("pagination key %q missing in response", e.Key)
}

// PaginationKeyTypeError reports a pagination key that is present but not a
// non-negative integer, or a wrapper key whose value is not an array.
type PaginationKeyTypeError struct {
	Key string
}

func (e *PaginationKeyTypeError) Error() string {
	return fmt.Sprintf("pagination key %q has the wrong type", e.Key)
}

// JSONDecodeError wraps a JSON parse or typed decode failure.
type JSONDecodeError struct {
	Err error
}

func (e *JSONDecodeError) Error() string {
	return fmt.Sprintf("decoding JSON response: %v", e.Err)
}

func (e *JSONDecodeError) Unwrap() error { return e.Err }

// BuildError wraps a failure to construct a request body before dispatch.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("building request body: %v", e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// UploadFileError reports a file backing an upload body that could not be
// opened or read.
type UploadFileError struct {
	Path string
	Err  error
}

func (e *UploadFileError) Error() string {
	return fmt.Sprintf("reading upload file %q: %v", e.Path, e.Err)
}

func (e *UploadFileError) Unwrap() error { return e.Err }

// HTTPErrorResponse reports a non-2xx status. The dispatcher never returns
// this on its own; CheckStatus converts a status for callers that want
// strict handling.
type HTTPErrorResponse struct {
	Status int
}

func (e *HTTPErrorResponse) Error() string {
	return fmt.Sprintf("HTTP error response (status %d)", e.Status)
}

// CheckStatus returns an HTTPErrorResponse when status is 4xx or 5xx and
// nil otherwise. Opt-in; see the package documentation.
func CheckStatus(status int) error {
	if status >= 400 {
		return &HTTPErrorResponse{Status: status}
	}

	return nil
}

// TimeParseError reports a date or timestamp string in a decoded object
// that could not be parsed.
type TimeParseError struct {
	Value string
	Err   error
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("parsing time value %q: %v", e.Value, e.Err)
}

func (e *TimeParseError) Unwrap() error { return e.Err }

// TimeFormatError reports a timestamp that cannot be represented in the
// wire format (RFC 3339 is limited to years 0000-9999).
type TimeFormatError struct {
	Value time.Time
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("timestamp with year %d cannot be formatted as RFC 3339", e.Value.Year())
}

// EndpointConflictError reports an endpoint that advertises both pageable
// and no-pagination capabilities. Dispatch rejects it before any I/O.
type EndpointConflictError struct {
	Path string
}

func (e *EndpointConflictError) Error() string {
	return fmt.Sprintf("endpoint %q claims both pageable and no-pagination", e.Path)
}

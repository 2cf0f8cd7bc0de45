package redmine

import (
	"context"
	"encoding/json"
	"errors"
)

// Requester is the low-level request dispatcher behind every public
// operation. It composes the URL, attaches headers and body, issues the
// call, and returns the numeric status plus the raw response bytes. HTTP
// status is not inspected there; the decoders decide what a status means.
type Requester interface {
	Rest(ctx context.Context, method, path string, params *QueryParams, body *RequestBody) (int, []byte, error)
}

// restEndpoint dispatches one endpoint through the Requester, with extra
// pagination pairs appended after the endpoint's own parameters so the
// later pair wins at the service.
func restEndpoint(ctx context.Context, r Requester, ep Endpoint, extra func(*QueryParams)) (int, []byte, error) {
	if err := validateEndpoint(ep); err != nil {
		return 0, nil, err
	}

	params := ep.QueryParams()
	if extra != nil {
		params = params.Clone()
		extra(params)
	}

	body, err := ep.Body()
	if err != nil {
		return 0, nil, err
	}

	return r.Rest(ctx, ep.Method(), ep.Path(), params, body)
}

// IgnoreResponseBody dispatches an endpoint and discards the response
// body. Use it for endpoints with no payload, typically deletes and
// side-effecting PUTs. Non-2xx statuses are not converted to errors; see
// CheckStatus for strict handling.
func IgnoreResponseBody(ctx context.Context, r Requester, ep Endpoint) error {
	_, _, err := restEndpoint(ctx, r, ep, nil)

	return err
}

// Object dispatches a non-paginated JSON endpoint and decodes the response
// body into T. An empty body yields EmptyResponseBodyError.
func Object[T any](ctx context.Context, r Requester, ep SingleObjectEndpoint) (*T, error) {
	status, body, err := restEndpoint(ctx, r, ep, nil)
	if err != nil {
		return nil, err
	}

	if len(body) == 0 {
		return nil, &EmptyResponseBodyError{Status: status}
	}

	var out T

	err = json.Unmarshal(body, &out)
	if err != nil {
		return nil, &JSONDecodeError{Err: err}
	}

	return &out, nil
}

// Page dispatches a pageable JSON endpoint once with the given offset and
// limit and decodes a single page. The pagination counters in the result
// are the values echoed by the service, not the requested ones.
func Page[T any](ctx context.Context, r Requester, ep PageableEndpoint, offset, limit int) (*ResponsePage[T], error) {
	status, body, err := restEndpoint(ctx, r, ep, func(params *QueryParams) {
		params.Push("offset", Int(int64(offset)))
		params.Push("limit", Int(int64(limit)))
	})
	if err != nil {
		return nil, err
	}

	return decodePage[T](status, body, ep.ResponseWrapperKey())
}

// decodePage interprets one paginated response body: a JSON object with
// total_count, offset, limit, and the records array under wrapperKey.
func decodePage[T any](status int, body []byte, wrapperKey string) (*ResponsePage[T], error) {
	if len(body) == 0 {
		return nil, &EmptyResponseBodyError{Status: status}
	}

	var root map[string]json.RawMessage

	err := json.Unmarshal(body, &root)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &NonObjectResponseBodyError{Status: status}
		}

		return nil, &JSONDecodeError{Err: err}
	}

	totalCount, err := paginationCounter(root, "total_count")
	if err != nil {
		return nil, err
	}

	offset, err := paginationCounter(root, "offset")
	if err != nil {
		return nil, err
	}

	limit, err := paginationCounter(root, "limit")
	if err != nil {
		return nil, err
	}

	wrapped, ok := root[wrapperKey]
	if !ok {
		return nil, &PaginationKeyMissingError{Key: wrapperKey}
	}

	var elements []json.RawMessage

	err = json.Unmarshal(wrapped, &elements)
	if err != nil {
		return nil, &PaginationKeyTypeError{Key: wrapperKey}
	}

	values := make([]T, 0, len(elements))

	for _, element := range elements {
		var value T

		err = json.Unmarshal(element, &value)
		if err != nil {
			return nil, &JSONDecodeError{Err: err}
		}

		values = append(values, value)
	}

	return &ResponsePage[T]{
		Values:     values,
		TotalCount: totalCount,
		Offset:     offset,
		Limit:      limit,
	}, nil
}

// paginationCounter extracts a non-negative integer pagination key.
func paginationCounter(root map[string]json.RawMessage, key string) (uint64, error) {
	raw, ok := root[key]
	if !ok {
		return 0, &PaginationKeyMissingError{Key: key}
	}

	var value uint64

	err := json.Unmarshal(raw, &value)
	if err != nil {
		return 0, &PaginationKeyTypeError{Key: key}
	}

	return value, nil
}

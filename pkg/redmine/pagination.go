package redmine

import (
	"context"
)

// DefaultLimit is the page size used by the all-pages surfaces. The
// Redmine API caps limit at 100 per request.
const DefaultLimit = 100

// ResponsePage is one page of a paginated response: the decoded records
// plus the pagination counters echoed by the service.
type ResponsePage[T any] struct {
	// Values holds the records of this page, in service order.
	Values []T
	// TotalCount is the number of records across all pages.
	TotalCount uint64
	// Offset is the zero-based offset echoed by the service.
	Offset uint64
	// Limit is the page size echoed by the service.
	Limit uint64
}

// last reports whether this is the final page. The service can return
// fewer than limit items on the last page; comparing against the echoed
// counters instead of the requested ones avoids an off-by-one against a
// moving dataset.
func (p *ResponsePage[T]) last() bool {
	return p.TotalCount < p.Offset+p.Limit
}

// AllPages dispatches a pageable endpoint repeatedly and returns all
// records in service order. Pages are requested from offset 0 in steps of
// DefaultLimit; the loop stops when the echoed counters say the dataset is
// exhausted. When total_count shrinks between pages (concurrent deletions
// on the service) the loop may terminate early; records from deleted pages
// are silently missed. The first error aborts the traversal.
func AllPages[T any](ctx context.Context, r Requester, ep PageableEndpoint) ([]T, error) {
	var all []T

	offset := 0

	for {
		page, err := Page[T](ctx, r, ep, offset, DefaultLimit)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Values...)

		if page.last() {
			return all, nil
		}

		offset += DefaultLimit
	}
}

// PageIterator yields the records of a pageable endpoint one at a time,
// fetching a page when its buffer is exhausted. It is single-threaded,
// finite, and not restartable.
type PageIterator[T any] struct {
	ctx       context.Context
	requester Requester
	endpoint  PageableEndpoint

	buffer []T
	index  int
	offset int
	done   bool
	err    error
}

// NewPageIterator creates an iterator over all records of ep.
func NewPageIterator[T any](ctx context.Context, r Requester, ep PageableEndpoint) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:       ctx,
		requester: r,
		endpoint:  ep,
	}
}

// fill fetches the next page when the buffer is exhausted and pages
// remain. done means the echoed counters said the last fetched page was
// the final one.
func (it *PageIterator[T]) fill() {
	if it.err != nil || it.done || it.index < len(it.buffer) {
		return
	}

	page, err := Page[T](it.ctx, it.requester, it.endpoint, it.offset, DefaultLimit)
	if err != nil {
		it.err = err

		return
	}

	it.buffer = page.Values
	it.index = 0
	it.offset += DefaultLimit

	// An empty non-final page would loop forever; treat it as final.
	if page.last() || len(page.Values) == 0 {
		it.done = true
	}
}

// HasNext reports whether Next will yield another record. It may perform
// an HTTP round-trip to find out.
func (it *PageIterator[T]) HasNext() bool {
	it.fill()

	return it.err == nil && it.index < len(it.buffer)
}

// Next returns the next record. After the last record, or after an error,
// it returns ErrNoMoreItems or the stored error respectively.
func (it *PageIterator[T]) Next() (*T, error) {
	it.fill()

	if it.err != nil {
		return nil, it.err
	}

	if it.index >= len(it.buffer) {
		return nil, ErrNoMoreItems
	}

	value := &it.buffer[it.index]
	it.index++

	return value, nil
}

// All drains the iterator and returns the remaining records.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		value, err := it.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, *value)
	}

	if it.err != nil {
		return nil, it.err
	}

	return all, nil
}

// ForEach applies fn to every remaining record. Iteration stops at the
// first error from the traversal or from fn.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		value, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(*value)
		if err != nil {
			return err
		}
	}

	return it.err
}

// StreamItem is one element of a Stream: a record or the error that ended
// the traversal.
type StreamItem[T any] struct {
	Value T
	Err   error
}

// Stream traverses all pages of a pageable endpoint in a goroutine and
// emits records on the returned channel. The channel is closed after the
// last record, after the first error (emitted as the final item), or when
// ctx is cancelled; cancellation drops the in-flight page.
func Stream[T any](ctx context.Context, r Requester, ep PageableEndpoint) <-chan StreamItem[T] {
	out := make(chan StreamItem[T])

	go func() {
		defer close(out)

		offset := 0

		for {
			page, err := Page[T](ctx, r, ep, offset, DefaultLimit)
			if err != nil {
				select {
				case out <- StreamItem[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			for _, value := range page.Values {
				select {
				case out <- StreamItem[T]{Value: value}:
				case <-ctx.Done():
					return
				}
			}

			if page.last() {
				return
			}

			offset += DefaultLimit
		}
	}()

	return out
}

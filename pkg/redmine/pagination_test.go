package redmine_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmine-go/redmine/pkg/redmine"
)

// pagedBody renders one pagination response with sequential record ids.
func pagedBody(totalCount, offset, limit, count int) string {
	body := fmt.Sprintf(`{"total_count": %d, "offset": %d, "limit": %d, "records": [`, totalCount, offset, limit)

	for i := range count {
		if i > 0 {
			body += ", "
		}

		body += fmt.Sprintf(`{"id": %d, "name": "r%d"}`, offset+i+1, offset+i+1)
	}

	return body + "]}"
}

func TestAllPages(t *testing.T) {
	t.Parallel()

	t.Run("traverses until counters say done", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: pagedBody(250, 0, 100, 100)},
			{status: 200, body: pagedBody(250, 100, 100, 100)},
			{status: 200, body: pagedBody(250, 200, 100, 50)},
		}}

		all, err := redmine.AllPages[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"})
		require.NoError(t, err)
		assert.Len(t, all, 250)
		assert.Equal(t, uint64(1), all[0].ID)
		assert.Equal(t, uint64(250), all[249].ID)

		require.Len(t, requester.calls, 3)
		assert.Equal(t, "offset=0&limit=100", requester.calls[0].query)
		assert.Equal(t, "offset=100&limit=100", requester.calls[1].query)
		assert.Equal(t, "offset=200&limit=100", requester.calls[2].query)
	})

	t.Run("single empty page", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: pagedBody(0, 0, 100, 0)},
		}}

		all, err := redmine.AllPages[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"})
		require.NoError(t, err)
		assert.Empty(t, all)
		assert.Len(t, requester.calls, 1)
	})

	t.Run("error aborts traversal", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: pagedBody(250, 0, 100, 100)},
			{status: 200, body: `{"total_count": 250, "offset": 100, "records": []}`},
		}}

		_, err := redmine.AllPages[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"})

		var missingErr *redmine.PaginationKeyMissingError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, "limit", missingErr.Key)
	})
}

func TestPageIterator(t *testing.T) {
	t.Parallel()

	t.Run("yields records across pages", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: pagedBody(150, 0, 100, 100)},
			{status: 200, body: pagedBody(150, 100, 100, 50)},
		}}

		it := redmine.NewPageIterator[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"})

		var ids []uint64

		for it.HasNext() {
			record, err := it.Next()
			require.NoError(t, err)

			ids = append(ids, record.ID)
		}

		assert.Len(t, ids, 150)
		assert.Equal(t, uint64(1), ids[0])
		assert.Equal(t, uint64(150), ids[149])
		assert.Len(t, requester.calls, 2)
	})

	t.Run("next after exhaustion", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: pagedBody(1, 0, 100, 1)},
		}}

		it := redmine.NewPageIterator[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"})

		_, err := it.Next()
		require.NoError(t, err)

		_, err = it.Next()
		require.ErrorIs(t, err, redmine.ErrNoMoreItems)
		assert.False(t, it.HasNext())
	})

	t.Run("empty dataset", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: pagedBody(0, 0, 100, 0)},
		}}

		it := redmine.NewPageIterator[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"})

		assert.False(t, it.HasNext())

		_, err := it.Next()
		require.ErrorIs(t, err, redmine.ErrNoMoreItems)
	})

	t.Run("all", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: pagedBody(3, 0, 100, 3)},
		}}

		it := redmine.NewPageIterator[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"})

		all, err := it.All()
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("for each stops on callback error", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: pagedBody(3, 0, 100, 3)},
		}}

		it := redmine.NewPageIterator[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"})

		seen := 0
		err := it.ForEach(func(testRecord) error {
			seen++
			if seen == 2 {
				return fmt.Errorf("stop")
			}

			return nil
		})

		require.EqualError(t, err, "stop")
		assert.Equal(t, 2, seen)
	})

	t.Run("error surfaces once and sticks", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: `not json`},
		}}

		it := redmine.NewPageIterator[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"})

		assert.False(t, it.HasNext())

		_, err := it.Next()

		var decodeErr *redmine.JSONDecodeError
		require.ErrorAs(t, err, &decodeErr)

		// The failed fetch is not retried.
		assert.Len(t, requester.calls, 1)
	})
}

func TestStream(t *testing.T) {
	t.Parallel()

	t.Run("emits all records then closes", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: pagedBody(150, 0, 100, 100)},
			{status: 200, body: pagedBody(150, 100, 100, 50)},
		}}

		var ids []uint64

		for item := range redmine.Stream[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"}) {
			require.NoError(t, item.Err)
			ids = append(ids, item.Value.ID)
		}

		assert.Len(t, ids, 150)
	})

	t.Run("emits error as final item", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: `not json`},
		}}

		var last redmine.StreamItem[testRecord]

		count := 0

		for item := range redmine.Stream[testRecord](context.Background(), requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"}) {
			last = item
			count++
		}

		assert.Equal(t, 1, count)

		var decodeErr *redmine.JSONDecodeError
		require.ErrorAs(t, last.Err, &decodeErr)
	})

	t.Run("cancellation closes the channel", func(t *testing.T) {
		t.Parallel()

		requester := &fakeRequester{responses: []fakeResponse{
			{status: 200, body: pagedBody(300, 0, 100, 100)},
			{status: 200, body: pagedBody(300, 100, 100, 100)},
			{status: 200, body: pagedBody(300, 200, 100, 100)},
		}}

		ctx, cancel := context.WithCancel(context.Background())
		stream := redmine.Stream[testRecord](ctx, requester, &pagedEndpoint{path: "records.json", wrapperKey: "records"})

		item, ok := <-stream
		require.True(t, ok)
		require.NoError(t, item.Err)

		cancel()

		// Drain until close; cancellation must not leave the channel open.
		deadline := time.After(2 * time.Second)

		for {
			select {
			case _, ok := <-stream:
				if !ok {
					return
				}
			case <-deadline:
				t.Fatal("stream not closed after cancellation")
			}
		}
	})
}

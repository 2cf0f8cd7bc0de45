package redmine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmine-go/redmine/pkg/redmine"
)

func TestQueryParamsEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		build    func() *redmine.QueryParams
		expected string
	}{
		{
			name:     "empty",
			build:    redmine.NewQueryParams,
			expected: "",
		},
		{
			name: "single pair",
			build: func() *redmine.QueryParams {
				return redmine.NewQueryParams().Push("project_id", redmine.Uint(42))
			},
			expected: "project_id=42",
		},
		{
			name: "insertion order preserved",
			build: func() *redmine.QueryParams {
				return redmine.NewQueryParams().
					Push("status_id", redmine.String("open")).
					Push("assigned_to_id", redmine.Uint(7)).
					Push("sort", redmine.String("updated_on:desc"))
			},
			expected: "status_id=open&assigned_to_id=7&sort=updated_on%3Adesc",
		},
		{
			name: "duplicate keys preserved",
			build: func() *redmine.QueryParams {
				return redmine.NewQueryParams().
					Push("include", redmine.String("journals")).
					Push("include", redmine.String("watchers"))
			},
			expected: "include=journals&include=watchers",
		},
		{
			name: "list value comma encoded",
			build: func() *redmine.QueryParams {
				return redmine.NewQueryParams().
					Push("status_id", redmine.UintList([]uint64{1, 2, 3}))
			},
			expected: "status_id=1%2C2%2C3",
		},
		{
			name: "bool and float",
			build: func() *redmine.QueryParams {
				return redmine.NewQueryParams().
					Push("is_private", redmine.Bool(true)).
					Push("hours", redmine.Float(1.5))
			},
			expected: "is_private=true&hours=1.5",
		},
		{
			name: "date",
			build: func() *redmine.QueryParams {
				return redmine.NewQueryParams().
					Push("spent_on", redmine.DateParam(time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)))
			},
			expected: "spent_on=2024-03-09",
		},
		{
			name: "timestamp",
			build: func() *redmine.QueryParams {
				return redmine.NewQueryParams().
					Push("updated_on", redmine.TimestampParam(time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)))
			},
			expected: "updated_on=2024-03-09T15%3A04%3A05Z",
		},
		{
			name: "string list",
			build: func() *redmine.QueryParams {
				return redmine.NewQueryParams().
					Push("include", redmine.StringList([]string{"journals", "watchers"}))
			},
			expected: "include=journals%2Cwatchers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			encoded, err := tt.build().Encode()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, encoded)
		})
	}
}

func TestQueryParamsEncodeDeterministic(t *testing.T) {
	t.Parallel()

	build := func() *redmine.QueryParams {
		return redmine.NewQueryParams().
			Push("project_id", redmine.Uint(1)).
			Push("status_id", redmine.UintList([]uint64{1, 2})).
			Push("sort", redmine.String("id:desc"))
	}

	first, err := build().Encode()
	require.NoError(t, err)

	for range 10 {
		again, err := build().Encode()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestQueryParamsPushOpt(t *testing.T) {
	t.Parallel()

	t.Run("nil values are skipped", func(t *testing.T) {
		t.Parallel()

		params := redmine.NewQueryParams().
			PushOpt("name", redmine.OptString(nil)).
			PushOpt("group_id", redmine.OptUint(nil)).
			PushOpt("status", redmine.OptBool(nil)).
			PushOpt("issue_id", redmine.UintList(nil))

		assert.Equal(t, 0, params.Len())

		encoded, err := params.Encode()
		require.NoError(t, err)
		assert.Empty(t, encoded)
	})

	t.Run("set values are pushed", func(t *testing.T) {
		t.Parallel()

		name := "alice"
		groupID := uint64(5)

		params := redmine.NewQueryParams().
			PushOpt("name", redmine.OptString(&name)).
			PushOpt("group_id", redmine.OptUint(&groupID))

		encoded, err := params.Encode()
		require.NoError(t, err)
		assert.Equal(t, "name=alice&group_id=5", encoded)
	})
}

func TestQueryParamsStickyError(t *testing.T) {
	t.Parallel()

	farFuture := time.Date(10001, 1, 1, 0, 0, 0, 0, time.UTC)

	params := redmine.NewQueryParams().
		Push("updated_on", redmine.TimestampParam(farFuture)).
		Push("project_id", redmine.Uint(1))

	_, err := params.Encode()
	require.Error(t, err)

	var formatErr *redmine.TimeFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 10001, formatErr.Value.Year())
}

func TestQueryParamsClone(t *testing.T) {
	t.Parallel()

	original := redmine.NewQueryParams().Push("limit", redmine.Int(25))
	clone := original.Clone()
	clone.Push("offset", redmine.Int(50))

	assert.Equal(t, 1, original.Len())
	assert.Equal(t, 2, clone.Len())

	encoded, err := original.Encode()
	require.NoError(t, err)
	assert.Equal(t, "limit=25", encoded)
}

func TestQueryParamsCloneNil(t *testing.T) {
	t.Parallel()

	var params *redmine.QueryParams

	clone := params.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, 0, clone.Len())
}

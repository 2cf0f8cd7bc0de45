package redmine_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmine-go/redmine/pkg/redmine"
)

func TestDateJSON(t *testing.T) {
	t.Parallel()

	t.Run("unmarshal", func(t *testing.T) {
		t.Parallel()

		var d redmine.Date

		require.NoError(t, json.Unmarshal([]byte(`"2024-03-09"`), &d))
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, time.March, d.Month())
		assert.Equal(t, 9, d.Day())
	})

	t.Run("marshal", func(t *testing.T) {
		t.Parallel()

		out, err := json.Marshal(redmine.NewDate(2024, time.March, 9))
		require.NoError(t, err)
		assert.Equal(t, `"2024-03-09"`, string(out))
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		var d redmine.Date

		err := json.Unmarshal([]byte(`"09/03/2024"`), &d)

		var parseErr *redmine.TimeParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "09/03/2024", parseErr.Value)
	})
}

func TestTimestampJSON(t *testing.T) {
	t.Parallel()

	t.Run("rfc3339", func(t *testing.T) {
		t.Parallel()

		var ts redmine.Timestamp

		require.NoError(t, json.Unmarshal([]byte(`"2024-03-09T15:04:05Z"`), &ts))
		assert.Equal(t, time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC), ts.Time)
	})

	t.Run("legacy format", func(t *testing.T) {
		t.Parallel()

		var ts redmine.Timestamp

		require.NoError(t, json.Unmarshal([]byte(`"2024/03/09 15:04:05 +0100"`), &ts))
		assert.True(t, ts.Equal(time.Date(2024, 3, 9, 14, 4, 5, 0, time.UTC)))
	})

	t.Run("marshal", func(t *testing.T) {
		t.Parallel()

		ts := redmine.Timestamp{Time: time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)}

		out, err := json.Marshal(ts)
		require.NoError(t, err)
		assert.Equal(t, `"2024-03-09T15:04:05Z"`, string(out))
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		var ts redmine.Timestamp

		err := json.Unmarshal([]byte(`"yesterday"`), &ts)

		var parseErr *redmine.TimeParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestCustomFieldValueJSON(t *testing.T) {
	t.Parallel()

	t.Run("single value", func(t *testing.T) {
		t.Parallel()

		var field redmine.CustomField

		require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "name": "Severity", "value": "high"}`), &field))
		assert.False(t, field.Value.IsList)
		assert.Equal(t, "high", field.Value.Single)

		out, err := json.Marshal(field.Value)
		require.NoError(t, err)
		assert.Equal(t, `"high"`, string(out))
	})

	t.Run("list value", func(t *testing.T) {
		t.Parallel()

		var field redmine.CustomField

		require.NoError(t, json.Unmarshal([]byte(`{"id": 2, "multiple": true, "value": ["linux", "bsd"]}`), &field))
		assert.True(t, field.Value.IsList)
		assert.Equal(t, []string{"linux", "bsd"}, field.Value.Multiple)

		out, err := json.Marshal(field.Value)
		require.NoError(t, err)
		assert.Equal(t, `["linux","bsd"]`, string(out))
	})
}

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmine-go/redmine/internal/constants"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	_, err = parseID("not-a-number")
	require.ErrorIs(t, err, constants.ErrInvalidID)

	_, err = parseID("-1")
	require.ErrorIs(t, err, constants.ErrInvalidID)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-ten", truncate("exactly-ten", 11))
	assert.Equal(t, "long st...", truncate("long string that overflows", 10))
}

func TestParseDateFlag(t *testing.T) {
	t.Parallel()

	date, err := parseDateFlag("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, date.Year())

	_, err = parseDateFlag("15/06/2024")
	require.Error(t, err)
}

package pressitem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("January 5, 2024", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", got)

	got, err = NormalizeDate("  December 31, 1999 ", LongDateLayout)
	require.NoError(t, err)
	assert.Equal(t, "1999-12-31", got)
}

// TestNormalizeDate_ZeroPaddedDay verifies a padded day still parses
func TestNormalizeDate_ZeroPaddedDay(t *testing.T) {
	got, err := NormalizeDate("March 07, 2023", "")
	require.NoError(t, err)
	assert.Equal(t, "2023-03-07", got)
}

// TestNormalizeDate_Invalid verifies malformed text fails fast
func TestNormalizeDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "2024-01-05", "Jan 5 2024", "Smarch 5, 2024", "February 30, 2024"} {
		_, err := NormalizeDate(in, "")
		require.Error(t, err, "input %q", in)

		var dateErr *DateParseError
		require.ErrorAs(t, err, &dateErr)
		assert.Equal(t, LongDateLayout, dateErr.Layout)
	}
}

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateKey(t *testing.T) {
	key, err := ParseDateKey("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", key.String())

	for _, bad := range []string{"", "15-03-2026", "2026/03/15", "2026-13-01", "2026-02-30", "not-a-date"} {
		_, err := ParseDateKey(bad)
		assert.ErrorIsf(t, err, ErrInvalidDateKey, "input %q", bad)
	}
}

func TestDayBounds(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	key := DateKey("2026-03-15")
	start, end, err := key.DayBounds(madrid)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, madrid), start)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, madrid), end)

	// a payment at 23:30 local belongs to the day; midnight next day does not
	assert.True(t, start.Before(time.Date(2026, 3, 15, 23, 30, 0, 0, madrid).Add(time.Second)))
	assert.False(t, end.After(time.Date(2026, 3, 16, 0, 0, 0, 0, madrid)))
}

func TestDayBoundsDSTTransition(t *testing.T) {
	// Europe/Madrid springs forward on 2026-03-29, the local day is 23 hours
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	start, end, err := DateKey("2026-03-29").DayBounds(madrid)
	require.NoError(t, err)
	assert.Equal(t, 23*time.Hour, end.Sub(start))
}

func TestNewDateKey(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	// 23:30 UTC on the 14th is already the 15th in Madrid (UTC+1)
	utc := time.Date(2026, 1, 14, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, DateKey("2026-01-15"), NewDateKey(utc, madrid))
	assert.Equal(t, DateKey("2026-01-14"), NewDateKey(utc, time.UTC))
}

func TestDateKeyValidate(t *testing.T) {
	assert.NoError(t, DateKey("2026-06-01").Validate())
	assert.ErrorIs(t, DateKey("garbage").Validate(), ErrInvalidDateKey)
	assert.True(t, DateKey("").IsZero())
	assert.False(t, DateKey("2026-06-01").IsZero())
}

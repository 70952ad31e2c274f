package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayBounds(t *testing.T) {
	at := time.Date(2026, 9, 14, 15, 45, 12, 300, time.UTC)
	start, end := DayBounds(at)

	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 14, 23, 59, 59, 0, time.UTC), end)

	// The last second of the day is inside the range, the next midnight
	// is not.
	lastSecond := time.Date(2026, 9, 14, 23, 59, 59, 0, time.UTC)
	nextMidnight := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	assert.False(t, lastSecond.Before(start) || lastSecond.After(end))
	assert.True(t, nextMidnight.After(end))
}

func TestDayBounds_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	at := time.Date(2026, 9, 14, 1, 0, 0, 0, loc)
	start, end := DayBounds(at)

	assert.Equal(t, loc, start.Location())
	assert.Equal(t, 14, start.Day())
	assert.Equal(t, 14, end.Day())
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 9, 14, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 9, 14, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2026-09-14", DayKey(time.Date(2026, 9, 14, 18, 3, 0, 0, time.UTC)))
}

package localdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func TestAtNormalizesAcrossTimezones(t *testing.T) {
	loc := kolkata(t)

	// 20:00 UTC on the 14th is already the 15th in Kolkata (+05:30).
	utc := time.Date(2026, time.March, 14, 20, 0, 0, 0, time.UTC)
	day := At(utc, loc)

	assert.Equal(t, "2026-03-15", day.Key())
}

func TestParse(t *testing.T) {
	loc := kolkata(t)

	tests := []struct {
		name    string
		value   string
		wantKey string
		wantErr bool
	}{
		{name: "bare date", value: "2026-02-10", wantKey: "2026-02-10"},
		{name: "rfc3339 utc evening rolls forward", value: "2026-02-10T20:30:00Z", wantKey: "2026-02-11"},
		{name: "rfc3339 local", value: "2026-02-10T09:00:00+05:30", wantKey: "2026-02-10"},
		{name: "garbage", value: "not-a-date", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := Parse(tt.value, loc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, day.Key())
		})
	}
}

func TestStartAndEndBoundTheDay(t *testing.T) {
	loc := kolkata(t)

	day, err := Parse("2026-01-31", loc)
	require.NoError(t, err)

	start := day.Start()
	end := day.End()

	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 23, end.Hour())
	assert.True(t, end.After(start))
	assert.True(t, end.Before(day.Next().Start()))

	// A timestamp late in the evening still falls inside the window.
	evening := time.Date(2026, time.January, 31, 23, 59, 59, 0, loc)
	assert.False(t, evening.Before(start))
	assert.False(t, evening.After(end))
}

func TestNextCrossesMonthBoundary(t *testing.T) {
	loc := kolkata(t)

	day, err := Parse("2026-01-31", loc)
	require.NoError(t, err)

	assert.Equal(t, "2026-02-01", day.Next().Key())
}

func TestEqual(t *testing.T) {
	loc := kolkata(t)

	a, err := Parse("2026-05-01", loc)
	require.NoError(t, err)
	b, err := Parse("2026-05-01T18:00:00+05:30", loc)
	require.NoError(t, err)
	c := a.Next()

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestMonthWindow(t *testing.T) {
	loc := kolkata(t)

	start, end := MonthWindow(2026, 2, loc)

	assert.Equal(t, "2026-02-01", At(start, loc).Key())
	assert.Equal(t, "2026-03-01", At(end, loc).Key())
}

func TestRangeYieldsOneEntryPerDay(t *testing.T) {
	loc := kolkata(t)

	start, end := MonthWindow(2026, 2, loc)
	days := Range(start, end, loc)

	// February 2026 has 28 days.
	require.Len(t, days, 28)
	assert.Equal(t, "2026-02-01", days[0].Key())
	assert.Equal(t, "2026-02-28", days[27].Key())

	// 31-day month.
	start, end = MonthWindow(2026, 1, loc)
	assert.Len(t, Range(start, end, loc), 31)
}

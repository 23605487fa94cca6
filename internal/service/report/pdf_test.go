package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailySummaryPDF(t *testing.T) {
	lines := []DailyLine{
		{Label: "Total students", Value: "120"},
		{Label: "Presents", Value: "104"},
		{Label: "Absents", Value: "16"},
		{Label: "Attendance", Value: "87%"},
	}

	data, err := BuildDailySummaryPDF("Daily Attendance Summary", "2026-02-10", lines)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

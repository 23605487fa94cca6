package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"school/backend/internal/entity"
	"school/backend/internal/pkg/localdate"
)

func februaryDays(t *testing.T, loc *time.Location) []localdate.Day {
	t.Helper()
	start, end := localdate.MonthWindow(2026, 2, loc)
	return localdate.Range(start, end, loc)
}

func TestGroupRowsEveryRosterMemberGetsARow(t *testing.T) {
	loc := kolkata(t)
	days := februaryDays(t, loc)

	subjects := []Subject{
		{ID: 1, Name: "Asha", Class: "5", Section: "A"},
		{ID: 2, Name: "Bilal", Class: "5", Section: "A"},
		{ID: 3, Name: "Chand", Class: "6", Section: "B"},
	}
	records := []Record{
		{SubjectID: 1, Day: day(t, "2026-02-02", loc), Status: entity.StatusPresent},
		{SubjectID: 1, Day: day(t, "2026-02-03", loc), Status: entity.StatusAbsent},
	}

	grouped := GroupRows(subjects, records, days)

	require.Contains(t, grouped, "5-A")
	require.Contains(t, grouped, "6-B")
	require.Len(t, grouped["5-A"], 2)
	require.Len(t, grouped["6-B"], 1)

	asha := grouped["5-A"][0]
	assert.Equal(t, "Present", asha.Days["2026-02-02"])
	assert.Equal(t, "Absent", asha.Days["2026-02-03"])
	assert.Equal(t, "", asha.Days["2026-02-04"])
	assert.Equal(t, 1, asha.Presents)
	assert.Equal(t, 1, asha.Absents)
	assert.Equal(t, "50.0%", asha.Percentage)

	// No records still means a full row of blanks.
	bilal := grouped["5-A"][1]
	assert.Len(t, bilal.Days, len(days))
	assert.Equal(t, 0, bilal.Presents)
	assert.Equal(t, "0%", bilal.Percentage)
}

func TestGroupRowsNonPresentCountsAsAbsentInExport(t *testing.T) {
	loc := kolkata(t)
	days := februaryDays(t, loc)

	subjects := []Subject{{ID: 1, Name: "Asha", Class: "5", Section: "A"}}
	records := []Record{
		{SubjectID: 1, Day: day(t, "2026-02-02", loc), Status: entity.StatusLate},
		{SubjectID: 1, Day: day(t, "2026-02-03", loc), Status: entity.StatusHalfDay},
	}

	grouped := GroupRows(subjects, records, days)

	row := grouped["5-A"][0]
	assert.Equal(t, "Absent", row.Days["2026-02-02"])
	assert.Equal(t, "Absent", row.Days["2026-02-03"])
	assert.Equal(t, 2, row.Absents)
}

func TestBuildMonthlyWorkbook(t *testing.T) {
	loc := kolkata(t)
	days := februaryDays(t, loc)

	subjects := []Subject{
		{ID: 1, Name: "Asha", Class: "5", Section: "A"},
		{ID: 2, Name: "Chand", Class: "6", Section: "B"},
	}
	records := []Record{
		{SubjectID: 1, Day: day(t, "2026-02-02", loc), Status: entity.StatusPresent},
		{SubjectID: 1, Day: day(t, "2026-02-03", loc), Status: entity.StatusAbsent},
	}

	grouped := GroupRows(subjects, records, days)
	f, err := BuildMonthlyWorkbook(grouped, days)
	require.NoError(t, err)
	defer f.Close()

	// One sheet per class-section, sorted.
	assert.Equal(t, []string{"5-A", "6-B"}, f.GetSheetList())

	rows, err := f.GetRows("5-A")
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	// 3 identity columns + 28 day columns + 3 totals.
	header := rows[0]
	require.Len(t, header, 3+len(days)+3)
	assert.Equal(t, "Name", header[0])
	assert.Equal(t, "2026-02-01", header[3])
	assert.Equal(t, "2026-02-28", header[2+len(days)])
	assert.Equal(t, "% Attendance", header[len(header)-1])

	// Day cells line up with the header columns.
	require.Len(t, rows, 2)
	dataRow := rows[1]
	assert.Equal(t, "Asha", dataRow[0])
	assert.Equal(t, "Present", dataRow[4])
	assert.Equal(t, "Absent", dataRow[5])

	// The absent cell carries the highlight style.
	cell, err := excelize.CoordinatesToCellName(6, 2)
	require.NoError(t, err)
	styleID, err := f.GetCellStyle("5-A", cell)
	require.NoError(t, err)
	assert.NotZero(t, styleID)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "Attendance-2-2026.xlsx", ExportFileName(2, 2026))
}

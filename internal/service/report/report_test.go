package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school/backend/internal/entity"
	"school/backend/internal/pkg/localdate"
)

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func day(t *testing.T, value string, loc *time.Location) localdate.Day {
	t.Helper()
	d, err := localdate.Parse(value, loc)
	require.NoError(t, err)
	return d
}

func TestPlanBatchFirstEntryWins(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2026, time.April, 10, 9, 0, 0, 0, loc)

	entries := []Entry{
		{SubjectID: 1, Status: entity.StatusAbsent, Reason: "sick", Date: "2026-04-10"},
		{SubjectID: 2, Status: entity.StatusPresent, Date: "2026-04-10"},
		{SubjectID: 1, Status: entity.StatusPresent, Date: "2026-04-10"},
	}

	planned, skipped := PlanBatch(entries, now, loc)

	require.Len(t, planned, 2)
	assert.Equal(t, 1, planned[0].SubjectID)
	assert.Equal(t, entity.StatusAbsent, planned[0].Status)
	assert.Equal(t, "sick", planned[0].Reason)
	assert.Equal(t, 2, planned[1].SubjectID)

	// The later duplicate for subject 1 is reported, not applied.
	assert.Equal(t, []int{1}, skipped)
}

func TestPlanBatchSameSubjectDifferentDays(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2026, time.April, 10, 9, 0, 0, 0, loc)

	entries := []Entry{
		{SubjectID: 1, Status: entity.StatusPresent, Date: "2026-04-09"},
		{SubjectID: 1, Status: entity.StatusAbsent, Date: "2026-04-10"},
	}

	planned, skipped := PlanBatch(entries, now, loc)

	assert.Len(t, planned, 2)
	assert.Empty(t, skipped)
}

func TestPlanBatchSkipsMalformedEntries(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2026, time.April, 10, 9, 0, 0, 0, loc)

	entries := []Entry{
		{SubjectID: 0, Status: entity.StatusPresent},
		{SubjectID: 2, Status: "vacationing"},
		{SubjectID: 3, Status: entity.StatusPresent, Date: "10/04/2026"},
		{SubjectID: 4, Status: entity.StatusPresent},
	}

	planned, skipped := PlanBatch(entries, now, loc)

	require.Len(t, planned, 1)
	assert.Equal(t, 4, planned[0].SubjectID)
	assert.Equal(t, []int{0, 2, 3}, skipped)
}

func TestPlanBatchDefaultsToToday(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2026, time.April, 10, 9, 0, 0, 0, loc)

	planned, skipped := PlanBatch([]Entry{{SubjectID: 7, Status: entity.StatusLate}}, now, loc)

	require.Len(t, planned, 1)
	assert.Empty(t, skipped)
	assert.Equal(t, "2026-04-10", planned[0].Day.Key())
}

func TestPlanBatchDropsReasonUnlessAbsent(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2026, time.April, 10, 9, 0, 0, 0, loc)

	entries := []Entry{
		{SubjectID: 1, Status: entity.StatusPresent, Reason: "should vanish"},
		{SubjectID: 2, Status: entity.StatusAbsent, Reason: "fever"},
	}

	planned, _ := PlanBatch(entries, now, loc)

	require.Len(t, planned, 2)
	assert.Equal(t, "", planned[0].Reason)
	assert.Equal(t, "fever", planned[1].Reason)
}

func TestPlanBatchTimestampDedupsWithBareDate(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2026, time.April, 10, 9, 0, 0, 0, loc)

	// Both name the same Kolkata calendar day.
	entries := []Entry{
		{SubjectID: 1, Status: entity.StatusPresent, Date: "2026-04-10T20:30:00Z"},
		{SubjectID: 1, Status: entity.StatusAbsent, Date: "2026-04-11"},
	}

	planned, skipped := PlanBatch(entries, now, loc)

	require.Len(t, planned, 1)
	assert.Equal(t, entity.StatusPresent, planned[0].Status)
	assert.Equal(t, []int{1}, skipped)
}

func TestFold(t *testing.T) {
	loc := kolkata(t)

	records := []Record{
		{Day: day(t, "2026-04-01", loc), Status: entity.StatusPresent},
		{Day: day(t, "2026-04-02", loc), Status: entity.StatusPresent},
		{Day: day(t, "2026-04-03", loc), Status: entity.StatusAbsent, Reason: "sick"},
		{Day: day(t, "2026-04-04", loc), Status: entity.StatusLate},
	}

	s := Fold(records)

	assert.Equal(t, 4, s.TotalDays)
	assert.Equal(t, 2, s.Presents)
	assert.Equal(t, 1, s.Absents)
	assert.Equal(t, 1, s.Late)
	assert.Equal(t, "50.0%", s.Percentage)
	assert.Equal(t, entity.StatusAbsent, s.DailyStatus["2026-04-03"])
}

func TestFoldEmpty(t *testing.T) {
	s := Fold(nil)

	assert.Equal(t, 0, s.TotalDays)
	assert.Equal(t, "0%", s.Percentage)
	assert.NotNil(t, s.DailyStatus)
	assert.Empty(t, s.DailyStatus)
}

func TestFoldDetailedKeepsAuditTrail(t *testing.T) {
	loc := kolkata(t)
	modified := time.Date(2026, time.April, 2, 15, 0, 0, 0, loc)

	records := []Record{
		{Day: day(t, "2026-04-01", loc), Status: entity.StatusPresent},
		{
			Day:        day(t, "2026-04-02", loc),
			Status:     entity.StatusHalfDay,
			Notes:      "left after lunch",
			IsModified: true,
			ModifiedAt: &modified,
		},
	}

	s, details := FoldDetailed(records)

	assert.Equal(t, 2, s.TotalDays)
	require.Contains(t, details, "2026-04-02")
	detail := details["2026-04-02"]
	assert.Equal(t, entity.StatusHalfDay, detail.Status)
	assert.Equal(t, "left after lunch", detail.Notes)
	assert.True(t, detail.IsModified)
	require.NotNil(t, detail.ModifiedAt)
	assert.True(t, detail.ModifiedAt.Equal(modified))
}

func TestFoldBySubject(t *testing.T) {
	loc := kolkata(t)

	records := []Record{
		{SubjectID: 1, Day: day(t, "2026-04-01", loc), Status: entity.StatusPresent},
		{SubjectID: 1, Day: day(t, "2026-04-02", loc), Status: entity.StatusAbsent},
		{SubjectID: 2, Day: day(t, "2026-04-01", loc), Status: entity.StatusPresent},
	}

	summaries := FoldBySubject(records)

	require.Len(t, summaries, 2)
	assert.Equal(t, 2, summaries[1].TotalDays)
	assert.Equal(t, "50.0%", summaries[1].Percentage)
	assert.Equal(t, 1, summaries[2].Presents)

	// A subject with no record in the window has no entry.
	_, ok := summaries[3]
	assert.False(t, ok)
}

func TestInScopeIsUnionOfAssignments(t *testing.T) {
	scopes := []SectionScope{
		{Class: "5", Section: "A"},
		{Class: "6", Section: "B"},
	}

	// Students from either assigned section are visible, not only those
	// matching every assignment.
	assert.True(t, InScope(scopes, "5", "A"))
	assert.True(t, InScope(scopes, "6", "B"))

	assert.False(t, InScope(scopes, "5", "B"))
	assert.False(t, InScope(scopes, "6", "A"))
	assert.False(t, InScope(scopes, "7", "A"))
	assert.False(t, InScope(nil, "5", "A"))
}

func TestCount(t *testing.T) {
	loc := kolkata(t)

	records := []Record{
		{Day: day(t, "2026-04-01", loc), Status: entity.StatusPresent},
		{Day: day(t, "2026-04-01", loc), Status: entity.StatusPresent},
		{Day: day(t, "2026-04-01", loc), Status: entity.StatusAbsent},
		{Day: day(t, "2026-04-01", loc), Status: entity.StatusLate},
		{Day: day(t, "2026-04-01", loc), Status: entity.StatusHalfDay},
	}

	tally := Count(records)

	assert.Equal(t, 2, tally.Present)
	assert.Equal(t, 1, tally.Absent)
	assert.Equal(t, 1, tally.Late)
	assert.Equal(t, 1, tally.HalfDay)
	assert.Equal(t, 5, tally.Total)
}

func TestTrendOrdersDaysAndSkipsGaps(t *testing.T) {
	loc := kolkata(t)

	records := []Record{
		{SubjectID: 2, Day: day(t, "2026-04-03", loc), Status: entity.StatusAbsent},
		{SubjectID: 1, Day: day(t, "2026-04-01", loc), Status: entity.StatusPresent},
		{SubjectID: 2, Day: day(t, "2026-04-01", loc), Status: entity.StatusLate},
	}

	trend := Trend(records)

	require.Len(t, trend, 2)
	assert.Equal(t, "2026-04-01", trend[0].Date)
	assert.Equal(t, 1, trend[0].Present)
	assert.Equal(t, 1, trend[0].Late)
	assert.Equal(t, 2, trend[0].Total)
	assert.Equal(t, "2026-04-03", trend[1].Date)
	assert.Equal(t, 1, trend[1].Absent)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0%", Percent(0, 0))
	assert.Equal(t, "100.0%", Percent(5, 5))
	assert.Equal(t, "66.7%", Percent(2, 3))
	assert.Equal(t, "0.0%", Percent(0, 4))
}

func TestRosterPercent(t *testing.T) {
	assert.Equal(t, 0, RosterPercent(0, 0))
	assert.Equal(t, 70, RosterPercent(7, 10))
	assert.Equal(t, 67, RosterPercent(2, 3))
	assert.Equal(t, 100, RosterPercent(3, 3))
}

func TestPeriodPercent(t *testing.T) {
	assert.Equal(t, 0.0, PeriodPercent(0, 0))
	assert.Equal(t, 66.7, PeriodPercent(2, 3))
	assert.Equal(t, 100.0, PeriodPercent(4, 4))
}

// Package report holds the attendance reconciliation and reporting core:
// batch planning (normalization + in-batch dedup), record folding into
// per-subject counts, and the export builders. Everything here is pure so
// the repositories stay thin over it.
package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"school/backend/internal/entity"
	"school/backend/internal/pkg/localdate"
)

// Entry is one raw submission in a batch, as received from the client.
type Entry struct {
	SubjectID int    `json:"subjectId"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	Date      string `json:"date"`
}

// PlannedEntry is an Entry that survived validation and dedup, with its
// date normalized to a local calendar day.
type PlannedEntry struct {
	SubjectID int
	Status    string
	Reason    string
	Day       localdate.Day
}

func validStatus(status string) bool {
	switch status {
	case entity.StatusPresent, entity.StatusAbsent, entity.StatusLate, entity.StatusHalfDay:
		return true
	}
	return false
}

// PlanBatch validates and normalizes a batch. Entries missing a subject id
// or carrying an unknown status are skipped, never aborting their siblings.
// Within one batch the first entry for a (subject, day) pair wins and later
// duplicates are skipped. Reasons are kept only for absences.
func PlanBatch(entries []Entry, now time.Time, loc *time.Location) (planned []PlannedEntry, skipped []int) {
	seen := make(map[string]bool, len(entries))

	for _, e := range entries {
		if e.SubjectID == 0 || !validStatus(e.Status) {
			skipped = append(skipped, e.SubjectID)
			continue
		}

		day := localdate.At(now, loc)
		if e.Date != "" {
			parsed, err := localdate.Parse(e.Date, loc)
			if err != nil {
				skipped = append(skipped, e.SubjectID)
				continue
			}
			day = parsed
		}

		key := fmt.Sprintf("%d-%s", e.SubjectID, day.Key())
		if seen[key] {
			skipped = append(skipped, e.SubjectID)
			continue
		}
		seen[key] = true

		reason := ""
		if e.Status == entity.StatusAbsent {
			reason = e.Reason
		}

		planned = append(planned, PlannedEntry{
			SubjectID: e.SubjectID,
			Status:    e.Status,
			Reason:    reason,
			Day:       day,
		})
	}

	return planned, skipped
}

// Record is one stored attendance row, reduced to what the aggregations
// need.
type Record struct {
	SubjectID  int
	Day        localdate.Day
	Status     string
	Reason     string
	Notes      string
	IsModified bool
	ModifiedAt *time.Time
}

// Summary is the per-subject aggregate over a reporting window.
type Summary struct {
	TotalDays   int               `json:"totalDays"`
	Presents    int               `json:"presents"`
	Absents     int               `json:"absents"`
	Late        int               `json:"late,omitempty"`
	HalfDay     int               `json:"halfDay,omitempty"`
	Percentage  string            `json:"attendancePercentage"`
	DailyStatus map[string]string `json:"dailyStatus"`
}

// Fold folds one subject's records into counts and a day->status map.
// totalDays is the number of days with a record, not the window length.
func Fold(records []Record) Summary {
	s := Summary{DailyStatus: map[string]string{}}

	for _, rec := range records {
		s.DailyStatus[rec.Day.Key()] = rec.Status
		switch rec.Status {
		case entity.StatusPresent:
			s.Presents++
		case entity.StatusAbsent:
			s.Absents++
		case entity.StatusLate:
			s.Late++
		case entity.StatusHalfDay:
			s.HalfDay++
		}
	}

	s.TotalDays = s.Presents + s.Absents + s.Late + s.HalfDay
	s.Percentage = Percent(s.Presents, s.TotalDays)

	return s
}

// FoldBySubject groups records per subject and folds each group
// independently. Subjects with no record in the window are absent from the
// result.
func FoldBySubject(records []Record) map[int]Summary {
	grouped := map[int][]Record{}
	for _, rec := range records {
		grouped[rec.SubjectID] = append(grouped[rec.SubjectID], rec)
	}

	summaries := make(map[int]Summary, len(grouped))
	for id, recs := range grouped {
		summaries[id] = Fold(recs)
	}

	return summaries
}

// SectionScope is one class-section assignment of a teacher.
type SectionScope struct {
	Class   string
	Section string
}

// InScope reports whether a class-section pair falls under any of the given
// assignments. A teacher assigned to several sections sees the union of
// them, not the intersection.
func InScope(scopes []SectionScope, class, section string) bool {
	for _, s := range scopes {
		if s.Class == class && s.Section == section {
			return true
		}
	}
	return false
}

// Tally is a flat status count over a set of records.
type Tally struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	HalfDay int `json:"halfDay"`
	Total   int `json:"total"`
}

// Count tallies records by status.
func Count(records []Record) Tally {
	var t Tally
	for _, rec := range records {
		switch rec.Status {
		case entity.StatusPresent:
			t.Present++
		case entity.StatusAbsent:
			t.Absent++
		case entity.StatusLate:
			t.Late++
		case entity.StatusHalfDay:
			t.HalfDay++
		}
		t.Total++
	}
	return t
}

// TrendPoint is one day of the dashboard trend.
type TrendPoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
	Total   int    `json:"total"`
}

// Trend groups records by day, oldest first. Days without a record are
// omitted rather than zero-filled.
func Trend(records []Record) []TrendPoint {
	byDay := map[string]TrendPoint{}
	for _, rec := range records {
		point := byDay[rec.Day.Key()]
		point.Date = rec.Day.Key()
		switch rec.Status {
		case entity.StatusPresent:
			point.Present++
		case entity.StatusAbsent:
			point.Absent++
		case entity.StatusLate:
			point.Late++
		}
		point.Total++
		byDay[rec.Day.Key()] = point
	}

	keys := make([]string, 0, len(byDay))
	for key := range byDay {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	trend := make([]TrendPoint, 0, len(keys))
	for _, key := range keys {
		trend = append(trend, byDay[key])
	}

	return trend
}

// DayDetail is the per-day detail shape of the teacher summary, which also
// exposes the audit trail.
type DayDetail struct {
	Status     string     `json:"status"`
	Reason     string     `json:"reason"`
	Notes      string     `json:"notes"`
	IsModified bool       `json:"isModified"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"`
}

// FoldDetailed is Fold with the richer day map used by teacher views.
func FoldDetailed(records []Record) (Summary, map[string]DayDetail) {
	s := Fold(records)

	details := make(map[string]DayDetail, len(records))
	for _, rec := range records {
		details[rec.Day.Key()] = DayDetail{
			Status:     rec.Status,
			Reason:     rec.Reason,
			Notes:      rec.Notes,
			IsModified: rec.IsModified,
			ModifiedAt: rec.ModifiedAt,
		}
	}

	return s, details
}

// Percent is the per-subject formula: recorded presents over recorded days,
// one decimal, "0%" when no days were recorded.
func Percent(presents, totalDays int) string {
	if totalDays == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(presents)/float64(totalDays)*100)
}

// RosterPercent is the whole-roster daily formula: presents over the
// expected population, rounded to an integer. Note the denominator differs
// from Percent, which divides by recorded days.
func RosterPercent(presents, rosterSize int) int {
	if rosterSize == 0 {
		return 0
	}
	return int(math.Round(float64(presents) / float64(rosterSize) * 100))
}

// PeriodPercent is the dashboard period formula: presents over records,
// rounded to one decimal as a number.
func PeriodPercent(presents, totalRecords int) float64 {
	if totalRecords == 0 {
		return 0
	}
	return math.Round(float64(presents)/float64(totalRecords)*100*10) / 10
}

package report

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"school/backend/internal/entity"
	"school/backend/internal/pkg/localdate"
)

// Subject is one roster member of a tabular export.
type Subject struct {
	ID      int
	Name    string
	Class   string
	Section string
}

// Row is one export line: one subject, one cell per calendar day of the
// window plus the trailing totals.
type Row struct {
	Name       string
	Class      string
	Section    string
	Days       map[string]string
	Presents   int
	Absents    int
	Percentage string
}

// GroupRows shapes records into export rows grouped by class-section. Every
// subject of the roster gets a row even with zero records; days without a
// record stay blank.
func GroupRows(subjects []Subject, records []Record, days []localdate.Day) map[string][]Row {
	bySubject := make(map[int][]Record, len(subjects))
	for _, rec := range records {
		bySubject[rec.SubjectID] = append(bySubject[rec.SubjectID], rec)
	}

	grouped := map[string][]Row{}

	for _, subject := range subjects {
		row := Row{
			Name:    subject.Name,
			Class:   subject.Class,
			Section: subject.Section,
			Days:    make(map[string]string, len(days)),
		}
		for _, d := range days {
			row.Days[d.Key()] = ""
		}

		for _, rec := range bySubject[subject.ID] {
			if rec.Status == entity.StatusPresent {
				row.Days[rec.Day.Key()] = "Present"
				row.Presents++
			} else {
				row.Days[rec.Day.Key()] = "Absent"
				row.Absents++
			}
		}

		row.Percentage = Percent(row.Presents, row.Presents+row.Absents)

		key := fmt.Sprintf("%s-%s", subject.Class, subject.Section)
		grouped[key] = append(grouped[key], row)
	}

	return grouped
}

// BuildMonthlyWorkbook renders the grouped rows into a workbook, one sheet
// per class-section. A window of N days always produces exactly N day
// columns. Absent cells are highlighted.
func BuildMonthlyWorkbook(grouped map[string][]Row, days []localdate.Day) (*excelize.File, error) {
	f := excelize.NewFile()

	absentStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "FF0000", Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFECEC"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("creating absent style: %w", err)
	}

	headers := []string{"Name", "Class", "Section"}
	for _, d := range days {
		headers = append(headers, d.Key())
	}
	headers = append(headers, "Presents", "Absents", "% Attendance")

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		sheet := key
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("creating sheet %s: %w", sheet, err)
		}

		for col, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(sheet, cell, header)
		}

		for rowIdx, row := range grouped[key] {
			values := []interface{}{row.Name, row.Class, row.Section}
			for _, d := range days {
				values = append(values, row.Days[d.Key()])
			}
			values = append(values, row.Presents, row.Absents, row.Percentage)

			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				f.SetCellValue(sheet, cell, value)

				if s, ok := value.(string); ok && s == "Absent" {
					f.SetCellStyle(sheet, cell, cell, absentStyle)
				}
			}
		}
	}

	return f, nil
}

// ExportFileName is the content-disposition name of the monthly export.
func ExportFileName(month, year int) string {
	return fmt.Sprintf("Attendance-%d-%d.xlsx", month, year)
}

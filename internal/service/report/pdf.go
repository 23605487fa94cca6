package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
)

// DailyLine is one row of the daily summary PDF.
type DailyLine struct {
	Label string
	Value string
}

// BuildDailySummaryPDF renders the one-page daily roster summary the admin
// dashboard links to.
func BuildDailySummaryPDF(title, date string, lines []DailyLine) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 12, title)
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", date))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(80, 9, "Metric", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 9, "Value", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, line := range lines {
		pdf.CellFormat(80, 9, line.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 9, line.Value, "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// Package export produces the XLSX review report written next to a curated
// dataset's manifest.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ReportName is the workbook filename within the curated dataset location.
const ReportName = "curation_report.xlsx"

// Decision is one reviewed image and its outcome.
type Decision struct {
	ImageID  string
	ImageURI string
	Accepted bool
}

// CurationReport summarizes a finished curation job.
type CurationReport struct {
	JobID          string
	ProjectID      string
	RawDataURI     string
	CuratedDataURI string
	AcceptedCount  int
	Decisions      []Decision
}

// BuildCurationReportXLSX returns an XLSX workbook (as bytes) with a summary
// block followed by the per-image decision table.
func BuildCurationReportXLSX(r CurationReport) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Curation"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defIndex, _ := f.GetSheetIndex("Sheet1"); defIndex != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	summary := [][2]any{
		{"Job ID", r.JobID},
		{"Project", r.ProjectID},
		{"Raw Data", r.RawDataURI},
		{"Curated Data", r.CuratedDataURI},
		{"Reviewed", len(r.Decisions)},
		{"Accepted", r.AcceptedCount},
		{"Generated", time.Now().UTC().Format(time.RFC3339)},
	}
	for i, kv := range summary {
		write(1, i+1, kv[0])
		write(2, i+1, kv[1])
	}

	headerRow := len(summary) + 2
	for i, h := range []string{"Image ID", "Image URI", "Decision"} {
		write(i+1, headerRow, h)
	}

	row := headerRow + 1
	for _, d := range r.Decisions {
		decision := "REJECTED"
		if d.Accepted {
			decision = "ACCEPTED"
		}
		write(1, row, d.ImageID)
		write(2, row, d.ImageURI)
		write(3, row, decision)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 38) // ids
	_ = f.SetColWidth(sheet, "B", "B", 64) // uris
	_ = f.SetColWidth(sheet, "C", "C", 12) // decision

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

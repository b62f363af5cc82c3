package workbook

import (
	"strconv"
	"strings"
	"time"

	"jobtrail/internal/models"

	"github.com/tealeg/xlsx/v3"
)

// Parse reads an uploaded workbook into application records. Rows missing
// Company or Job Title are skipped silently; all other cell problems fall
// back to field defaults. The returned records carry no owner; the caller
// assigns one before committing.
//
// Header names are resolved to column indexes once; a workbook without the
// Company and Job Title headers is rejected outright.
func Parse(data []byte) ([]*models.JobApplication, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, models.NewValidationError("File is not a valid xlsx workbook")
	}
	if len(file.Sheets) == 0 {
		return nil, models.NewValidationError("Workbook has no sheets")
	}
	sheet := file.Sheets[0]

	cols, err := headerIndex(sheet)
	if err != nil {
		return nil, err
	}

	var apps []*models.JobApplication
	for r := 1; r < sheet.MaxRow; r++ {
		company := cellString(sheet, r, cols, ColCompany)
		jobTitle := cellString(sheet, r, cols, ColJobTitle)
		if company == "" || jobTitle == "" {
			continue
		}

		app := &models.JobApplication{
			Company:         company,
			JobTitle:        jobTitle,
			Location:        cellString(sheet, r, cols, ColLocation),
			Source:          cellString(sheet, r, cols, ColSource),
			JobLink:         cellString(sheet, r, cols, ColJobLink),
			ResumeVersion:   cellString(sheet, r, cols, ColResumeVersion),
			CurrentStatus:   cellString(sheet, r, cols, ColCurrentStatus),
			RecruiterInfo:   cellString(sheet, r, cols, ColRecruiter),
			SalaryRange:     cellString(sheet, r, cols, ColSalaryRange),
			ReferralContact: cellString(sheet, r, cols, ColReferralContact),
			Notes:           cellString(sheet, r, cols, ColNotes),
			Priority:        parsePriorityCell(cellString(sheet, r, cols, ColPriority)),
			Timezone:        models.DefaultTimezone,
		}
		if app.CurrentStatus == "" {
			app.CurrentStatus = models.DefaultStatus
		}

		if d := cellDate(sheet, r, cols, ColDateApplied); d != nil {
			app.DateApplied = models.NewDate(*d)
		} else {
			app.DateApplied = models.Today()
		}
		if d := cellDate(sheet, r, cols, ColLastContacted); d != nil {
			date := models.NewDate(*d)
			app.LastContactedDate = &date
		}

		apps = append(apps, app)
	}

	return apps, nil
}

// headerIndex maps header names in row 1 to their column index.
func headerIndex(sheet *xlsx.Sheet) (map[string]int, error) {
	if sheet.MaxRow == 0 {
		return nil, models.NewValidationError("Workbook is empty")
	}
	cols := make(map[string]int)
	for c := 0; c < sheet.MaxCol; c++ {
		cell, err := sheet.Cell(0, c)
		if err != nil {
			continue
		}
		if name := strings.TrimSpace(cell.String()); name != "" {
			cols[name] = c
		}
	}
	for _, required := range []string{ColCompany, ColJobTitle} {
		if _, ok := cols[required]; !ok {
			return nil, models.NewValidationError("Missing required column: " + required)
		}
	}
	return cols, nil
}

func cellString(sheet *xlsx.Sheet, row int, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok {
		return ""
	}
	cell, err := sheet.Cell(row, idx)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cell.String())
}

// cellDate extracts a date from either a native xlsx time cell or a textual
// value. Blank or unparseable cells yield nil, never an error.
func cellDate(sheet *xlsx.Sheet, row int, cols map[string]int, name string) *time.Time {
	idx, ok := cols[name]
	if !ok {
		return nil
	}
	cell, err := sheet.Cell(row, idx)
	if err != nil {
		return nil
	}
	if cell.IsTime() {
		if t, err := cell.GetTime(false); err == nil {
			return &t
		}
		return nil
	}
	return parseDateOrNone(strings.TrimSpace(cell.String()))
}

// dateLayouts are tried in order by parseDateOrNone.
var dateLayouts = []string{
	models.DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"2006/01/02",
	"Jan 2, 2006",
}

// parseDateOrNone makes the import's skip-on-failure policy explicit: it
// returns nil for anything it cannot parse rather than raising.
func parseDateOrNone(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// parsePriorityCell accepts only all-digit cells; anything else, including
// negative or decimal values, falls back to the default. This mirrors the
// documented import behavior and is intentionally stricter than add/edit.
func parsePriorityCell(s string) int {
	if s == "" || !isDigits(s) {
		return models.DefaultPriority
	}
	p, err := strconv.Atoi(s)
	if err != nil {
		return models.DefaultPriority
	}
	return p
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

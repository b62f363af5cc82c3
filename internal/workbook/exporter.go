package workbook

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"jobtrail/internal/models"

	"github.com/tealeg/xlsx/v3"
)

// Filename returns the download name for an export generated at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("job_applications_rainbow_%s.xlsx", now.Format("20060102"))
}

// Export serializes the given applications into a styled single-sheet
// workbook and returns the file bytes. No partial file is returned on error.
func Export(apps []models.JobApplication) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("adding sheet: %w", err)
	}

	headerStyle := newHeaderStyle()
	rowStyles := newRowStyles()

	header := sheet.AddRow()
	for _, name := range Columns {
		cell := header.AddCell()
		cell.Value = name
		cell.SetStyle(headerStyle)
	}

	// Every body row gets a full set of styled cells whether or not it holds
	// data, so the rainbow banding covers rows typed in later. The styled
	// range runs through sheet row max(minStyledRows, records+styledRowBuffer).
	maxRow := minStyledRows
	if len(apps)+styledRowBuffer > maxRow {
		maxRow = len(apps) + styledRowBuffer
	}
	bodyRows := maxRow - 1

	for i := 0; i < bodyRows; i++ {
		row := sheet.AddRow()
		style := rowStyles[i%len(rowStyles)]
		cells := make([]*xlsx.Cell, len(Columns))
		for c := range cells {
			cells[c] = row.AddCell()
			cells[c].SetStyle(style)
		}

		if i >= len(apps) {
			continue
		}
		a := apps[i]
		cells[0].Value = a.Company
		cells[1].Value = a.JobTitle
		cells[2].Value = a.Location
		cells[3].Value = a.DateApplied.Format(models.DateLayout)
		cells[4].Value = a.Source
		cells[5].Value = a.JobLink
		cells[6].Value = a.ResumeVersion
		cells[7].Value = a.CurrentStatus
		if a.LastContactedDate != nil {
			cells[8].Value = a.LastContactedDate.Format(models.DateLayout)
		}
		cells[9].Value = a.RecruiterInfo
		cells[10].Value = a.SalaryRange
		cells[11].Value = a.ReferralContact
		cells[12].Value = a.Notes
		cells[13].SetInt(a.Priority)
	}

	if err := addDropdowns(sheet); err != nil {
		return nil, err
	}

	// Freeze the header row.
	sheet.SheetViews = []xlsx.SheetView{{
		Pane: &xlsx.Pane{
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
			State:       "frozen",
		},
	}}

	for col, width := range columnWidths {
		sheet.SetColWidth(col, col, width)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// addDropdowns restricts the Source and Current Status columns to their
// suggested value sets for the first minStyledRows data rows. Blanks stay
// allowed.
func addDropdowns(sheet *xlsx.Sheet) error {
	sourceCol := indexOf(Columns, ColSource)
	statusCol := indexOf(Columns, ColCurrentStatus)

	dvSource := xlsx.NewDataValidation(1, sourceCol, minStyledRows-1, sourceCol, true)
	if err := dvSource.SetDropList(models.SourceOptions); err != nil {
		return fmt.Errorf("source dropdown: %w", err)
	}
	sheet.AddDataValidation(dvSource)

	dvStatus := xlsx.NewDataValidation(1, statusCol, minStyledRows-1, statusCol, true)
	if err := dvStatus.SetDropList(models.StatusOptions); err != nil {
		return fmt.Errorf("status dropdown: %w", err)
	}
	sheet.AddDataValidation(dvStatus)
	return nil
}

func newHeaderStyle() *xlsx.Style {
	style := xlsx.NewStyle()
	style.Fill = *xlsx.NewFill("solid", argb(headerFillColor), argb(headerFillColor))
	style.Font.Bold = true
	style.Font.Color = argb(headerFontColor)
	style.Alignment.Horizontal = "center"
	style.Border = *thinBorder()
	style.ApplyFill = true
	style.ApplyFont = true
	style.ApplyAlignment = true
	style.ApplyBorder = true
	return style
}

// newRowStyles builds one reusable style per palette color.
func newRowStyles() []*xlsx.Style {
	styles := make([]*xlsx.Style, len(rainbowPalette))
	for i, color := range rainbowPalette {
		style := xlsx.NewStyle()
		style.Fill = *xlsx.NewFill("solid", argb(color), argb(color))
		style.Border = *thinBorder()
		style.ApplyFill = true
		style.ApplyBorder = true
		styles[i] = style
	}
	return styles
}

func thinBorder() *xlsx.Border {
	border := xlsx.NewBorder("thin", "thin", "thin", "thin")
	border.LeftColor = argb(borderColor)
	border.RightColor = argb(borderColor)
	border.TopColor = argb(borderColor)
	border.BottomColor = argb(borderColor)
	return border
}

// argb prefixes a 6-digit RGB hex with full alpha, the form xlsx expects.
func argb(rgb string) string {
	return "FF" + rgb
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	panic("unknown column " + strconv.Quote(name))
}

package workbook

import (
	"bytes"
	"testing"
	"time"

	"jobtrail/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
)

func sampleApplications() []models.JobApplication {
	contacted, _ := models.ParseDate("2024-03-05")
	apps := []models.JobApplication{
		{
			Company:           "Acme",
			JobTitle:          "Engineer",
			Location:          "NYC",
			DateApplied:       mustDate("2024-03-01"),
			Source:            "LinkedIn",
			JobLink:           "https://example.com/jd",
			ResumeVersion:     "v2",
			CurrentStatus:     "Interview",
			LastContactedDate: &contacted,
			RecruiterInfo:     "Sam <sam@acme.test>",
			SalaryRange:       "$120k-$150k",
			ReferralContact:   "Jo",
			Notes:             "phone screen done",
			Priority:          8,
		},
		{
			Company:     "Globex",
			JobTitle:    "Backend Developer",
			DateApplied: mustDate("2024-02-20"),
			Priority:    5,
		},
		{
			Company:     "Initech",
			JobTitle:    "SRE",
			DateApplied: mustDate("2024-02-20"),
			Priority:    3,
		},
	}
	for i := range apps {
		apps[i].CurrentStatus = defaultIfEmpty(apps[i].CurrentStatus)
	}
	return apps
}

func defaultIfEmpty(s string) string {
	if s == "" {
		return models.DefaultStatus
	}
	return s
}

func mustDate(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExportParseRoundTrip(t *testing.T) {
	apps := sampleApplications()

	data, err := Export(apps)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	parsed, err := Parse(data)
	require.NoError(t, err)
	// 500 styled rows, but only 3 carry a Company and Job Title.
	require.Len(t, parsed, 3)

	got := parsed[0]
	want := apps[0]
	assert.Equal(t, want.Company, got.Company)
	assert.Equal(t, want.JobTitle, got.JobTitle)
	assert.Equal(t, want.Location, got.Location)
	assert.Equal(t, want.Source, got.Source)
	assert.Equal(t, want.JobLink, got.JobLink)
	assert.Equal(t, want.ResumeVersion, got.ResumeVersion)
	assert.Equal(t, want.CurrentStatus, got.CurrentStatus)
	assert.Equal(t, want.RecruiterInfo, got.RecruiterInfo)
	assert.Equal(t, want.SalaryRange, got.SalaryRange)
	assert.Equal(t, want.ReferralContact, got.ReferralContact)
	assert.Equal(t, want.Notes, got.Notes)
	assert.Equal(t, want.Priority, got.Priority)
	assert.Equal(t, want.DateApplied.String(), got.DateApplied.String())
	require.NotNil(t, got.LastContactedDate)
	assert.Equal(t, want.LastContactedDate.String(), got.LastContactedDate.String())

	assert.Nil(t, parsed[1].LastContactedDate)
}

func TestExportSheetShape(t *testing.T) {
	data, err := Export(sampleApplications())
	require.NoError(t, err)

	file, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Applications", sheet.Name)
	// Header plus the 500-row styled band.
	assert.Equal(t, minStyledRows, sheet.MaxRow)

	for c, want := range Columns {
		cell, err := sheet.Cell(0, c)
		require.NoError(t, err)
		assert.Equal(t, want, cell.String())
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "job_applications_rainbow_20240309.xlsx", Filename(now))
}

func buildWorkbook(t *testing.T, headers []string, rows [][]string) []byte {
	t.Helper()
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sheet1")
	require.NoError(t, err)

	hr := sheet.AddRow()
	for _, h := range headers {
		hr.AddCell().Value = h
	}
	for _, row := range rows {
		r := sheet.AddRow()
		for _, v := range row {
			r.AddCell().Value = v
		}
	}

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	return buf.Bytes()
}

func TestParseSkipsRowsMissingRequiredFields(t *testing.T) {
	headers := []string{ColCompany, ColJobTitle, ColPriority}
	data := buildWorkbook(t, headers, [][]string{
		{"", "Engineer", "4"},
		{"Acme", "", "4"},
		{"", "", ""},
		{"Globex", "Developer", "7"},
	})

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "Globex", parsed[0].Company)
	assert.Equal(t, 7, parsed[0].Priority)
}

func TestParsePriorityFallback(t *testing.T) {
	headers := []string{ColCompany, ColJobTitle, ColPriority}
	data := buildWorkbook(t, headers, [][]string{
		{"A", "T", "abc"},
		{"B", "T", "-5"},
		{"C", "T", "3.5"},
		{"D", "T", ""},
		{"E", "T", "8"},
	})

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, parsed, 5)

	assert.Equal(t, 5, parsed[0].Priority)
	assert.Equal(t, 5, parsed[1].Priority)
	assert.Equal(t, 5, parsed[2].Priority)
	assert.Equal(t, 5, parsed[3].Priority)
	assert.Equal(t, 8, parsed[4].Priority)
}

func TestParseDateFallback(t *testing.T) {
	headers := []string{ColCompany, ColJobTitle, ColDateApplied, ColLastContacted}
	data := buildWorkbook(t, headers, [][]string{
		{"Acme", "Engineer", "not a date", "also not a date"},
		{"Globex", "Developer", "2024-03-01", "03/05/2024"},
	})

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	// Unparseable dates do not abort the row: date_applied falls back to
	// today, last_contacted stays unset.
	assert.Equal(t, models.Today().String(), parsed[0].DateApplied.String())
	assert.Nil(t, parsed[0].LastContactedDate)

	assert.Equal(t, "2024-03-01", parsed[1].DateApplied.String())
	require.NotNil(t, parsed[1].LastContactedDate)
	assert.Equal(t, "2024-03-05", parsed[1].LastContactedDate.String())
}

func TestParseStatusDefault(t *testing.T) {
	headers := []string{ColCompany, ColJobTitle, ColCurrentStatus}
	data := buildWorkbook(t, headers, [][]string{
		{"Acme", "Engineer", ""},
		{"Globex", "Developer", "Offer"},
	})

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, "Applied", parsed[0].CurrentStatus)
	assert.Equal(t, "Offer", parsed[1].CurrentStatus)
}

func TestParseRejectsMissingRequiredHeaders(t *testing.T) {
	data := buildWorkbook(t, []string{ColCompany, ColLocation}, [][]string{
		{"Acme", "NYC"},
	})

	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColJobTitle)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("definitely not a zip archive"))
	require.Error(t, err)
}

// Package workbook builds and reads the xlsx transfer format for job
// applications. The column layout is fixed; import matches columns by
// header name.
package workbook

// Column headers, in sheet order. Import resolves headers by these exact
// names, so they must not drift from what Export writes.
const (
	ColCompany         = "Company"
	ColJobTitle        = "Job Title"
	ColLocation        = "Location"
	ColDateApplied     = "Date Applied"
	ColSource          = "Source"
	ColJobLink         = "Job Link/JD"
	ColResumeVersion   = "Resume Version"
	ColCurrentStatus   = "Current Status"
	ColLastContacted   = "Last Contacted"
	ColRecruiter       = "Recruiter/HM"
	ColSalaryRange     = "Salary/TC Range"
	ColReferralContact = "Referral/Contact"
	ColNotes           = "Interview Notes"
	ColPriority        = "Priority(1-10)"
)

// Columns is the fixed 14-column export layout.
var Columns = []string{
	ColCompany, ColJobTitle, ColLocation, ColDateApplied, ColSource,
	ColJobLink, ColResumeVersion, ColCurrentStatus, ColLastContacted,
	ColRecruiter, ColSalaryRange, ColReferralContact, ColNotes, ColPriority,
}

// Sheet geometry shared by export and its tests.
const (
	sheetName = "Applications"

	// Dropdown validation and row styling cover at least this many data rows
	// so rows typed in later still pick them up.
	minStyledRows = 500

	// Extra styled rows past the last data row when there are more than
	// minStyledRows records.
	styledRowBuffer = 20
)

// rainbowPalette is cycled across body rows, indexed by (row-2) mod 8.
var rainbowPalette = []string{
	"EBF5FB", "E9F7EF", "FEF9E7", "F5EEF8",
	"FDEDEC", "FEF5E7", "E8F8F5", "F2F4F4",
}

const (
	headerFillColor  = "2E75B6"
	headerFontColor  = "FFFFFF"
	borderColor      = "DDDDDD"
)

// Fixed widths for specific columns (1-based); others keep format defaults.
var columnWidths = map[int]float64{
	1:  22, // Company
	2:  25, // Job Title
	5:  18, // Source
	8:  18, // Current Status
	13: 50, // Interview Notes
}

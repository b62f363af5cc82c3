package models

import (
	"time"
)

// Suggested values for JobApplication.CurrentStatus. Free text is accepted;
// these are the options offered in exported spreadsheet dropdowns.
var StatusOptions = []string{"Applied", "OA", "Interview", "Offer", "Rejected", "Ghosted"}

// Suggested values for JobApplication.Source, mirrored in export dropdowns.
var SourceOptions = []string{"LinkedIn", "Indeed", "Company Website", "Referral", "Handshake", "Recruiter"}

// Defaults applied when a field is not supplied.
const (
	DefaultStatus   = "Applied"
	DefaultPriority = 5
	DefaultTimezone = "EST"
)

// JobApplication is one tracked job application, owned by exactly one user.
type JobApplication struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	Company     string `gorm:"not null" json:"company"`
	JobTitle    string `gorm:"not null" json:"job_title"`
	Location    string `json:"location"`
	DateApplied Date   `json:"date_applied"`
	Source      string `json:"source"`
	JobLink     string `json:"job_link"`

	ResumeVersion     string `json:"resume_version"`
	CurrentStatus     string `gorm:"default:'Applied'" json:"current_status"`
	LastContactedDate *Date  `json:"last_contacted_date"`
	NextFollowUpDate  *Date  `json:"next_follow_up_date"`

	RecruiterInfo   string `gorm:"type:text" json:"recruiter_info"`
	SalaryRange     string `json:"salary_range"`
	ReferralContact string `json:"referral_contact"`
	Notes           string `gorm:"type:text" json:"notes"`
	Priority        int    `gorm:"default:5" json:"priority"`
	Timezone        string `gorm:"default:'EST'" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

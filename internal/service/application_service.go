// Package service implements the gated record operations over job applications.
package service

import (
	"context"
	"strconv"
	"strings"

	"jobtrail/internal/cache"
	"jobtrail/internal/models"
	"jobtrail/internal/repository"
)

// ApplicationService owns the add/edit/delete/list semantics, including the
// per-owner access gate. Caller identity is always an explicit parameter;
// client-supplied owner ids are never trusted.
type ApplicationService struct {
	repo repository.ApplicationRepository
}

// NewApplicationService creates a new application service.
func NewApplicationService(repo repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

// ApplicationInput carries the raw field values of an add or edit request.
// Dates are "YYYY-MM-DD" strings; empty means absent.
type ApplicationInput struct {
	Company           string `json:"company"`
	JobTitle          string `json:"job_title"`
	Location          string `json:"location"`
	DateApplied       string `json:"date_applied"`
	Source            string `json:"source"`
	JobLink           string `json:"job_link"`
	ResumeVersion     string `json:"resume_version"`
	CurrentStatus     string `json:"current_status"`
	LastContactedDate string `json:"last_contacted_date"`
	NextFollowUpDate  string `json:"next_follow_up_date"`
	RecruiterInfo     string `json:"recruiter_info"`
	SalaryRange       string `json:"salary_range"`
	ReferralContact   string `json:"referral_contact"`
	Notes             string `json:"notes"`
	Priority          string `json:"priority"`
	Timezone          string `json:"timezone"`
}

// List returns the owner's applications ordered by date_applied descending,
// serving from the per-owner cache when warm.
func (s *ApplicationService) List(ctx context.Context, ownerID uint) ([]models.JobApplication, error) {
	var cached []models.JobApplication
	if cache.GetJSON(ctx, cache.ApplicationsKey(ownerID), &cached) {
		return cached, nil
	}

	apps, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, cache.ApplicationsKey(ownerID), apps, cache.ApplicationsTTL)
	return apps, nil
}

// Get returns a single record after the ownership gate.
func (s *ApplicationService) Get(ctx context.Context, ownerID, id uint) (*models.JobApplication, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.UserID != ownerID {
		return nil, models.NewUnauthorizedError("You can only access your own applications")
	}
	return app, nil
}

// Add creates a record owned by ownerID and returns the owner's re-sorted list.
func (s *ApplicationService) Add(ctx context.Context, ownerID uint, in ApplicationInput) ([]models.JobApplication, error) {
	if strings.TrimSpace(in.Company) == "" || strings.TrimSpace(in.JobTitle) == "" {
		return nil, models.NewValidationError("Company and job title are required")
	}

	priority, err := parsePriority(in.Priority)
	if err != nil {
		return nil, err
	}

	app := &models.JobApplication{
		UserID:          ownerID,
		Company:         in.Company,
		JobTitle:        in.JobTitle,
		Location:        in.Location,
		DateApplied:     models.Today(),
		Source:          in.Source,
		JobLink:         in.JobLink,
		ResumeVersion:   in.ResumeVersion,
		CurrentStatus:   models.DefaultStatus,
		RecruiterInfo:   in.RecruiterInfo,
		SalaryRange:     in.SalaryRange,
		ReferralContact: in.ReferralContact,
		Notes:           in.Notes,
		Priority:        priority,
		Timezone:        models.DefaultTimezone,
	}
	if in.CurrentStatus != "" {
		app.CurrentStatus = in.CurrentStatus
	}
	if in.Timezone != "" {
		app.Timezone = in.Timezone
	}

	if in.DateApplied != "" {
		d, err := models.ParseDate(in.DateApplied)
		if err != nil {
			return nil, models.NewValidationError("date_applied must be a YYYY-MM-DD date")
		}
		app.DateApplied = d
	}
	if app.LastContactedDate, err = parseOptionalDate(in.LastContactedDate, "last_contacted_date"); err != nil {
		return nil, err
	}
	if app.NextFollowUpDate, err = parseOptionalDate(in.NextFollowUpDate, "next_follow_up_date"); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	cache.InvalidateApplications(ctx, ownerID)
	return s.repo.ListByOwner(ctx, ownerID)
}

// Edit applies the same field semantics as Add to an existing record after
// the ownership gate. Absent last_contacted_date / next_follow_up_date inputs
// clear the stored values; an absent date_applied keeps the prior one.
func (s *ApplicationService) Edit(ctx context.Context, ownerID, id uint, in ApplicationInput) ([]models.JobApplication, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.UserID != ownerID {
		return nil, models.NewUnauthorizedError("You can only edit your own applications")
	}

	if strings.TrimSpace(in.Company) == "" || strings.TrimSpace(in.JobTitle) == "" {
		return nil, models.NewValidationError("Company and job title are required")
	}

	priority, err := parsePriority(in.Priority)
	if err != nil {
		return nil, err
	}

	app.Company = in.Company
	app.JobTitle = in.JobTitle
	app.Location = in.Location
	app.Source = in.Source
	app.JobLink = in.JobLink
	app.ResumeVersion = in.ResumeVersion
	app.RecruiterInfo = in.RecruiterInfo
	app.SalaryRange = in.SalaryRange
	app.ReferralContact = in.ReferralContact
	app.Notes = in.Notes
	app.Priority = priority
	app.CurrentStatus = in.CurrentStatus
	if app.CurrentStatus == "" {
		app.CurrentStatus = models.DefaultStatus
	}

	if in.DateApplied != "" {
		d, err := models.ParseDate(in.DateApplied)
		if err != nil {
			return nil, models.NewValidationError("date_applied must be a YYYY-MM-DD date")
		}
		app.DateApplied = d
	}
	if app.LastContactedDate, err = parseOptionalDate(in.LastContactedDate, "last_contacted_date"); err != nil {
		return nil, err
	}
	if app.NextFollowUpDate, err = parseOptionalDate(in.NextFollowUpDate, "next_follow_up_date"); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	cache.InvalidateApplications(ctx, ownerID)
	return s.repo.ListByOwner(ctx, ownerID)
}

// Delete removes a record permanently after the ownership gate and returns
// the owner's updated list.
func (s *ApplicationService) Delete(ctx context.Context, ownerID, id uint) ([]models.JobApplication, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.UserID != ownerID {
		return nil, models.NewUnauthorizedError("You can only delete your own applications")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	cache.InvalidateApplications(ctx, ownerID)
	return s.repo.ListByOwner(ctx, ownerID)
}

// Import stages pre-built records and commits them in one transaction.
// All rows land or none do.
func (s *ApplicationService) Import(ctx context.Context, ownerID uint, apps []*models.JobApplication) (int, error) {
	for _, app := range apps {
		app.UserID = ownerID
	}
	if err := s.repo.CreateBatch(ctx, apps); err != nil {
		return 0, err
	}
	cache.InvalidateApplications(ctx, ownerID)
	return len(apps), nil
}

// parsePriority coerces the priority field: absent means the default, and a
// present value must be an integer.
func parsePriority(raw string) (int, error) {
	if raw == "" {
		return models.DefaultPriority, nil
	}
	p, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.NewValidationError("priority must be an integer")
	}
	return p, nil
}

func parseOptionalDate(raw, field string) (*models.Date, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, models.NewValidationError(field + " must be a YYYY-MM-DD date")
	}
	return &d, nil
}

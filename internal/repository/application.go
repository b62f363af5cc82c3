package repository

import (
	"context"
	"errors"

	"jobtrail/internal/models"

	"gorm.io/gorm"
)

// ApplicationRepository defines the interface for job application data operations.
type ApplicationRepository interface {
	// ListByOwner returns every application owned by ownerID, newest
	// date_applied first. Equal dates keep insertion order.
	ListByOwner(ctx context.Context, ownerID uint) ([]models.JobApplication, error)
	GetByID(ctx context.Context, id uint) (*models.JobApplication, error)
	Create(ctx context.Context, app *models.JobApplication) error
	// CreateBatch inserts all applications in a single transaction; either
	// every row is committed or none are.
	CreateBatch(ctx context.Context, apps []*models.JobApplication) error
	Update(ctx context.Context, app *models.JobApplication) error
	Delete(ctx context.Context, id uint) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	// id ASC tie-break keeps records with equal dates in insertion order.
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date_applied DESC, id ASC").
		Find(&apps).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return apps, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.JobApplication, error) {
	var app models.JobApplication
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Application", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &app, nil
}

func (r *applicationRepository) Create(ctx context.Context, app *models.JobApplication) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) CreateBatch(ctx context.Context, apps []*models.JobApplication) error {
	if len(apps) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, app := range apps {
			if err := tx.Create(app).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) Update(ctx context.Context, app *models.JobApplication) error {
	if err := r.db.WithContext(ctx).Save(app).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.JobApplication{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

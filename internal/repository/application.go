package repository

import (
	"context"
	"errors"

	"workhub/internal/models"

	"gorm.io/gorm"
)

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	// Create inserts the application. A violation of the (job, applicant)
	// unique index is reported as a conflict, which makes concurrent
	// duplicate applies collapse to a single row.
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	// GetByIDWithJob loads the application with its parent job, which
	// callers need for ownership checks.
	GetByIDWithJob(ctx context.Context, id uint) (*models.Application, error)
	ExistsForJobAndApplicant(ctx context.Context, jobID, applicantID uint) (bool, error)
	// AppliedJobIDs returns the subset of jobIDs the applicant has applied to.
	AppliedJobIDs(ctx context.Context, applicantID uint, jobIDs []uint) ([]uint, error)
	ListByApplicant(ctx context.Context, applicantID uint) ([]*models.Application, error)
	ListByJob(ctx context.Context, jobID uint) ([]*models.Application, error)
	CountByJobIDs(ctx context.Context, jobIDs []uint) (int64, error)
	// StatusCounts returns how many applications to the given jobs hold each
	// status value, including values outside the known set.
	StatusCounts(ctx context.Context, jobIDs []uint) (map[models.ApplicationStatus]int, error)
	Update(ctx context.Context, app *models.Application) error
	Delete(ctx context.Context, id uint) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository returns a new ApplicationRepository implementation.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *models.Application) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("You have already applied for this job")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).First(&app, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Application", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &app, nil
}

func (r *applicationRepository) GetByIDWithJob(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).Preload("Job").First(&app, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Application", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &app, nil
}

func (r *applicationRepository) ExistsForJobAndApplicant(ctx context.Context, jobID, applicantID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *applicationRepository) AppliedJobIDs(ctx context.Context, applicantID uint, jobIDs []uint) ([]uint, error) {
	if len(jobIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("applicant_id = ? AND job_id IN ?", applicantID, jobIDs).
		Pluck("job_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID uint) ([]*models.Application, error) {
	var apps []*models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.PostedBy").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return apps, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID uint) ([]*models.Application, error) {
	var apps []*models.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return apps, nil
}

func (r *applicationRepository) CountByJobIDs(ctx context.Context, jobIDs []uint) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("job_id IN ?", jobIDs).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *applicationRepository) StatusCounts(ctx context.Context, jobIDs []uint) (map[models.ApplicationStatus]int, error) {
	counts := make(map[models.ApplicationStatus]int)
	if len(jobIDs) == 0 {
		return counts, nil
	}

	type statusCount struct {
		Status models.ApplicationStatus
		Count  int
	}
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Select("status, COUNT(*) as count").
		Where("job_id IN ?", jobIDs).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *applicationRepository) Update(ctx context.Context, app *models.Application) error {
	if err := r.db.WithContext(ctx).Save(app).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Application{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

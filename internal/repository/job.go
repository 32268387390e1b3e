package repository

import (
	"context"
	"errors"

	"workhub/internal/models"

	"gorm.io/gorm"
)

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	// List returns all jobs newest-first with the poster preloaded and
	// ApplicantCount populated.
	List(ctx context.Context) ([]*models.Job, error)
	// ListByPoster returns the given recruiter's jobs newest-first with
	// ApplicantCount populated.
	ListByPoster(ctx context.Context, posterID uint) ([]*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	// Delete removes the job and all applications referencing it in one
	// transaction, so no orphan applications survive.
	Delete(ctx context.Context, id uint) error
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository returns a new JobRepository implementation.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).Preload("PostedBy").First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Job", id)
		}
		return nil, models.NewInternalError(err)
	}
	if err := r.fillApplicantCounts(ctx, []*models.Job{&job}); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.WithContext(ctx).
		Preload("PostedBy").
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.fillApplicantCounts(ctx, jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) ListByPoster(ctx context.Context, posterID uint) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.WithContext(ctx).
		Where("posted_by_id = ?", posterID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.fillApplicantCounts(ctx, jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// fillApplicantCounts populates the computed ApplicantCount field from the
// applications table in a single grouped query.
func (r *jobRepository) fillApplicantCounts(ctx context.Context, jobs []*models.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	jobIDs := make([]uint, len(jobs))
	for i, j := range jobs {
		jobIDs[i] = j.ID
	}

	type jobCount struct {
		JobID uint
		Count int
	}
	var counts []jobCount
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Select("job_id, COUNT(*) as count").
		Where("job_id IN ?", jobIDs).
		Group("job_id").
		Scan(&counts).Error
	if err != nil {
		return models.NewInternalError(err)
	}

	countMap := make(map[uint]int, len(counts))
	for _, c := range counts {
		countMap[c.JobID] = c.Count
	}
	for _, j := range jobs {
		j.ApplicantCount = countMap[j.ID]
	}
	return nil
}

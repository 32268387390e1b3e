package service

import (
	"context"

	"workhub/internal/cache"
	"workhub/internal/models"
	"workhub/internal/repository"
)

// JobService implements posting management for recruiters and the public
// listing served to candidates.
type JobService struct {
	jobRepo  repository.JobRepository
	appRepo  repository.ApplicationRepository
	userRepo repository.UserRepository
}

type CreateJobInput struct {
	RecruiterID  uint
	Title        string
	Description  string
	Company      string
	Location     string
	Salary       string
	Requirements string
	ContactName  string
	ContactEmail string
}

type UpdateJobInput struct {
	RecruiterID uint
	JobID       uint
	Fields      models.JobUpdate
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo repository.JobRepository, appRepo repository.ApplicationRepository, userRepo repository.UserRepository) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		userRepo: userRepo,
	}
}

// Create posts a new job owned by the recruiter.
func (s *JobService) Create(ctx context.Context, in CreateJobInput) (*models.Job, error) {
	user, err := s.userRepo.GetByID(ctx, in.RecruiterID)
	if err != nil {
		return nil, err
	}
	if !CanCreateJob(user) {
		return nil, models.NewForbiddenError("Only recruiters can post jobs")
	}

	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}

	job := &models.Job{
		Title:        in.Title,
		Description:  in.Description,
		Company:      in.Company,
		Location:     in.Location,
		Salary:       in.Salary,
		Requirements: in.Requirements,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		PostedByID:   in.RecruiterID,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	cache.InvalidateJobs(ctx)
	return job, nil
}

// ListAll returns every job newest-first with the poster summary and, for the
// requesting user, the isApplied flag. The user-neutral listing is cached;
// the per-user flag is re-applied after a cache hit.
func (s *JobService) ListAll(ctx context.Context, requestingUserID uint) ([]*models.Job, error) {
	var jobs []*models.Job
	err := cache.Aside(ctx, cache.JobListKey(), &jobs, cache.JobListTTL, func() error {
		var fetchErr error
		jobs, fetchErr = s.jobRepo.List(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}

	if requestingUserID != 0 && len(jobs) > 0 {
		jobIDs := make([]uint, len(jobs))
		for i, j := range jobs {
			jobIDs[i] = j.ID
		}
		appliedIDs, err := s.appRepo.AppliedJobIDs(ctx, requestingUserID, jobIDs)
		if err != nil {
			return nil, err
		}
		appliedMap := make(map[uint]bool, len(appliedIDs))
		for _, id := range appliedIDs {
			appliedMap[id] = true
		}
		for _, j := range jobs {
			j.IsApplied = appliedMap[j.ID]
		}
	}
	return jobs, nil
}

// ListMine returns the recruiter's own jobs, newest first.
func (s *JobService) ListMine(ctx context.Context, recruiterID uint) ([]*models.Job, error) {
	return s.jobRepo.ListByPoster(ctx, recruiterID)
}

// Update edits a job with merge-if-truthy semantics: an empty incoming field
// leaves the stored value unchanged, so a field cannot be cleared here.
func (s *JobService) Update(ctx context.Context, in UpdateJobInput) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, in.JobID)
	if err != nil {
		return nil, err
	}
	if !CanMutateJob(in.RecruiterID, job) {
		return nil, models.NewForbiddenError("You can only update your own job postings")
	}

	if in.Fields.Title != "" {
		job.Title = in.Fields.Title
	}
	if in.Fields.Description != "" {
		job.Description = in.Fields.Description
	}
	if in.Fields.Company != "" {
		job.Company = in.Fields.Company
	}
	if in.Fields.Location != "" {
		job.Location = in.Fields.Location
	}
	if in.Fields.Salary != "" {
		job.Salary = in.Fields.Salary
	}
	if in.Fields.Requirements != "" {
		job.Requirements = in.Fields.Requirements
	}
	if in.Fields.ContactName != "" {
		job.ContactName = in.Fields.ContactName
	}
	if in.Fields.ContactEmail != "" {
		job.ContactEmail = in.Fields.ContactEmail
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	cache.InvalidateJob(ctx, job.ID)
	return job, nil
}

// Delete removes the job and cascades deletion of its applications.
func (s *JobService) Delete(ctx context.Context, recruiterID, jobID uint) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if !CanMutateJob(recruiterID, job) {
		return models.NewForbiddenError("You can only delete your own job postings")
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return err
	}

	cache.InvalidateJob(ctx, jobID)
	return nil
}

// ToggleFeatured flips the featured flag and returns the new value.
func (s *JobService) ToggleFeatured(ctx context.Context, recruiterID, jobID uint) (bool, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return false, err
	}
	if !CanMutateJob(recruiterID, job) {
		return false, models.NewForbiddenError("You can only feature your own job postings")
	}

	job.IsFeatured = !job.IsFeatured
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return false, err
	}

	cache.InvalidateJob(ctx, jobID)
	return job.IsFeatured, nil
}

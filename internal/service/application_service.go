package service

import (
	"context"
	"time"

	"workhub/internal/cache"
	"workhub/internal/models"
	"workhub/internal/repository"
)

// ApplicationService implements the application lifecycle: apply, triage by
// the recruiter, interview scheduling, and withdrawal.
type ApplicationService struct {
	appRepo repository.ApplicationRepository
	jobRepo repository.JobRepository
}

type ApplyInput struct {
	CandidateID uint
	JobID       uint
	ResumeURL   string
	CoverLetter string
}

type UpdateStatusInput struct {
	RecruiterID   uint
	ApplicationID uint
	Status        models.ApplicationStatus
}

type ScheduleInterviewInput struct {
	RecruiterID   uint
	ApplicationID uint
	Date          time.Time
	Location      string
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(appRepo repository.ApplicationRepository, jobRepo repository.JobRepository) *ApplicationService {
	return &ApplicationService{
		appRepo: appRepo,
		jobRepo: jobRepo,
	}
}

// Apply creates an application for the candidate on the given job. At most
// one application per (job, candidate) pair can exist: a sequential duplicate
// is caught by the existence check, a concurrent one by the unique index.
func (s *ApplicationService) Apply(ctx context.Context, in ApplyInput) (*models.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, in.JobID)
	if err != nil {
		return nil, err
	}

	exists, err := s.appRepo.ExistsForJobAndApplicant(ctx, job.ID, in.CandidateID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("You have already applied for this job")
	}

	app := &models.Application{
		JobID:       job.ID,
		ApplicantID: in.CandidateID,
		Status:      models.StatusApplied,
		ResumeURL:   in.ResumeURL,
		CoverLetter: in.CoverLetter,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	cache.InvalidateJob(ctx, job.ID)
	return app, nil
}

// ListMine returns the candidate's applications, newest first, with each
// parent job populated.
func (s *ApplicationService) ListMine(ctx context.Context, candidateID uint) ([]*models.Application, error) {
	return s.appRepo.ListByApplicant(ctx, candidateID)
}

// ListForJob returns the applications to a job, newest first with applicant
// summaries, for the recruiter who owns it.
func (s *ApplicationService) ListForJob(ctx context.Context, recruiterID, jobID uint) ([]*models.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !CanManageApplication(recruiterID, job) {
		return nil, models.NewForbiddenError("Only the recruiter who posted this job can view its applications")
	}
	return s.appRepo.ListByJob(ctx, jobID)
}

// UpdateStatus moves an application to the given status. Any status is
// reachable from any other; terminal states are deliberately not enforced.
func (s *ApplicationService) UpdateStatus(ctx context.Context, in UpdateStatusInput) (*models.Application, error) {
	if !in.Status.Valid() {
		return nil, models.NewValidationError("Invalid application status")
	}

	app, err := s.appRepo.GetByIDWithJob(ctx, in.ApplicationID)
	if err != nil {
		return nil, err
	}
	if !CanManageApplication(in.RecruiterID, app.Job) {
		return nil, models.NewForbiddenError("Only the recruiter who posted this job can update application status")
	}

	app.Status = in.Status
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ScheduleInterview records the interview details and moves the application
// to the interview status, regardless of its prior state.
func (s *ApplicationService) ScheduleInterview(ctx context.Context, in ScheduleInterviewInput) (*models.Application, error) {
	app, err := s.appRepo.GetByIDWithJob(ctx, in.ApplicationID)
	if err != nil {
		return nil, err
	}
	if !CanManageApplication(in.RecruiterID, app.Job) {
		return nil, models.NewForbiddenError("Only the recruiter who posted this job can schedule interviews")
	}

	date := in.Date
	app.InterviewDate = &date
	app.InterviewLocation = in.Location
	app.Status = models.StatusInterview

	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Withdraw deletes the candidate's application. The derived applicant set of
// the job shrinks with the row, so no mirror write is needed.
func (s *ApplicationService) Withdraw(ctx context.Context, candidateID, applicationID uint) error {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if !CanWithdraw(candidateID, app) {
		return models.NewForbiddenError("Only the applicant can withdraw this application")
	}

	if err := s.appRepo.Delete(ctx, app.ID); err != nil {
		return err
	}

	cache.InvalidateJob(ctx, app.JobID)
	return nil
}

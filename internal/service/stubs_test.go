package service

import (
	"context"
	"errors"
	"testing"

	"workhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn     func(context.Context, *models.User) error
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
	}
}

// jobRepoStub is a stub for repository.JobRepository.
type jobRepoStub struct {
	createFn       func(context.Context, *models.Job) error
	getByIDFn      func(context.Context, uint) (*models.Job, error)
	listFn         func(context.Context) ([]*models.Job, error)
	listByPosterFn func(context.Context, uint) ([]*models.Job, error)
	updateFn       func(context.Context, *models.Job) error
	deleteFn       func(context.Context, uint) error
}

func (s *jobRepoStub) Create(ctx context.Context, job *models.Job) error {
	return s.createFn(ctx, job)
}
func (s *jobRepoStub) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	return s.getByIDFn(ctx, id)
}
func (s *jobRepoStub) List(ctx context.Context) ([]*models.Job, error) {
	return s.listFn(ctx)
}
func (s *jobRepoStub) ListByPoster(ctx context.Context, posterID uint) ([]*models.Job, error) {
	return s.listByPosterFn(ctx, posterID)
}
func (s *jobRepoStub) Update(ctx context.Context, job *models.Job) error {
	return s.updateFn(ctx, job)
}
func (s *jobRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopJobRepo() *jobRepoStub {
	return &jobRepoStub{
		createFn:       func(_ context.Context, _ *models.Job) error { return nil },
		getByIDFn:      func(_ context.Context, id uint) (*models.Job, error) { return &models.Job{ID: id}, nil },
		listFn:         func(_ context.Context) ([]*models.Job, error) { return nil, nil },
		listByPosterFn: func(_ context.Context, _ uint) ([]*models.Job, error) { return nil, nil },
		updateFn:       func(_ context.Context, _ *models.Job) error { return nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
	}
}

// appRepoStub is a stub for repository.ApplicationRepository.
type appRepoStub struct {
	createFn         func(context.Context, *models.Application) error
	getByIDFn        func(context.Context, uint) (*models.Application, error)
	getByIDWithJobFn func(context.Context, uint) (*models.Application, error)
	existsFn         func(context.Context, uint, uint) (bool, error)
	appliedJobIDsFn  func(context.Context, uint, []uint) ([]uint, error)
	listByAppliantFn func(context.Context, uint) ([]*models.Application, error)
	listByJobFn      func(context.Context, uint) ([]*models.Application, error)
	countByJobIDsFn  func(context.Context, []uint) (int64, error)
	statusCountsFn   func(context.Context, []uint) (map[models.ApplicationStatus]int, error)
	updateFn         func(context.Context, *models.Application) error
	deleteFn         func(context.Context, uint) error
}

func (s *appRepoStub) Create(ctx context.Context, app *models.Application) error {
	return s.createFn(ctx, app)
}
func (s *appRepoStub) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	return s.getByIDFn(ctx, id)
}
func (s *appRepoStub) GetByIDWithJob(ctx context.Context, id uint) (*models.Application, error) {
	return s.getByIDWithJobFn(ctx, id)
}
func (s *appRepoStub) ExistsForJobAndApplicant(ctx context.Context, jobID, applicantID uint) (bool, error) {
	return s.existsFn(ctx, jobID, applicantID)
}
func (s *appRepoStub) AppliedJobIDs(ctx context.Context, applicantID uint, jobIDs []uint) ([]uint, error) {
	return s.appliedJobIDsFn(ctx, applicantID, jobIDs)
}
func (s *appRepoStub) ListByApplicant(ctx context.Context, applicantID uint) ([]*models.Application, error) {
	return s.listByAppliantFn(ctx, applicantID)
}
func (s *appRepoStub) ListByJob(ctx context.Context, jobID uint) ([]*models.Application, error) {
	return s.listByJobFn(ctx, jobID)
}
func (s *appRepoStub) CountByJobIDs(ctx context.Context, jobIDs []uint) (int64, error) {
	return s.countByJobIDsFn(ctx, jobIDs)
}
func (s *appRepoStub) StatusCounts(ctx context.Context, jobIDs []uint) (map[models.ApplicationStatus]int, error) {
	return s.statusCountsFn(ctx, jobIDs)
}
func (s *appRepoStub) Update(ctx context.Context, app *models.Application) error {
	return s.updateFn(ctx, app)
}
func (s *appRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopAppRepo() *appRepoStub {
	return &appRepoStub{
		createFn:         func(_ context.Context, _ *models.Application) error { return nil },
		getByIDFn:        func(_ context.Context, id uint) (*models.Application, error) { return &models.Application{ID: id}, nil },
		getByIDWithJobFn: func(_ context.Context, id uint) (*models.Application, error) { return &models.Application{ID: id}, nil },
		existsFn:         func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		appliedJobIDsFn:  func(_ context.Context, _ uint, _ []uint) ([]uint, error) { return nil, nil },
		listByAppliantFn: func(_ context.Context, _ uint) ([]*models.Application, error) { return nil, nil },
		listByJobFn:      func(_ context.Context, _ uint) ([]*models.Application, error) { return nil, nil },
		countByJobIDsFn:  func(_ context.Context, _ []uint) (int64, error) { return 0, nil },
		statusCountsFn: func(_ context.Context, _ []uint) (map[models.ApplicationStatus]int, error) {
			return map[models.ApplicationStatus]int{}, nil
		},
		updateFn: func(_ context.Context, _ *models.Application) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// assertAppErrorCode asserts that err is an AppError carrying the given code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func assertConflictError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "CONFLICT")
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "NOT_FOUND")
}

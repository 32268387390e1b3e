package service

import (
	"context"
	"testing"

	"workhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recruiterUserRepo() *userRepoStub {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Role: models.RoleRecruiter}, nil
	}
	return userRepo
}

func TestStatsService_GetRecruiterStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	jobRepo := noopJobRepo()
	jobRepo.listByPosterFn = func(_ context.Context, _ uint) ([]*models.Job, error) {
		return []*models.Job{
			{ID: 1, Title: "Backend Engineer", ApplicantCount: 12},
			{ID: 2, Title: "Data Analyst", ApplicantCount: 8},
		}, nil
	}

	appRepo := noopAppRepo()
	appRepo.countByJobIDsFn = func(_ context.Context, jobIDs []uint) (int64, error) {
		assert.Equal(t, []uint{1, 2}, jobIDs)
		return 20, nil
	}
	appRepo.statusCountsFn = func(_ context.Context, _ []uint) (map[models.ApplicationStatus]int, error) {
		return map[models.ApplicationStatus]int{
			models.StatusApplied:   12,
			models.StatusInterview: 5,
			models.StatusHired:     3,
		}, nil
	}

	svc := NewStatsService(jobRepo, appRepo, recruiterUserRepo())
	stats, err := svc.GetRecruiterStats(ctx, 10)
	require.NoError(t, err)

	assert.Equal(t, uint(2), stats.TotalJobs)
	assert.Equal(t, uint(20), stats.TotalApplications)
	assert.Equal(t, "15.0", stats.HireRate)

	// All four statuses present, absent ones at zero.
	assert.Equal(t, 12, stats.StatusBreakdown[models.StatusApplied])
	assert.Equal(t, 5, stats.StatusBreakdown[models.StatusInterview])
	assert.Equal(t, 3, stats.StatusBreakdown[models.StatusHired])
	assert.Equal(t, 0, stats.StatusBreakdown[models.StatusRejected])
	assert.Len(t, stats.StatusBreakdown, 4)
}

func TestStatsService_HireRateWithNoApplications(t *testing.T) {
	t.Parallel()

	jobRepo := noopJobRepo()
	jobRepo.listByPosterFn = func(_ context.Context, _ uint) ([]*models.Job, error) {
		return []*models.Job{{ID: 1, Title: "Backend Engineer"}}, nil
	}

	svc := NewStatsService(jobRepo, noopAppRepo(), recruiterUserRepo())
	stats, err := svc.GetRecruiterStats(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "0.0", stats.HireRate)
	assert.Equal(t, uint(0), stats.TotalApplications)
}

func TestStatsService_TopJobsTruncatedToFive(t *testing.T) {
	t.Parallel()

	counts := []int{5, 3, 8, 1, 0, 2}
	jobRepo := noopJobRepo()
	jobRepo.listByPosterFn = func(_ context.Context, _ uint) ([]*models.Job, error) {
		jobs := make([]*models.Job, len(counts))
		for i, c := range counts {
			jobs[i] = &models.Job{ID: uint(i + 1), Title: "Job", ApplicantCount: c}
		}
		return jobs, nil
	}

	svc := NewStatsService(jobRepo, noopAppRepo(), recruiterUserRepo())
	stats, err := svc.GetRecruiterStats(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, stats.JobStats, 5)
	got := make([]int, len(stats.JobStats))
	for i, entry := range stats.JobStats {
		got[i] = entry.Count
	}
	assert.Equal(t, []int{8, 5, 3, 2, 1}, got)
}

func TestStatsService_UntitledJobFallback(t *testing.T) {
	t.Parallel()

	jobRepo := noopJobRepo()
	jobRepo.listByPosterFn = func(_ context.Context, _ uint) ([]*models.Job, error) {
		return []*models.Job{{ID: 1, ApplicantCount: 2}}, nil
	}

	svc := NewStatsService(jobRepo, noopAppRepo(), recruiterUserRepo())
	stats, err := svc.GetRecruiterStats(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, stats.JobStats, 1)
	assert.Equal(t, "Untitled Job", stats.JobStats[0].Title)
}

func TestStatsService_CandidateIsForbidden(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Role: models.RoleCandidate}, nil
	}

	svc := NewStatsService(noopJobRepo(), noopAppRepo(), userRepo)
	_, err := svc.GetRecruiterStats(context.Background(), 7)
	assertForbiddenError(t, err)
}

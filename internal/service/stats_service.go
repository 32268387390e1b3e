package service

import (
	"context"
	"fmt"
	"sort"

	"workhub/internal/models"
	"workhub/internal/repository"
)

// topJobStats is how many jobs the analytics payload reports.
const topJobStats = 5

// StatsService aggregates hiring analytics over a recruiter's postings. It
// only reads; every number is derived from jobs and applications at call time.
type StatsService struct {
	jobRepo  repository.JobRepository
	appRepo  repository.ApplicationRepository
	userRepo repository.UserRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(jobRepo repository.JobRepository, appRepo repository.ApplicationRepository, userRepo repository.UserRepository) *StatsService {
	return &StatsService{
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		userRepo: userRepo,
	}
}

// GetRecruiterStats computes totals, the status breakdown, the hire rate and
// the top jobs by applicant volume for the recruiter's own postings.
func (s *StatsService) GetRecruiterStats(ctx context.Context, recruiterID uint) (*models.RecruiterStats, error) {
	user, err := s.userRepo.GetByID(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	if !CanViewStats(user) {
		return nil, models.NewForbiddenError("Only recruiters can view hiring statistics")
	}

	jobs, err := s.jobRepo.ListByPoster(ctx, recruiterID)
	if err != nil {
		return nil, err
	}

	jobIDs := make([]uint, len(jobs))
	for i, j := range jobs {
		jobIDs[i] = j.ID
	}

	total, err := s.appRepo.CountByJobIDs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}

	rawCounts, err := s.appRepo.StatusCounts(ctx, jobIDs)
	if err != nil {
		return nil, err
	}

	// Every known status gets a key, even at zero; values outside the known
	// set are silently skipped.
	breakdown := make(map[models.ApplicationStatus]int, len(models.KnownStatuses))
	for _, status := range models.KnownStatuses {
		breakdown[status] = rawCounts[status]
	}

	hireRate := "0.0"
	if total > 0 {
		hireRate = fmt.Sprintf("%.1f", float64(breakdown[models.StatusHired])/float64(total)*100)
	}

	sorted := make([]*models.Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ApplicantCount > sorted[j].ApplicantCount
	})
	if len(sorted) > topJobStats {
		sorted = sorted[:topJobStats]
	}

	jobStats := make([]models.JobStatEntry, 0, len(sorted))
	for _, j := range sorted {
		title := j.Title
		if title == "" {
			title = "Untitled Job"
		}
		jobStats = append(jobStats, models.JobStatEntry{Title: title, Count: j.ApplicantCount})
	}

	return &models.RecruiterStats{
		TotalJobs:         uint(len(jobs)),
		TotalApplications: uint(total),
		StatusBreakdown:   breakdown,
		HireRate:          hireRate,
		JobStats:          jobStats,
	}, nil
}

package seed

import (
	"fmt"
	"log"

	"workhub/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumRecruiters int
	NumCandidates int
	JobsPerMax    int // max jobs per recruiter (at least 1 each)
	ApplyRate     int // percent chance a candidate applies to any given job
	ShouldClean   bool
}

// DefaultOptions returns a populated board: a handful of recruiters, a pool
// of candidates, and enough applications that stats pages have something to
// show.
func DefaultOptions() Options {
	return Options{
		NumRecruiters: 5,
		NumCandidates: 40,
		JobsPerMax:    6,
		ApplyRate:     20,
		ShouldClean:   true,
	}
}

// Seed populates the database with demo recruiters, candidates, jobs and
// applications.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding: %d recruiters, %d candidates, up to %d jobs each, %d%% apply rate",
		opts.NumRecruiters, opts.NumCandidates, opts.JobsPerMax, opts.ApplyRate)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	f := NewFactory(db)

	recruiters := make([]*models.User, 0, opts.NumRecruiters)
	for i := 0; i < opts.NumRecruiters; i++ {
		user, err := f.CreateUser(models.RoleRecruiter)
		if err != nil {
			return err
		}
		recruiters = append(recruiters, user)
	}

	candidates := make([]*models.User, 0, opts.NumCandidates)
	for i := 0; i < opts.NumCandidates; i++ {
		user, err := f.CreateUser(models.RoleCandidate)
		if err != nil {
			return err
		}
		candidates = append(candidates, user)
	}

	jobs := make([]*models.Job, 0, opts.NumRecruiters*opts.JobsPerMax)
	for _, recruiter := range recruiters {
		n := 1
		if opts.JobsPerMax > 1 {
			n += f.rand.Intn(opts.JobsPerMax)
		}
		for i := 0; i < n; i++ {
			job, err := f.CreateJob(recruiter)
			if err != nil {
				return err
			}
			jobs = append(jobs, job)
		}
	}

	applications := 0
	for _, candidate := range candidates {
		for _, job := range jobs {
			if f.rand.Intn(100) >= opts.ApplyRate {
				continue
			}
			if _, err := f.CreateApplication(candidate, job); err != nil {
				return err
			}
			applications++
		}
	}

	log.Printf("Seeded %d users, %d jobs, %d applications",
		len(recruiters)+len(candidates), len(jobs), applications)
	return nil
}

// clearData removes all rows in dependency order. Applications go first so
// the job and user deletes do not leave orphans behind.
func clearData(db *gorm.DB) error {
	if err := db.Unscoped().Where("1 = 1").Delete(&models.Application{}).Error; err != nil {
		return err
	}
	if err := db.Unscoped().Where("1 = 1").Delete(&models.Job{}).Error; err != nil {
		return err
	}
	return db.Unscoped().Where("1 = 1").Delete(&models.User{}).Error
}

package seed

import (
	"testing"

	"workhub/internal/database"
	"workhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeedPopulatesBoard(t *testing.T) {
	db := setupTestDB(t)

	opts := Options{
		NumRecruiters: 2,
		NumCandidates: 6,
		JobsPerMax:    3,
		ApplyRate:     50,
		ShouldClean:   true,
	}
	require.NoError(t, Seed(db, opts))

	var recruiters, candidates, jobs int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.RoleRecruiter).Count(&recruiters).Error)
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.RoleCandidate).Count(&candidates).Error)
	require.NoError(t, db.Model(&models.Job{}).Count(&jobs).Error)

	assert.Equal(t, int64(2), recruiters)
	assert.Equal(t, int64(6), candidates)
	assert.GreaterOrEqual(t, jobs, int64(2), "every recruiter posts at least one job")

	// The unique (job, applicant) index holds over the generated data.
	var pairs []struct {
		JobID       uint
		ApplicantID uint
		N           int
	}
	require.NoError(t, db.Model(&models.Application{}).
		Select("job_id, applicant_id, COUNT(*) as n").
		Group("job_id").Group("applicant_id").
		Scan(&pairs).Error)
	for _, p := range pairs {
		assert.Equal(t, 1, p.N)
	}
}

func TestSeedCleanRemovesPreviousRun(t *testing.T) {
	db := setupTestDB(t)

	opts := Options{NumRecruiters: 1, NumCandidates: 2, JobsPerMax: 1, ApplyRate: 100, ShouldClean: true}
	require.NoError(t, Seed(db, opts))
	require.NoError(t, Seed(db, opts))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(3), users)
}

func TestFactoryInterviewRowsCarryDetails(t *testing.T) {
	db := setupTestDB(t)
	f := NewFactory(db)

	recruiter, err := f.CreateUser(models.RoleRecruiter)
	require.NoError(t, err)
	job, err := f.CreateJob(recruiter)
	require.NoError(t, err)
	candidate, err := f.CreateUser(models.RoleCandidate)
	require.NoError(t, err)

	app, err := f.CreateApplication(candidate, job, func(a *models.Application) {
		a.Status = models.StatusApplied
		a.InterviewDate = nil
		a.InterviewLocation = ""
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, app.Status)
	assert.Nil(t, app.InterviewDate)
}

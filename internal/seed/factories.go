// Package seed provides helpers to create demo data for the job board
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"workhub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// demoPasswordHash is shared across all seeded users so seeding a few hundred
// accounts does not spend seconds in bcrypt.
var demoPasswordHash = func() string {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	return string(hash)
}()

// CreateUser constructs and persists a sample user with the given role.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(role models.UserRole, overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Email:        gofakeit.Email(),
		Password:     demoPasswordHash,
		Headline:     gofakeit.JobTitle(),
		ProfileImage: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Role:         role,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// CreateJob constructs and persists a job posted by the given recruiter,
// with a created_at spread over the last 90 days.
func (f *Factory) CreateJob(recruiter *models.User, overrides ...func(*models.Job)) (*models.Job, error) {
	job := &models.Job{
		Title:        gofakeit.JobTitle(),
		Description:  gofakeit.Paragraph(2, 4, 8, "\n"),
		Company:      gofakeit.Company(),
		Location:     fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Salary:       fmt.Sprintf("$%d,000 - $%d,000", gofakeit.Number(60, 120), gofakeit.Number(130, 220)),
		Requirements: gofakeit.Paragraph(1, 3, 6, "\n"),
		ContactName:  fmt.Sprintf("%s %s", recruiter.FirstName, recruiter.LastName),
		ContactEmail: recruiter.Email,
		PostedByID:   recruiter.ID,
		IsFeatured:   f.rand.Intn(5) == 0,
	}

	daysBack := f.rand.Intn(90)
	hoursBack := f.rand.Intn(24)
	job.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(job)
	}

	if err := f.db.Create(job).Error; err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// CreateApplication constructs and persists an application from the candidate
// to the job. Status is weighted towards "applied"; interview rows get a date
// and location.
func (f *Factory) CreateApplication(candidate *models.User, job *models.Job, overrides ...func(*models.Application)) (*models.Application, error) {
	app := &models.Application{
		JobID:       job.ID,
		ApplicantID: candidate.ID,
		Status:      f.randomStatus(),
		ResumeURL:   fmt.Sprintf("https://storage.workhub.dev/resumes/%s.pdf", gofakeit.UUID()),
		CoverLetter: gofakeit.Paragraph(1, 3, 10, "\n"),
	}

	if app.Status == models.StatusInterview {
		when := time.Now().Add(time.Duration(1+f.rand.Intn(14)) * 24 * time.Hour)
		app.InterviewDate = &when
		app.InterviewLocation = f.randomInterviewLocation()
	}

	if !job.CreatedAt.IsZero() {
		offset := time.Since(job.CreatedAt)
		if offset > time.Hour {
			app.CreatedAt = job.CreatedAt.Add(time.Duration(f.rand.Int63n(int64(offset))))
		}
	}

	for _, override := range overrides {
		override(app)
	}

	if err := f.db.Create(app).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

func (f *Factory) randomStatus() models.ApplicationStatus {
	// roughly: 55% applied, 20% interview, 10% hired, 15% rejected
	switch n := f.rand.Intn(100); {
	case n < 55:
		return models.StatusApplied
	case n < 75:
		return models.StatusInterview
	case n < 85:
		return models.StatusHired
	default:
		return models.StatusRejected
	}
}

func (f *Factory) randomInterviewLocation() string {
	locations := []string{
		"Zoom",
		"Google Meet",
		"Phone screen",
		"On-site, main office",
		"Microsoft Teams",
	}
	return locations[f.rand.Intn(len(locations))]
}

package models

import "time"

// ApplicationStatus tracks where an application is in the hiring pipeline.
// Withdrawal is modeled as deletion of the row, not a status value.
type ApplicationStatus string

const (
	// StatusApplied is the initial state of every application.
	StatusApplied ApplicationStatus = "applied"
	// StatusInterview is set when an interview is scheduled, or directly by the recruiter.
	StatusInterview ApplicationStatus = "interview"
	// StatusHired marks a successful application.
	StatusHired ApplicationStatus = "hired"
	// StatusRejected marks a declined application.
	StatusRejected ApplicationStatus = "rejected"
)

// KnownStatuses lists the statuses in pipeline order.
var KnownStatuses = []ApplicationStatus{StatusApplied, StatusInterview, StatusHired, StatusRejected}

// Valid reports whether the status is one of the known values.
func (s ApplicationStatus) Valid() bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Application ties a candidate to a job. The composite unique index on
// (job_id, applicant_id) enforces at most one live application per pair,
// also under concurrent applies.
type Application struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	JobID             uint              `gorm:"not null;index;uniqueIndex:idx_job_applicant" json:"jobId"`
	Job               *Job              `gorm:"foreignKey:JobID" json:"job,omitempty"`
	ApplicantID       uint              `gorm:"not null;index;uniqueIndex:idx_job_applicant" json:"applicantId"`
	Applicant         *User             `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	Status            ApplicationStatus `gorm:"type:varchar(20);not null;default:'applied'" json:"status"`
	ResumeURL         string            `json:"resumeUrl"`
	CoverLetter       string            `gorm:"type:text" json:"coverLetter"`
	InterviewDate     *time.Time        `json:"interviewDate,omitempty"`
	InterviewLocation string            `gorm:"size:255" json:"interviewLocation"`
	// Withdrawn applications are hard-deleted so the unique (job, applicant)
	// slot frees up and the candidate can re-apply.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecruiterStats is the aggregate view served to a recruiter about their
// own postings.
type RecruiterStats struct {
	TotalJobs         uint                      `json:"totalJobs"`
	TotalApplications uint                      `json:"totalApplications"`
	StatusBreakdown   map[ApplicationStatus]int `json:"statusBreakdown"`
	// HireRate is a percentage with one decimal place, "0.0" when there are
	// no applications.
	HireRate string         `json:"hireRate"`
	JobStats []JobStatEntry `json:"jobStats"`
}

// JobStatEntry reports one job's applicant volume in the stats payload.
type JobStatEntry struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Job represents a posting created by a recruiter. The applicant set is not
// stored on the job row; it is derived from the applications table at query
// time, which keeps apply/withdraw single-row writes.
type Job struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"size:255;not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Company      string `gorm:"size:255" json:"company"`
	Location     string `gorm:"size:255" json:"location"`
	Salary       string `gorm:"size:120" json:"salary"`
	Requirements string `gorm:"type:text" json:"requirements"`
	ContactName  string `gorm:"size:255" json:"contactName"`
	ContactEmail string `gorm:"size:255" json:"contactEmail"`
	// PostedByID is set at creation and never changes.
	PostedByID uint  `gorm:"not null;index" json:"postedById"`
	PostedBy   *User `gorm:"foreignKey:PostedByID" json:"postedBy,omitempty"`
	IsFeatured bool  `gorm:"not null;default:false" json:"isFeatured"`
	// ApplicantCount is not persisted; computed at query time
	ApplicantCount int `gorm:"-" json:"applicantCount"`
	// IsApplied indicates whether the requesting user has applied (computed)
	IsApplied bool           `gorm:"-" json:"isApplied"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// JobUpdate carries the optional fields of a job edit. Empty values leave the
// stored field unchanged; a field cannot be cleared through this operation.
type JobUpdate struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Salary       string `json:"salary"`
	Requirements string `json:"requirements"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
}

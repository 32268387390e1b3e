package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole defines what a user is allowed to do on the board.
type UserRole string

const (
	// RoleCandidate can browse jobs and apply to them.
	RoleCandidate UserRole = "candidate"
	// RoleRecruiter can post jobs and manage applications to them.
	RoleRecruiter UserRole = "recruiter"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	return r == RoleCandidate || r == RoleRecruiter
}

// User represents an account on the board. Profile and credential management
// beyond signup/login lives with the identity provider; handlers only read
// the role and the summary fields.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	FirstName    string         `gorm:"size:120" json:"firstName"`
	LastName     string         `gorm:"size:120" json:"lastName"`
	Email        string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password     string         `gorm:"not null" json:"-"`
	Headline     string         `gorm:"size:255" json:"headline"`
	ProfileImage string         `json:"profileImage"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'candidate'" json:"role"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// UserSummary is the poster/applicant projection attached to jobs and
// applications in list responses.
type UserSummary struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProfileImage string `json:"profileImage"`
	Headline     string `json:"headline"`
	Email        string `json:"email,omitempty"`
}

// Summary projects the user onto its public summary fields.
func (u *User) Summary(withEmail bool) UserSummary {
	s := UserSummary{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		ProfileImage: u.ProfileImage,
		Headline:     u.Headline,
	}
	if withEmail {
		s.Email = u.Email
	}
	return s
}

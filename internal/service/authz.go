// Package service contains the business logic of the board: the application
// lifecycle, job management, recruiter analytics, and the authorization
// policy gating all of them.
package service

import "workhub/internal/models"

// The authorization policy is a set of pure decision functions. Every mutation
// goes through one of them before touching the store; handlers never
// re-implement role or ownership checks inline.

// CanCreateJob reports whether the user may create job postings.
func CanCreateJob(user *models.User) bool {
	return user != nil && user.Role == models.RoleRecruiter
}

// CanViewStats reports whether the user may see recruiter analytics.
func CanViewStats(user *models.User) bool {
	return user != nil && user.Role == models.RoleRecruiter
}

// CanMutateJob reports whether the user owns the job. Ownership is fixed at
// creation; postedBy never changes.
func CanMutateJob(userID uint, job *models.Job) bool {
	return job != nil && userID == job.PostedByID
}

// CanWithdraw reports whether the user is the applicant of the application.
// Withdrawal is the one application mutation scoped to the candidate.
func CanWithdraw(userID uint, app *models.Application) bool {
	return app != nil && userID == app.ApplicantID
}

// CanManageApplication reports whether the user owns the application's parent
// job. Status changes and interview scheduling are scoped to that recruiter.
// Callers must resolve the job first; the application row alone does not
// carry the poster.
func CanManageApplication(userID uint, job *models.Job) bool {
	return CanMutateJob(userID, job)
}

package server

import (
	"time"

	"workhub/internal/models"
	"workhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Apply handles POST /api/applications
func (s *Server) Apply(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		JobID       uint   `json:"jobId"`
		ResumeURL   string `json:"resumeUrl"`
		CoverLetter string `json:"coverLetter"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.JobID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("jobId is required"))
	}

	app, err := s.apps.Apply(c.Context(), service.ApplyInput{
		CandidateID: userID,
		JobID:       req.JobID,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Applied successfully",
		"application": app,
	})
}

// GetMyApplications handles GET /api/applications/mine
func (s *Server) GetMyApplications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	apps, err := s.apps.ListMine(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(apps)
}

// GetJobApplications handles GET /api/jobs/:id/applications
func (s *Server) GetJobApplications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	jobID, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid job ID"))
	}

	apps, err := s.apps.ListForJob(c.Context(), userID, uint(jobID))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(apps)
}

// UpdateApplicationStatus handles PUT /api/applications/:id/status
func (s *Server) UpdateApplicationStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	appID, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid application ID"))
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	app, err := s.apps.UpdateStatus(c.Context(), service.UpdateStatusInput{
		RecruiterID:   userID,
		ApplicationID: uint(appID),
		Status:        models.ApplicationStatus(req.Status),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":     "Status updated",
		"application": app,
	})
}

// ScheduleInterview handles POST /api/applications/:id/interview
func (s *Server) ScheduleInterview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	appID, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid application ID"))
	}

	var req struct {
		InterviewDate     time.Time `json:"interviewDate"`
		InterviewLocation string    `json:"interviewLocation"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.InterviewDate.IsZero() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("interviewDate is required"))
	}

	app, err := s.apps.ScheduleInterview(c.Context(), service.ScheduleInterviewInput{
		RecruiterID:   userID,
		ApplicationID: uint(appID),
		Date:          req.InterviewDate,
		Location:      req.InterviewLocation,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":     "Interview scheduled successfully",
		"application": app,
	})
}

// Withdraw handles DELETE /api/applications/:id
func (s *Server) Withdraw(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	appID, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid application ID"))
	}

	if err := s.apps.Withdraw(c.Context(), userID, uint(appID)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Application withdrawn successfully"})
}

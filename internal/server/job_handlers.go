package server

import (
	"workhub/internal/models"
	"workhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateJob handles POST /api/jobs
func (s *Server) CreateJob(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Company      string `json:"company"`
		Location     string `json:"location"`
		Salary       string `json:"salary"`
		Requirements string `json:"requirements"`
		ContactName  string `json:"contactName"`
		ContactEmail string `json:"contactEmail"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	job, err := s.jobs.Create(c.Context(), service.CreateJobInput{
		RecruiterID:  userID,
		Title:        req.Title,
		Description:  req.Description,
		Company:      req.Company,
		Location:     req.Location,
		Salary:       req.Salary,
		Requirements: req.Requirements,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// GetAllJobs handles GET /api/jobs
func (s *Server) GetAllJobs(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	jobs, err := s.jobs.ListAll(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(jobs)
}

// GetMyJobs handles GET /api/jobs/mine
func (s *Server) GetMyJobs(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	jobs, err := s.jobs.ListMine(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(jobs)
}

// UpdateJob handles PUT /api/jobs/:id
func (s *Server) UpdateJob(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	jobID, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid job ID"))
	}

	var req models.JobUpdate
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	job, err := s.jobs.Update(c.Context(), service.UpdateJobInput{
		RecruiterID: userID,
		JobID:       uint(jobID),
		Fields:      req,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(job)
}

// DeleteJob handles DELETE /api/jobs/:id
func (s *Server) DeleteJob(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	jobID, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid job ID"))
	}

	if err := s.jobs.Delete(c.Context(), userID, uint(jobID)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}

// ToggleFeatured handles POST /api/jobs/:id/feature
func (s *Server) ToggleFeatured(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	jobID, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid job ID"))
	}

	featured, err := s.jobs.ToggleFeatured(c.Context(), userID, uint(jobID))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"isFeatured": featured})
}

package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetRecruiterStats handles GET /api/jobs/stats
func (s *Server) GetRecruiterStats(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	stats, err := s.stats.GetRecruiterStats(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(stats)
}

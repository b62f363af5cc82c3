package server

import (
	"jobtrail/internal/models"
	"jobtrail/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListApplications handles GET /api/applications
func (s *Server) ListApplications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	apps, err := s.appService.List(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(apps)
}

// GetApplication handles GET /api/applications/:id
func (s *Server) GetApplication(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	app, err := s.appService.Get(c.Context(), userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(app)
}

// AddApplication handles POST /api/applications
func (s *Server) AddApplication(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var in service.ApplicationInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	apps, err := s.appService.Add(c.Context(), userID, in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(apps)
}

// EditApplication handles PUT /api/applications/:id
func (s *Server) EditApplication(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in service.ApplicationInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	apps, err := s.appService.Edit(c.Context(), userID, id, in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(apps)
}

// DeleteApplication handles DELETE /api/applications/:id
func (s *Server) DeleteApplication(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	apps, err := s.appService.Delete(c.Context(), userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(apps)
}

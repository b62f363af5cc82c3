package server

import (
	"fmt"
	"io"
	"strings"
	"time"

	"jobtrail/internal/middleware"
	"jobtrail/internal/models"
	"jobtrail/internal/workbook"

	"github.com/gofiber/fiber/v2"
)

// ExportApplications handles GET /api/export. It streams the caller's
// applications as a styled xlsx download.
func (s *Server) ExportApplications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	apps, err := s.appService.List(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	data, err := workbook.Export(apps)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "export failed", "error", err.Error())
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(fmt.Errorf("export failed")))
	}

	filename := workbook.Filename(time.Now())
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ImportApplications handles POST /api/import. It accepts an xlsx upload in
// the "file" form field and reports the number of rows imported. The whole
// import commits in one transaction.
func (s *Server) ImportApplications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("File must be an .xlsx workbook"))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read uploaded file"))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read uploaded file"))
	}

	apps, err := workbook.Parse(data)
	if err != nil {
		return respondServiceError(c, err)
	}

	count, err := s.appService.Import(c.Context(), userID, apps)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "import commit failed", "error", err.Error())
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Import failed; no rows were saved"))
	}

	return c.JSON(fiber.Map{
		"imported": count,
		"message":  fmt.Sprintf("Successfully imported %d applications.", count),
	})
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/candidate-screening/internal/models"
	"alfredoptarigan/candidate-screening/internal/repositories"
	"alfredoptarigan/candidate-screening/internal/services"
)

type ApplicationHandler struct {
	appRepo repositories.ApplicationRepository
}

func NewApplicationHandler(appRepo repositories.ApplicationRepository) *ApplicationHandler {
	return &ApplicationHandler{
		appRepo: appRepo,
	}
}

// HandleGetApplication handles GET /applications/:id
func (h *ApplicationHandler) HandleGetApplication(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	app, err := h.appRepo.FindByID(c.UserContext(), appID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return err
	}

	response := models.ApplicationResponse{
		ID:            app.ID.String(),
		CandidateName: app.CandidateName,
		JobTitle:      app.JobTitle,
		Status:        string(app.Status),
		Transcript:    app.Transcript,
	}

	// Analyses stored in lenient mode may not parse; return those verbatim.
	if app.VideoAnalysis != nil && *app.VideoAnalysis != "" {
		if analysis := services.ParseVideoAnalysis(*app.VideoAnalysis); analysis != nil {
			response.Analysis = analysis
		} else {
			response.RawAnalysis = app.VideoAnalysis
		}
	}

	return c.JSON(response)
}

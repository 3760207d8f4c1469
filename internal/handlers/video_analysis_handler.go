package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/candidate-screening/internal/models"
	"alfredoptarigan/candidate-screening/internal/services"
)

type VideoAnalysisHandler struct {
	service services.VideoAnalysisService
	log     *zap.Logger
}

func NewVideoAnalysisHandler(service services.VideoAnalysisService, log *zap.Logger) *VideoAnalysisHandler {
	return &VideoAnalysisHandler{
		service: service,
		log:     log,
	}
}

// HandleAnalyzeVideo handles POST /functions/v1/analyze-video
func (h *VideoAnalysisHandler) HandleAnalyzeVideo(c *fiber.Ctx) error {
	var req models.AnalyzeVideoRequest
	if err := decodeRequest(c.Body(), &req); err != nil {
		return functionError(c, h.log, err)
	}

	applicationID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return functionError(c, h.log, err)
	}

	result, err := h.service.AnalyzeVideo(c.UserContext(), applicationID, req.VideoPath)
	if err != nil {
		return functionError(c, h.log, err)
	}

	return c.JSON(result)
}

// functionError logs err and renders it the way every function reports
// failures.
func functionError(c *fiber.Ctx, log *zap.Logger, err error) error {
	log.Error("❌ Function failed",
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(models.FunctionErrorResponse{
		Error: err.Error(),
	})
}

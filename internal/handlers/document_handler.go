package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/candidate-screening/internal/models"
	"alfredoptarigan/candidate-screening/internal/services"
)

type DocumentHandler struct {
	processor services.DocumentProcessor
	log       *zap.Logger
}

func NewDocumentHandler(processor services.DocumentProcessor, log *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		processor: processor,
		log:       log,
	}
}

// HandleProcessDocument handles POST /functions/v1/process-job-document
func (h *DocumentHandler) HandleProcessDocument(c *fiber.Ctx) error {
	var req models.ProcessDocumentRequest
	if err := decodeRequest(c.Body(), &req); err != nil {
		return functionError(c, h.log, err)
	}

	doc, err := h.processor.ProcessDocument(c.UserContext(), req.FilePath)
	if err != nil {
		return functionError(c, h.log, err)
	}

	return c.JSON(doc)
}

package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/candidate-screening/internal/models"
	"alfredoptarigan/candidate-screening/internal/uploader"
)

type UploadHandler struct {
	storage     uploader.Storage
	invoker     uploader.Invoker
	maxFileSize int64
	log         *zap.Logger
}

func NewUploadHandler(
	storage uploader.Storage,
	invoker uploader.Invoker,
	maxFileSize int64,
	log *zap.Logger,
) *UploadHandler {
	return &UploadHandler{
		storage:     storage,
		invoker:     invoker,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

// HandleUpload handles POST /api/v1/upload
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded. Please upload a job document as 'file'.",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	if !uploader.IsAcceptedFile(fileHeader.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": uploader.ErrUnsupportedFile.Error(),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to open uploaded file: %v", err),
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read uploaded file: %v", err),
		})
	}

	// Each request gets its own uploader, so the busy flag only guards a
	// single request.
	up := uploader.New(h.storage, h.invoker, uploader.NewLogNotifier(h.log), h.log)

	var doc models.ProcessedDocument
	key, err := up.Upload(c.UserContext(), uploader.File{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, func(result models.ProcessedDocument) {
		doc = result
	})
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, uploader.ErrMissingDescription) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{
			"error":       err.Error(),
			"storage_key": key,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		Message:    "Document uploaded and processed successfully",
		StorageKey: key,
		Document:   doc,
	})
}

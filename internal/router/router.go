package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/candidate-screening/internal/handlers"
)

const appName = "Candidate Screening API"

type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
	// AccessLog enables the request log middleware.
	AccessLog bool
}

type Handlers struct {
	VideoAnalysis *handlers.VideoAnalysisHandler
	Document      *handlers.DocumentHandler
	Upload        *handlers.UploadHandler
	Application   *handlers.ApplicationHandler
}

// New assembles the fiber application serving the functions under
// /functions/v1 and the REST API under /api/v1.
func New(opts Options, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		BodyLimit:    opts.BodyLimit,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	// Functions
	functions := app.Group("/functions/v1", handlers.FunctionCORS())
	functions.Post("/analyze-video", h.VideoAnalysis.HandleAnalyzeVideo)
	functions.Post("/process-job-document", h.Document.HandleProcessDocument)

	// REST API
	api := app.Group("/api/v1", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})
	api.Post("/upload", h.Upload.HandleUpload)
	api.Get("/applications/:id", h.Application.HandleGetApplication)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": appName,
			"version": "1.0.0",
			"endpoints": []string{
				"POST /functions/v1/analyze-video",
				"POST /functions/v1/process-job-document",
				"POST /api/v1/upload",
				"GET /api/v1/applications/:id",
			},
		})
	})

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

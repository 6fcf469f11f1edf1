package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	swagger "github.com/go-swagno/swagno-fiber/swagger"

	"github.com/aliyevorkhan/face-recognition-frontend/internal/api/docs"
	"github.com/aliyevorkhan/face-recognition-frontend/internal/api/handler"
	"github.com/aliyevorkhan/face-recognition-frontend/internal/api/middleware"
	"github.com/aliyevorkhan/face-recognition-frontend/internal/domain"
)

// bodyLimit fits a verification request: two full-size images plus
// multipart framing.
const bodyLimit = 2*domain.MaxImageBytes + 1<<20

// Dependencies carries what the analysis routes need: the forwarding
// client and the upstream URL for each analysis kind.
type Dependencies struct {
	Forwarder handler.Forwarder
	Endpoints map[domain.Kind]string
}

type Router struct {
	app    *fiber.App
	logger *slog.Logger
	deps   *Dependencies
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "Face Analysis Proxy",
		BodyLimit:    bodyLimit,
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-API-KEY,X-Request-ID",
	}))

	// Swagger documentation (no auth required)
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Health check endpoints (no auth required)
	healthHandler := handler.NewHealthHandler()
	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	// Only configure the analysis routes if dependencies were provided
	if r.deps != nil {
		analyzeHandler := handler.NewAnalyzeHandler(r.deps.Forwarder, r.deps.Endpoints)

		// Every analysis route requires the caller's upstream credential
		face := r.app.Group("/api/face", middleware.APIKey())
		for _, kind := range domain.Kinds() {
			face.Post("/"+kind.String(), analyzeHandler.Handle(kind))
		}
	}
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}

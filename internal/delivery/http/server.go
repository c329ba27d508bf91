package http

import (
	"context"
	"time"

	"github.com/geocode-microservice/internal/config"
	"github.com/geocode-microservice/internal/delivery/http/handler"
	"github.com/geocode-microservice/internal/delivery/http/middleware"
	"github.com/geocode-microservice/internal/pkg/errors"
	"github.com/geocode-microservice/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP facade over the geocode client, built on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	geocodeHandler *handler.GeocodeHandler
}

// NewServer - wires middlewares and routes
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	geocodeHandler *handler.GeocodeHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "Geocode Microservice",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          cfg.Geocode.RequestTimeout + 5*time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		geocodeHandler: geocodeHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/geocode", s.geocodeHandler.Geocode)
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		appErr := errors.ErrInternalServer

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			appErr = errors.New("HTTP_ERROR", e.Message, code)
		}

		logger.Error("HTTP Error",
			zap.String("request_id", utils.RequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(utils.ErrorResponse{Error: appErr})
	}
}

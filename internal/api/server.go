package api

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/avsafe/occurrence-portal/internal/config"
	"github.com/avsafe/occurrence-portal/internal/lookup"
	"github.com/avsafe/occurrence-portal/internal/occurrences"
	"github.com/avsafe/occurrence-portal/internal/submission"
)

// Server wires the portal's services onto a fiber application.
type Server struct {
	config *config.Config
	app    *fiber.App
}

// NewServer creates the HTTP server and registers every route.
func NewServer(
	cfg *config.Config,
	orchestrator *submission.Orchestrator,
	lookupService *lookup.Service,
	occurrenceService *occurrences.Service,
) (*Server, error) {
	if orchestrator == nil {
		return nil, fmt.Errorf("orchestrator cannot be nil")
	}
	if lookupService == nil {
		return nil, fmt.Errorf("lookupService cannot be nil")
	}
	if occurrenceService == nil {
		return nil, fmt.Errorf("occurrenceService cannot be nil")
	}

	app := fiber.New(fiber.Config{
		AppName:   "occurrence-portal",
		BodyLimit: cfg.BodyLimit,
	})

	s := &Server{config: cfg, app: app}
	s.registerRoutes(orchestrator, lookupService, occurrenceService)
	return s, nil
}

func (s *Server) registerRoutes(
	orchestrator *submission.Orchestrator,
	lookupService *lookup.Service,
	occurrenceService *occurrences.Service,
) {
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "version": s.config.Version})
	})

	router := s.app.Group("/api")
	(&SubmissionAPI{Router: router, Orchestrator: orchestrator}).Register()
	(&LookupAPI{Router: router, LookupService: lookupService}).Register()
	(&OccurrenceAPI{Router: router, OccurrenceService: occurrenceService}).Register()
	(&PDFAPI{Router: router}).Register()
}

// App exposes the underlying fiber application for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts listening and blocks until the server stops.
func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

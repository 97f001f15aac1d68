package server

import (
    "context"
    "errors"
    "log/slog"
    "time"

    "github.com/gofiber/fiber/v2"
    "github.com/redis/go-redis/v9"

    "github.com/banco-ledger/banco/internal/config"
    "github.com/banco-ledger/banco/internal/middleware"
    "github.com/banco-ledger/banco/internal/routes"
)

// Server wraps the Fiber application and shared dependencies.
type Server struct {
    app   *fiber.App
    cfg   config.Config
    cache *redis.Client
}

// New instantiates the HTTP server and delegates route wiring to routes.Setup.
// cache may be nil in development.
func New(cfg config.Config, cache *redis.Client, logger *slog.Logger) (*Server, error) {
    app := fiber.New(fiber.Config{
        AppName:               cfg.AppName,
        ReadTimeout:           30 * time.Second,
        WriteTimeout:          30 * time.Second,
        DisableStartupMessage: !cfg.IsDev(),
        ErrorHandler:          jsonErrorHandler,
    })

    if err := routes.Setup(app, routes.Deps{Cfg: cfg, Cache: cache, Logger: logger}); err != nil {
        return nil, err
    }

    return &Server{app: app, cfg: cfg, cache: cache}, nil
}

// App exposes the underlying Fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
    return s.app
}

// Listen starts the HTTP server.
func (s *Server) Listen() error {
    return s.app.Listen(s.cfg.Address())
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
    return s.app.ShutdownWithContext(ctx)
}

// jsonErrorHandler renders handler errors as {"error": ..., "request_id": ...}.
func jsonErrorHandler(c *fiber.Ctx, err error) error {
    code := fiber.StatusInternalServerError
    var fe *fiber.Error
    if errors.As(err, &fe) {
        code = fe.Code
    }
    return c.Status(code).JSON(fiber.Map{
        "error":      err.Error(),
        "request_id": middleware.RequestIDFrom(c),
    })
}

package routes

import (
    "context"
    "fmt"
    "log/slog"
    "net/http"
    "time"

    "github.com/gofiber/fiber/v2"
    "github.com/gofiber/fiber/v2/middleware/recover"
    "github.com/redis/go-redis/v9"

    "github.com/banco-ledger/banco/internal/banking"
    "github.com/banco-ledger/banco/internal/config"
    "github.com/banco-ledger/banco/internal/holder"
    "github.com/banco-ledger/banco/internal/ledger"
    "github.com/banco-ledger/banco/internal/middleware"
    "github.com/banco-ledger/banco/internal/notification"
)

const eventStreamMaxLen = 10000

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
    Cfg    config.Config
    Cache  *redis.Client
    Logger *slog.Logger
}

// Setup configures middlewares, builds the ledger and its services, and
// registers every application route.
func Setup(app *fiber.App, d Deps) error {
    if d.Logger == nil {
        d.Logger = slog.Default()
    }
    if !d.Cfg.IsDev() && d.Cache == nil {
        return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
    }

    app.Use(recover.New())
    app.Use(middleware.RequestID())
    app.Use(middleware.Audit(d.Logger))
    if d.Cache != nil {
        app.Use(middleware.Idempotency(middleware.IdempotencyConfig{
            Cache:  d.Cache,
            TTL:    d.Cfg.IdempotencyTTL,
            Logger: d.Logger,
        }))
    }

    RegisterHealthRoutes(app, healthProbes(d))

    book := ledger.NewInMemory(d.Cfg.LedgerCapacity)
    holderSvc := holder.NewService(holder.NewMemoryRepository())
    bankSvc := banking.NewService(book, holderSvc, newNotifier(d), d.Logger)

    api := app.Group("/api/v1", middleware.APIKey(d.Cfg.APIKeyHash))
    api.Get("/ping", func(c *fiber.Ctx) error {
        return c.Status(http.StatusOK).JSON(fiber.Map{
            "status":     "ok",
            "request_id": middleware.RequestIDFrom(c),
            "timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
        })
    })

    RegisterHolderRoutes(api, holder.NewHandler(holderSvc))
    RegisterAccountRoutes(api, banking.NewHandler(bankSvc), middleware.RateLimit(d.Cache, "money", d.Cfg.RateLimit, d.Logger))

    d.Logger.Info("ledger ready",
        slog.Int("capacity", book.Capacity()),
        slog.Bool("redis", d.Cache != nil),
    )
    return nil
}

func newNotifier(d Deps) notification.Notifier {
    logNotifier := notification.NewLoggerNotifier(d.Logger)
    if d.Cache == nil {
        return logNotifier
    }
    return notification.Fanout{
        logNotifier,
        notification.NewRedisNotifier(d.Cache, d.Cfg.EventStream, eventStreamMaxLen),
    }
}

func healthProbes(d Deps) map[string]probe {
    probes := map[string]probe{"redis": nil}
    if d.Cache != nil {
        probes["redis"] = func(ctx context.Context) error {
            return d.Cache.Ping(ctx).Err()
        }
    }
    return probes
}

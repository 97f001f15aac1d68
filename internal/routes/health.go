package routes

import (
    "context"
    "net/http"
    "time"

    "github.com/gofiber/fiber/v2"
)

const probeTimeout = 2 * time.Second

// probe reports the state of one dependency; a nil error means healthy.
type probe func(ctx context.Context) error

// RegisterHealthRoutes adds /healthz, which runs every probe and answers 503
// when any of them fails.
func RegisterHealthRoutes(app *fiber.App, probes map[string]probe) {
    app.Get("/healthz", func(c *fiber.Ctx) error {
        ctx, cancel := context.WithTimeout(c.UserContext(), probeTimeout)
        defer cancel()

        status := http.StatusOK
        report := fiber.Map{}
        for name, check := range probes {
            if check == nil {
                report[name] = "disabled"
                continue
            }
            if err := check(ctx); err != nil {
                report[name] = err.Error()
                status = http.StatusServiceUnavailable
                continue
            }
            report[name] = "ok"
        }
        return c.Status(status).JSON(fiber.Map{
            "status":    report,
            "timestamp": time.Now().UTC().Format(time.RFC3339Nano),
        })
    })
}

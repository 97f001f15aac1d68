package routes

import (
    "github.com/gofiber/fiber/v2"

    "github.com/banco-ledger/banco/internal/holder"
)

// RegisterHolderRoutes wires holder registry endpoints.
func RegisterHolderRoutes(r fiber.Router, h *holder.Handler) {
    r.Post("/holders", h.Register)
    r.Get("/holders/:nationalId", h.Get)
}

package routes

import (
    "github.com/gofiber/fiber/v2"

    "github.com/banco-ledger/banco/internal/banking"
)

// RegisterAccountRoutes wires account endpoints. Money movements go through
// the limiter.
func RegisterAccountRoutes(r fiber.Router, h *banking.Handler, limiter fiber.Handler) {
    r.Post("/accounts", h.Open)
    r.Get("/accounts", h.List)
    r.Get("/accounts/:iban", h.Get)
    r.Get("/accounts/:iban/balance", h.Balance)
    r.Post("/accounts/:iban/deposits", limiter, h.Deposit)
    r.Post("/accounts/:iban/withdrawals", limiter, h.Withdraw)
}

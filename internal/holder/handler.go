package holder

import (
    "errors"
    "net/http"
    "time"

    "github.com/gofiber/fiber/v2"
)

// Handler exposes holder endpoints.
type Handler struct {
    service *Service
}

// NewHandler constructs a holder HTTP handler.
func NewHandler(service *Service) *Handler {
    return &Handler{service: service}
}

type registerRequest struct {
    Name       string `json:"name"`
    Surname    string `json:"surname"`
    NationalID string `json:"national_id"`
}

type holderResponse struct {
    Name       string    `json:"name"`
    Surname    string    `json:"surname"`
    NationalID string    `json:"national_id"`
    CreatedAt  time.Time `json:"created_at"`
}

// Register stores a new holder.
func (h *Handler) Register(c *fiber.Ctx) error {
    var req registerRequest
    if err := c.BodyParser(&req); err != nil {
        return fiber.NewError(http.StatusBadRequest, err.Error())
    }
    holder, err := h.service.Register(c.UserContext(), Details{Name: req.Name, Surname: req.Surname, NationalID: req.NationalID})
    if err != nil {
        if errors.Is(err, ErrHolderExists) {
            return fiber.NewError(http.StatusConflict, err.Error())
        }
        return fiber.NewError(http.StatusBadRequest, err.Error())
    }
    return c.Status(http.StatusCreated).JSON(toResponse(holder))
}

// Get returns a holder by national id.
func (h *Handler) Get(c *fiber.Ctx) error {
    holder, err := h.service.Get(c.UserContext(), c.Params("nationalId"))
    if err != nil {
        return fiber.NewError(http.StatusNotFound, err.Error())
    }
    return c.Status(http.StatusOK).JSON(toResponse(holder))
}

func toResponse(h *Holder) holderResponse {
    return holderResponse{Name: h.Name, Surname: h.Surname, NationalID: h.NationalID, CreatedAt: h.CreatedAt}
}

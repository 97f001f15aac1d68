package banking

import (
    "errors"
    "net/http"

    "github.com/gofiber/fiber/v2"

    "github.com/banco-ledger/banco/internal/account"
    "github.com/banco-ledger/banco/internal/holder"
    "github.com/banco-ledger/banco/internal/ledger"
)

// Handler exposes account HTTP endpoints.
type Handler struct {
    service *Service
}

// NewHandler builds an account HTTP handler.
func NewHandler(service *Service) *Handler {
    return &Handler{service: service}
}

// Open opens a new account.
func (h *Handler) Open(c *fiber.Ctx) error {
    var req OpenRequest
    if err := c.BodyParser(&req); err != nil {
        return fiber.NewError(http.StatusBadRequest, err.Error())
    }
    kind, err := account.ParseKind(req.Kind)
    if err != nil {
        return fiber.NewError(http.StatusBadRequest, err.Error())
    }

    acct, err := h.service.Open(c.UserContext(), OpenInput{
        IBAN:           req.IBAN,
        Kind:           kind,
        OpeningBalance: req.OpeningBalance,
        Holder: holder.Details{
            Name:       req.Holder.Name,
            Surname:    req.Holder.Surname,
            NationalID: req.Holder.NationalID,
        },
        AnnualInterestRate:    req.AnnualInterestRate,
        AuthorizedEntities:    req.AuthorizedEntities,
        AnnualMaintenanceFee:  req.AnnualMaintenanceFee,
        MaxOverdraft:          req.MaxOverdraft,
        OverdraftInterestRate: req.OverdraftInterestRate,
        FixedOverdraftFee:     req.FixedOverdraftFee,
    })
    if err != nil {
        return toHTTPError(err)
    }
    return c.Status(http.StatusCreated).JSON(toAccountResponse(acct))
}

// List returns every open account.
func (h *Handler) List(c *fiber.Ctx) error {
    accounts := h.service.List(c.UserContext())
    count, capacity := h.service.Occupancy(c.UserContext())
    resp := ListResponse{Accounts: make([]AccountResponse, 0, len(accounts)), Count: count, Capacity: capacity}
    for _, acct := range accounts {
        resp.Accounts = append(resp.Accounts, toAccountResponse(acct))
    }
    return c.Status(http.StatusOK).JSON(resp)
}

// Get returns the details of one account.
func (h *Handler) Get(c *fiber.Ctx) error {
    acct, err := h.service.Get(c.UserContext(), c.Params("iban"))
    if err != nil {
        return toHTTPError(err)
    }
    return c.Status(http.StatusOK).JSON(toAccountResponse(acct))
}

// Balance returns the account balance.
func (h *Handler) Balance(c *fiber.Ctx) error {
    balance, err := h.service.Balance(c.UserContext(), c.Params("iban"))
    if err != nil {
        return toHTTPError(err)
    }
    return c.Status(http.StatusOK).JSON(fiber.Map{
        "iban":    balance.IBAN,
        "balance": balance.Amount,
        "as_of":   balance.AsOf,
    })
}

// Deposit credits the account.
func (h *Handler) Deposit(c *fiber.Ctx) error {
    var req AmountRequest
    if err := c.BodyParser(&req); err != nil {
        return fiber.NewError(http.StatusBadRequest, err.Error())
    }
    receipt, err := h.service.Deposit(c.UserContext(), c.Params("iban"), req.Amount)
    if err != nil {
        return toHTTPError(err)
    }
    return c.Status(http.StatusCreated).JSON(toReceiptResponse(receipt))
}

// Withdraw debits the account.
func (h *Handler) Withdraw(c *fiber.Ctx) error {
    var req AmountRequest
    if err := c.BodyParser(&req); err != nil {
        return fiber.NewError(http.StatusBadRequest, err.Error())
    }
    receipt, err := h.service.Withdraw(c.UserContext(), c.Params("iban"), req.Amount)
    if err != nil {
        return toHTTPError(err)
    }
    return c.Status(http.StatusCreated).JSON(toReceiptResponse(receipt))
}

func toHTTPError(err error) error {
    switch {
    case errors.Is(err, ledger.ErrAccountNotFound):
        return fiber.NewError(http.StatusNotFound, err.Error())
    case errors.Is(err, ledger.ErrInsufficientFunds), errors.Is(err, ledger.ErrExceedsOverdraftLimit):
        return fiber.NewError(http.StatusUnprocessableEntity, err.Error())
    case errors.Is(err, ErrDuplicateIBAN):
        return fiber.NewError(http.StatusConflict, err.Error())
    case errors.Is(err, ledger.ErrLedgerFull):
        return fiber.NewError(http.StatusInsufficientStorage, err.Error())
    case errors.Is(err, ledger.ErrNonPositiveAmount),
        errors.Is(err, ErrInvalidIBAN),
        errors.Is(err, account.ErrInvalidTerms),
        errors.Is(err, account.ErrUnknownKind),
        errors.Is(err, holder.ErrInvalidNationalID),
        errors.Is(err, holder.ErrIncompleteHolder):
        return fiber.NewError(http.StatusBadRequest, err.Error())
    default:
        return fiber.NewError(http.StatusInternalServerError, err.Error())
    }
}

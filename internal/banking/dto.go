package banking

import (
    "time"

    "github.com/shopspring/decimal"

    "github.com/banco-ledger/banco/internal/account"
    "github.com/banco-ledger/banco/internal/ledger"
)

// OpenRequest is the body of POST /accounts.
type OpenRequest struct {
    IBAN           string          `json:"iban"`
    Kind           string          `json:"kind"`
    OpeningBalance decimal.Decimal `json:"opening_balance"`
    Holder         HolderRequest   `json:"holder"`

    AnnualInterestRate    decimal.Decimal `json:"annual_interest_rate"`
    AuthorizedEntities    []string        `json:"authorized_entities"`
    AnnualMaintenanceFee  decimal.Decimal `json:"annual_maintenance_fee"`
    MaxOverdraft          decimal.Decimal `json:"max_overdraft"`
    OverdraftInterestRate decimal.Decimal `json:"overdraft_interest_rate"`
    FixedOverdraftFee     decimal.Decimal `json:"fixed_overdraft_fee"`
}

// HolderRequest identifies the account holder.
type HolderRequest struct {
    Name       string `json:"name"`
    Surname    string `json:"surname"`
    NationalID string `json:"national_id"`
}

// AmountRequest is the body of deposit and withdrawal requests.
type AmountRequest struct {
    Amount decimal.Decimal `json:"amount"`
}

// HolderView is the holder as embedded in account responses.
type HolderView struct {
    Name       string `json:"name"`
    Surname    string `json:"surname"`
    NationalID string `json:"national_id"`
}

// AccountResponse describes an account with its kind-specific terms.
type AccountResponse struct {
    IBAN     string          `json:"iban"`
    Kind     account.Kind    `json:"kind"`
    Balance  decimal.Decimal `json:"balance"`
    Holder   HolderView      `json:"holder"`
    OpenedAt time.Time       `json:"opened_at"`

    AnnualInterestRate    *decimal.Decimal `json:"annual_interest_rate,omitempty"`
    AuthorizedEntities    []string         `json:"authorized_entities,omitempty"`
    AnnualMaintenanceFee  *decimal.Decimal `json:"annual_maintenance_fee,omitempty"`
    MaxOverdraft          *decimal.Decimal `json:"max_overdraft,omitempty"`
    OverdraftInterestRate *decimal.Decimal `json:"overdraft_interest_rate,omitempty"`
    FixedOverdraftFee     *decimal.Decimal `json:"fixed_overdraft_fee,omitempty"`
}

// ListResponse is the body of GET /accounts.
type ListResponse struct {
    Accounts []AccountResponse `json:"accounts"`
    Count    int               `json:"count"`
    Capacity int               `json:"capacity"`
}

// ReceiptResponse is the body returned for an applied posting.
type ReceiptResponse struct {
    TransactionID string          `json:"transaction_id"`
    IBAN          string          `json:"iban"`
    Operation     string          `json:"operation"`
    Amount        decimal.Decimal `json:"amount"`
    Commission    decimal.Decimal `json:"commission"`
    Basis         string          `json:"commission_basis"`
    Balance       decimal.Decimal `json:"balance"`
    Summary       string          `json:"summary"`
    AppliedAt     time.Time       `json:"applied_at"`
}

func toAccountResponse(a account.Account) AccountResponse {
    out := AccountResponse{
        IBAN:     a.IBAN,
        Kind:     a.Kind(),
        Balance:  a.Balance,
        OpenedAt: a.OpenedAt,
    }
    if a.Holder != nil {
        out.Holder = HolderView{Name: a.Holder.Name, Surname: a.Holder.Surname, NationalID: a.Holder.NationalID}
    }

    switch t := a.Terms.(type) {
    case account.SavingsTerms:
        out.AnnualInterestRate = &t.AnnualInterestRate
    case account.PersonalTerms:
        out.AuthorizedEntities = t.AuthorizedEntities
        out.AnnualMaintenanceFee = &t.AnnualMaintenanceFee
    case account.CorporateTerms:
        out.AuthorizedEntities = t.AuthorizedEntities
        out.MaxOverdraft = &t.MaxOverdraft
        out.OverdraftInterestRate = &t.OverdraftInterestRate
        out.FixedOverdraftFee = &t.FixedOverdraftFee
    }
    return out
}

func toReceiptResponse(r ledger.Receipt) ReceiptResponse {
    return ReceiptResponse{
        TransactionID: r.TransactionID,
        IBAN:          r.IBAN,
        Operation:     string(r.Operation),
        Amount:        r.Amount,
        Commission:    r.Commission,
        Basis:         string(r.Basis),
        Balance:       r.Balance,
        Summary:       Describe(r),
        AppliedAt:     r.AppliedAt,
    }
}

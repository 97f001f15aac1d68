package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banco-ledger/banco/internal/account"
)

var (
	// ErrNonPositiveAmount rejects deposits and withdrawals of zero or less.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrAccountNotFound indicates no account is registered under the IBAN.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds occurs when a savings or personal account would
	// end below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrExceedsOverdraftLimit occurs when a corporate withdrawal, commission
	// included, does not fit in balance plus the maximum overdraft.
	ErrExceedsOverdraftLimit = errors.New("amount exceeds available balance plus overdraft limit")

	// ErrLedgerFull is returned by Open once the ledger holds Capacity accounts.
	ErrLedgerFull = errors.New("ledger is full")
)

// DefaultCapacity is the number of accounts a ledger accepts when no
// capacity is configured.
const DefaultCapacity = 100

// Operation names the kind of posting recorded in a Receipt.
type Operation string

const (
	OperationDeposit    Operation = "deposit"
	OperationWithdrawal Operation = "withdrawal"
)

// Basis reports how the commission of a withdrawal was computed.
type Basis string

const (
	// BasisNone means no commission was charged.
	BasisNone Basis = "none"
	// BasisPercentage means the overdraft interest rate applied to the debt.
	BasisPercentage Basis = "percentage"
	// BasisFixed means the fixed overdraft fee was charged as the floor.
	BasisFixed Basis = "fixed"
)

// Receipt captures the outcome of an applied posting.
type Receipt struct {
	TransactionID string
	IBAN          string
	Operation     Operation
	Amount        decimal.Decimal
	Commission    decimal.Decimal
	Basis         Basis
	Balance       decimal.Decimal
	AppliedAt     time.Time
}

// Overdrawn reports whether the posting left the account below zero.
func (r Receipt) Overdrawn() bool {
	return r.Balance.IsNegative()
}

// Ledger is the registry of accounts and the only place balances change.
// Rejected operations never mutate state.
type Ledger interface {
	// Open registers an account. It does not check for duplicate IBANs;
	// callers check Exists first.
	Open(ctx context.Context, acct account.Account) error
	Exists(ctx context.Context, iban string) bool
	Find(ctx context.Context, iban string) (account.Account, error)
	List(ctx context.Context) []account.Account
	Count(ctx context.Context) int
	Capacity() int
	Balance(ctx context.Context, iban string) (decimal.Decimal, error)
	Deposit(ctx context.Context, iban string, amount decimal.Decimal) (Receipt, error)
	Withdraw(ctx context.Context, iban string, amount decimal.Decimal) (Receipt, error)
}

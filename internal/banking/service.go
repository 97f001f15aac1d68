package banking

import (
    "context"
    "errors"
    "fmt"
    "log/slog"
    "regexp"
    "strings"
    "sync"
    "time"

    "github.com/shopspring/decimal"

    "github.com/banco-ledger/banco/internal/account"
    "github.com/banco-ledger/banco/internal/holder"
    "github.com/banco-ledger/banco/internal/ledger"
    "github.com/banco-ledger/banco/internal/notification"
)

var (
    // ErrInvalidIBAN reports an IBAN that is not ES followed by 20 digits.
    ErrInvalidIBAN = errors.New("invalid IBAN")
    // ErrDuplicateIBAN reports an attempt to open a second account under an IBAN.
    ErrDuplicateIBAN = errors.New("an account with this IBAN already exists")
)

var ibanPattern = regexp.MustCompile(`^ES[0-9]{20}$`)

// Service is the entry point for account operations. It validates caller
// input, resolves holders and delegates postings to the ledger.
type Service struct {
    ledger   ledger.Ledger
    holders  *holder.Service
    notifier notification.Notifier
    logger   *slog.Logger

    // serializes the exists/open pair so IBANs stay unique
    openMu sync.Mutex
}

// NewService builds a banking service. notifier may be nil.
func NewService(l ledger.Ledger, holders *holder.Service, notifier notification.Notifier, logger *slog.Logger) *Service {
    if logger == nil {
        logger = slog.Default()
    }
    return &Service{ledger: l, holders: holders, notifier: notifier, logger: logger}
}

// OpenInput captures everything needed to open an account. Only the fields
// of the selected Kind are read.
type OpenInput struct {
    IBAN           string
    Kind           account.Kind
    OpeningBalance decimal.Decimal
    Holder         holder.Details

    AnnualInterestRate    decimal.Decimal
    AuthorizedEntities    []string
    AnnualMaintenanceFee  decimal.Decimal
    MaxOverdraft          decimal.Decimal
    OverdraftInterestRate decimal.Decimal
    FixedOverdraftFee     decimal.Decimal
}

func (in OpenInput) terms() (account.Terms, error) {
    switch in.Kind {
    case account.KindSavings:
        return account.SavingsTerms{AnnualInterestRate: in.AnnualInterestRate}, nil
    case account.KindPersonal:
        return account.PersonalTerms{
            AuthorizedEntities:   in.AuthorizedEntities,
            AnnualMaintenanceFee: in.AnnualMaintenanceFee,
        }, nil
    case account.KindCorporate:
        return account.CorporateTerms{
            AuthorizedEntities:    in.AuthorizedEntities,
            MaxOverdraft:          in.MaxOverdraft,
            OverdraftInterestRate: in.OverdraftInterestRate,
            FixedOverdraftFee:     in.FixedOverdraftFee,
        }, nil
    default:
        return nil, fmt.Errorf("%w: %q", account.ErrUnknownKind, in.Kind)
    }
}

// Open validates the input, resolves the holder and registers the account.
func (s *Service) Open(ctx context.Context, in OpenInput) (account.Account, error) {
    iban, err := NormalizeIBAN(in.IBAN)
    if err != nil {
        return account.Account{}, err
    }
    terms, err := in.terms()
    if err != nil {
        return account.Account{}, err
    }
    // holders are registered only for accounts that will be opened
    if err := account.Validate(in.OpeningBalance, terms); err != nil {
        return account.Account{}, err
    }

    s.openMu.Lock()
    defer s.openMu.Unlock()

    if s.ledger.Exists(ctx, iban) {
        return account.Account{}, ErrDuplicateIBAN
    }
    if s.ledger.Count(ctx) >= s.ledger.Capacity() {
        return account.Account{}, ledger.ErrLedgerFull
    }

    h, err := s.holders.Resolve(ctx, in.Holder)
    if err != nil {
        return account.Account{}, fmt.Errorf("resolve holder: %w", err)
    }
    acct, err := account.New(h, iban, in.OpeningBalance, terms)
    if err != nil {
        return account.Account{}, err
    }
    if err := s.ledger.Open(ctx, acct); err != nil {
        return account.Account{}, err
    }

    s.logger.Info("account opened",
        slog.String("iban", iban),
        slog.String("kind", string(acct.Kind())),
        slog.String("holder", h.NationalID),
    )
    return acct, nil
}

// Get returns the account registered under iban.
func (s *Service) Get(ctx context.Context, iban string) (account.Account, error) {
    return s.ledger.Find(ctx, canonicalIBAN(iban))
}

// List returns every account in opening order.
func (s *Service) List(ctx context.Context) []account.Account {
    return s.ledger.List(ctx)
}

// Occupancy reports how many accounts are open and how many the ledger accepts.
func (s *Service) Occupancy(ctx context.Context) (int, int) {
    return s.ledger.Count(ctx), s.ledger.Capacity()
}

// Balance is the balance of an account at a point in time.
type Balance struct {
    IBAN   string
    Amount decimal.Decimal
    AsOf   time.Time
}

// Balance returns the current balance of the account.
func (s *Service) Balance(ctx context.Context, iban string) (Balance, error) {
    iban = canonicalIBAN(iban)
    amount, err := s.ledger.Balance(ctx, iban)
    if err != nil {
        return Balance{}, err
    }
    return Balance{IBAN: iban, Amount: amount, AsOf: time.Now().UTC()}, nil
}

// Deposit credits amount to the account.
func (s *Service) Deposit(ctx context.Context, iban string, amount decimal.Decimal) (ledger.Receipt, error) {
    receipt, err := s.ledger.Deposit(ctx, canonicalIBAN(iban), amount)
    if err != nil {
        return ledger.Receipt{}, err
    }
    s.notify(ctx, receipt)
    return receipt, nil
}

// Withdraw debits amount from the account, charging an overdraft commission
// on corporate accounts that go negative.
func (s *Service) Withdraw(ctx context.Context, iban string, amount decimal.Decimal) (ledger.Receipt, error) {
    receipt, err := s.ledger.Withdraw(ctx, canonicalIBAN(iban), amount)
    if err != nil {
        return ledger.Receipt{}, err
    }
    if receipt.Basis != ledger.BasisNone {
        s.logger.Info("account overdrawn",
            slog.String("iban", receipt.IBAN),
            slog.String("commission", receipt.Commission.StringFixed(2)),
            slog.String("basis", string(receipt.Basis)),
        )
    }
    s.notify(ctx, receipt)
    return receipt, nil
}

func (s *Service) notify(ctx context.Context, receipt ledger.Receipt) {
    if s.notifier == nil {
        return
    }
    acct, err := s.ledger.Find(ctx, receipt.IBAN)
    if err != nil {
        return
    }

    msg := notification.Message{
        Kind:        notification.KindDeposit,
        Destination: acct.Holder.NationalID,
        Reference:   receipt.TransactionID,
        Body:        Describe(receipt),
    }
    if receipt.Operation == ledger.OperationWithdrawal {
        msg.Kind = notification.KindWithdrawal
        if receipt.Basis != ledger.BasisNone {
            msg.Kind = notification.KindOverdraft
        }
    }
    if err := s.notifier.Send(ctx, msg); err != nil {
        s.logger.Warn("notification failed", slog.String("reference", receipt.TransactionID), slog.Any("error", err))
    }
}

// Describe renders a receipt as a one-line human readable summary, naming the
// commission basis when an overdraft was charged.
func Describe(r ledger.Receipt) string {
    var b strings.Builder
    switch r.Operation {
    case ledger.OperationDeposit:
        fmt.Fprintf(&b, "deposited %s", r.Amount.StringFixed(2))
    default:
        fmt.Fprintf(&b, "withdrew %s", r.Amount.StringFixed(2))
    }
    switch r.Basis {
    case ledger.BasisFixed:
        fmt.Fprintf(&b, "; fixed overdraft fee %s", r.Commission.StringFixed(2))
    case ledger.BasisPercentage:
        fmt.Fprintf(&b, "; overdraft commission %s", r.Commission.StringFixed(2))
    }
    fmt.Fprintf(&b, "; balance %s", r.Balance.StringFixed(2))
    return b.String()
}

// NormalizeIBAN strips spaces, upper-cases and validates an IBAN.
func NormalizeIBAN(iban string) (string, error) {
    out := canonicalIBAN(iban)
    if !ibanPattern.MatchString(out) {
        return "", fmt.Errorf("%w: %q", ErrInvalidIBAN, iban)
    }
    return out, nil
}

func canonicalIBAN(iban string) string {
    return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(iban), " ", ""))
}

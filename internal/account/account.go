// Package account models bank accounts: the fields every account shares and
// the kind-specific terms that decide how withdrawals are evaluated.
package account

import (
    "errors"
    "fmt"
    "time"

    "github.com/shopspring/decimal"

    "github.com/banco-ledger/banco/internal/holder"
)

// Kind names an account variant.
type Kind string

const (
    KindSavings   Kind = "savings"
    KindPersonal  Kind = "personal"
    KindCorporate Kind = "corporate"
)

var (
    // ErrInvalidTerms reports negative or missing account parameters.
    ErrInvalidTerms = errors.New("invalid account terms")
    // ErrUnknownKind reports an unsupported account kind.
    ErrUnknownKind = errors.New("unknown account kind")
)

// ParseKind converts a wire value into a Kind.
func ParseKind(s string) (Kind, error) {
    switch k := Kind(s); k {
    case KindSavings, KindPersonal, KindCorporate:
        return k, nil
    default:
        return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
    }
}

// Account is a single ledger entry point for money. Holder is shared with
// other accounts of the same person and is never mutated through here.
type Account struct {
    Holder   *holder.Holder
    IBAN     string
    Balance  decimal.Decimal
    Terms    Terms
    OpenedAt time.Time
}

// Validate checks that the opening balance and every monetary or rate
// parameter of terms is non-negative.
func Validate(openingBalance decimal.Decimal, terms Terms) error {
    if terms == nil {
        return fmt.Errorf("%w: terms are required", ErrInvalidTerms)
    }
    if openingBalance.IsNegative() {
        return fmt.Errorf("%w: opening balance must not be negative", ErrInvalidTerms)
    }
    return terms.validate()
}

// New builds an account for h once Validate accepts its parameters.
func New(h *holder.Holder, iban string, openingBalance decimal.Decimal, terms Terms) (Account, error) {
    if h == nil {
        return Account{}, fmt.Errorf("%w: holder is required", ErrInvalidTerms)
    }
    if err := Validate(openingBalance, terms); err != nil {
        return Account{}, err
    }
    return Account{
        Holder:   h,
        IBAN:     iban,
        Balance:  openingBalance,
        Terms:    terms.clone(),
        OpenedAt: time.Now().UTC(),
    }, nil
}

// Kind reports the account variant.
func (a Account) Kind() Kind {
    if a.Terms == nil {
        return ""
    }
    return a.Terms.Kind()
}

// Floor is the lowest balance an accepted operation may leave behind. Only
// corporate accounts go below zero; an account without terms never does.
func (a Account) Floor() decimal.Decimal {
    if t, ok := a.Terms.(CorporateTerms); ok {
        return t.MaxOverdraft.Neg()
    }
    return decimal.Zero
}

// Clone returns a copy that shares the holder but no mutable slices.
func (a Account) Clone() Account {
    out := a
    if a.Terms != nil {
        out.Terms = a.Terms.clone()
    }
    return out
}

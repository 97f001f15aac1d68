package account

import (
    "fmt"

    "github.com/shopspring/decimal"
)

// Terms carries the parameters of one account variant. The set of
// implementations is closed: SavingsTerms, PersonalTerms and CorporateTerms.
type Terms interface {
    Kind() Kind
    validate() error
    clone() Terms
}

// SavingsTerms describes a savings account. It never goes overdrawn.
type SavingsTerms struct {
    AnnualInterestRate decimal.Decimal
}

// PersonalTerms describes a personal current account. The maintenance fee is
// informational and is never charged by the ledger.
type PersonalTerms struct {
    AuthorizedEntities   []string
    AnnualMaintenanceFee decimal.Decimal
}

// CorporateTerms describes a corporate current account, the only variant
// allowed to run a negative balance.
type CorporateTerms struct {
    AuthorizedEntities    []string
    MaxOverdraft          decimal.Decimal
    OverdraftInterestRate decimal.Decimal
    FixedOverdraftFee     decimal.Decimal
}

func (SavingsTerms) Kind() Kind   { return KindSavings }
func (PersonalTerms) Kind() Kind  { return KindPersonal }
func (CorporateTerms) Kind() Kind { return KindCorporate }

func (t SavingsTerms) validate() error {
    return nonNegative("annual interest rate", t.AnnualInterestRate)
}

func (t PersonalTerms) validate() error {
    return nonNegative("annual maintenance fee", t.AnnualMaintenanceFee)
}

func (t CorporateTerms) validate() error {
    if err := nonNegative("max overdraft", t.MaxOverdraft); err != nil {
        return err
    }
    if err := nonNegative("overdraft interest rate", t.OverdraftInterestRate); err != nil {
        return err
    }
    return nonNegative("fixed overdraft fee", t.FixedOverdraftFee)
}

func (t SavingsTerms) clone() Terms { return t }

func (t PersonalTerms) clone() Terms {
    t.AuthorizedEntities = cloneEntities(t.AuthorizedEntities)
    return t
}

func (t CorporateTerms) clone() Terms {
    t.AuthorizedEntities = cloneEntities(t.AuthorizedEntities)
    return t
}

// AuthorizedEntities returns the billing entities of current accounts and nil
// for savings accounts.
func AuthorizedEntities(t Terms) []string {
    switch v := t.(type) {
    case PersonalTerms:
        return cloneEntities(v.AuthorizedEntities)
    case CorporateTerms:
        return cloneEntities(v.AuthorizedEntities)
    default:
        return nil
    }
}

func nonNegative(field string, v decimal.Decimal) error {
    if v.IsNegative() {
        return fmt.Errorf("%w: %s must not be negative", ErrInvalidTerms, field)
    }
    return nil
}

func cloneEntities(in []string) []string {
    if in == nil {
        return nil
    }
    out := make([]string, len(in))
    copy(out, in)
    return out
}

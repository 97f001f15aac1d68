package account

import (
    "errors"
    "testing"

    "github.com/shopspring/decimal"

    "github.com/banco-ledger/banco/internal/holder"
)

func testHolder() *holder.Holder {
    return &holder.Holder{Name: "Marta", Surname: "Lopez", NationalID: "12345678A"}
}

func TestNewRejectsNegativeParameters(t *testing.T) {
    h := testHolder()
    cases := map[string]struct {
        opening decimal.Decimal
        terms   Terms
    }{
        "opening balance": {decimal.NewFromInt(-1), SavingsTerms{}},
        "interest rate":   {decimal.Zero, SavingsTerms{AnnualInterestRate: decimal.NewFromFloat(-0.5)}},
        "maintenance fee": {decimal.Zero, PersonalTerms{AnnualMaintenanceFee: decimal.NewFromInt(-10)}},
        "max overdraft":   {decimal.Zero, CorporateTerms{MaxOverdraft: decimal.NewFromInt(-1)}},
        "overdraft rate":  {decimal.Zero, CorporateTerms{OverdraftInterestRate: decimal.NewFromInt(-1)}},
        "fixed fee":       {decimal.Zero, CorporateTerms{FixedOverdraftFee: decimal.NewFromInt(-1)}},
        "nil terms":       {decimal.Zero, nil},
    }
    for name, tc := range cases {
        if _, err := New(h, "ES0000000000000000000001", tc.opening, tc.terms); !errors.Is(err, ErrInvalidTerms) {
            t.Fatalf("%s: expected ErrInvalidTerms, got %v", name, err)
        }
    }

    if _, err := New(nil, "ES0000000000000000000001", decimal.Zero, SavingsTerms{}); !errors.Is(err, ErrInvalidTerms) {
        t.Fatalf("expected ErrInvalidTerms for missing holder, got %v", err)
    }
}

func TestFloorByKind(t *testing.T) {
    h := testHolder()
    savings, err := New(h, "ES0000000000000000000001", decimal.NewFromInt(10), SavingsTerms{AnnualInterestRate: decimal.NewFromInt(2)})
    if err != nil {
        t.Fatalf("new savings: %v", err)
    }
    corporate, err := New(h, "ES0000000000000000000002", decimal.NewFromInt(10), CorporateTerms{MaxOverdraft: decimal.NewFromInt(2000)})
    if err != nil {
        t.Fatalf("new corporate: %v", err)
    }

    if !savings.Floor().IsZero() {
        t.Fatalf("expected zero floor for savings, got %s", savings.Floor())
    }
    if !corporate.Floor().Equal(decimal.NewFromInt(-2000)) {
        t.Fatalf("expected -2000 floor for corporate, got %s", corporate.Floor())
    }
    if savings.Holder != corporate.Holder {
        t.Fatalf("accounts should share the holder")
    }
}

func TestCloneDetachesEntities(t *testing.T) {
    entities := []string{"Iberdrola", "Movistar"}
    acct, err := New(testHolder(), "ES0000000000000000000003", decimal.Zero, PersonalTerms{AuthorizedEntities: entities})
    if err != nil {
        t.Fatalf("new personal: %v", err)
    }
    entities[0] = "changed"

    clone := acct.Clone()
    got := AuthorizedEntities(clone.Terms)
    if got[0] != "Iberdrola" {
        t.Fatalf("account must not alias caller slice, got %v", got)
    }
    got[1] = "changed"
    if AuthorizedEntities(acct.Terms)[1] != "Movistar" {
        t.Fatalf("AuthorizedEntities must return a copy")
    }
}

func TestParseKind(t *testing.T) {
    for _, s := range []string{"savings", "personal", "corporate"} {
        if _, err := ParseKind(s); err != nil {
            t.Fatalf("parse %s: %v", s, err)
        }
    }
    if _, err := ParseKind("checking"); !errors.Is(err, ErrUnknownKind) {
        t.Fatalf("expected ErrUnknownKind, got %v", err)
    }
}

func TestFloorWithoutTerms(t *testing.T) {
    if floor := (Account{IBAN: "ES0000000000000000000003"}).Floor(); !floor.IsZero() {
        t.Fatalf("expected zero floor without terms, got %s", floor)
    }
}

func TestValidate(t *testing.T) {
    if err := Validate(decimal.NewFromInt(-1), SavingsTerms{}); !errors.Is(err, ErrInvalidTerms) {
        t.Fatalf("expected ErrInvalidTerms for negative opening balance, got %v", err)
    }
    if err := Validate(decimal.Zero, nil); !errors.Is(err, ErrInvalidTerms) {
        t.Fatalf("expected ErrInvalidTerms for missing terms, got %v", err)
    }
    if err := Validate(decimal.Zero, PersonalTerms{AnnualMaintenanceFee: decimal.NewFromInt(12)}); err != nil {
        t.Fatalf("validate: %v", err)
    }
}

package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/banco-ledger/banco/internal/account"
)

var hundred = decimal.NewFromInt(100)

type posting struct {
	balance    decimal.Decimal
	commission decimal.Decimal
	basis      Basis
}

func evaluateDeposit(balance, amount decimal.Decimal) (posting, error) {
	if !amount.IsPositive() {
		return posting{}, ErrNonPositiveAmount
	}
	return posting{balance: balance.Add(amount), commission: decimal.Zero, basis: BasisNone}, nil
}

func evaluateWithdrawal(acct account.Account, amount decimal.Decimal) (posting, error) {
	if !amount.IsPositive() {
		return posting{}, ErrNonPositiveAmount
	}

	switch terms := acct.Terms.(type) {
	case account.SavingsTerms, account.PersonalTerms:
		remaining := acct.Balance.Sub(amount)
		if remaining.IsNegative() {
			return posting{}, ErrInsufficientFunds
		}
		return posting{balance: remaining, commission: decimal.Zero, basis: BasisNone}, nil
	case account.CorporateTerms:
		return evaluateCorporateWithdrawal(acct.Balance, amount, terms)
	default:
		return posting{}, fmt.Errorf("ledger: unsupported account terms %T", acct.Terms)
	}
}

func evaluateCorporateWithdrawal(balance, amount decimal.Decimal, terms account.CorporateTerms) (posting, error) {
	maxAvailable := balance.Add(terms.MaxOverdraft)
	if amount.GreaterThan(maxAvailable) {
		return posting{}, ErrExceedsOverdraftLimit
	}
	if !amount.GreaterThan(balance) {
		return posting{balance: balance.Sub(amount), commission: decimal.Zero, basis: BasisNone}, nil
	}

	debt := amount.Sub(balance)
	commission, basis := OverdraftCommission(debt, terms)
	// the commission must fit in the overdraft as well
	if amount.Add(commission).GreaterThan(maxAvailable) {
		return posting{}, ErrExceedsOverdraftLimit
	}
	return posting{balance: balance.Sub(amount).Sub(commission), commission: commission, basis: basis}, nil
}

// OverdraftCommission prices an overdraft of debt: the interest rate (a
// percentage) applied to the debt, floored at the fixed overdraft fee.
func OverdraftCommission(debt decimal.Decimal, terms account.CorporateTerms) (decimal.Decimal, Basis) {
	percentage := terms.OverdraftInterestRate.Mul(debt).Div(hundred)
	if percentage.LessThan(terms.FixedOverdraftFee) {
		return terms.FixedOverdraftFee, BasisFixed
	}
	return percentage, BasisPercentage
}

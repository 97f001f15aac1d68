package ledger

import "github.com/shopspring/decimal"

// SeedBalance is a test helper that overwrites the balance of an account held
// by the in-memory ledger, bypassing the evaluator.
func SeedBalance(l Ledger, iban string, amount decimal.Decimal) {
	if mem, ok := l.(*inMemoryLedger); ok {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		if acct, found := mem.lookup(iban); found {
			acct.Balance = amount
		}
	}
}

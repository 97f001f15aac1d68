package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/banco-ledger/banco/internal/account"
)

type inMemoryLedger struct {
	mu       sync.RWMutex
	capacity int
	accounts []*account.Account
	index    map[string]int
}

// NewInMemory creates a concurrency-safe in-memory ledger holding at most
// capacity accounts. A non-positive capacity selects DefaultCapacity.
func NewInMemory(capacity int) Ledger {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &inMemoryLedger{
		capacity: capacity,
		accounts: make([]*account.Account, 0, capacity),
		index:    make(map[string]int),
	}
}

func (l *inMemoryLedger) Open(_ context.Context, acct account.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.accounts) >= l.capacity {
		return ErrLedgerFull
	}

	stored := acct.Clone()
	l.accounts = append(l.accounts, &stored)
	// lookups resolve to the first account opened under an IBAN
	if _, exists := l.index[acct.IBAN]; !exists {
		l.index[acct.IBAN] = len(l.accounts) - 1
	}
	return nil
}

func (l *inMemoryLedger) Exists(_ context.Context, iban string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, exists := l.index[iban]
	return exists
}

func (l *inMemoryLedger) Find(_ context.Context, iban string) (account.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acct, ok := l.lookup(iban)
	if !ok {
		return account.Account{}, ErrAccountNotFound
	}
	return acct.Clone(), nil
}

func (l *inMemoryLedger) List(_ context.Context) []account.Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]account.Account, 0, len(l.accounts))
	for _, acct := range l.accounts {
		out = append(out, acct.Clone())
	}
	return out
}

func (l *inMemoryLedger) Count(_ context.Context) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.accounts)
}

func (l *inMemoryLedger) Capacity() int {
	return l.capacity
}

func (l *inMemoryLedger) Balance(_ context.Context, iban string) (decimal.Decimal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acct, ok := l.lookup(iban)
	if !ok {
		return decimal.Zero, ErrAccountNotFound
	}
	return acct.Balance, nil
}

func (l *inMemoryLedger) Deposit(_ context.Context, iban string, amount decimal.Decimal) (Receipt, error) {
	if !amount.IsPositive() {
		return Receipt{}, ErrNonPositiveAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.lookup(iban)
	if !ok {
		return Receipt{}, ErrAccountNotFound
	}
	res, err := evaluateDeposit(acct.Balance, amount)
	if err != nil {
		return Receipt{}, err
	}
	acct.Balance = res.balance
	return newReceipt(iban, OperationDeposit, amount, res), nil
}

func (l *inMemoryLedger) Withdraw(_ context.Context, iban string, amount decimal.Decimal) (Receipt, error) {
	if !amount.IsPositive() {
		return Receipt{}, ErrNonPositiveAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.lookup(iban)
	if !ok {
		return Receipt{}, ErrAccountNotFound
	}
	res, err := evaluateWithdrawal(*acct, amount)
	if err != nil {
		return Receipt{}, err
	}
	acct.Balance = res.balance
	return newReceipt(iban, OperationWithdrawal, amount, res), nil
}

// lookup must be called with l.mu held.
func (l *inMemoryLedger) lookup(iban string) (*account.Account, bool) {
	i, ok := l.index[iban]
	if !ok {
		return nil, false
	}
	return l.accounts[i], true
}

func newReceipt(iban string, op Operation, amount decimal.Decimal, res posting) Receipt {
	return Receipt{
		TransactionID: uuid.NewString(),
		IBAN:          iban,
		Operation:     op,
		Amount:        amount,
		Commission:    res.commission,
		Basis:         res.basis,
		Balance:       res.balance,
		AppliedAt:     time.Now().UTC(),
	}
}

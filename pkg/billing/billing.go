// Package billing gates debate creation on available credit and settles
// actual spend afterwards. The ledger here is an in-process implementation;
// the CreditChecker interface is what the rest of the system depends on.
package billing

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// CreditChecker is consulted before a debate starts and charged as usage
// accrues.
type CreditChecker interface {
	// Check returns an *InsufficientCreditsError when the user cannot cover
	// the estimated cost.
	Check(ctx context.Context, userID string, estimated decimal.Decimal) error

	// Deduct settles actual spend against the user's balance.
	Deduct(ctx context.Context, userID string, amount decimal.Decimal) error
}

// InsufficientCreditsError reports a failed credit pre-check.
type InsufficientCreditsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: required %s, available %s",
		e.Required.StringFixed(6), e.Available.StringFixed(6))
}

// Shortfall returns how much credit is missing.
func (e *InsufficientCreditsError) Shortfall() decimal.Decimal {
	return e.Required.Sub(e.Available)
}

// MemoryLedger is an in-process CreditChecker. Balances default to unlimited
// unless explicitly set, so self-hosted deployments work without billing.
type MemoryLedger struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
}

// NewMemoryLedger creates an empty ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{balances: make(map[string]decimal.Decimal)}
}

// SetBalance sets a user's balance, enabling enforcement for that user.
func (l *MemoryLedger) SetBalance(userID string, balance decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[userID] = balance
}

// Check implements CreditChecker.
func (l *MemoryLedger) Check(ctx context.Context, userID string, estimated decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	balance, tracked := l.balances[userID]
	if !tracked {
		return nil
	}
	if balance.LessThan(estimated) {
		return &InsufficientCreditsError{Required: estimated, Available: balance}
	}
	return nil
}

// Deduct implements CreditChecker. Untracked users are never charged.
// Balances may go negative: streams that overshoot the pre-check estimate
// still settle in full.
func (l *MemoryLedger) Deduct(ctx context.Context, userID string, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	balance, tracked := l.balances[userID]
	if !tracked {
		return nil
	}
	l.balances[userID] = balance.Sub(amount)
	return nil
}

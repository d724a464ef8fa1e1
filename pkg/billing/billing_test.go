package billing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("untracked users pass checks", func(t *testing.T) {
		l := NewMemoryLedger()
		assert.NoError(t, l.Check(ctx, "anyone", decimal.NewFromInt(100)))
		assert.NoError(t, l.Deduct(ctx, "anyone", decimal.NewFromInt(100)))
	})

	t.Run("tracked user below balance passes", func(t *testing.T) {
		l := NewMemoryLedger()
		l.SetBalance("u1", decimal.NewFromInt(10))
		assert.NoError(t, l.Check(ctx, "u1", decimal.RequireFromString("9.99")))
	})

	t.Run("tracked user over balance fails with shortfall", func(t *testing.T) {
		l := NewMemoryLedger()
		l.SetBalance("u1", decimal.NewFromInt(1))

		err := l.Check(ctx, "u1", decimal.RequireFromString("2.50"))
		require.Error(t, err)

		var credErr *InsufficientCreditsError
		require.ErrorAs(t, err, &credErr)
		assert.True(t, credErr.Shortfall().Equal(decimal.RequireFromString("1.5")))
	})

	t.Run("deduct settles and may overdraw", func(t *testing.T) {
		l := NewMemoryLedger()
		l.SetBalance("u1", decimal.NewFromInt(1))

		require.NoError(t, l.Deduct(ctx, "u1", decimal.RequireFromString("1.75")))
		err := l.Check(ctx, "u1", decimal.Zero)
		require.Error(t, err, "negative balance fails even a zero-cost check")
	})
}

package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shiftwise/staffing-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/require"
)

func TestWithinTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	periods := NewPeriodRepository(store)

	boom := errors.New("boom")
	err := store.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := periods.Create(ctx, payroll.Period{EmployerID: "employer-1"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := periods.ListByEmployer(ctx, "employer-1")
	require.NoError(t, err)
	require.Empty(t, got, "writes inside a failed transaction must not survive")
}

func TestWithinTxCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	periods := NewPeriodRepository(store)

	err := store.WithinTx(ctx, func(ctx context.Context) error {
		_, err := periods.Create(ctx, payroll.Period{EmployerID: "employer-1"})
		return err
	})
	require.NoError(t, err)

	got, err := periods.ListByEmployer(ctx, "employer-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

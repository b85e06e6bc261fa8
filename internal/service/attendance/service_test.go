package attendance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
	"github.com/shiftwise/staffing-backend-go/internal/domain/shift"
	"github.com/shiftwise/staffing-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestService(store *memory.Store) *Service {
	return NewService(
		store,
		memory.NewShiftRepository(store),
		memory.NewInviteRepository(store),
		memory.NewApplicationRepository(store),
		memory.NewClockinRepository(store),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func seedShift(store *memory.Store, id string, start time.Time, roster ...string) shift.Shift {
	return store.PutShift(shift.Shift{
		ID:                id,
		EmployerID:        "employer-1",
		StartingAt:        start,
		EndingAt:          start.Add(8 * time.Hour),
		MinimumHourlyRate: decimal.NewFromInt(20),
		Status:            shift.StatusFilled,
		Roster:            roster,
	})
}

func TestClockInThenOutRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store)

	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	seedShift(store, "shift-a", start, "worker-1")

	svc.now = func() time.Time { return start.Add(time.Minute) }
	created, err := svc.ClockIn(ctx, clockin.ClockInRequest{ShiftID: "shift-a", WorkerID: "worker-1"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Nil(t, created.EndedAt)

	svc.now = func() time.Time { return start.Add(8 * time.Hour) }
	closed, err := svc.ClockOut(ctx, clockin.ClockOutRequest{ShiftID: "shift-a", WorkerID: "worker-1"})
	require.NoError(t, err)
	require.Equal(t, created.ID, closed.ID)
	require.NotNil(t, closed.EndedAt)
	require.False(t, closed.AutomaticallyClosed)
}

func TestClockInBlockedByOpenRecordOnAnotherShift(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store)

	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	seedShift(store, "shift-a", start, "worker-1")
	seedShift(store, "shift-b", start, "worker-1")

	svc.now = func() time.Time { return start.Add(time.Minute) }
	_, err := svc.ClockIn(ctx, clockin.ClockInRequest{ShiftID: "shift-a", WorkerID: "worker-1"})
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, clockin.ClockInRequest{ShiftID: "shift-b", WorkerID: "worker-1"})
	require.ErrorIs(t, err, clockin.ErrAlreadyClockedInElsewhere)

	// Closing the first record unblocks the second shift.
	svc.now = func() time.Time { return start.Add(2 * time.Hour) }
	_, err = svc.ClockOut(ctx, clockin.ClockOutRequest{ShiftID: "shift-a", WorkerID: "worker-1"})
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, clockin.ClockInRequest{ShiftID: "shift-b", WorkerID: "worker-1"})
	require.NoError(t, err)
}

func TestClockOutWithoutOpenRecord(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store)

	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	seedShift(store, "shift-a", start, "worker-1")

	svc.now = func() time.Time { return start.Add(time.Hour) }
	_, err := svc.ClockOut(ctx, clockin.ClockOutRequest{ShiftID: "shift-a", WorkerID: "worker-1"})
	require.ErrorIs(t, err, clockin.ErrNoOpenRecord)
}

func TestClockInRejectionLeavesNoRecord(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store)

	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	seedShift(store, "shift-a", start, "someone-else")

	svc.now = func() time.Time { return start }
	_, err := svc.ClockIn(ctx, clockin.ClockInRequest{ShiftID: "shift-a", WorkerID: "worker-1"})
	require.ErrorIs(t, err, clockin.ErrNotRostered)

	open, err := memory.NewClockinRepository(store).ListOpen(ctx)
	require.NoError(t, err)
	require.Empty(t, open)
}

package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
	"github.com/shiftwise/staffing-backend-go/internal/domain/shift"
	"github.com/shiftwise/staffing-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/require"
)

func TestSweepClosesLapsedRecordsAtTheDeadline(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store)

	now := time.Date(2024, 6, 10, 20, 0, 0, 0, time.UTC)
	start := now.Add(-10 * time.Hour) // ended 2h ago with a 60m delay

	sh := seedShift(store, "shift-a", start, "worker-1")
	sh.MaximumClockoutDelayMinutes = intPtr(60)
	store.PutShift(sh)
	store.PutClockin(clockin.Clockin{
		ID: "rec-1", ShiftID: sh.ID, WorkerID: "worker-1", EmployerID: sh.EmployerID,
		StartedAt: start,
	})

	closed, err := svc.Sweep(ctx, now)
	require.NoError(t, err)
	require.Len(t, closed, 1)
	require.True(t, closed[0].AutomaticallyClosed)

	deadline := sh.EndingAt.Add(60 * time.Minute)
	require.NotNil(t, closed[0].EndedAt)
	require.Equal(t, deadline.Format(time.RFC3339), *closed[0].EndedAt)

	got, err := memory.NewShiftRepository(store).GetByID(ctx, sh.ID)
	require.NoError(t, err)
	require.Equal(t, shift.StatusExpired, got.Status)
}

func TestSweepLeavesRecordsInsideTheDelayOpen(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store)

	now := time.Date(2024, 6, 10, 20, 0, 0, 0, time.UTC)
	start := now.Add(-8*time.Hour - 30*time.Minute) // ended 30m ago, 60m delay remains

	sh := seedShift(store, "shift-a", start, "worker-1")
	sh.MaximumClockoutDelayMinutes = intPtr(60)
	store.PutShift(sh)
	store.PutClockin(clockin.Clockin{
		ID: "rec-1", ShiftID: sh.ID, WorkerID: "worker-1", EmployerID: sh.EmployerID,
		StartedAt: start,
	})

	closed, err := svc.Sweep(ctx, now)
	require.NoError(t, err)
	require.Empty(t, closed)

	got, err := memory.NewShiftRepository(store).GetByID(ctx, sh.ID)
	require.NoError(t, err)
	require.Equal(t, shift.StatusFilled, got.Status)
}

func TestSweepOpenEndedShiftBlockedByOpenRecord(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store)

	now := time.Date(2024, 6, 10, 20, 0, 0, 0, time.UTC)
	start := now.Add(-12 * time.Hour) // ended 4h ago, no clockout deadline

	sh := seedShift(store, "shift-a", start, "worker-1")
	store.PutClockin(clockin.Clockin{
		ID: "rec-1", ShiftID: sh.ID, WorkerID: "worker-1", EmployerID: sh.EmployerID,
		StartedAt: start,
	})

	closed, err := svc.Sweep(ctx, now)
	require.NoError(t, err)
	require.Empty(t, closed)

	shifts := memory.NewShiftRepository(store)
	got, err := shifts.GetByID(ctx, sh.ID)
	require.NoError(t, err)
	require.Equal(t, shift.StatusFilled, got.Status, "open record keeps the shift alive")

	// Once the worker clocks out, the next sweep expires the shift.
	endedAt := now.Add(-time.Hour)
	clockins := memory.NewClockinRepository(store)
	require.NoError(t, clockins.Update(ctx, clockin.Clockin{ID: "rec-1", EndedAt: &endedAt}))

	_, err = svc.Sweep(ctx, now)
	require.NoError(t, err)

	got, err = shifts.GetByID(ctx, sh.ID)
	require.NoError(t, err)
	require.Equal(t, shift.StatusExpired, got.Status)
}

func TestSweepExpiresInvitesAndDeletesApplications(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store)

	now := time.Date(2024, 6, 10, 20, 0, 0, 0, time.UTC)
	start := now.Add(-12 * time.Hour)

	sh := seedShift(store, "shift-a", start, "worker-1")
	sh.Status = shift.StatusOpen
	store.PutShift(sh)
	store.PutInvite(shift.Invite{ID: "inv-1", ShiftID: sh.ID, WorkerID: "worker-2", Status: shift.InviteStatusPending})
	store.PutApplication(shift.Application{ID: "app-1", ShiftID: sh.ID, WorkerID: "worker-3", Status: shift.ApplicationStatusPending})

	// Unrelated live shift: invite and application must survive.
	live := seedShift(store, "shift-b", now.Add(time.Hour), "worker-1")
	live.Status = shift.StatusOpen
	store.PutShift(live)
	store.PutInvite(shift.Invite{ID: "inv-2", ShiftID: live.ID, WorkerID: "worker-2", Status: shift.InviteStatusPending})
	store.PutApplication(shift.Application{ID: "app-2", ShiftID: live.ID, WorkerID: "worker-3", Status: shift.ApplicationStatusPending})

	_, err := svc.Sweep(ctx, now)
	require.NoError(t, err)

	invites, err := memory.NewInviteRepository(store).ListPendingByShiftStatus(ctx, shift.StatusOpen)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	require.Equal(t, "inv-2", invites[0].ID)

	removed, err := memory.NewApplicationRepository(store).DeleteByShiftStatuses(ctx, []shift.Status{
		shift.StatusExpired, shift.StatusCompleted, shift.StatusCancelled,
	})
	require.NoError(t, err)
	require.Zero(t, removed, "expired shift's application was already deleted by the sweep")
}

func TestSweepIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store)

	now := time.Date(2024, 6, 10, 20, 0, 0, 0, time.UTC)
	start := now.Add(-10 * time.Hour)

	sh := seedShift(store, "shift-a", start, "worker-1")
	sh.MaximumClockoutDelayMinutes = intPtr(60)
	store.PutShift(sh)
	store.PutClockin(clockin.Clockin{
		ID: "rec-1", ShiftID: sh.ID, WorkerID: "worker-1", EmployerID: sh.EmployerID,
		StartedAt: start,
	})
	store.PutInvite(shift.Invite{ID: "inv-1", ShiftID: sh.ID, WorkerID: "worker-2", Status: shift.InviteStatusPending})

	first, err := svc.Sweep(ctx, now)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.Sweep(ctx, now)
	require.NoError(t, err)
	require.Empty(t, second)

	// Later sweeps change nothing either.
	third, err := svc.Sweep(ctx, now.Add(time.Hour))
	require.NoError(t, err)
	require.Empty(t, third)
}

package payroll

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
	"github.com/shiftwise/staffing-backend-go/internal/domain/employer"
	"github.com/shiftwise/staffing-backend-go/internal/domain/payroll"
	"github.com/shiftwise/staffing-backend-go/internal/domain/shift"
	"github.com/shiftwise/staffing-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestService(store *memory.Store, payShort bool) *Service {
	return NewService(
		store,
		memory.NewPeriodRepository(store),
		memory.NewPaymentRepository(store),
		memory.NewEmployeePaymentRepository(store),
		memory.NewClockinRepository(store),
		memory.NewShiftRepository(store),
		memory.NewEmployerRepository(store),
		memory.NewWorkerRepository(store),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		payShort,
	)
}

// 2024-06-14 is a Friday; 2024-06-04 a Tuesday; the anchor below a Wednesday.
var (
	testNow       = time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	testAnchor    = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) // Wednesday 00:00:00
	testCreatedAt = time.Date(2024, 6, 4, 10, 30, 0, 0, time.UTC)
)

func seedEmployer(store *memory.Store, deductions ...employer.Deduction) employer.Employer {
	anchor := testAnchor
	return store.PutEmployer(employer.Employer{
		ID:                        "employer-1",
		Name:                      "Harbor Staffing",
		PayrollPeriodStartingTime: &anchor,
		PayrollPeriodLength:       7,
		PayrollPeriodType:         payroll.LengthTypeDays,
		Deductions:                deductions,
		CreatedAt:                 testCreatedAt,
	})
}

func seedScheduledShift(store *memory.Store, id string, start time.Time, hours int, rate int64) shift.Shift {
	return store.PutShift(shift.Shift{
		ID:                id,
		EmployerID:        "employer-1",
		StartingAt:        start,
		EndingAt:          start.Add(time.Duration(hours) * time.Hour),
		MinimumHourlyRate: decimal.NewFromInt(rate),
		Status:            shift.StatusCompleted,
		Roster:            []string{"worker-1"},
	})
}

func seedClosedClockin(store *memory.Store, id, shiftID, workerID string, start time.Time, worked time.Duration) clockin.Clockin {
	ended := start.Add(worked)
	return store.PutClockin(clockin.Clockin{
		ID: id, ShiftID: shiftID, WorkerID: workerID, EmployerID: "employer-1",
		StartedAt: start, EndedAt: &ended,
	})
}

func TestGeneratePeriodsFirstRunAnchorsOnWeekday(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store, false)
	seedEmployer(store)

	created, err := svc.GeneratePeriods(ctx, "employer-1", testNow)
	require.NoError(t, err)
	require.Len(t, created, 2)

	// Wednesday at-or-before the employer's creation (Tue Jun 4) is May 29.
	require.Equal(t, "2024-05-29T00:00:00Z", created[0].StartingAt)
	require.Equal(t, "2024-06-04T23:59:59Z", created[0].EndingAt)

	// Periods are contiguous to the second.
	require.Equal(t, "2024-06-05T00:00:00Z", created[1].StartingAt)
	require.Equal(t, "2024-06-11T23:59:59Z", created[1].EndingAt)

	for _, p := range created {
		require.Equal(t, string(payroll.PeriodStatusOpen), p.Status)
	}
}

func TestGeneratePeriodsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store, false)
	seedEmployer(store)

	first, err := svc.GeneratePeriods(ctx, "employer-1", testNow)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.GeneratePeriods(ctx, "employer-1", testNow)
	require.NoError(t, err)
	require.Empty(t, second)

	periods, err := svc.ListPeriods(ctx, "employer-1")
	require.NoError(t, err)
	require.Len(t, periods, 2)
}

func TestGeneratePeriodsNeverCreatesUnfinishedWindows(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store, false)
	seedEmployer(store)

	// Exactly at a period boundary the window has not strictly elapsed.
	boundary := time.Date(2024, 6, 11, 23, 59, 59, 0, time.UTC)
	created, err := svc.GeneratePeriods(ctx, "employer-1", boundary)
	require.NoError(t, err)
	require.Len(t, created, 1)
	require.Equal(t, "2024-06-04T23:59:59Z", created[0].EndingAt)
}

func TestGeneratePeriodsConfigErrors(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store, false)

	store.PutEmployer(employer.Employer{ID: "unconfigured", CreatedAt: testCreatedAt})
	_, err := svc.GeneratePeriods(ctx, "unconfigured", testNow)
	require.ErrorIs(t, err, payroll.ErrConfigMissing)

	anchor := testAnchor
	store.PutEmployer(employer.Employer{
		ID:                        "employer-1",
		PayrollPeriodStartingTime: &anchor,
		PayrollPeriodLength:       1,
		PayrollPeriodType:         payroll.LengthType("MONTHS"),
		CreatedAt:                 testCreatedAt,
	})
	_, err = svc.GeneratePeriods(ctx, "employer-1", testNow)
	require.ErrorIs(t, err, payroll.ErrUnsupportedLengthType)
}

func TestAllocationOvertimeSplit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store, false)
	seedEmployer(store)

	// Scheduled 8h, clocked 9.5h.
	start := time.Date(2024, 5, 30, 9, 0, 0, 0, time.UTC)
	seedScheduledShift(store, "shift-ot", start, 8, 20)
	seedClosedClockin(store, "rec-ot", "shift-ot", "worker-1", start, 9*time.Hour+30*time.Minute)

	_, err := svc.GeneratePeriods(ctx, "employer-1", testNow)
	require.NoError(t, err)

	payment := paymentForClockin(t, ctx, store, "rec-ot")
	require.Equal(t, "8", payment.RegularHours.String())
	require.Equal(t, "1.5", payment.OverTime.String())
	require.Equal(t, "190", payment.TotalAmount.String()) // 20 * 9.5
	require.False(t, payment.SplitedPayment)
	require.Equal(t, payroll.PaymentStatusPending, payment.Status)
}

func TestAllocationShortShiftPaysZeroByDefault(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store, false)
	seedEmployer(store)

	// Scheduled 8h, clocked only 6h.
	start := time.Date(2024, 5, 30, 9, 0, 0, 0, time.UTC)
	seedScheduledShift(store, "shift-short", start, 8, 20)
	seedClosedClockin(store, "rec-short", "shift-short", "worker-1", start, 6*time.Hour)

	_, err := svc.GeneratePeriods(ctx, "employer-1", testNow)
	require.NoError(t, err)

	payment := paymentForClockin(t, ctx, store, "rec-short")
	require.True(t, payment.RegularHours.IsZero())
	require.True(t, payment.OverTime.IsZero())

	// The raw per-record total still reflects the clocked time. The split and
	// the total intentionally diverge here.
	require.Equal(t, "120", payment.TotalAmount.String()) // 20 * 6
}

func TestAllocationShortShiftPaysClockedHoursWhenEnabled(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store, true)
	seedEmployer(store)

	start := time.Date(2024, 5, 30, 9, 0, 0, 0, time.UTC)
	seedScheduledShift(store, "shift-short", start, 8, 20)
	seedClosedClockin(store, "rec-short", "shift-short", "worker-1", start, 6*time.Hour)

	_, err := svc.GeneratePeriods(ctx, "employer-1", testNow)
	require.NoError(t, err)

	payment := paymentForClockin(t, ctx, store, "rec-short")
	require.Equal(t, "6", payment.RegularHours.String())
	require.True(t, payment.OverTime.IsZero())
	require.Equal(t, "120", payment.TotalAmount.String())
}

func TestAllocationClipsRecordsAtThePeriodBoundary(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store, false)
	seedEmployer(store)

	// First period ends Jun 4 23:59:59. The record starts 2h before the
	// boundary and runs 12h, well past it.
	boundary := time.Date(2024, 6, 4, 23, 59, 59, 0, time.UTC)
	start := boundary.Add(-2 * time.Hour)
	seedScheduledShift(store, "shift-straddle", start, 8, 20)
	seedClosedClockin(store, "rec-straddle", "shift-straddle", "worker-1", start, 12*time.Hour)

	_, err := svc.GeneratePeriods(ctx, "employer-1", testNow)
	require.NoError(t, err)

	payment := paymentForClockin(t, ctx, store, "rec-straddle")
	require.True(t, payment.SplitedPayment)

	// Only the 2h inside the period count toward the total.
	require.Equal(t, "40", payment.TotalAmount.String()) // 20 * 2
	require.True(t, payment.RegularHours.IsZero(), "clipped 2h is below the 8h schedule")
}

func TestAllocationOpenRecordAllocatesZero(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store, false)
	seedEmployer(store)

	start := time.Date(2024, 5, 30, 9, 0, 0, 0, time.UTC)
	seedScheduledShift(store, "shift-open", start, 8, 20)
	store.PutClockin(clockin.Clockin{
		ID: "rec-open", ShiftID: "shift-open", WorkerID: "worker-1", EmployerID: "employer-1",
		StartedAt: start,
	})

	_, err := svc.GeneratePeriods(ctx, "employer-1", testNow)
	require.NoError(t, err)

	payment := paymentForClockin(t, ctx, store, "rec-open")
	require.True(t, payment.RegularHours.IsZero())
	require.True(t, payment.OverTime.IsZero())
	require.True(t, payment.TotalAmount.IsZero())
	require.True(t, payment.SplitedPayment)
}

func TestGeneratePeriodsRollsBackOnAllocationFailure(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestService(store, false)
	seedEmployer(store)

	// A record referencing a shift that does not exist fails allocation.
	start := time.Date(2024, 5, 30, 9, 0, 0, 0, time.UTC)
	seedClosedClockin(store, "rec-orphan", "missing-shift", "worker-1", start, 8*time.Hour)

	_, err := svc.GeneratePeriods(ctx, "employer-1", testNow)
	require.Error(t, err)

	periods, listErr := svc.ListPeriods(ctx, "employer-1")
	require.NoError(t, listErr)
	require.Empty(t, periods, "failed period must not be left behind")
}

func paymentForClockin(t *testing.T, ctx context.Context, store *memory.Store, clockinID string) payroll.PeriodPayment {
	t.Helper()

	periodRepo := memory.NewPeriodRepository(store)
	paymentRepo := memory.NewPaymentRepository(store)

	periods, err := periodRepo.ListByEmployer(ctx, "employer-1")
	require.NoError(t, err)
	for _, p := range periods {
		payments, err := paymentRepo.ListByPeriod(ctx, p.ID)
		require.NoError(t, err)
		for _, payment := range payments {
			if payment.ClockinID == clockinID {
				return payment
			}
		}
	}
	t.Fatalf("no payment allocated for clockin %s", clockinID)
	return payroll.PeriodPayment{}
}

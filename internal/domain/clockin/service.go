package clockin

import (
	"context"
	"time"
)

// AttendanceService is the request-time surface consumed by the clock-in and
// clock-out endpoints, plus the batch sweep consumed by the scheduler.
type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (ClockinResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (ClockinResponse, error)

	// Sweep auto-closes lapsed open records and expires lapsed shifts,
	// invites and applications. It returns the records it closed so an
	// external dispatcher can notify workers. Safe to re-run.
	Sweep(ctx context.Context, now time.Time) ([]ClockinResponse, error)
}

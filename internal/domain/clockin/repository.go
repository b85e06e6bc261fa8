package clockin

import (
	"context"
	"time"
)

// ClockinRepository defines data access for attendance records.
type ClockinRepository interface {
	// Create inserts a new attendance record.
	Create(ctx context.Context, record Clockin) (Clockin, error)

	// GetOpenByWorker returns the worker's open record, or nil when none
	// exists. When called inside a transaction the row is locked so that two
	// concurrent clock-ins for the same worker cannot both pass validation.
	GetOpenByWorker(ctx context.Context, workerID string) (*Clockin, error)

	// GetOpenByShiftAndWorker returns the open record for the (shift, worker)
	// pair, or nil when none exists.
	GetOpenByShiftAndWorker(ctx context.Context, shiftID, workerID string) (*Clockin, error)

	// Update persists clock-out data and the automatically-closed flag.
	Update(ctx context.Context, record Clockin) error

	// ListOpen returns every open attendance record.
	ListOpen(ctx context.Context) ([]Clockin, error)

	// ListByEmployerStartedBetween returns the employer's records whose
	// started_at falls within [from, to], inclusive on both ends.
	ListByEmployerStartedBetween(ctx context.Context, employerID string, from, to time.Time) ([]Clockin, error)
}

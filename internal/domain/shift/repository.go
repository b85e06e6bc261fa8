package shift

import (
	"context"
	"time"
)

// ShiftRepository defines the read/transition surface the engine needs on
// shifts. Shift CRUD itself belongs to the marketplace layer.
type ShiftRepository interface {
	// GetByID retrieves a shift snapshot including its accepted roster.
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetByIDs retrieves snapshots for the given ids, keyed by id. Missing
	// ids are simply absent from the map.
	GetByIDs(ctx context.Context, ids []string) (map[string]Shift, error)

	// ListExpirable returns shifts in OPEN or FILLED whose scheduled end is
	// at or before now. Clockout-delay handling is the sweeper's concern.
	ListExpirable(ctx context.Context, now time.Time) ([]Shift, error)

	// UpdateStatus transitions a shift's status.
	UpdateStatus(ctx context.Context, id string, status Status) error
}

// InviteRepository gives the sweeper access to pending invites.
type InviteRepository interface {
	// ListPendingByShiftStatus returns PENDING invites whose shift currently
	// has the given status.
	ListPendingByShiftStatus(ctx context.Context, status Status) ([]Invite, error)

	// UpdateStatus transitions an invite's status.
	UpdateStatus(ctx context.Context, id string, status InviteStatus) error
}

// ApplicationRepository gives the sweeper access to stale applications.
type ApplicationRepository interface {
	// DeleteByShiftStatuses removes applications whose shift is in any of the
	// given statuses and returns the number of rows removed.
	DeleteByShiftStatuses(ctx context.Context, statuses []Status) (int64, error)
}

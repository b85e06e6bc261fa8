package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enumerates shift lifecycle states. EXPIRED, COMPLETED and CANCELLED
// are terminal; only the sweeper moves shifts to EXPIRED.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusOpen      Status = "OPEN"
	StatusFilled    Status = "FILLED"
	StatusPaused    Status = "PAUSED"
	StatusExpired   Status = "EXPIRED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Terminal reports whether the status permits no further automatic transitions.
func (s Status) Terminal() bool {
	return s == StatusExpired || s == StatusCompleted || s == StatusCancelled
}

// Shift is a read-only snapshot of a scheduled work slot. The engine never
// creates shifts; it only reads them and, through the sweeper, expires them.
//
// MaximumClockinDeltaMinutes: nil = clock-in allowed any time up to EndingAt,
// 0 = exact start, N = up to N minutes before StartingAt.
// MaximumClockoutDelayMinutes: nil = no deadline, N = grace minutes after EndingAt.
type Shift struct {
	ID                          string
	EmployerID                  string
	VenueID                     string
	StartingAt                  time.Time
	EndingAt                    time.Time
	MaximumClockinDeltaMinutes  *int
	MaximumClockoutDelayMinutes *int
	MinimumHourlyRate           decimal.Decimal
	Status                      Status
	VenueLatitude               float64
	VenueLongitude              float64
	AllowedRadiusMeters         float64
	Roster                      []string
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

// IsRostered reports whether the worker is on the shift's accepted roster.
func (s Shift) IsRostered(workerID string) bool {
	for _, id := range s.Roster {
		if id == workerID {
			return true
		}
	}
	return false
}

// ScheduledHours returns the scheduled duration in hours, independent of what
// was actually clocked.
func (s Shift) ScheduledHours() decimal.Decimal {
	secs := int64(s.EndingAt.Sub(s.StartingAt) / time.Second)
	return decimal.New(secs, 0).Div(decimal.NewFromInt(3600))
}

// HasVenueCoordinates reports whether the venue carries a usable geo position.
// Venues at exactly (0, 0) are treated as "no coordinates configured".
func (s Shift) HasVenueCoordinates() bool {
	return s.VenueLatitude != 0 || s.VenueLongitude != 0
}

// InviteStatus enumerates shift invite states.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "PENDING"
	InviteStatusAccepted InviteStatus = "ACCEPTED"
	InviteStatusRejected InviteStatus = "REJECTED"
	InviteStatusExpired  InviteStatus = "EXPIRED"
)

// Invite is an employer's invitation of a worker to a shift.
type Invite struct {
	ID        string
	ShiftID   string
	WorkerID  string
	Status    InviteStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplicationStatus enumerates shift application states.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// Application is a worker's application to a shift. Applications to shifts in
// a terminal state are garbage-collected by the sweeper.
type Application struct {
	ID        string
	ShiftID   string
	WorkerID  string
	Status    ApplicationStatus
	CreatedAt time.Time
}

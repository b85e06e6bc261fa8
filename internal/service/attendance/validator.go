package attendance

import (
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
	"github.com/shiftwise/staffing-backend-go/internal/domain/shift"
	"github.com/shiftwise/staffing-backend-go/internal/pkg/geo"
)

// ClockInCheck carries the request-side facts the window validator needs.
// HasOpenRecord is true when the worker has any open attendance record,
// regardless of which shift it belongs to.
type ClockInCheck struct {
	WorkerID      string
	HasOpenRecord bool
	Latitude      float64
	Longitude     float64
}

// CanClockIn validates a clock-in attempt against the shift. Pure: no side
// effects, all state arrives through the arguments. Exactly one error is
// returned per attempt.
//
// The clock-in window is one-sided. A nil delta permits clocking in any time
// up to the scheduled end; a delta of N permits from N minutes before the
// scheduled start. There is no upper bound at the scheduled start itself.
func CanClockIn(s shift.Shift, at time.Time, check ClockInCheck) error {
	if !s.IsRostered(check.WorkerID) {
		return clockin.ErrNotRostered
	}

	if check.HasOpenRecord {
		return clockin.ErrAlreadyClockedInElsewhere
	}

	if s.HasVenueCoordinates() {
		if !geo.WithinRadius(check.Latitude, check.Longitude, s.VenueLatitude, s.VenueLongitude, s.AllowedRadiusMeters) {
			return clockin.ErrFarFromVenue
		}
	}

	if s.MaximumClockinDeltaMinutes != nil {
		earliest := s.StartingAt.Add(-time.Duration(*s.MaximumClockinDeltaMinutes) * time.Minute)
		if at.Before(earliest) {
			return clockin.ErrBeforeWindow
		}
	}
	if at.After(s.EndingAt) {
		return clockin.ErrAfterWindow
	}

	return nil
}

// ClockOutCheck carries the request-side facts for a clock-out attempt.
type ClockOutCheck struct {
	WorkerID  string
	Latitude  float64
	Longitude float64
}

// CanClockOut validates a clock-out attempt. A nil clockout delay permits
// clocking out at any time; a delay of N permits up to N minutes past the
// scheduled end.
func CanClockOut(s shift.Shift, at time.Time, open *clockin.Clockin, check ClockOutCheck) error {
	if open == nil || !open.Open() {
		return clockin.ErrNoOpenRecord
	}

	if s.HasVenueCoordinates() {
		if !geo.WithinRadius(check.Latitude, check.Longitude, s.VenueLatitude, s.VenueLongitude, s.AllowedRadiusMeters) {
			return clockin.ErrFarFromVenue
		}
	}

	if s.MaximumClockoutDelayMinutes != nil {
		latest := s.EndingAt.Add(time.Duration(*s.MaximumClockoutDelayMinutes) * time.Minute)
		if at.After(latest) {
			return clockin.ErrAfterWindow
		}
	}

	return nil
}

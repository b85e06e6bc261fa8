package attendance

import (
	"testing"
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
	"github.com/shiftwise/staffing-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func testShift(delta, delay *int) shift.Shift {
	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	return shift.Shift{
		ID:                          "shift-1",
		EmployerID:                  "employer-1",
		StartingAt:                  start,
		EndingAt:                    start.Add(8 * time.Hour),
		MaximumClockinDeltaMinutes:  delta,
		MaximumClockoutDelayMinutes: delay,
		MinimumHourlyRate:           decimal.NewFromInt(20),
		Status:                      shift.StatusFilled,
		Roster:                      []string{"worker-1"},
	}
}

func rosteredCheck() ClockInCheck {
	return ClockInCheck{WorkerID: "worker-1"}
}

func TestCanClockInDeltaWindow(t *testing.T) {
	s := testShift(intPtr(15), nil)

	atEarliest := s.StartingAt.Add(-15 * time.Minute)
	assert.NoError(t, CanClockIn(s, atEarliest, rosteredCheck()))

	oneMinuteTooEarly := atEarliest.Add(-time.Minute)
	assert.ErrorIs(t, CanClockIn(s, oneMinuteTooEarly, rosteredCheck()), clockin.ErrBeforeWindow)
}

func TestCanClockInNilDeltaAllowsAnyTimeUpToEnd(t *testing.T) {
	s := testShift(nil, nil)

	weekEarly := s.StartingAt.Add(-7 * 24 * time.Hour)
	assert.NoError(t, CanClockIn(s, weekEarly, rosteredCheck()))

	assert.NoError(t, CanClockIn(s, s.EndingAt, rosteredCheck()))
	assert.ErrorIs(t, CanClockIn(s, s.EndingAt.Add(time.Second), rosteredCheck()), clockin.ErrAfterWindow)
}

func TestCanClockInZeroDelta(t *testing.T) {
	s := testShift(intPtr(0), nil)

	assert.ErrorIs(t, CanClockIn(s, s.StartingAt.Add(-time.Second), rosteredCheck()), clockin.ErrBeforeWindow)
	assert.NoError(t, CanClockIn(s, s.StartingAt, rosteredCheck()))
}

func TestCanClockInRequiresRoster(t *testing.T) {
	s := testShift(nil, nil)

	check := ClockInCheck{WorkerID: "stranger"}
	assert.ErrorIs(t, CanClockIn(s, s.StartingAt, check), clockin.ErrNotRostered)
}

func TestCanClockInRejectsSecondOpenRecord(t *testing.T) {
	s := testShift(nil, nil)

	check := rosteredCheck()
	check.HasOpenRecord = true
	assert.ErrorIs(t, CanClockIn(s, s.StartingAt, check), clockin.ErrAlreadyClockedInElsewhere)
}

func TestCanClockInVenueRadius(t *testing.T) {
	s := testShift(nil, nil)
	s.VenueLatitude = 40.7128
	s.VenueLongitude = -74.0060
	s.AllowedRadiusMeters = 100

	atVenue := rosteredCheck()
	atVenue.Latitude = 40.7128
	atVenue.Longitude = -74.0060
	assert.NoError(t, CanClockIn(s, s.StartingAt, atVenue))

	acrossTown := rosteredCheck()
	acrossTown.Latitude = 40.7580
	acrossTown.Longitude = -73.9855
	assert.ErrorIs(t, CanClockIn(s, s.StartingAt, acrossTown), clockin.ErrFarFromVenue)
}

func TestCanClockInSkipsRadiusWithoutVenueCoordinates(t *testing.T) {
	s := testShift(nil, nil)
	s.AllowedRadiusMeters = 100

	somewhere := rosteredCheck()
	somewhere.Latitude = 40.7580
	somewhere.Longitude = -73.9855
	assert.NoError(t, CanClockIn(s, s.StartingAt, somewhere))
}

func TestCanClockOutRequiresOpenRecord(t *testing.T) {
	s := testShift(nil, nil)

	err := CanClockOut(s, s.EndingAt, nil, ClockOutCheck{WorkerID: "worker-1"})
	assert.ErrorIs(t, err, clockin.ErrNoOpenRecord)
}

func TestCanClockOutDelayWindow(t *testing.T) {
	s := testShift(nil, intPtr(30))
	open := &clockin.Clockin{ID: "rec-1", ShiftID: s.ID, WorkerID: "worker-1", StartedAt: s.StartingAt}

	check := ClockOutCheck{WorkerID: "worker-1"}
	assert.NoError(t, CanClockOut(s, s.EndingAt.Add(30*time.Minute), open, check))
	assert.ErrorIs(t, CanClockOut(s, s.EndingAt.Add(31*time.Minute), open, check), clockin.ErrAfterWindow)
}

func TestCanClockOutNilDelayAllowsAnyTime(t *testing.T) {
	s := testShift(nil, nil)
	open := &clockin.Clockin{ID: "rec-1", ShiftID: s.ID, WorkerID: "worker-1", StartedAt: s.StartingAt}

	check := ClockOutCheck{WorkerID: "worker-1"}
	assert.NoError(t, CanClockOut(s, s.EndingAt.Add(72*time.Hour), open, check))
}

package clockin

import "errors"

// Validation errors surfaced by the attendance window validator. Exactly one
// is returned per request; no side effects happen until every check passes.
var (
	ErrNotRostered               = errors.New("worker is not on the shift's accepted roster")
	ErrAlreadyClockedInElsewhere = errors.New("worker already has an open attendance record")
	ErrBeforeWindow              = errors.New("clock-in requested before the allowed window")
	ErrAfterWindow               = errors.New("requested time is after the allowed window")
	ErrNoOpenRecord              = errors.New("no open attendance record for this shift and worker")
	ErrFarFromVenue              = errors.New("requested position is too far from the venue")

	ErrClockinNotFound = errors.New("attendance record not found")
)

// Reason maps a validation error to its wire reason code. Unknown errors map
// to the empty string.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrNotRostered):
		return "NOT_ROSTERED"
	case errors.Is(err, ErrAlreadyClockedInElsewhere):
		return "ALREADY_CLOCKED_IN_ELSEWHERE"
	case errors.Is(err, ErrBeforeWindow):
		return "BEFORE_WINDOW"
	case errors.Is(err, ErrAfterWindow):
		return "AFTER_WINDOW"
	case errors.Is(err, ErrNoOpenRecord):
		return "NO_OPEN_RECORD"
	case errors.Is(err, ErrFarFromVenue):
		return "FAR_FROM_VENUE"
	}
	return ""
}

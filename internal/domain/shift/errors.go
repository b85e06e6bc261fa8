package shift

import "errors"

var (
	ErrShiftNotFound       = errors.New("shift not found")
	ErrInviteNotFound      = errors.New("shift invite not found")
	ErrApplicationNotFound = errors.New("shift application not found")
	ErrInvalidWindow       = errors.New("shift window is invalid: starting_at must precede ending_at")
)

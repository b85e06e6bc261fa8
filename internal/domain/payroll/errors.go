package payroll

import "errors"

var (
	// Generation errors
	ErrConfigMissing         = errors.New("employer has no payroll period starting time configured")
	ErrUnsupportedLengthType = errors.New("payroll period length type is not supported")

	// Finalization errors
	ErrPendingPaymentsExist  = errors.New("period has payments still pending approval")
	ErrPaymentAlreadyMade    = errors.New("period has an employee payment already paid out")
	ErrUnsupportedTransition = errors.New("requested period status transition is not supported")

	// General errors
	ErrPeriodNotFound  = errors.New("payroll period not found")
	ErrPaymentNotFound = errors.New("payroll period payment not found")
)

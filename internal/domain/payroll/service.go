package payroll

import (
	"context"
	"time"
)

// PayrollService is the surface consumed by the period endpoints and the
// generation schedule.
type PayrollService interface {
	// GeneratePeriods creates every period the employer is owed up to now
	// and allocates attendance records into each. Idempotent: a second call
	// at the same now creates nothing.
	GeneratePeriods(ctx context.Context, employerID string, now time.Time) ([]PeriodResponse, error)

	ListPeriods(ctx context.Context, employerID string) ([]PeriodResponse, error)
	ListPeriodPayments(ctx context.Context, periodID string) ([]PeriodPaymentResponse, error)
	ListEmployeePayments(ctx context.Context, periodID string) ([]EmployeePaymentResponse, error)

	// ApprovePayment moves a PENDING period payment to APPROVED.
	ApprovePayment(ctx context.Context, paymentID string) error

	// Transition requests a period status change. OPEN->FINALIZED aggregates
	// employee payments; FINALIZED->OPEN reverses the aggregation. Requesting
	// the current status is a no-op success.
	Transition(ctx context.Context, periodID string, target PeriodStatus) (PeriodResponse, error)
}

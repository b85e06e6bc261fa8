package payroll

import "context"

// PeriodRepository defines data access for payroll periods.
type PeriodRepository interface {
	Create(ctx context.Context, period Period) (Period, error)
	GetByID(ctx context.Context, id string) (Period, error)

	// GetLastByEmployer returns the employer's most recent period by
	// ending_at, or nil when the employer has never had one generated.
	GetLastByEmployer(ctx context.Context, employerID string) (*Period, error)

	ListByEmployer(ctx context.Context, employerID string) ([]Period, error)
	UpdateStatus(ctx context.Context, id string, status PeriodStatus) error
}

// PaymentRepository defines data access for per-record period payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment PeriodPayment) (PeriodPayment, error)
	GetByID(ctx context.Context, id string) (PeriodPayment, error)
	ListByPeriod(ctx context.Context, periodID string) ([]PeriodPayment, error)
	CountByPeriodAndStatus(ctx context.Context, periodID string, status PaymentStatus) (int64, error)
	UpdateStatus(ctx context.Context, id string, status PaymentStatus) error
}

// EmployeePaymentRepository defines data access for aggregated payments.
type EmployeePaymentRepository interface {
	Create(ctx context.Context, payment EmployeePayment) (EmployeePayment, error)
	ListByPeriod(ctx context.Context, periodID string) ([]EmployeePayment, error)

	// DeleteByPeriod removes the period's employee payments and returns the
	// number removed. Callers must verify none are paid first.
	DeleteByPeriod(ctx context.Context, periodID string) (int64, error)
}

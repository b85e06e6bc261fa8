package worker

import (
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/pkg/tax"
	"github.com/shopspring/decimal"
)

// Worker is a read-only snapshot of a talent's payroll profile: the W-4 style
// inputs the finalizer feeds into the withholding calculator.
//
// OtherIncome and WageDeductions are annual figures; both adjust the
// annualized wage before the bracket lookup.
type Worker struct {
	ID             string
	FullName       string
	FilingStatus   tax.FilingStatus
	StepTwoChecked bool
	OtherIncome    decimal.Decimal
	WageDeductions decimal.Decimal
	CreatedAt      time.Time
}

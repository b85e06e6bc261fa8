package employer

import (
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// DeductionType enumerates how a deduction value is applied to earnings.
type DeductionType string

const (
	DeductionTypePercentage DeductionType = "PERCENTAGE"
	DeductionTypeAmount     DeductionType = "AMOUNT"
)

// Deduction is one configured payroll deduction. PERCENTAGE values are
// percent-of-earnings (e.g. 7.65), AMOUNT values are flat per period.
type Deduction struct {
	Name  string          `json:"name"`
	Type  DeductionType   `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// Employer is a read-only snapshot of the marketplace's employer record: the
// payroll configuration the generator consumes plus the deduction list the
// finalizer applies.
//
// PayrollPeriodStartingTime is the anchor: its weekday and time-of-day define
// every period boundary. nil means payroll has not been configured yet.
type Employer struct {
	ID                        string
	Name                      string
	PayrollPeriodStartingTime *time.Time
	PayrollPeriodLength       int
	PayrollPeriodType         payroll.LengthType
	Deductions                []Deduction
	CreatedAt                 time.Time
}

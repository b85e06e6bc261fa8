package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// LengthType enumerates supported period length units. Only day-based periods
// are supported; anything else fails generation with ErrUnsupportedLengthType.
type LengthType string

const LengthTypeDays LengthType = "DAYS"

// PeriodStatus enumerates payroll period states.
type PeriodStatus string

const (
	PeriodStatusOpen      PeriodStatus = "OPEN"
	PeriodStatusFinalized PeriodStatus = "FINALIZED"
	PeriodStatusPaid      PeriodStatus = "PAID"
)

// Valid reports whether the value is a known period status.
func (s PeriodStatus) Valid() bool {
	return s == PeriodStatusOpen || s == PeriodStatusFinalized || s == PeriodStatusPaid
}

// Period is one recurring accounting window for an employer. Periods are
// contiguous and non-overlapping per employer; a period is never created
// before its window has fully elapsed.
type Period struct {
	ID         string
	EmployerID string
	StartingAt time.Time
	EndingAt   time.Time
	Length     int
	LengthType LengthType
	Status     PeriodStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PaymentStatus enumerates per-record payment approval states.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusPaid     PaymentStatus = "PAID"
)

// PeriodPayment is the allocation of one attendance record into one period.
// RegularHours/OverTime carry the scheduled-vs-clocked split; TotalAmount is
// rate times raw clocked hours. The two deliberately diverge when clocked
// hours fall short of the schedule.
//
// SplitedPayment is true whenever the record's interval was clipped at either
// period boundary (field name kept for wire compatibility).
type PeriodPayment struct {
	ID             string
	PeriodID       string
	ClockinID      string
	ShiftID        string
	WorkerID       string
	Status         PaymentStatus
	RegularHours   decimal.Decimal
	OverTime       decimal.Decimal
	HourlyRate     decimal.Decimal
	TotalAmount    decimal.Decimal
	SplitedPayment bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AppliedDeduction is one itemized deduction line on an employee payment.
type AppliedDeduction struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// EmployeePayment aggregates a worker's period payments into a single net
// payment: Amount = Earnings - DeductionAmount - Taxes. Created on
// finalization, deleted on reopening unless already paid.
type EmployeePayment struct {
	ID              string
	PeriodID        string
	WorkerID        string
	EmployerID      string
	Earnings        decimal.Decimal
	DeductionList   []AppliedDeduction
	DeductionAmount decimal.Decimal
	Taxes           decimal.Decimal
	Amount          decimal.Decimal
	Paid            bool
	CreatedAt       time.Time
}

package payroll

import (
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type TransitionPeriodRequest struct {
	Status string `json:"status"`
}

func (r *TransitionPeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !PeriodStatus(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of OPEN, FINALIZED, PAID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID         string `json:"id"`
	EmployerID string `json:"employer_id"`
	StartingAt string `json:"starting_at"`
	EndingAt   string `json:"ending_at"`
	Length     int    `json:"length"`
	LengthType string `json:"length_type"`
	Status     string `json:"status"`
}

func ToPeriodResponse(p Period) PeriodResponse {
	return PeriodResponse{
		ID:         p.ID,
		EmployerID: p.EmployerID,
		StartingAt: p.StartingAt.UTC().Format(time.RFC3339),
		EndingAt:   p.EndingAt.UTC().Format(time.RFC3339),
		Length:     p.Length,
		LengthType: string(p.LengthType),
		Status:     string(p.Status),
	}
}

type PeriodPaymentResponse struct {
	ID             string          `json:"id"`
	PeriodID       string          `json:"period_id"`
	ClockinID      string          `json:"clockin_id"`
	WorkerID       string          `json:"worker_id"`
	Status         string          `json:"status"`
	RegularHours   decimal.Decimal `json:"regular_hours"`
	OverTime       decimal.Decimal `json:"over_time"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	SplitedPayment bool            `json:"splited_payment"`
}

func ToPeriodPaymentResponse(p PeriodPayment) PeriodPaymentResponse {
	return PeriodPaymentResponse{
		ID:             p.ID,
		PeriodID:       p.PeriodID,
		ClockinID:      p.ClockinID,
		WorkerID:       p.WorkerID,
		Status:         string(p.Status),
		RegularHours:   p.RegularHours,
		OverTime:       p.OverTime,
		HourlyRate:     p.HourlyRate,
		TotalAmount:    p.TotalAmount,
		SplitedPayment: p.SplitedPayment,
	}
}

type EmployeePaymentResponse struct {
	ID              string             `json:"id"`
	PeriodID        string             `json:"period_id"`
	WorkerID        string             `json:"worker_id"`
	Earnings        decimal.Decimal    `json:"earnings"`
	DeductionList   []AppliedDeduction `json:"deduction_list"`
	DeductionAmount decimal.Decimal    `json:"deduction_amount"`
	Taxes           decimal.Decimal    `json:"taxes"`
	Amount          decimal.Decimal    `json:"amount"`
	Paid            bool               `json:"paid"`
}

func ToEmployeePaymentResponse(p EmployeePayment) EmployeePaymentResponse {
	return EmployeePaymentResponse{
		ID:              p.ID,
		PeriodID:        p.PeriodID,
		WorkerID:        p.WorkerID,
		Earnings:        p.Earnings,
		DeductionList:   p.DeductionList,
		DeductionAmount: p.DeductionAmount,
		Taxes:           p.Taxes,
		Amount:          p.Amount,
		Paid:            p.Paid,
	}
}

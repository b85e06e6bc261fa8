package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shiftwise/staffing-backend-go/internal/domain/employer"
	"github.com/shiftwise/staffing-backend-go/internal/domain/payroll"
	"github.com/shiftwise/staffing-backend-go/internal/domain/worker"
	"github.com/shiftwise/staffing-backend-go/internal/pkg/tax"
	"github.com/shopspring/decimal"
)

var (
	daysPerYear = decimal.NewFromInt(365)
	oneHundred  = decimal.NewFromInt(100)
)

// Transition implements payroll.PayrollService. Supported transitions are
// OPEN->FINALIZED and FINALIZED->OPEN; requesting the period's current status
// is a no-op. PAID belongs to the external payment executor, so requesting it
// here, or moving away from PAID, fails with ErrUnsupportedTransition.
func (s *Service) Transition(ctx context.Context, periodID string, target payroll.PeriodStatus) (payroll.PeriodResponse, error) {
	period, err := s.periods.GetByID(ctx, periodID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	if period.Status == target {
		return payroll.ToPeriodResponse(period), nil
	}

	switch {
	case period.Status == payroll.PeriodStatusOpen && target == payroll.PeriodStatusFinalized:
		err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
			return s.finalize(ctx, period)
		})
	case period.Status == payroll.PeriodStatusFinalized && target == payroll.PeriodStatusOpen:
		err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
			return s.reopen(ctx, period)
		})
	default:
		return payroll.PeriodResponse{}, payroll.ErrUnsupportedTransition
	}
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	period.Status = target
	return payroll.ToPeriodResponse(period), nil
}

// finalize aggregates a period's approved payments into one EmployeePayment
// per worker and marks the period FINALIZED.
func (s *Service) finalize(ctx context.Context, period payroll.Period) error {
	pending, err := s.payments.CountByPeriodAndStatus(ctx, period.ID, payroll.PaymentStatusPending)
	if err != nil {
		return err
	}
	if pending > 0 {
		return payroll.ErrPendingPaymentsExist
	}

	payments, err := s.payments.ListByPeriod(ctx, period.ID)
	if err != nil {
		return err
	}

	earningsByWorker := make(map[string]decimal.Decimal)
	for _, p := range payments {
		hours := p.RegularHours.Add(p.OverTime)
		earningsByWorker[p.WorkerID] = earningsByWorker[p.WorkerID].Add(hours.Mul(p.HourlyRate))
	}

	emp, err := s.employers.GetByID(ctx, period.EmployerID)
	if err != nil {
		return err
	}

	workerIDs := make([]string, 0, len(earningsByWorker))
	for id := range earningsByWorker {
		workerIDs = append(workerIDs, id)
	}
	sort.Strings(workerIDs)

	profiles, err := s.workers.GetByIDs(ctx, workerIDs)
	if err != nil {
		return err
	}

	for _, workerID := range workerIDs {
		profile, ok := profiles[workerID]
		if !ok {
			return fmt.Errorf("no worker profile for %s: cannot compute withholding", workerID)
		}

		earnings := earningsByWorker[workerID].Round(2)
		deductions, deductionAmount := applyDeductions(emp.Deductions, earnings)
		taxes := s.withholding(earnings, period.Length, profile)

		payment := payroll.EmployeePayment{
			PeriodID:        period.ID,
			WorkerID:        workerID,
			EmployerID:      period.EmployerID,
			Earnings:        earnings,
			DeductionList:   deductions,
			DeductionAmount: deductionAmount,
			Taxes:           taxes,
			Amount:          earnings.Sub(deductionAmount).Sub(taxes),
			Paid:            false,
		}
		if _, err := s.employeePayments.Create(ctx, payment); err != nil {
			return err
		}
	}

	if err := s.periods.UpdateStatus(ctx, period.ID, payroll.PeriodStatusFinalized); err != nil {
		return err
	}

	s.logger.Info("finalized payroll period",
		slog.String("period_id", period.ID),
		slog.Int("employee_payments", len(workerIDs)),
	)
	return nil
}

// reopen deletes the period's employee payments and moves it back to OPEN.
// Refused as soon as any employee payment has been paid out.
func (s *Service) reopen(ctx context.Context, period payroll.Period) error {
	payments, err := s.employeePayments.ListByPeriod(ctx, period.ID)
	if err != nil {
		return err
	}
	for _, p := range payments {
		if p.Paid {
			return payroll.ErrPaymentAlreadyMade
		}
	}

	if _, err := s.employeePayments.DeleteByPeriod(ctx, period.ID); err != nil {
		return err
	}
	return s.periods.UpdateStatus(ctx, period.ID, payroll.PeriodStatusOpen)
}

// applyDeductions itemizes the employer's configured deductions against the
// period earnings. PERCENTAGE values are percent of earnings, AMOUNT values
// are flat per period.
func applyDeductions(configured []employer.Deduction, earnings decimal.Decimal) ([]payroll.AppliedDeduction, decimal.Decimal) {
	var applied []payroll.AppliedDeduction
	total := decimal.Zero
	for _, d := range configured {
		var amount decimal.Decimal
		switch d.Type {
		case employer.DeductionTypePercentage:
			amount = earnings.Mul(d.Value).Div(oneHundred).Round(2)
		case employer.DeductionTypeAmount:
			amount = d.Value.Round(2)
		default:
			continue
		}
		applied = append(applied, payroll.AppliedDeduction{Name: d.Name, Amount: amount})
		total = total.Add(amount)
	}
	return applied, total
}

// withholding annualizes the period earnings, adjusts them with the worker's
// declared income and deductions, runs the bracket lookup, and de-annualizes
// back to the period.
func (s *Service) withholding(earnings decimal.Decimal, periodLength int, profile worker.Worker) decimal.Decimal {
	periodsPerYear := daysPerYear.Div(decimal.NewFromInt(int64(periodLength)))
	annual := earnings.Mul(periodsPerYear)
	adjusted := annual.Add(profile.OtherIncome).Sub(profile.WageDeductions)

	annualTax := tax.Withhold(adjusted, profile.FilingStatus, profile.StepTwoChecked)
	return annualTax.Div(periodsPerYear).Round(2)
}

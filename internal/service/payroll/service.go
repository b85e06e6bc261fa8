// Package payroll implements payroll period generation, attendance
// allocation, and period finalization.
package payroll

import (
	"context"
	"log/slog"

	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
	"github.com/shiftwise/staffing-backend-go/internal/domain/employer"
	"github.com/shiftwise/staffing-backend-go/internal/domain/payroll"
	"github.com/shiftwise/staffing-backend-go/internal/domain/shift"
	"github.com/shiftwise/staffing-backend-go/internal/domain/worker"
	"github.com/shiftwise/staffing-backend-go/internal/pkg/database"
)

type Service struct {
	tx               database.Transactor
	periods          payroll.PeriodRepository
	payments         payroll.PaymentRepository
	employeePayments payroll.EmployeePaymentRepository
	clockins         clockin.ClockinRepository
	shifts           shift.ShiftRepository
	employers        employer.EmployerRepository
	workers          worker.WorkerRepository
	logger           *slog.Logger

	// payShortClockedHours pays clocked time even when it falls short of the
	// scheduled hours. Off by default: short shifts allocate zero regular
	// hours, matching the marketplace's historical payout behavior.
	payShortClockedHours bool
}

func NewService(
	tx database.Transactor,
	periods payroll.PeriodRepository,
	payments payroll.PaymentRepository,
	employeePayments payroll.EmployeePaymentRepository,
	clockins clockin.ClockinRepository,
	shifts shift.ShiftRepository,
	employers employer.EmployerRepository,
	workers worker.WorkerRepository,
	logger *slog.Logger,
	payShortClockedHours bool,
) *Service {
	return &Service{
		tx:                   tx,
		periods:              periods,
		payments:             payments,
		employeePayments:     employeePayments,
		clockins:             clockins,
		shifts:               shifts,
		employers:            employers,
		workers:              workers,
		logger:               logger,
		payShortClockedHours: payShortClockedHours,
	}
}

// ListPeriods implements payroll.PayrollService.
func (s *Service) ListPeriods(ctx context.Context, employerID string) ([]payroll.PeriodResponse, error) {
	periods, err := s.periods.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, payroll.ToPeriodResponse(p))
	}
	return responses, nil
}

// ListPeriodPayments implements payroll.PayrollService.
func (s *Service) ListPeriodPayments(ctx context.Context, periodID string) ([]payroll.PeriodPaymentResponse, error) {
	if _, err := s.periods.GetByID(ctx, periodID); err != nil {
		return nil, err
	}

	payments, err := s.payments.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PeriodPaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, payroll.ToPeriodPaymentResponse(p))
	}
	return responses, nil
}

// ListEmployeePayments implements payroll.PayrollService.
func (s *Service) ListEmployeePayments(ctx context.Context, periodID string) ([]payroll.EmployeePaymentResponse, error) {
	if _, err := s.periods.GetByID(ctx, periodID); err != nil {
		return nil, err
	}

	payments, err := s.employeePayments.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.EmployeePaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, payroll.ToEmployeePaymentResponse(p))
	}
	return responses, nil
}

// ApprovePayment implements payroll.PayrollService. Only PENDING payments can
// be approved; PAID is managed by the payment executor.
func (s *Service) ApprovePayment(ctx context.Context, paymentID string) error {
	payment, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return err
	}

	switch payment.Status {
	case payroll.PaymentStatusApproved:
		return nil
	case payroll.PaymentStatusPaid:
		return payroll.ErrUnsupportedTransition
	}

	return s.payments.UpdateStatus(ctx, paymentID, payroll.PaymentStatusApproved)
}

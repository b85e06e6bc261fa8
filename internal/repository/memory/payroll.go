package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/payroll"
)

type periodRepository struct {
	store *Store
}

func NewPeriodRepository(store *Store) payroll.PeriodRepository {
	return &periodRepository{store: store}
}

func (r *periodRepository) Create(_ context.Context, period payroll.Period) (payroll.Period, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	period.ID = newID()
	period.CreatedAt = time.Now()
	period.UpdatedAt = period.CreatedAt
	r.store.periods[period.ID] = period
	return period, nil
}

func (r *periodRepository) GetByID(_ context.Context, id string) (payroll.Period, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.periods[id]
	if !ok {
		return payroll.Period{}, payroll.ErrPeriodNotFound
	}
	return p, nil
}

func (r *periodRepository) GetLastByEmployer(_ context.Context, employerID string) (*payroll.Period, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var last *payroll.Period
	for _, p := range r.store.periods {
		if p.EmployerID != employerID {
			continue
		}
		if last == nil || p.EndingAt.After(last.EndingAt) {
			p := p
			last = &p
		}
	}
	return last, nil
}

func (r *periodRepository) ListByEmployer(_ context.Context, employerID string) ([]payroll.Period, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var periods []payroll.Period
	for _, p := range r.store.periods {
		if p.EmployerID == employerID {
			periods = append(periods, p)
		}
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].EndingAt.After(periods[j].EndingAt) })
	return periods, nil
}

func (r *periodRepository) UpdateStatus(_ context.Context, id string, status payroll.PeriodStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.periods[id]
	if !ok {
		return payroll.ErrPeriodNotFound
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	r.store.periods[id] = p
	return nil
}

type paymentRepository struct {
	store *Store
}

func NewPaymentRepository(store *Store) payroll.PaymentRepository {
	return &paymentRepository{store: store}
}

func (r *paymentRepository) Create(_ context.Context, payment payroll.PeriodPayment) (payroll.PeriodPayment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	payment.ID = newID()
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt
	r.store.payments[payment.ID] = payment
	return payment, nil
}

func (r *paymentRepository) GetByID(_ context.Context, id string) (payroll.PeriodPayment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.payments[id]
	if !ok {
		return payroll.PeriodPayment{}, payroll.ErrPaymentNotFound
	}
	return p, nil
}

func (r *paymentRepository) ListByPeriod(_ context.Context, periodID string) ([]payroll.PeriodPayment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var payments []payroll.PeriodPayment
	for _, p := range r.store.payments {
		if p.PeriodID == periodID {
			payments = append(payments, p)
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].ID < payments[j].ID })
	return payments, nil
}

func (r *paymentRepository) CountByPeriodAndStatus(_ context.Context, periodID string, status payroll.PaymentStatus) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, p := range r.store.payments {
		if p.PeriodID == periodID && p.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *paymentRepository) UpdateStatus(_ context.Context, id string, status payroll.PaymentStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.payments[id]
	if !ok {
		return payroll.ErrPaymentNotFound
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	r.store.payments[id] = p
	return nil
}

type employeePaymentRepository struct {
	store *Store
}

func NewEmployeePaymentRepository(store *Store) payroll.EmployeePaymentRepository {
	return &employeePaymentRepository{store: store}
}

func (r *employeePaymentRepository) Create(_ context.Context, payment payroll.EmployeePayment) (payroll.EmployeePayment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	payment.ID = newID()
	payment.CreatedAt = time.Now()
	r.store.employeePayments[payment.ID] = payment
	return payment, nil
}

func (r *employeePaymentRepository) ListByPeriod(_ context.Context, periodID string) ([]payroll.EmployeePayment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var payments []payroll.EmployeePayment
	for _, p := range r.store.employeePayments {
		if p.PeriodID == periodID {
			payments = append(payments, p)
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].WorkerID < payments[j].WorkerID })
	return payments, nil
}

func (r *employeePaymentRepository) DeleteByPeriod(_ context.Context, periodID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var removed int64
	for id, p := range r.store.employeePayments {
		if p.PeriodID == periodID {
			delete(r.store.employeePayments, id)
			removed++
		}
	}
	return removed, nil
}

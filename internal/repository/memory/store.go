// Package memory provides in-memory repository implementations for testing
// and local development. They mirror the behavior of the PostgreSQL layer,
// including transaction rollback.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
	"github.com/shiftwise/staffing-backend-go/internal/domain/employer"
	"github.com/shiftwise/staffing-backend-go/internal/domain/payroll"
	"github.com/shiftwise/staffing-backend-go/internal/domain/shift"
	"github.com/shiftwise/staffing-backend-go/internal/domain/worker"
)

// Store holds every entity map behind one lock so multi-entity operations
// stay consistent. All repositories returned by the accessor methods share
// the same store.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	shifts           map[string]shift.Shift
	invites          map[string]shift.Invite
	applications     map[string]shift.Application
	clockins         map[string]clockin.Clockin
	employers        map[string]employer.Employer
	workers          map[string]worker.Worker
	periods          map[string]payroll.Period
	payments         map[string]payroll.PeriodPayment
	employeePayments map[string]payroll.EmployeePayment
}

func NewStore() *Store {
	return &Store{
		shifts:           make(map[string]shift.Shift),
		invites:          make(map[string]shift.Invite),
		applications:     make(map[string]shift.Application),
		clockins:         make(map[string]clockin.Clockin),
		employers:        make(map[string]employer.Employer),
		workers:          make(map[string]worker.Worker),
		periods:          make(map[string]payroll.Period),
		payments:         make(map[string]payroll.PeriodPayment),
		employeePayments: make(map[string]payroll.EmployeePayment),
	}
}

// WithinTx implements database.Transactor. Transactions serialize on txMu;
// on error every map is restored from the snapshot taken before fn ran.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(ctx); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	shifts           map[string]shift.Shift
	invites          map[string]shift.Invite
	applications     map[string]shift.Application
	clockins         map[string]clockin.Clockin
	employers        map[string]employer.Employer
	workers          map[string]worker.Worker
	periods          map[string]payroll.Period
	payments         map[string]payroll.PeriodPayment
	employeePayments map[string]payroll.EmployeePayment
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		shifts:           cloneMap(s.shifts),
		invites:          cloneMap(s.invites),
		applications:     cloneMap(s.applications),
		clockins:         cloneMap(s.clockins),
		employers:        cloneMap(s.employers),
		workers:          cloneMap(s.workers),
		periods:          cloneMap(s.periods),
		payments:         cloneMap(s.payments),
		employeePayments: cloneMap(s.employeePayments),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shifts = snap.shifts
	s.invites = snap.invites
	s.applications = snap.applications
	s.clockins = snap.clockins
	s.employers = snap.employers
	s.workers = snap.workers
	s.periods = snap.periods
	s.payments = snap.payments
	s.employeePayments = snap.employeePayments
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func newID() string {
	return uuid.NewString()
}

// Seed helpers for tests and local development.

func (s *Store) PutShift(sh shift.Shift) shift.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sh.ID == "" {
		sh.ID = newID()
	}
	s.shifts[sh.ID] = sh
	return sh
}

func (s *Store) PutInvite(inv shift.Invite) shift.Invite {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inv.ID == "" {
		inv.ID = newID()
	}
	s.invites[inv.ID] = inv
	return inv
}

func (s *Store) PutApplication(app shift.Application) shift.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	if app.ID == "" {
		app.ID = newID()
	}
	s.applications[app.ID] = app
	return app
}

func (s *Store) PutClockin(c clockin.Clockin) clockin.Clockin {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = newID()
	}
	s.clockins[c.ID] = c
	return c
}

func (s *Store) PutEmployer(e employer.Employer) employer.Employer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = newID()
	}
	s.employers[e.ID] = e
	return e
}

func (s *Store) PutWorker(w worker.Worker) worker.Worker {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w.ID == "" {
		w.ID = newID()
	}
	s.workers[w.ID] = w
	return w
}

func (s *Store) PutPeriod(p payroll.Period) payroll.Period {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = newID()
	}
	s.periods[p.ID] = p
	return p
}

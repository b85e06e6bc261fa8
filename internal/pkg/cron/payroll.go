package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/employer"
	"github.com/shiftwise/staffing-backend-go/internal/domain/payroll"
)

type PayrollJobs struct {
	payrollService payroll.PayrollService
	employerRepo   employer.EmployerRepository
}

func NewPayrollJobs(payrollService payroll.PayrollService, employerRepo employer.EmployerRepository) *PayrollJobs {
	return &PayrollJobs{
		payrollService: payrollService,
		employerRepo:   employerRepo,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("generate_payroll_periods", interval, j.GeneratePeriods)
}

// GeneratePeriods walks every employer and creates the periods each is owed.
// Employers without payroll configuration are skipped; one employer's failure
// does not stop the rest.
func (j *PayrollJobs) GeneratePeriods(ctx context.Context) error {
	ids, err := j.employerRepo.ListIDs(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, employerID := range ids {
		created, err := j.payrollService.GeneratePeriods(ctx, employerID, now)
		if err != nil {
			if errors.Is(err, payroll.ErrConfigMissing) {
				continue
			}
			slog.Error("Cron: failed to generate payroll periods",
				"employer_id", employerID, "error", err)
			continue
		}
		if len(created) > 0 {
			slog.Info("Cron: generated payroll periods",
				"employer_id", employerID, "count", len(created))
		}
	}
	return nil
}

package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/staffing-backend-go/internal/domain/payroll"
	"github.com/shiftwise/staffing-backend-go/internal/pkg/database"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) payroll.PeriodRepository {
	return &periodRepository{db: db}
}

const periodColumns = `
	id, employer_id, starting_at, ending_at, length, length_type, status,
	created_at, updated_at
`

func scanPeriod(row pgx.Row) (payroll.Period, error) {
	var p payroll.Period
	err := row.Scan(
		&p.ID, &p.EmployerID, &p.StartingAt, &p.EndingAt, &p.Length, &p.LengthType, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements payroll.PeriodRepository.
func (r *periodRepository) Create(ctx context.Context, period payroll.Period) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (
			employer_id, starting_at, ending_at, length, length_type, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		period.EmployerID,
		period.StartingAt,
		period.EndingAt,
		period.Length,
		period.LengthType,
		period.Status,
	).Scan(&period.ID, &period.CreatedAt, &period.UpdatedAt)

	if err != nil {
		return payroll.Period{}, fmt.Errorf("failed to create payroll period: %w", err)
	}
	return period, nil
}

// GetByID implements payroll.PeriodRepository.
func (r *periodRepository) GetByID(ctx context.Context, id string) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods
		WHERE id = $1
	`

	p, err := scanPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Period{}, payroll.ErrPeriodNotFound
		}
		return payroll.Period{}, fmt.Errorf("failed to get payroll period: %w", err)
	}
	return p, nil
}

// GetLastByEmployer implements payroll.PeriodRepository.
func (r *periodRepository) GetLastByEmployer(ctx context.Context, employerID string) (*payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods
		WHERE employer_id = $1
		ORDER BY ending_at DESC
		LIMIT 1
	`

	p, err := scanPeriod(q.QueryRow(ctx, query, employerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last payroll period: %w", err)
	}
	return &p, nil
}

// ListByEmployer implements payroll.PeriodRepository.
func (r *periodRepository) ListByEmployer(ctx context.Context, employerID string) ([]payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods
		WHERE employer_id = $1
		ORDER BY ending_at DESC
	`

	rows, err := q.Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.Period
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll periods: %w", err)
	}
	return periods, nil
}

// UpdateStatus implements payroll.PeriodRepository.
func (r *periodRepository) UpdateStatus(ctx context.Context, id string, status payroll.PeriodStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE payroll_periods SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update period status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPeriodNotFound
	}
	return nil
}

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payroll.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `
	id, period_id, clockin_id, shift_id, worker_id, status,
	regular_hours, over_time, hourly_rate, total_amount, splited_payment,
	created_at, updated_at
`

func scanPayment(row pgx.Row) (payroll.PeriodPayment, error) {
	var p payroll.PeriodPayment
	err := row.Scan(
		&p.ID, &p.PeriodID, &p.ClockinID, &p.ShiftID, &p.WorkerID, &p.Status,
		&p.RegularHours, &p.OverTime, &p.HourlyRate, &p.TotalAmount, &p.SplitedPayment,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements payroll.PaymentRepository.
func (r *paymentRepository) Create(ctx context.Context, payment payroll.PeriodPayment) (payroll.PeriodPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO period_payments (
			period_id, clockin_id, shift_id, worker_id, status,
			regular_hours, over_time, hourly_rate, total_amount, splited_payment
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		payment.PeriodID,
		payment.ClockinID,
		payment.ShiftID,
		payment.WorkerID,
		payment.Status,
		payment.RegularHours,
		payment.OverTime,
		payment.HourlyRate,
		payment.TotalAmount,
		payment.SplitedPayment,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)

	if err != nil {
		return payroll.PeriodPayment{}, fmt.Errorf("failed to create period payment: %w", err)
	}
	return payment, nil
}

// GetByID implements payroll.PaymentRepository.
func (r *paymentRepository) GetByID(ctx context.Context, id string) (payroll.PeriodPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM period_payments
		WHERE id = $1
	`

	p, err := scanPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PeriodPayment{}, payroll.ErrPaymentNotFound
		}
		return payroll.PeriodPayment{}, fmt.Errorf("failed to get period payment: %w", err)
	}
	return p, nil
}

// ListByPeriod implements payroll.PaymentRepository.
func (r *paymentRepository) ListByPeriod(ctx context.Context, periodID string) ([]payroll.PeriodPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM period_payments
		WHERE period_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list period payments: %w", err)
	}
	defer rows.Close()

	var payments []payroll.PeriodPayment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate period payments: %w", err)
	}
	return payments, nil
}

// CountByPeriodAndStatus implements payroll.PaymentRepository.
func (r *paymentRepository) CountByPeriodAndStatus(ctx context.Context, periodID string, status payroll.PaymentStatus) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM period_payments WHERE period_id = $1 AND status = $2`,
		periodID, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count period payments: %w", err)
	}
	return count, nil
}

// UpdateStatus implements payroll.PaymentRepository.
func (r *paymentRepository) UpdateStatus(ctx context.Context, id string, status payroll.PaymentStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE period_payments SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPaymentNotFound
	}
	return nil
}

type employeePaymentRepository struct {
	db *database.DB
}

func NewEmployeePaymentRepository(db *database.DB) payroll.EmployeePaymentRepository {
	return &employeePaymentRepository{db: db}
}

// Create implements payroll.EmployeePaymentRepository. The itemized deduction
// list is stored as jsonb alongside the totals.
func (r *employeePaymentRepository) Create(ctx context.Context, payment payroll.EmployeePayment) (payroll.EmployeePayment, error) {
	q := GetQuerier(ctx, r.db)

	deductions, err := json.Marshal(payment.DeductionList)
	if err != nil {
		return payroll.EmployeePayment{}, fmt.Errorf("failed to marshal deduction list: %w", err)
	}

	query := `
		INSERT INTO employee_payments (
			period_id, worker_id, employer_id, earnings,
			deduction_list, deduction_amount, taxes, amount, paid
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at
	`

	err = q.QueryRow(ctx, query,
		payment.PeriodID,
		payment.WorkerID,
		payment.EmployerID,
		payment.Earnings,
		deductions,
		payment.DeductionAmount,
		payment.Taxes,
		payment.Amount,
		payment.Paid,
	).Scan(&payment.ID, &payment.CreatedAt)

	if err != nil {
		return payroll.EmployeePayment{}, fmt.Errorf("failed to create employee payment: %w", err)
	}
	return payment, nil
}

// ListByPeriod implements payroll.EmployeePaymentRepository.
func (r *employeePaymentRepository) ListByPeriod(ctx context.Context, periodID string) ([]payroll.EmployeePayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_id, worker_id, employer_id, earnings,
			   deduction_list, deduction_amount, taxes, amount, paid, created_at
		FROM employee_payments
		WHERE period_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee payments: %w", err)
	}
	defer rows.Close()

	var payments []payroll.EmployeePayment
	for rows.Next() {
		var p payroll.EmployeePayment
		var deductions []byte
		if err := rows.Scan(
			&p.ID, &p.PeriodID, &p.WorkerID, &p.EmployerID, &p.Earnings,
			&deductions, &p.DeductionAmount, &p.Taxes, &p.Amount, &p.Paid, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee payment: %w", err)
		}
		if len(deductions) > 0 {
			if err := json.Unmarshal(deductions, &p.DeductionList); err != nil {
				return nil, fmt.Errorf("failed to unmarshal deduction list: %w", err)
			}
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee payments: %w", err)
	}
	return payments, nil
}

// DeleteByPeriod implements payroll.EmployeePaymentRepository.
func (r *employeePaymentRepository) DeleteByPeriod(ctx context.Context, periodID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_payments WHERE period_id = $1`, periodID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete employee payments: %w", err)
	}
	return tag.RowsAffected(), nil
}

package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/staffing-backend-go/internal/domain/employer"
	"github.com/shiftwise/staffing-backend-go/internal/pkg/database"
)

type employerRepository struct {
	db *database.DB
}

func NewEmployerRepository(db *database.DB) employer.EmployerRepository {
	return &employerRepository{db: db}
}

// GetByID implements employer.EmployerRepository.
func (r *employerRepository) GetByID(ctx context.Context, id string) (employer.Employer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, payroll_period_starting_time, payroll_period_length,
			   payroll_period_type, deductions, created_at
		FROM employers
		WHERE id = $1
	`

	var emp employer.Employer
	var deductions []byte
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.PayrollPeriodStartingTime, &emp.PayrollPeriodLength,
		&emp.PayrollPeriodType, &deductions, &emp.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employer.Employer{}, employer.ErrEmployerNotFound
		}
		return employer.Employer{}, fmt.Errorf("failed to get employer: %w", err)
	}

	if len(deductions) > 0 {
		if err := json.Unmarshal(deductions, &emp.Deductions); err != nil {
			return employer.Employer{}, fmt.Errorf("failed to unmarshal deductions: %w", err)
		}
	}
	return emp, nil
}

// ListIDs implements employer.EmployerRepository.
func (r *employerRepository) ListIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM employers ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employer ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employer id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employer ids: %w", err)
	}
	return ids, nil
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
	"github.com/shiftwise/staffing-backend-go/internal/pkg/database"
)

type clockinRepository struct {
	db *database.DB
}

func NewClockinRepository(db *database.DB) clockin.ClockinRepository {
	return &clockinRepository{db: db}
}

const clockinColumns = `
	id, shift_id, worker_id, employer_id, started_at, ended_at,
	latitude_in, longitude_in, latitude_out, longitude_out,
	automatically_closed, created_at, updated_at
`

func scanClockin(row pgx.Row) (clockin.Clockin, error) {
	var c clockin.Clockin
	err := row.Scan(
		&c.ID, &c.ShiftID, &c.WorkerID, &c.EmployerID, &c.StartedAt, &c.EndedAt,
		&c.LatitudeIn, &c.LongitudeIn, &c.LatitudeOut, &c.LongitudeOut,
		&c.AutomaticallyClosed, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements clockin.ClockinRepository.
func (r *clockinRepository) Create(ctx context.Context, record clockin.Clockin) (clockin.Clockin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clockins (
			shift_id, worker_id, employer_id, started_at,
			latitude_in, longitude_in
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ShiftID,
		record.WorkerID,
		record.EmployerID,
		record.StartedAt,
		record.LatitudeIn,
		record.LongitudeIn,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return clockin.Clockin{}, fmt.Errorf("failed to create clockin: %w", err)
	}
	return record, nil
}

// GetOpenByWorker implements clockin.ClockinRepository. Inside a transaction
// the row is locked so concurrent clock-ins for one worker serialize.
func (r *clockinRepository) GetOpenByWorker(ctx context.Context, workerID string) (*clockin.Clockin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + clockinColumns + `
		FROM clockins
		WHERE worker_id = $1
		  AND ended_at IS NULL
		ORDER BY started_at DESC
		LIMIT 1
		FOR UPDATE
	`

	c, err := scanClockin(q.QueryRow(ctx, query, workerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open clockin: %w", err)
	}
	return &c, nil
}

// GetOpenByShiftAndWorker implements clockin.ClockinRepository.
func (r *clockinRepository) GetOpenByShiftAndWorker(ctx context.Context, shiftID, workerID string) (*clockin.Clockin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + clockinColumns + `
		FROM clockins
		WHERE shift_id = $1
		  AND worker_id = $2
		  AND ended_at IS NULL
		LIMIT 1
		FOR UPDATE
	`

	c, err := scanClockin(q.QueryRow(ctx, query, shiftID, workerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open clockin for shift: %w", err)
	}
	return &c, nil
}

// Update implements clockin.ClockinRepository.
func (r *clockinRepository) Update(ctx context.Context, record clockin.Clockin) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clockins
		SET ended_at = $1,
			latitude_out = $2,
			longitude_out = $3,
			automatically_closed = $4,
			updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query,
		record.EndedAt,
		record.LatitudeOut,
		record.LongitudeOut,
		record.AutomaticallyClosed,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update clockin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return clockin.ErrClockinNotFound
	}
	return nil
}

// ListOpen implements clockin.ClockinRepository.
func (r *clockinRepository) ListOpen(ctx context.Context) ([]clockin.Clockin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + clockinColumns + `
		FROM clockins
		WHERE ended_at IS NULL
		ORDER BY started_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open clockins: %w", err)
	}
	defer rows.Close()

	return collectClockins(rows)
}

// ListByEmployerStartedBetween implements clockin.ClockinRepository.
func (r *clockinRepository) ListByEmployerStartedBetween(ctx context.Context, employerID string, from, to time.Time) ([]clockin.Clockin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + clockinColumns + `
		FROM clockins
		WHERE employer_id = $1
		  AND started_at >= $2
		  AND started_at <= $3
		ORDER BY started_at ASC
	`

	rows, err := q.Query(ctx, query, employerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list clockins by employer: %w", err)
	}
	defer rows.Close()

	return collectClockins(rows)
}

func collectClockins(rows pgx.Rows) ([]clockin.Clockin, error) {
	var records []clockin.Clockin
	for rows.Next() {
		c, err := scanClockin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clockin: %w", err)
		}
		records = append(records, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clockins: %w", err)
	}
	return records, nil
}

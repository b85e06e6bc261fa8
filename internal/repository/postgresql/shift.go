package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/staffing-backend-go/internal/domain/shift"
	"github.com/shiftwise/staffing-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	s.id, s.employer_id, s.venue_id, s.starting_at, s.ending_at,
	s.maximum_clockin_delta_minutes, s.maximum_clockout_delay_minutes,
	s.minimum_hourly_rate, s.status,
	v.latitude, v.longitude, v.allowed_radius_meters,
	s.created_at, s.updated_at
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.EmployerID, &s.VenueID, &s.StartingAt, &s.EndingAt,
		&s.MaximumClockinDeltaMinutes, &s.MaximumClockoutDelayMinutes,
		&s.MinimumHourlyRate, &s.Status,
		&s.VenueLatitude, &s.VenueLongitude, &s.AllowedRadiusMeters,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.id = $1
	`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	s.Roster, err = r.roster(ctx, s.ID)
	if err != nil {
		return shift.Shift{}, err
	}
	return s, nil
}

// GetByIDs implements shift.ShiftRepository.
func (r *shiftRepository) GetByIDs(ctx context.Context, ids []string) (map[string]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.id = ANY($1)
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}
	defer rows.Close()

	shifts := make(map[string]shift.Shift, len(ids))
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	for id, s := range shifts {
		s.Roster, err = r.roster(ctx, id)
		if err != nil {
			return nil, err
		}
		shifts[id] = s
	}
	return shifts, nil
}

// ListExpirable implements shift.ShiftRepository.
func (r *shiftRepository) ListExpirable(ctx context.Context, now time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.status IN ($1, $2)
		  AND s.ending_at <= $3
		ORDER BY s.ending_at ASC
	`

	rows, err := q.Query(ctx, query, shift.StatusOpen, shift.StatusFilled, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list expirable shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}
	return shifts, nil
}

// UpdateStatus implements shift.ShiftRepository.
func (r *shiftRepository) UpdateStatus(ctx context.Context, id string, status shift.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE shifts SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update shift status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// roster loads the accepted worker ids for a shift.
func (r *shiftRepository) roster(ctx context.Context, shiftID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT worker_id FROM shift_roster WHERE shift_id = $1`, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift roster: %w", err)
	}
	defer rows.Close()

	var workerIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		workerIDs = append(workerIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roster: %w", err)
	}
	return workerIDs, nil
}

type inviteRepository struct {
	db *database.DB
}

func NewInviteRepository(db *database.DB) shift.InviteRepository {
	return &inviteRepository{db: db}
}

// ListPendingByShiftStatus implements shift.InviteRepository.
func (r *inviteRepository) ListPendingByShiftStatus(ctx context.Context, status shift.Status) ([]shift.Invite, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.shift_id, i.worker_id, i.status, i.created_at, i.updated_at
		FROM shift_invites i
		JOIN shifts s ON s.id = i.shift_id
		WHERE i.status = $1
		  AND s.status = $2
	`

	rows, err := q.Query(ctx, query, shift.InviteStatusPending, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invites: %w", err)
	}
	defer rows.Close()

	var invites []shift.Invite
	for rows.Next() {
		var inv shift.Invite
		if err := rows.Scan(&inv.ID, &inv.ShiftID, &inv.WorkerID, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invites: %w", err)
	}
	return invites, nil
}

// UpdateStatus implements shift.InviteRepository.
func (r *inviteRepository) UpdateStatus(ctx context.Context, id string, status shift.InviteStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE shift_invites SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update invite status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrInviteNotFound
	}
	return nil
}

type applicationRepository struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) shift.ApplicationRepository {
	return &applicationRepository{db: db}
}

// DeleteByShiftStatuses implements shift.ApplicationRepository.
func (r *applicationRepository) DeleteByShiftStatuses(ctx context.Context, statuses []shift.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM shift_applications a
		USING shifts s
		WHERE s.id = a.shift_id
		  AND s.status = ANY($1)
	`

	tag, err := q.Exec(ctx, query, statuses)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale applications: %w", err)
	}
	return tag.RowsAffected(), nil
}

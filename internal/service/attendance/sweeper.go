package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
	"github.com/shiftwise/staffing-backend-go/internal/domain/shift"
)

// Sweep implements clockin.AttendanceService. It runs the full attendance
// sweep in one transaction, in a fixed order:
//
//  1. auto-close open records whose shift's clockout deadline has passed,
//     capped at the deadline
//  2. expire lapsed shifts; a shift with no clockout deadline is kept alive
//     while any of its records is still open
//  3. expire PENDING invites of EXPIRED shifts
//  4. delete applications of shifts in a terminal state
//
// Re-running at the same instant changes nothing. The closed records are
// returned so callers can notify the affected workers.
func (s *Service) Sweep(ctx context.Context, now time.Time) ([]clockin.ClockinResponse, error) {
	now = now.UTC()

	var closed []clockin.Clockin
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		closed, err = s.closeLapsedRecords(ctx, now)
		if err != nil {
			return err
		}

		if err := s.expireLapsedShifts(ctx, now); err != nil {
			return err
		}

		if err := s.expirePendingInvites(ctx); err != nil {
			return err
		}

		removed, err := s.applications.DeleteByShiftStatuses(ctx, []shift.Status{
			shift.StatusExpired, shift.StatusCompleted, shift.StatusCancelled,
		})
		if err != nil {
			return err
		}
		if removed > 0 {
			s.logger.Info("deleted stale shift applications", slog.Int64("count", removed))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]clockin.ClockinResponse, 0, len(closed))
	for _, c := range closed {
		responses = append(responses, clockin.ToResponse(c))
	}
	return responses, nil
}

// closeLapsedRecords closes every open record whose shift has a clockout
// deadline that has passed, at exactly the deadline.
func (s *Service) closeLapsedRecords(ctx context.Context, now time.Time) ([]clockin.Clockin, error) {
	open, err := s.clockins.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return nil, nil
	}

	shiftIDs := make([]string, 0, len(open))
	seen := make(map[string]bool, len(open))
	for _, c := range open {
		if !seen[c.ShiftID] {
			seen[c.ShiftID] = true
			shiftIDs = append(shiftIDs, c.ShiftID)
		}
	}

	shifts, err := s.shifts.GetByIDs(ctx, shiftIDs)
	if err != nil {
		return nil, err
	}

	var closed []clockin.Clockin
	for _, c := range open {
		sh, ok := shifts[c.ShiftID]
		if !ok {
			return nil, fmt.Errorf("open attendance record %s references unknown shift %s", c.ID, c.ShiftID)
		}
		if sh.MaximumClockoutDelayMinutes == nil {
			continue
		}

		deadline := sh.EndingAt.Add(time.Duration(*sh.MaximumClockoutDelayMinutes) * time.Minute)
		if now.Before(deadline) {
			continue
		}

		endedAt := deadline
		c.EndedAt = &endedAt
		c.AutomaticallyClosed = true
		if err := s.clockins.Update(ctx, c); err != nil {
			return nil, err
		}
		closed = append(closed, c)
	}
	return closed, nil
}

// expireLapsedShifts moves lapsed OPEN and FILLED shifts to EXPIRED. Shifts
// with a clockout deadline expire once the deadline passes; shifts without
// one expire once their end passes and no open record remains.
func (s *Service) expireLapsedShifts(ctx context.Context, now time.Time) error {
	lapsed, err := s.shifts.ListExpirable(ctx, now)
	if err != nil {
		return err
	}
	if len(lapsed) == 0 {
		return nil
	}

	// Recomputed after step 1 so records closed just now no longer count.
	open, err := s.clockins.ListOpen(ctx)
	if err != nil {
		return err
	}
	hasOpen := make(map[string]bool, len(open))
	for _, c := range open {
		hasOpen[c.ShiftID] = true
	}

	for _, sh := range lapsed {
		if sh.MaximumClockoutDelayMinutes != nil {
			deadline := sh.EndingAt.Add(time.Duration(*sh.MaximumClockoutDelayMinutes) * time.Minute)
			if now.Before(deadline) {
				continue
			}
		} else if hasOpen[sh.ID] {
			continue
		}

		if err := s.shifts.UpdateStatus(ctx, sh.ID, shift.StatusExpired); err != nil {
			return err
		}
		s.logger.Info("expired lapsed shift", slog.String("shift_id", sh.ID))
	}
	return nil
}

// expirePendingInvites expires every PENDING invite whose shift is EXPIRED.
func (s *Service) expirePendingInvites(ctx context.Context) error {
	pending, err := s.invites.ListPendingByShiftStatus(ctx, shift.StatusExpired)
	if err != nil {
		return err
	}
	for _, inv := range pending {
		if err := s.invites.UpdateStatus(ctx, inv.ID, shift.InviteStatusExpired); err != nil {
			return err
		}
	}
	return nil
}

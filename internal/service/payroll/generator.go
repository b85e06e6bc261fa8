package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
	"github.com/shiftwise/staffing-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// GeneratePeriods implements payroll.PayrollService. It creates every period
// the employer is owed up to now, oldest first, and allocates the attendance
// records that fall into each. A period is only created once its window has
// fully elapsed, so re-running at the same instant creates nothing.
//
// Each period and its payments commit atomically; a failure while allocating
// rolls that period back and stops the run, leaving earlier periods in place.
func (s *Service) GeneratePeriods(ctx context.Context, employerID string, now time.Time) ([]payroll.PeriodResponse, error) {
	now = now.UTC()

	emp, err := s.employers.GetByID(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if emp.PayrollPeriodStartingTime == nil {
		return nil, payroll.ErrConfigMissing
	}
	if emp.PayrollPeriodType != payroll.LengthTypeDays {
		return nil, payroll.ErrUnsupportedLengthType
	}

	anchor := emp.PayrollPeriodStartingTime.UTC()
	length := emp.PayrollPeriodLength

	baseline, err := s.baselineEnd(ctx, employerID, anchor, emp.CreatedAt.UTC())
	if err != nil {
		return nil, err
	}

	var created []payroll.PeriodResponse
	for {
		candidateEnd := baseline.AddDate(0, 0, length)
		if !candidateEnd.Before(now) {
			break
		}

		period := payroll.Period{
			EmployerID: employerID,
			StartingAt: candidateEnd.AddDate(0, 0, -length).Add(time.Second),
			EndingAt:   candidateEnd,
			Length:     length,
			LengthType: payroll.LengthTypeDays,
			Status:     payroll.PeriodStatusOpen,
		}

		err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
			stored, err := s.periods.Create(ctx, period)
			if err != nil {
				return err
			}
			if err := s.allocate(ctx, stored); err != nil {
				return err
			}
			period = stored
			return nil
		})
		if err != nil {
			return created, err
		}

		s.logger.Info("generated payroll period",
			slog.String("employer_id", employerID),
			slog.String("period_id", period.ID),
			slog.Time("starting_at", period.StartingAt),
			slog.Time("ending_at", period.EndingAt),
		)

		created = append(created, payroll.ToPeriodResponse(period))
		baseline = candidateEnd
	}
	return created, nil
}

// baselineEnd returns the end instant the next period builds on: the last
// period's end realigned to the anchor weekday, or a synthetic end derived
// from the employer's creation when no period exists yet.
func (s *Service) baselineEnd(ctx context.Context, employerID string, anchor, employerCreatedAt time.Time) (time.Time, error) {
	last, err := s.periods.GetLastByEmployer(ctx, employerID)
	if err != nil {
		return time.Time{}, err
	}

	if last == nil {
		return anchorWeekdayAtOrBefore(anchor, employerCreatedAt).Add(-time.Second), nil
	}

	// Realigning from 24h before the last end absorbs drift without ever
	// skipping a window.
	return anchorWeekdayAtOrAfter(anchor, last.EndingAt.UTC().Add(-24*time.Hour)).Add(-time.Second), nil
}

// anchorWeekdayAtOrBefore returns the latest instant at or before t that
// falls on the anchor's weekday with the anchor's time of day.
func anchorWeekdayAtOrBefore(anchor, t time.Time) time.Time {
	candidate := withTimeOfDay(t, anchor)
	delta := (int(candidate.Weekday()) - int(anchor.Weekday()) + 7) % 7
	candidate = candidate.AddDate(0, 0, -delta)
	if candidate.After(t) {
		candidate = candidate.AddDate(0, 0, -7)
	}
	return candidate
}

// anchorWeekdayAtOrAfter returns the earliest instant at or after t that
// falls on the anchor's weekday with the anchor's time of day.
func anchorWeekdayAtOrAfter(anchor, t time.Time) time.Time {
	candidate := withTimeOfDay(t, anchor)
	delta := (int(anchor.Weekday()) - int(candidate.Weekday()) + 7) % 7
	candidate = candidate.AddDate(0, 0, delta)
	if candidate.Before(t) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate
}

func withTimeOfDay(day, tod time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, day.Location())
}

// allocate creates one PENDING payment row for every attendance record whose
// start falls inside the period.
func (s *Service) allocate(ctx context.Context, period payroll.Period) error {
	records, err := s.clockins.ListByEmployerStartedBetween(ctx, period.EmployerID, period.StartingAt, period.EndingAt)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	shiftIDs := make([]string, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, c := range records {
		if !seen[c.ShiftID] {
			seen[c.ShiftID] = true
			shiftIDs = append(shiftIDs, c.ShiftID)
		}
	}
	shifts, err := s.shifts.GetByIDs(ctx, shiftIDs)
	if err != nil {
		return err
	}

	for _, c := range records {
		sh, ok := shifts[c.ShiftID]
		if !ok {
			return fmt.Errorf("attendance record %s references unknown shift %s", c.ID, c.ShiftID)
		}

		clocked, splited := clippedHours(c, period.StartingAt, period.EndingAt)
		regular, overtime := s.splitHours(clocked, sh.ScheduledHours())

		payment := payroll.PeriodPayment{
			PeriodID:       period.ID,
			ClockinID:      c.ID,
			ShiftID:        sh.ID,
			WorkerID:       c.WorkerID,
			Status:         payroll.PaymentStatusPending,
			RegularHours:   regular,
			OverTime:       overtime,
			HourlyRate:     sh.MinimumHourlyRate,
			TotalAmount:    sh.MinimumHourlyRate.Mul(clocked).Round(2),
			SplitedPayment: splited,
		}
		if _, err := s.payments.Create(ctx, payment); err != nil {
			return err
		}
	}
	return nil
}

// clippedHours returns the record's clocked hours clipped to the period
// window, and whether the payment represents only part of the record. Open
// records allocate zero hours and always count as partial.
func clippedHours(c clockin.Clockin, start, end time.Time) (decimal.Decimal, bool) {
	if c.Open() {
		return decimal.Zero, true
	}

	clipStart := c.StartedAt
	if clipStart.Before(start) {
		clipStart = start
	}
	clipEnd := *c.EndedAt
	if clipEnd.After(end) {
		clipEnd = end
	}
	if clipEnd.Before(clipStart) {
		clipEnd = clipStart
	}

	clipped := !clipStart.Equal(c.StartedAt) || !clipEnd.Equal(*c.EndedAt)
	return hoursBetween(clipStart, clipEnd), clipped
}

// splitHours divides clocked hours into regular and overtime against the
// scheduled projection. Clocked time short of the projection pays nothing
// unless payShortClockedHours is set.
func (s *Service) splitHours(clocked, projected decimal.Decimal) (regular, overtime decimal.Decimal) {
	if clocked.GreaterThan(projected) {
		return projected, clocked.Sub(projected)
	}
	if s.payShortClockedHours {
		return clocked, decimal.Zero
	}
	return decimal.Zero, decimal.Zero
}

func hoursBetween(from, to time.Time) decimal.Decimal {
	secs := int64(to.Sub(from) / time.Second)
	return decimal.New(secs, 0).Div(decimal.NewFromInt(3600))
}

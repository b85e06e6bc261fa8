package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
	"github.com/shiftwise/staffing-backend-go/internal/domain/shift"
	"github.com/shiftwise/staffing-backend-go/internal/pkg/database"
)

type Service struct {
	tx           database.Transactor
	shifts       shift.ShiftRepository
	invites      shift.InviteRepository
	applications shift.ApplicationRepository
	clockins     clockin.ClockinRepository
	logger       *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

func NewService(
	tx database.Transactor,
	shifts shift.ShiftRepository,
	invites shift.InviteRepository,
	applications shift.ApplicationRepository,
	clockins clockin.ClockinRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		tx:           tx,
		shifts:       shifts,
		invites:      invites,
		applications: applications,
		clockins:     clockins,
		logger:       logger,
		now:          time.Now,
	}
}

// ClockIn implements clockin.AttendanceService. The open-record check and the
// insert happen inside one transaction; the open-record read takes a row lock
// so two concurrent clock-ins for the same worker cannot both pass.
func (s *Service) ClockIn(ctx context.Context, req clockin.ClockInRequest) (clockin.ClockinResponse, error) {
	if err := req.Validate(); err != nil {
		return clockin.ClockinResponse{}, err
	}

	at := s.now().UTC()

	var created clockin.Clockin
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		sh, err := s.shifts.GetByID(ctx, req.ShiftID)
		if err != nil {
			return err
		}

		open, err := s.clockins.GetOpenByWorker(ctx, req.WorkerID)
		if err != nil {
			return fmt.Errorf("failed to check open attendance record: %w", err)
		}

		check := ClockInCheck{
			WorkerID:      req.WorkerID,
			HasOpenRecord: open != nil,
			Latitude:      req.Latitude,
			Longitude:     req.Longitude,
		}
		if err := CanClockIn(sh, at, check); err != nil {
			return err
		}

		created, err = s.clockins.Create(ctx, clockin.Clockin{
			ShiftID:     sh.ID,
			WorkerID:    req.WorkerID,
			EmployerID:  sh.EmployerID,
			StartedAt:   at,
			LatitudeIn:  req.Latitude,
			LongitudeIn: req.Longitude,
		})
		return err
	})
	if err != nil {
		return clockin.ClockinResponse{}, err
	}

	return clockin.ToResponse(created), nil
}

// ClockOut implements clockin.AttendanceService.
func (s *Service) ClockOut(ctx context.Context, req clockin.ClockOutRequest) (clockin.ClockinResponse, error) {
	if err := req.Validate(); err != nil {
		return clockin.ClockinResponse{}, err
	}

	at := s.now().UTC()

	var closed clockin.Clockin
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		sh, err := s.shifts.GetByID(ctx, req.ShiftID)
		if err != nil {
			return err
		}

		open, err := s.clockins.GetOpenByShiftAndWorker(ctx, sh.ID, req.WorkerID)
		if err != nil {
			return fmt.Errorf("failed to get open attendance record: %w", err)
		}

		check := ClockOutCheck{
			WorkerID:  req.WorkerID,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		}
		if err := CanClockOut(sh, at, open, check); err != nil {
			return err
		}

		open.EndedAt = &at
		open.LatitudeOut = &req.Latitude
		open.LongitudeOut = &req.Longitude
		if err := s.clockins.Update(ctx, *open); err != nil {
			return err
		}
		closed = *open
		return nil
	})
	if err != nil {
		return clockin.ClockinResponse{}, err
	}

	return clockin.ToResponse(closed), nil
}

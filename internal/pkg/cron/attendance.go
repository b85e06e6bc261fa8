package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
)

type AttendanceJobs struct {
	attendanceService clockin.AttendanceService
}

func NewAttendanceJobs(attendanceService clockin.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("sweep_attendance", interval, j.SweepAttendance)
}

// SweepAttendance auto-closes lapsed attendance records and expires lapsed
// shifts, invites and applications. The sweep itself is idempotent, so an
// extra run is harmless.
func (j *AttendanceJobs) SweepAttendance(ctx context.Context) error {
	closed, err := j.attendanceService.Sweep(ctx, time.Now())
	if err != nil {
		return err
	}

	if len(closed) > 0 {
		slog.Info("Cron: auto-closed attendance records", "count", len(closed))
	}
	return nil
}

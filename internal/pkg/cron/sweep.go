package cron

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/attendance"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/clock"
)

// AbsenceSweep marks employees with no attendance record for the day as
// absent. It runs at the end of the civil day, so a punch-in during the day
// always wins; the sweep only ever fills gaps.
type AbsenceSweep struct {
	attendanceRepo    attendance.Repository
	attendanceService attendance.Service
	clock             clock.Clock
}

func NewAbsenceSweep(attendanceRepo attendance.Repository, attendanceService attendance.Service, clk clock.Clock) *AbsenceSweep {
	return &AbsenceSweep{
		attendanceRepo:    attendanceRepo,
		attendanceService: attendanceService,
		clock:             clk,
	}
}

func (j *AbsenceSweep) Run(ctx context.Context) error {
	today := j.clock.Today()

	ids, err := j.attendanceRepo.ListUnrecorded(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list unrecorded employees: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	var failed int
	for _, id := range ids {
		if err := j.attendanceService.MarkAbsent(ctx, id, today, ""); err != nil {
			slog.Error("Absence sweep failed for employee", "employee_id", id, "error", err)
			failed++
		}
	}

	slog.Info("Absence sweep completed", "date", today.Format("2006-01-02"), "marked", len(ids)-failed, "failed", failed)

	if failed > 0 {
		return fmt.Errorf("absence sweep failed for %d of %d employees", failed, len(ids))
	}
	return nil
}

package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/peoplehr/hrms-backend-go/internal/domain/attendance"
)

// AbsenceSweepJob returns the job function that marks scheduled no-shows
// absent. The target selector decides which calendar day each run evaluates:
// "yesterday" leaves a grace period for shifts that clock out after midnight,
// "today" closes the day immediately.
func AbsenceSweepJob(svc attendance.AttendanceService, target string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		day := time.Now()
		if target == "yesterday" {
			day = day.AddDate(0, 0, -1)
		}

		result, err := svc.SweepAbsences(ctx, day.Format("2006-01-02"))
		if err != nil {
			return err
		}

		slog.Info("Absence sweep finished",
			"target_date", result.TargetDate,
			"scheduled", result.Scheduled,
			"marked_absent", result.MarkedAbsent,
			"skipped", result.Skipped,
			"failed", result.Failed,
		)
		return nil
	}
}

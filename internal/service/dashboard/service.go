package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/dashboard"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	repo  dashboard.Repository
	clock clock.Clock
}

func NewDashboardService(repo dashboard.Repository, clk clock.Clock) dashboard.Service {
	return &DashboardServiceImpl{
		repo:  repo,
		clock: clk,
	}
}

// AdminDashboard returns the roster view data using parallel goroutines,
// one DB query each.
func (s *DashboardServiceImpl) AdminDashboard(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	today := s.clock.Today()

	var (
		weekly  []dashboard.DayCount
		roster  []dashboard.RosterRow
		history []dashboard.AbsenceRow
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		weekly, err = s.repo.WeeklyPunchCounts(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		roster, err = s.repo.TodayRoster(gCtx, today)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.repo.AbsentHistory(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to load dashboard: %w", err)
	}

	labels, counts := chartData(weekly, "Jan 2")

	resp := dashboard.AdminDashboardResponse{
		Labels:        labels,
		Counts:        counts,
		Attendance:    make([]dashboard.RosterEntry, 0, len(roster)),
		AbsentHistory: make([]dashboard.AbsenceEntry, 0, len(history)),
	}

	for _, row := range roster {
		resp.Attendance = append(resp.Attendance, dashboard.RosterEntry{
			ID:          row.EmployeeID,
			Name:        row.Name,
			Code:        row.Code,
			PIN:         row.PIN,
			TimeIn:      s.formatTimePtr(row.TimeIn),
			TimeOut:     s.formatTimePtr(row.TimeOut),
			LocationIn:  row.LocationIn,
			LocationOut: row.LocationOut,
			Absent:      row.Absent,
			Reason:      row.Reason,
		})
	}

	for _, row := range history {
		resp.AbsentHistory = append(resp.AbsentHistory, dashboard.AbsenceEntry{
			Name:   row.EmployeeName,
			Date:   row.Date.Format("2006-01-02"),
			Reason: row.Reason,
		})
	}

	return resp, nil
}

// Reports returns the weekly chart plus today's presence split.
func (s *DashboardServiceImpl) Reports(ctx context.Context) (dashboard.ReportsResponse, error) {
	today := s.clock.Today()

	var (
		weekly []dashboard.DayCount
		stats  dashboard.PresenceStats
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		weekly, err = s.repo.WeeklyPunchCounts(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.repo.PresenceStats(gCtx, today)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.ReportsResponse{}, fmt.Errorf("failed to load reports: %w", err)
	}

	labels, counts := chartData(weekly, "Jan 2")

	return dashboard.ReportsResponse{
		Labels:  labels,
		Counts:  counts,
		Present: stats.Present,
		Absent:  stats.Absent,
	}, nil
}

// MonthlyReport returns every employee's records for the current civil
// month. Employees with no records appear once with placeholder fields.
func (s *DashboardServiceImpl) MonthlyReport(ctx context.Context) (dashboard.MonthlyReportResponse, error) {
	today := s.clock.Today()
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	to := from.AddDate(0, 1, -1)

	rows, err := s.repo.MonthlyReport(ctx, from, to)
	if err != nil {
		return dashboard.MonthlyReportResponse{}, fmt.Errorf("failed to load monthly report: %w", err)
	}

	resp := dashboard.MonthlyReportResponse{
		Month:   from.Format("January 2006"),
		Records: make([]dashboard.ReportEntry, 0, len(rows)),
	}

	for _, row := range rows {
		entry := dashboard.ReportEntry{
			EmployeeID:  row.EmployeeID,
			Name:        row.Name,
			Date:        "-",
			TimeIn:      "-",
			TimeOut:     "-",
			LocationIn:  "-",
			LocationOut: "-",
			Absent:      "-",
			Reason:      "-",
		}
		if row.Date != nil {
			entry.Date = row.Date.Format("2006-01-02")
			entry.Absent = "No"
			if row.Absent != nil && *row.Absent {
				entry.Absent = "Yes"
			}
			if row.TimeIn != nil {
				entry.TimeIn = s.clock.FormatTimeOfDay(*row.TimeIn)
			}
			if row.TimeOut != nil {
				entry.TimeOut = s.clock.FormatTimeOfDay(*row.TimeOut)
			}
			if row.LocationIn != nil {
				entry.LocationIn = *row.LocationIn
			}
			if row.LocationOut != nil {
				entry.LocationOut = *row.LocationOut
			}
			if row.Reason != nil {
				entry.Reason = *row.Reason
			}
		}
		resp.Records = append(resp.Records, entry)
	}

	return resp, nil
}

// EmployeeWeek returns the employee's trailing 7 civil days, zero-filled
// for days with no record.
func (s *DashboardServiceImpl) EmployeeWeek(ctx context.Context, employeeID int64) (dashboard.EmployeeWeekResponse, error) {
	today := s.clock.Today()
	since := today.AddDate(0, 0, -6)

	counts, err := s.repo.EmployeeWeekCounts(ctx, employeeID, since)
	if err != nil {
		return dashboard.EmployeeWeekResponse{}, fmt.Errorf("failed to load employee week: %w", err)
	}

	byDate := make(map[string]int64, len(counts))
	for _, dc := range counts {
		byDate[dc.Date.Format("2006-01-02")] = dc.Count
	}

	resp := dashboard.EmployeeWeekResponse{
		Labels: make([]string, 0, 7),
		Counts: make([]int64, 0, 7),
	}
	for day := since; !day.After(today); day = day.AddDate(0, 0, 1) {
		resp.Labels = append(resp.Labels, day.Format("Mon"))
		resp.Counts = append(resp.Counts, byDate[day.Format("2006-01-02")])
	}

	return resp, nil
}

func (s *DashboardServiceImpl) formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := s.clock.FormatTimeOfDay(*t)
	return &formatted
}

func chartData(weekly []dashboard.DayCount, layout string) ([]string, []int64) {
	labels := make([]string, 0, len(weekly))
	counts := make([]int64, 0, len(weekly))
	for _, dc := range weekly {
		labels = append(labels, dc.Date.Format(layout))
		counts = append(counts, dc.Count)
	}
	return labels, counts
}

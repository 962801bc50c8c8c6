package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/dashboard"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*3600+30*60)

type fakeRepo struct {
	roster  []dashboard.RosterRow
	weekly  []dashboard.DayCount
	stats   dashboard.PresenceStats
	absents []dashboard.AbsenceRow
	week    []dashboard.DayCount
	report  []dashboard.ReportRow
}

func (f *fakeRepo) TodayRoster(ctx context.Context, date time.Time) ([]dashboard.RosterRow, error) {
	return f.roster, nil
}

func (f *fakeRepo) WeeklyPunchCounts(ctx context.Context) ([]dashboard.DayCount, error) {
	return f.weekly, nil
}

func (f *fakeRepo) PresenceStats(ctx context.Context, date time.Time) (dashboard.PresenceStats, error) {
	return f.stats, nil
}

func (f *fakeRepo) AbsentHistory(ctx context.Context) ([]dashboard.AbsenceRow, error) {
	return f.absents, nil
}

func (f *fakeRepo) EmployeeWeekCounts(ctx context.Context, employeeID int64, since time.Time) ([]dashboard.DayCount, error) {
	return f.week, nil
}

func (f *fakeRepo) MonthlyReport(ctx context.Context, from, to time.Time) ([]dashboard.ReportRow, error) {
	return f.report, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, ist)
}

func testClock() clock.Clock {
	return clock.Fixed(time.Date(2026, 3, 14, 9, 5, 0, 0, ist))
}

func strPtr(s string) *string { return &s }

func TestAdminDashboard(t *testing.T) {
	timeIn := time.Date(2026, 3, 14, 9, 0, 0, 0, ist)
	repo := &fakeRepo{
		weekly: []dashboard.DayCount{
			{Date: day(2026, 3, 13), Count: 4},
			{Date: day(2026, 3, 14), Count: 2},
		},
		roster: []dashboard.RosterRow{
			{EmployeeID: 1, Name: "Asha", Code: "EMP001", PIN: "1234", TimeIn: &timeIn},
			{EmployeeID: 2, Name: "Ravi", Code: "EMP002", PIN: "5678", Absent: true, Reason: strPtr("Sick")},
		},
		absents: []dashboard.AbsenceRow{
			{EmployeeName: "Ravi", Date: day(2026, 3, 14), Reason: strPtr("Sick")},
		},
	}
	svc := NewDashboardService(repo, testClock())

	resp, err := svc.AdminDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Mar 13", "Mar 14"}, resp.Labels)
	assert.Equal(t, []int64{4, 2}, resp.Counts)

	require.Len(t, resp.Attendance, 2)
	require.NotNil(t, resp.Attendance[0].TimeIn)
	assert.Equal(t, "09:00 AM", *resp.Attendance[0].TimeIn)
	assert.Nil(t, resp.Attendance[0].TimeOut)
	assert.True(t, resp.Attendance[1].Absent)

	require.Len(t, resp.AbsentHistory, 1)
	assert.Equal(t, "2026-03-14", resp.AbsentHistory[0].Date)
}

func TestReports(t *testing.T) {
	repo := &fakeRepo{
		weekly: []dashboard.DayCount{{Date: day(2026, 3, 14), Count: 8}},
		stats:  dashboard.PresenceStats{Total: 10, Present: 8, Absent: 2},
	}
	svc := NewDashboardService(repo, testClock())

	resp, err := svc.Reports(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Mar 14"}, resp.Labels)
	assert.Equal(t, []int64{8}, resp.Counts)
	assert.Equal(t, int64(8), resp.Present)
	assert.Equal(t, int64(2), resp.Absent)
}

func TestMonthlyReport(t *testing.T) {
	timeIn := time.Date(2026, 3, 2, 9, 0, 0, 0, ist)
	recordDate := day(2026, 3, 2)
	absent := false
	repo := &fakeRepo{
		report: []dashboard.ReportRow{
			{EmployeeID: 1, Name: "Asha", Date: &recordDate, TimeIn: &timeIn, Absent: &absent, LocationIn: strPtr("Office|0.000000|0.000000")},
			{EmployeeID: 2, Name: "Ravi"},
		},
	}
	svc := NewDashboardService(repo, testClock())

	resp, err := svc.MonthlyReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "March 2026", resp.Month)
	require.Len(t, resp.Records, 2)

	assert.Equal(t, "2026-03-02", resp.Records[0].Date)
	assert.Equal(t, "09:00 AM", resp.Records[0].TimeIn)
	assert.Equal(t, "-", resp.Records[0].TimeOut)
	assert.Equal(t, "No", resp.Records[0].Absent)

	// Employee with no records this month gets placeholders.
	assert.Equal(t, "-", resp.Records[1].Date)
	assert.Equal(t, "-", resp.Records[1].Absent)
}

func TestEmployeeWeek_ZeroFilled(t *testing.T) {
	repo := &fakeRepo{
		week: []dashboard.DayCount{
			{Date: day(2026, 3, 10), Count: 1},
			{Date: day(2026, 3, 13), Count: 1},
		},
	}
	svc := NewDashboardService(repo, testClock())

	resp, err := svc.EmployeeWeek(context.Background(), 1)
	require.NoError(t, err)

	// Mar 8 2026 is a Sunday; the trailing week ends on today, Saturday.
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, resp.Labels)
	assert.Equal(t, []int64{0, 0, 1, 0, 0, 1, 0}, resp.Counts)
}

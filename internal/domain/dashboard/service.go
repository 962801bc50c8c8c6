package dashboard

import "context"

type Service interface {
	AdminDashboard(ctx context.Context) (AdminDashboardResponse, error)
	Reports(ctx context.Context) (ReportsResponse, error)
	MonthlyReport(ctx context.Context) (MonthlyReportResponse, error)
	EmployeeWeek(ctx context.Context, employeeID int64) (EmployeeWeekResponse, error)
}

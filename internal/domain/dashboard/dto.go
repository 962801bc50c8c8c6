package dashboard

import "time"

// ========== RAW QUERY ROWS ==========

// RosterRow is one employee left-joined with today's attendance record.
// Punch fields are nil for employees with no record today.
type RosterRow struct {
	EmployeeID  int64
	Name        string
	Code        string
	PIN         string
	TimeIn      *time.Time
	TimeOut     *time.Time
	LocationIn  *string
	LocationOut *string
	Absent      bool
	Reason      *string
}

// DayCount is a punch-in count for one date.
type DayCount struct {
	Date  time.Time
	Count int64
}

// PresenceStats counts distinct non-absent employees for one day.
type PresenceStats struct {
	Total   int64
	Present int64
	Absent  int64
}

type AbsenceRow struct {
	EmployeeName string
	Date         time.Time
	Reason       *string
}

// ReportRow is one employee/day pair in the monthly report. Attendance
// fields are nil for days with no record.
type ReportRow struct {
	EmployeeID  int64
	Name        string
	Date        *time.Time
	TimeIn      *time.Time
	TimeOut     *time.Time
	LocationIn  *string
	LocationOut *string
	Absent      *bool
	Reason      *string
}

// ========== RESPONSES ==========

type RosterEntry struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"emp_code"`
	PIN         string  `json:"pin"`
	TimeIn      *string `json:"time_in"`
	TimeOut     *string `json:"time_out"`
	LocationIn  *string `json:"location_in"`
	LocationOut *string `json:"location_out"`
	Absent      bool    `json:"absent"`
	Reason      *string `json:"reason"`
}

type AbsenceEntry struct {
	Name   string  `json:"name"`
	Date   string  `json:"date"`
	Reason *string `json:"reason"`
}

// AdminDashboardResponse backs the admin roster view: a 7-day punch-in
// chart (ascending for charting), today's roster and absence history.
type AdminDashboardResponse struct {
	Labels        []string       `json:"labels"`
	Counts        []int64        `json:"counts"`
	Attendance    []RosterEntry  `json:"attendance"`
	AbsentHistory []AbsenceEntry `json:"absent_history"`
}

type ReportsResponse struct {
	Labels  []string `json:"labels"`
	Counts  []int64  `json:"counts"`
	Present int64    `json:"present"`
	Absent  int64    `json:"absent"`
}

type ReportEntry struct {
	EmployeeID  int64  `json:"emp_id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	TimeIn      string `json:"time_in"`
	TimeOut     string `json:"time_out"`
	LocationIn  string `json:"location_in"`
	LocationOut string `json:"location_out"`
	Absent      string `json:"absent"`
	Reason      string `json:"reason"`
}

type MonthlyReportResponse struct {
	Month   string        `json:"month"`
	Records []ReportEntry `json:"records"`
}

// EmployeeWeekResponse is the employee's own trailing-week chart.
type EmployeeWeekResponse struct {
	Labels []string `json:"p_labels"`
	Counts []int64  `json:"p_counts"`
}

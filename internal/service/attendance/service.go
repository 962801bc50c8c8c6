package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/attendance"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/clock"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/location"
)

// DefaultAbsentReason is recorded when an absence is marked without an
// explicit reason.
const DefaultAbsentReason = "Not specified"

type AttendanceServiceImpl struct {
	repo      attendance.Repository
	clock     clock.Clock
	locations location.Provider
}

func NewAttendanceService(repo attendance.Repository, clk clock.Clock, locations location.Provider) attendance.Service {
	return &AttendanceServiceImpl{
		repo:      repo,
		clock:     clk,
		locations: locations,
	}
}

// RecordPunch implements attendance.Service.
func (s *AttendanceServiceImpl) RecordPunch(ctx context.Context, req attendance.PunchRequest) (attendance.PunchResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResult{}, err
	}

	now := s.clock.Now()
	today := s.clock.Today()

	loc := s.locations.Default(ctx)
	if req.Location != nil {
		loc = location.Format(req.Location)
	}

	var result attendance.PunchResult
	var err error
	switch req.Direction {
	case attendance.DirectionIn:
		result, err = s.punchIn(ctx, req, now, today, loc)
	default:
		result, err = s.punchOut(ctx, req.EmployeeID, now, today, loc)
	}
	if err != nil {
		return attendance.PunchResult{}, err
	}

	// Tagging applies to both directions: a punch-out records how the
	// employee authenticated just as a punch-in does.
	if req.AuthMethod != "" {
		if err := s.repo.SetAuthMethod(ctx, req.EmployeeID, today, req.AuthMethod); err != nil {
			return attendance.PunchResult{}, fmt.Errorf("failed to set auth method: %w", err)
		}
	}

	return result, nil
}

// punchIn relies on the (employee, date) unique constraint rather than a
// read-then-write check: two racing punch-ins both insert, one wins, the
// other gets the duplicate error.
func (s *AttendanceServiceImpl) punchIn(ctx context.Context, req attendance.PunchRequest, now, today time.Time, loc string) (attendance.PunchResult, error) {
	rec := attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       today,
		TimeIn:     &now,
		LocationIn: &loc,
	}

	if _, err := s.repo.Create(ctx, rec); err != nil {
		if errors.Is(err, attendance.ErrRecordExists) {
			return attendance.PunchResult{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.PunchResult{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.PunchResult{
		Time:     s.clock.FormatTimeOfDay(now),
		Location: loc,
	}, nil
}

func (s *AttendanceServiceImpl) punchOut(ctx context.Context, employeeID int64, now, today time.Time, loc string) (attendance.PunchResult, error) {
	rec, err := s.repo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.PunchResult{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	// A day overwritten to absent has no open session either.
	if rec == nil || rec.TimeIn == nil || rec.Absent {
		return attendance.PunchResult{}, attendance.ErrNotPunchedIn
	}
	if rec.TimeOut != nil {
		return attendance.PunchResult{}, attendance.ErrNotPunchedIn
	}

	if err := s.repo.SetTimeOut(ctx, rec.ID, now, loc); err != nil {
		return attendance.PunchResult{}, fmt.Errorf("failed to set time out: %w", err)
	}

	return attendance.PunchResult{
		Time:     s.clock.FormatTimeOfDay(now),
		Location: loc,
	}, nil
}

// MarkAbsent implements attendance.Service. A zero date means today.
func (s *AttendanceServiceImpl) MarkAbsent(ctx context.Context, employeeID int64, date time.Time, reason string) error {
	if reason == "" {
		reason = DefaultAbsentReason
	}
	if date.IsZero() {
		date = s.clock.Today()
	}

	if err := s.repo.UpsertAbsent(ctx, employeeID, date, reason); err != nil {
		return fmt.Errorf("failed to mark absent: %w", err)
	}

	return nil
}

// History implements attendance.Service.
func (s *AttendanceServiceImpl) History(ctx context.Context, employeeID int64) ([]attendance.RecordResponse, error) {
	records, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.RecordResponse{
			Date:        rec.Date.Format("2006-01-02"),
			TimeIn:      s.formatTimePtr(rec.TimeIn),
			TimeOut:     s.formatTimePtr(rec.TimeOut),
			LocationIn:  rec.LocationIn,
			LocationOut: rec.LocationOut,
			Absent:      rec.Absent,
			Reason:      rec.Reason,
		})
	}

	return responses, nil
}

func (s *AttendanceServiceImpl) formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := s.clock.FormatTimeOfDay(*t)
	return &formatted
}

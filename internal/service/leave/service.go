package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/attendance"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/leave"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/clock"
)

// DefaultLeaveReason is recorded when a quick leave carries no reason.
const DefaultLeaveReason = "No reason"

type LeaveServiceImpl struct {
	repo           leave.Repository
	attendanceRepo attendance.Repository
	clock          clock.Clock
}

func NewLeaveService(repo leave.Repository, attendanceRepo attendance.Repository, clk clock.Clock) leave.Service {
	return &LeaveServiceImpl{
		repo:           repo,
		attendanceRepo: attendanceRepo,
		clock:          clk,
	}
}

// Apply implements leave.Service.
//
// Order matters: the ledger row is written first, then one absence upsert
// per day in the range. The writes are deliberately not wrapped in a
// transaction; each day's upsert stands alone, and a failure partway
// through reports which date failed.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) error {
	from, to, err := req.Validate()
	if err != nil {
		return err
	}

	reason := req.Reason
	if reason == "" {
		reason = DefaultLeaveReason
	}

	if req.Kind == leave.KindQuick {
		today := s.clock.Today()
		from, to = today, today
	}

	if _, err := s.repo.Create(ctx, leave.Request{
		EmployeeID: req.EmployeeID,
		FromDate:   from,
		ToDate:     to,
		Reason:     reason,
	}); err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}

	err = leave.DateRange(from, to, func(day time.Time) error {
		if err := s.attendanceRepo.UpsertAbsent(ctx, req.EmployeeID, day, reason); err != nil {
			return fmt.Errorf("failed to mark %s absent: %w", day.Format("2006-01-02"), err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// History implements leave.Service.
func (s *LeaveServiceImpl) History(ctx context.Context, employeeID int64) ([]leave.RequestResponse, error) {
	requests, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave history: %w", err)
	}
	return toResponses(requests), nil
}

// TodayReason implements leave.Service.
func (s *LeaveServiceImpl) TodayReason(ctx context.Context, employeeID int64) (*string, error) {
	reason, err := s.repo.GetActiveReason(ctx, employeeID, s.clock.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to get active leave: %w", err)
	}
	return reason, nil
}

// Recent implements leave.Service.
func (s *LeaveServiceImpl) Recent(ctx context.Context, limit int) ([]leave.RequestResponse, error) {
	requests, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent leaves: %w", err)
	}
	return toResponses(requests), nil
}

func toResponses(requests []leave.Request) []leave.RequestResponse {
	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.RequestResponse{
			ID:           req.ID,
			EmployeeID:   req.EmployeeID,
			EmployeeName: req.EmployeeName,
			FromDate:     req.FromDate.Format("2006-01-02"),
			ToDate:       req.ToDate.Format("2006-01-02"),
			Reason:       req.Reason,
		})
	}
	return responses
}

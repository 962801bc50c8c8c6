package leave

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/attendance"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/leave"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/clock"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedger struct {
	requests []leave.Request
	nextID   int64
}

func (f *fakeLedger) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	f.nextID++
	req.ID = f.nextID
	f.requests = append(f.requests, req)
	return req, nil
}

func (f *fakeLedger) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.Request, error) {
	var out []leave.Request
	for i := len(f.requests) - 1; i >= 0; i-- {
		if f.requests[i].EmployeeID == employeeID {
			out = append(out, f.requests[i])
		}
	}
	return out, nil
}

func (f *fakeLedger) GetActiveReason(ctx context.Context, employeeID int64, date time.Time) (*string, error) {
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && !date.Before(req.FromDate) && !date.After(req.ToDate) {
			reason := req.Reason
			return &reason, nil
		}
	}
	return nil, nil
}

func (f *fakeLedger) ListRecent(ctx context.Context, limit int) ([]leave.Request, error) {
	out := make([]leave.Request, 0, limit)
	for i := len(f.requests) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.requests[i])
	}
	return out, nil
}

// absentRecorder records UpsertAbsent calls and can fail on a chosen date.
type absentRecorder struct {
	upserts  []string
	reasons  map[string]string
	failDate string
}

func newAbsentRecorder() *absentRecorder {
	return &absentRecorder{reasons: make(map[string]string)}
}

func (a *absentRecorder) UpsertAbsent(ctx context.Context, employeeID int64, date time.Time, reason string) error {
	day := date.Format("2006-01-02")
	if day == a.failDate {
		return fmt.Errorf("connection reset")
	}
	a.upserts = append(a.upserts, day)
	a.reasons[day] = reason
	return nil
}

func (a *absentRecorder) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}
func (a *absentRecorder) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	return nil, nil
}
func (a *absentRecorder) SetTimeOut(ctx context.Context, id int64, timeOut time.Time, locationOut string) error {
	return nil
}
func (a *absentRecorder) SetAuthMethod(ctx context.Context, employeeID int64, date time.Time, method string) error {
	return nil
}
func (a *absentRecorder) ListByEmployee(ctx context.Context, employeeID int64) ([]attendance.Record, error) {
	return nil, nil
}
func (a *absentRecorder) ListUnrecorded(ctx context.Context, date time.Time) ([]int64, error) {
	return nil, nil
}

func testClock() clock.Clock {
	ist := time.FixedZone("IST", 5*3600+30*60)
	return clock.Fixed(time.Date(2026, 3, 14, 9, 5, 0, 0, ist))
}

func TestApply_Quick(t *testing.T) {
	ledger := &fakeLedger{}
	absents := newAbsentRecorder()
	svc := NewLeaveService(ledger, absents, testClock())

	err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: 1,
		Kind:       leave.KindQuick,
	})
	require.NoError(t, err)

	require.Len(t, ledger.requests, 1)
	assert.Equal(t, "2026-03-14", ledger.requests[0].FromDate.Format("2006-01-02"))
	assert.Equal(t, "2026-03-14", ledger.requests[0].ToDate.Format("2006-01-02"))
	assert.Equal(t, DefaultLeaveReason, ledger.requests[0].Reason)

	assert.Equal(t, []string{"2026-03-14"}, absents.upserts)
	assert.Equal(t, DefaultLeaveReason, absents.reasons["2026-03-14"])
}

func TestApply_CustomRange(t *testing.T) {
	ledger := &fakeLedger{}
	absents := newAbsentRecorder()
	svc := NewLeaveService(ledger, absents, testClock())

	err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: 1,
		Kind:       leave.KindCustom,
		Reason:     "Wedding",
		FromDate:   "2026-03-20",
		ToDate:     "2026-03-22",
	})
	require.NoError(t, err)

	// One ledger row, one absence per day in the inclusive range.
	require.Len(t, ledger.requests, 1)
	assert.Equal(t, []string{"2026-03-20", "2026-03-21", "2026-03-22"}, absents.upserts)
	for _, day := range absents.upserts {
		assert.Equal(t, "Wedding", absents.reasons[day])
	}
}

func TestApply_SingleDayCustom(t *testing.T) {
	ledger := &fakeLedger{}
	absents := newAbsentRecorder()
	svc := NewLeaveService(ledger, absents, testClock())

	err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: 1,
		Kind:       leave.KindCustom,
		Reason:     "Errand",
		FromDate:   "2026-03-20",
		ToDate:     "2026-03-20",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-20"}, absents.upserts)
}

func TestApply_InvertedRangeRejected(t *testing.T) {
	ledger := &fakeLedger{}
	absents := newAbsentRecorder()
	svc := NewLeaveService(ledger, absents, testClock())

	err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: 1,
		Kind:       leave.KindCustom,
		Reason:     "Trip",
		FromDate:   "2026-03-22",
		ToDate:     "2026-03-20",
	})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "to_date")

	// Rejected before any write.
	assert.Empty(t, ledger.requests)
	assert.Empty(t, absents.upserts)
}

func TestApply_CustomRequiresReason(t *testing.T) {
	svc := NewLeaveService(&fakeLedger{}, newAbsentRecorder(), testClock())

	err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: 1,
		Kind:       leave.KindCustom,
		FromDate:   "2026-03-20",
		ToDate:     "2026-03-21",
	})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "reason")
}

func TestApply_PartialFailureNamesDate(t *testing.T) {
	ledger := &fakeLedger{}
	absents := newAbsentRecorder()
	absents.failDate = "2026-03-21"
	svc := NewLeaveService(ledger, absents, testClock())

	err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: 1,
		Kind:       leave.KindCustom,
		Reason:     "Trip",
		FromDate:   "2026-03-20",
		ToDate:     "2026-03-22",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "2026-03-21")

	// The ledger row and the day before the failure still stand.
	assert.Len(t, ledger.requests, 1)
	assert.Equal(t, []string{"2026-03-20"}, absents.upserts)
}

func TestTodayReason(t *testing.T) {
	ledger := &fakeLedger{}
	svc := NewLeaveService(ledger, newAbsentRecorder(), testClock())

	require.NoError(t, svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: 1,
		Kind:       leave.KindCustom,
		Reason:     "Conference",
		FromDate:   "2026-03-13",
		ToDate:     "2026-03-15",
	}))

	reason, err := svc.TodayReason(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, reason)
	assert.Equal(t, "Conference", *reason)

	reason, err = svc.TodayReason(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, reason)
}

func TestHistory_NewestFirst(t *testing.T) {
	ledger := &fakeLedger{}
	svc := NewLeaveService(ledger, newAbsentRecorder(), testClock())

	for _, day := range []string{"2026-03-01", "2026-03-05"} {
		require.NoError(t, svc.Apply(context.Background(), leave.ApplyRequest{
			EmployeeID: 1,
			Kind:       leave.KindCustom,
			Reason:     "r",
			FromDate:   day,
			ToDate:     day,
		}))
	}

	history, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2026-03-05", history[0].FromDate)
	assert.Equal(t, "2026-03-01", history[1].FromDate)
}

func TestDateRange_Inclusive(t *testing.T) {
	from := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC)

	var days []string
	err := leave.DateRange(from, to, func(day time.Time) error {
		days = append(days, day.Format("2006-01-02"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-20", "2026-03-21", "2026-03-22"}, days)
}

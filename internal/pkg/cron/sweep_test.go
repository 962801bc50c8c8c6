package cron

import (
	"context"
	"testing"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/attendance"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sweepRepo struct {
	unrecorded []int64
}

func (s *sweepRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}
func (s *sweepRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	return nil, nil
}
func (s *sweepRepo) SetTimeOut(ctx context.Context, id int64, timeOut time.Time, locationOut string) error {
	return nil
}
func (s *sweepRepo) UpsertAbsent(ctx context.Context, employeeID int64, date time.Time, reason string) error {
	return nil
}
func (s *sweepRepo) SetAuthMethod(ctx context.Context, employeeID int64, date time.Time, method string) error {
	return nil
}
func (s *sweepRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]attendance.Record, error) {
	return nil, nil
}
func (s *sweepRepo) ListUnrecorded(ctx context.Context, date time.Time) ([]int64, error) {
	return s.unrecorded, nil
}

type markCall struct {
	employeeID int64
	date       time.Time
	reason     string
}

type sweepService struct {
	calls []markCall
}

func (s *sweepService) RecordPunch(ctx context.Context, req attendance.PunchRequest) (attendance.PunchResult, error) {
	return attendance.PunchResult{}, nil
}
func (s *sweepService) MarkAbsent(ctx context.Context, employeeID int64, date time.Time, reason string) error {
	s.calls = append(s.calls, markCall{employeeID, date, reason})
	return nil
}
func (s *sweepService) History(ctx context.Context, employeeID int64) ([]attendance.RecordResponse, error) {
	return nil, nil
}

func TestAbsenceSweep(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	clk := clock.Fixed(time.Date(2026, 3, 14, 23, 55, 0, 0, ist))

	repo := &sweepRepo{unrecorded: []int64{3, 5}}
	svc := &sweepService{}
	sweep := NewAbsenceSweep(repo, svc, clk)

	require.NoError(t, sweep.Run(context.Background()))

	require.Len(t, svc.calls, 2)
	assert.Equal(t, int64(3), svc.calls[0].employeeID)
	assert.Equal(t, int64(5), svc.calls[1].employeeID)
	assert.Equal(t, "2026-03-14", svc.calls[0].date.Format("2006-01-02"))
	// Empty reason lets the absence engine apply its default.
	assert.Equal(t, "", svc.calls[0].reason)
}

func TestAbsenceSweep_NothingToDo(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	clk := clock.Fixed(time.Date(2026, 3, 14, 23, 55, 0, 0, ist))

	svc := &sweepService{}
	sweep := NewAbsenceSweep(&sweepRepo{}, svc, clk)

	require.NoError(t, sweep.Run(context.Background()))
	assert.Empty(t, svc.calls)
}

func TestScheduler_NextRunIsFuture(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	s := NewScheduler(ist)

	job := DailyJob{Name: "sweep", Hour: 23, Min: 55}
	next := s.nextRun(job)

	assert.True(t, next.After(time.Now()))
	assert.Equal(t, 23, next.Hour())
	assert.Equal(t, 55, next.Minute())
}

func TestScheduler_RunOnce(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	s := NewScheduler(ist)

	var ran int
	s.Register("job", 0, 0, func(ctx context.Context) error {
		ran++
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, 1, ran)
}

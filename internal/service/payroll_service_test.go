package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/manpower-erp-api/internal/models"
	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
)

func markDays(t *testing.T, s interface {
	MarkAttendance(time.Time, int, bool) (models.AttendanceRecord, error)
}, candidateID, days int, present bool) {
	t.Helper()
	for i := 0; i < days; i++ {
		_, err := s.MarkAttendance(testNow.AddDate(0, 0, i), candidateID, present)
		require.NoError(t, err)
	}
}

func TestNetSalary(t *testing.T) {
	assert.Equal(t, 1500.0, NetSalary(3000, 30, 15))
	assert.Zero(t, NetSalary(3000, 30, 0))
}

func TestPayrollCalculate(t *testing.T) {
	records := seededStore()
	markDays(t, records, 101, 15, true)
	markDays(t, records, 101, 4, false)
	markDays(t, records, 102, 10, true)

	resp, err := NewPayrollService(0, nil, zap.NewNop()).Calculate(records, PayrollRequest{CandidateID: 101, BasicSalary: 3000})

	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", resp.Name)
	assert.Equal(t, 15, resp.PresentDays)
	assert.Equal(t, 4, resp.AbsentDays)
	assert.Equal(t, 30, resp.DivisorDays)
	assert.Equal(t, 100.0, resp.DailyWage)
	assert.Equal(t, 1500.00, resp.NetSalary)
}

// Present days are counted across every recorded date, including repeats of the same day.
func TestPayrollCountsAllDatesAndDuplicates(t *testing.T) {
	records := seededStore()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		_, err := records.MarkAttendance(day, 103, true)
		require.NoError(t, err)
	}
	_, err := records.MarkAttendance(day.AddDate(1, 0, 0), 103, true)
	require.NoError(t, err)

	resp, err := NewPayrollService(30, nil, nil).Calculate(records, PayrollRequest{CandidateID: 103, BasicSalary: 3100})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.PresentDays)
	assert.Equal(t, 103.33, resp.DailyWage)
	assert.Equal(t, 310.0, resp.NetSalary)
}

func TestPayrollZeroPresentDays(t *testing.T) {
	resp, err := NewPayrollService(0, nil, nil).Calculate(seededStore(), PayrollRequest{CandidateID: 102, BasicSalary: 2500})

	require.NoError(t, err)
	assert.Zero(t, resp.PresentDays)
	assert.Zero(t, resp.NetSalary)
}

func TestPayrollUnknownCandidate(t *testing.T) {
	_, err := NewPayrollService(0, nil, nil).Calculate(seededStore(), PayrollRequest{CandidateID: 999, BasicSalary: 3000})

	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestPayrollRejectsNonPositiveSalary(t *testing.T) {
	svc := NewPayrollService(0, nil, nil)
	for _, salary := range []float64{0, -3000} {
		_, err := svc.Calculate(seededStore(), PayrollRequest{CandidateID: 101, BasicSalary: salary})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

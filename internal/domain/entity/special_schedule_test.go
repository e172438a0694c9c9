package entity

import (
	"testing"
	"time"

	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	windowStart = time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2026, time.March, 20, 23, 59, 59, 0, time.UTC)
)

func newTestSpecialSchedule(t *testing.T) *SpecialSchedule {
	t.Helper()

	schedule, err := NewSpecialSchedule(uuid.New(), SpecialScheduleInput{
		Title:     "Exam week",
		StartDate: windowStart,
		EndDate:   windowEnd,
	}, testNow)
	require.NoError(t, err)

	return schedule
}

func TestSpecialSchedule_AddTaskWindowBounds(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		wantErr bool
	}{
		{name: "at start", date: windowStart},
		{name: "at end", date: windowEnd},
		{name: "just before start", date: windowStart.Add(-time.Microsecond), wantErr: true},
		{name: "just after end", date: windowEnd.Add(time.Microsecond), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := newTestSpecialSchedule(t)

			_, err := schedule.AddTask(TaskInput{Date: tt.date, Description: "Revise"}, testNow)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
				assert.Zero(t, schedule.Tasks.Len())

				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, schedule.Tasks.Len())
		})
	}
}

func TestSpecialSchedule_UpdateTaskDateOutsideWindow(t *testing.T) {
	schedule := newTestSpecialSchedule(t)
	task, err := schedule.AddTask(TaskInput{Date: windowStart, Description: "Maths"}, testNow)
	require.NoError(t, err)

	outside := windowStart.Add(-time.Microsecond)
	_, err = schedule.UpdateTask(task.ID, TaskPatch{Date: &outside, Description: strPtr("Physics")}, testNow)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, windowStart, task.Date)
	assert.Equal(t, "Maths", task.Description)
}

func TestSpecialSchedule_RescheduleMustKeepTasks(t *testing.T) {
	schedule := newTestSpecialSchedule(t)
	_, err := schedule.AddTask(TaskInput{Date: windowStart, Description: "Maths"}, testNow)
	require.NoError(t, err)

	err = schedule.Reschedule(windowStart.Add(time.Microsecond), windowEnd, testNow)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, windowStart, schedule.StartDate)

	err = schedule.Reschedule(windowEnd, windowStart, testNow)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	earlier := windowStart.AddDate(0, 0, -2)
	require.NoError(t, schedule.Reschedule(earlier, windowEnd, testNow))
	assert.Equal(t, earlier, schedule.StartDate)
}

func TestSpecialSchedule_Overlaps(t *testing.T) {
	schedule := newTestSpecialSchedule(t)

	assert.True(t, schedule.Overlaps(windowEnd, windowEnd.AddDate(0, 0, 3)))
	assert.True(t, schedule.Overlaps(windowStart.AddDate(0, 0, -3), windowStart))
	assert.False(t, schedule.Overlaps(windowEnd.Add(time.Second), windowEnd.AddDate(0, 0, 3)))
}

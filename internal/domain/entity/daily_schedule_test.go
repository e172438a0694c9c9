package entity

import (
	"testing"
	"time"

	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

func newTestDay(t *testing.T) *DailySchedule {
	t.Helper()

	day := NewDailySchedule(uuid.New(), time.Date(2026, time.March, 11, 15, 0, 0, 0, time.UTC), testNow)
	require.NoError(t, day.ReplaceSlots([]TimeSlotInput{
		{StartTime: "09:00", EndTime: "10:00", Description: "Deep work", Status: SlotStatusCompleted},
		{StartTime: "10:30", EndTime: "11:00", Description: "Email"},
	}, testNow))

	return day
}

func TestDailySchedule_ReplaceSlots_UnknownIDIsNotAdopted(t *testing.T) {
	day := NewDailySchedule(uuid.New(), testNow, testNow)
	foreign := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	require.NoError(t, day.ReplaceSlots([]TimeSlotInput{
		{ID: foreign, StartTime: "08:00", EndTime: "09:00", Description: "Run"},
	}, testNow))

	slots := day.TimeSlots.Items()
	require.Len(t, slots, 1)
	assert.NotEqual(t, foreign, slots[0].ID)
	assert.NotEqual(t, uuid.Nil, slots[0].ID)
	assert.False(t, day.TimeSlots.Contains(foreign))
}

func TestDailySchedule_ReplaceSlots_KeepsKnownIDs(t *testing.T) {
	day := newTestDay(t)
	before := day.TimeSlots.Items()
	completedAt := before[0].CompletedAt
	require.NotNil(t, completedAt)

	later := testNow.Add(time.Hour)
	require.NoError(t, day.ReplaceSlots([]TimeSlotInput{
		{StartTime: "07:00", EndTime: "07:30", Description: "Breakfast"},
		{ID: before[0].ID, StartTime: "09:00", EndTime: "10:30", Description: "Deep work", Status: SlotStatusCompleted},
	}, later))

	after := day.TimeSlots.Items()
	require.Len(t, after, 2)
	assert.NotEqual(t, before[1].ID, after[0].ID)
	assert.Equal(t, before[0].ID, after[1].ID)
	assert.Equal(t, 2, after[1].Order)
	assert.Equal(t, *completedAt, *after[1].CompletedAt)
	assert.Equal(t, later, day.UpdatedAt)
}

func TestDailySchedule_ReplaceSlots_RejectsInvertedSlot(t *testing.T) {
	day := newTestDay(t)
	before := day.TimeSlots.Items()

	err := day.ReplaceSlots([]TimeSlotInput{{StartTime: "11:00", EndTime: "11:00", Description: "Nothing"}}, testNow)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, before, day.TimeSlots.Items())
}

func TestDailySchedule_SetSlotStatus(t *testing.T) {
	day := newTestDay(t)
	slot := day.TimeSlots.Items()[1]

	_, err := day.SetSlotStatus(slot.ID, SlotStatusCompleted, testNow)
	require.NoError(t, err)
	require.NotNil(t, slot.CompletedAt)

	_, err = day.SetSlotStatus(slot.ID, SlotStatusPending, testNow)
	require.NoError(t, err)
	assert.Nil(t, slot.CompletedAt)

	_, err = day.SetSlotStatus(slot.ID, "skipped", testNow)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

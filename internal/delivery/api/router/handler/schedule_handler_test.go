package handler

import (
	"net/http"
	"testing"
	"time"

	"lifeos/internal/domain/entity"
	mockUsecase "lifeos/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scheduleMocks struct {
	special   *mockUsecase.MockSpecialScheduleUsecase
	timetable *mockUsecase.MockTimetableUsecase
}

func newTestScheduleHandler(t *testing.T) (*ScheduleHandler, scheduleMocks) {
	m := scheduleMocks{
		special:   mockUsecase.NewMockSpecialScheduleUsecase(t),
		timetable: mockUsecase.NewMockTimetableUsecase(t),
	}

	return NewScheduleHandler(ScheduleHandlerParams{
		SpecialScheduleUC: m.special,
		TimetableUC:       m.timetable,
		Logger:            newDiscardLogger(),
	}), m
}

func TestScheduleHandler_ReplaceTimetableDay(t *testing.T) {
	h, m := newTestScheduleHandler(t)
	day := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)
	keptID := uuid.New()

	c, rec := newTestContext(http.MethodPut, "/api/v1/timetable/2026-03-11", `{"timeSlots":[
		{"id":"`+keptID.String()+`","startTime":"09:00","endTime":"10:00","description":"Deep work","status":"completed"},
		{"startTime":"10:30","endTime":"11:00","description":"Email","isRecurring":true,
		 "recurrencePattern":{"frequency":"weekly","daysOfWeek":[1,3]}}
	]}`)
	withParams(c, "date", "2026-03-11")
	ownerID := authenticate(c)

	m.timetable.EXPECT().
		ReplaceDay(mock.Anything, ownerID, day, mock.MatchedBy(func(slots []entity.TimeSlotInput) bool {
			return len(slots) == 2 &&
				slots[0].ID == keptID && slots[0].Status == entity.SlotStatusCompleted &&
				slots[1].ID == uuid.Nil && slots[1].RecurrencePattern != nil &&
				slots[1].RecurrencePattern.Frequency == entity.RecurrenceFrequency("weekly")
		})).
		Return(&entity.DailySchedule{Aggregate: entity.Aggregate{ID: uuid.New(), OwnerID: ownerID, Version: 2}, Date: day}, nil)

	require.NoError(t, h.ReplaceTimetableDay(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":2`)
}

func TestScheduleHandler_ReplaceTimetableDay_BadDate(t *testing.T) {
	h, _ := newTestScheduleHandler(t)

	c, rec := newTestContext(http.MethodPut, "/api/v1/timetable/2026-13-40", `{"timeSlots":[]}`)
	withParams(c, "date", "2026-13-40")
	authenticate(c)

	require.NoError(t, h.ReplaceTimetableDay(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestScheduleHandler_TimetableRange_RequiresBothBounds(t *testing.T) {
	h, _ := newTestScheduleHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/timetable?startDate=2026-03-01", "")
	authenticate(c)

	require.NoError(t, h.TimetableRange(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleHandler_SetSlotStatus_RejectsUnknownStatus(t *testing.T) {
	h, _ := newTestScheduleHandler(t)
	slotID := uuid.New()

	c, rec := newTestContext(http.MethodPatch, "/api/v1/timetable/2026-03-11/slots/"+slotID.String(), `{"status":"skipped"}`)
	withParams(c, "date", "2026-03-11", "slotId", slotID.String())
	authenticate(c)

	require.NoError(t, h.SetSlotStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
}

func TestScheduleHandler_CreateSpecialSchedule(t *testing.T) {
	h, m := newTestScheduleHandler(t)
	start := time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)

	c, rec := newTestContext(http.MethodPost, "/api/v1/special-schedules",
		`{"title":"Exam week","startDate":"2026-03-16","endDate":"2026-03-20","tasks":[{"date":"2026-03-18","description":"Maths"}]}`)
	ownerID := authenticate(c)

	m.special.EXPECT().
		Create(mock.Anything, ownerID, mock.MatchedBy(func(in entity.SpecialScheduleInput) bool {
			return in.Title == "Exam week" && in.StartDate.Equal(start) && in.EndDate.Equal(end) && len(in.Tasks) == 1
		})).
		Return(&entity.SpecialSchedule{Aggregate: entity.Aggregate{ID: uuid.New()}, Title: "Exam week"}, nil)

	require.NoError(t, h.CreateSpecialSchedule(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestScheduleHandler_ListSpecialSchedules_EndDateCoversWholeDay(t *testing.T) {
	h, m := newTestScheduleHandler(t)
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	lastInstant := time.Date(2026, time.March, 20, 23, 59, 59, 999999999, time.UTC)

	c, rec := newTestContext(http.MethodGet, "/api/v1/special-schedules?startDate=2026-03-01&endDate=2026-03-20", "")
	ownerID := authenticate(c)

	m.special.EXPECT().
		List(mock.Anything, ownerID,
			mock.MatchedBy(func(got *time.Time) bool { return got != nil && got.Equal(from) }),
			mock.MatchedBy(func(got *time.Time) bool { return got != nil && got.Equal(lastInstant) })).
		Return([]*entity.SpecialSchedule{}, nil)

	require.NoError(t, h.ListSpecialSchedules(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScheduleHandler_ListSpecialSchedules_NoBounds(t *testing.T) {
	h, m := newTestScheduleHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/special-schedules", "")
	ownerID := authenticate(c)

	m.special.EXPECT().List(mock.Anything, ownerID, (*time.Time)(nil), (*time.Time)(nil)).Return(nil, nil)

	require.NoError(t, h.ListSpecialSchedules(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

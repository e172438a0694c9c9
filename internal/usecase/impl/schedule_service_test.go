package impl

import (
	"context"
	"testing"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	mockRepo "lifeos/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSpecialScheduleService(t *testing.T) (*specialScheduleService, *mockRepo.MockSpecialScheduleRepository) {
	repo := mockRepo.NewMockSpecialScheduleRepository(t)
	srv := NewSpecialScheduleService(repo, newDiscardLogger()).(*specialScheduleService)
	srv.now = fixedClock

	return srv, repo
}

func newTestTimetableService(t *testing.T) (*timetableService, *mockRepo.MockDailyScheduleRepository) {
	repo := mockRepo.NewMockDailyScheduleRepository(t)
	srv := NewTimetableService(repo, newDiscardLogger()).(*timetableService)
	srv.now = fixedClock

	return srv, repo
}

func examWeek(t *testing.T, ownerID uuid.UUID) *entity.SpecialSchedule {
	t.Helper()

	schedule, err := entity.NewSpecialSchedule(ownerID, entity.SpecialScheduleInput{
		Title:     "Exam week",
		StartDate: time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 20, 23, 59, 59, 0, time.UTC),
	}, testNow)
	require.NoError(t, err)

	return schedule
}

func TestSpecialScheduleService_List_RejectsInvertedRange(t *testing.T) {
	srv, _ := newTestSpecialScheduleService(t)
	from := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	_, err := srv.List(context.Background(), uuid.New(), &from, &to)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSpecialScheduleService_AddTask_OnWindowBound(t *testing.T) {
	srv, repo := newTestSpecialScheduleService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	schedule := examWeek(t, ownerID)

	repo.EXPECT().Load(ctx, ownerID, schedule.ID).Return(schedule, nil)
	repo.EXPECT().Save(ctx, schedule).Return(nil)

	got, err := srv.AddTask(ctx, ownerID, schedule.ID, entity.TaskInput{Date: schedule.EndDate, Description: "Final exam"})

	require.NoError(t, err)
	assert.Equal(t, 1, got.Tasks.Len())
}

func TestSpecialScheduleService_AddTask_OutsideWindow(t *testing.T) {
	srv, repo := newTestSpecialScheduleService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	schedule := examWeek(t, ownerID)

	repo.EXPECT().Load(ctx, ownerID, schedule.ID).Return(schedule, nil)

	_, err := srv.AddTask(ctx, ownerID, schedule.ID, entity.TaskInput{
		Date:        schedule.EndDate.Add(time.Microsecond),
		Description: "Too late",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Zero(t, schedule.Tasks.Len())
}

func TestSpecialScheduleService_Update_WindowMustKeepTasks(t *testing.T) {
	srv, repo := newTestSpecialScheduleService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	schedule := examWeek(t, ownerID)
	_, err := schedule.AddTask(entity.TaskInput{Date: schedule.EndDate, Description: "Final exam"}, testNow)
	require.NoError(t, err)

	repo.EXPECT().Load(ctx, ownerID, schedule.ID).Return(schedule, nil)

	shorter := schedule.EndDate.AddDate(0, 0, -1)
	_, err = srv.Update(ctx, ownerID, schedule.ID, entity.SpecialSchedulePatch{EndDate: &shorter})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestTimetableService_ReplaceDay_CreatesMissingDay(t *testing.T) {
	srv, repo := newTestTimetableService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	day := time.Date(2026, time.March, 11, 15, 0, 0, 0, time.UTC)
	midnight := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().FindByDay(ctx, ownerID, midnight).Return(nil, domainerrors.NotFound("daily schedule"))
	repo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.DailySchedule")).
		RunAndReturn(func(_ context.Context, s *entity.DailySchedule) (*entity.DailySchedule, error) {
			s.Version = 1

			return s, nil
		})

	got, err := srv.ReplaceDay(ctx, ownerID, day, []entity.TimeSlotInput{
		{StartTime: "09:00", EndTime: "10:00", Description: "Deep work"},
		{StartTime: "10:30", EndTime: "11:00", Description: "Email"},
	})

	require.NoError(t, err)
	assert.Equal(t, midnight, got.Date)
	assert.Equal(t, 2, got.TimeSlots.Len())
	assert.Equal(t, int64(1), got.Version)
}

func TestTimetableService_SetSlotStatus_UnknownDay(t *testing.T) {
	srv, repo := newTestTimetableService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	day := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().FindByDay(ctx, ownerID, day).Return(nil, domainerrors.NotFound("daily schedule"))

	_, err := srv.SetSlotStatus(ctx, ownerID, day, uuid.New(), entity.SlotStatusCompleted)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTimetableService_Range_Validation(t *testing.T) {
	srv, _ := newTestTimetableService(t)
	ctx := context.Background()
	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := srv.Range(ctx, uuid.New(), from, time.Time{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Range(ctx, uuid.New(), from, from.AddDate(2, 0, 0))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lifeos/internal/delivery/context"
	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/domain/repository"
	"lifeos/internal/errors"
	"lifeos/internal/usecase"
	"lifeos/internal/util"

	"github.com/google/uuid"
)

// specialScheduleService implements the SpecialScheduleUsecase interface.
type specialScheduleService struct {
	scheduleRepo repository.SpecialScheduleRepository
	now          func() time.Time
	logger       *slog.Logger
}

// NewSpecialScheduleService is the constructor for specialScheduleService.
func NewSpecialScheduleService(scheduleRepo repository.SpecialScheduleRepository, logger *slog.Logger) usecase.SpecialScheduleUsecase {
	return &specialScheduleService{
		scheduleRepo: scheduleRepo,
		now:          time.Now,
		logger:       logger,
	}
}

func (srv *specialScheduleService) List(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]*entity.SpecialSchedule, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := checkRange(from, to); err != nil {
		return nil, err
	}

	schedules, err := srv.scheduleRepo.List(ctx, ownerID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list special schedules")
	}

	return schedules, nil
}

func (srv *specialScheduleService) Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.SpecialSchedule, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	schedule, err := srv.scheduleRepo.Load(ctx, ownerID, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load special schedule")
	}

	return schedule, nil
}

func (srv *specialScheduleService) Create(ctx context.Context, ownerID uuid.UUID, input entity.SpecialScheduleInput) (*entity.SpecialSchedule, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	schedule, err := entity.NewSpecialSchedule(ownerID, input, srv.now())
	if err != nil {
		return nil, err
	}
	if err := srv.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, errors.Wrap(err, "failed to create special schedule")
	}

	return schedule, nil
}

func (srv *specialScheduleService) Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.SpecialSchedulePatch) (*entity.SpecialSchedule, error) {
	return srv.change(ctx, ownerID, id, "update special schedule", func(s *entity.SpecialSchedule) error {
		return s.Apply(patch, srv.now())
	})
}

func (srv *specialScheduleService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}

	if err := srv.scheduleRepo.Delete(ctx, ownerID, id); err != nil {
		return errors.Wrap(err, "failed to delete special schedule")
	}

	return nil
}

func (srv *specialScheduleService) AddTask(ctx context.Context, ownerID, id uuid.UUID, input entity.TaskInput) (*entity.SpecialSchedule, error) {
	return srv.change(ctx, ownerID, id, "add task", func(s *entity.SpecialSchedule) error {
		_, err := s.AddTask(input, srv.now())

		return err
	})
}

func (srv *specialScheduleService) UpdateTask(ctx context.Context, ownerID, id, taskID uuid.UUID, patch entity.TaskPatch) (*entity.SpecialSchedule, error) {
	return srv.change(ctx, ownerID, id, "update task", func(s *entity.SpecialSchedule) error {
		_, err := s.UpdateTask(taskID, patch, srv.now())

		return err
	})
}

func (srv *specialScheduleService) RemoveTask(ctx context.Context, ownerID, id, taskID uuid.UUID) (*entity.SpecialSchedule, error) {
	return srv.change(ctx, ownerID, id, "remove task", func(s *entity.SpecialSchedule) error {
		return s.RemoveTask(taskID, srv.now())
	})
}

func (srv *specialScheduleService) change(ctx context.Context, ownerID, id uuid.UUID, action string, fn func(*entity.SpecialSchedule) error) (*entity.SpecialSchedule, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	schedule, err := mutate(ctx,
		func(ctx context.Context) (*entity.SpecialSchedule, error) {
			return srv.scheduleRepo.Load(ctx, ownerID, id)
		},
		fn,
		srv.scheduleRepo.Save,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s", action)
	}

	return schedule, nil
}

// maxTimetableRangeDays bounds a single timetable range read.
const maxTimetableRangeDays = 366

// timetableService implements the TimetableUsecase interface.
type timetableService struct {
	dailyRepo repository.DailyScheduleRepository
	now       func() time.Time
	logger    *slog.Logger
}

// NewTimetableService is the constructor for timetableService.
func NewTimetableService(dailyRepo repository.DailyScheduleRepository, logger *slog.Logger) usecase.TimetableUsecase {
	return &timetableService{
		dailyRepo: dailyRepo,
		now:       time.Now,
		logger:    logger,
	}
}

func (srv *timetableService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *timetableService) Range(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.DailySchedule, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if from.IsZero() || to.IsZero() {
		return nil, domainerrors.Validationf("startDate and endDate are required")
	}
	from, to = util.StartOfDay(from), util.StartOfDay(to)
	if err := checkRange(&from, &to); err != nil {
		return nil, err
	}
	if to.Sub(from) > maxTimetableRangeDays*24*time.Hour {
		return nil, domainerrors.Validationf("date range cannot span more than %d days", maxTimetableRangeDays)
	}

	days, err := srv.dailyRepo.FindRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list daily schedules")
	}

	return days, nil
}

func (srv *timetableService) Day(ctx context.Context, ownerID uuid.UUID, day time.Time) (*entity.DailySchedule, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	schedule, err := srv.dailyRepo.LoadOrCreate(ctx, ownerID, util.StartOfDay(day))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load daily schedule")
	}

	return schedule, nil
}

// ReplaceDay writes the whole day in one upsert. Concurrent replacements of
// the same day resolve to the last writer.
func (srv *timetableService) ReplaceDay(ctx context.Context, ownerID uuid.UUID, day time.Time, slots []entity.TimeSlotInput) (*entity.DailySchedule, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	day = util.StartOfDay(day)

	schedule, err := srv.dailyRepo.FindByDay(ctx, ownerID, day)
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		schedule = entity.NewDailySchedule(ownerID, day, srv.now())
	case err != nil:
		return nil, errors.Wrap(err, "failed to find daily schedule")
	}

	if err := schedule.ReplaceSlots(slots, srv.now()); err != nil {
		return nil, err
	}

	stored, err := srv.dailyRepo.Upsert(ctx, schedule)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store daily schedule")
	}

	srv.log(ctx).Debug("Daily schedule replaced", slog.String("day", stored.DayKey()), slog.Int("slots", stored.TimeSlots.Len()))

	return stored, nil
}

func (srv *timetableService) SetSlotStatus(ctx context.Context, ownerID uuid.UUID, day time.Time, slotID uuid.UUID, status entity.SlotStatus) (*entity.DailySchedule, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	schedule, err := mutate(ctx,
		func(ctx context.Context) (*entity.DailySchedule, error) {
			return srv.dailyRepo.FindByDay(ctx, ownerID, util.StartOfDay(day))
		},
		func(s *entity.DailySchedule) error {
			_, err := s.SetSlotStatus(slotID, status, srv.now())

			return err
		},
		srv.dailyRepo.Save,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set slot status")
	}

	return schedule, nil
}

func (srv *timetableService) DeleteDay(ctx context.Context, ownerID uuid.UUID, day time.Time) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}

	if err := srv.dailyRepo.DeleteByDay(ctx, ownerID, util.StartOfDay(day)); err != nil {
		return errors.Wrap(err, "failed to delete daily schedule")
	}

	return nil
}

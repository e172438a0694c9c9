package usecase

import (
	"context"
	"time"

	"lifeos/internal/domain/entity"

	"github.com/google/uuid"
)

// SpecialScheduleUsecase manages dated windows and their tasks.
type SpecialScheduleUsecase interface {
	// List returns schedules overlapping [from, to]; either bound may be nil.
	List(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]*entity.SpecialSchedule, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.SpecialSchedule, error)
	Create(ctx context.Context, ownerID uuid.UUID, input entity.SpecialScheduleInput) (*entity.SpecialSchedule, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.SpecialSchedulePatch) (*entity.SpecialSchedule, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	AddTask(ctx context.Context, ownerID, id uuid.UUID, input entity.TaskInput) (*entity.SpecialSchedule, error)
	UpdateTask(ctx context.Context, ownerID, id, taskID uuid.UUID, patch entity.TaskPatch) (*entity.SpecialSchedule, error)
	RemoveTask(ctx context.Context, ownerID, id, taskID uuid.UUID) (*entity.SpecialSchedule, error)
}

// TimetableUsecase manages the daily time-tables, one per calendar day.
type TimetableUsecase interface {
	// Range returns the stored days in [from, to], both inclusive.
	Range(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.DailySchedule, error)
	// Day returns the day's schedule, creating an empty one on first access.
	Day(ctx context.Context, ownerID uuid.UUID, day time.Time) (*entity.DailySchedule, error)
	// ReplaceDay overwrites the whole slot list of the day.
	ReplaceDay(ctx context.Context, ownerID uuid.UUID, day time.Time, slots []entity.TimeSlotInput) (*entity.DailySchedule, error)
	SetSlotStatus(ctx context.Context, ownerID uuid.UUID, day time.Time, slotID uuid.UUID, status entity.SlotStatus) (*entity.DailySchedule, error)
	DeleteDay(ctx context.Context, ownerID uuid.UUID, day time.Time) error
}

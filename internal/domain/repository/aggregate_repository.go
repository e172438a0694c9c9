package repository

import (
	"context"
	"time"

	"lifeos/internal/domain/entity"

	"github.com/google/uuid"
)

// Aggregate repositories persist each root as one document. Every read is
// owner-scoped; a document owned by someone else is reported exactly like a
// missing one (domainerrors.ErrNotFound). Save writes the whole document
// atomically and fails with domainerrors.ErrConflict when the stored version
// moved since the aggregate was loaded. Store failures surface as
// *domainerrors.StorageError.

// ChallengeRepository persists challenges. Soft-deleted challenges are
// invisible to List and Load.
type ChallengeRepository interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Challenge, error)
	Load(ctx context.Context, ownerID, id uuid.UUID) (*entity.Challenge, error)
	Create(ctx context.Context, challenge *entity.Challenge) error
	Save(ctx context.Context, challenge *entity.Challenge) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

// StudyStructureRepository persists the per-owner singleton study structure.
type StudyStructureRepository interface {
	// LoadOrCreate returns the owner's structure, atomically creating an
	// empty one on first access.
	LoadOrCreate(ctx context.Context, ownerID uuid.UUID) (*entity.StudyStructure, error)
	Save(ctx context.Context, structure *entity.StudyStructure) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

// FestivalRepository persists festival bucket-lists.
type FestivalRepository interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Festival, error)
	Load(ctx context.Context, ownerID, id uuid.UUID) (*entity.Festival, error)
	Create(ctx context.Context, festival *entity.Festival) error
	Save(ctx context.Context, festival *entity.Festival) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

// SpecialScheduleRepository persists special schedules.
type SpecialScheduleRepository interface {
	// List returns schedules overlapping [from, to] (either bound optional),
	// sorted by start date.
	List(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]*entity.SpecialSchedule, error)
	Load(ctx context.Context, ownerID, id uuid.UUID) (*entity.SpecialSchedule, error)
	Create(ctx context.Context, schedule *entity.SpecialSchedule) error
	Save(ctx context.Context, schedule *entity.SpecialSchedule) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

// DailyScheduleRepository persists day time-tables, unique per owner and day.
type DailyScheduleRepository interface {
	// FindRange returns the schedules of days in [from, to], sorted by day.
	FindRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.DailySchedule, error)
	// FindByDay returns domainerrors.ErrNotFound when the day has no schedule.
	FindByDay(ctx context.Context, ownerID uuid.UUID, day time.Time) (*entity.DailySchedule, error)
	// LoadOrCreate returns the day's schedule, atomically creating an empty
	// one on first access.
	LoadOrCreate(ctx context.Context, ownerID uuid.UUID, day time.Time) (*entity.DailySchedule, error)
	Save(ctx context.Context, schedule *entity.DailySchedule) error
	// Upsert writes the schedule keyed by owner and day, replacing the stored
	// slots wholesale, and returns the stored document.
	Upsert(ctx context.Context, schedule *entity.DailySchedule) (*entity.DailySchedule, error)
	DeleteByDay(ctx context.Context, ownerID uuid.UUID, day time.Time) error
	Count(ctx context.Context, ownerID uuid.UUID) (int64, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

package postgres

import (
	"context"
	"time"

	"lifeos/internal/domain/entity"
	"lifeos/internal/domain/repository"
	"lifeos/internal/infra/metrics"
	"lifeos/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const studyStructureKey = "study"

// challengeRepository implements repository.ChallengeRepository on the document store.
type challengeRepository struct {
	store *documentStore[entity.Challenge, *entity.Challenge]
}

// NewChallengeRepository is the constructor for challengeRepository.
func NewChallengeRepository(db *gorm.DB, m *metrics.Metrics) repository.ChallengeRepository {
	return &challengeRepository{
		store: newDocumentStore(db, m, kindChallenge, "challenge", func(c *entity.Challenge) documentIndex {
			return documentIndex{
				Name:       c.Name,
				RangeStart: c.StartDate,
				RangeEnd:   c.EndDate,
				Deleted:    c.IsDeleted,
			}
		}),
	}
}

func (repo *challengeRepository) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Challenge, error) {
	return repo.store.list(ctx, ownerID, "created_at DESC")
}

func (repo *challengeRepository) Load(ctx context.Context, ownerID, id uuid.UUID) (*entity.Challenge, error) {
	return repo.store.load(ctx, ownerID, id)
}

func (repo *challengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	return repo.store.create(ctx, challenge)
}

func (repo *challengeRepository) Save(ctx context.Context, challenge *entity.Challenge) error {
	return repo.store.save(ctx, challenge)
}

func (repo *challengeRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return repo.store.deleteByOwner(ctx, ownerID)
}

// studyStructureRepository implements repository.StudyStructureRepository.
// Each owner has exactly one structure, keyed by a constant natural key.
type studyStructureRepository struct {
	store *documentStore[entity.StudyStructure, *entity.StudyStructure]
}

// NewStudyStructureRepository is the constructor for studyStructureRepository.
func NewStudyStructureRepository(db *gorm.DB, m *metrics.Metrics) repository.StudyStructureRepository {
	return &studyStructureRepository{
		store: newDocumentStore(db, m, kindStudyStructure, "study structure", func(*entity.StudyStructure) documentIndex {
			return documentIndex{NaturalKey: stringPtr(studyStructureKey)}
		}),
	}
}

func (repo *studyStructureRepository) LoadOrCreate(ctx context.Context, ownerID uuid.UUID) (*entity.StudyStructure, error) {
	return repo.store.loadOrCreate(ctx, ownerID, studyStructureKey, func() *entity.StudyStructure {
		return entity.NewStudyStructure(ownerID, time.Now())
	})
}

func (repo *studyStructureRepository) Save(ctx context.Context, structure *entity.StudyStructure) error {
	return repo.store.save(ctx, structure)
}

func (repo *studyStructureRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return repo.store.deleteByOwner(ctx, ownerID)
}

// festivalRepository implements repository.FestivalRepository.
type festivalRepository struct {
	store *documentStore[entity.Festival, *entity.Festival]
}

// NewFestivalRepository is the constructor for festivalRepository.
func NewFestivalRepository(db *gorm.DB, m *metrics.Metrics) repository.FestivalRepository {
	return &festivalRepository{
		store: newDocumentStore(db, m, kindFestival, "festival", func(f *entity.Festival) documentIndex {
			return documentIndex{Name: f.Name}
		}),
	}
}

func (repo *festivalRepository) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Festival, error) {
	return repo.store.list(ctx, ownerID, "created_at DESC")
}

func (repo *festivalRepository) Load(ctx context.Context, ownerID, id uuid.UUID) (*entity.Festival, error) {
	return repo.store.load(ctx, ownerID, id)
}

func (repo *festivalRepository) Create(ctx context.Context, festival *entity.Festival) error {
	return repo.store.create(ctx, festival)
}

func (repo *festivalRepository) Save(ctx context.Context, festival *entity.Festival) error {
	return repo.store.save(ctx, festival)
}

func (repo *festivalRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return repo.store.delete(ctx, ownerID, "id = ?", id)
}

func (repo *festivalRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return repo.store.deleteByOwner(ctx, ownerID)
}

// specialScheduleRepository implements repository.SpecialScheduleRepository.
// The window is projected into range_start and range_end.
type specialScheduleRepository struct {
	store *documentStore[entity.SpecialSchedule, *entity.SpecialSchedule]
}

// NewSpecialScheduleRepository is the constructor for specialScheduleRepository.
func NewSpecialScheduleRepository(db *gorm.DB, m *metrics.Metrics) repository.SpecialScheduleRepository {
	return &specialScheduleRepository{
		store: newDocumentStore(db, m, kindSpecialSchedule, "special schedule", func(s *entity.SpecialSchedule) documentIndex {
			return documentIndex{
				Name:       s.Title,
				RangeStart: timePtr(s.StartDate),
				RangeEnd:   timePtr(s.EndDate),
			}
		}),
	}
}

func (repo *specialScheduleRepository) List(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]*entity.SpecialSchedule, error) {
	return repo.store.list(ctx, ownerID, "range_start ASC", func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where("range_end >= ?", from.UTC())
		}
		if to != nil {
			db = db.Where("range_start <= ?", to.UTC())
		}

		return db
	})
}

func (repo *specialScheduleRepository) Load(ctx context.Context, ownerID, id uuid.UUID) (*entity.SpecialSchedule, error) {
	return repo.store.load(ctx, ownerID, id)
}

func (repo *specialScheduleRepository) Create(ctx context.Context, schedule *entity.SpecialSchedule) error {
	return repo.store.create(ctx, schedule)
}

func (repo *specialScheduleRepository) Save(ctx context.Context, schedule *entity.SpecialSchedule) error {
	return repo.store.save(ctx, schedule)
}

func (repo *specialScheduleRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return repo.store.delete(ctx, ownerID, "id = ?", id)
}

func (repo *specialScheduleRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return repo.store.deleteByOwner(ctx, ownerID)
}

// dailyScheduleRepository implements repository.DailyScheduleRepository.
// The calendar day is both the natural key and the range columns.
type dailyScheduleRepository struct {
	store *documentStore[entity.DailySchedule, *entity.DailySchedule]
}

// NewDailyScheduleRepository is the constructor for dailyScheduleRepository.
func NewDailyScheduleRepository(db *gorm.DB, m *metrics.Metrics) repository.DailyScheduleRepository {
	return &dailyScheduleRepository{
		store: newDocumentStore(db, m, kindDailySchedule, "daily schedule", func(d *entity.DailySchedule) documentIndex {
			day := util.StartOfDay(d.Date)

			return documentIndex{
				NaturalKey: stringPtr(d.DayKey()),
				RangeStart: timePtr(day),
				RangeEnd:   timePtr(day),
			}
		}),
	}
}

func (repo *dailyScheduleRepository) FindRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.DailySchedule, error) {
	return repo.store.list(ctx, ownerID, "range_start ASC", func(db *gorm.DB) *gorm.DB {
		return db.Where("range_start >= ? AND range_start <= ?", util.StartOfDay(from), util.StartOfDay(to))
	})
}

func (repo *dailyScheduleRepository) FindByDay(ctx context.Context, ownerID uuid.UUID, day time.Time) (*entity.DailySchedule, error) {
	return repo.store.findByKey(ctx, ownerID, util.FormatDay(day))
}

func (repo *dailyScheduleRepository) LoadOrCreate(ctx context.Context, ownerID uuid.UUID, day time.Time) (*entity.DailySchedule, error) {
	return repo.store.loadOrCreate(ctx, ownerID, util.FormatDay(day), func() *entity.DailySchedule {
		return entity.NewDailySchedule(ownerID, day, time.Now())
	})
}

func (repo *dailyScheduleRepository) Save(ctx context.Context, schedule *entity.DailySchedule) error {
	return repo.store.save(ctx, schedule)
}

func (repo *dailyScheduleRepository) Upsert(ctx context.Context, schedule *entity.DailySchedule) (*entity.DailySchedule, error) {
	return repo.store.upsert(ctx, schedule)
}

func (repo *dailyScheduleRepository) DeleteByDay(ctx context.Context, ownerID uuid.UUID, day time.Time) error {
	return repo.store.delete(ctx, ownerID, "natural_key = ?", util.FormatDay(day))
}

func (repo *dailyScheduleRepository) Count(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	return repo.store.count(ctx, ownerID)
}

func (repo *dailyScheduleRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return repo.store.deleteByOwner(ctx, ownerID)
}

package postgres

import (
	"context"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/domain/repository"
	"lifeos/internal/infra/persistence/model"
	"lifeos/internal/util"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type diaryRepository struct {
	db *gorm.DB
}

// NewDiaryRepository is the constructor for diaryRepository.
func NewDiaryRepository(db *gorm.DB) repository.DiaryRepository {
	return &diaryRepository{db: db}
}

func (repo *diaryRepository) List(ctx context.Context, ownerID uuid.UUID, query entity.DiaryQuery) ([]*entity.DiaryEntry, int64, error) {
	base := repo.owned(ctx, ownerID).Clauses(dbresolver.Read)
	if query.From != nil {
		base = base.Where("date >= ?", query.From.UTC())
	}
	if query.To != nil {
		base = base.Where("date <= ?", query.To.UTC())
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewStorageError(err, "failed to count diary entries")
	}

	var rows []model.DiaryModel
	err := base.Session(&gorm.Session{}).
		Order("date DESC").
		Order("created_at DESC").
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, domainerrors.NewStorageError(err, "failed to list diary entries")
	}

	entries := make([]*entity.DiaryEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, toDiaryDomain(&rows[i]))
	}

	return entries, total, nil
}

func (repo *diaryRepository) FindByDay(ctx context.Context, ownerID uuid.UUID, day time.Time) (*entity.DiaryEntry, error) {
	var entryM model.DiaryModel
	err := repo.owned(ctx, ownerID).
		Clauses(dbresolver.Write).
		Where("date >= ? AND date <= ?", util.StartOfDay(day), util.EndOfDay(day)).
		Order("date DESC").
		Take(&entryM).Error
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.NotFound("diary entry")
		}

		return nil, domainerrors.NewStorageError(err, "failed to find diary entry")
	}

	return toDiaryDomain(&entryM), nil
}

func (repo *diaryRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.DiaryEntry, error) {
	var entryM model.DiaryModel
	if err := repo.owned(ctx, ownerID).Clauses(dbresolver.Write).Where("id = ?", id).Take(&entryM).Error; err != nil {
		if isNotFound(err) {
			return nil, domainerrors.NotFound("diary entry")
		}

		return nil, domainerrors.NewStorageError(err, "failed to find diary entry")
	}

	return toDiaryDomain(&entryM), nil
}

func (repo *diaryRepository) Create(ctx context.Context, entry *entity.DiaryEntry) error {
	if err := repo.db.WithContext(ctx).Create(fromDiaryDomain(entry)).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to create diary entry")
	}

	return nil
}

func (repo *diaryRepository) Update(ctx context.Context, entry *entity.DiaryEntry) error {
	entryM := fromDiaryDomain(entry)
	result := repo.owned(ctx, entry.OwnerID).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"date":        entryM.Date,
			"content":     entryM.Content,
			"good_things": entryM.GoodThings,
			"bad_things":  entryM.BadThings,
			"updated_at":  entryM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to update diary entry")
	}
	if result.RowsAffected == 0 {
		return domainerrors.NotFound("diary entry")
	}

	return nil
}

func (repo *diaryRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.owned(ctx, ownerID).Where("id = ?", id).Delete(&model.DiaryModel{})
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to delete diary entry")
	}
	if result.RowsAffected == 0 {
		return domainerrors.NotFound("diary entry")
	}

	return nil
}

func (repo *diaryRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.owned(ctx, ownerID).Delete(&model.DiaryModel{}).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to delete diary entries")
	}

	return nil
}

func (repo *diaryRepository) owned(ctx context.Context, ownerID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.DiaryModel{}).Where("owner_id = ?", ownerID)
}

func toDiaryDomain(data *model.DiaryModel) *entity.DiaryEntry {
	return &entity.DiaryEntry{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Date:       data.Date.UTC(),
		Content:    data.Content,
		GoodThings: append([]string{}, data.GoodThings...),
		BadThings:  append([]string{}, data.BadThings...),
		CreatedAt:  data.CreatedAt.UTC(),
		UpdatedAt:  data.UpdatedAt.UTC(),
	}
}

func fromDiaryDomain(data *entity.DiaryEntry) *model.DiaryModel {
	return &model.DiaryModel{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Date:       data.Date,
		Content:    data.Content,
		GoodThings: datatypes.NewJSONSlice(nonNil(data.GoodThings)),
		BadThings:  datatypes.NewJSONSlice(nonNil(data.BadThings)),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

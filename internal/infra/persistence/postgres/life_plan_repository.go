package postgres

import (
	"context"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/domain/repository"
	"lifeos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type lifePlanRepository struct {
	db *gorm.DB
}

// NewLifePlanRepository is the constructor for lifePlanRepository.
func NewLifePlanRepository(db *gorm.DB) repository.LifePlanRepository {
	return &lifePlanRepository{db: db}
}

func (repo *lifePlanRepository) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.LifePlan, error) {
	return repo.find(ctx, repo.owned(ctx, ownerID))
}

func (repo *lifePlanRepository) ListByTargetYear(ctx context.Context, ownerID uuid.UUID, startYear, endYear int) ([]*entity.LifePlan, error) {
	return repo.find(ctx, repo.owned(ctx, ownerID).Where("target_year >= ? AND target_year <= ?", startYear, endYear))
}

func (repo *lifePlanRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.LifePlan, error) {
	var planM model.LifePlanModel
	if err := repo.owned(ctx, ownerID).Clauses(dbresolver.Write).Where("id = ?", id).Take(&planM).Error; err != nil {
		if isNotFound(err) {
			return nil, domainerrors.NotFound("life plan")
		}

		return nil, domainerrors.NewStorageError(err, "failed to find life plan")
	}

	return toLifePlanDomain(&planM), nil
}

func (repo *lifePlanRepository) Create(ctx context.Context, plan *entity.LifePlan) error {
	if err := repo.db.WithContext(ctx).Create(fromLifePlanDomain(plan)).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to create life plan")
	}

	return nil
}

func (repo *lifePlanRepository) Update(ctx context.Context, plan *entity.LifePlan) error {
	result := repo.owned(ctx, plan.OwnerID).
		Where("id = ?", plan.ID).
		Updates(map[string]any{
			"start_age":   plan.StartAge,
			"end_age":     plan.EndAge,
			"target_year": plan.TargetYear,
			"description": plan.Description,
			"updated_at":  plan.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to update life plan")
	}
	if result.RowsAffected == 0 {
		return domainerrors.NotFound("life plan")
	}

	return nil
}

func (repo *lifePlanRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.owned(ctx, ownerID).Where("id = ?", id).Delete(&model.LifePlanModel{})
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to delete life plan")
	}
	if result.RowsAffected == 0 {
		return domainerrors.NotFound("life plan")
	}

	return nil
}

func (repo *lifePlanRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.owned(ctx, ownerID).Delete(&model.LifePlanModel{}).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to delete life plans")
	}

	return nil
}

func (repo *lifePlanRepository) owned(ctx context.Context, ownerID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.LifePlanModel{}).Where("owner_id = ?", ownerID)
}

func (repo *lifePlanRepository) find(_ context.Context, query *gorm.DB) ([]*entity.LifePlan, error) {
	var rows []model.LifePlanModel
	if err := query.Clauses(dbresolver.Read).Order("target_year ASC").Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list life plans")
	}

	plans := make([]*entity.LifePlan, 0, len(rows))
	for i := range rows {
		plans = append(plans, toLifePlanDomain(&rows[i]))
	}

	return plans, nil
}

func toLifePlanDomain(data *model.LifePlanModel) *entity.LifePlan {
	return &entity.LifePlan{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		StartAge:    data.StartAge,
		EndAge:      data.EndAge,
		TargetYear:  data.TargetYear,
		Description: data.Description,
		CreatedAt:   data.CreatedAt.UTC(),
		UpdatedAt:   data.UpdatedAt.UTC(),
	}
}

func fromLifePlanDomain(data *entity.LifePlan) *model.LifePlanModel {
	return &model.LifePlanModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		StartAge:    data.StartAge,
		EndAge:      data.EndAge,
		TargetYear:  data.TargetYear,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

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
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// typeTotal is one row of the per-type aggregate query.
type typeTotal struct {
	Type  string
	Total float64
	Count int
}

func (repo *transactionRepository) List(ctx context.Context, ownerID uuid.UUID, filter entity.TransactionFilter, limit int) ([]*entity.Transaction, error) {
	query := repo.filtered(ctx, ownerID, filter).
		Clauses(dbresolver.Read).
		Order("date DESC").
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.TransactionModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list transactions")
	}

	out := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, toTransactionDomain(&rows[i]))
	}

	return out, nil
}

func (repo *transactionRepository) Summarize(ctx context.Context, ownerID uuid.UUID, filter entity.TransactionFilter) (entity.TransactionSummary, error) {
	return repo.summarize(repo.filtered(ctx, ownerID, filter))
}

func (repo *transactionRepository) SummarizeSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (entity.TransactionSummary, error) {
	return repo.summarize(repo.owned(ctx, ownerID).Where("date >= ?", since.UTC()))
}

func (repo *transactionRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Transaction, error) {
	var txM model.TransactionModel
	if err := repo.owned(ctx, ownerID).Clauses(dbresolver.Write).Where("id = ?", id).Take(&txM).Error; err != nil {
		if isNotFound(err) {
			return nil, domainerrors.NotFound("transaction")
		}

		return nil, domainerrors.NewStorageError(err, "failed to find transaction")
	}

	return toTransactionDomain(&txM), nil
}

func (repo *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	if err := repo.db.WithContext(ctx).Create(fromTransactionDomain(tx)).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to create transaction")
	}

	return nil
}

func (repo *transactionRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	result := repo.owned(ctx, tx.OwnerID).
		Where("id = ?", tx.ID).
		Updates(map[string]any{
			"type":        string(tx.Type),
			"amount":      tx.Amount,
			"description": tx.Description,
			"date":        tx.Date,
			"category":    tx.Category,
			"completed":   tx.Completed,
			"updated_at":  tx.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to update transaction")
	}
	if result.RowsAffected == 0 {
		return domainerrors.NotFound("transaction")
	}

	return nil
}

func (repo *transactionRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.owned(ctx, ownerID).Where("id = ?", id).Delete(&model.TransactionModel{})
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to delete transaction")
	}
	if result.RowsAffected == 0 {
		return domainerrors.NotFound("transaction")
	}

	return nil
}

func (repo *transactionRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.owned(ctx, ownerID).Delete(&model.TransactionModel{}).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to delete transactions")
	}

	return nil
}

func (repo *transactionRepository) owned(ctx context.Context, ownerID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.TransactionModel{}).Where("owner_id = ?", ownerID)
}

// filtered applies the month/year/type filter. A month without a year is
// ignored; a year without a month spans the whole year.
func (repo *transactionRepository) filtered(ctx context.Context, ownerID uuid.UUID, filter entity.TransactionFilter) *gorm.DB {
	query := repo.owned(ctx, ownerID)

	switch {
	case filter.Year > 0 && filter.Month >= time.January && filter.Month <= time.December:
		start, end := util.MonthBounds(filter.Year, filter.Month)
		query = query.Where("date >= ? AND date < ?", start, end)
	case filter.Year > 0:
		start := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("date >= ? AND date < ?", start, start.AddDate(1, 0, 0))
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}

	return query
}

func (repo *transactionRepository) summarize(query *gorm.DB) (entity.TransactionSummary, error) {
	var totals []typeTotal
	err := query.
		Clauses(dbresolver.Read).
		Select("type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Group("type").
		Scan(&totals).Error
	if err != nil {
		return entity.TransactionSummary{}, domainerrors.NewStorageError(err, "failed to summarize transactions")
	}

	var summary entity.TransactionSummary
	for _, t := range totals {
		switch entity.TransactionType(t.Type) {
		case entity.TransactionEarning:
			summary.Earnings += t.Total
		case entity.TransactionExpense:
			summary.Expenses += t.Total
		}
		summary.TransactionCount += t.Count
	}
	summary.Balance = summary.Earnings - summary.Expenses

	return summary, nil
}

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	return &entity.Transaction{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Type:        entity.TransactionType(data.Type),
		Amount:      data.Amount,
		Description: data.Description,
		Date:        data.Date.UTC(),
		Category:    data.Category,
		Completed:   data.Completed,
		CreatedAt:   data.CreatedAt.UTC(),
		UpdatedAt:   data.UpdatedAt.UTC(),
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	return &model.TransactionModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Type:        string(data.Type),
		Amount:      data.Amount,
		Description: data.Description,
		Date:        data.Date,
		Category:    data.Category,
		Completed:   data.Completed,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

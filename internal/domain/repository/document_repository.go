package repository

import (
	"context"
	"time"

	"lifeos/internal/domain/entity"

	"github.com/google/uuid"
)

// LifePlanRepository persists life plans, always sorted by target year.
type LifePlanRepository interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.LifePlan, error)
	ListByTargetYear(ctx context.Context, ownerID uuid.UUID, startYear, endYear int) ([]*entity.LifePlan, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.LifePlan, error)
	Create(ctx context.Context, plan *entity.LifePlan) error
	Update(ctx context.Context, plan *entity.LifePlan) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

// TransactionRepository persists financial transactions.
type TransactionRepository interface {
	// List returns matching transactions, newest first. A positive limit caps the result.
	List(ctx context.Context, ownerID uuid.UUID, filter entity.TransactionFilter, limit int) ([]*entity.Transaction, error)
	// Summarize totals the matching transactions in the store.
	Summarize(ctx context.Context, ownerID uuid.UUID, filter entity.TransactionFilter) (entity.TransactionSummary, error)
	// SummarizeSince totals transactions dated at or after since.
	SummarizeSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (entity.TransactionSummary, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Transaction, error)
	Create(ctx context.Context, tx *entity.Transaction) error
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

// DiaryRepository persists diary entries.
type DiaryRepository interface {
	// List returns one page of entries, newest first, and the total match count.
	List(ctx context.Context, ownerID uuid.UUID, query entity.DiaryQuery) ([]*entity.DiaryEntry, int64, error)
	// FindByDay returns the latest entry dated on the given calendar day.
	FindByDay(ctx context.Context, ownerID uuid.UUID, day time.Time) (*entity.DiaryEntry, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.DiaryEntry, error)
	Create(ctx context.Context, entry *entity.DiaryEntry) error
	Update(ctx context.Context, entry *entity.DiaryEntry) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

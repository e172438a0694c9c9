package usecase

import (
	"context"
	"time"

	"lifeos/internal/domain/entity"

	"github.com/google/uuid"
)

// LifePlanUsecase manages life plans.
type LifePlanUsecase interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.LifePlan, error)
	ListByTargetYear(ctx context.Context, ownerID uuid.UUID, startYear, endYear int) ([]*entity.LifePlan, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.LifePlan, error)
	Create(ctx context.Context, ownerID uuid.UUID, input entity.LifePlanInput) (*entity.LifePlan, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.LifePlanPatch) (*entity.LifePlan, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// TransactionUsecase manages financial transactions.
type TransactionUsecase interface {
	List(ctx context.Context, ownerID uuid.UUID, filter entity.TransactionFilter) ([]*entity.Transaction, error)
	Summary(ctx context.Context, ownerID uuid.UUID, filter entity.TransactionFilter) (*entity.TransactionSummary, error)
	Create(ctx context.Context, ownerID uuid.UUID, input entity.TransactionInput) (*entity.Transaction, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.TransactionPatch) (*entity.Transaction, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// DiaryUsecase manages diary entries.
type DiaryUsecase interface {
	List(ctx context.Context, ownerID uuid.UUID, query entity.DiaryQuery) (*entity.DiaryPage, error)
	// ByDay returns the entry of the calendar day, or nil when there is none.
	ByDay(ctx context.Context, ownerID uuid.UUID, day time.Time) (*entity.DiaryEntry, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.DiaryEntry, error)
	Create(ctx context.Context, ownerID uuid.UUID, input entity.DiaryInput) (*entity.DiaryEntry, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.DiaryPatch) (*entity.DiaryEntry, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

package usecase

import (
	"context"

	"lifeos/internal/domain/entity"

	"github.com/google/uuid"
)

// FestivalView is a festival with its computed totals.
type FestivalView struct {
	*entity.Festival
	Totals entity.FestivalTotals `json:"totals"`
}

// FestivalUsecase manages festival bucket-lists.
type FestivalUsecase interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*FestivalView, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*FestivalView, error)
	Create(ctx context.Context, ownerID uuid.UUID, input entity.FestivalInput) (*FestivalView, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.FestivalPatch) (*FestivalView, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	AddItem(ctx context.Context, ownerID, id uuid.UUID, input entity.BucketItemInput) (*FestivalView, error)
	UpdateItem(ctx context.Context, ownerID, id, itemID uuid.UUID, patch entity.BucketItemPatch) (*FestivalView, error)
	RemoveItem(ctx context.Context, ownerID, id, itemID uuid.UUID) (*FestivalView, error)
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
)

// requireOwner rejects calls made without an authenticated user.
func requireOwner(ownerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return domainerrors.ErrUnauthorized.WithDetails("missing authenticated user")
	}

	return nil
}

// mutate is the load, change, save cycle shared by every aggregate
// mutation. Nothing is written when load or change fails.
func mutate[T entity.Root](
	ctx context.Context,
	load func(context.Context) (T, error),
	change func(T) error,
	save func(context.Context, T) error,
) (T, error) {
	var zero T

	aggregate, err := load(ctx)
	if err != nil {
		return zero, err
	}
	if err := change(aggregate); err != nil {
		return zero, err
	}
	if err := save(ctx, aggregate); err != nil {
		return zero, err
	}

	return aggregate, nil
}

func checkRange(from, to *time.Time) error {
	if from != nil && to != nil && to.Before(*from) {
		return domainerrors.Validationf("endDate cannot be before startDate")
	}

	return nil
}

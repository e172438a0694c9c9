package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lifeos/internal/delivery/context"
	"lifeos/internal/domain/entity"
	"lifeos/internal/domain/repository"
	"lifeos/internal/errors"
	"lifeos/internal/usecase"

	"github.com/google/uuid"
)

// festivalService implements the FestivalUsecase interface.
type festivalService struct {
	festivalRepo repository.FestivalRepository
	now          func() time.Time
	logger       *slog.Logger
}

// NewFestivalService is the constructor for festivalService.
func NewFestivalService(festivalRepo repository.FestivalRepository, logger *slog.Logger) usecase.FestivalUsecase {
	return &festivalService{
		festivalRepo: festivalRepo,
		now:          time.Now,
		logger:       logger,
	}
}

func (srv *festivalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *festivalService) List(ctx context.Context, ownerID uuid.UUID) ([]*usecase.FestivalView, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	festivals, err := srv.festivalRepo.List(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list festivals")
	}

	views := make([]*usecase.FestivalView, 0, len(festivals))
	for _, festival := range festivals {
		views = append(views, festivalView(festival))
	}

	return views, nil
}

func (srv *festivalService) Get(ctx context.Context, ownerID, id uuid.UUID) (*usecase.FestivalView, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	festival, err := srv.festivalRepo.Load(ctx, ownerID, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load festival")
	}

	return festivalView(festival), nil
}

func (srv *festivalService) Create(ctx context.Context, ownerID uuid.UUID, input entity.FestivalInput) (*usecase.FestivalView, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	festival, err := entity.NewFestival(ownerID, input, srv.now())
	if err != nil {
		return nil, err
	}
	if err := srv.festivalRepo.Create(ctx, festival); err != nil {
		return nil, errors.Wrap(err, "failed to create festival")
	}

	srv.log(ctx).Debug("Festival created", slog.Any("festivalID", festival.ID))

	return festivalView(festival), nil
}

func (srv *festivalService) Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.FestivalPatch) (*usecase.FestivalView, error) {
	return srv.change(ctx, ownerID, id, "update festival", func(f *entity.Festival) error {
		return f.Apply(patch, srv.now())
	})
}

func (srv *festivalService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}

	if err := srv.festivalRepo.Delete(ctx, ownerID, id); err != nil {
		return errors.Wrap(err, "failed to delete festival")
	}

	return nil
}

func (srv *festivalService) AddItem(ctx context.Context, ownerID, id uuid.UUID, input entity.BucketItemInput) (*usecase.FestivalView, error) {
	return srv.change(ctx, ownerID, id, "add festival item", func(f *entity.Festival) error {
		_, err := f.AddItem(input, srv.now())

		return err
	})
}

func (srv *festivalService) UpdateItem(ctx context.Context, ownerID, id, itemID uuid.UUID, patch entity.BucketItemPatch) (*usecase.FestivalView, error) {
	return srv.change(ctx, ownerID, id, "update festival item", func(f *entity.Festival) error {
		_, err := f.UpdateItem(itemID, patch, srv.now())

		return err
	})
}

func (srv *festivalService) RemoveItem(ctx context.Context, ownerID, id, itemID uuid.UUID) (*usecase.FestivalView, error) {
	return srv.change(ctx, ownerID, id, "remove festival item", func(f *entity.Festival) error {
		return f.RemoveItem(itemID, srv.now())
	})
}

func (srv *festivalService) change(ctx context.Context, ownerID, id uuid.UUID, action string, fn func(*entity.Festival) error) (*usecase.FestivalView, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	festival, err := mutate(ctx,
		func(ctx context.Context) (*entity.Festival, error) {
			return srv.festivalRepo.Load(ctx, ownerID, id)
		},
		fn,
		srv.festivalRepo.Save,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s", action)
	}

	return festivalView(festival), nil
}

func festivalView(festival *entity.Festival) *usecase.FestivalView {
	return &usecase.FestivalView{Festival: festival, Totals: festival.Totals()}
}

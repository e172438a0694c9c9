package impl

import (
	"context"
	"testing"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	mockRepo "lifeos/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFestivalService(t *testing.T) (*festivalService, *mockRepo.MockFestivalRepository) {
	repo := mockRepo.NewMockFestivalRepository(t)
	srv := NewFestivalService(repo, newDiscardLogger()).(*festivalService)
	srv.now = fixedClock

	return srv, repo
}

func TestFestivalService_Create_ComputesTotals(t *testing.T) {
	srv, repo := newTestFestivalService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Festival")).Return(nil)

	view, err := srv.Create(ctx, ownerID, entity.FestivalInput{
		Name: "Eid",
		Items: []entity.BucketItemInput{
			{Label: "Clothes", Price: 120},
			{Label: "Sweets", Price: 30.5, Completed: true},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, view.Totals.ItemCount)
	assert.Equal(t, 1, view.Totals.CompletedCount)
	assert.InDelta(t, 150.5, view.Totals.TotalPrice, 1e-9)
	assert.InDelta(t, 30.5, view.Totals.CompletedPrice, 1e-9)
}

func TestFestivalService_UpdateItem_RejectsNegativePrice(t *testing.T) {
	srv, repo := newTestFestivalService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	festival, err := entity.NewFestival(ownerID, entity.FestivalInput{
		Name:  "New Year",
		Items: []entity.BucketItemInput{{Label: "Fireworks", Price: 50}},
	}, testNow)
	require.NoError(t, err)
	item := festival.Items.Items()[0]

	repo.EXPECT().Load(ctx, ownerID, festival.ID).Return(festival, nil)

	price := -1.0
	_, err = srv.UpdateItem(ctx, ownerID, festival.ID, item.ID, entity.BucketItemPatch{Price: &price})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.InDelta(t, 50.0, item.Price, 1e-9)
}

func TestFestivalService_RemoveItem(t *testing.T) {
	srv, repo := newTestFestivalService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	festival, err := entity.NewFestival(ownerID, entity.FestivalInput{
		Name:  "Birthday",
		Items: []entity.BucketItemInput{{Label: "Cake", Price: 20}, {Label: "Balloons", Price: 5}},
	}, testNow)
	require.NoError(t, err)
	cake := festival.Items.Items()[0]

	repo.EXPECT().Load(ctx, ownerID, festival.ID).Return(festival, nil)
	repo.EXPECT().Save(ctx, festival).Return(nil)

	view, err := srv.RemoveItem(ctx, ownerID, festival.ID, cake.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, view.Totals.ItemCount)
	assert.InDelta(t, 5.0, view.Totals.TotalPrice, 1e-9)
}

func TestFestivalService_Delete_PropagatesNotFound(t *testing.T) {
	srv, repo := newTestFestivalService(t)
	ctx := context.Background()
	ownerID, id := uuid.New(), uuid.New()

	repo.EXPECT().Delete(ctx, ownerID, id).Return(domainerrors.NotFound("festival"))

	assert.ErrorIs(t, srv.Delete(ctx, ownerID, id), domainerrors.ErrNotFound)
}

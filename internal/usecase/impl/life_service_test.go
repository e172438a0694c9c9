package impl

import (
	"context"
	"testing"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	mockRepo "lifeos/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLifePlanService_ListByTargetYear_RejectsInvertedRange(t *testing.T) {
	repo := mockRepo.NewMockLifePlanRepository(t)
	srv := NewLifePlanService(repo, newDiscardLogger())

	_, err := srv.ListByTargetYear(context.Background(), uuid.New(), 2030, 2025)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLifePlanService_Update_ValidatesWholePlan(t *testing.T) {
	repo := mockRepo.NewMockLifePlanRepository(t)
	srv := NewLifePlanService(repo, newDiscardLogger()).(*lifePlanService)
	srv.now = fixedClock
	ctx := context.Background()
	ownerID := uuid.New()
	plan, err := entity.NewLifePlan(ownerID, entity.LifePlanInput{StartAge: 25, EndAge: 30, TargetYear: 2030, Description: "Own a home"}, testNow)
	require.NoError(t, err)

	repo.EXPECT().FindByID(ctx, ownerID, plan.ID).Return(plan, nil)

	endAge := 20
	_, err = srv.Update(ctx, ownerID, plan.ID, entity.LifePlanPatch{EndAge: &endAge})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, 30, plan.EndAge)
}

func TestTransactionService_List_MonthDefaultsToCurrentYear(t *testing.T) {
	repo := mockRepo.NewMockTransactionRepository(t)
	srv := NewTransactionService(repo, newDiscardLogger()).(*transactionService)
	srv.now = fixedClock
	ctx := context.Background()
	ownerID := uuid.New()

	repo.EXPECT().
		List(ctx, ownerID, entity.TransactionFilter{Year: 2026, Month: time.February}, 0).
		Return([]*entity.Transaction{}, nil)

	txs, err := srv.List(ctx, ownerID, entity.TransactionFilter{Month: time.February})

	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestTransactionService_Summary_RejectsBadFilter(t *testing.T) {
	repo := mockRepo.NewMockTransactionRepository(t)
	srv := NewTransactionService(repo, newDiscardLogger())
	ctx := context.Background()

	_, err := srv.Summary(ctx, uuid.New(), entity.TransactionFilter{Month: 13})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Summary(ctx, uuid.New(), entity.TransactionFilter{Type: "refund"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTransactionService_Create_DefaultsCategory(t *testing.T) {
	repo := mockRepo.NewMockTransactionRepository(t)
	srv := NewTransactionService(repo, newDiscardLogger()).(*transactionService)
	srv.now = fixedClock
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)

	tx, err := srv.Create(ctx, uuid.New(), entity.TransactionInput{
		Type:        entity.TransactionExpense,
		Amount:      42,
		Description: "Groceries",
	})

	require.NoError(t, err)
	assert.Equal(t, "General Expense", tx.Category)
	assert.Equal(t, testNow, tx.Date)
}

func TestDiaryService_List_PagesAndFlags(t *testing.T) {
	repo := mockRepo.NewMockDiaryRepository(t)
	srv := NewDiaryService(repo, newDiscardLogger())
	ctx := context.Background()
	ownerID := uuid.New()
	entries := []*entity.DiaryEntry{{ID: uuid.New()}, {ID: uuid.New()}}

	repo.EXPECT().List(ctx, ownerID, entity.DiaryQuery{Page: 2, Limit: 2}).Return(entries, 5, nil)

	page, err := srv.List(ctx, ownerID, entity.DiaryQuery{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrev)
	assert.Len(t, page.Entries, 2)
}

func TestDiaryService_List_ClampsPaging(t *testing.T) {
	repo := mockRepo.NewMockDiaryRepository(t)
	srv := NewDiaryService(repo, newDiscardLogger())
	ctx := context.Background()
	ownerID := uuid.New()

	repo.EXPECT().List(ctx, ownerID, entity.DiaryQuery{Page: 1, Limit: 100}).Return(nil, 0, nil)

	page, err := srv.List(ctx, ownerID, entity.DiaryQuery{Page: -3, Limit: 1000})

	require.NoError(t, err)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestDiaryService_ByDay_MissingDayIsNil(t *testing.T) {
	repo := mockRepo.NewMockDiaryRepository(t)
	srv := NewDiaryService(repo, newDiscardLogger())
	ctx := context.Background()
	ownerID := uuid.New()
	day := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().FindByDay(ctx, ownerID, day).Return(nil, domainerrors.NotFound("diary entry"))

	entry, err := srv.ByDay(ctx, ownerID, day.Add(13*time.Hour))

	require.NoError(t, err)
	assert.Nil(t, entry)
}

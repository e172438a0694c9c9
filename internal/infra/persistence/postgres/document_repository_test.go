package postgres

import (
	"context"
	"testing"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifePlanRepository_SortedByTargetYear(t *testing.T) {
	repo := NewLifePlanRepository(newTestDB(t))
	ctx := context.Background()
	ownerID := uuid.New()

	for _, year := range []int{2040, 2030, 2035} {
		plan, err := entity.NewLifePlan(ownerID, entity.LifePlanInput{
			StartAge:    30,
			EndAge:      40,
			TargetYear:  year,
			Description: "Milestone",
		}, testNow)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, plan))
	}

	plans, err := repo.List(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, []int{2030, 2035, 2040}, []int{plans[0].TargetYear, plans[1].TargetYear, plans[2].TargetYear})

	ranged, err := repo.ListByTargetYear(ctx, ownerID, 2031, 2040)
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.Equal(t, 2035, ranged[0].TargetYear)
}

func TestLifePlanRepository_UpdateAndDeleteAreOwnerScoped(t *testing.T) {
	repo := NewLifePlanRepository(newTestDB(t))
	ctx := context.Background()
	ownerID := uuid.New()

	plan, err := entity.NewLifePlan(ownerID, entity.LifePlanInput{StartAge: 25, EndAge: 35, TargetYear: 2032, Description: "Career"}, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, plan))

	stranger := *plan
	stranger.OwnerID = uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, &stranger), domainerrors.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, stranger.OwnerID, plan.ID), domainerrors.ErrNotFound)

	description := "Run a marathon"
	require.NoError(t, plan.Apply(entity.LifePlanPatch{Description: &description}, testNow.Add(time.Hour)))
	require.NoError(t, repo.Update(ctx, plan))

	found, err := repo.FindByID(ctx, ownerID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Run a marathon", found.Description)

	require.NoError(t, repo.Delete(ctx, ownerID, plan.ID))
	_, err = repo.FindByID(ctx, ownerID, plan.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTransactionRepository_FilterAndSummarize(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()
	ownerID := uuid.New()

	inputs := []entity.TransactionInput{
		{Type: entity.TransactionEarning, Amount: 1000, Description: "Salary", Date: day(2026, 3, 1)},
		{Type: entity.TransactionExpense, Amount: 250, Description: "Rent", Date: day(2026, 3, 2)},
		{Type: entity.TransactionExpense, Amount: 50, Description: "Books", Date: day(2026, 3, 20)},
		{Type: entity.TransactionEarning, Amount: 400, Description: "Bonus", Date: day(2026, 2, 15)},
	}
	for _, in := range inputs {
		tx, err := entity.NewTransaction(ownerID, in, testNow)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, tx))
	}

	march := entity.TransactionFilter{Year: 2026, Month: time.March}
	list, err := repo.List(ctx, ownerID, march, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Books", list[0].Description)

	expenses, err := repo.List(ctx, ownerID, entity.TransactionFilter{Type: entity.TransactionExpense}, 1)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Books", expenses[0].Description)

	summary, err := repo.Summarize(ctx, ownerID, march)
	require.NoError(t, err)
	assert.InDelta(t, 1000, summary.Earnings, 0.001)
	assert.InDelta(t, 300, summary.Expenses, 0.001)
	assert.InDelta(t, 700, summary.Balance, 0.001)
	assert.Equal(t, 3, summary.TransactionCount)

	since, err := repo.SummarizeSince(ctx, ownerID, day(2026, 2, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1100, since.Balance, 0.001)
	assert.Equal(t, 4, since.TransactionCount)

	empty, err := repo.Summarize(ctx, uuid.New(), entity.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionSummary{}, empty)
}

func TestDiaryRepository_PagingAndDayLookup(t *testing.T) {
	repo := NewDiaryRepository(newTestDB(t))
	ctx := context.Background()
	ownerID := uuid.New()

	for d := 1; d <= 5; d++ {
		entry, err := entity.NewDiaryEntry(ownerID, entity.DiaryInput{
			Date:       day(2026, 3, d).Add(20 * time.Hour),
			Content:    "Day " + time.Month(d).String(),
			GoodThings: []string{"coffee"},
		}, testNow)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, entry))
	}

	query, err := entity.DiaryQuery{Page: 2, Limit: 2}.Normalize()
	require.NoError(t, err)
	entries, total, err := repo.List(ctx, ownerID, query)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, entries, 2)
	assert.Equal(t, 3, entries[0].Date.Day())
	assert.Equal(t, 2, entries[1].Date.Day())
	assert.Equal(t, []string{"coffee"}, entries[0].GoodThings)
	assert.Equal(t, []string{}, entries[0].BadThings)

	from, to := day(2026, 3, 4), day(2026, 3, 6)
	ranged, total, err := repo.List(ctx, ownerID, entity.DiaryQuery{Page: 1, Limit: 10, From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, ranged, 2)

	found, err := repo.FindByDay(ctx, ownerID, day(2026, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, found.Date.Day())

	_, err = repo.FindByDay(ctx, ownerID, day(2026, 3, 9))
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

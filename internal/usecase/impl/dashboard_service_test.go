package impl

import (
	"context"
	"testing"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	mockRepo "lifeos/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardMocks struct {
	challengeRepo *mockRepo.MockChallengeRepository
	lifePlanRepo  *mockRepo.MockLifePlanRepository
	txRepo        *mockRepo.MockTransactionRepository
	studyRepo     *mockRepo.MockStudyStructureRepository
	dailyRepo     *mockRepo.MockDailyScheduleRepository
}

func newTestDashboardService(t *testing.T) (*dashboardService, dashboardMocks) {
	m := dashboardMocks{
		challengeRepo: mockRepo.NewMockChallengeRepository(t),
		lifePlanRepo:  mockRepo.NewMockLifePlanRepository(t),
		txRepo:        mockRepo.NewMockTransactionRepository(t),
		studyRepo:     mockRepo.NewMockStudyStructureRepository(t),
		dailyRepo:     mockRepo.NewMockDailyScheduleRepository(t),
	}

	srv := NewDashboardService(DashboardServiceParams{
		ChallengeRepo:   m.challengeRepo,
		LifePlanRepo:    m.lifePlanRepo,
		TransactionRepo: m.txRepo,
		StudyRepo:       m.studyRepo,
		DailyRepo:       m.dailyRepo,
		Logger:          newDiscardLogger(),
	}).(*dashboardService)
	srv.now = fixedClock

	return srv, m
}

func challengeAt(name string, status entity.ChallengeStatus, created, updated time.Time) *entity.Challenge {
	return &entity.Challenge{
		Aggregate: entity.Aggregate{ID: uuid.New(), CreatedAt: created, UpdatedAt: updated},
		Name:      name,
		Status:    status,
	}
}

func TestDashboardService_Stats(t *testing.T) {
	srv, m := newTestDashboardService(t)
	ownerID := uuid.New()
	march := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	january := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	challenges := []*entity.Challenge{
		challengeAt("old active", entity.ChallengeStatusActive, january, january),
		challengeAt("new done", entity.ChallengeStatusCompleted, march, march.Add(time.Hour)),
		challengeAt("new active", entity.ChallengeStatusActive, march.Add(time.Minute), march.Add(time.Minute)),
		challengeAt("old done in march", entity.ChallengeStatusCompleted, january, march),
	}
	plans := []*entity.LifePlan{{ID: uuid.New()}, {ID: uuid.New()}}
	recent := []*entity.Transaction{{ID: uuid.New(), Description: "Salary", Amount: 1000, Type: entity.TransactionEarning, Date: march}}

	structure := entity.NewStudyStructure(ownerID, testNow)
	branch, err := structure.AddBranch(entity.BranchInput{Name: "CS"}, testNow)
	require.NoError(t, err)
	subject, err := structure.AddSubject(branch.ID, entity.StudySubjectInput{Name: "Algorithms"}, testNow)
	require.NoError(t, err)
	for _, in := range []entity.MaterialInput{
		{Title: "CLRS", Link: "https://example.com/clrs", Type: entity.MaterialTypePDF},
		{Title: "Lecture", Link: "https://example.com/lecture", Type: entity.MaterialTypeVideo},
		{Title: "Notes", Link: "https://example.com/notes", Type: entity.MaterialTypePDF},
	} {
		_, err := structure.AddMaterial(branch.ID, subject.ID, in, testNow)
		require.NoError(t, err)
	}

	m.challengeRepo.EXPECT().List(mock.Anything, ownerID).Return(challenges, nil)
	m.lifePlanRepo.EXPECT().List(mock.Anything, ownerID).Return(plans, nil)
	m.txRepo.EXPECT().Summarize(mock.Anything, ownerID, entity.TransactionFilter{}).
		Return(entity.TransactionSummary{Earnings: 1000, Expenses: 250, Balance: 750, TransactionCount: 4}, nil)
	m.txRepo.EXPECT().List(mock.Anything, ownerID, entity.TransactionFilter{}, 5).Return(recent, nil)
	m.studyRepo.EXPECT().LoadOrCreate(mock.Anything, ownerID).Return(structure, nil)
	m.dailyRepo.EXPECT().Count(mock.Anything, ownerID).Return(7, nil)

	stats, err := srv.Stats(context.Background(), ownerID)

	require.NoError(t, err)
	// completions this month are measured against creations this month
	assert.Equal(t, 100, stats.QuickStats.MonthlyProgress)
	assert.Equal(t, 2, stats.QuickStats.CompletedTasks)
	assert.Equal(t, 4, stats.QuickStats.ActiveGoals)
	assert.Equal(t, 750.0, stats.ModuleStats.Earnings.TotalBalance)
	assert.Equal(t, 4, stats.ModuleStats.Earnings.TransactionCount)
	assert.Equal(t, 4, stats.ModuleStats.Challenges.Total)
	assert.Equal(t, 2, stats.ModuleStats.LifePlan.GoalsSet)
	assert.Equal(t, 3, stats.ModuleStats.Study.Resources)
	assert.Equal(t, 2, stats.ModuleStats.Study.Categories)
	assert.Equal(t, int64(7), stats.ModuleStats.Projects.TotalTasks)

	require.Len(t, stats.RecentActivity.Challenges, 4)
	assert.Equal(t, "new active", stats.RecentActivity.Challenges[0].Name)
	require.Len(t, stats.RecentActivity.Transactions, 1)
	assert.Equal(t, "Salary", stats.RecentActivity.Transactions[0].Description)
}

func TestDashboardService_Stats_FirstFailureWins(t *testing.T) {
	srv, m := newTestDashboardService(t)
	ownerID := uuid.New()
	storageErr := domainerrors.NewStorageError(errors.New("connection refused"), "failed to list challenges")

	m.challengeRepo.EXPECT().List(mock.Anything, ownerID).Return(nil, storageErr)
	m.lifePlanRepo.EXPECT().List(mock.Anything, ownerID).Return(nil, nil).Maybe()
	m.txRepo.EXPECT().Summarize(mock.Anything, ownerID, entity.TransactionFilter{}).Return(entity.TransactionSummary{}, nil).Maybe()
	m.txRepo.EXPECT().List(mock.Anything, ownerID, entity.TransactionFilter{}, 5).Return(nil, nil).Maybe()
	m.studyRepo.EXPECT().LoadOrCreate(mock.Anything, ownerID).Return(entity.NewStudyStructure(ownerID, testNow), nil).Maybe()
	m.dailyRepo.EXPECT().Count(mock.Anything, ownerID).Return(0, nil).Maybe()

	_, err := srv.Stats(context.Background(), ownerID)

	require.Error(t, err)
	assert.True(t, domainerrors.IsStorageError(err))
}

func TestDashboardService_Progress(t *testing.T) {
	srv, m := newTestDashboardService(t)
	ownerID := uuid.New()
	windowStart := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)

	challenges := []*entity.Challenge{
		challengeAt("a", entity.ChallengeStatusCompleted, windowStart, time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)),
		challengeAt("b", entity.ChallengeStatusCompleted, windowStart, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)),
		challengeAt("c", entity.ChallengeStatusCompleted, windowStart, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)),
		challengeAt("d", entity.ChallengeStatusActive, windowStart, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)),
		challengeAt("e", entity.ChallengeStatusCompleted, windowStart, time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC)),
	}

	m.challengeRepo.EXPECT().List(mock.Anything, ownerID).Return(challenges, nil)
	m.txRepo.EXPECT().SummarizeSince(mock.Anything, ownerID, windowStart).
		Return(entity.TransactionSummary{Earnings: 10, Balance: 10, TransactionCount: 1}, nil)

	overview, err := srv.Progress(context.Background(), ownerID)

	require.NoError(t, err)
	require.Len(t, overview.MonthlyProgress, 6)
	assert.Equal(t, "Oct", overview.MonthlyProgress[0].Month)
	assert.Equal(t, 2025, overview.MonthlyProgress[0].Year)
	assert.Equal(t, 1, overview.MonthlyProgress[0].CompletedTasks)
	assert.Equal(t, "Mar", overview.MonthlyProgress[5].Month)
	assert.Equal(t, 2026, overview.MonthlyProgress[5].Year)
	assert.Equal(t, 2, overview.MonthlyProgress[5].CompletedTasks)
	assert.Equal(t, 1, overview.FinancialOverview.TransactionCount)
}

func TestDashboardService_SlogansAreCopies(t *testing.T) {
	srv, _ := newTestDashboardService(t)

	got := srv.Slogans(context.Background())
	got[0] = "changed"

	assert.Len(t, srv.Slogans(context.Background()), 5)
	assert.Equal(t, "One Life. One System. No Excuses.", srv.Slogans(context.Background())[0])
}

package impl

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"time"

	deliverycontext "lifeos/internal/delivery/context"
	"lifeos/internal/domain/entity"
	"lifeos/internal/domain/repository"
	"lifeos/internal/errors"
	"lifeos/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	recentActivityLimit = 5
	progressMonths      = 6
)

var slogans = []string{
	"One Life. One System. No Excuses.",
	"Designing My Life with Discipline, Not Luck.",
	"From Chaos to Control — One Day at a Time.",
	"Built for Growth. Run by Discipline.",
	"I Track. I Improve. I Win.",
}

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	challengeRepo   repository.ChallengeRepository
	lifePlanRepo    repository.LifePlanRepository
	transactionRepo repository.TransactionRepository
	studyRepo       repository.StudyStructureRepository
	dailyRepo       repository.DailyScheduleRepository
	now             func() time.Time
	logger          *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	ChallengeRepo   repository.ChallengeRepository
	LifePlanRepo    repository.LifePlanRepository
	TransactionRepo repository.TransactionRepository
	StudyRepo       repository.StudyStructureRepository
	DailyRepo       repository.DailyScheduleRepository
	Logger          *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		challengeRepo:   params.ChallengeRepo,
		lifePlanRepo:    params.LifePlanRepo,
		transactionRepo: params.TransactionRepo,
		studyRepo:       params.StudyRepo,
		dailyRepo:       params.DailyRepo,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Stats loads every module concurrently; the first failure cancels the rest.
func (srv *dashboardService) Stats(ctx context.Context, ownerID uuid.UUID) (*usecase.DashboardStats, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	var (
		challenges []*entity.Challenge
		plans      []*entity.LifePlan
		summary    entity.TransactionSummary
		recentTxs  []*entity.Transaction
		study      *entity.StudyStructure
		plannedDay int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		challenges, err = srv.challengeRepo.List(gctx, ownerID)

		return errors.Wrap(err, "failed to list challenges")
	})
	g.Go(func() (err error) {
		plans, err = srv.lifePlanRepo.List(gctx, ownerID)

		return errors.Wrap(err, "failed to list life plans")
	})
	g.Go(func() (err error) {
		summary, err = srv.transactionRepo.Summarize(gctx, ownerID, entity.TransactionFilter{})

		return errors.Wrap(err, "failed to summarize transactions")
	})
	g.Go(func() (err error) {
		recentTxs, err = srv.transactionRepo.List(gctx, ownerID, entity.TransactionFilter{}, recentActivityLimit)

		return errors.Wrap(err, "failed to list recent transactions")
	})
	g.Go(func() (err error) {
		study, err = srv.studyRepo.LoadOrCreate(gctx, ownerID)

		return errors.Wrap(err, "failed to load study structure")
	})
	g.Go(func() (err error) {
		plannedDay, err = srv.dailyRepo.Count(gctx, ownerID)

		return errors.Wrap(err, "failed to count daily schedules")
	})
	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to load dashboard statistics", slog.Any("error", err))

		return nil, err
	}

	monthStart := startOfMonth(srv.now())
	challengeStats := usecase.ChallengeStats{Total: len(challenges)}
	var createdThisMonth, completedThisMonth int
	for _, c := range challenges {
		switch c.Status {
		case entity.ChallengeStatusActive:
			challengeStats.Active++
		case entity.ChallengeStatusCompleted:
			challengeStats.Completed++
			if !c.UpdatedAt.Before(monthStart) {
				completedThisMonth++
			}
		}
		if !c.CreatedAt.Before(monthStart) {
			createdThisMonth++
		}
	}

	monthlyProgress := 0
	if createdThisMonth > 0 {
		monthlyProgress = int(math.Round(float64(completedThisMonth) / float64(createdThisMonth) * 100))
	}

	studyStats := study.Statistics()

	return &usecase.DashboardStats{
		QuickStats: usecase.QuickStats{
			MonthlyProgress: monthlyProgress,
			CompletedTasks:  challengeStats.Completed,
			ActiveGoals:     challengeStats.Active + len(plans),
		},
		ModuleStats: usecase.ModuleStats{
			Earnings: usecase.EarningsStats{
				TotalBalance:     summary.Balance,
				TransactionCount: summary.TransactionCount,
			},
			Challenges: challengeStats,
			LifePlan: usecase.LifePlanStats{
				GoalsSet: len(plans),
				Active:   len(plans),
			},
			Study: usecase.StudyStats{
				Resources:  studyStats.TotalMaterials,
				Categories: len(studyStats.MaterialsByType),
			},
			Projects: usecase.ProjectStats{TotalTasks: plannedDay},
		},
		RecentActivity: usecase.RecentActivity{
			Challenges:   recentChallenges(challenges),
			Transactions: recentTransactions(recentTxs),
		},
	}, nil
}

func (srv *dashboardService) Slogans(context.Context) []string {
	return slices.Clone(slogans)
}

// Progress counts challenges completed in each of the last six months,
// including the current one, and totals the money moved over that window.
func (srv *dashboardService) Progress(ctx context.Context, ownerID uuid.UUID) (*usecase.ProgressOverview, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	windowStart := startOfMonth(srv.now()).AddDate(0, -(progressMonths - 1), 0)

	var (
		challenges []*entity.Challenge
		summary    entity.TransactionSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		challenges, err = srv.challengeRepo.List(gctx, ownerID)

		return errors.Wrap(err, "failed to list challenges")
	})
	g.Go(func() (err error) {
		summary, err = srv.transactionRepo.SummarizeSince(gctx, ownerID, windowStart)

		return errors.Wrap(err, "failed to summarize transactions")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	months := make([]usecase.MonthProgress, 0, progressMonths)
	for i := range progressMonths {
		start := windowStart.AddDate(0, i, 0)
		end := start.AddDate(0, 1, 0)

		completed := 0
		for _, c := range challenges {
			if c.Status == entity.ChallengeStatusCompleted && !c.UpdatedAt.Before(start) && c.UpdatedAt.Before(end) {
				completed++
			}
		}
		months = append(months, usecase.MonthProgress{
			Month:          start.Format("Jan"),
			Year:           start.Year(),
			CompletedTasks: completed,
		})
	}

	return &usecase.ProgressOverview{
		MonthlyProgress:   months,
		FinancialOverview: summary,
	}, nil
}

func startOfMonth(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// recentChallenges returns the newest challenges first.
func recentChallenges(challenges []*entity.Challenge) []usecase.RecentChallenge {
	sorted := slices.Clone(challenges)
	slices.SortStableFunc(sorted, func(a, b *entity.Challenge) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(sorted) > recentActivityLimit {
		sorted = sorted[:recentActivityLimit]
	}

	out := make([]usecase.RecentChallenge, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, usecase.RecentChallenge{
			ID:        c.ID,
			Name:      c.Name,
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}

	return out
}

func recentTransactions(transactions []*entity.Transaction) []usecase.RecentTransaction {
	out := make([]usecase.RecentTransaction, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, usecase.RecentTransaction{
			ID:          tx.ID,
			Description: tx.Description,
			Amount:      tx.Amount,
			Type:        tx.Type,
			Date:        tx.Date,
		})
	}

	return out
}

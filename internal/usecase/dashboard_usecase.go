package usecase

import (
	"context"
	"time"

	"lifeos/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// QuickStats is the headline row of the dashboard.
type QuickStats struct {
	MonthlyProgress int `json:"monthlyProgress"` // percent of this month's challenges completed
	CompletedTasks  int `json:"completedTasks"`
	ActiveGoals     int `json:"activeGoals"`
}

// EarningsStats summarises all transactions.
type EarningsStats struct {
	TotalBalance     float64 `json:"totalBalance"`
	TransactionCount int     `json:"transactionCount"`
}

// ChallengeStats counts challenges by status.
type ChallengeStats struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// LifePlanStats counts life plans. Plans carry no status, so every plan is active.
type LifePlanStats struct {
	GoalsSet  int `json:"goalsSet"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// StudyStats counts study materials and the distinct material types in use.
type StudyStats struct {
	Resources  int `json:"resources"`
	Categories int `json:"categories"`
}

// ProjectStats counts planned days.
type ProjectStats struct {
	ActiveProjects int   `json:"activeProjects"`
	TotalTasks     int64 `json:"totalTasks"`
}

// ModuleStats groups the per-module figures.
type ModuleStats struct {
	Earnings   EarningsStats  `json:"earnings"`
	Challenges ChallengeStats `json:"challenges"`
	LifePlan   LifePlanStats  `json:"lifePlan"`
	Study      StudyStats     `json:"study"`
	Projects   ProjectStats   `json:"projects"`
}

// RecentChallenge is a challenge as shown in the activity feed.
type RecentChallenge struct {
	ID        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Status    entity.ChallengeStatus `json:"status"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// RecentTransaction is a transaction as shown in the activity feed.
type RecentTransaction struct {
	ID          uuid.UUID              `json:"id"`
	Description string                 `json:"description"`
	Amount      float64                `json:"amount"`
	Type        entity.TransactionType `json:"type"`
	Date        time.Time              `json:"date"`
}

// RecentActivity lists the latest challenges and transactions.
type RecentActivity struct {
	Challenges   []RecentChallenge   `json:"challenges"`
	Transactions []RecentTransaction `json:"transactions"`
}

// DashboardStats is the body of the dashboard statistics endpoint.
type DashboardStats struct {
	QuickStats     QuickStats     `json:"quickStats"`
	ModuleStats    ModuleStats    `json:"moduleStats"`
	RecentActivity RecentActivity `json:"recentActivity"`
}

// MonthProgress counts challenges completed during one month.
type MonthProgress struct {
	Month          string `json:"month"`
	Year           int    `json:"year"`
	CompletedTasks int    `json:"completedTasks"`
}

// ProgressOverview covers the last six months, oldest first.
type ProgressOverview struct {
	MonthlyProgress   []MonthProgress           `json:"monthlyProgress"`
	FinancialOverview entity.TransactionSummary `json:"financialOverview"`
}

// DashboardUsecase aggregates read-only figures across modules.
type DashboardUsecase interface {
	Stats(ctx context.Context, ownerID uuid.UUID) (*DashboardStats, error)
	Slogans(ctx context.Context) []string
	Progress(ctx context.Context, ownerID uuid.UUID) (*ProgressOverview, error)
}

package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction,
// so that a cascade across tables commits or rolls back as a unit.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewRefreshTokenRepository() RefreshTokenRepository
	NewChallengeRepository() ChallengeRepository
	NewStudyStructureRepository() StudyStructureRepository
	NewFestivalRepository() FestivalRepository
	NewSpecialScheduleRepository() SpecialScheduleRepository
	NewDailyScheduleRepository() DailyScheduleRepository
	NewLifePlanRepository() LifePlanRepository
	NewTransactionRepository() TransactionRepository
	NewDiaryRepository() DiaryRepository
}

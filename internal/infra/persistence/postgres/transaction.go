// Package postgres contains the concrete implementation of the persistence layer using GORM.
package postgres

import (
	"context"

	"lifeos/internal/domain/repository"
	"lifeos/internal/errors"
	"lifeos/internal/infra/metrics"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx      *gorm.DB // a GORM transaction is also a *gorm.DB
	metrics *metrics.Metrics
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}

func (f *gormRepositoryFactory) NewChallengeRepository() repository.ChallengeRepository {
	return NewChallengeRepository(f.tx, f.metrics)
}

func (f *gormRepositoryFactory) NewStudyStructureRepository() repository.StudyStructureRepository {
	return NewStudyStructureRepository(f.tx, f.metrics)
}

func (f *gormRepositoryFactory) NewFestivalRepository() repository.FestivalRepository {
	return NewFestivalRepository(f.tx, f.metrics)
}

func (f *gormRepositoryFactory) NewSpecialScheduleRepository() repository.SpecialScheduleRepository {
	return NewSpecialScheduleRepository(f.tx, f.metrics)
}

func (f *gormRepositoryFactory) NewDailyScheduleRepository() repository.DailyScheduleRepository {
	return NewDailyScheduleRepository(f.tx, f.metrics)
}

func (f *gormRepositoryFactory) NewLifePlanRepository() repository.LifePlanRepository {
	return NewLifePlanRepository(f.tx)
}

func (f *gormRepositoryFactory) NewTransactionRepository() repository.TransactionRepository {
	return NewTransactionRepository(f.tx)
}

func (f *gormRepositoryFactory) NewDiaryRepository() repository.DiaryRepository {
	return NewDiaryRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, m *metrics.Metrics) repository.TransactionManager {
	return &gormTransactionManager{db: db, metrics: m}
}

// Execute runs fn within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panicking callback must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx, metrics: tm.metrics}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

package postgres

import (
	"context"
	"testing"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestDocumentStore_DriverFailureIsStorageError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChallengeRepository(db, newTestMetrics())

	mock.ExpectQuery(`SELECT \* FROM "aggregate_documents"`).
		WillReturnError(errors.New("connection reset by peer"))

	_, err := repo.Load(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.True(t, domainerrors.IsStorageError(err))
	assert.NotErrorIs(t, err, domainerrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_SummarizeFailureIsStorageError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectQuery(`SELECT type, COALESCE\(SUM\(amount\), 0\) AS total, COUNT\(\*\) AS count FROM "transactions"`).
		WillReturnError(errors.New("canceling statement due to statement timeout"))

	_, err := repo.Summarize(context.Background(), uuid.New(), entity.TransactionFilter{})
	assert.True(t, domainerrors.IsStorageError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

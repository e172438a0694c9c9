package postgres

import (
	"context"
	"testing"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, username, email string) *entity.User {
	t.Helper()

	user, err := entity.NewUser(username, email, "hash", testNow)
	require.NoError(t, err)

	return user
}

func TestUserRepository_CreateRejectsDuplicates(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser(t, "alice", "Alice@Example.com")))

	err := repo.Create(ctx, newTestUser(t, "alice2", "alice@example.com"))
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	exists, err := repo.ExistsByEmailOrUsername(ctx, "nobody@example.com", "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRefreshTokenRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := &refreshTokenRepository{db: db, now: func() time.Time { return testNow }}
	ctx := context.Background()
	userID := uuid.New()

	live := &entity.RefreshToken{UserID: userID, TokenHash: "live", ExpiresAt: testNow.Add(time.Hour)}
	stale := &entity.RefreshToken{UserID: userID, TokenHash: "stale", ExpiresAt: testNow.Add(-time.Hour)}
	require.NoError(t, repo.CreateRefreshToken(ctx, live))
	require.NoError(t, repo.CreateRefreshToken(ctx, stale))
	assert.NotEqual(t, uuid.Nil, live.ID)

	found, err := repo.FindRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, userID, found.UserID)

	_, err = repo.FindRefreshTokenByHash(ctx, "stale")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)

	removed, err := repo.DeleteExpiredRefreshTokens(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, repo.DeleteRefreshTokenByHash(ctx, "live"))
	assert.ErrorIs(t, repo.DeleteRefreshTokenByHash(ctx, "live"), domainerrors.ErrRefreshTokenInvalid)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db, newTestMetrics())
	ctx := context.Background()
	user := newTestUser(t, "bob", "bob@example.com")

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewUserRepository().Create(ctx, user); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewUserRepository(db).FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewUserRepository().Create(ctx, user)
	})
	require.NoError(t, err)

	_, err = NewUserRepository(db).FindByID(ctx, user.ID)
	assert.NoError(t, err)
}

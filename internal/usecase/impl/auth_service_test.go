package impl

import (
	"context"
	"testing"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/domain/repository"
	"lifeos/internal/domain/service"
	"lifeos/internal/infra/metrics"
	mockRepo "lifeos/internal/mocks/repository"
	mockService "lifeos/internal/mocks/service"
	"lifeos/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	refreshRepo  *mockRepo.MockRefreshTokenRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func newTestAuthService(t *testing.T) (*authService, authMocks) {
	m := authMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		refreshRepo:  mockRepo.NewMockRefreshTokenRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
	}

	srv := NewAuthService(AuthServiceParams{
		TxManager:        m.txManager,
		UserRepo:         m.userRepo,
		RefreshTokenRepo: m.refreshRepo,
		Hasher:           m.hasher,
		TokenService:     m.tokenService,
		Metrics:          metrics.New(),
		Logger:           newDiscardLogger(),
	}).(*authService)
	srv.now = fixedClock

	return srv, m
}

func issuedTokens() *service.IssuedTokens {
	return &service.IssuedTokens{
		AccessToken:      "access-token",
		AccessExpiresAt:  testNow.Add(15 * time.Minute),
		RefreshToken:     "refresh-token",
		RefreshExpiresAt: testNow.Add(7 * 24 * time.Hour),
	}
}

func refreshClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{
		Type:             service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("Str0ng!Pass").Return("hashed", nil)
	m.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, "ada@example.com", "ada").Return(false, nil)
	m.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	m.tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("uuid.UUID")).Return(issuedTokens(), nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.refreshRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.TokenHash == "refresh-hash" && token.ExpiresAt.Equal(testNow.Add(7*24*time.Hour))
		})).
		Return(nil)

	out, err := srv.Register(ctx, &usecase.RegisterInput{
		Username: "ada",
		Email:    " Ada@Example.com ",
		Password: "Str0ng!Pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out.User.Email)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	assert.Equal(t, "access-token", out.Tokens.AccessToken)
	assert.Equal(t, "refresh-token", out.Tokens.RefreshToken)
}

func TestAuthService_Register_AlreadyExists(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("Str0ng!Pass").Return("hashed", nil)
	m.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, "ada@example.com", "ada").Return(true, nil)

	out, err := srv.Register(ctx, &usecase.RegisterInput{Username: "ada", Email: "ada@example.com", Password: "Str0ng!Pass"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("short").Return("", domainerrors.ErrPasswordStrength)

	_, err := srv.Register(ctx, &usecase.RegisterInput{Username: "ada", Email: "ada@example.com", Password: "short"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, domainerrors.NotFound("user"))

	_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed"}

	m.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_Success(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed"}

	m.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("Str0ng!Pass", "hashed").Return(true)
	m.tokenService.EXPECT().GenerateTokens(user.ID).Return(issuedTokens(), nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.refreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	out, err := srv.Login(ctx, &usecase.LoginInput{Email: "ADA@example.com", Password: "Str0ng!Pass"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)
	assert.Equal(t, testNow.Add(15*time.Minute), out.Tokens.ExpiresAt)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.tokenService.EXPECT().ValidateRefreshToken("old-token").Return(refreshClaims(userID), nil)
	m.tokenService.EXPECT().HashToken("old-token").Return("old-hash")
	m.tokenService.EXPECT().GenerateTokens(userID).Return(issuedTokens(), nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("new-hash")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "old-hash").Return(&entity.RefreshToken{UserID: userID, TokenHash: "old-hash"}, nil)
			mockRefreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old-hash").Return(nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
					return token.TokenHash == "new-hash" && token.UserID == userID
				})).
				Return(nil)

			return fn(mockFactory)
		})

	pair, err := srv.Refresh(ctx, "old-token")

	require.NoError(t, err)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()

	m.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))

	_, err := srv.Refresh(ctx, "garbage")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_ReusedTokenIsRejected(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.tokenService.EXPECT().ValidateRefreshToken("used-token").Return(refreshClaims(userID), nil)
	m.tokenService.EXPECT().HashToken("used-token").Return("used-hash")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)
			mockRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "used-hash").Return(nil, domainerrors.ErrRefreshTokenInvalid)

			return fn(mockFactory)
		})

	_, err := srv.Refresh(ctx, "used-token")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout_AlreadyEndedSessionSucceeds(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()

	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.refreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(domainerrors.ErrRefreshTokenInvalid)

	assert.NoError(t, srv.Logout(ctx, "refresh-token"))
}

func TestAuthService_Me_RequiresUser(t *testing.T) {
	srv, _ := newTestAuthService(t)

	_, err := srv.Me(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_ChangePassword_EndsSessions(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old-hash", UpdatedAt: testNow.Add(-time.Hour)}

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	m.hasher.EXPECT().Check("Old!Passw0rd", "old-hash").Return(true)
	m.hasher.EXPECT().Hash("New!Passw0rd").Return("new-hash", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockUserRepo.EXPECT().Update(ctx, user).Return(nil)
			mockRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	err := srv.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{CurrentPassword: "Old!Passw0rd", NewPassword: "New!Passw0rd"})

	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.PasswordHash)
	assert.Equal(t, testNow, user.UpdatedAt)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, PasswordHash: "old-hash"}, nil)
	m.hasher.EXPECT().Check("nope", "old-hash").Return(false)

	err := srv.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{CurrentPassword: "nope", NewPassword: "New!Passw0rd"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_DeleteAccount_CascadesInOneTransaction(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)

			userRepo := mockRepo.NewMockUserRepository(t)
			challengeRepo := mockRepo.NewMockChallengeRepository(t)
			studyRepo := mockRepo.NewMockStudyStructureRepository(t)
			festivalRepo := mockRepo.NewMockFestivalRepository(t)
			specialRepo := mockRepo.NewMockSpecialScheduleRepository(t)
			dailyRepo := mockRepo.NewMockDailyScheduleRepository(t)
			planRepo := mockRepo.NewMockLifePlanRepository(t)
			txRepo := mockRepo.NewMockTransactionRepository(t)
			diaryRepo := mockRepo.NewMockDiaryRepository(t)
			refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(userRepo)
			mockFactory.EXPECT().NewChallengeRepository().Return(challengeRepo)
			mockFactory.EXPECT().NewStudyStructureRepository().Return(studyRepo)
			mockFactory.EXPECT().NewFestivalRepository().Return(festivalRepo)
			mockFactory.EXPECT().NewSpecialScheduleRepository().Return(specialRepo)
			mockFactory.EXPECT().NewDailyScheduleRepository().Return(dailyRepo)
			mockFactory.EXPECT().NewLifePlanRepository().Return(planRepo)
			mockFactory.EXPECT().NewTransactionRepository().Return(txRepo)
			mockFactory.EXPECT().NewDiaryRepository().Return(diaryRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)

			userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			challengeRepo.EXPECT().DeleteByOwner(ctx, userID).Return(nil)
			studyRepo.EXPECT().DeleteByOwner(ctx, userID).Return(nil)
			festivalRepo.EXPECT().DeleteByOwner(ctx, userID).Return(nil)
			specialRepo.EXPECT().DeleteByOwner(ctx, userID).Return(nil)
			dailyRepo.EXPECT().DeleteByOwner(ctx, userID).Return(nil)
			planRepo.EXPECT().DeleteByOwner(ctx, userID).Return(nil)
			txRepo.EXPECT().DeleteByOwner(ctx, userID).Return(nil)
			diaryRepo.EXPECT().DeleteByOwner(ctx, userID).Return(nil)
			refreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
			userRepo.EXPECT().Delete(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, srv.DeleteAccount(ctx, userID))
}

func TestAuthService_DeleteAccount_StopsOnFailure(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	storageErr := domainerrors.NewStorageError(errors.New("connection reset"), "failed to delete challenges")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			challengeRepo := mockRepo.NewMockChallengeRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(userRepo)
			mockFactory.EXPECT().NewChallengeRepository().Return(challengeRepo)
			mockFactory.EXPECT().NewStudyStructureRepository().Return(mockRepo.NewMockStudyStructureRepository(t))
			mockFactory.EXPECT().NewFestivalRepository().Return(mockRepo.NewMockFestivalRepository(t))
			mockFactory.EXPECT().NewSpecialScheduleRepository().Return(mockRepo.NewMockSpecialScheduleRepository(t))
			mockFactory.EXPECT().NewDailyScheduleRepository().Return(mockRepo.NewMockDailyScheduleRepository(t))
			mockFactory.EXPECT().NewLifePlanRepository().Return(mockRepo.NewMockLifePlanRepository(t))
			mockFactory.EXPECT().NewTransactionRepository().Return(mockRepo.NewMockTransactionRepository(t))
			mockFactory.EXPECT().NewDiaryRepository().Return(mockRepo.NewMockDiaryRepository(t))
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRepo.NewMockRefreshTokenRepository(t))

			userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			challengeRepo.EXPECT().DeleteByOwner(ctx, userID).Return(storageErr)

			return fn(mockFactory)
		})

	err := srv.DeleteAccount(ctx, userID)

	require.Error(t, err)
	assert.True(t, domainerrors.IsStorageError(err))
}

func TestAuthService_PurgeExpiredSessions(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()

	m.refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx, testNow).Return(3, nil)

	removed, err := srv.PurgeExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

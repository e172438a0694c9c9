package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lifeos/internal/delivery/context"
	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/domain/repository"
	"lifeos/internal/domain/service"
	"lifeos/internal/errors"
	"lifeos/internal/infra/metrics"
	"lifeos/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Auth events recorded in the metrics.
const (
	authEventRegister       = "register"
	authEventLogin          = "login"
	authEventRefresh        = "refresh"
	authEventChangePassword = "change_password"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	metrics          *metrics.Metrics
	now              func() time.Time
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Metrics          *metrics.Metrics
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		metrics:          params.Metrics,
		now:              time.Now,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) record(event string, err error) {
	if srv.metrics != nil {
		srv.metrics.RecordAuthEvent(event, err == nil)
	}
}

// Register opens an account and starts its first session.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (out *usecase.AuthOutput, err error) {
	defer func() { srv.record(authEventRegister, err) }()

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Warn("Password rejected during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user, err := entity.NewUser(input.Username, input.Email, hashedPassword, srv.now())
	if err != nil {
		return nil, err
	}

	exists, err := srv.userRepo.ExistsByEmailOrUsername(ctx, user.Email, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing account")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	tokens, err := srv.issueTokens(ctx, srv.refreshTokenRepo, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, Tokens: tokens}, nil
}

// Login checks the credentials and starts a new session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (out *usecase.AuthOutput, err error) {
	defer func() { srv.record(authEventLogin, err) }()

	email, err := entity.NormalizeEmail(input.Email)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, domainerrors.ErrNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown email")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := srv.issueTokens(ctx, srv.refreshTokenRepo, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, Tokens: tokens}, nil
}

// Refresh revokes the presented session and issues a new one in one transaction,
// so a refresh token is usable exactly once.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (pair *entity.TokenPair, err error) {
	defer func() { srv.record(authEventRefresh, err) }()

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	tokenHash := srv.tokenService.HashToken(refreshToken)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewRefreshTokenRepository()

		stored, err := tokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.UserID != userID {
			return domainerrors.ErrRefreshTokenInvalid
		}
		if err := tokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}
		if _, err := repoFactory.NewUserRepository().FindByID(ctx, userID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to load user for refresh")
		}

		pair, err = srv.issueTokens(ctx, tokenRepo, userID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute refresh transaction")
	}

	return pair, nil
}

// Logout ends the session of the presented refresh token. Ending an already
// ended session succeeds.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil && !errors.Is(err, domainerrors.ErrRefreshTokenInvalid) {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// Me returns the authenticated account.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	if err := requireOwner(userID); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ChangePassword replaces the password and ends every session of the user.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) (err error) {
	defer func() { srv.record(authEventChangePassword, err) }()

	if err := requireOwner(userID); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}
	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials.WithDetails("current password is incorrect")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}
	user.ChangePasswordHash(hashedPassword, srv.now())

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user password")
		}
		if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to end user sessions")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute change password transaction")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}

// DeleteAccount removes the user and everything they own. Either all of it
// is gone afterwards or none of it.
func (srv *authService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := requireOwner(userID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewUserRepository().FindByID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		cascade := []struct {
			name   string
			delete func(context.Context, uuid.UUID) error
		}{
			{"challenges", repoFactory.NewChallengeRepository().DeleteByOwner},
			{"study structure", repoFactory.NewStudyStructureRepository().DeleteByOwner},
			{"festivals", repoFactory.NewFestivalRepository().DeleteByOwner},
			{"special schedules", repoFactory.NewSpecialScheduleRepository().DeleteByOwner},
			{"daily schedules", repoFactory.NewDailyScheduleRepository().DeleteByOwner},
			{"life plans", repoFactory.NewLifePlanRepository().DeleteByOwner},
			{"transactions", repoFactory.NewTransactionRepository().DeleteByOwner},
			{"diary entries", repoFactory.NewDiaryRepository().DeleteByOwner},
			{"sessions", repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID},
		}
		for _, step := range cascade {
			if err := step.delete(ctx, userID); err != nil {
				return errors.Wrapf(err, "failed to delete %s", step.name)
			}
		}

		if err := repoFactory.NewUserRepository().Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute delete account transaction")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID))

	return nil
}

// PurgeExpiredSessions removes sessions whose refresh token can no longer be used.
func (srv *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired sessions")
	}

	return removed, nil
}

// issueTokens mints a token pair and stores the hash of its refresh token.
func (srv *authService) issueTokens(ctx context.Context, tokenRepo repository.RefreshTokenRepository, userID uuid.UUID) (*entity.TokenPair, error) {
	issued, err := srv.tokenService.GenerateTokens(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		ID:        entity.NewID(),
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(issued.RefreshToken),
		ExpiresAt: issued.RefreshExpiresAt,
		CreatedAt: srv.now().UTC(),
	}
	if err := tokenRepo.CreateRefreshToken(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &entity.TokenPair{
		AccessToken:  issued.AccessToken,
		RefreshToken: issued.RefreshToken,
		ExpiresAt:    issued.AccessExpiresAt,
	}, nil
}

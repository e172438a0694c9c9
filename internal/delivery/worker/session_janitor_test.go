package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifeos/config"
	"lifeos/internal/errors"
	mockUsecase "lifeos/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestJanitor(t *testing.T, authUC *mockUsecase.MockAuthUsecase) (*sessionJanitor, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Auth: &config.AuthConfig{SessionPurgeInterval: 10 * time.Millisecond}}

	j := NewSessionJanitor(SessionJanitorParams{
		Lc:     lc,
		Cfg:    cfg,
		Logger: newDiscardLogger(),
		AuthUC: authUC,
	}).(*sessionJanitor)

	return j, lc
}

func TestSessionJanitor_PurgesOnEveryTick(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	j, lc := newTestJanitor(t, authUC)

	purged := make(chan struct{}, 1)
	authUC.EXPECT().PurgeExpiredSessions(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			select {
			case purged <- struct{}{}:
			default:
			}

			return 2, nil
		})

	lc.RequireStart()
	served := make(chan error, 1)
	go func() { served <- j.Serve(context.Background()) }()

	select {
	case <-purged:
	case <-time.After(time.Second):
		t.Fatal("janitor never purged")
	}

	lc.RequireStop()
	assert.NoError(t, <-served)
}

func TestSessionJanitor_SurvivesPurgeFailure(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	j, _ := newTestJanitor(t, authUC)

	authUC.EXPECT().PurgeExpiredSessions(mock.Anything).Return(0, errors.New("database is locked")).Once()

	j.purge(context.Background())
}

func TestSessionJanitor_StopsWithContext(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	j, _ := newTestJanitor(t, authUC)
	authUC.EXPECT().PurgeExpiredSessions(mock.Anything).Return(0, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, j.Serve(ctx))
}

func TestNewSessionJanitor_DefaultInterval(t *testing.T) {
	j := NewSessionJanitor(SessionJanitorParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    &config.Config{},
		Logger: newDiscardLogger(),
		AuthUC: mockUsecase.NewMockAuthUsecase(t),
	}).(*sessionJanitor)

	assert.Equal(t, defaultPurgeInterval, j.interval)
}

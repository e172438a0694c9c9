package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifeos/config"
	apimiddleware "lifeos/internal/delivery/api/middleware"
	"lifeos/internal/delivery/api/router"
	"lifeos/internal/delivery/api/router/handler"
	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/domain/service"
	"lifeos/internal/errors"
	"lifeos/internal/infra/metrics"
	mockService "lifeos/internal/mocks/service"
	mockUsecase "lifeos/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

type testServer struct {
	echo        *echo.Echo
	tokenSvc    *mockService.MockTokenService
	challengeUC *mockUsecase.MockChallengeUsecase
}

func newTestServer(t *testing.T) testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	tokenSvc := mockService.NewMockTokenService(t)
	challengeUC := mockUsecase.NewMockChallengeUsecase(t)

	params := router.RouterParams{
		HealthHandler:    handler.NewHealthHandler(handler.HealthHandlerParams{DB: okPinger{}, Logger: logger}),
		AuthHandler:      handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: logger}),
		ChallengeHandler: handler.NewChallengeHandler(handler.ChallengeHandlerParams{ChallengeUC: challengeUC, Logger: logger}),
		StudyHandler:     handler.NewStudyHandler(handler.StudyHandlerParams{StudyUC: mockUsecase.NewMockStudyUsecase(t), Logger: logger}),
		FestivalHandler:  handler.NewFestivalHandler(handler.FestivalHandlerParams{FestivalUC: mockUsecase.NewMockFestivalUsecase(t), Logger: logger}),
		ScheduleHandler: handler.NewScheduleHandler(handler.ScheduleHandlerParams{
			SpecialScheduleUC: mockUsecase.NewMockSpecialScheduleUsecase(t),
			TimetableUC:       mockUsecase.NewMockTimetableUsecase(t),
			Logger:            logger,
		}),
		LifeHandler: handler.NewLifeHandler(handler.LifeHandlerParams{
			LifePlanUC:    mockUsecase.NewMockLifePlanUsecase(t),
			TransactionUC: mockUsecase.NewMockTransactionUsecase(t),
			DiaryUC:       mockUsecase.NewMockDiaryUsecase(t),
			Logger:        logger,
		}),
		DashboardHandler: handler.NewDashboardHandler(handler.DashboardHandlerParams{DashboardUC: mockUsecase.NewMockDashboardUsecase(t), Logger: logger}),
		AuthMiddleware:   apimiddleware.NewAuthMiddleware(tokenSvc, logger),
		Metrics:          metrics.New(),
		Config:           cfg,
	}

	return testServer{
		echo:        NewEcho(cfg, logger, params),
		tokenSvc:    tokenSvc,
		challengeUC: challengeUC,
	}
}

func (s testServer) acceptToken(token string, userID uuid.UUID) {
	s.tokenSvc.EXPECT().ValidateAccessToken(token).Return(&service.Claims{
		Type:             service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}, nil)
}

func (s testServer) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_APIRequiresToken(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/api/v1/challenges", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
}

func TestServer_AuthenticatedRequestIsCounted(t *testing.T) {
	srv := newTestServer(t)
	userID := uuid.New()
	srv.acceptToken("good", userID)
	srv.challengeUC.EXPECT().List(mock.Anything, userID).Return([]*entity.Challenge{}, nil)

	rec := srv.do(http.MethodGet, "/api/v1/challenges", "good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)

	metricsRec := srv.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), `route="/api/v1/challenges"`)
}

func TestServer_StorageFailureHidesDetails(t *testing.T) {
	srv := newTestServer(t)
	userID, id := uuid.New(), uuid.New()
	srv.acceptToken("good", userID)
	srv.challengeUC.EXPECT().
		Get(mock.Anything, userID, id).
		Return(nil, domainerrors.NewStorageError(errors.New("dial tcp: connection refused"), "failed to load challenge"))

	rec := srv.do(http.MethodGet, "/api/v1/challenges/"+id.String(), "good")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.NotContains(t, rec.Body.String(), "failed to load challenge")
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package handler

import (
	"net/http"
	"testing"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/errors"
	mockUsecase "lifeos/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestChallengeHandler(t *testing.T) (*ChallengeHandler, *mockUsecase.MockChallengeUsecase) {
	challengeUC := mockUsecase.NewMockChallengeUsecase(t)

	return NewChallengeHandler(ChallengeHandlerParams{ChallengeUC: challengeUC, Logger: newDiscardLogger()}), challengeUC
}

func TestChallengeHandler_Create(t *testing.T) {
	h, challengeUC := newTestChallengeHandler(t)
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	c, rec := newTestContext(http.MethodPost, "/api/v1/challenges", `{
		"name": "100 days of code",
		"startDate": "2026-03-01",
		"sections": [{"name": "Go", "subjects": [{"name": "Generics", "progress": 10}]}]
	}`)
	ownerID := authenticate(c)

	challengeUC.EXPECT().
		Create(mock.Anything, ownerID, mock.MatchedBy(func(in entity.ChallengeInput) bool {
			return in.Name == "100 days of code" &&
				in.StartDate != nil && in.StartDate.Equal(start) &&
				len(in.Sections) == 1 && len(in.Sections[0].Subjects) == 1 &&
				in.Sections[0].Subjects[0].Progress == 10
		})).
		Return(&entity.Challenge{Aggregate: entity.Aggregate{ID: uuid.New(), OwnerID: ownerID}, Name: "100 days of code"}, nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"100 days of code"`)
}

func TestChallengeHandler_Create_BadDate(t *testing.T) {
	h, _ := newTestChallengeHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/challenges", `{"name":"x","startDate":"March first"}`)
	authenticate(c)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChallengeHandler_Update(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		setup      func(uc *mockUsecase.MockChallengeUsecase, ownerID, id uuid.UUID)
		wantStatus int
		wantCode   string
	}{
		{
			name: "patch status",
			body: `{"status":"paused"}`,
			setup: func(uc *mockUsecase.MockChallengeUsecase, ownerID, id uuid.UUID) {
				paused := entity.ChallengeStatusPaused
				uc.EXPECT().
					Update(mock.Anything, ownerID, id, entity.ChallengePatch{Status: &paused}).
					Return(&entity.Challenge{Aggregate: entity.Aggregate{ID: id}, Status: paused}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown field",
			body:       `{"ownerId":"someone-else"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "invalid status",
			body:       `{"status":"archived"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "malformed id",
			id:         "not-a-uuid",
			body:       `{"name":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "missing challenge",
			body: `{"name":"x"}`,
			setup: func(uc *mockUsecase.MockChallengeUsecase, ownerID, id uuid.UUID) {
				uc.EXPECT().
					Update(mock.Anything, ownerID, id, mock.Anything).
					Return(nil, domainerrors.NotFound("challenge"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, challengeUC := newTestChallengeHandler(t)
			id := uuid.New()
			rawID := id.String()
			if tt.id != "" {
				rawID = tt.id
			}

			c, rec := newTestContext(http.MethodPut, "/api/v1/challenges/"+rawID, tt.body)
			withParams(c, "id", rawID)
			ownerID := authenticate(c)
			if tt.setup != nil {
				tt.setup(challengeUC, ownerID, id)
			}

			require.NoError(t, h.Update(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			}
		})
	}
}

func TestChallengeHandler_Get_StorageFailureIsReturned(t *testing.T) {
	h, challengeUC := newTestChallengeHandler(t)
	id := uuid.New()

	c, _ := newTestContext(http.MethodGet, "/api/v1/challenges/"+id.String(), "")
	withParams(c, "id", id.String())
	ownerID := authenticate(c)

	challengeUC.EXPECT().
		Get(mock.Anything, ownerID, id).
		Return(nil, domainerrors.NewStorageError(errors.New("connection reset"), "failed to load challenge"))

	err := h.Get(c)

	require.Error(t, err)
	assert.True(t, domainerrors.IsStorageError(err))
}

func TestChallengeHandler_AddSubjects_RequiresAtLeastOne(t *testing.T) {
	h, _ := newTestChallengeHandler(t)
	id, sectionID := uuid.New(), uuid.New()

	c, rec := newTestContext(http.MethodPost, "/api/v1/challenges/x/sections/y/subjects/batch", `{"subjects":[]}`)
	withParams(c, "id", id.String(), "sectionId", sectionID.String())
	authenticate(c)

	require.NoError(t, h.AddSubjects(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

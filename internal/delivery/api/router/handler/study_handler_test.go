package handler

import (
	"net/http"
	"testing"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	mockUsecase "lifeos/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStudyHandler(t *testing.T) (*StudyHandler, *mockUsecase.MockStudyUsecase) {
	studyUC := mockUsecase.NewMockStudyUsecase(t)

	return NewStudyHandler(StudyHandlerParams{StudyUC: studyUC, Logger: newDiscardLogger()}), studyUC
}

func TestStudyHandler_AddBranch(t *testing.T) {
	h, studyUC := newTestStudyHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/study/branches", `{"name":"Mathematics","isActive":false}`)
	ownerID := authenticate(c)

	studyUC.EXPECT().
		AddBranch(mock.Anything, ownerID, mock.MatchedBy(func(in entity.BranchInput) bool {
			return in.Name == "Mathematics" && in.IsActive != nil && !*in.IsActive
		})).
		Return(entity.NewStudyStructure(ownerID, time.Now()), nil)

	require.NoError(t, h.AddBranch(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestStudyHandler_AddBranch_Duplicate(t *testing.T) {
	h, studyUC := newTestStudyHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/study/branches", `{"name":"physics"}`)
	ownerID := authenticate(c)

	studyUC.EXPECT().AddBranch(mock.Anything, ownerID, mock.Anything).
		Return(nil, domainerrors.DuplicateName("branch", "physics"))

	require.NoError(t, h.AddBranch(c))
	assert.Equal(t, "DUPLICATE_NAME", errorCode(t, rec))
}

func TestStudyHandler_AddMaterial(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		params     func(branchID, subjectID uuid.UUID) []string
		expectCall bool
		wantStatus int
		wantCode   string
	}{
		{
			name: "added",
			body: `{"title":"CLRS","link":"https://example.com/clrs.pdf","type":"pdf"}`,
			params: func(branchID, subjectID uuid.UUID) []string {
				return []string{"branchId", branchID.String(), "subjectId", subjectID.String()}
			},
			expectCall: true,
			wantStatus: http.StatusCreated,
		},
		{
			name: "unknown type",
			body: `{"title":"CLRS","link":"https://example.com/clrs.pdf","type":"podcast"}`,
			params: func(branchID, subjectID uuid.UUID) []string {
				return []string{"branchId", branchID.String(), "subjectId", subjectID.String()}
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name: "missing link",
			body: `{"title":"CLRS"}`,
			params: func(branchID, subjectID uuid.UUID) []string {
				return []string{"branchId", branchID.String(), "subjectId", subjectID.String()}
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name: "malformed subject id",
			body: `{"title":"CLRS","link":"https://example.com/clrs.pdf"}`,
			params: func(branchID, _ uuid.UUID) []string {
				return []string{"branchId", branchID.String(), "subjectId", "algorithms"}
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, studyUC := newTestStudyHandler(t)
			branchID, subjectID := uuid.New(), uuid.New()

			c, rec := newTestContext(http.MethodPost, "/api/v1/study/branches/x/subjects/y/materials", tt.body)
			ownerID := authenticate(c)
			withParams(c, tt.params(branchID, subjectID)...)

			if tt.expectCall {
				studyUC.EXPECT().
					AddMaterial(mock.Anything, ownerID, branchID, subjectID, mock.MatchedBy(func(in entity.MaterialInput) bool {
						return in.Title == "CLRS" && in.Type == entity.MaterialTypePDF
					})).
					Return(entity.NewStudyStructure(ownerID, time.Now()), nil)
			}

			require.NoError(t, h.AddMaterial(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			}
		})
	}
}

func TestStudyHandler_Statistics(t *testing.T) {
	h, studyUC := newTestStudyHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/study/statistics", "")
	ownerID := authenticate(c)

	studyUC.EXPECT().Statistics(mock.Anything, ownerID).Return(&entity.StudyStatistics{
		TotalBranches:   2,
		ActiveBranches:  1,
		TotalMaterials:  3,
		MaterialsByType: map[entity.MaterialType]int{entity.MaterialTypePDF: 2, entity.MaterialTypeVideo: 1},
	}, nil)

	require.NoError(t, h.Statistics(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.EqualValues(t, 2, data["totalBranches"])
	assert.EqualValues(t, 2, data["materialsByType"].(map[string]any)["pdf"])
}

func TestStudyHandler_RemoveSubject_NotFound(t *testing.T) {
	h, studyUC := newTestStudyHandler(t)
	branchID, subjectID := uuid.New(), uuid.New()

	c, rec := newTestContext(http.MethodDelete, "/api/v1/study/branches/x/subjects/y", "")
	ownerID := authenticate(c)
	withParams(c, "branchId", branchID.String(), "subjectId", subjectID.String())

	studyUC.EXPECT().RemoveSubject(mock.Anything, ownerID, branchID, subjectID).
		Return(nil, domainerrors.NotFound("study subject"))

	require.NoError(t, h.RemoveSubject(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package handler

import (
	"net/http"
	"testing"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	mockUsecase "lifeos/internal/mocks/usecase"
	"lifeos/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFestivalHandler(t *testing.T) (*FestivalHandler, *mockUsecase.MockFestivalUsecase) {
	festivalUC := mockUsecase.NewMockFestivalUsecase(t)

	return NewFestivalHandler(FestivalHandlerParams{FestivalUC: festivalUC, Logger: newDiscardLogger()}), festivalUC
}

func TestFestivalHandler_Create(t *testing.T) {
	h, festivalUC := newTestFestivalHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/festivals", `{
		"name": "Eid",
		"items": [{"label": "Clothes", "price": 120}, {"label": "Sweets", "price": 30.5, "completed": true}]
	}`)
	ownerID := authenticate(c)

	festivalUC.EXPECT().
		Create(mock.Anything, ownerID, mock.MatchedBy(func(in entity.FestivalInput) bool {
			return in.Name == "Eid" && len(in.Items) == 2 && in.Items[1].Completed && in.Items[1].Price == 30.5
		})).
		Return(&usecase.FestivalView{
			Festival: &entity.Festival{Aggregate: entity.Aggregate{ID: uuid.New(), OwnerID: ownerID}, Name: "Eid"},
			Totals:   entity.FestivalTotals{ItemCount: 2, CompletedCount: 1, TotalPrice: 150.5, CompletedPrice: 30.5},
		}, nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	totals := data["totals"].(map[string]any)
	assert.InDelta(t, 150.5, totals["totalPrice"], 1e-9)
	assert.Equal(t, "Eid", data["name"])
}

func TestFestivalHandler_Create_NegativeItemPrice(t *testing.T) {
	h, _ := newTestFestivalHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/festivals", `{"name":"Eid","items":[{"label":"Gift","price":-5}]}`)
	authenticate(c)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
}

func TestFestivalHandler_UpdateItem(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(uc *mockUsecase.MockFestivalUsecase, ownerID, id, itemID uuid.UUID)
		wantStatus int
		wantCode   string
	}{
		{
			name: "mark completed",
			body: `{"completed":true}`,
			setupMock: func(uc *mockUsecase.MockFestivalUsecase, ownerID, id, itemID uuid.UUID) {
				uc.EXPECT().
					UpdateItem(mock.Anything, ownerID, id, itemID, mock.MatchedBy(func(p entity.BucketItemPatch) bool {
						return p.Completed != nil && *p.Completed && p.Label == nil && p.Price == nil
					})).
					Return(&usecase.FestivalView{Festival: &entity.Festival{}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "negative price",
			body:       `{"price":-1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "unknown field",
			body:       `{"quantity":2}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "item missing",
			body: `{"label":"Lanterns"}`,
			setupMock: func(uc *mockUsecase.MockFestivalUsecase, ownerID, id, itemID uuid.UUID) {
				uc.EXPECT().
					UpdateItem(mock.Anything, ownerID, id, itemID, mock.Anything).
					Return(nil, domainerrors.NotFound("bucket item"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, festivalUC := newTestFestivalHandler(t)
			id, itemID := uuid.New(), uuid.New()

			c, rec := newTestContext(http.MethodPut, "/api/v1/festivals/"+id.String()+"/items/"+itemID.String(), tt.body)
			ownerID := authenticate(c)
			withParams(c, "id", id.String(), "itemId", itemID.String())

			if tt.setupMock != nil {
				tt.setupMock(festivalUC, ownerID, id, itemID)
			}

			require.NoError(t, h.UpdateItem(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			}
		})
	}
}

func TestFestivalHandler_Delete(t *testing.T) {
	h, festivalUC := newTestFestivalHandler(t)
	id := uuid.New()

	c, rec := newTestContext(http.MethodDelete, "/api/v1/festivals/"+id.String(), "")
	ownerID := authenticate(c)
	withParams(c, "id", id.String())

	festivalUC.EXPECT().Delete(mock.Anything, ownerID, id).Return(nil)

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Festival deleted successfully")
}

package handler

import (
	"net/http"
	"testing"
	"time"

	"lifeos/internal/domain/entity"
	mockUsecase "lifeos/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type lifeMocks struct {
	lifePlan    *mockUsecase.MockLifePlanUsecase
	transaction *mockUsecase.MockTransactionUsecase
	diary       *mockUsecase.MockDiaryUsecase
}

func newTestLifeHandler(t *testing.T) (*LifeHandler, lifeMocks) {
	m := lifeMocks{
		lifePlan:    mockUsecase.NewMockLifePlanUsecase(t),
		transaction: mockUsecase.NewMockTransactionUsecase(t),
		diary:       mockUsecase.NewMockDiaryUsecase(t),
	}

	return NewLifeHandler(LifeHandlerParams{
		LifePlanUC:    m.lifePlan,
		TransactionUC: m.transaction,
		DiaryUC:       m.diary,
		Logger:        newDiscardLogger(),
	}), m
}

func TestLifeHandler_TransactionSummary_ParsesFilter(t *testing.T) {
	h, m := newTestLifeHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/transactions/summary?month=2&year=2026&type=expense", "")
	ownerID := authenticate(c)

	m.transaction.EXPECT().
		Summary(mock.Anything, ownerID, entity.TransactionFilter{Year: 2026, Month: time.February, Type: entity.TransactionExpense}).
		Return(&entity.TransactionSummary{Expenses: 120, Balance: -120, TransactionCount: 3}, nil)

	require.NoError(t, h.TransactionSummary(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"transactionCount":3`)
}

func TestLifeHandler_ListTransactions_BadMonth(t *testing.T) {
	h, _ := newTestLifeHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/transactions?month=feb", "")
	authenticate(c)

	require.NoError(t, h.ListTransactions(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLifeHandler_CreateTransaction_ZeroAmountAllowed(t *testing.T) {
	h, m := newTestLifeHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/transactions", `{"type":"expense","amount":0,"description":"Free sample"}`)
	ownerID := authenticate(c)

	m.transaction.EXPECT().
		Create(mock.Anything, ownerID, mock.MatchedBy(func(in entity.TransactionInput) bool {
			return in.Amount == 0 && in.Type == entity.TransactionExpense
		})).
		Return(&entity.Transaction{ID: uuid.New(), OwnerID: ownerID, Description: "Free sample"}, nil)

	require.NoError(t, h.CreateTransaction(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLifeHandler_CreateTransaction_RejectsNegativeAmount(t *testing.T) {
	h, _ := newTestLifeHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/transactions", `{"type":"expense","amount":-1,"description":"Refund"}`)
	authenticate(c)

	require.NoError(t, h.CreateTransaction(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
}

func TestLifeHandler_UpdateTransaction_Amount(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "zero", body: `{"amount":0}`, wantStatus: http.StatusOK},
		{name: "negative", body: `{"amount":-0.5}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestLifeHandler(t)
			id := uuid.New()

			c, rec := newTestContext(http.MethodPut, "/api/v1/transactions/"+id.String(), tt.body)
			ownerID := authenticate(c)
			withParams(c, "id", id.String())

			if tt.wantStatus == http.StatusOK {
				m.transaction.EXPECT().
					Update(mock.Anything, ownerID, id, mock.MatchedBy(func(p entity.TransactionPatch) bool {
						return p.Amount != nil && *p.Amount == 0
					})).
					Return(&entity.Transaction{ID: id, OwnerID: ownerID}, nil)
			}

			require.NoError(t, h.UpdateTransaction(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLifeHandler_LifePlansByTargetYear_RequiresBothYears(t *testing.T) {
	h, _ := newTestLifeHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/life-plans/range?startYear=2030", "")
	authenticate(c)

	require.NoError(t, h.LifePlansByTargetYear(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLifeHandler_DiaryByDay_MissingEntryIsNull(t *testing.T) {
	h, m := newTestLifeHandler(t)
	day := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	c, rec := newTestContext(http.MethodGet, "/api/v1/diary/date/2026-03-01", "")
	withParams(c, "date", "2026-03-01")
	ownerID := authenticate(c)

	m.diary.EXPECT().ByDay(mock.Anything, ownerID, day).Return(nil, nil)

	require.NoError(t, h.DiaryByDay(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body, "data")
	assert.Nil(t, body["data"])
}

func TestLifeHandler_ListDiary_PassesPaging(t *testing.T) {
	h, m := newTestLifeHandler(t)
	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	c, rec := newTestContext(http.MethodGet, "/api/v1/diary?page=2&limit=5&startDate=2026-01-01", "")
	ownerID := authenticate(c)

	m.diary.EXPECT().
		List(mock.Anything, ownerID, entity.DiaryQuery{Page: 2, Limit: 5, From: &from}).
		Return(&entity.DiaryPage{Page: 2, Limit: 5, Total: 6, HasPrev: true}, nil)

	require.NoError(t, h.ListDiary(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hasPrev":true`)
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lifeos/internal/delivery/api/response"
	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LifeHandlerParams holds dependencies for LifeHandler, injected by Fx.
type LifeHandlerParams struct {
	fx.In

	LifePlanUC    usecase.LifePlanUsecase
	TransactionUC usecase.TransactionUsecase
	DiaryUC       usecase.DiaryUsecase
	Logger        *slog.Logger
}

// LifeHandler serves life plans, transactions and the diary
type LifeHandler struct {
	lifePlanUC    usecase.LifePlanUsecase
	transactionUC usecase.TransactionUsecase
	diaryUC       usecase.DiaryUsecase
	logger        *slog.Logger
}

// NewLifeHandler is the constructor for LifeHandler
func NewLifeHandler(params LifeHandlerParams) *LifeHandler {
	return &LifeHandler{
		lifePlanUC:    params.LifePlanUC,
		transactionUC: params.TransactionUC,
		diaryUC:       params.DiaryUC,
		logger:        params.Logger,
	}
}

// LifePlanRequest creates a life plan
type LifePlanRequest struct {
	StartAge    int    `json:"startAge" validate:"required,gte=0"`
	EndAge      int    `json:"endAge" validate:"required,gtefield=StartAge"`
	TargetYear  int    `json:"targetYear" validate:"required"`
	Description string `json:"description" validate:"required,max=1000"`
}

// UpdateLifePlanRequest patches a life plan
type UpdateLifePlanRequest struct {
	StartAge    *int    `json:"startAge"`
	EndAge      *int    `json:"endAge"`
	TargetYear  *int    `json:"targetYear"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// TransactionRequest creates a transaction. A missing date means now.
type TransactionRequest struct {
	Type        entity.TransactionType `json:"type" validate:"required,oneof=earning expense"`
	Amount      float64                `json:"amount" validate:"gte=0"`
	Description string                 `json:"description" validate:"required,max=200"`
	Date        *Date                  `json:"date"`
	Category    string                 `json:"category" validate:"max=50"`
	Completed   bool                   `json:"completed"`
}

// UpdateTransactionRequest patches a transaction
type UpdateTransactionRequest struct {
	Type        *entity.TransactionType `json:"type" validate:"omitempty,oneof=earning expense"`
	Amount      *float64                `json:"amount" validate:"omitempty,gte=0"`
	Description *string                 `json:"description" validate:"omitempty,max=200"`
	Date        *Date                   `json:"date"`
	Category    *string                 `json:"category" validate:"omitempty,max=50"`
	Completed   *bool                   `json:"completed"`
}

// DiaryRequest creates a diary entry. A missing date means now.
type DiaryRequest struct {
	Date       *Date    `json:"date"`
	Content    string   `json:"content" validate:"required"`
	GoodThings []string `json:"goodThings"`
	BadThings  []string `json:"badThings"`
}

// UpdateDiaryRequest patches a diary entry
type UpdateDiaryRequest struct {
	Date       *Date     `json:"date"`
	Content    *string   `json:"content"`
	GoodThings *[]string `json:"goodThings"`
	BadThings  *[]string `json:"badThings"`
}

// --- Life plans ---

// ListLifePlans returns the caller's life plans
func (h *LifeHandler) ListLifePlans(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	plans, err := h.lifePlanUC.List(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plans)
}

// LifePlansByTargetYear returns plans whose target year is in [startYear, endYear]
func (h *LifeHandler) LifePlansByTargetYear(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	startYear, err := queryInt(c, "startYear")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	endYear, err := queryInt(c, "endYear")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if startYear == 0 || endYear == 0 {
		return response.HandleAppError(c, domainerrors.Validationf("startYear and endYear are required"))
	}

	plans, err := h.lifePlanUC.ListByTargetYear(c.Request().Context(), ownerID, startYear, endYear)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plans)
}

// GetLifePlan returns one life plan
func (h *LifeHandler) GetLifePlan(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	plan, err := h.lifePlanUC.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan)
}

// CreateLifePlan creates a life plan
func (h *LifeHandler) CreateLifePlan(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req LifePlanRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	plan, err := h.lifePlanUC.Create(c.Request().Context(), ownerID, entity.LifePlanInput{
		StartAge:    req.StartAge,
		EndAge:      req.EndAge,
		TargetYear:  req.TargetYear,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, plan)
}

// UpdateLifePlan patches a life plan
func (h *LifeHandler) UpdateLifePlan(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateLifePlanRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	plan, err := h.lifePlanUC.Update(c.Request().Context(), ownerID, id, entity.LifePlanPatch{
		StartAge:    req.StartAge,
		EndAge:      req.EndAge,
		TargetYear:  req.TargetYear,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan)
}

// DeleteLifePlan removes a life plan
func (h *LifeHandler) DeleteLifePlan(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.lifePlanUC.Delete(c.Request().Context(), ownerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Life plan deleted successfully")
}

// --- Transactions ---

func transactionFilter(c echo.Context) (entity.TransactionFilter, error) {
	month, err := queryInt(c, "month")
	if err != nil {
		return entity.TransactionFilter{}, err
	}
	year, err := queryInt(c, "year")
	if err != nil {
		return entity.TransactionFilter{}, err
	}

	return entity.TransactionFilter{
		Year:  year,
		Month: time.Month(month),
		Type:  entity.TransactionType(c.QueryParam("type")),
	}, nil
}

// ListTransactions returns transactions matching month, year and type
func (h *LifeHandler) ListTransactions(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	filter, err := transactionFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	txs, err := h.transactionUC.List(c.Request().Context(), ownerID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, txs)
}

// TransactionSummary totals earnings and expenses for month and year
func (h *LifeHandler) TransactionSummary(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	filter, err := transactionFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.transactionUC.Summary(c.Request().Context(), ownerID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// CreateTransaction records a transaction
func (h *LifeHandler) CreateTransaction(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req TransactionRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tx, err := h.transactionUC.Create(c.Request().Context(), ownerID, entity.TransactionInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date.Value(),
		Category:    req.Category,
		Completed:   req.Completed,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, tx)
}

// UpdateTransaction patches a transaction
func (h *LifeHandler) UpdateTransaction(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTransactionRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tx, err := h.transactionUC.Update(c.Request().Context(), ownerID, id, entity.TransactionPatch{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date.Ptr(),
		Category:    req.Category,
		Completed:   req.Completed,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tx)
}

// DeleteTransaction removes a transaction
func (h *LifeHandler) DeleteTransaction(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.transactionUC.Delete(c.Request().Context(), ownerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Transaction deleted successfully")
}

// --- Diary ---

// ListDiary returns one page of entries, newest first
func (h *LifeHandler) ListDiary(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var query entity.DiaryQuery
	if query.Page, err = queryInt(c, "page"); err != nil {
		return response.HandleAppError(c, err)
	}
	if query.Limit, err = queryInt(c, "limit"); err != nil {
		return response.HandleAppError(c, err)
	}
	if query.From, err = queryDay(c, "startDate"); err != nil {
		return response.HandleAppError(c, err)
	}
	if query.To, err = queryDay(c, "endDate"); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.diaryUC.List(c.Request().Context(), ownerID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// DiaryByDay returns the entry of a calendar day, or null
func (h *LifeHandler) DiaryByDay(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	day, err := pathDay(c, "date")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	entry, err := h.diaryUC.ByDay(c.Request().Context(), ownerID, day)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// GetDiaryEntry returns one entry
func (h *LifeHandler) GetDiaryEntry(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	entry, err := h.diaryUC.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// CreateDiaryEntry writes a diary entry
func (h *LifeHandler) CreateDiaryEntry(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req DiaryRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	entry, err := h.diaryUC.Create(c.Request().Context(), ownerID, entity.DiaryInput{
		Date:       req.Date.Value(),
		Content:    req.Content,
		GoodThings: req.GoodThings,
		BadThings:  req.BadThings,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry)
}

// UpdateDiaryEntry patches a diary entry
func (h *LifeHandler) UpdateDiaryEntry(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateDiaryRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	entry, err := h.diaryUC.Update(c.Request().Context(), ownerID, id, entity.DiaryPatch{
		Date:       req.Date.Ptr(),
		Content:    req.Content,
		GoodThings: req.GoodThings,
		BadThings:  req.BadThings,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// DeleteDiaryEntry removes a diary entry
func (h *LifeHandler) DeleteDiaryEntry(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.diaryUC.Delete(c.Request().Context(), ownerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Diary entry deleted successfully")
}

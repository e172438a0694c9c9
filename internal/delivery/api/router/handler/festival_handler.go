package handler

import (
	"log/slog"
	"net/http"

	"lifeos/internal/delivery/api/response"
	"lifeos/internal/domain/entity"
	"lifeos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FestivalHandlerParams holds dependencies for FestivalHandler, injected by Fx.
type FestivalHandlerParams struct {
	fx.In

	FestivalUC usecase.FestivalUsecase
	Logger     *slog.Logger
}

// FestivalHandler serves festival bucket-lists
type FestivalHandler struct {
	festivalUC usecase.FestivalUsecase
	logger     *slog.Logger
}

// NewFestivalHandler is the constructor for FestivalHandler
func NewFestivalHandler(params FestivalHandlerParams) *FestivalHandler {
	return &FestivalHandler{
		festivalUC: params.FestivalUC,
		logger:     params.Logger,
	}
}

// BucketItemRequest creates a bucket-list item
type BucketItemRequest struct {
	Label     string  `json:"label" validate:"required,max=200"`
	Price     float64 `json:"price" validate:"gte=0"`
	Completed bool    `json:"completed"`
}

// CreateFestivalRequest creates a festival with optional items
type CreateFestivalRequest struct {
	Name        string              `json:"name" validate:"required,max=120"`
	Description string              `json:"description" validate:"max=500"`
	Items       []BucketItemRequest `json:"items" validate:"dive"`
}

// UpdateFestivalRequest patches a festival's own fields
type UpdateFestivalRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// UpdateBucketItemRequest patches a bucket-list item
type UpdateBucketItemRequest struct {
	Label     *string  `json:"label" validate:"omitempty,max=200"`
	Price     *float64 `json:"price" validate:"omitempty,gte=0"`
	Completed *bool    `json:"completed"`
}

func (r BucketItemRequest) toInput() entity.BucketItemInput {
	return entity.BucketItemInput{Label: r.Label, Price: r.Price, Completed: r.Completed}
}

// List returns the caller's festivals with totals
func (h *FestivalHandler) List(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	festivals, err := h.festivalUC.List(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, festivals)
}

// Get returns one festival
func (h *FestivalHandler) Get(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	festival, err := h.festivalUC.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, festival)
}

// Create creates a festival
func (h *FestivalHandler) Create(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateFestivalRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]entity.BucketItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, item.toInput())
	}

	festival, err := h.festivalUC.Create(c.Request().Context(), ownerID, entity.FestivalInput{
		Name:        req.Name,
		Description: req.Description,
		Items:       items,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, festival)
}

// Update patches a festival
func (h *FestivalHandler) Update(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateFestivalRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	festival, err := h.festivalUC.Update(c.Request().Context(), ownerID, id, entity.FestivalPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, festival)
}

// Delete removes a festival
func (h *FestivalHandler) Delete(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.festivalUC.Delete(c.Request().Context(), ownerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Festival deleted successfully")
}

// AddItem appends a bucket-list item
func (h *FestivalHandler) AddItem(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BucketItemRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	festival, err := h.festivalUC.AddItem(c.Request().Context(), ownerID, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, festival)
}

// UpdateItem patches a bucket-list item
func (h *FestivalHandler) UpdateItem(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateBucketItemRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	festival, err := h.festivalUC.UpdateItem(c.Request().Context(), ownerID, id, itemID, entity.BucketItemPatch{
		Label:     req.Label,
		Price:     req.Price,
		Completed: req.Completed,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, festival)
}

// RemoveItem removes a bucket-list item
func (h *FestivalHandler) RemoveItem(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	festival, err := h.festivalUC.RemoveItem(c.Request().Context(), ownerID, id, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, festival)
}

package handler

import (
	"log/slog"
	"net/http"

	"lifeos/internal/delivery/api/response"
	"lifeos/internal/domain/entity"
	"lifeos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StudyHandlerParams holds dependencies for StudyHandler, injected by Fx.
type StudyHandlerParams struct {
	fx.In

	StudyUC usecase.StudyUsecase
	Logger  *slog.Logger
}

// StudyHandler serves the study structure
type StudyHandler struct {
	studyUC usecase.StudyUsecase
	logger  *slog.Logger
}

// NewStudyHandler is the constructor for StudyHandler
func NewStudyHandler(params StudyHandlerParams) *StudyHandler {
	return &StudyHandler{
		studyUC: params.StudyUC,
		logger:  params.Logger,
	}
}

// NodeRequest creates a branch or a subject
type NodeRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateNodeRequest patches a branch or a subject
type UpdateNodeRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive"`
}

// MaterialRequest creates a study material
type MaterialRequest struct {
	Title       string              `json:"title" validate:"required,max=200"`
	Link        string              `json:"link" validate:"required,max=2048"`
	Description string              `json:"description" validate:"max=500"`
	Type        entity.MaterialType `json:"type" validate:"omitempty,oneof=pdf video website document other"`
}

// UpdateMaterialRequest patches a study material
type UpdateMaterialRequest struct {
	Title       *string              `json:"title" validate:"omitempty,max=200"`
	Link        *string              `json:"link" validate:"omitempty,max=2048"`
	Description *string              `json:"description" validate:"omitempty,max=500"`
	Type        *entity.MaterialType `json:"type" validate:"omitempty,oneof=pdf video website document other"`
}

// studyPath carries the ids of the nested route segments
type studyPath struct {
	ownerID    uuid.UUID
	branchID   uuid.UUID
	subjectID  uuid.UUID
	materialID uuid.UUID
}

// parseStudyPath reads the owner and the given path ids in nesting order.
func parseStudyPath(c echo.Context, names ...string) (studyPath, error) {
	var p studyPath
	var err error
	if p.ownerID, err = currentUser(c); err != nil {
		return p, err
	}

	targets := []*uuid.UUID{&p.branchID, &p.subjectID, &p.materialID}
	for i, name := range names {
		if *targets[i], err = pathID(c, name); err != nil {
			return p, err
		}
	}

	return p, nil
}

// Get returns the whole structure
func (h *StudyHandler) Get(c echo.Context) error {
	p, err := parseStudyPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	structure, err := h.studyUC.Get(c.Request().Context(), p.ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, structure)
}

// Statistics returns the structure's counters
func (h *StudyHandler) Statistics(c echo.Context) error {
	p, err := parseStudyPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stats, err := h.studyUC.Statistics(c.Request().Context(), p.ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// AddBranch adds a branch
func (h *StudyHandler) AddBranch(c echo.Context) error {
	p, err := parseStudyPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req NodeRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	structure, err := h.studyUC.AddBranch(c.Request().Context(), p.ownerID, entity.BranchInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, structure)
}

// UpdateBranch patches a branch
func (h *StudyHandler) UpdateBranch(c echo.Context) error {
	p, err := parseStudyPath(c, "branchId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateNodeRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	structure, err := h.studyUC.UpdateBranch(c.Request().Context(), p.ownerID, p.branchID, entity.BranchPatch{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, structure)
}

// RemoveBranch removes a branch with its subjects and materials
func (h *StudyHandler) RemoveBranch(c echo.Context) error {
	p, err := parseStudyPath(c, "branchId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	structure, err := h.studyUC.RemoveBranch(c.Request().Context(), p.ownerID, p.branchID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, structure)
}

// AddSubject adds a subject to a branch
func (h *StudyHandler) AddSubject(c echo.Context) error {
	p, err := parseStudyPath(c, "branchId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req NodeRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	structure, err := h.studyUC.AddSubject(c.Request().Context(), p.ownerID, p.branchID, entity.StudySubjectInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, structure)
}

// UpdateSubject patches a subject
func (h *StudyHandler) UpdateSubject(c echo.Context) error {
	p, err := parseStudyPath(c, "branchId", "subjectId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateNodeRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	structure, err := h.studyUC.UpdateSubject(c.Request().Context(), p.ownerID, p.branchID, p.subjectID, entity.StudySubjectPatch{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, structure)
}

// RemoveSubject removes a subject with its materials
func (h *StudyHandler) RemoveSubject(c echo.Context) error {
	p, err := parseStudyPath(c, "branchId", "subjectId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	structure, err := h.studyUC.RemoveSubject(c.Request().Context(), p.ownerID, p.branchID, p.subjectID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, structure)
}

// AddMaterial adds a material to a subject
func (h *StudyHandler) AddMaterial(c echo.Context) error {
	p, err := parseStudyPath(c, "branchId", "subjectId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req MaterialRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	structure, err := h.studyUC.AddMaterial(c.Request().Context(), p.ownerID, p.branchID, p.subjectID, entity.MaterialInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, structure)
}

// UpdateMaterial patches a material
func (h *StudyHandler) UpdateMaterial(c echo.Context) error {
	p, err := parseStudyPath(c, "branchId", "subjectId", "materialId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateMaterialRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	structure, err := h.studyUC.UpdateMaterial(c.Request().Context(), p.ownerID, p.branchID, p.subjectID, p.materialID, entity.MaterialPatch{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, structure)
}

// RemoveMaterial removes a material
func (h *StudyHandler) RemoveMaterial(c echo.Context) error {
	p, err := parseStudyPath(c, "branchId", "subjectId", "materialId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	structure, err := h.studyUC.RemoveMaterial(c.Request().Context(), p.ownerID, p.branchID, p.subjectID, p.materialID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, structure)
}

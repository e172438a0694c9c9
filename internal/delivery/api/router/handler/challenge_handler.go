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

// ChallengeHandlerParams holds dependencies for ChallengeHandler, injected by Fx.
type ChallengeHandlerParams struct {
	fx.In

	ChallengeUC usecase.ChallengeUsecase
	Logger      *slog.Logger
}

// ChallengeHandler serves challenges and their sections and subjects
type ChallengeHandler struct {
	challengeUC usecase.ChallengeUsecase
	logger      *slog.Logger
}

// NewChallengeHandler is the constructor for ChallengeHandler
func NewChallengeHandler(params ChallengeHandlerParams) *ChallengeHandler {
	return &ChallengeHandler{
		challengeUC: params.ChallengeUC,
		logger:      params.Logger,
	}
}

// ResourceRequest is a learning link attached to a subject
type ResourceRequest struct {
	Title string              `json:"title" validate:"required,max=200"`
	URL   string              `json:"url" validate:"required,url"`
	Type  entity.ResourceType `json:"type" validate:"omitempty,oneof=video article document other"`
}

// SubjectRequest describes a new challenge subject
type SubjectRequest struct {
	Name        string               `json:"name" validate:"required,max=120"`
	Description string               `json:"description" validate:"max=1000"`
	Status      entity.SubjectStatus `json:"status" validate:"omitempty,oneof=not_started in_progress completed"`
	Progress    int                  `json:"progress" validate:"gte=0,lte=100"`
	StartDate   *Date                `json:"startDate"`
	EndDate     *Date                `json:"endDate"`
	Resources   []ResourceRequest    `json:"resources" validate:"dive"`
}

// SectionRequest describes a new section with optional subjects
type SectionRequest struct {
	Name        string           `json:"name" validate:"required,max=120"`
	Description string           `json:"description" validate:"max=1000"`
	Progress    int              `json:"progress" validate:"gte=0,lte=100"`
	Subjects    []SubjectRequest `json:"subjects" validate:"dive"`
}

// CreateChallengeRequest describes a new challenge with optional sections
type CreateChallengeRequest struct {
	Name        string                 `json:"name" validate:"required,max=120"`
	Description string                 `json:"description" validate:"max=1000"`
	Status      entity.ChallengeStatus `json:"status" validate:"omitempty,oneof=active completed paused"`
	StartDate   *Date                  `json:"startDate"`
	EndDate     *Date                  `json:"endDate"`
	Sections    []SectionRequest       `json:"sections" validate:"dive"`
}

// UpdateChallengeRequest lists the mutable challenge fields
type UpdateChallengeRequest struct {
	Name        *string                 `json:"name" validate:"omitempty,max=120"`
	Description *string                 `json:"description" validate:"omitempty,max=1000"`
	Status      *entity.ChallengeStatus `json:"status" validate:"omitempty,oneof=active completed paused"`
	StartDate   *Date                   `json:"startDate"`
	EndDate     *Date                   `json:"endDate"`
}

// UpdateSectionRequest lists the mutable section fields
type UpdateSectionRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Progress    *int    `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

// UpdateSubjectRequest lists the mutable subject fields
type UpdateSubjectRequest struct {
	Name        *string               `json:"name" validate:"omitempty,max=120"`
	Description *string               `json:"description" validate:"omitempty,max=1000"`
	Status      *entity.SubjectStatus `json:"status" validate:"omitempty,oneof=not_started in_progress completed"`
	Progress    *int                  `json:"progress" validate:"omitempty,gte=0,lte=100"`
	StartDate   *Date                 `json:"startDate"`
	EndDate     *Date                 `json:"endDate"`
	Resources   *[]ResourceRequest    `json:"resources" validate:"omitempty,dive"`
}

// BatchSubjectsRequest adds several subjects at once
type BatchSubjectsRequest struct {
	Subjects []SubjectRequest `json:"subjects" validate:"required,min=1,dive"`
}

func toResources(reqs []ResourceRequest) []entity.Resource {
	resources := make([]entity.Resource, 0, len(reqs))
	for _, r := range reqs {
		resources = append(resources, entity.Resource{Title: r.Title, URL: r.URL, Type: r.Type})
	}

	return resources
}

func (r SubjectRequest) toInput() entity.SubjectInput {
	return entity.SubjectInput{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		Progress:    r.Progress,
		StartDate:   r.StartDate.Ptr(),
		EndDate:     r.EndDate.Ptr(),
		Resources:   toResources(r.Resources),
	}
}

func toSubjectInputs(reqs []SubjectRequest) []entity.SubjectInput {
	inputs := make([]entity.SubjectInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, r.toInput())
	}

	return inputs
}

func (r SectionRequest) toInput() entity.SectionInput {
	return entity.SectionInput{
		Name:        r.Name,
		Description: r.Description,
		Progress:    r.Progress,
		Subjects:    toSubjectInputs(r.Subjects),
	}
}

// List returns the caller's challenges
func (h *ChallengeHandler) List(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	challenges, err := h.challengeUC.List(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, challenges)
}

// Get returns one challenge
func (h *ChallengeHandler) Get(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	challenge, err := h.challengeUC.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, challenge)
}

// Create creates a challenge
func (h *ChallengeHandler) Create(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateChallengeRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	sections := make([]entity.SectionInput, 0, len(req.Sections))
	for _, s := range req.Sections {
		sections = append(sections, s.toInput())
	}

	challenge, err := h.challengeUC.Create(c.Request().Context(), ownerID, entity.ChallengeInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate.Ptr(),
		EndDate:     req.EndDate.Ptr(),
		Sections:    sections,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, challenge)
}

// Update patches the challenge's own fields
func (h *ChallengeHandler) Update(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateChallengeRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	challenge, err := h.challengeUC.Update(c.Request().Context(), ownerID, id, entity.ChallengePatch{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate.Ptr(),
		EndDate:     req.EndDate.Ptr(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, challenge)
}

// Delete removes a challenge
func (h *ChallengeHandler) Delete(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.challengeUC.Delete(c.Request().Context(), ownerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Challenge deleted successfully")
}

// AddSection appends a section
func (h *ChallengeHandler) AddSection(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SectionRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	challenge, err := h.challengeUC.AddSection(c.Request().Context(), ownerID, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, challenge)
}

// UpdateSection patches a section
func (h *ChallengeHandler) UpdateSection(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	sectionID, err := pathID(c, "sectionId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateSectionRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	challenge, err := h.challengeUC.UpdateSection(c.Request().Context(), ownerID, id, sectionID, entity.SectionPatch{
		Name:        req.Name,
		Description: req.Description,
		Progress:    req.Progress,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, challenge)
}

// RemoveSection removes a section with its subjects
func (h *ChallengeHandler) RemoveSection(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	sectionID, err := pathID(c, "sectionId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	challenge, err := h.challengeUC.RemoveSection(c.Request().Context(), ownerID, id, sectionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, challenge)
}

// AddSubject appends a subject to a section
func (h *ChallengeHandler) AddSubject(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	sectionID, err := pathID(c, "sectionId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SubjectRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	challenge, err := h.challengeUC.AddSubject(c.Request().Context(), ownerID, id, sectionID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, challenge)
}

// AddSubjects appends several subjects to a section, all or none
func (h *ChallengeHandler) AddSubjects(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	sectionID, err := pathID(c, "sectionId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BatchSubjectsRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	challenge, err := h.challengeUC.AddSubjects(c.Request().Context(), ownerID, id, sectionID, toSubjectInputs(req.Subjects))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, challenge)
}

// UpdateSubject patches a subject wherever it sits in the challenge
func (h *ChallengeHandler) UpdateSubject(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	subjectID, err := pathID(c, "subjectId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateSubjectRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	patch := entity.SubjectPatch{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Progress:    req.Progress,
		StartDate:   req.StartDate.Ptr(),
		EndDate:     req.EndDate.Ptr(),
	}
	if req.Resources != nil {
		resources := toResources(*req.Resources)
		patch.Resources = &resources
	}

	challenge, err := h.challengeUC.UpdateSubject(c.Request().Context(), ownerID, id, subjectID, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, challenge)
}

// RemoveSubject removes a subject
func (h *ChallengeHandler) RemoveSubject(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	subjectID, err := pathID(c, "subjectId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	challenge, err := h.challengeUC.RemoveSubject(c.Request().Context(), ownerID, id, subjectID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, challenge)
}

package handler

import (
	"log/slog"
	"net/http"

	"lifeos/internal/delivery/api/response"
	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/usecase"
	"lifeos/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScheduleHandlerParams holds dependencies for ScheduleHandler, injected by Fx.
type ScheduleHandlerParams struct {
	fx.In

	SpecialScheduleUC usecase.SpecialScheduleUsecase
	TimetableUC       usecase.TimetableUsecase
	Logger            *slog.Logger
}

// ScheduleHandler serves special schedules and the daily time-table
type ScheduleHandler struct {
	specialScheduleUC usecase.SpecialScheduleUsecase
	timetableUC       usecase.TimetableUsecase
	logger            *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler
func NewScheduleHandler(params ScheduleHandlerParams) *ScheduleHandler {
	return &ScheduleHandler{
		specialScheduleUC: params.SpecialScheduleUC,
		timetableUC:       params.TimetableUC,
		logger:            params.Logger,
	}
}

// TaskRequest creates a task inside a special schedule window
type TaskRequest struct {
	Date        Date   `json:"date" validate:"required"`
	Description string `json:"description" validate:"required,max=1000"`
}

// CreateSpecialScheduleRequest creates a special schedule
type CreateSpecialScheduleRequest struct {
	Title     string        `json:"title" validate:"max=120"`
	StartDate Date          `json:"startDate" validate:"required"`
	EndDate   Date          `json:"endDate" validate:"required"`
	Tasks     []TaskRequest `json:"tasks" validate:"dive"`
}

// UpdateSpecialScheduleRequest patches a special schedule
type UpdateSpecialScheduleRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=120"`
	StartDate *Date   `json:"startDate"`
	EndDate   *Date   `json:"endDate"`
}

// UpdateTaskRequest patches a task
type UpdateTaskRequest struct {
	Date        *Date   `json:"date"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// RecurrenceRequest describes how a slot repeats
type RecurrenceRequest struct {
	Frequency  entity.RecurrenceFrequency `json:"frequency" validate:"required,oneof=daily weekly monthly"`
	DaysOfWeek []int                      `json:"daysOfWeek" validate:"dive,gte=0,lte=6"`
}

// TimeSlotRequest is one slot of a day's full replacement. Slots without an
// id are created.
type TimeSlotRequest struct {
	ID                *uuid.UUID         `json:"id"`
	StartTime         string             `json:"startTime" validate:"required"`
	EndTime           string             `json:"endTime" validate:"required"`
	Description       string             `json:"description" validate:"required,max=500"`
	Status            entity.SlotStatus  `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	Category          string             `json:"category" validate:"max=50"`
	IsRecurring       bool               `json:"isRecurring"`
	RecurrencePattern *RecurrenceRequest `json:"recurrencePattern"`
}

// ReplaceDayRequest replaces every slot of a day
type ReplaceDayRequest struct {
	TimeSlots []TimeSlotRequest `json:"timeSlots" validate:"dive"`
}

// SlotStatusRequest changes the status of one slot
type SlotStatusRequest struct {
	Status entity.SlotStatus `json:"status" validate:"required,oneof=pending completed cancelled"`
}

// ListSpecialSchedules returns schedules overlapping the optional window
func (h *ScheduleHandler) ListSpecialSchedules(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	from, err := queryDay(c, "startDate")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	to, err := queryDay(c, "endDate")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if to != nil {
		// endDate names a whole day
		endOfDay := util.EndOfDay(*to)
		to = &endOfDay
	}

	schedules, err := h.specialScheduleUC.List(c.Request().Context(), ownerID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedules)
}

// GetSpecialSchedule returns one special schedule
func (h *ScheduleHandler) GetSpecialSchedule(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	schedule, err := h.specialScheduleUC.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// CreateSpecialSchedule creates a special schedule
func (h *ScheduleHandler) CreateSpecialSchedule(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateSpecialScheduleRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tasks := make([]entity.TaskInput, 0, len(req.Tasks))
	for _, task := range req.Tasks {
		tasks = append(tasks, entity.TaskInput{Date: task.Date.Time, Description: task.Description})
	}

	schedule, err := h.specialScheduleUC.Create(c.Request().Context(), ownerID, entity.SpecialScheduleInput{
		Title:     req.Title,
		StartDate: req.StartDate.Time,
		EndDate:   req.EndDate.Time,
		Tasks:     tasks,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, schedule)
}

// UpdateSpecialSchedule patches a special schedule
func (h *ScheduleHandler) UpdateSpecialSchedule(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateSpecialScheduleRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	schedule, err := h.specialScheduleUC.Update(c.Request().Context(), ownerID, id, entity.SpecialSchedulePatch{
		Title:     req.Title,
		StartDate: req.StartDate.Ptr(),
		EndDate:   req.EndDate.Ptr(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// DeleteSpecialSchedule removes a special schedule
func (h *ScheduleHandler) DeleteSpecialSchedule(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.specialScheduleUC.Delete(c.Request().Context(), ownerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Special schedule deleted successfully")
}

// AddTask adds a task to a special schedule
func (h *ScheduleHandler) AddTask(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req TaskRequest
	if err := bindCreate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	schedule, err := h.specialScheduleUC.AddTask(c.Request().Context(), ownerID, id, entity.TaskInput{
		Date:        req.Date.Time,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, schedule)
}

// UpdateTask patches a task
func (h *ScheduleHandler) UpdateTask(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	taskID, err := pathID(c, "taskId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTaskRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	schedule, err := h.specialScheduleUC.UpdateTask(c.Request().Context(), ownerID, id, taskID, entity.TaskPatch{
		Date:        req.Date.Ptr(),
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// RemoveTask removes a task
func (h *ScheduleHandler) RemoveTask(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	taskID, err := pathID(c, "taskId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	schedule, err := h.specialScheduleUC.RemoveTask(c.Request().Context(), ownerID, id, taskID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// TimetableRange returns the stored days between startDate and endDate
func (h *ScheduleHandler) TimetableRange(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	from, err := queryDay(c, "startDate")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	to, err := queryDay(c, "endDate")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if from == nil || to == nil {
		return response.HandleAppError(c, domainerrors.Validationf("startDate and endDate are required"))
	}

	days, err := h.timetableUC.Range(c.Request().Context(), ownerID, *from, *to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, days)
}

// TimetableDay returns the day's schedule, creating it empty on first access
func (h *ScheduleHandler) TimetableDay(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	day, err := pathDay(c, "date")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	schedule, err := h.timetableUC.Day(c.Request().Context(), ownerID, day)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// ReplaceTimetableDay overwrites all slots of the day
func (h *ScheduleHandler) ReplaceTimetableDay(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	day, err := pathDay(c, "date")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ReplaceDayRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	slots := make([]entity.TimeSlotInput, 0, len(req.TimeSlots))
	for _, s := range req.TimeSlots {
		in := entity.TimeSlotInput{
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			Description: s.Description,
			Status:      s.Status,
			Category:    s.Category,
			IsRecurring: s.IsRecurring,
		}
		if s.ID != nil {
			in.ID = *s.ID
		}
		if s.RecurrencePattern != nil {
			in.RecurrencePattern = &entity.RecurrencePattern{
				Frequency:  s.RecurrencePattern.Frequency,
				DaysOfWeek: s.RecurrencePattern.DaysOfWeek,
			}
		}
		slots = append(slots, in)
	}

	schedule, err := h.timetableUC.ReplaceDay(c.Request().Context(), ownerID, day, slots)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// SetSlotStatus changes one slot's status
func (h *ScheduleHandler) SetSlotStatus(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	day, err := pathDay(c, "date")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	slotID, err := pathID(c, "slotId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SlotStatusRequest
	if err := bindPatch(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	schedule, err := h.timetableUC.SetSlotStatus(c.Request().Context(), ownerID, day, slotID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// DeleteTimetableDay removes the day's schedule
func (h *ScheduleHandler) DeleteTimetableDay(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	day, err := pathDay(c, "date")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.timetableUC.DeleteDay(c.Request().Context(), ownerID, day); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Time-table day deleted successfully")
}

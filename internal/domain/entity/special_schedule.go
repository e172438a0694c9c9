package entity

import (
	"time"

	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	maxScheduleTitleLen   = 120
	maxTaskDescriptionLen = 1000
)

// SpecialSchedule is a dated window (exam week, trip, ...) holding tasks
// that must fall inside the window.
type SpecialSchedule struct {
	Aggregate
	Title     string            `json:"title"`
	StartDate time.Time         `json:"startDate"`
	EndDate   time.Time         `json:"endDate"`
	Tasks     Collection[*Task] `json:"tasks"`
}

// Task is a dated item of a special schedule.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

func (t *Task) EntryID() uuid.UUID      { return t.ID }
func (t *Task) SetEntryID(id uuid.UUID) { t.ID = id }
func (*Task) EntryKind() string         { return "task" }

// SpecialScheduleInput carries the fields of a new special schedule.
type SpecialScheduleInput struct {
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Tasks     []TaskInput
}

// SpecialSchedulePatch lists the mutable schedule fields; nil means unchanged.
type SpecialSchedulePatch struct {
	Title     *string
	StartDate *time.Time
	EndDate   *time.Time
}

// TaskInput carries the fields of a new task.
type TaskInput struct {
	Date        time.Time
	Description string
}

// TaskPatch lists the mutable task fields; nil means unchanged.
type TaskPatch struct {
	Date        *time.Time
	Description *string
}

// NewSpecialSchedule validates the window and the initial tasks.
func NewSpecialSchedule(ownerID uuid.UUID, in SpecialScheduleInput, now time.Time) (*SpecialSchedule, error) {
	title, err := limitText("title", in.Title, maxScheduleTitleLen)
	if err != nil {
		return nil, err
	}

	schedule := &SpecialSchedule{
		Aggregate: NewAggregate(ownerID, now),
		Title:     title,
	}
	if err := schedule.setWindow(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	tasks := make([]*Task, 0, len(in.Tasks))
	for _, taskIn := range in.Tasks {
		task, err := schedule.buildTask(taskIn)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	for _, task := range tasks {
		schedule.Tasks.Insert(task)
	}

	return schedule, nil
}

// Contains reports whether t lies inside the window, bounds included.
func (s *SpecialSchedule) Contains(t time.Time) bool {
	return !t.Before(s.StartDate) && !t.After(s.EndDate)
}

// Overlaps reports whether the window intersects [from, to].
func (s *SpecialSchedule) Overlaps(from, to time.Time) bool {
	return !s.EndDate.Before(from) && !s.StartDate.After(to)
}

// Apply updates the title and window. A new window must still contain
// every existing task.
func (s *SpecialSchedule) Apply(patch SpecialSchedulePatch, now time.Time) error {
	title := s.Title
	start, end := s.StartDate, s.EndDate

	var err error
	if patch.Title != nil {
		if title, err = limitText("title", *patch.Title, maxScheduleTitleLen); err != nil {
			return err
		}
	}
	if patch.StartDate != nil {
		start = *patch.StartDate
	}
	if patch.EndDate != nil {
		end = *patch.EndDate
	}

	if err := s.Reschedule(start, end, now); err != nil {
		return err
	}
	s.Title = title

	return nil
}

// Reschedule moves the window, rejecting windows that would exclude a task.
func (s *SpecialSchedule) Reschedule(start, end time.Time, now time.Time) error {
	candidate := SpecialSchedule{}
	if err := candidate.setWindow(start, end); err != nil {
		return err
	}
	for _, task := range s.Tasks.Items() {
		if !candidate.Contains(task.Date) {
			return domainerrors.Validationf("task on %s would fall outside the new schedule window", task.Date.Format(time.RFC3339))
		}
	}

	s.StartDate, s.EndDate = candidate.StartDate, candidate.EndDate
	s.Touch(now)

	return nil
}

// AddTask inserts a task dated inside the window.
func (s *SpecialSchedule) AddTask(in TaskInput, now time.Time) (*Task, error) {
	task, err := s.buildTask(in)
	if err != nil {
		return nil, err
	}

	s.Tasks.Insert(task)
	s.Touch(now)

	return task, nil
}

// UpdateTask applies a partial update; a new date must stay inside the window.
func (s *SpecialSchedule) UpdateTask(taskID uuid.UUID, patch TaskPatch, now time.Time) (*Task, error) {
	task, err := s.Tasks.Update(taskID, func(t *Task) error {
		date, description := t.Date, t.Description

		var err error
		if patch.Date != nil {
			date = patch.Date.UTC()
			if !s.Contains(date) {
				return s.outsideWindow()
			}
		}
		if patch.Description != nil {
			if description, err = requireText("task description", *patch.Description, maxTaskDescriptionLen); err != nil {
				return err
			}
		}

		t.Date, t.Description = date, description

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Touch(now)

	return task, nil
}

// RemoveTask deletes a task.
func (s *SpecialSchedule) RemoveTask(taskID uuid.UUID, now time.Time) error {
	if _, err := s.Tasks.Remove(taskID); err != nil {
		return err
	}

	s.Touch(now)

	return nil
}

func (s *SpecialSchedule) setWindow(start, end time.Time) error {
	if start.IsZero() {
		return domainerrors.Validationf("startDate is required")
	}
	if end.IsZero() {
		return domainerrors.Validationf("endDate is required")
	}
	if end.Before(start) {
		return domainerrors.Validationf("endDate cannot be before startDate")
	}

	s.StartDate, s.EndDate = start.UTC(), end.UTC()

	return nil
}

func (s *SpecialSchedule) buildTask(in TaskInput) (*Task, error) {
	if in.Date.IsZero() {
		return nil, domainerrors.Validationf("task date is required")
	}
	description, err := requireText("task description", in.Description, maxTaskDescriptionLen)
	if err != nil {
		return nil, err
	}
	date := in.Date.UTC()
	if !s.Contains(date) {
		return nil, s.outsideWindow()
	}

	return &Task{Date: date, Description: description}, nil
}

func (s *SpecialSchedule) outsideWindow() error {
	return domainerrors.Validationf("task date must be between %s and %s",
		s.StartDate.Format(time.RFC3339), s.EndDate.Format(time.RFC3339))
}

package entity

import (
	"time"

	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/util"

	"github.com/google/uuid"
)

// SlotStatus is the state of a time slot.
type SlotStatus string

const (
	SlotStatusPending   SlotStatus = "pending"
	SlotStatusCompleted SlotStatus = "completed"
	SlotStatusCancelled SlotStatus = "cancelled"
)

// RecurrenceFrequency is how often a recurring slot repeats.
type RecurrenceFrequency string

const (
	RecurrenceDaily   RecurrenceFrequency = "daily"
	RecurrenceWeekly  RecurrenceFrequency = "weekly"
	RecurrenceMonthly RecurrenceFrequency = "monthly"
)

const (
	maxSlotDescriptionLen = 500
	maxSlotCategoryLen    = 50
)

// DailySchedule is the time-table of one calendar day. There is at most one
// per owner and day.
type DailySchedule struct {
	Aggregate
	Date      time.Time             `json:"date"`
	TimeSlots Collection[*TimeSlot] `json:"timeSlots"`
}

// RecurrencePattern describes how a slot repeats. It is informational; slots
// are not materialised on other days.
type RecurrencePattern struct {
	Frequency  RecurrenceFrequency `json:"frequency"`
	DaysOfWeek []int               `json:"daysOfWeek,omitempty"`
}

// TimeSlot is an ordered block of a daily schedule.
type TimeSlot struct {
	ID                uuid.UUID          `json:"id"`
	Order             int                `json:"order"`
	StartTime         string             `json:"startTime"`
	EndTime           string             `json:"endTime"`
	Description       string             `json:"description"`
	Status            SlotStatus         `json:"status"`
	Category          string             `json:"category,omitempty"`
	IsRecurring       bool               `json:"isRecurring"`
	RecurrencePattern *RecurrencePattern `json:"recurrencePattern,omitempty"`
	CompletedAt       *time.Time         `json:"completedAt,omitempty"`
}

func (s *TimeSlot) EntryID() uuid.UUID      { return s.ID }
func (s *TimeSlot) SetEntryID(id uuid.UUID) { s.ID = id }
func (*TimeSlot) EntryKind() string         { return "time slot" }
func (s *TimeSlot) SetOrder(order int)      { s.Order = order }

// TimeSlotInput is one slot of a full replacement. A nil ID mints a new slot.
type TimeSlotInput struct {
	ID                uuid.UUID
	StartTime         string
	EndTime           string
	Description       string
	Status            SlotStatus
	Category          string
	IsRecurring       bool
	RecurrencePattern *RecurrencePattern
}

// NewDailySchedule creates an empty schedule for the calendar day of date.
func NewDailySchedule(ownerID uuid.UUID, date time.Time, now time.Time) *DailySchedule {
	return &DailySchedule{
		Aggregate: NewAggregate(ownerID, now),
		Date:      util.StartOfDay(date),
	}
}

// DayKey is the natural key of the schedule.
func (d *DailySchedule) DayKey() string {
	return util.FormatDay(d.Date)
}

// ReplaceSlots swaps the whole slot list. A supplied id is kept only when it
// names a slot of this day; any other slot gets a fresh id. A slot that was
// already completed keeps its completion time.
func (d *DailySchedule) ReplaceSlots(inputs []TimeSlotInput, now time.Time) error {
	slots := make([]*TimeSlot, 0, len(inputs))
	for _, in := range inputs {
		slot, err := buildTimeSlot(in)
		if err != nil {
			return err
		}

		var previous *TimeSlot
		if in.ID != uuid.Nil {
			if existing, err := d.TimeSlots.Find(in.ID); err == nil {
				previous = existing
				slot.ID = existing.ID
			}
		}
		slot.CompletedAt = completionTime(previous, slot.Status, now)
		slots = append(slots, slot)
	}

	if err := d.TimeSlots.Replace(slots); err != nil {
		return err
	}

	d.Touch(now)

	return nil
}

// SetSlotStatus changes the status of one slot.
func (d *DailySchedule) SetSlotStatus(slotID uuid.UUID, status SlotStatus, now time.Time) (*TimeSlot, error) {
	if err := checkSlotStatus(status); err != nil {
		return nil, err
	}

	slot, err := d.TimeSlots.Update(slotID, func(s *TimeSlot) error {
		s.CompletedAt = completionTime(s, status, now)
		s.Status = status

		return nil
	})
	if err != nil {
		return nil, err
	}

	d.Touch(now)

	return slot, nil
}

func buildTimeSlot(in TimeSlotInput) (*TimeSlot, error) {
	start, err := util.ParseClock(in.StartTime)
	if err != nil {
		return nil, domainerrors.Validationf("startTime: %v", err)
	}
	end, err := util.ParseClock(in.EndTime)
	if err != nil {
		return nil, domainerrors.Validationf("endTime: %v", err)
	}
	if end <= start {
		return nil, domainerrors.Validationf("endTime must be after startTime")
	}

	description, err := requireText("description", in.Description, maxSlotDescriptionLen)
	if err != nil {
		return nil, err
	}
	category, err := limitText("category", in.Category, maxSlotCategoryLen)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = SlotStatusPending
	}
	if err := checkSlotStatus(status); err != nil {
		return nil, err
	}

	pattern, err := normalizeRecurrence(in.RecurrencePattern)
	if err != nil {
		return nil, err
	}

	return &TimeSlot{
		StartTime:         util.FormatClock(start),
		EndTime:           util.FormatClock(end),
		Description:       description,
		Status:            status,
		Category:          category,
		IsRecurring:       in.IsRecurring,
		RecurrencePattern: pattern,
	}, nil
}

func normalizeRecurrence(pattern *RecurrencePattern) (*RecurrencePattern, error) {
	if pattern == nil {
		return nil, nil
	}

	frequency := pattern.Frequency
	if frequency == "" {
		frequency = RecurrenceWeekly
	}
	if err := checkOneOf("recurrence frequency", frequency, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly); err != nil {
		return nil, err
	}

	days := make([]int, 0, len(pattern.DaysOfWeek))
	for _, day := range pattern.DaysOfWeek {
		if day < 0 || day > 6 {
			return nil, domainerrors.Validationf("daysOfWeek must be between 0 and 6")
		}
		days = append(days, day)
	}

	return &RecurrencePattern{Frequency: frequency, DaysOfWeek: days}, nil
}

func checkSlotStatus(status SlotStatus) error {
	return checkOneOf("status", status, SlotStatusPending, SlotStatusCompleted, SlotStatusCancelled)
}

func completionTime(previous *TimeSlot, status SlotStatus, now time.Time) *time.Time {
	if status != SlotStatusCompleted {
		return nil
	}
	if previous != nil && previous.Status == SlotStatusCompleted && previous.CompletedAt != nil {
		return previous.CompletedAt
	}
	completedAt := now.UTC()

	return &completedAt
}

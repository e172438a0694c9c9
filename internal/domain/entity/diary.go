package entity

import (
	"strings"
	"time"

	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	defaultDiaryPageSize = 20
	maxDiaryPageSize     = 100
)

// DiaryEntry is a journal entry for one moment, usually one per day.
type DiaryEntry struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"ownerId"`
	Date       time.Time `json:"date"`
	Content    string    `json:"content"`
	GoodThings []string  `json:"goodThings"`
	BadThings  []string  `json:"badThings"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DiaryInput carries the fields of a new diary entry. A zero Date means now.
type DiaryInput struct {
	Date       time.Time
	Content    string
	GoodThings []string
	BadThings  []string
}

// DiaryPatch lists the mutable diary fields; nil means unchanged.
type DiaryPatch struct {
	Date       *time.Time
	Content    *string
	GoodThings *[]string
	BadThings  *[]string
}

// DiaryQuery is a page request over diary entries, newest first.
type DiaryQuery struct {
	Page  int
	Limit int
	From  *time.Time
	To    *time.Time
}

// DiaryPage is one page of diary entries.
type DiaryPage struct {
	Entries []*DiaryEntry `json:"entries"`
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	HasNext bool          `json:"hasNext"`
	HasPrev bool          `json:"hasPrev"`
}

// NewDiaryEntry validates input and builds a diary entry.
func NewDiaryEntry(ownerID uuid.UUID, in DiaryInput, now time.Time) (*DiaryEntry, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, domainerrors.Validationf("content is required")
	}

	date := in.Date
	if date.IsZero() {
		date = now
	}

	return &DiaryEntry{
		ID:         NewID(),
		OwnerID:    ownerID,
		Date:       date.UTC(),
		Content:    content,
		GoodThings: cleanList(in.GoodThings),
		BadThings:  cleanList(in.BadThings),
		CreatedAt:  now.UTC(),
		UpdatedAt:  now.UTC(),
	}, nil
}

// Apply updates the entry.
func (d *DiaryEntry) Apply(patch DiaryPatch, now time.Time) error {
	content := d.Content
	if patch.Content != nil {
		content = strings.TrimSpace(*patch.Content)
		if content == "" {
			return domainerrors.Validationf("content is required")
		}
	}

	d.Content = content
	if patch.Date != nil {
		d.Date = patch.Date.UTC()
	}
	if patch.GoodThings != nil {
		d.GoodThings = cleanList(*patch.GoodThings)
	}
	if patch.BadThings != nil {
		d.BadThings = cleanList(*patch.BadThings)
	}
	if now = now.UTC(); now.After(d.UpdatedAt) {
		d.UpdatedAt = now
	}

	return nil
}

// Normalize clamps paging parameters and validates the date range.
func (q DiaryQuery) Normalize() (DiaryQuery, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	switch {
	case q.Limit <= 0:
		q.Limit = defaultDiaryPageSize
	case q.Limit > maxDiaryPageSize:
		q.Limit = maxDiaryPageSize
	}
	if err := checkDateOrder("startDate", q.From, "endDate", q.To); err != nil {
		return q, err
	}

	return q, nil
}

// Offset is the number of entries skipped before this page.
func (q DiaryQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NewID mints an identifier for an aggregate or a nested entry.
// Identifiers are random 128-bit values, so entries minted by different
// aggregates never collide even though collections are not globally indexed.
func NewID() uuid.UUID {
	return uuid.New()
}

// Aggregate is the metadata shared by every top-level document.
// It is embedded by each aggregate root and is the unit of persistence.
type Aggregate struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Root is implemented by every aggregate through its embedded Aggregate.
type Root interface {
	Root() *Aggregate
}

// Root returns the aggregate metadata.
func (a *Aggregate) Root() *Aggregate {
	return a
}

// NewAggregate initialises metadata for a freshly created document.
func NewAggregate(ownerID uuid.UUID, now time.Time) Aggregate {
	now = now.UTC()

	return Aggregate{
		ID:        NewID(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch stamps UpdatedAt. The timestamp never moves backwards, even if the
// wall clock does.
func (a *Aggregate) Touch(now time.Time) {
	now = now.UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if now.After(a.UpdatedAt) {
		a.UpdatedAt = now
	}
}

// OwnedBy reports whether the aggregate belongs to ownerID.
func (a *Aggregate) OwnedBy(ownerID uuid.UUID) bool {
	return ownerID != uuid.Nil && a.OwnerID == ownerID
}

// stamp is the per-entry counterpart of Aggregate.Touch for entries that
// carry their own timestamps.
type stamp struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newStamp(now time.Time) stamp {
	now = now.UTC()

	return stamp{CreatedAt: now, UpdatedAt: now}
}

func (s *stamp) touch(now time.Time) {
	now = now.UTC()
	if now.After(s.UpdatedAt) {
		s.UpdatedAt = now
	}
}

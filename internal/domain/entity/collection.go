package entity

import (
	"encoding/json"
	"strings"

	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
)

// Entry is an element of an owned collection. EntryKind must not dereference
// its receiver: it is also called on the zero value to name missing entries.
type Entry interface {
	EntryID() uuid.UUID
	SetEntryID(id uuid.UUID)
	EntryKind() string
}

// OrderedEntry is an entry whose position is persisted as a 1-based order.
type OrderedEntry interface {
	Entry
	SetOrder(order int)
}

// NamedEntry is an entry whose name must be unique among its siblings.
type NamedEntry interface {
	Entry
	EntryName() string
}

// Collection is an ordered, identity-keyed container of entries owned by a
// single aggregate. Mutations only become durable when the owning aggregate
// is saved as a whole.
type Collection[T Entry] struct {
	items []T
}

// NewCollection builds a collection from existing entries, keeping their ids.
func NewCollection[T Entry](items ...T) Collection[T] {
	c := Collection[T]{items: append([]T(nil), items...)}
	c.renumber()

	return c
}

// Len returns the number of entries.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Items returns the entries in their current sequence. The slice is a copy;
// the entries are shared.
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)

	return out
}

// Insert assigns a fresh id (and the next order, for ordered entries) and
// appends the entry.
func (c *Collection[T]) Insert(entry T) T {
	entry.SetEntryID(NewID())
	if ordered, ok := any(entry).(OrderedEntry); ok {
		ordered.SetOrder(len(c.items) + 1)
	}
	c.items = append(c.items, entry)

	return entry
}

// Find returns the entry with the given id.
func (c *Collection[T]) Find(id uuid.UUID) (T, error) {
	if idx := c.indexOf(id); idx >= 0 {
		return c.items[idx], nil
	}

	var zero T

	return zero, domainerrors.NotFound(zero.EntryKind())
}

// Contains reports whether an entry with the given id exists.
func (c *Collection[T]) Contains(id uuid.UUID) bool {
	return c.indexOf(id) >= 0
}

// Update applies patch to the entry with the given id. Patches validate
// before mutating, so a rejected patch leaves the entry untouched.
func (c *Collection[T]) Update(id uuid.UUID, patch func(T) error) (T, error) {
	entry, err := c.Find(id)
	if err != nil {
		return entry, err
	}

	if err := patch(entry); err != nil {
		var zero T

		return zero, err
	}

	return entry, nil
}

// Remove deletes the entry and renumbers the survivors to 1..N in their
// prior relative sequence.
func (c *Collection[T]) Remove(id uuid.UUID) (T, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		var zero T

		return zero, domainerrors.NotFound(zero.EntryKind())
	}

	removed := c.items[idx]
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	c.renumber()

	return removed, nil
}

// Replace swaps the whole set of entries. Supplied ids are kept, missing ids
// are minted, and duplicate ids are rejected.
func (c *Collection[T]) Replace(entries []T) error {
	seen := make(map[uuid.UUID]struct{}, len(entries))
	for _, entry := range entries {
		id := entry.EntryID()
		if id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			return domainerrors.Validationf("duplicate %s id %s", entry.EntryKind(), id)
		}
		seen[id] = struct{}{}
	}

	items := make([]T, 0, len(entries))
	for _, entry := range entries {
		if entry.EntryID() == uuid.Nil {
			entry.SetEntryID(NewID())
		}
		items = append(items, entry)
	}

	c.items = items
	c.renumber()

	return nil
}

// EnsureUniqueName fails with a duplicate-name error when a sibling other
// than excludeID already uses name, compared case-insensitively.
func EnsureUniqueName[T NamedEntry](c *Collection[T], name string, excludeID uuid.UUID) error {
	needle := strings.TrimSpace(name)
	for _, item := range c.items {
		if item.EntryID() == excludeID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(item.EntryName()), needle) {
			return domainerrors.DuplicateName(item.EntryKind(), needle)
		}
	}

	return nil
}

// MarshalJSON encodes the collection as a plain array.
func (c Collection[T]) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(c.items)
}

// UnmarshalJSON decodes a plain array, skipping null elements.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	items := make([]T, 0, len(raws))
	for _, raw := range raws {
		if string(raw) == "null" {
			continue
		}

		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return err
		}
		items = append(items, item)
	}

	c.items = items
	c.renumber()

	return nil
}

func (c *Collection[T]) indexOf(id uuid.UUID) int {
	for i, item := range c.items {
		if item.EntryID() == id {
			return i
		}
	}

	return -1
}

func (c *Collection[T]) renumber() {
	for i, item := range c.items {
		if ordered, ok := any(item).(OrderedEntry); ok {
			ordered.SetOrder(i + 1)
		}
	}
}

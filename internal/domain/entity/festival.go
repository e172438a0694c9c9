package entity

import (
	"time"

	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	maxFestivalNameLen        = 120
	maxFestivalDescriptionLen = 500
	maxBucketLabelLen         = 200
)

// Festival is a bucket-list of things to buy or do for an occasion.
type Festival struct {
	Aggregate
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Items       Collection[*BucketItem] `json:"items"`
}

// BucketItem is one entry of a festival bucket-list.
type BucketItem struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Price     float64   `json:"price"`
	Completed bool      `json:"completed"`
}

func (i *BucketItem) EntryID() uuid.UUID      { return i.ID }
func (i *BucketItem) SetEntryID(id uuid.UUID) { i.ID = id }
func (*BucketItem) EntryKind() string         { return "item" }

// FestivalInput carries the fields of a new festival.
type FestivalInput struct {
	Name        string
	Description string
	Items       []BucketItemInput
}

// FestivalPatch lists the mutable festival fields; nil means unchanged.
type FestivalPatch struct {
	Name        *string
	Description *string
}

// BucketItemInput carries the fields of a new bucket item.
type BucketItemInput struct {
	Label     string
	Price     float64
	Completed bool
}

// BucketItemPatch lists the mutable bucket item fields; nil means unchanged.
type BucketItemPatch struct {
	Label     *string
	Price     *float64
	Completed *bool
}

// FestivalTotals summarises a festival's items.
type FestivalTotals struct {
	ItemCount      int     `json:"itemCount"`
	CompletedCount int     `json:"completedCount"`
	TotalPrice     float64 `json:"totalPrice"`
	CompletedPrice float64 `json:"completedPrice"`
}

// NewFestival validates input and builds a festival.
func NewFestival(ownerID uuid.UUID, in FestivalInput, now time.Time) (*Festival, error) {
	name, err := requireText("name", in.Name, maxFestivalNameLen)
	if err != nil {
		return nil, err
	}
	description, err := limitText("description", in.Description, maxFestivalDescriptionLen)
	if err != nil {
		return nil, err
	}

	items := make([]*BucketItem, 0, len(in.Items))
	for _, itemIn := range in.Items {
		item, err := buildBucketItem(itemIn)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	festival := &Festival{
		Aggregate:   NewAggregate(ownerID, now),
		Name:        name,
		Description: description,
	}
	for _, item := range items {
		festival.Items.Insert(item)
	}

	return festival, nil
}

// Apply updates the festival's own fields.
func (f *Festival) Apply(patch FestivalPatch, now time.Time) error {
	name, description := f.Name, f.Description

	var err error
	if patch.Name != nil {
		if name, err = requireText("name", *patch.Name, maxFestivalNameLen); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if description, err = limitText("description", *patch.Description, maxFestivalDescriptionLen); err != nil {
			return err
		}
	}

	f.Name, f.Description = name, description
	f.Touch(now)

	return nil
}

// AddItem appends an item.
func (f *Festival) AddItem(in BucketItemInput, now time.Time) (*BucketItem, error) {
	item, err := buildBucketItem(in)
	if err != nil {
		return nil, err
	}

	f.Items.Insert(item)
	f.Touch(now)

	return item, nil
}

// UpdateItem applies a partial update to an item.
func (f *Festival) UpdateItem(itemID uuid.UUID, patch BucketItemPatch, now time.Time) (*BucketItem, error) {
	item, err := f.Items.Update(itemID, func(i *BucketItem) error {
		label, price, completed := i.Label, i.Price, i.Completed

		var err error
		if patch.Label != nil {
			if label, err = requireText("label", *patch.Label, maxBucketLabelLen); err != nil {
				return err
			}
		}
		if patch.Price != nil {
			if err := checkPrice(*patch.Price); err != nil {
				return err
			}
			price = *patch.Price
		}
		if patch.Completed != nil {
			completed = *patch.Completed
		}

		i.Label, i.Price, i.Completed = label, price, completed

		return nil
	})
	if err != nil {
		return nil, err
	}

	f.Touch(now)

	return item, nil
}

// RemoveItem deletes an item.
func (f *Festival) RemoveItem(itemID uuid.UUID, now time.Time) error {
	if _, err := f.Items.Remove(itemID); err != nil {
		return err
	}

	f.Touch(now)

	return nil
}

// Totals sums item prices.
func (f *Festival) Totals() FestivalTotals {
	var totals FestivalTotals
	for _, item := range f.Items.Items() {
		totals.ItemCount++
		totals.TotalPrice += item.Price
		if item.Completed {
			totals.CompletedCount++
			totals.CompletedPrice += item.Price
		}
	}

	return totals
}

func buildBucketItem(in BucketItemInput) (*BucketItem, error) {
	label, err := requireText("label", in.Label, maxBucketLabelLen)
	if err != nil {
		return nil, err
	}
	if err := checkPrice(in.Price); err != nil {
		return nil, err
	}

	return &BucketItem{Label: label, Price: in.Price, Completed: in.Completed}, nil
}

func checkPrice(price float64) error {
	if price < 0 {
		return domainerrors.Validationf("price cannot be negative")
	}

	return nil
}

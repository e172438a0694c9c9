package entity

import (
	"time"

	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	minStartAge    = 18
	minEndAge      = 19
	maxPlanAge     = 100
	minTargetYear  = 2024
	maxPlanDescLen = 1000
)

// LifePlan is a goal placed on the owner's age line.
type LifePlan struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	StartAge    int       `json:"startAge"`
	EndAge      int       `json:"endAge"`
	TargetYear  int       `json:"targetYear"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LifePlanInput carries the fields of a new life plan.
type LifePlanInput struct {
	StartAge    int
	EndAge      int
	TargetYear  int
	Description string
}

// LifePlanPatch lists the mutable life plan fields; nil means unchanged.
type LifePlanPatch struct {
	StartAge    *int
	EndAge      *int
	TargetYear  *int
	Description *string
}

// NewLifePlan validates input and builds a life plan.
func NewLifePlan(ownerID uuid.UUID, in LifePlanInput, now time.Time) (*LifePlan, error) {
	plan := &LifePlan{
		ID:         NewID(),
		OwnerID:    ownerID,
		StartAge:   in.StartAge,
		EndAge:     in.EndAge,
		TargetYear: in.TargetYear,
		CreatedAt:  now.UTC(),
		UpdatedAt:  now.UTC(),
	}

	description, err := requireText("description", in.Description, maxPlanDescLen)
	if err != nil {
		return nil, err
	}
	plan.Description = description

	if err := plan.validate(); err != nil {
		return nil, err
	}

	return plan, nil
}

// Apply updates the plan; the result is validated as a whole.
func (p *LifePlan) Apply(patch LifePlanPatch, now time.Time) error {
	next := *p
	if patch.StartAge != nil {
		next.StartAge = *patch.StartAge
	}
	if patch.EndAge != nil {
		next.EndAge = *patch.EndAge
	}
	if patch.TargetYear != nil {
		next.TargetYear = *patch.TargetYear
	}
	if patch.Description != nil {
		description, err := requireText("description", *patch.Description, maxPlanDescLen)
		if err != nil {
			return err
		}
		next.Description = description
	}

	if err := next.validate(); err != nil {
		return err
	}
	if now = now.UTC(); now.After(next.UpdatedAt) {
		next.UpdatedAt = now
	}
	*p = next

	return nil
}

func (p *LifePlan) validate() error {
	if p.StartAge < minStartAge || p.StartAge > maxPlanAge {
		return domainerrors.Validationf("startAge must be between %d and %d", minStartAge, maxPlanAge)
	}
	if p.EndAge < minEndAge || p.EndAge > maxPlanAge {
		return domainerrors.Validationf("endAge must be between %d and %d", minEndAge, maxPlanAge)
	}
	if p.EndAge <= p.StartAge {
		return domainerrors.Validationf("endAge must be greater than startAge")
	}
	if p.TargetYear < minTargetYear {
		return domainerrors.Validationf("targetYear must be %d or later", minTargetYear)
	}

	return nil
}

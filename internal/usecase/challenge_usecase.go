package usecase

import (
	"context"

	"lifeos/internal/domain/entity"

	"github.com/google/uuid"
)

// ChallengeUsecase manages challenges and their nested sections and subjects.
// Every mutation loads the challenge, changes it in memory and saves it as one
// document, returning the saved challenge.
type ChallengeUsecase interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Challenge, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Challenge, error)
	Create(ctx context.Context, ownerID uuid.UUID, input entity.ChallengeInput) (*entity.Challenge, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.ChallengePatch) (*entity.Challenge, error)
	// Delete is a soft delete; the challenge disappears from every read.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	AddSection(ctx context.Context, ownerID, id uuid.UUID, input entity.SectionInput) (*entity.Challenge, error)
	UpdateSection(ctx context.Context, ownerID, id, sectionID uuid.UUID, patch entity.SectionPatch) (*entity.Challenge, error)
	RemoveSection(ctx context.Context, ownerID, id, sectionID uuid.UUID) (*entity.Challenge, error)

	AddSubject(ctx context.Context, ownerID, id, sectionID uuid.UUID, input entity.SubjectInput) (*entity.Challenge, error)
	// AddSubjects inserts all subjects or none.
	AddSubjects(ctx context.Context, ownerID, id, sectionID uuid.UUID, inputs []entity.SubjectInput) (*entity.Challenge, error)
	UpdateSubject(ctx context.Context, ownerID, id, subjectID uuid.UUID, patch entity.SubjectPatch) (*entity.Challenge, error)
	RemoveSubject(ctx context.Context, ownerID, id, subjectID uuid.UUID) (*entity.Challenge, error)
}

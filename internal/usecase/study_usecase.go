package usecase

import (
	"context"

	"lifeos/internal/domain/entity"

	"github.com/google/uuid"
)

// StudyUsecase manages the per-owner study structure. The structure is
// created empty on first access.
type StudyUsecase interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*entity.StudyStructure, error)
	Statistics(ctx context.Context, ownerID uuid.UUID) (*entity.StudyStatistics, error)

	AddBranch(ctx context.Context, ownerID uuid.UUID, input entity.BranchInput) (*entity.StudyStructure, error)
	UpdateBranch(ctx context.Context, ownerID, branchID uuid.UUID, patch entity.BranchPatch) (*entity.StudyStructure, error)
	// RemoveBranch discards the branch with all of its subjects and materials.
	RemoveBranch(ctx context.Context, ownerID, branchID uuid.UUID) (*entity.StudyStructure, error)

	AddSubject(ctx context.Context, ownerID, branchID uuid.UUID, input entity.StudySubjectInput) (*entity.StudyStructure, error)
	UpdateSubject(ctx context.Context, ownerID, branchID, subjectID uuid.UUID, patch entity.StudySubjectPatch) (*entity.StudyStructure, error)
	RemoveSubject(ctx context.Context, ownerID, branchID, subjectID uuid.UUID) (*entity.StudyStructure, error)

	AddMaterial(ctx context.Context, ownerID, branchID, subjectID uuid.UUID, input entity.MaterialInput) (*entity.StudyStructure, error)
	UpdateMaterial(ctx context.Context, ownerID, branchID, subjectID, materialID uuid.UUID, patch entity.MaterialPatch) (*entity.StudyStructure, error)
	RemoveMaterial(ctx context.Context, ownerID, branchID, subjectID, materialID uuid.UUID) (*entity.StudyStructure, error)
}

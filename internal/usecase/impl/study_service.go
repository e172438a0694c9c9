package impl

import (
	"context"
	"log/slog"
	"time"

	"lifeos/internal/domain/entity"
	"lifeos/internal/domain/repository"
	"lifeos/internal/errors"
	"lifeos/internal/usecase"

	"github.com/google/uuid"
)

// studyService implements the StudyUsecase interface.
type studyService struct {
	studyRepo repository.StudyStructureRepository
	now       func() time.Time
	logger    *slog.Logger
}

// NewStudyService is the constructor for studyService.
func NewStudyService(studyRepo repository.StudyStructureRepository, logger *slog.Logger) usecase.StudyUsecase {
	return &studyService{
		studyRepo: studyRepo,
		now:       time.Now,
		logger:    logger,
	}
}

func (srv *studyService) Get(ctx context.Context, ownerID uuid.UUID) (*entity.StudyStructure, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	structure, err := srv.studyRepo.LoadOrCreate(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load study structure")
	}

	return structure, nil
}

func (srv *studyService) Statistics(ctx context.Context, ownerID uuid.UUID) (*entity.StudyStatistics, error) {
	structure, err := srv.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	stats := structure.Statistics()

	return &stats, nil
}

func (srv *studyService) AddBranch(ctx context.Context, ownerID uuid.UUID, input entity.BranchInput) (*entity.StudyStructure, error) {
	return srv.change(ctx, ownerID, "add branch", func(s *entity.StudyStructure) error {
		_, err := s.AddBranch(input, srv.now())

		return err
	})
}

func (srv *studyService) UpdateBranch(ctx context.Context, ownerID, branchID uuid.UUID, patch entity.BranchPatch) (*entity.StudyStructure, error) {
	return srv.change(ctx, ownerID, "update branch", func(s *entity.StudyStructure) error {
		_, err := s.UpdateBranch(branchID, patch, srv.now())

		return err
	})
}

func (srv *studyService) RemoveBranch(ctx context.Context, ownerID, branchID uuid.UUID) (*entity.StudyStructure, error) {
	return srv.change(ctx, ownerID, "remove branch", func(s *entity.StudyStructure) error {
		return s.RemoveBranch(branchID, srv.now())
	})
}

func (srv *studyService) AddSubject(ctx context.Context, ownerID, branchID uuid.UUID, input entity.StudySubjectInput) (*entity.StudyStructure, error) {
	return srv.change(ctx, ownerID, "add study subject", func(s *entity.StudyStructure) error {
		_, err := s.AddSubject(branchID, input, srv.now())

		return err
	})
}

func (srv *studyService) UpdateSubject(ctx context.Context, ownerID, branchID, subjectID uuid.UUID, patch entity.StudySubjectPatch) (*entity.StudyStructure, error) {
	return srv.change(ctx, ownerID, "update study subject", func(s *entity.StudyStructure) error {
		_, err := s.UpdateSubject(branchID, subjectID, patch, srv.now())

		return err
	})
}

func (srv *studyService) RemoveSubject(ctx context.Context, ownerID, branchID, subjectID uuid.UUID) (*entity.StudyStructure, error) {
	return srv.change(ctx, ownerID, "remove study subject", func(s *entity.StudyStructure) error {
		return s.RemoveSubject(branchID, subjectID, srv.now())
	})
}

func (srv *studyService) AddMaterial(ctx context.Context, ownerID, branchID, subjectID uuid.UUID, input entity.MaterialInput) (*entity.StudyStructure, error) {
	return srv.change(ctx, ownerID, "add material", func(s *entity.StudyStructure) error {
		_, err := s.AddMaterial(branchID, subjectID, input, srv.now())

		return err
	})
}

func (srv *studyService) UpdateMaterial(ctx context.Context, ownerID, branchID, subjectID, materialID uuid.UUID, patch entity.MaterialPatch) (*entity.StudyStructure, error) {
	return srv.change(ctx, ownerID, "update material", func(s *entity.StudyStructure) error {
		_, err := s.UpdateMaterial(branchID, subjectID, materialID, patch, srv.now())

		return err
	})
}

func (srv *studyService) RemoveMaterial(ctx context.Context, ownerID, branchID, subjectID, materialID uuid.UUID) (*entity.StudyStructure, error) {
	return srv.change(ctx, ownerID, "remove material", func(s *entity.StudyStructure) error {
		return s.RemoveMaterial(branchID, subjectID, materialID, srv.now())
	})
}

func (srv *studyService) change(ctx context.Context, ownerID uuid.UUID, action string, fn func(*entity.StudyStructure) error) (*entity.StudyStructure, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	structure, err := mutate(ctx,
		func(ctx context.Context) (*entity.StudyStructure, error) {
			return srv.studyRepo.LoadOrCreate(ctx, ownerID)
		},
		fn,
		srv.studyRepo.Save,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s", action)
	}

	return structure, nil
}

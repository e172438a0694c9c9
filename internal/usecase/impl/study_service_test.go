package impl

import (
	"context"
	"testing"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	mockRepo "lifeos/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStudyService(t *testing.T) (*studyService, *mockRepo.MockStudyStructureRepository) {
	repo := mockRepo.NewMockStudyStructureRepository(t)
	srv := NewStudyService(repo, newDiscardLogger()).(*studyService)
	srv.now = fixedClock

	return srv, repo
}

func TestStudyService_AddBranch_CreatesStructureOnFirstUse(t *testing.T) {
	srv, repo := newTestStudyService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	structure := entity.NewStudyStructure(ownerID, testNow)

	repo.EXPECT().LoadOrCreate(ctx, ownerID).Return(structure, nil)
	repo.EXPECT().Save(ctx, structure).Return(nil)

	got, err := srv.AddBranch(ctx, ownerID, entity.BranchInput{Name: "Mathematics"})

	require.NoError(t, err)
	branches := got.Branches.Items()
	require.Len(t, branches, 1)
	assert.Equal(t, "Mathematics", branches[0].Name)
	assert.True(t, branches[0].IsActive)
}

func TestStudyService_AddBranch_DuplicateNameLeavesStructureUnsaved(t *testing.T) {
	srv, repo := newTestStudyService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	structure := entity.NewStudyStructure(ownerID, testNow)
	_, err := structure.AddBranch(entity.BranchInput{Name: "Physics"}, testNow)
	require.NoError(t, err)

	repo.EXPECT().LoadOrCreate(ctx, ownerID).Return(structure, nil)

	_, err = srv.AddBranch(ctx, ownerID, entity.BranchInput{Name: "PHYSICS"})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateName)
	assert.Equal(t, 1, structure.Branches.Len())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestStudyService_RemoveBranch_DiscardsMaterials(t *testing.T) {
	srv, repo := newTestStudyService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	structure := entity.NewStudyStructure(ownerID, testNow)
	branch, err := structure.AddBranch(entity.BranchInput{Name: "Languages"}, testNow)
	require.NoError(t, err)
	subject, err := structure.AddSubject(branch.ID, entity.StudySubjectInput{Name: "Spanish"}, testNow)
	require.NoError(t, err)
	_, err = structure.AddMaterial(branch.ID, subject.ID, entity.MaterialInput{Title: "Grammar", Link: "https://example.com/grammar.pdf", Type: entity.MaterialTypePDF}, testNow)
	require.NoError(t, err)

	repo.EXPECT().LoadOrCreate(ctx, ownerID).Return(structure, nil).Times(2)
	repo.EXPECT().Save(ctx, structure).Return(nil)

	_, err = srv.RemoveBranch(ctx, ownerID, branch.ID)
	require.NoError(t, err)

	stats, err := srv.Statistics(ctx, ownerID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalBranches)
	assert.Zero(t, stats.TotalMaterials)
}

func TestStudyService_UpdateMaterial_UnknownSubject(t *testing.T) {
	srv, repo := newTestStudyService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	structure := entity.NewStudyStructure(ownerID, testNow)
	branch, err := structure.AddBranch(entity.BranchInput{Name: "History"}, testNow)
	require.NoError(t, err)

	repo.EXPECT().LoadOrCreate(ctx, ownerID).Return(structure, nil)

	title := "Renamed"
	_, err = srv.UpdateMaterial(ctx, ownerID, branch.ID, uuid.New(), uuid.New(), entity.MaterialPatch{Title: &title})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

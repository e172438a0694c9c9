package impl

import (
	"context"
	"testing"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	mockRepo "lifeos/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestChallengeService(t *testing.T) (*challengeService, *mockRepo.MockChallengeRepository) {
	repo := mockRepo.NewMockChallengeRepository(t)
	srv := NewChallengeService(repo, newDiscardLogger()).(*challengeService)
	srv.now = fixedClock

	return srv, repo
}

func newStoredChallenge(t *testing.T, ownerID uuid.UUID) *entity.Challenge {
	t.Helper()

	challenge, err := entity.NewChallenge(ownerID, entity.ChallengeInput{
		Name:     "Learn Go",
		Sections: []entity.SectionInput{{Name: "Basics"}, {Name: "Concurrency"}},
	}, testNow.Add(-24*time.Hour))
	require.NoError(t, err)
	challenge.Version = 1

	return challenge
}

func TestChallengeService_Create_Success(t *testing.T) {
	srv, repo := newTestChallengeService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Challenge")).Return(nil)

	challenge, err := srv.Create(ctx, ownerID, entity.ChallengeInput{Name: "  Read 12 books  "})

	require.NoError(t, err)
	assert.Equal(t, "Read 12 books", challenge.Name)
	assert.Equal(t, entity.ChallengeStatusActive, challenge.Status)
	assert.Equal(t, ownerID, challenge.OwnerID)
}

func TestChallengeService_Create_InvalidInputIsNotStored(t *testing.T) {
	srv, _ := newTestChallengeService(t)

	_, err := srv.Create(context.Background(), uuid.New(), entity.ChallengeInput{Name: "   "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestChallengeService_RequiresOwner(t *testing.T) {
	srv, _ := newTestChallengeService(t)

	_, err := srv.List(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestChallengeService_AddSection_SavesWholeDocument(t *testing.T) {
	srv, repo := newTestChallengeService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	stored := newStoredChallenge(t, ownerID)

	repo.EXPECT().Load(ctx, ownerID, stored.ID).Return(stored, nil)
	repo.EXPECT().Save(ctx, stored).Return(nil)

	challenge, err := srv.AddSection(ctx, ownerID, stored.ID, entity.SectionInput{Name: "Testing"})

	require.NoError(t, err)
	sections := challenge.Sections.Items()
	require.Len(t, sections, 3)
	assert.Equal(t, "Testing", sections[2].Name)
	assert.Equal(t, 3, sections[2].Order)
	assert.Equal(t, testNow, challenge.UpdatedAt)
}

func TestChallengeService_RemoveSection_RenumbersOrder(t *testing.T) {
	srv, repo := newTestChallengeService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	stored := newStoredChallenge(t, ownerID)
	first := stored.Sections.Items()[0]

	repo.EXPECT().Load(ctx, ownerID, stored.ID).Return(stored, nil)
	repo.EXPECT().Save(ctx, stored).Return(nil)

	challenge, err := srv.RemoveSection(ctx, ownerID, stored.ID, first.ID)

	require.NoError(t, err)
	sections := challenge.Sections.Items()
	require.Len(t, sections, 1)
	assert.Equal(t, "Concurrency", sections[0].Name)
	assert.Equal(t, 1, sections[0].Order)
}

func TestChallengeService_AddSubjects_AllOrNothing(t *testing.T) {
	srv, repo := newTestChallengeService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	stored := newStoredChallenge(t, ownerID)
	section := stored.Sections.Items()[0]

	repo.EXPECT().Load(ctx, ownerID, stored.ID).Return(stored, nil)

	_, err := srv.AddSubjects(ctx, ownerID, stored.ID, section.ID, []entity.SubjectInput{
		{Name: "Goroutines"},
		{Name: "   "},
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Zero(t, section.Subjects.Len())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestChallengeService_Update_ConflictIsReported(t *testing.T) {
	srv, repo := newTestChallengeService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	stored := newStoredChallenge(t, ownerID)
	status := entity.ChallengeStatusCompleted

	repo.EXPECT().Load(ctx, ownerID, stored.ID).Return(stored, nil)
	repo.EXPECT().Save(ctx, stored).Return(domainerrors.ErrConflict)

	_, err := srv.Update(ctx, ownerID, stored.ID, entity.ChallengePatch{Status: &status})

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestChallengeService_Get_OtherOwnerIsNotFound(t *testing.T) {
	srv, repo := newTestChallengeService(t)
	ctx := context.Background()
	ownerID, id := uuid.New(), uuid.New()

	repo.EXPECT().Load(ctx, ownerID, id).Return(nil, domainerrors.NotFound("challenge"))

	_, err := srv.Get(ctx, ownerID, id)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestChallengeService_Delete_IsSoft(t *testing.T) {
	srv, repo := newTestChallengeService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	stored := newStoredChallenge(t, ownerID)

	repo.EXPECT().Load(ctx, ownerID, stored.ID).Return(stored, nil)
	repo.EXPECT().Save(ctx, stored).Return(nil)

	require.NoError(t, srv.Delete(ctx, ownerID, stored.ID))
	assert.True(t, stored.IsDeleted)
}

package entity

import (
	"testing"
	"time"

	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChallenge(t *testing.T) *Challenge {
	t.Helper()

	challenge, err := NewChallenge(uuid.New(), ChallengeInput{
		Name: "Backend roadmap",
		Sections: []SectionInput{
			{Name: "Go", Subjects: []SubjectInput{{Name: "Generics"}, {Name: "Channels"}, {Name: "Testing"}}},
			{Name: "SQL"},
			{Name: "Ops"},
		},
	}, testNow)
	require.NoError(t, err)

	return challenge
}

func TestChallenge_RemoveMiddleSubject(t *testing.T) {
	challenge := newTestChallenge(t)
	goSection := challenge.Sections.Items()[0]
	subjects := goSection.Subjects.Items()
	sectionsBefore := challenge.Sections.Items()

	require.NoError(t, challenge.RemoveSubject(subjects[1].ID, testNow))

	for _, kept := range []*ChallengeSubject{subjects[0], subjects[2]} {
		section, found, err := challenge.FindSubject(kept.ID)
		require.NoError(t, err)
		assert.Same(t, goSection, section)
		assert.Same(t, kept, found)
	}
	_, _, err := challenge.FindSubject(subjects[1].ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	sectionsAfter := challenge.Sections.Items()
	require.Len(t, sectionsAfter, 3)
	for i := range sectionsAfter {
		assert.Equal(t, sectionsBefore[i].ID, sectionsAfter[i].ID)
		assert.Equal(t, i+1, sectionsAfter[i].Order)
	}
}

func TestChallenge_RemoveSectionRenumbers(t *testing.T) {
	challenge := newTestChallenge(t)
	sections := challenge.Sections.Items()

	require.NoError(t, challenge.RemoveSection(sections[0].ID, testNow))

	remaining := challenge.Sections.Items()
	require.Len(t, remaining, 2)
	assert.Equal(t, sections[1].ID, remaining[0].ID)
	assert.Equal(t, 1, remaining[0].Order)
	assert.Equal(t, sections[2].ID, remaining[1].ID)
	assert.Equal(t, 2, remaining[1].Order)
}

func TestChallenge_AddSubjectsIsAllOrNothing(t *testing.T) {
	challenge := newTestChallenge(t)
	sql := challenge.Sections.Items()[1]
	updatedAt := challenge.UpdatedAt

	_, err := challenge.AddSubjects(sql.ID, []SubjectInput{
		{Name: "Joins"},
		{Name: "Indexes", Progress: 140},
	}, testNow.Add(time.Hour))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Zero(t, sql.Subjects.Len())
	assert.Equal(t, updatedAt, challenge.UpdatedAt)
}

func TestChallenge_UpdateSubjectProgressBounds(t *testing.T) {
	challenge := newTestChallenge(t)
	subject := challenge.Sections.Items()[0].Subjects.Items()[0]

	tests := []struct {
		name     string
		progress int
		wantErr  bool
	}{
		{name: "lower bound", progress: 0},
		{name: "upper bound", progress: 100},
		{name: "below", progress: -1, wantErr: true},
		{name: "above", progress: 101, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := subject.Progress
			_, err := challenge.UpdateSubject(subject.ID, SubjectPatch{Progress: intPtr(tt.progress)}, testNow)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
				assert.Equal(t, before, subject.Progress)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.progress, subject.Progress)
		})
	}
}

func TestChallenge_StatusAcceptsAnyTransition(t *testing.T) {
	challenge := newTestChallenge(t)

	for _, status := range []ChallengeStatus{ChallengeStatusCompleted, ChallengeStatusActive, ChallengeStatusPaused, ChallengeStatusCompleted} {
		require.NoError(t, challenge.Apply(ChallengePatch{Status: &status}, testNow))
		assert.Equal(t, status, challenge.Status)
	}

	unknown := ChallengeStatus("archived")
	assert.ErrorIs(t, challenge.Apply(ChallengePatch{Status: &unknown}, testNow), domainerrors.ErrValidationFailed)
	assert.Equal(t, ChallengeStatusCompleted, challenge.Status)
}

func TestChallenge_UpdatedAtNeverMovesBackwards(t *testing.T) {
	challenge := newTestChallenge(t)
	later := testNow.Add(2 * time.Hour)
	earlier := testNow.Add(-24 * time.Hour)

	_, err := challenge.AddSection(SectionInput{Name: "Cloud"}, later)
	require.NoError(t, err)
	assert.Equal(t, later, challenge.UpdatedAt)

	_, err = challenge.AddSection(SectionInput{Name: "Security"}, earlier)
	require.NoError(t, err)
	assert.Equal(t, later, challenge.UpdatedAt)
	assert.Equal(t, testNow, challenge.CreatedAt)
}

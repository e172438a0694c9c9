package entity

import (
	"testing"
	"time"

	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStructure(t *testing.T) (*StudyStructure, *Branch, *Branch) {
	t.Helper()

	structure := NewStudyStructure(uuid.New(), testNow)
	science, err := structure.AddBranch(BranchInput{Name: "Science"}, testNow)
	require.NoError(t, err)
	arts, err := structure.AddBranch(BranchInput{Name: "Arts"}, testNow)
	require.NoError(t, err)

	return structure, science, arts
}

func strPtr(v string) *string { return &v }

func TestStudyStructure_SubjectNamesAreUniquePerBranch(t *testing.T) {
	structure, science, arts := newTestStructure(t)

	_, err := structure.AddSubject(science.ID, StudySubjectInput{Name: "History"}, testNow)
	require.NoError(t, err)

	_, err = structure.AddSubject(arts.ID, StudySubjectInput{Name: "history"}, testNow)
	require.NoError(t, err, "the same name is allowed in another branch")

	_, err = structure.AddSubject(science.ID, StudySubjectInput{Name: "HISTORY"}, testNow)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateName)
	assert.Equal(t, 1, science.Subjects.Len())
}

func TestStudyStructure_RenameChecksSiblings(t *testing.T) {
	structure, science, arts := newTestStructure(t)
	physics, err := structure.AddSubject(science.ID, StudySubjectInput{Name: "Physics"}, testNow)
	require.NoError(t, err)
	chemistry, err := structure.AddSubject(science.ID, StudySubjectInput{Name: "Chemistry"}, testNow)
	require.NoError(t, err)

	tests := []struct {
		name    string
		rename  func() error
		wantErr error
		check   func(t *testing.T)
	}{
		{
			name: "branch to sibling name",
			rename: func() error {
				_, err := structure.UpdateBranch(arts.ID, BranchPatch{Name: strPtr("science")}, testNow)
				return err
			},
			wantErr: domainerrors.ErrDuplicateName,
			check:   func(t *testing.T) { assert.Equal(t, "Arts", arts.Name) },
		},
		{
			name: "branch to own name in another case",
			rename: func() error {
				_, err := structure.UpdateBranch(arts.ID, BranchPatch{Name: strPtr("ARTS")}, testNow)
				return err
			},
			check: func(t *testing.T) { assert.Equal(t, "ARTS", arts.Name) },
		},
		{
			name: "subject to sibling name",
			rename: func() error {
				_, err := structure.UpdateSubject(science.ID, chemistry.ID, StudySubjectPatch{Name: strPtr("physics")}, testNow)
				return err
			},
			wantErr: domainerrors.ErrDuplicateName,
			check:   func(t *testing.T) { assert.Equal(t, "Chemistry", chemistry.Name) },
		},
		{
			name: "subject to own name",
			rename: func() error {
				_, err := structure.UpdateSubject(science.ID, physics.ID, StudySubjectPatch{Name: strPtr("Physics")}, testNow)
				return err
			},
			check: func(t *testing.T) { assert.Equal(t, "Physics", physics.Name) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rename()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			tt.check(t)
		})
	}
}

func TestStudyStructure_NestedMutationStampsEveryLevel(t *testing.T) {
	structure, science, arts := newTestStructure(t)
	subject, err := structure.AddSubject(science.ID, StudySubjectInput{Name: "Biology"}, testNow)
	require.NoError(t, err)
	material, err := structure.AddMaterial(science.ID, subject.ID, MaterialInput{Title: "Cells", Link: "https://example.com/cells"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, MaterialTypeOther, material.Type)

	later := testNow.Add(time.Hour)
	_, err = structure.UpdateMaterial(science.ID, subject.ID, material.ID, MaterialPatch{Title: strPtr("Cell biology")}, later)
	require.NoError(t, err)

	assert.Equal(t, later, material.UpdatedAt)
	assert.Equal(t, later, subject.UpdatedAt)
	assert.Equal(t, later, science.UpdatedAt)
	assert.Equal(t, later, structure.UpdatedAt)
	assert.Equal(t, testNow, arts.UpdatedAt)
}

func TestStudyStructure_RemoveBranchDiscardsDescendants(t *testing.T) {
	structure, science, _ := newTestStructure(t)
	subject, err := structure.AddSubject(science.ID, StudySubjectInput{Name: "Biology"}, testNow)
	require.NoError(t, err)
	_, err = structure.AddMaterial(science.ID, subject.ID, MaterialInput{Title: "Cells", Link: "https://example.com/cells", Type: MaterialTypeVideo}, testNow)
	require.NoError(t, err)

	require.NoError(t, structure.RemoveBranch(science.ID, testNow))

	stats := structure.Statistics()
	assert.Equal(t, 1, stats.TotalBranches)
	assert.Zero(t, stats.TotalSubjects)
	assert.Zero(t, stats.TotalMaterials)
	_, _, err = structure.FindSubject(science.ID, subject.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

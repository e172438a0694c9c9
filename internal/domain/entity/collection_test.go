package entity

import (
	"math/rand/v2"
	"testing"

	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertGapless(t *testing.T, sections []*Section) {
	t.Helper()

	for i, section := range sections {
		require.Equal(t, i+1, section.Order, "section %q at position %d", section.Name, i)
	}
}

func TestCollection_OrderStaysGaplessAcrossInsertsAndRemoves(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))

	var c Collection[*Section]
	var expected []uuid.UUID

	for step := range 300 {
		if c.Len() == 0 || rng.IntN(3) > 0 {
			added := c.Insert(&Section{Name: "s"})
			expected = append(expected, added.ID)
		} else {
			idx := rng.IntN(len(expected))
			_, err := c.Remove(expected[idx])
			require.NoError(t, err, "step %d", step)
			expected = append(expected[:idx], expected[idx+1:]...)
		}

		items := c.Items()
		require.Len(t, items, len(expected))
		assertGapless(t, items)
		for i, item := range items {
			require.Equal(t, expected[i], item.ID, "relative sequence broken at step %d", step)
		}
	}
}

func TestCollection_InsertMintsUniqueIDs(t *testing.T) {
	var c Collection[*Task]
	supplied := uuid.New()

	first := c.Insert(&Task{ID: supplied})
	second := c.Insert(&Task{})

	assert.NotEqual(t, supplied, first.ID)
	assert.NotEqual(t, uuid.Nil, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCollection_FindAndRemoveMissing(t *testing.T) {
	var c Collection[*Section]
	c.Insert(&Section{Name: "only"})

	_, err := c.Find(uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = c.Remove(uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, 1, c.Len())
}

func TestCollection_UpdateRejectedPatchLeavesEntry(t *testing.T) {
	var c Collection[*Section]
	section := c.Insert(&Section{Name: "Basics", Progress: 10})

	_, err := c.Update(section.ID, func(s *Section) error {
		return s.apply(SectionPatch{Progress: intPtr(101)})
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, 10, section.Progress)
}

func TestCollection_Replace(t *testing.T) {
	var c Collection[*Section]
	kept := c.Insert(&Section{Name: "kept"})
	c.Insert(&Section{Name: "dropped"})

	require.NoError(t, c.Replace([]*Section{{Name: "new"}, kept}))

	items := c.Items()
	require.Len(t, items, 2)
	assert.NotEqual(t, uuid.Nil, items[0].ID)
	assert.Equal(t, kept.ID, items[1].ID)
	assertGapless(t, items)

	err := c.Replace([]*Section{{ID: kept.ID}, {ID: kept.ID}})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, 2, c.Len())
}

func TestEnsureUniqueName(t *testing.T) {
	var c Collection[*Branch]
	physics := c.Insert(&Branch{Name: "Physics"})

	assert.ErrorIs(t, EnsureUniqueName(&c, " PHYSICS ", uuid.Nil), domainerrors.ErrDuplicateName)
	assert.NoError(t, EnsureUniqueName(&c, "physics", physics.ID))
	assert.NoError(t, EnsureUniqueName(&c, "Chemistry", uuid.Nil))
}

func TestCollection_JSON(t *testing.T) {
	var empty Collection[*Task]
	raw, err := empty.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))

	var decoded Collection[*Section]
	require.NoError(t, decoded.UnmarshalJSON([]byte(`[{"name":"a","order":7},null,{"name":"b","order":9}]`)))
	assertGapless(t, decoded.Items())
}

func intPtr(v int) *int { return &v }

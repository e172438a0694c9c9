package postgres

import (
	"context"
	"encoding/json"
	"testing"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChallenge(t *testing.T, ownerID uuid.UUID, name string) *entity.Challenge {
	t.Helper()

	challenge, err := entity.NewChallenge(ownerID, entity.ChallengeInput{
		Name: name,
		Sections: []entity.SectionInput{
			{Name: "Basics", Subjects: []entity.SubjectInput{{Name: "Arrays"}, {Name: "Maps"}}},
		},
	}, testNow)
	require.NoError(t, err)

	return challenge
}

func TestChallengeRepository_CreateAndLoadRoundTrip(t *testing.T) {
	repo := NewChallengeRepository(newTestDB(t), newTestMetrics())
	ctx := context.Background()
	ownerID := uuid.New()

	challenge := newTestChallenge(t, ownerID, "Go in 30 days")
	require.NoError(t, repo.Create(ctx, challenge))
	assert.Equal(t, int64(1), challenge.Version)

	loaded, err := repo.Load(ctx, ownerID, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, challenge.ID, loaded.ID)
	assert.Equal(t, ownerID, loaded.OwnerID)
	assert.Equal(t, int64(1), loaded.Version)
	assert.Equal(t, "Go in 30 days", loaded.Name)
	require.Equal(t, 1, loaded.Sections.Len())

	section := loaded.Sections.Items()[0]
	assert.Equal(t, challenge.Sections.Items()[0].ID, section.ID)
	assert.Equal(t, 2, section.Subjects.Len())
}

func TestChallengeRepository_LoadIsOwnerScoped(t *testing.T) {
	repo := NewChallengeRepository(newTestDB(t), newTestMetrics())
	ctx := context.Background()

	challenge := newTestChallenge(t, uuid.New(), "Private")
	require.NoError(t, repo.Create(ctx, challenge))

	_, err := repo.Load(ctx, uuid.New(), challenge.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.Load(ctx, challenge.OwnerID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestChallengeRepository_SaveRejectsStaleVersion(t *testing.T) {
	repo := NewChallengeRepository(newTestDB(t), newTestMetrics())
	ctx := context.Background()
	ownerID := uuid.New()

	challenge := newTestChallenge(t, ownerID, "Shared")
	require.NoError(t, repo.Create(ctx, challenge))

	first, err := repo.Load(ctx, ownerID, challenge.ID)
	require.NoError(t, err)
	second, err := repo.Load(ctx, ownerID, challenge.ID)
	require.NoError(t, err)

	_, err = first.AddSection(entity.SectionInput{Name: "From first"}, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))
	assert.Equal(t, int64(2), first.Version)

	_, err = second.AddSection(entity.SectionInput{Name: "From second"}, testNow)
	require.NoError(t, err)
	err = repo.Save(ctx, second)
	require.ErrorIs(t, err, domainerrors.ErrConflict)

	stored, err := repo.Load(ctx, ownerID, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Version)
	require.Equal(t, 2, stored.Sections.Len())
	assert.Equal(t, "From first", stored.Sections.Items()[1].Name)
}

func TestChallengeRepository_SaveUnknownIsNotFound(t *testing.T) {
	repo := NewChallengeRepository(newTestDB(t), newTestMetrics())

	err := repo.Save(context.Background(), newTestChallenge(t, uuid.New(), "Never created"))
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestChallengeRepository_SoftDeletedIsHidden(t *testing.T) {
	repo := NewChallengeRepository(newTestDB(t), newTestMetrics())
	ctx := context.Background()
	ownerID := uuid.New()

	kept := newTestChallenge(t, ownerID, "Kept")
	removed := newTestChallenge(t, ownerID, "Removed")
	require.NoError(t, repo.Create(ctx, kept))
	require.NoError(t, repo.Create(ctx, removed))

	removed.MarkDeleted(testNow)
	require.NoError(t, repo.Save(ctx, removed))

	list, err := repo.List(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, kept.ID, list[0].ID)

	_, err = repo.Load(ctx, ownerID, removed.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestStudyStructureRepository_LoadOrCreateIsIdempotent(t *testing.T) {
	repo := NewStudyStructureRepository(newTestDB(t), newTestMetrics())
	ctx := context.Background()
	ownerID := uuid.New()

	first, err := repo.LoadOrCreate(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Branches.Len())

	_, err = first.AddBranch(entity.BranchInput{Name: "Mathematics"}, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := repo.LoadOrCreate(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	require.Equal(t, 1, second.Branches.Len())
	assert.Equal(t, "Mathematics", second.Branches.Items()[0].Name)

	other, err := repo.LoadOrCreate(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
	assert.Equal(t, 0, other.Branches.Len())
}

func TestFestivalRepository_Delete(t *testing.T) {
	repo := NewFestivalRepository(newTestDB(t), newTestMetrics())
	ctx := context.Background()
	ownerID := uuid.New()

	festival, err := entity.NewFestival(ownerID, entity.FestivalInput{
		Name:  "Lunar New Year",
		Items: []entity.BucketItemInput{{Label: "Red envelopes", Price: 12.5}},
	}, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, festival))

	assert.ErrorIs(t, repo.Delete(ctx, uuid.New(), festival.ID), domainerrors.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, ownerID, festival.ID))
	assert.ErrorIs(t, repo.Delete(ctx, ownerID, festival.ID), domainerrors.ErrNotFound)

	list, err := repo.List(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSpecialScheduleRepository_ListOverlapping(t *testing.T) {
	repo := NewSpecialScheduleRepository(newTestDB(t), newTestMetrics())
	ctx := context.Background()
	ownerID := uuid.New()

	windows := []struct {
		title      string
		start, end int
	}{
		{"Exams", 10, 14},
		{"Trip", 1, 3},
		{"Sprint", 20, 25},
	}
	for _, w := range windows {
		schedule, err := entity.NewSpecialSchedule(ownerID, entity.SpecialScheduleInput{
			Title:     w.title,
			StartDate: day(2026, 4, w.start),
			EndDate:   day(2026, 4, w.end),
		}, testNow)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, schedule))
	}

	all, err := repo.List(ctx, ownerID, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Trip", all[0].Title)
	assert.Equal(t, "Exams", all[1].Title)
	assert.Equal(t, "Sprint", all[2].Title)

	from, to := day(2026, 4, 3), day(2026, 4, 12)
	overlapping, err := repo.List(ctx, ownerID, &from, &to)
	require.NoError(t, err)
	require.Len(t, overlapping, 2)
	assert.Equal(t, "Trip", overlapping[0].Title)
	assert.Equal(t, "Exams", overlapping[1].Title)
}

func TestDailyScheduleRepository_UpsertReplacesSlots(t *testing.T) {
	repo := NewDailyScheduleRepository(newTestDB(t), newTestMetrics())
	ctx := context.Background()
	ownerID := uuid.New()
	date := day(2026, 3, 10)

	schedule := entity.NewDailySchedule(ownerID, date, testNow)
	require.NoError(t, schedule.ReplaceSlots([]entity.TimeSlotInput{
		{StartTime: "08:00", EndTime: "09:00", Description: "Run"},
		{StartTime: "09:30", EndTime: "11:00", Description: "Deep work"},
	}, testNow))

	stored, err := repo.Upsert(ctx, schedule)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.TimeSlots.Len())
	assert.Equal(t, int64(1), stored.Version)

	replacement := entity.NewDailySchedule(ownerID, date, testNow)
	require.NoError(t, replacement.ReplaceSlots([]entity.TimeSlotInput{
		{StartTime: "07:00", EndTime: "07:30", Description: "Stretch"},
	}, testNow))

	stored, err = repo.Upsert(ctx, replacement)
	require.NoError(t, err)
	require.Equal(t, 1, stored.TimeSlots.Len())
	assert.Equal(t, "Stretch", stored.TimeSlots.Items()[0].Description)
	assert.Equal(t, int64(2), stored.Version)

	count, err := repo.Count(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDailyScheduleRepository_RangeAndDelete(t *testing.T) {
	repo := NewDailyScheduleRepository(newTestDB(t), newTestMetrics())
	ctx := context.Background()
	ownerID := uuid.New()

	for _, d := range []int{9, 10, 12} {
		_, err := repo.LoadOrCreate(ctx, ownerID, day(2026, 3, d))
		require.NoError(t, err)
	}

	week, err := repo.FindRange(ctx, ownerID, day(2026, 3, 10), day(2026, 3, 16))
	require.NoError(t, err)
	require.Len(t, week, 2)
	assert.Equal(t, "2026-03-10", week[0].DayKey())
	assert.Equal(t, "2026-03-12", week[1].DayKey())

	require.NoError(t, repo.DeleteByDay(ctx, ownerID, day(2026, 3, 10)))
	_, err = repo.FindByDay(ctx, ownerID, day(2026, 3, 10))
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteByDay(ctx, ownerID, day(2026, 3, 10)), domainerrors.ErrNotFound)
}

func TestChallengeRepository_CreateTwiceIsConflict(t *testing.T) {
	repo := NewChallengeRepository(newTestDB(t), newTestMetrics())
	ctx := context.Background()

	challenge := newTestChallenge(t, uuid.New(), "Once")
	require.NoError(t, repo.Create(ctx, challenge))
	assert.ErrorIs(t, repo.Create(ctx, challenge), domainerrors.ErrConflict)
}

func TestChallengeRepository_SaveOfLoadedIsIdempotent(t *testing.T) {
	repo := NewChallengeRepository(newTestDB(t), newTestMetrics())
	ctx := context.Background()
	ownerID := uuid.New()

	challenge := newTestChallenge(t, ownerID, "Unchanged")
	require.NoError(t, repo.Create(ctx, challenge))

	loaded, err := repo.Load(ctx, ownerID, challenge.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, loaded))
	assert.Equal(t, int64(2), loaded.Version)

	reloaded, err := repo.Load(ctx, ownerID, challenge.ID)
	require.NoError(t, err)

	want, err := json.Marshal(loaded)
	require.NoError(t, err)
	got, err := json.Marshal(reloaded)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

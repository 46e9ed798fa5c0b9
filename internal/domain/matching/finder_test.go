package matching

import (
	"context"
	"testing"

	"pet-match/internal/domain/matches"
	"pet-match/internal/domain/profiles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileSource struct {
	items []profiles.Profile
}

func (f *fakeProfileSource) ListActive(_ context.Context, excludeOwnerUserID string) ([]profiles.Profile, error) {
	out := make([]profiles.Profile, 0, len(f.items))
	for _, p := range f.items {
		if !p.IsActive || p.OwnerUserID == excludeOwnerUserID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeMatchSource struct {
	items []matches.Match
}

func (f *fakeMatchSource) ListByProfiles(_ context.Context, profileIDs []string, status matches.Status) ([]matches.Match, error) {
	ids := make(map[string]bool, len(profileIDs))
	for _, id := range profileIDs {
		ids[id] = true
	}

	out := make([]matches.Match, 0, len(f.items))
	for _, m := range f.items {
		if !ids[m.FromProfileID] && !ids[m.ToProfileID] {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func activeProf(id, owner string, age int) profiles.Profile {
	p := prof(id, age, profiles.SizeMedium, profiles.GenderMale, profiles.GoalPlaymate, "корги", "дружелюбный")
	p.OwnerUserID = owner
	return p
}

func TestFindCandidates_ExcludesOwnInactiveAndOutOfAgeWindow(t *testing.T) {
	query := activeProf("query", "user-1", 5)

	inactive := activeProf("inactive", "user-2", 5)
	inactive.IsActive = false

	sameOwner := activeProf("same-owner", "user-1", 5)
	tooOld := activeProf("too-old", "user-3", 16)
	edgeOld := activeProf("edge-old", "user-3", 15)
	edgeYoung := activeProf("edge-young", "user-4", 0)

	finder := NewFinder(
		&fakeProfileSource{items: []profiles.Profile{query, inactive, sameOwner, tooOld, edgeOld, edgeYoung}},
		&fakeMatchSource{},
	)

	got, err := finder.FindCandidates(context.Background(), query, true)
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.Profile.ID)
	}
	assert.ElementsMatch(t, []string{"edge-old", "edge-young"}, ids)
}

func TestFindCandidates_AgeWindowFloorAtZero(t *testing.T) {
	query := activeProf("query", "user-1", 3)
	young := activeProf("young", "user-2", 0)
	old := activeProf("old", "user-2", 14)

	finder := NewFinder(
		&fakeProfileSource{items: []profiles.Profile{young, old}},
		&fakeMatchSource{},
	)

	got, err := finder.FindCandidates(context.Background(), query, true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "young", got[0].Profile.ID)
}

func TestFindCandidates_ExcludesExistingMatchesBothDirections(t *testing.T) {
	query := activeProf("query", "user-1", 5)
	a := activeProf("a", "user-2", 5)
	b := activeProf("b", "user-3", 5)
	c := activeProf("c", "user-4", 5)

	// Un match saliente hacia a y uno entrante desde b; cualquier estado cuenta.
	matchSrc := &fakeMatchSource{items: []matches.Match{
		{ID: "m1", FromProfileID: "query", ToProfileID: "a", Status: matches.StatusPending},
		{ID: "m2", FromProfileID: "b", ToProfileID: "query", Status: matches.StatusDeclined},
	}}

	finder := NewFinder(
		&fakeProfileSource{items: []profiles.Profile{a, b, c}},
		matchSrc,
	)

	got, err := finder.FindCandidates(context.Background(), query, true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Profile.ID)

	// Con el flag apagado vuelven todos.
	all, err := finder.FindCandidates(context.Background(), query, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFindCandidates_SortedByScoreDescendingStable(t *testing.T) {
	query := activeProf("query", "user-1", 3)

	// best: score 100 (edad igual, sexo distinto, todo idéntico).
	best := prof("best", 3, profiles.SizeMedium, profiles.GenderFemale, profiles.GoalPlaymate, "корги", "дружелюбный")
	best.OwnerUserID = "user-2"

	// worse: raza distinta y sin carácter, score más bajo.
	worse := prof("worse", 3, profiles.SizeMedium, profiles.GenderMale, profiles.GoalMate, "пудель", "")
	worse.OwnerUserID = "user-3"

	// tie1 y tie2 son idénticos en atributos: empatan y conservan el orden
	// de entrada.
	tie1 := prof("tie-1", 3, profiles.SizeMedium, profiles.GenderFemale, profiles.GoalCompanion, "корги", "")
	tie1.OwnerUserID = "user-4"
	tie2 := prof("tie-2", 3, profiles.SizeMedium, profiles.GenderFemale, profiles.GoalCompanion, "корги", "")
	tie2.OwnerUserID = "user-5"

	finder := NewFinder(
		&fakeProfileSource{items: []profiles.Profile{worse, tie1, best, tie2}},
		&fakeMatchSource{},
	)

	got, err := finder.FindCandidates(context.Background(), query, true)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "best", got[0].Profile.ID)
	assert.Equal(t, "tie-1", got[1].Profile.ID)
	assert.Equal(t, "tie-2", got[2].Profile.ID)
	assert.Equal(t, "worse", got[3].Profile.ID)
	assert.True(t, got[1].Score > got[3].Score)
	assert.Equal(t, got[1].Score, got[2].Score)
}

func TestFindCandidates_EmptyPoolIsNotAnError(t *testing.T) {
	query := activeProf("query", "user-1", 5)

	finder := NewFinder(&fakeProfileSource{}, &fakeMatchSource{})

	got, err := finder.FindCandidates(context.Background(), query, true)
	require.NoError(t, err)
	assert.Empty(t, got)
}

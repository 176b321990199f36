package views

import (
	"testing"

	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/google/uuid"
)

func sessionSet(name string, reps int, weight float64) models.SessionSet {
	return models.SessionSet{
		ID:           uuid.New(),
		TargetReps:   reps,
		TargetWeight: weight,
		Exercise:     &models.Exercise{ID: uuid.New(), Name: name},
	}
}

func TestGroupSessionSetsFirstAppearanceOrder(t *testing.T) {
	sets := []models.SessionSet{
		sessionSet("Bench Press", 8, 80),
		sessionSet("Squat", 5, 120),
		sessionSet("Bench Press", 6, 85),
		sessionSet("Deadlift", 3, 150),
	}

	groups := GroupSessionSets(sets)

	wantNames := []string{"Bench Press", "Squat", "Deadlift"}
	if len(groups) != len(wantNames) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantNames))
	}
	for i, name := range wantNames {
		if groups[i].Name != name {
			t.Errorf("group %d: got %q, want %q", i, groups[i].Name, name)
		}
	}

	bench := groups[0]
	if len(bench.Sets) != 2 {
		t.Fatalf("bench group: got %d sets, want 2", len(bench.Sets))
	}
	if bench.Sets[0].Reps != 8 || bench.Sets[1].Reps != 6 {
		t.Errorf("bench sets out of input order: got reps %d, %d", bench.Sets[0].Reps, bench.Sets[1].Reps)
	}
}

func TestGroupSessionSetsKeepsDuplicates(t *testing.T) {
	sets := []models.SessionSet{
		sessionSet("Squat", 5, 100),
		sessionSet("Squat", 5, 100),
		sessionSet("Squat", 5, 100),
	}

	groups := GroupSessionSets(sets)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if len(groups[0].Sets) != 3 {
		t.Errorf("got %d sets, want 3: identical sets must not be deduplicated", len(groups[0].Sets))
	}
}

func TestGroupSessionSetsCompletedAlwaysFalse(t *testing.T) {
	groups := GroupSessionSets([]models.SessionSet{
		sessionSet("OHP", 10, 40),
		sessionSet("OHP", 10, 42.5),
	})

	for _, g := range groups {
		for i, set := range g.Sets {
			if set.Completed {
				t.Errorf("set %d of %q: completed must be false", i, g.Name)
			}
		}
	}
}

func TestGroupSessionSetsEmpty(t *testing.T) {
	if groups := GroupSessionSets(nil); len(groups) != 0 {
		t.Errorf("got %d groups for no sets, want 0", len(groups))
	}
}

func TestGroupChallengeSetsMissingExercise(t *testing.T) {
	sets := []models.ChallengeSet{
		{ID: uuid.New(), TargetReps: 12, TargetWeight: 60},
		{ID: uuid.New(), TargetReps: 10, TargetWeight: 60, Exercise: &models.Exercise{Name: "Row"}},
	}

	groups := GroupChallengeSets(sets)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Name != "" {
		t.Errorf("unresolved exercise should group under empty name, got %q", groups[0].Name)
	}
	if groups[1].Name != "Row" {
		t.Errorf("got %q, want Row", groups[1].Name)
	}
}

func TestMergeChallengesOwnedFirst(t *testing.T) {
	owned := []models.Challenge{
		{ID: uuid.New(), Name: "owned-a"},
		{ID: uuid.New(), Name: "owned-b"},
	}
	participating := []models.Challenge{
		{ID: uuid.New(), Name: "joined-a"},
	}

	merged := MergeChallenges(owned, participating)

	wantNames := []string{"owned-a", "owned-b", "joined-a"}
	if len(merged) != len(wantNames) {
		t.Fatalf("got %d challenges, want %d", len(merged), len(wantNames))
	}
	for i, name := range wantNames {
		if merged[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, merged[i].Name, name)
		}
	}
}

func TestFormatChallengesMatchesOrder(t *testing.T) {
	a := models.Challenge{ID: uuid.New()}
	a.AddSets([]models.ChallengeSet{
		{ID: uuid.New(), TargetReps: 5, Exercise: &models.Exercise{Name: "Squat"}},
	})
	b := models.Challenge{ID: uuid.New()}

	formatted := FormatChallenges([]models.Challenge{a, b})

	if len(formatted) != 2 {
		t.Fatalf("got %d entries, want 2", len(formatted))
	}
	if formatted[0].ID != a.ID || formatted[1].ID != b.ID {
		t.Errorf("formatted order does not match challenge order")
	}
	if len(formatted[0].Exercises) != 1 || formatted[0].Exercises[0].Name != "Squat" {
		t.Errorf("unexpected grouping for first challenge: %+v", formatted[0].Exercises)
	}
	if len(formatted[1].Exercises) != 0 {
		t.Errorf("challenge without sets should format to zero groups")
	}
}

// Package views flattens nested set graphs into the grouped, client-ready
// shapes the mobile app renders.
package views

import (
	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/google/uuid"
)

// SetEntry is one planned set inside an exercise group. Completed is always
// false: the model does not track completion yet, the client owns that state
// for now.
type SetEntry struct {
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}

// ExerciseGroup is an exercise name with its sets in input order.
type ExerciseGroup struct {
	Name string     `json:"name"`
	Sets []SetEntry `json:"sets"`
}

// groupSets walks n sets in stored order and groups them by exercise name.
// Group order is first appearance, per-group order is input order, and every
// set is emitted even when the exercise repeats.
func groupSets(n int, at func(i int) (string, SetEntry)) []ExerciseGroup {
	groups := make([]ExerciseGroup, 0, n)
	index := make(map[string]int, n)
	for i := 0; i < n; i++ {
		name, entry := at(i)
		gi, ok := index[name]
		if !ok {
			gi = len(groups)
			index[name] = gi
			groups = append(groups, ExerciseGroup{Name: name})
		}
		groups[gi].Sets = append(groups[gi].Sets, entry)
	}
	return groups
}

// GroupSessionSets groups a session's sets by exercise name. Sets must have
// their Exercise relation populated.
func GroupSessionSets(sets []models.SessionSet) []ExerciseGroup {
	return groupSets(len(sets), func(i int) (string, SetEntry) {
		name := ""
		if sets[i].Exercise != nil {
			name = sets[i].Exercise.Name
		}
		return name, SetEntry{Reps: sets[i].TargetReps, Weight: sets[i].TargetWeight}
	})
}

// GroupChallengeSets groups a challenge's sets by exercise name.
func GroupChallengeSets(sets []models.ChallengeSet) []ExerciseGroup {
	return groupSets(len(sets), func(i int) (string, SetEntry) {
		name := ""
		if sets[i].Exercise != nil {
			name = sets[i].Exercise.Name
		}
		return name, SetEntry{Reps: sets[i].TargetReps, Weight: sets[i].TargetWeight}
	})
}

// ChallengeExercises pairs a challenge id with its grouped exercise view.
type ChallengeExercises struct {
	ID        uuid.UUID       `json:"id"`
	Exercises []ExerciseGroup `json:"exercises"`
}

// MergeChallenges concatenates owned challenges before participating ones.
// No re-ordering by id or date: clients rely on the owned-first contract.
func MergeChallenges(owned, participating []models.Challenge) []models.Challenge {
	merged := make([]models.Challenge, 0, len(owned)+len(participating))
	merged = append(merged, owned...)
	merged = append(merged, participating...)
	return merged
}

// FormatChallenges produces the per-challenge grouped exercise views in the
// same order as the merged challenge list.
func FormatChallenges(challenges []models.Challenge) []ChallengeExercises {
	formatted := make([]ChallengeExercises, 0, len(challenges))
	for _, c := range challenges {
		formatted = append(formatted, ChallengeExercises{
			ID:        c.ID,
			Exercises: GroupChallengeSets(c.Sets),
		})
	}
	return formatted
}

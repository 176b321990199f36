// Package repository provides typed CRUD and relationship-aware queries over
// the domain model. Callers declare the relations they need through populate
// paths; nothing is eagerly loaded by default.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned for any entity lookup miss.
var ErrNotFound = errors.New("record not found")

// Populate paths accepted by the Find/List operations. Each maps onto a GORM
// preload chain.
const (
	AccountProfile   = "Profile"
	AccountFriends   = "Friendships.Friend.Profile"
	AccountExercises = "Exercises"
	AccountPlans     = "Plans.Sessions.Sets"

	PlanSessions     = "Sessions"
	PlanSessionsSets = "Sessions.Sets"

	SessionSetsExercise = "Sets.Exercise"

	ChallengeSets         = "Sets"
	ChallengeSetsExercise = "Sets.Exercise"
	ChallengeParticipants = "Participants.Profile"

	PostAuthor   = "Author.Profile"
	PostComments = "Comments.Author.Profile"

	InviteChallenge = "Challenge"
	SharePost       = "Post.Author.Profile"
)

func withPreloads(db *gorm.DB, populate []string) *gorm.DB {
	for _, path := range populate {
		db = db.Preload(path)
	}
	return db
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

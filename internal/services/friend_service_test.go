package services

import (
	"errors"
	"testing"

	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/google/uuid"
)

func TestAddFriendReturnsCallerProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewFriendService(repository.NewAccountRepository(db))
	auth := newAuthService(t, db)
	alice := signUp(t, auth, "alice", "alice@example.com")
	bob := signUp(t, auth, "bob", "bob@example.com")

	profile, err := svc.AddFriend(alice, bob)
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}
	if profile == nil || profile.Username != "alice" {
		t.Errorf("got %+v, want the caller's own profile", profile)
	}
}

func TestAddFriendBothDirectionsVisible(t *testing.T) {
	db := newTestDB(t)
	svc := NewFriendService(repository.NewAccountRepository(db))
	auth := newAuthService(t, db)
	alice := signUp(t, auth, "alice", "alice@example.com")
	bob := signUp(t, auth, "bob", "bob@example.com")

	if _, err := svc.AddFriend(alice, bob); err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}

	aliceFriends, err := svc.ListFriends(alice)
	if err != nil {
		t.Fatalf("ListFriends failed: %v", err)
	}
	bobFriends, err := svc.ListFriends(bob)
	if err != nil {
		t.Fatalf("ListFriends failed: %v", err)
	}

	if len(aliceFriends) != 1 || aliceFriends[0].ID != bob {
		t.Errorf("alice's friends: got %+v, want bob", aliceFriends)
	}
	if len(bobFriends) != 1 || bobFriends[0].ID != alice {
		t.Errorf("bob's friends: got %+v, want alice", bobFriends)
	}
}

func TestAddFriendRepeatedIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := NewFriendService(repository.NewAccountRepository(db))
	auth := newAuthService(t, db)
	alice := signUp(t, auth, "alice", "alice@example.com")
	bob := signUp(t, auth, "bob", "bob@example.com")

	for i := 0; i < 3; i++ {
		if _, err := svc.AddFriend(alice, bob); err != nil {
			t.Fatalf("AddFriend %d failed: %v", i, err)
		}
	}

	if n := countRows(t, db, &models.Friendship{}); n != 2 {
		t.Errorf("got %d edges, want exactly 2", n)
	}
}

func TestAddFriendUnknownTarget(t *testing.T) {
	db := newTestDB(t)
	svc := NewFriendService(repository.NewAccountRepository(db))
	auth := newAuthService(t, db)
	alice := signUp(t, auth, "alice", "alice@example.com")

	if _, err := svc.AddFriend(alice, uuid.New()); !errors.Is(err, ErrFriendNotFound) {
		t.Errorf("got %v, want ErrFriendNotFound", err)
	}
	if n := countRows(t, db, &models.Friendship{}); n != 0 {
		t.Errorf("got %d edges after failed add, want 0", n)
	}
}

func TestListProfilesFlagsFriends(t *testing.T) {
	db := newTestDB(t)
	svc := NewFriendService(repository.NewAccountRepository(db))
	auth := newAuthService(t, db)
	alice := signUp(t, auth, "alice", "alice@example.com")
	bob := signUp(t, auth, "bob", "bob@example.com")
	signUp(t, auth, "carol", "carol@example.com")

	if _, err := svc.AddFriend(alice, bob); err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}

	profiles, err := svc.ListProfiles(alice)
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(profiles))
	}

	byName := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if p.Username == "alice" {
			t.Fatal("viewer's own profile must not appear")
		}
		byName[p.Username] = p.Friend
	}
	if !byName["bob"] {
		t.Error("bob should be flagged as a friend")
	}
	if byName["carol"] {
		t.Error("carol should not be flagged as a friend")
	}
}

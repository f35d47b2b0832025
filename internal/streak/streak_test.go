package streak

import (
	"path/filepath"
	"testing"
	"time"

	"concentribe/internal/database"
)

var now = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

func ptr(s string) *string { return &s }

func TestAdvanceFirstVisit(t *testing.T) {
	result := Advance(0, nil, now)
	if result.Streak != 1 || !result.Changed {
		t.Errorf("unexpected result %+v", result)
	}
	if result.LastVisit != "2026-08-29" {
		t.Errorf("unexpected last visit %q", result.LastVisit)
	}
	if len(result.Badges) != 0 {
		t.Errorf("unexpected badges %v", result.Badges)
	}
}

func TestAdvanceConsecutiveDay(t *testing.T) {
	result := Advance(3, ptr("2026-08-28"), now)
	if result.Streak != 4 || !result.Changed {
		t.Errorf("unexpected result %+v", result)
	}
	if len(result.Badges) != 0 {
		t.Errorf("unexpected badges %v", result.Badges)
	}
}

func TestAdvanceSameDay(t *testing.T) {
	result := Advance(3, ptr("2026-08-29"), now)
	if result.Streak != 3 || result.Changed {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestAdvanceAfterGap(t *testing.T) {
	result := Advance(10, ptr("2026-08-25"), now)
	if result.Streak != 1 || !result.Changed {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestAdvanceBadgeOnSeventhDay(t *testing.T) {
	result := Advance(6, ptr("2026-08-28"), now)
	if result.Streak != 7 {
		t.Fatalf("expected streak 7, got %d", result.Streak)
	}
	if len(result.Badges) != 1 || result.Badges[0] != BadgeDailyStreak {
		t.Errorf("expected daily streak badge, got %v", result.Badges)
	}

	// Every multiple of seven earns it again.
	result = Advance(13, ptr("2026-08-28"), now)
	if len(result.Badges) != 1 {
		t.Errorf("expected badge at streak 14, got %v", result.Badges)
	}
}

func TestAdvanceMalformedLastVisit(t *testing.T) {
	result := Advance(5, ptr("not a date"), now)
	if result.Streak != 1 || !result.Changed {
		t.Errorf("unexpected result %+v", result)
	}
}

func newTestTracker(t *testing.T) (*Tracker, *database.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewTracker(db), db
}

func TestVisitPersistsStreak(t *testing.T) {
	tracker, db := newTestTracker(t)
	id, err := db.CreateUser(&database.User{Username: "alice", Email: "alice@example.com", Password: "x", Name: ptr("Alice")})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	result, err := tracker.Visit(id, now)
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}
	if result.Streak != 1 {
		t.Errorf("expected streak 1, got %d", result.Streak)
	}

	// Same-day repeat leaves the row untouched.
	result, err = tracker.Visit(id, now)
	if err != nil {
		t.Fatalf("second Visit: %v", err)
	}
	if result.Streak != 1 || result.Changed {
		t.Errorf("unexpected repeat result %+v", result)
	}

	// Next day extends.
	result, err = tracker.Visit(id, now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("next-day Visit: %v", err)
	}
	if result.Streak != 2 {
		t.Errorf("expected streak 2, got %d", result.Streak)
	}

	user, err := db.GetUser(id)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.Streak != 2 {
		t.Errorf("expected persisted streak 2, got %d", user.Streak)
	}
	if user.LastVisit == nil || *user.LastVisit != "2026-08-30" {
		t.Errorf("unexpected persisted last visit %v", user.LastVisit)
	}
}

func TestVisitAwardsBadge(t *testing.T) {
	tracker, db := newTestTracker(t)
	id, err := db.CreateUser(&database.User{Username: "bob", Email: "bob@example.com", Password: "x", Name: ptr("Bob")})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := db.UpdateStreak(id, 6, "2026-08-28"); err != nil {
		t.Fatalf("UpdateStreak: %v", err)
	}
	if err := db.InsertBadge(&database.Badge{ID: BadgeDailyStreak, Title: "Daily Streak"}); err != nil {
		t.Fatalf("InsertBadge: %v", err)
	}

	result, err := tracker.Visit(id, now)
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}
	if result.Streak != 7 || len(result.Badges) != 1 {
		t.Fatalf("unexpected result %+v", result)
	}

	badges, err := db.GetUserBadges(id)
	if err != nil {
		t.Fatalf("GetUserBadges: %v", err)
	}
	if len(badges) != 1 || badges[0].ID != BadgeDailyStreak {
		t.Errorf("expected daily streak badge awarded, got %v", badges)
	}
}

func TestVisitUnknownUser(t *testing.T) {
	tracker, _ := newTestTracker(t)
	if _, err := tracker.Visit(99, now); err == nil {
		t.Error("expected error for unknown user")
	}
}

// Package streak tracks consecutive daily visits and the badges they earn.
package streak

import (
	"fmt"
	"log"
	"time"

	"concentribe/internal/database"
)

// BadgeDailyStreak is awarded every seventh consecutive day.
const BadgeDailyStreak = "daily-streak"

const dateLayout = "2006-01-02"

// Result describes the outcome of advancing a streak. Badges lists badge
// IDs earned by this visit, in order, to be applied after the streak is
// persisted.
type Result struct {
	Streak    int
	LastVisit string
	Changed   bool
	Badges    []string
}

// Advance computes the next streak value for a visit at now. A visit the
// day after the last one extends the streak; a repeat visit on the same
// day changes nothing; any longer gap, or a first visit, resets to 1.
func Advance(current int, lastVisit *string, now time.Time) Result {
	today := now.Format(dateLayout)
	result := Result{Streak: 1, LastVisit: today, Changed: true}

	if lastVisit == nil || *lastVisit == "" {
		return result
	}

	last, err := time.Parse(dateLayout, *lastVisit)
	if err != nil {
		return result
	}

	switch last.Format(dateLayout) {
	case today:
		result.Streak = current
		result.Changed = false
	case now.AddDate(0, 0, -1).Format(dateLayout):
		result.Streak = current + 1
		if result.Streak%7 == 0 {
			result.Badges = append(result.Badges, BadgeDailyStreak)
		}
	}
	return result
}

// Tracker persists streak updates and badge awards for users.
type Tracker struct {
	db *database.DB
}

// NewTracker creates a streak tracker.
func NewTracker(db *database.DB) *Tracker {
	return &Tracker{db: db}
}

// Visit records a visit for the user and returns the updated streak. Badge
// awards happen after the streak row is written; awarding is idempotent, so
// a retried visit cannot double-grant.
func (t *Tracker) Visit(userID int64, now time.Time) (Result, error) {
	user, err := t.db.GetUser(userID)
	if err != nil {
		return Result{}, fmt.Errorf("loading user %d: %w", userID, err)
	}
	if user == nil {
		return Result{}, fmt.Errorf("user %d not found", userID)
	}

	result := Advance(user.Streak, user.LastVisit, now)
	if !result.Changed {
		return result, nil
	}

	if err := t.db.UpdateStreak(userID, result.Streak, result.LastVisit); err != nil {
		return Result{}, fmt.Errorf("updating streak: %w", err)
	}
	for _, badgeID := range result.Badges {
		if err := t.db.AwardBadge(userID, badgeID); err != nil {
			log.Printf("Error awarding badge %s to user %d: %v", badgeID, userID, err)
		}
	}
	return result, nil
}

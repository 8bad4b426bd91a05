// Package limiter enforces the per-user usage quotas: a burst limit on
// manual status updates and caps on quote submissions.
package limiter

import (
	"fmt"
	"time"

	"github.com/scavara/statusquo/db"
)

const (
	maxUpdates    = 3
	updateWindow  = 10 * time.Minute
	maxPending    = 3
	maxDaily      = 10
	stalePending  = 24 * time.Hour
	dayFormat     = "2006-01-02"
)

// CheckUpdateLimit reports whether the user may trigger a manual status
// update right now. When denied, the returned message explains when the
// window resets.
func CheckUpdateLimit(userID string) (bool, string, error) {
	stats, err := db.GetUserStats(userID)
	if err != nil {
		return false, "", err
	}

	now := time.Now().Unix()
	windowSeconds := int64(updateWindow.Seconds())

	if now-stats.UpdateWindowStart > windowSeconds {
		// Previous window expired; the user starts fresh.
		return true, "", nil
	}

	if stats.UpdateWindowCount >= maxUpdates {
		resetTS := stats.UpdateWindowStart + windowSeconds
		waitMins := (resetTS-now)/60 + 1
		msg := fmt.Sprintf(
			":hourglass: *Limit Reached:* You've used %d/%d updates. Resets in %d min.",
			stats.UpdateWindowCount, maxUpdates, waitMins,
		)
		return false, msg, nil
	}

	return true, "", nil
}

// LogUpdate counts one manual status update against the user's burst
// window, starting a new window if the previous one expired.
func LogUpdate(userID string) error {
	stats, err := db.GetUserStats(userID)
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	if now-stats.UpdateWindowStart > int64(updateWindow.Seconds()) {
		return db.StartUpdateWindow(userID, now)
	}
	return db.IncrementUpdateWindow(userID)
}

// CheckAddLimit reports whether the user may submit another quote. Denials
// carry a user-facing message.
func CheckAddLimit(userID string) (bool, string, error) {
	stats, err := db.GetUserStats(userID)
	if err != nil {
		return false, "", err
	}

	pendingCount := stats.PendingCount
	// A pending counter the user hasn't touched in 24h is considered
	// stale and ignored, so an abandoned reviewer can't lock someone out.
	if time.Now().Unix()-stats.LastSubmissionTS > int64(stalePending.Seconds()) {
		pendingCount = 0
	}

	dailyCount := stats.DailyApprovedCount
	today := time.Now().Format(dayFormat)
	if stats.LastActivityDate != today {
		dailyCount = 0 // New day, new quota
	}

	if pendingCount >= maxPending {
		msg := fmt.Sprintf(
			":octagonal_sign: *Limit Reached:* You have %d pending quotes. Please wait for approval/denial before adding more.",
			pendingCount,
		)
		return false, msg, nil
	}

	if dailyCount >= maxDaily {
		msg := fmt.Sprintf(
			":octagonal_sign: *Daily Quota:* You've added %d approved quotes today. Try again tomorrow!",
			dailyCount,
		)
		return false, msg, nil
	}

	return true, "", nil
}

// RecordSubmission counts a freshly accepted submission against the
// proposer, rolling the daily quota over on a new day first.
func RecordSubmission(userID string) error {
	stats, err := db.GetUserStats(userID)
	if err != nil {
		return err
	}

	today := time.Now().Format(dayFormat)
	if stats.LastActivityDate != "" && stats.LastActivityDate != today {
		if err := db.ResetDailyApproved(userID, today); err != nil {
			return err
		}
	}
	return db.RecordSubmission(userID, today, time.Now().Unix())
}

// RecordApproval settles an approved submission in the proposer's counters.
func RecordApproval(userID string) error {
	return db.RecordApproval(userID)
}

// RecordDenial settles a rejected submission in the proposer's counters.
func RecordDenial(userID string) error {
	return db.RecordDenial(userID)
}

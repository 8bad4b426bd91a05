package db

import (
	"database/sql"

	"github.com/scavara/statusquo/model"
)

// GetUserStats returns the rate-limit counters for a user. A user with no
// row yet gets zero-valued stats.
func GetUserStats(userID string) (*model.UserStats, error) {
	stats := &model.UserStats{UserID: userID}
	err := DB.QueryRow(
		`SELECT update_window_start, update_window_count, pending_count,
			daily_approved_count, last_activity_date, last_submission_ts
		FROM user_stats WHERE user_id = ?`, userID,
	).Scan(
		&stats.UpdateWindowStart, &stats.UpdateWindowCount, &stats.PendingCount,
		&stats.DailyApprovedCount, &stats.LastActivityDate, &stats.LastSubmissionTS,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return stats, nil
		}
		return nil, err
	}
	return stats, nil
}

// ensureUserStats creates the counter row for a user if it doesn't exist.
func ensureUserStats(userID string) error {
	_, err := DB.Exec(
		"INSERT INTO user_stats(user_id) VALUES(?) ON CONFLICT(user_id) DO NOTHING",
		userID,
	)
	return err
}

// StartUpdateWindow begins a fresh burst window with one update counted.
func StartUpdateWindow(userID string, now int64) error {
	if err := ensureUserStats(userID); err != nil {
		return err
	}
	_, err := DB.Exec(
		"UPDATE user_stats SET update_window_start = ?, update_window_count = 1 WHERE user_id = ?",
		now, userID,
	)
	return err
}

// IncrementUpdateWindow counts one more update in the current burst window.
func IncrementUpdateWindow(userID string) error {
	if err := ensureUserStats(userID); err != nil {
		return err
	}
	_, err := DB.Exec(
		"UPDATE user_stats SET update_window_count = update_window_count + 1 WHERE user_id = ?",
		userID,
	)
	return err
}

// RecordSubmission bumps the pending counter and stamps the activity date.
func RecordSubmission(userID, today string, now int64) error {
	if err := ensureUserStats(userID); err != nil {
		return err
	}
	_, err := DB.Exec(
		`UPDATE user_stats SET pending_count = pending_count + 1,
			last_activity_date = ?, last_submission_ts = ?
		WHERE user_id = ?`,
		today, now, userID,
	)
	return err
}

// RecordApproval moves one submission from pending to approved in the
// proposer's counters.
func RecordApproval(userID string) error {
	if err := ensureUserStats(userID); err != nil {
		return err
	}
	_, err := DB.Exec(
		`UPDATE user_stats SET pending_count = MAX(pending_count - 1, 0),
			daily_approved_count = daily_approved_count + 1
		WHERE user_id = ?`,
		userID,
	)
	return err
}

// RecordDenial drops one submission from the proposer's pending counter.
func RecordDenial(userID string) error {
	if err := ensureUserStats(userID); err != nil {
		return err
	}
	_, err := DB.Exec(
		"UPDATE user_stats SET pending_count = MAX(pending_count - 1, 0) WHERE user_id = ?",
		userID,
	)
	return err
}

// ResetDailyApproved zeroes the daily quota counter for a new day.
func ResetDailyApproved(userID, today string) error {
	if err := ensureUserStats(userID); err != nil {
		return err
	}
	_, err := DB.Exec(
		"UPDATE user_stats SET daily_approved_count = 0, last_activity_date = ? WHERE user_id = ?",
		today, userID,
	)
	return err
}

package limiter

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scavara/statusquo/db"
)

func setupDB(t *testing.T) {
	t.Helper()
	db.InitDB(filepath.Join(t.TempDir(), "test.db"))
}

func TestUpdateLimitWindow(t *testing.T) {
	setupDB(t)

	allowed, _, err := CheckUpdateLimit("U1")
	require.NoError(t, err)
	assert.True(t, allowed)

	for i := 0; i < maxUpdates; i++ {
		require.NoError(t, LogUpdate("U1"))
	}

	allowed, msg, err := CheckUpdateLimit("U1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Contains(t, msg, "Limit Reached")
}

func TestUpdateLimitWindowExpires(t *testing.T) {
	setupDB(t)

	// Simulate an exhausted window that started long ago.
	expired := time.Now().Add(-updateWindow - time.Minute).Unix()
	require.NoError(t, db.StartUpdateWindow("U1", expired))
	for i := 0; i < maxUpdates; i++ {
		require.NoError(t, db.IncrementUpdateWindow("U1"))
	}

	allowed, _, err := CheckUpdateLimit("U1")
	require.NoError(t, err)
	assert.True(t, allowed, "an expired window must not count against the user")

	// Logging after expiry starts a fresh window of one.
	require.NoError(t, LogUpdate("U1"))
	stats, err := db.GetUserStats("U1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.UpdateWindowCount)
}

func TestAddLimitPendingCap(t *testing.T) {
	setupDB(t)

	allowed, _, err := CheckAddLimit("U1")
	require.NoError(t, err)
	assert.True(t, allowed)

	for i := 0; i < maxPending; i++ {
		require.NoError(t, RecordSubmission("U1"))
	}

	allowed, msg, err := CheckAddLimit("U1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Contains(t, msg, "pending quotes")
}

func TestAddLimitStalePendingIgnored(t *testing.T) {
	setupDB(t)

	for i := 0; i < maxPending; i++ {
		require.NoError(t, RecordSubmission("U1"))
	}

	// Backdate the last submission beyond the stale threshold.
	stale := time.Now().Add(-stalePending - time.Hour).Unix()
	_, err := db.DB.Exec("UPDATE user_stats SET last_submission_ts = ? WHERE user_id = ?", stale, "U1")
	require.NoError(t, err)

	allowed, _, err := CheckAddLimit("U1")
	require.NoError(t, err)
	assert.True(t, allowed, "stale pending counters must not lock the user out")
}

func TestAddLimitDailyQuota(t *testing.T) {
	setupDB(t)

	today := time.Now().Format(dayFormat)
	_, err := db.DB.Exec(
		"INSERT INTO user_stats(user_id, daily_approved_count, last_activity_date) VALUES(?, ?, ?)",
		"U1", maxDaily, today,
	)
	require.NoError(t, err)

	allowed, msg, err := CheckAddLimit("U1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Contains(t, msg, "Daily Quota")
}

func TestAddLimitDailyQuotaRollsOver(t *testing.T) {
	setupDB(t)

	_, err := db.DB.Exec(
		"INSERT INTO user_stats(user_id, daily_approved_count, last_activity_date, last_submission_ts) VALUES(?, ?, ?, ?)",
		"U1", maxDaily, "2020-01-01", time.Now().Unix(),
	)
	require.NoError(t, err)

	allowed, _, err := CheckAddLimit("U1")
	require.NoError(t, err)
	assert.True(t, allowed, "yesterday's approvals must not count today")
}

func TestApprovalAndDenialSettleCounters(t *testing.T) {
	setupDB(t)

	require.NoError(t, RecordSubmission("U1"))
	require.NoError(t, RecordSubmission("U1"))

	require.NoError(t, RecordApproval("U1"))
	require.NoError(t, RecordDenial("U1"))

	stats, err := db.GetUserStats("U1")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.PendingCount)
	assert.Equal(t, 1, stats.DailyApprovedCount)

	// Counters never go negative.
	require.NoError(t, RecordDenial("U1"))
	stats, err = db.GetUserStats("U1")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.PendingCount)
}

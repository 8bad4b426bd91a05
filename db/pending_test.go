package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scavara/statusquo/model"
)

func setupDB(t *testing.T) {
	t.Helper()
	InitDB(filepath.Join(t.TempDir(), "test.db"))
}

func countQuotes(t *testing.T) int {
	t.Helper()
	var count int
	require.NoError(t, DB.QueryRow("SELECT COUNT(*) FROM quotes").Scan(&count))
	return count
}

func TestCreateAndGetPending(t *testing.T) {
	setupDB(t)

	sub, err := CreatePending("Ship it", "Anonymous", ":rocket:", "U1")
	require.NoError(t, err)
	require.NotEmpty(t, sub.ID)
	assert.Equal(t, model.StatusPending, sub.Status)

	got, err := GetPending(sub.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ship it", got.Text)
	assert.Equal(t, ":rocket:", got.Emoji)
	assert.Equal(t, "U1", got.ProposerID)
}

func TestGetPendingUnknown(t *testing.T) {
	setupDB(t)

	got, err := GetPending("no-such-token")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSetReviewMessage(t *testing.T) {
	setupDB(t)

	sub, err := CreatePending("Ship it", "Anonymous", ":rocket:", "U1")
	require.NoError(t, err)
	require.NoError(t, SetReviewMessage(sub.ID, "C1", "1724832000.000100"))

	got, err := GetPending(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "C1", got.ReviewChannelID)
	assert.Equal(t, "1724832000.000100", got.ReviewMessageTS)
}

func TestApprovePendingCommitsQuoteOnce(t *testing.T) {
	setupDB(t)

	sub, err := CreatePending("Ship it", "Anonymous", ":rocket:", "U1")
	require.NoError(t, err)

	quote, err := ApprovePending(sub.ID, "UADMIN")
	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.Equal(t, "Ship it", quote.Text)
	assert.Equal(t, 1, countQuotes(t))

	got, err := GetPending(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, got.Status)
	assert.Equal(t, "UADMIN", got.ReviewerID)

	// A duplicate decision must never produce a second write.
	_, err = ApprovePending(sub.ID, "UADMIN")
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Equal(t, 1, countQuotes(t))
}

func TestRejectPendingWritesNothing(t *testing.T) {
	setupDB(t)

	sub, err := CreatePending("Ship it", "Anonymous", ":rocket:", "U1")
	require.NoError(t, err)

	rejected, err := RejectPending(sub.ID, "UADMIN")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, rejected.Status)
	assert.Equal(t, 0, countQuotes(t))

	_, err = RejectPending(sub.ID, "UADMIN")
	assert.ErrorIs(t, err, ErrNotPending)

	// An approval after rejection is just as stale.
	_, err = ApprovePending(sub.ID, "UADMIN")
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Equal(t, 0, countQuotes(t))
}

func TestDecideUnknownToken(t *testing.T) {
	setupDB(t)

	_, err := ApprovePending("no-such-token", "UADMIN")
	assert.ErrorIs(t, err, ErrNotPending)

	_, err = RejectPending("no-such-token", "UADMIN")
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestCountPendingByProposer(t *testing.T) {
	setupDB(t)

	for i := 0; i < 2; i++ {
		_, err := CreatePending("text", "a", ":wave:", "U1")
		require.NoError(t, err)
	}
	sub, err := CreatePending("other", "a", ":wave:", "U1")
	require.NoError(t, err)
	_, err = RejectPending(sub.ID, "UADMIN")
	require.NoError(t, err)

	count, err := CountPendingByProposer("U1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/scavara/statusquo/model"
)

// ErrNotPending is returned by ApprovePending and RejectPending when the
// token does not name an outstanding pending submission. An unknown token
// and an already-resolved one are deliberately indistinguishable.
var ErrNotPending = errors.New("submission is not pending")

// scanPending scans a row into a PendingSubmission struct.
func scanPending(scanner rowScanner) (*model.PendingSubmission, error) {
	var sub model.PendingSubmission
	err := scanner.Scan(
		&sub.ID, &sub.Text, &sub.Author, &sub.Emoji, &sub.ProposerID,
		&sub.Status, &sub.ReviewerID, &sub.ReviewChannelID, &sub.ReviewMessageTS,
		&sub.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Return nil, nil if no submission is found
		}
		return nil, err
	}
	return &sub, nil
}

const pendingColumns = `id, text, COALESCE(author, '') as author, emoji, proposer_id,
		status, COALESCE(reviewer_id, '') as reviewer_id,
		COALESCE(review_channel_id, '') as review_channel_id,
		COALESCE(review_message_ts, '') as review_message_ts,
		created_at`

// CreatePending inserts a new pending submission and returns it. The
// generated ID is the correlation token for the later decision.
func CreatePending(text, author, emoji, proposerID string) (*model.PendingSubmission, error) {
	sub := &model.PendingSubmission{
		ID:         uuid.New().String(),
		Text:       text,
		Author:     author,
		Emoji:      emoji,
		ProposerID: proposerID,
		Status:     model.StatusPending,
		CreatedAt:  time.Now().Unix(),
	}

	_, err := DB.Exec(
		"INSERT INTO pending_submissions(id, text, author, emoji, proposer_id, status, created_at) VALUES(?, ?, ?, ?, ?, ?, ?)",
		sub.ID, sub.Text, sub.Author, sub.Emoji, sub.ProposerID, sub.Status, sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// GetPending retrieves a submission by its correlation token.
func GetPending(id string) (*model.PendingSubmission, error) {
	row := DB.QueryRow("SELECT "+pendingColumns+" FROM pending_submissions WHERE id = ?", id)
	return scanPending(row)
}

// SetReviewMessage records where the approval request was posted so the
// decision handler can update it, even across a process restart.
func SetReviewMessage(id, channelID, messageTS string) error {
	_, err := DB.Exec(
		"UPDATE pending_submissions SET review_channel_id = ?, review_message_ts = ? WHERE id = ?",
		channelID, messageTS, id,
	)
	return err
}

// ApprovePending flips a pending submission to approved and commits its
// quote in a single transaction. The guarded UPDATE makes the decision
// exactly-once: a duplicate or unknown token affects zero rows and the
// transaction rolls back with ErrNotPending, so the quote can never be
// written twice for the same token.
func ApprovePending(id, reviewerID string) (*model.Quote, error) {
	tx, err := DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() // Rollback on error

	res, err := tx.Exec(
		"UPDATE pending_submissions SET status = ?, reviewer_id = ? WHERE id = ? AND status = ?",
		model.StatusApproved, reviewerID, id, model.StatusPending,
	)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotPending
	}

	row := tx.QueryRow("SELECT "+pendingColumns+" FROM pending_submissions WHERE id = ?", id)
	sub, err := scanPending(row)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNotPending
	}

	quote := sub.Quote()
	_, err = tx.Exec(
		"INSERT INTO quotes(id, text, author, emoji, proposer_id, created_at) VALUES(?, ?, ?, ?, ?, ?)",
		quote.ID, quote.Text, quote.Author, quote.Emoji, quote.ProposerID, time.Now().Unix(),
	)
	if err != nil {
		return nil, err
	}

	return quote, tx.Commit()
}

// RejectPending flips a pending submission to rejected without writing a
// quote. Returns the submission, or ErrNotPending if the token does not
// name an outstanding submission.
func RejectPending(id, reviewerID string) (*model.PendingSubmission, error) {
	res, err := DB.Exec(
		"UPDATE pending_submissions SET status = ?, reviewer_id = ? WHERE id = ? AND status = ?",
		model.StatusRejected, reviewerID, id, model.StatusPending,
	)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotPending
	}

	return GetPending(id)
}

// CountPendingByProposer returns how many submissions a user has awaiting
// review.
func CountPendingByProposer(proposerID string) (int, error) {
	var count int
	err := DB.QueryRow(
		"SELECT COUNT(*) FROM pending_submissions WHERE proposer_id = ? AND status = ?",
		proposerID, model.StatusPending,
	).Scan(&count)
	return count, err
}

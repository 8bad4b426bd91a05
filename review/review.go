// Package review implements the approval workflow that gates all quote
// writes: a submission is parsed and validated, posted to the review
// channel as an interactive message, and committed or discarded exactly
// once when a reviewer decides on it.
package review

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/scavara/statusquo/db"
	"github.com/scavara/statusquo/limiter"
	"github.com/scavara/statusquo/model"
	"github.com/scavara/statusquo/utils"
)

// Outcome is a reviewer's decision on a pending submission.
type Outcome string

const (
	// OutcomeApprove commits the submission's quote to the store.
	OutcomeApprove Outcome = "approve"
	// OutcomeReject discards the submission without a store write.
	OutcomeReject Outcome = "reject"
)

// ErrAlreadyResolved is returned by Decide when the correlation token does
// not name an outstanding submission. Unknown and already-decided tokens
// are indistinguishable so a replayed button click leaks nothing.
var ErrAlreadyResolved = errors.New("submission already resolved or unknown")

// ValidationError rejects a submission before any side effect happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Notifier delivers the reviewer-facing side effects of the workflow.
// The bot wires a Slack implementation; tests substitute a fake.
type Notifier interface {
	// PostApprovalRequest posts the interactive approval message and
	// returns the channel and timestamp it landed at.
	PostApprovalRequest(sub *model.PendingSubmission) (channelID, messageTS string, err error)
	// UpdateDecision rewrites the original approval message to reflect
	// the terminal outcome.
	UpdateDecision(sub *model.PendingSubmission, outcome Outcome) error
}

// Submit validates a raw `/quo-add` payload and, if it passes, creates a
// pending submission and posts its approval request. Any validation
// failure returns a *ValidationError with zero side effects.
func Submit(proposerID, raw string, n Notifier) (*model.PendingSubmission, error) {
	text, author, emoji, err := ParseSubmission(raw)
	if err != nil {
		return nil, err
	}

	allowed, msg, err := limiter.CheckAddLimit(proposerID)
	if err != nil {
		return nil, fmt.Errorf("checking add limit: %w", err)
	}
	if !allowed {
		return nil, &ValidationError{Reason: msg}
	}

	existing, err := db.GetQuoteByText(text)
	if err != nil {
		return nil, fmt.Errorf("deduplication check: %w", err)
	}
	if existing != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf(":octagonal_sign: We already have the quote: \"%s\"", text)}
	}

	sub, err := db.CreatePending(text, author, emoji, proposerID)
	if err != nil {
		return nil, fmt.Errorf("creating pending submission: %w", err)
	}

	channelID, messageTS, err := n.PostApprovalRequest(sub)
	if err != nil {
		return nil, fmt.Errorf("posting approval request: %w", err)
	}
	if err := db.SetReviewMessage(sub.ID, channelID, messageTS); err != nil {
		return nil, fmt.Errorf("recording review message: %w", err)
	}
	sub.ReviewChannelID = channelID
	sub.ReviewMessageTS = messageTS

	if err := limiter.RecordSubmission(proposerID); err != nil {
		return nil, fmt.Errorf("recording submission: %w", err)
	}

	return sub, nil
}

// Decide resolves the submission named by token. Approval commits the
// quote and returns it; rejection returns a nil quote. A token that is
// unknown or already decided yields ErrAlreadyResolved and never a second
// store write.
func Decide(token string, outcome Outcome, reviewerID string, n Notifier) (*model.Quote, error) {
	switch outcome {
	case OutcomeApprove:
		quote, err := db.ApprovePending(token, reviewerID)
		if err != nil {
			if errors.Is(err, db.ErrNotPending) {
				return nil, ErrAlreadyResolved
			}
			return nil, fmt.Errorf("approving submission: %w", err)
		}

		if err := limiter.RecordApproval(quote.ProposerID); err != nil {
			log.Printf("Error updating proposer counters for %s: %v", quote.ProposerID, err)
		}

		sub, err := db.GetPending(token)
		if err == nil && sub != nil {
			if err := n.UpdateDecision(sub, OutcomeApprove); err != nil {
				log.Printf("Error updating review message for %s: %v", token, err)
			}
		}
		return quote, nil

	case OutcomeReject:
		sub, err := db.RejectPending(token, reviewerID)
		if err != nil {
			if errors.Is(err, db.ErrNotPending) {
				return nil, ErrAlreadyResolved
			}
			return nil, fmt.Errorf("rejecting submission: %w", err)
		}

		if err := limiter.RecordDenial(sub.ProposerID); err != nil {
			log.Printf("Error updating proposer counters for %s: %v", sub.ProposerID, err)
		}

		if err := n.UpdateDecision(sub, OutcomeReject); err != nil {
			log.Printf("Error updating review message for %s: %v", token, err)
		}
		return nil, nil

	default:
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown outcome %q", outcome)}
	}
}

// ParseSubmission splits a raw submission into text, author and emoji.
// Accepted forms are `text | :emoji:` and `text | author | :emoji:`; the
// author defaults to "Anonymous". Quotes and Slack markdown around the
// text are stripped.
func ParseSubmission(raw string) (text, author, emoji string, err error) {
	parts := strings.Split(raw, "|")

	switch len(parts) {
	case 2:
		text = parts[0]
		author = "Anonymous"
		emoji = strings.TrimSpace(parts[1])
	case 3:
		text = parts[0]
		author = strings.TrimSpace(parts[1])
		emoji = strings.TrimSpace(parts[2])
	default:
		return "", "", "", &ValidationError{
			Reason: ":warning: Format: `/quo-add Quote | Author | :emoji:`",
		}
	}

	text = utils.CleanSlackMarkdown(text)
	text = strings.Trim(text, `"`)
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", "", &ValidationError{Reason: ":warning: Quote text cannot be empty."}
	}
	if author == "" {
		author = "Anonymous"
	}

	if !strings.HasPrefix(emoji, ":") || !strings.HasSuffix(emoji, ":") || len(emoji) < 3 {
		return "", "", "", &ValidationError{Reason: fmt.Sprintf(":warning: Invalid emoji: `%s`", emoji)}
	}

	return text, author, emoji, nil
}

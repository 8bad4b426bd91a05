package quotes

import (
	"errors"
	"fmt"
	"log"

	"github.com/slack-go/slack"

	"github.com/scavara/statusquo/db"
	"github.com/scavara/statusquo/review"
	"github.com/scavara/statusquo/utils"
)

// ApproveActionHandler handles the Approve button on a review message.
func ApproveActionHandler(c *slack.Client, callback slack.InteractionCallback, action *slack.BlockAction) {
	handleDecision(c, callback, action.Value, review.OutcomeApprove)
}

// RejectActionHandler handles the Reject button on a review message.
func RejectActionHandler(c *slack.Client, callback slack.InteractionCallback, action *slack.BlockAction) {
	handleDecision(c, callback, action.Value, review.OutcomeReject)
}

func handleDecision(c *slack.Client, callback slack.InteractionCallback, token string, outcome review.Outcome) {
	reviewerID := callback.User.ID
	if !utils.IsReviewer(reviewerID) {
		respondToAction(c, callback, ":no_entry: You are not allowed to review submissions.")
		return
	}

	quote, err := review.Decide(token, outcome, reviewerID, NewNotifier(c))
	if err != nil {
		if errors.Is(err, review.ErrAlreadyResolved) {
			respondToAction(c, callback, ":warning: This submission was already handled, or the token is unknown.")
			return
		}
		log.Printf("Error deciding submission %s: %v", token, err)
		respondToAction(c, callback, ":x: Error processing the decision. Please try again later.")
		return
	}

	if outcome == review.OutcomeApprove {
		log.Printf("Submission %s approved by %s.", token, reviewerID)
		notifyProposer(c, quote.ProposerID,
			fmt.Sprintf(":tada: Your quote was approved:\n> %s \"%s\"", quote.Emoji, quote.Text))
	} else {
		log.Printf("Submission %s rejected by %s.", token, reviewerID)
		notifyProposer(c, proposerOf(token),
			":disappointed: Your quote submission was not approved this time.")
	}
}

// proposerOf looks up who proposed the submission named by token.
func proposerOf(token string) string {
	sub, err := db.GetPending(token)
	if err != nil || sub == nil {
		return ""
	}
	return sub.ProposerID
}

// notifyProposer sends a DM to the user whose submission was decided on.
func notifyProposer(c *slack.Client, proposerID, text string) {
	if proposerID == "" {
		return
	}
	_, _, err := c.PostMessage(proposerID, slack.MsgOptionText(text, false))
	if err != nil {
		log.Printf("Error notifying proposer %s: %v", proposerID, err)
	}
}

package quotes

import (
	"errors"
	"log"

	"github.com/slack-go/slack"

	"github.com/scavara/statusquo/review"
)

// AddQuoteHandler handles /quo-add: it runs the submission through the
// approval workflow and reports the result to the proposer.
func AddQuoteHandler(c *slack.Client, cmd slack.SlashCommand) {
	sub, err := review.Submit(cmd.UserID, cmd.Text, NewNotifier(c))
	if err != nil {
		var vErr *review.ValidationError
		if errors.As(err, &vErr) {
			respond(c, cmd, vErr.Reason)
			return
		}
		log.Printf("Error handling submission from %s: %v", cmd.UserID, err)
		respond(c, cmd, ":x: Error saving submission. Please try again later.")
		return
	}

	log.Printf("Submission %s from %s sent for review.", sub.ID, cmd.UserID)
	respond(c, cmd, ":white_check_mark: *Submission received!* It will show up once a reviewer approves it.")
}

package quotes

import (
	"errors"
	"fmt"
	"log"

	"github.com/slack-go/slack"

	"github.com/scavara/statusquo/config"
	"github.com/scavara/statusquo/limiter"
	"github.com/scavara/statusquo/status"
)

// ManualUpdateHandler handles /quo-update: an immediate status refresh for
// the invoking user, subject to the burst limit.
func ManualUpdateHandler(c *slack.Client, cmd slack.SlashCommand) {
	allowed, msg, err := limiter.CheckUpdateLimit(cmd.UserID)
	if err != nil {
		log.Printf("Error checking update limit for %s: %v", cmd.UserID, err)
		respond(c, cmd, ":x: Update failed. Please try again later.")
		return
	}
	if !allowed {
		respond(c, cmd, msg)
		return
	}

	if err := limiter.LogUpdate(cmd.UserID); err != nil {
		log.Printf("Error logging update attempt for %s: %v", cmd.UserID, err)
	}

	userClient := slack.New(config.Cfg.Slack.UserToken)
	text, err := status.Publish(cmd.UserID, userClient)
	if err != nil {
		if errors.Is(err, status.ErrNoQuotes) {
			respond(c, cmd, ":x: Update failed: no quotes available yet. Add one with `/quo-add`!")
			return
		}
		log.Printf("Error publishing status for %s: %v", cmd.UserID, err)
		respond(c, cmd, ":x: Update failed. Please try again later.")
		return
	}

	respond(c, cmd, fmt.Sprintf(":white_check_mark: Done! Status updated to:\n> %s", text))
}

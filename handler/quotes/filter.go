package quotes

import (
	"fmt"
	"log"
	"strings"

	"github.com/slack-go/slack"

	"github.com/scavara/statusquo/command"
	"github.com/scavara/statusquo/db"
)

// FilterHandler handles /quo-filter: set, show or clear the caller's
// author filter for status updates.
func FilterHandler(c *slack.Client, cmd slack.SlashCommand) {
	input := strings.TrimSpace(cmd.Text)
	if input == "" {
		respond(c, cmd, command.FilterUsage)
		return
	}

	switch strings.ToLower(input) {
	case "flush":
		if err := db.ClearFilter(cmd.UserID); err != nil {
			log.Printf("Error clearing filter for %s: %v", cmd.UserID, err)
			respond(c, cmd, ":x: Error.")
			return
		}
		respond(c, cmd, ":wastebasket: Filter cleared!")
		return

	case "list":
		current, err := db.GetFilter(cmd.UserID)
		if err != nil {
			log.Printf("Error reading filter for %s: %v", cmd.UserID, err)
			respond(c, cmd, ":x: Error.")
			return
		}
		if current == "" {
			respond(c, cmd, "No filter active.")
		} else {
			respond(c, cmd, fmt.Sprintf(":mag: Current filter: *%s*", current))
		}
		return
	}

	author := strings.NewReplacer(`"`, "", `'`, "").Replace(input)
	count, err := db.CountQuotesByAuthor(author)
	if err != nil {
		log.Printf("Error counting quotes by author %q: %v", author, err)
		respond(c, cmd, ":x: Database error.")
		return
	}
	if count == 0 {
		respond(c, cmd, fmt.Sprintf(":warning: No quotes found matching *'%s'*.", author))
		return
	}

	if err := db.SetFilter(cmd.UserID, author); err != nil {
		log.Printf("Error setting filter for %s: %v", cmd.UserID, err)
		respond(c, cmd, ":x: Database error.")
		return
	}
	respond(c, cmd, fmt.Sprintf(":white_check_mark: Filter set for *'%s'*", author))
}

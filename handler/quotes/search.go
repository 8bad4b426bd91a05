package quotes

import (
	"fmt"
	"log"
	"strings"

	"github.com/slack-go/slack"

	"github.com/scavara/statusquo/command"
	"github.com/scavara/statusquo/db"
)

const searchFetchLimit = 10

// SearchHandler handles /quo-search: a substring lookup over approved
// quotes, echoed back ephemerally.
func SearchHandler(c *slack.Client, cmd slack.SlashCommand) {
	query := strings.TrimSpace(cmd.Text)
	if query == "" {
		respond(c, cmd, command.SearchUsage)
		return
	}
	query = strings.NewReplacer(`"`, "", `'`, "").Replace(query)
	query = strings.TrimSpace(query)

	quotes, err := db.SearchQuotes(query, searchFetchLimit)
	if err != nil {
		log.Printf("Error searching quotes for %q: %v", query, err)
		respond(c, cmd, ":x: Database error. Please try again later.")
		return
	}

	if len(quotes) == 0 {
		respond(c, cmd, fmt.Sprintf(":detective: No approved quotes found matching *'%s'*. It might be pending review or denied.", query))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, ":white_check_mark: *Found %d match(es) for '%s':*\n", len(quotes), query)
	for i, quote := range quotes {
		if i == 3 {
			fmt.Fprintf(&b, "_...and %d more._", len(quotes)-3)
			break
		}
		fmt.Fprintf(&b, "> %s \"%s\" --_%s_\n", quote.Emoji, quote.Text, quote.Author)
	}
	respond(c, cmd, b.String())
}

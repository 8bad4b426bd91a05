// Package status publishes a quote as the acting user's Slack profile
// status.
package status

import (
	"errors"
	"fmt"
	"log"

	"github.com/scavara/statusquo/db"
	"github.com/scavara/statusquo/model"
)

// ErrNoQuotes is returned when the store holds no approved quotes; the
// status is left unchanged for that cycle.
var ErrNoQuotes = errors.New("no quotes available")

// Slack status text is hard-limited to 100 characters.
const maxStatusLen = 100

const fallbackEmoji = ":speech_balloon:"

// Setter applies a status to the acting user's profile. *slack.Client
// built from the user token satisfies it.
type Setter interface {
	SetUserCustomStatus(statusText, statusEmoji string, statusExpiration int64) error
}

// Publish picks one quote for the user and pushes it as their profile
// status. Returns the status text that was set.
func Publish(userID string, s Setter) (string, error) {
	quote, err := PickQuote(userID)
	if err != nil {
		return "", err
	}

	text := FormatStatus(quote)
	emoji := SanitizeEmoji(quote.Emoji)

	// Expiration 0 means the status is not cleared automatically.
	if err := s.SetUserCustomStatus(text, emoji, 0); err != nil {
		return "", fmt.Errorf("setting user status: %w", err)
	}
	return text, nil
}

// PickQuote selects the quote for a user: a random quote by their author
// filter when one is set and matches anything, otherwise a uniform random
// pick over the whole store. An empty store yields ErrNoQuotes.
func PickQuote(userID string) (*model.Quote, error) {
	filter, err := db.GetFilter(userID)
	if err != nil {
		return nil, fmt.Errorf("reading author filter: %w", err)
	}

	if filter != "" {
		quote, err := db.RandomQuoteByAuthor(filter)
		if err != nil {
			return nil, fmt.Errorf("querying quotes by author: %w", err)
		}
		if quote != nil {
			return quote, nil
		}
		log.Printf("Filter %q found no quotes for %s. Falling back to random.", filter, userID)
	}

	quote, err := db.RandomQuote()
	if err != nil {
		return nil, fmt.Errorf("querying random quote: %w", err)
	}
	if quote == nil {
		return nil, ErrNoQuotes
	}
	return quote, nil
}

// FormatStatus renders a quote as `"text." --author`, truncated to the
// Slack status length limit.
func FormatStatus(quote *model.Quote) string {
	author := quote.Author
	if author == "" {
		author = "Anonymous"
	}
	text := fmt.Sprintf("\"%s.\" --%s", quote.Text, author)

	if runes := []rune(text); len(runes) > maxStatusLen {
		text = string(runes[:maxStatusLen-3]) + "..."
	}
	return text
}

// SanitizeEmoji falls back to a safe default when the stored emoji is
// empty or not colon-wrapped; Slack rejects the status call otherwise.
func SanitizeEmoji(emoji string) string {
	if emoji == "" {
		return fallbackEmoji
	}
	if len(emoji) < 3 || emoji[0] != ':' || emoji[len(emoji)-1] != ':' {
		return fallbackEmoji
	}
	return emoji
}

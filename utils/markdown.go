package utils

import "strings"

// CleanSlackMarkdown strips Slack mrkdwn wrapping (bold, italics,
// strikethrough, inline code) and surrounding whitespace from a string.
func CleanSlackMarkdown(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*_~`")
	return strings.TrimSpace(s)
}

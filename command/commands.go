// Package command holds the slash command surface. The commands
// themselves are declared in the Slack app manifest; this package keeps
// their names and usage strings in one place.
package command

const (
	// Add submits a new quote for review.
	Add = "/quo-add"
	// Update triggers an immediate status refresh for the caller.
	Update = "/quo-update"
	// Search looks up approved quotes by text.
	Search = "/quo-search"
	// Filter manages the caller's author filter.
	Filter = "/quo-filter"
)

// Usage strings reported back when a command is called with bad arguments.
const (
	AddUsage    = ":warning: Format: `/quo-add Quote | Author | :emoji:`"
	SearchUsage = ":warning: usage: `/quo-search \"Quote Text\"`"
	FilterUsage = ":warning: Usage: `/quo-filter <Author>`, `/quo-filter list`, or `/quo-filter flush`"
)

package model

// Quote represents an approved quote from the quotes table.
// Quotes are immutable once stored; only the approval workflow writes them.
type Quote struct {
	ID         string
	Text       string
	Author     string
	Emoji      string
	ProposerID string
	CreatedAt  int64
}

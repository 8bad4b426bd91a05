package model

// Submission statuses. A submission is created as pending and moves to
// exactly one terminal status when a reviewer decides on it.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// PendingSubmission represents a quote proposal from the
// pending_submissions table. The ID doubles as the correlation token
// carried by the approval message's buttons.
type PendingSubmission struct {
	ID              string
	Text            string
	Author          string
	Emoji           string
	ProposerID      string
	Status          string
	ReviewerID      string
	ReviewChannelID string
	ReviewMessageTS string
	CreatedAt       int64
}

// Quote returns the quote embedded in the submission.
func (p *PendingSubmission) Quote() *Quote {
	return &Quote{
		ID:         p.ID,
		Text:       p.Text,
		Author:     p.Author,
		Emoji:      p.Emoji,
		ProposerID: p.ProposerID,
		CreatedAt:  p.CreatedAt,
	}
}

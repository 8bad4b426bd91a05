package quotes

import (
	"fmt"
	"log"

	"github.com/slack-go/slack"

	"github.com/scavara/statusquo/config"
	"github.com/scavara/statusquo/model"
	"github.com/scavara/statusquo/review"
)

// Action IDs carried by the review message buttons. The button value is
// the submission's correlation token.
const (
	ApproveActionID = "review_approve"
	RejectActionID  = "review_reject"
)

// SlackNotifier delivers the approval workflow's reviewer-facing messages
// through the Slack API.
type SlackNotifier struct {
	client *slack.Client
}

// NewNotifier wraps a Slack client as a review.Notifier.
func NewNotifier(c *slack.Client) *SlackNotifier {
	return &SlackNotifier{client: c}
}

// PostApprovalRequest posts the interactive approval message to the
// configured review channel.
func (n *SlackNotifier) PostApprovalRequest(sub *model.PendingSubmission) (string, string, error) {
	reviewChannelID := config.Cfg.Slack.ReviewChannelID
	if reviewChannelID == "" {
		return "", "", fmt.Errorf("review channel ID not configured")
	}

	blocks := append(submissionBlocks(sub),
		slack.NewActionBlock("review_actions",
			slack.NewButtonBlockElement(ApproveActionID, sub.ID,
				slack.NewTextBlockObject(slack.PlainTextType, "Approve", true, false),
			).WithStyle(slack.StylePrimary),
			slack.NewButtonBlockElement(RejectActionID, sub.ID,
				slack.NewTextBlockObject(slack.PlainTextType, "Reject", true, false),
			).WithStyle(slack.StyleDanger),
		),
	)

	return n.client.PostMessage(reviewChannelID, slack.MsgOptionBlocks(blocks...))
}

// UpdateDecision replaces the approval message, dropping the buttons and
// stamping the outcome.
func (n *SlackNotifier) UpdateDecision(sub *model.PendingSubmission, outcome review.Outcome) error {
	if sub.ReviewChannelID == "" || sub.ReviewMessageTS == "" {
		return fmt.Errorf("submission %s has no recorded review message", sub.ID)
	}

	var verdict string
	if outcome == review.OutcomeApprove {
		verdict = fmt.Sprintf(":white_check_mark: Approved by <@%s>", sub.ReviewerID)
	} else {
		verdict = fmt.Sprintf(":x: Rejected by <@%s>", sub.ReviewerID)
	}

	blocks := append(submissionBlocks(sub),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, verdict, false, false),
			nil, nil,
		),
	)

	_, _, _, err := n.client.UpdateMessage(
		sub.ReviewChannelID, sub.ReviewMessageTS, slack.MsgOptionBlocks(blocks...),
	)
	return err
}

// submissionBlocks renders the quote under review.
func submissionBlocks(sub *model.PendingSubmission) []slack.Block {
	body := fmt.Sprintf(
		"*New quote awaiting review*\n> %s \"%s\" --_%s_\nProposed by <@%s>",
		sub.Emoji, sub.Text, sub.Author, sub.ProposerID,
	)
	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, body, false, false),
			nil, nil,
		),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, "Submission "+sub.ID, false, false),
		),
	}
}

// respond sends an ephemeral reply to the user who invoked a slash command.
func respond(c *slack.Client, cmd slack.SlashCommand, text string) {
	_, err := c.PostEphemeral(cmd.ChannelID, cmd.UserID, slack.MsgOptionText(text, false))
	if err != nil {
		log.Printf("Error responding to %s: %v", cmd.Command, err)
	}
}

// respondToAction sends an ephemeral reply to the user who clicked a button.
func respondToAction(c *slack.Client, callback slack.InteractionCallback, text string) {
	_, err := c.PostEphemeral(callback.Channel.ID, callback.User.ID, slack.MsgOptionText(text, false))
	if err != nil {
		log.Printf("Error responding to action by %s: %v", callback.User.ID, err)
	}
}

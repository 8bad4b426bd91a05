package handler

import (
	"github.com/slack-go/slack"
)

var (
	commandHandlers = make(map[string]func(c *slack.Client, cmd slack.SlashCommand))
	actionHandlers  = make(map[string]func(c *slack.Client, callback slack.InteractionCallback, action *slack.BlockAction))
)

// AddCommandHandler registers a handler for a slash command.
func AddCommandHandler(name string, handler func(c *slack.Client, cmd slack.SlashCommand)) {
	commandHandlers[name] = handler
}

// AddActionHandler registers a handler for a block action.
func AddActionHandler(actionID string, handler func(c *slack.Client, callback slack.InteractionCallback, action *slack.BlockAction)) {
	actionHandlers[actionID] = handler
}

// OnSlashCommand is the main slash command router.
func OnSlashCommand(c *slack.Client, cmd slack.SlashCommand) {
	if handler, ok := commandHandlers[cmd.Command]; ok {
		handler(c, cmd)
	}
}

// OnInteraction is the main interaction router. Each block action in the
// callback is dispatched by its action ID.
func OnInteraction(c *slack.Client, callback slack.InteractionCallback) {
	if callback.Type != slack.InteractionTypeBlockActions {
		return
	}
	for _, action := range callback.ActionCallback.BlockActions {
		if handler, ok := actionHandlers[action.ActionID]; ok {
			handler(c, callback, action)
		}
	}
}

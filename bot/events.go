package bot

import (
	"log"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/scavara/statusquo/handler"
)

// runEventLoop acks and dispatches inbound socket-mode events. Each event
// is handled on its own goroutine so a slow Slack call never blocks the
// socket.
func runEventLoop(client *socketmode.Client) {
	for evt := range client.Events {
		switch evt.Type {
		case socketmode.EventTypeConnected:
			log.Println("Connected to Slack in socket mode.")

		case socketmode.EventTypeConnectionError:
			log.Printf("Socket mode connection error: %v", evt.Data)

		case socketmode.EventTypeSlashCommand:
			cmd, ok := evt.Data.(slack.SlashCommand)
			if !ok {
				continue
			}
			client.Ack(*evt.Request)
			go handler.OnSlashCommand(api, cmd)

		case socketmode.EventTypeInteractive:
			callback, ok := evt.Data.(slack.InteractionCallback)
			if !ok {
				continue
			}
			client.Ack(*evt.Request)
			go handler.OnInteraction(api, callback)
		}
	}
}

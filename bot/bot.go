package bot

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/scavara/statusquo/config"
	"github.com/scavara/statusquo/handler/quotes"
	"github.com/scavara/statusquo/scheduler"
)

var api *slack.Client

// Start wires the Slack socket-mode client, the handlers and the
// scheduler, then blocks until the process is signalled to stop.
func Start() {
	quotes.RegisterHandlers()

	if config.Cfg.Slack.BotToken == "" || config.Cfg.Slack.AppToken == "" {
		log.Println("Warning: Slack tokens are not configured!")
		return
	}

	api = slack.New(
		config.Cfg.Slack.BotToken,
		slack.OptionAppLevelToken(config.Cfg.Slack.AppToken),
	)

	client := socketmode.New(api)
	go runEventLoop(client)

	c, err := scheduler.Start()
	if err != nil {
		log.Printf("Error starting scheduler: %v", err)
		return
	}
	defer c.Stop()

	go func() {
		if err := client.Run(); err != nil {
			log.Printf("Socket mode client stopped: %v", err)
		}
	}()

	log.Println("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}

// GetSession returns the current Slack client.
func GetSession() *slack.Client {
	return api
}

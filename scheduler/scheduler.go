// Package scheduler fires the daily status update at the configured local
// time. Drift and catch-up semantics are the cron library's.
package scheduler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"

	"github.com/scavara/statusquo/config"
	"github.com/scavara/statusquo/status"
)

// Start schedules the daily status update and returns the running cron.
func Start() (*cron.Cron, error) {
	loc, err := time.LoadLocation(config.Cfg.Scheduler.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", config.Cfg.Scheduler.Timezone, err)
	}

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(config.Cfg.Scheduler.Cron, runDailyUpdate)
	if err != nil {
		return nil, fmt.Errorf("scheduling daily update: %w", err)
	}

	c.Start()
	log.Printf("Scheduler started: %q in %s.", config.Cfg.Scheduler.Cron, loc)
	return c, nil
}

// runDailyUpdate performs one status update cycle. A failed cycle is
// logged and the next scheduled instant proceeds normally.
func runDailyUpdate() {
	log.Println("Starting daily status update...")

	userClient := slack.New(config.Cfg.Slack.UserToken)
	text, err := status.Publish(config.Cfg.Slack.StatusUserID, userClient)
	if err != nil {
		if errors.Is(err, status.ErrNoQuotes) {
			log.Println("Daily update skipped: no quotes available.")
			return
		}
		log.Printf("Daily update failed: %v", err)
		return
	}

	log.Printf("Daily update done: %s", text)
}

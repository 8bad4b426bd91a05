package main

import (
	"fmt"

	"github.com/scavara/statusquo/bot"
	"github.com/scavara/statusquo/config"
	"github.com/scavara/statusquo/db"
)

func main() {
	err := config.LoadConfig()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db.InitDB(config.Cfg.Database.Path)

	bot.Start()
}

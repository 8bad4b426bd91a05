package config

import (
	"github.com/spf13/viper"

	"github.com/scavara/statusquo/model"
)

var Cfg model.Config

// LoadConfig reads config.yaml from the working directory and unmarshals
// it into Cfg. Environment variables override file values.
func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("scheduler.timezone", "UTC")
	viper.SetDefault("scheduler.cron", "0 9 * * *")
	viper.SetDefault("database.path", "./data/statusquo.db")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}

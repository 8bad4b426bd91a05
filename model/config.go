package model

// Config corresponds to the top-level structure of config.yaml.
type Config struct {
	Slack     Slack     `mapstructure:"slack"`
	Scheduler Scheduler `mapstructure:"scheduler"`
	Database  Database  `mapstructure:"database"`
	Reviewers []string  `mapstructure:"reviewers"`
}

// Slack corresponds to the "slack" section.
type Slack struct {
	BotToken        string `mapstructure:"bot_token"`
	AppToken        string `mapstructure:"app_token"`
	UserToken       string `mapstructure:"user_token"`
	ReviewChannelID string `mapstructure:"review_channel_id"`
	StatusUserID    string `mapstructure:"status_user_id"`
}

// Scheduler corresponds to the "scheduler" section.
type Scheduler struct {
	Timezone string `mapstructure:"timezone"`
	Cron     string `mapstructure:"cron"`
}

// Database corresponds to the "database" section.
type Database struct {
	Path string `mapstructure:"path"`
}

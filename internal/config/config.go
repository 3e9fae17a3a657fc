package config

import (
	"github.com/spf13/viper"
)

const DefaultDatabasePath = "./bookcircle.db"

type (
	Config struct {
		HTTP
		Database
		Auth
		Store
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Auth struct {
		BcryptCost int
	}
	Store struct {
		PingEnabled  bool
		PingSchedule string // Cron format: "*/5 * * * *" = every 5 minutes
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("auth_bcrypt_cost", 12)
	v.SetDefault("store_ping_enabled", true)
	v.SetDefault("store_ping_schedule", "*/5 * * * *")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			BcryptCost: v.GetInt("AUTH_BCRYPT_COST"),
		},
		Store: Store{
			PingEnabled:  v.GetBool("STORE_PING_ENABLED"),
			PingSchedule: v.GetString("STORE_PING_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}

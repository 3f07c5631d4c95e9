package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Default endpoints match the production deployment and can be overridden
// per environment.
const (
	DefaultMenuAPI       = "https://apps.bowdoin.edu/orestes/api.jsp"
	DefaultGroupMeAPI    = "https://api.groupme.com/v3"
	DefaultSpinitronBase = "https://api-1.wbor.org/api"

	DefaultClosedStateFile = "closed_state.txt"
	DefaultStatusAddr      = ":8080"

	// How often serve mode re-runs the notifier pipeline.
	DefaultNotifyIntervalMinutes = 60
)

type Config struct {
	Env       string
	Menu      MenuConfig
	GroupMe   GroupMeConfig
	Spinitron SpinitronConfig
	State     StateConfig
	Server    ServerConfig
	Notify    NotifyConfig
	Log       LogConfig
}

type MenuConfig struct {
	BaseURL string
}

type GroupMeConfig struct {
	BaseURL     string
	BotID       string
	AccessToken string // needed only for the group read commands
	GroupID     string // needed only for the group read commands
}

type SpinitronConfig struct {
	BaseURL string
}

type StateConfig struct {
	FilePath  string
	RedisAddr string // optional; when set the closed flag lives in Redis
	RedisDB   int
}

type ServerConfig struct {
	Addr string
}

type NotifyConfig struct {
	IntervalMinutes int
}

type LogConfig struct {
	Level string
	File  string // empty means stdout
}

// Load reads configuration from the environment, honoring a local .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	botID := os.Getenv("BOT_ID")
	if botID == "" {
		return nil, fmt.Errorf("BOT_ID environment variable is missing or empty")
	}

	interval, _ := strconv.Atoi(getEnv("NOTIFY_INTERVAL_MINUTES", strconv.Itoa(DefaultNotifyIntervalMinutes)))
	if interval <= 0 {
		interval = DefaultNotifyIntervalMinutes
	}
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return &Config{
		Env: getEnv("APP_ENV", "prod"),
		Menu: MenuConfig{
			BaseURL: getEnv("MENU_API", DefaultMenuAPI),
		},
		GroupMe: GroupMeConfig{
			BaseURL:     getEnv("GROUPME_API", DefaultGroupMeAPI),
			BotID:       botID,
			AccessToken: os.Getenv("ACCESS_TOKEN"),
			GroupID:     os.Getenv("GROUP_ID"),
		},
		Spinitron: SpinitronConfig{
			BaseURL: getEnv("SPINITRON_PROXY_BASE", DefaultSpinitronBase),
		},
		State: StateConfig{
			FilePath:  getEnv("CLOSED_STATE_FILE", DefaultClosedStateFile),
			RedisAddr: os.Getenv("REDIS_ADDR"),
			RedisDB:   redisDB,
		},
		Server: ServerConfig{
			Addr: getEnv("STATUS_ADDR", DefaultStatusAddr),
		},
		Notify: NotifyConfig{
			IntervalMinutes: interval,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  os.Getenv("LOG_FILE"),
		},
	}, nil
}

// RequireGroupAccess checks the extra credentials the group read commands need.
func (c *Config) RequireGroupAccess() error {
	if c.GroupMe.AccessToken == "" || c.GroupMe.GroupID == "" {
		return fmt.Errorf("ACCESS_TOKEN and GROUP_ID environment variables must be set")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

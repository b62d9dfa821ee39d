package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// New-tab specifics
	GoogleTasks GoogleTasksConfig
	Unsplash    UnsplashConfig
	Reminder    ReminderConfig
	Telegram    TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type GoogleTasksConfig struct {
	CredentialsPath string
	TokenPath       string
	TaskListID      string
	StaleAfter      time.Duration
	PollInterval    time.Duration
}

type UnsplashConfig struct {
	AccessKey   string
	Query       string
	Orientation string
	RatePerHour int
}

type ReminderConfig struct {
	Lead     time.Duration
	MinDelay time.Duration
	MaxDelay time.Duration
	Timezone string
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

// Enabled reports whether reminder pushes are configured.
func (c TelegramConfig) Enabled() bool {
	return c.BotToken != "" && c.ChatID != 0
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Google Tasks
	cfg.GoogleTasks.CredentialsPath = viper.GetString("google_tasks.credentials_path")
	cfg.GoogleTasks.TokenPath = viper.GetString("google_tasks.token_path")
	cfg.GoogleTasks.TaskListID = viper.GetString("google_tasks.tasklist_id")
	cfg.GoogleTasks.StaleAfter = viper.GetDuration("google_tasks.stale_after")
	cfg.GoogleTasks.PollInterval = viper.GetDuration("google_tasks.poll_interval")
	if googleCreds := viper.GetString("google_tasks_credentials"); googleCreds != "" {
		cfg.GoogleTasks.CredentialsPath = googleCreds
	}

	// Unsplash
	cfg.Unsplash.AccessKey = expandEnvVar(viper.GetString("unsplash.access_key"))
	cfg.Unsplash.Query = viper.GetString("unsplash.query")
	cfg.Unsplash.Orientation = viper.GetString("unsplash.orientation")
	cfg.Unsplash.RatePerHour = viper.GetInt("unsplash.rate_per_hour")
	if key := viper.GetString("unsplash_access_key"); key != "" {
		cfg.Unsplash.AccessKey = key
	}

	// Reminder window
	cfg.Reminder.Lead = viper.GetDuration("reminder.lead")
	cfg.Reminder.MinDelay = viper.GetDuration("reminder.min_delay")
	cfg.Reminder.MaxDelay = viper.GetDuration("reminder.max_delay")
	cfg.Reminder.Timezone = viper.GetString("reminder.timezone")

	// Telegram
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("google_tasks.credentials_path", "google-credentials.json")
	viper.SetDefault("google_tasks.token_path", "token.json")
	viper.SetDefault("google_tasks.tasklist_id", "@default")
	viper.SetDefault("google_tasks.stale_after", "2m")
	viper.SetDefault("google_tasks.poll_interval", "5m")

	viper.SetDefault("unsplash.query", "city,urban,cityscape,skyline")
	viper.SetDefault("unsplash.orientation", "landscape")
	viper.SetDefault("unsplash.rate_per_hour", 50)

	viper.SetDefault("reminder.lead", "5m")
	viper.SetDefault("reminder.min_delay", "1s")
	viper.SetDefault("reminder.max_delay", "1h")
	viper.SetDefault("reminder.timezone", "Local")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port %d", cfg.HTTPServer.Port)
	}
	if cfg.Reminder.Lead < 0 {
		return fmt.Errorf("reminder.lead must not be negative, got %s", cfg.Reminder.Lead)
	}
	if cfg.Reminder.MinDelay <= 0 || cfg.Reminder.MaxDelay < cfg.Reminder.MinDelay {
		return fmt.Errorf("reminder delays must satisfy 0 < min_delay <= max_delay, got %s and %s",
			cfg.Reminder.MinDelay, cfg.Reminder.MaxDelay)
	}
	if _, err := time.LoadLocation(cfg.Reminder.Timezone); err != nil {
		return fmt.Errorf("invalid reminder.timezone %q: %w", cfg.Reminder.Timezone, err)
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	// Try viper first (handles both env and config)
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return ""
}

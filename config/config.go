package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults for the deployment this dashboard was built for
const (
	DefaultGroupID           = 10533277
	DefaultTargetRank        = 3
	DefaultPollInterval      = 5 * time.Second
	DefaultKeepaliveInterval = 30 * time.Second
	DefaultStreamWindow      = 100
)

// Config holds all runtime configuration
type Config struct {
	Port        string       `mapstructure:"port"`
	DatabaseURL string       `mapstructure:"database_url"`
	Roblox      RobloxConfig `mapstructure:",squash"`
	Stream      StreamConfig `mapstructure:",squash"`
}

// RobloxConfig holds the group-management service settings
type RobloxConfig struct {
	Cookie       string        `mapstructure:"roblox_cookie"`
	GroupID      int64         `mapstructure:"group_id"`
	TargetRank   int           `mapstructure:"target_rank"`
	Timeout      time.Duration `mapstructure:"roblox_timeout"`
	UsersAPIURL  string        `mapstructure:"roblox_users_api_url"`
	GroupsAPIURL string        `mapstructure:"roblox_groups_api_url"`
}

// StreamConfig holds the change stream cadences
type StreamConfig struct {
	PollInterval      time.Duration `mapstructure:"stream_poll_interval"`
	KeepaliveInterval time.Duration `mapstructure:"stream_keepalive_interval"`
	Window            int           `mapstructure:"stream_window"`
}

// Load reads an optional .env file and the process environment into a Config
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// COOKIE is the name older deployments used
	if err := v.BindEnv("roblox_cookie", "ROBLOX_COOKIE", "COOKIE"); err != nil {
		return nil, fmt.Errorf("failed to bind cookie env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("database_url", "rank_activity.db")
	v.SetDefault("roblox_cookie", "")
	v.SetDefault("group_id", DefaultGroupID)
	v.SetDefault("target_rank", DefaultTargetRank)
	v.SetDefault("roblox_timeout", 15*time.Second)
	v.SetDefault("roblox_users_api_url", "https://users.roblox.com")
	v.SetDefault("roblox_groups_api_url", "https://groups.roblox.com")
	v.SetDefault("stream_poll_interval", DefaultPollInterval)
	v.SetDefault("stream_keepalive_interval", DefaultKeepaliveInterval)
	v.SetDefault("stream_window", DefaultStreamWindow)
}

// Validate checks the configuration. A missing cookie is not an error here:
// the rank endpoint reports it per request.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	if c.Roblox.GroupID <= 0 {
		return fmt.Errorf("group_id must be positive, got %d", c.Roblox.GroupID)
	}
	if c.Roblox.TargetRank < 1 || c.Roblox.TargetRank > 255 {
		return fmt.Errorf("target_rank must be between 1 and 255, got %d", c.Roblox.TargetRank)
	}
	if c.Roblox.Timeout < 0 {
		return fmt.Errorf("roblox_timeout must not be negative")
	}
	if c.Stream.PollInterval <= 0 {
		return fmt.Errorf("stream_poll_interval must be positive")
	}
	if c.Stream.KeepaliveInterval <= 0 {
		return fmt.Errorf("stream_keepalive_interval must be positive")
	}
	if c.Stream.Window <= 0 {
		return fmt.Errorf("stream_window must be positive, got %d", c.Stream.Window)
	}
	return nil
}

// HasCredential reports whether a Roblox cookie is configured
func (c *Config) HasCredential() bool {
	return strings.TrimSpace(c.Roblox.Cookie) != ""
}

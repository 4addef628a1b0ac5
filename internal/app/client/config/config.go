package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultServerAddress  = "localhost:9950"
	defaultListenAddress  = "127.0.0.1:9951"
	defaultLogLevel       = "info"
	defaultEnv            = EnvLocal
	defaultConfigDir      = ".virtool"
	defaultMigrationsPath = "migrations"
)

type Config struct {
	Env              string `mapstructure:"app_env" validate:"oneof=local dev prod"`
	ServerAddress    string `mapstructure:"server_address" validate:"required,hostname_port"`
	EnableTLS        bool   `mapstructure:"enable_tls"`
	User             string `mapstructure:"virtool_user"`
	APIKey           string `mapstructure:"virtool_api_key"`
	LogLevel         string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	ConfigDir        string `mapstructure:"config_dir" validate:"required"`
	ListenAddress    string `mapstructure:"listen_address" validate:"required,hostname_port"`
	DatabaseURI      string `mapstructure:"database_uri" validate:"omitempty,url"`
	MigrationsPath   string `mapstructure:"migrations_path"`
	SnapshotInterval int    `mapstructure:"snapshot_interval_seconds" validate:"gte=0"`
	ReconnectDelay   int    `mapstructure:"reconnect_delay_seconds" validate:"gte=1"`

	SnapshotPath string `mapstructure:"-"`
	APIKeyPath   string `mapstructure:"-"`
}

// MustLoad loads the client configuration from .env, the environment and
// the config file set on the global viper instance.
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load .env file: %v\n", err)
		}
	}

	cfg, err := Load(viper.GetViper())
	if err != nil {
		panic(fmt.Sprintf("config error: %v", err))
	}

	if err := os.MkdirAll(cfg.ConfigDir, 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config dir: %v\n", err)
	}

	return cfg
}

// Load reads and validates the configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	v.SetDefault("ENABLE_TLS", false)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("CONFIG_DIR", defaultConfigDir)
	v.SetDefault("LISTEN_ADDRESS", defaultListenAddress)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.SetDefault("SNAPSHOT_INTERVAL_SECONDS", 30)
	v.SetDefault("RECONNECT_DELAY_SECONDS", 1)

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := v.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	cfg := &Config{
		Env:              v.GetString("APP_ENV"),
		ServerAddress:    v.GetString("SERVER_ADDRESS"),
		EnableTLS:        v.GetBool("ENABLE_TLS"),
		User:             v.GetString("VIRTOOL_USER"),
		APIKey:           v.GetString("VIRTOOL_API_KEY"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		ConfigDir:        configDir,
		ListenAddress:    v.GetString("LISTEN_ADDRESS"),
		DatabaseURI:      v.GetString("DATABASE_URI"),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		SnapshotInterval: v.GetInt("SNAPSHOT_INTERVAL_SECONDS"),
		ReconnectDelay:   v.GetInt("RECONNECT_DELAY_SECONDS"),
		SnapshotPath:     filepath.Join(configDir, "snapshot.db"),
		APIKeyPath:       filepath.Join(configDir, "api_key"),
	}

	if cfg.APIKey == "" {
		if key, err := os.ReadFile(cfg.APIKeyPath); err == nil {
			cfg.APIKey = strings.TrimSpace(string(key))
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}

// BaseURL is the root of the Virtool HTTP API.
func (c *Config) BaseURL() string {
	if c.EnableTLS {
		return "https://" + c.ServerAddress
	}
	return "http://" + c.ServerAddress
}

// PushURL is the address of the Virtool WebSocket.
func (c *Config) PushURL() string {
	if c.EnableTLS {
		return "wss://" + c.ServerAddress + "/ws"
	}
	return "ws://" + c.ServerAddress + "/ws"
}

func (c *Config) SnapshotEvery() time.Duration {
	return time.Duration(c.SnapshotInterval) * time.Second
}

func (c *Config) ReconnectAfter() time.Duration {
	return time.Duration(c.ReconnectDelay) * time.Second
}

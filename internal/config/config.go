package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/qiyin-tech/expload/pkg/expload"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the optional per-directory config file.
const ConfigFileName = "expload.yaml"

// RedisConfig holds connection defaults from the config file.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password,omitempty"`
}

// FileConfig is the expload.yaml schema.
type FileConfig struct {
	Redis      RedisConfig `yaml:"redis"`
	WebhookURL string      `yaml:"webhook_url,omitempty"`
}

// Load reads expload.yaml from dir.
func Load(dir string) (*FileConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %v: %w", ConfigFileName, err, expload.ErrInvalidConfig)
	}
	return &cfg, nil
}

// Flags carries the raw CLI flag values. The *Set booleans record whether
// the user passed the flag explicitly; a set flag beats every other source.
type Flags struct {
	RedisAddr    string
	RedisAddrSet bool

	RedisPassword    string
	RedisPasswordSet bool

	FilePath string

	WebhookURL    string
	WebhookURLSet bool

	Verbose bool
}

// Resolve layers configuration sources into a validated LoadConfig.
// Precedence: explicit flag > environment variable > expload.yaml > default.
// A .env file in the working directory is loaded first (non-fatal if absent).
func Resolve(flags Flags) (expload.LoadConfig, error) {
	_ = godotenv.Load()

	fileCfg, err := Load(".")
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return expload.LoadConfig{}, err
	}
	if fileCfg == nil {
		fileCfg = &FileConfig{}
	}

	cfg := expload.LoadConfig{
		RedisAddr:     pick(flags.RedisAddr, flags.RedisAddrSet, expload.EnvRedisAddr, fileCfg.Redis.Addr, expload.DefaultRedisAddr),
		RedisPassword: pick(flags.RedisPassword, flags.RedisPasswordSet, expload.EnvRedisPassword, fileCfg.Redis.Password, ""),
		FilePath:      flags.FilePath,
		WebhookURL:    pick(flags.WebhookURL, flags.WebhookURLSet, expload.EnvWebhookURL, fileCfg.WebhookURL, ""),
		Verbose:       flags.Verbose,
	}

	if err := cfg.Validate(); err != nil {
		return expload.LoadConfig{}, err
	}
	return cfg, nil
}

// pick applies the precedence chain for one value.
func pick(flagValue string, flagSet bool, envName, fileValue, defaultValue string) string {
	if flagSet {
		return flagValue
	}
	if v := os.Getenv(envName); v != "" {
		return v
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

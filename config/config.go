package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"christoffel-menu/models"
)

// Feedback modes. FeedbackInline shows errors under each invalid field and
// acknowledges a saved dish; FeedbackSilent drops invalid submissions quietly.
const (
	FeedbackInline = "inline"
	FeedbackSilent = "silent"
)

type Config struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Telegram TelegramConfig `yaml:"telegram"`
	Log      LogConfig      `yaml:"log"`
}

type ScreenConfig struct {
	Title    string `yaml:"title"`
	Currency string `yaml:"currency"`
	Feedback string `yaml:"feedback"`
}

type TelegramConfig struct {
	Token string `yaml:"token"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Title:    "Christoffel",
			Currency: models.DefaultCurrency,
			Feedback: FeedbackInline,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads .env (if any), then the optional YAML file at path, then lets
// environment variables override both.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Screen.Title = getEnv("TITLE", cfg.Screen.Title)
	cfg.Screen.Currency = getEnv("CURRENCY", cfg.Screen.Currency)
	cfg.Screen.Feedback = strings.ToLower(getEnv("FEEDBACK", cfg.Screen.Feedback))
	cfg.Telegram.Token = getEnv("TOKEN", cfg.Telegram.Token)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("LOG_FILE", cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Screen.Feedback {
	case FeedbackInline, FeedbackSilent:
	default:
		return fmt.Errorf("invalid feedback mode %q (want %q or %q)", c.Screen.Feedback, FeedbackInline, FeedbackSilent)
	}
	if strings.TrimSpace(c.Screen.Title) == "" {
		return errors.New("screen title is empty")
	}
	return nil
}

// Inline reports whether the screens should show errors and acknowledgements.
func (s ScreenConfig) Inline() bool { return s.Feedback != FeedbackSilent }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

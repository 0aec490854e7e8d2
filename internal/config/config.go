package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the root of the catalog API; the client appends /article.
const DefaultBaseURL = "http://localhost:8080/Homework1/webresources/api/v1"

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName            string        `mapstructure:"app_name"`
	Env                string        `mapstructure:"app_env"`
	LogLevel           string        `mapstructure:"log_level"`
	BaseURL            string        `mapstructure:"catalog_base_url"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	Username string `mapstructure:"catalog_username"`
	Password string `mapstructure:"catalog_password"`

	TopicsRaw string   `mapstructure:"browse_topics"`
	Topics    []string `mapstructure:"-"`
	Author    string   `mapstructure:"browse_author"`
	ArticleID int64    `mapstructure:"browse_article_id"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "article-catalog-client")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("catalog_base_url", DefaultBaseURL)
	v.SetDefault("http_timeout_seconds", 15)
	v.SetDefault("catalog_username", "")
	v.SetDefault("catalog_password", "")
	v.SetDefault("browse_topics", "")
	v.SetDefault("browse_author", "")
	v.SetDefault("browse_article_id", 0)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("catalog_base_url is required")
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	if cfg.ArticleID < 0 {
		return nil, fmt.Errorf("invalid browse_article_id (must not be negative)")
	}

	cfg.Topics = splitTopics(cfg.TopicsRaw)
	cfg.Author = strings.TrimSpace(cfg.Author)

	return &cfg, nil
}

// LogFields returns the configuration as a loggable map with secrets redacted.
func (c *Config) LogFields() map[string]any {
	password := ""
	if c.Password != "" {
		password = "***"
	}
	return map[string]any{
		"app_name":          c.AppName,
		"app_env":           c.Env,
		"log_level":         c.LogLevel,
		"catalog_base_url":  c.BaseURL,
		"http_timeout":      c.HTTPTimeout.String(),
		"catalog_username":  c.Username,
		"catalog_password":  password,
		"browse_topics":     c.Topics,
		"browse_author":     c.Author,
		"browse_article_id": c.ArticleID,
	}
}

// splitTopics parses a comma-separated topic list, dropping blank entries.
func splitTopics(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if topic := strings.TrimSpace(part); topic != "" {
			out = append(out, topic)
		}
	}
	return out
}

// Package config loads the application configuration from an optional
// YAML file with environment variable overrides. A .env file in the
// working directory is honored for local development.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Filter FilterConfig `yaml:"filter"`
	SMTP   SMTPConfig   `yaml:"smtp"`
	Mail   MailConfig   `yaml:"mail"`
	Limits LimitsConfig `yaml:"limits"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	Env            string   `yaml:"env"`       // "dev" or "prod"
	LogLevel       string   `yaml:"log_level"` // debug, info, warn, error
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// FilterConfig holds acceptability filter toggles.
type FilterConfig struct {
	// VerifyDNS enables mail-server verification of submitted domains.
	VerifyDNS bool `yaml:"verify_dns"`
	// ExposeReason includes the raw internal rejection reason in 422
	// responses. Debugging aid, keep off in production.
	ExposeReason bool `yaml:"expose_reason"`
	// DNSTimeoutSeconds bounds a single DNS lookup. Default: 5
	DNSTimeoutSeconds int `yaml:"dns_timeout_seconds"`
}

// SMTPConfig holds outbound mail transport settings. An empty Host
// disables real delivery (messages are logged instead).
type SMTPConfig struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	HeloDomain string `yaml:"helo_domain"`
}

// MailConfig holds addressing for the notification and confirmation mails.
type MailConfig struct {
	// AdminEmail receives the notification for every accepted submission.
	AdminEmail string `yaml:"admin_email"`
	// FromEmail is the sender of all outbound mail.
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
	// SiteName appears in subjects and bodies, e.g. "Acme Studio".
	SiteName string `yaml:"site_name"`
}

// LimitsConfig holds rate limiting knobs for the submission endpoints.
type LimitsConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

// Load reads the YAML file at path (skipped when path is empty or the file
// does not exist), applies environment overrides, then defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if cfg.Mail.AdminEmail == "" {
		return nil, fmt.Errorf("config: admin email is required (set mail.admin_email or ADMIN_EMAIL)")
	}
	if cfg.Mail.FromEmail == "" {
		return nil, fmt.Errorf("config: from email is required (set mail.from_email or FROM_EMAIL)")
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Server.Port)
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Server.LogLevel = v
	}
	if v := os.Getenv("VERIFY_DNS"); v != "" {
		cfg.Filter.VerifyDNS = v == "true" || v == "1"
	}
	if v := os.Getenv("EXPOSE_REASON"); v != "" {
		cfg.Filter.ExposeReason = v == "true" || v == "1"
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		cfg.SMTP.Port = v
	}
	if v := os.Getenv("SMTP_USERNAME"); v != "" {
		cfg.SMTP.Username = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		cfg.Mail.AdminEmail = v
	}
	if v := os.Getenv("FROM_EMAIL"); v != "" {
		cfg.Mail.FromEmail = v
	}
	if v := os.Getenv("FROM_NAME"); v != "" {
		cfg.Mail.FromName = v
	}
	if v := os.Getenv("SITE_NAME"); v != "" {
		cfg.Mail.SiteName = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "dev"
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Filter.DNSTimeoutSeconds == 0 {
		cfg.Filter.DNSTimeoutSeconds = 5
	}
	if cfg.SMTP.Port == "" {
		cfg.SMTP.Port = "587"
	}
	if cfg.Mail.SiteName == "" {
		cfg.Mail.SiteName = "Website"
	}
	if cfg.Limits.RequestsPerMinute == 0 {
		cfg.Limits.RequestsPerMinute = 10
	}
	if cfg.Limits.Burst == 0 {
		cfg.Limits.Burst = 5
	}
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

type CaptchaConfig struct {
	ProjectID       string
	SiteKey         string
	CredentialsFile string
}

// Config is loaded once at startup and passed into the services that need
// it. Nothing reads os.Getenv after Load returns.
type Config struct {
	Port            string
	JWTSecret       string
	JWTIssuer       string
	SessionDuration time.Duration
	CredentialsFile string
	StorageBucket   string
	ResetLinkBase   string
	SMTP            EmailConfig
	Captcha         CaptchaConfig
}

func Load() (*Config, error) {
	// Load .env only when running locally; deployed environments inject
	// real env vars.
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			fmt.Println("Warning: No .env file found or failed to load")
		}
	}

	cfg := &Config{
		Port:            os.Getenv("PORT"),
		JWTSecret:       os.Getenv("JWT_SECRET_KEY"),
		JWTIssuer:       "matchapp",
		SessionDuration: 30 * 24 * time.Hour,
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		StorageBucket:   os.Getenv("STORAGE_BUCKET"),
		ResetLinkBase:   os.Getenv("RESET_LINK_BASE"),
		SMTP: EmailConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     os.Getenv("SMTP_PORT"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		Captcha: CaptchaConfig{
			ProjectID:       os.Getenv("GOOGLE_CLOUD_PROJECT_ID"),
			SiteKey:         os.Getenv("RECAPTCHA_SITE_KEY"),
			CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.ResetLinkBase == "" {
		cfg.ResetLinkBase = "http://localhost:3001/user/password/reset"
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET_KEY is not set")
	}
	if cfg.CredentialsFile == "" {
		return nil, fmt.Errorf("environment variable GOOGLE_APPLICATION_CREDENTIALS is not set")
	}
	if cfg.StorageBucket == "" {
		return nil, fmt.Errorf("environment variable STORAGE_BUCKET is not set")
	}

	return cfg, nil
}

// MailConfigured reports whether the SMTP relay can be used.
func (c *Config) MailConfigured() bool {
	s := c.SMTP
	return s.Host != "" && s.Port != "" && s.Username != "" && s.Password != ""
}

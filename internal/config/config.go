package config

import (
	"os"
	"strconv"
	"time"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type RateLimitConfig struct {
	Window time.Duration
	Max    int
}

type Config struct {
	R2 R2Config

	// Kayıt formu ve yönetici girişi için kayan pencere sınırları
	Registration RateLimitConfig
	Login        RateLimitConfig

	// Etkinlik sayfası QR'larının taban adresi (örn: "https://davetix.app/e/")
	EventBaseURL string
}

func LoadConfig() *Config {
	cfg := &Config{}

	// R2 config
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	cfg.Registration = RateLimitConfig{
		Window: envDuration("REGISTRATION_RATE_WINDOW", time.Minute),
		Max:    envInt("REGISTRATION_RATE_MAX", 3),
	}
	cfg.Login = RateLimitConfig{
		Window: envDuration("LOGIN_RATE_WINDOW", time.Minute),
		Max:    envInt("LOGIN_RATE_MAX", 5),
	}

	cfg.EventBaseURL = os.Getenv("EVENT_BASE_URL")
	if cfg.EventBaseURL == "" {
		cfg.EventBaseURL = "https://davetix.app/e/"
	}

	return cfg
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

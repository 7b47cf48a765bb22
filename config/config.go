package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port  string
	DBURL string

	Mail      MailConfig
	Twilio    TwilioConfig
	Assistant AssistantConfig

	// When true, booking creation counts existing bookings for the
	// (service, date) pair inside the insert transaction and rejects at
	// the daily capacity. When false only the advisory availability
	// endpoint looks at the count.
	EnforceCapacity bool
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
	Timeout  time.Duration
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

type AssistantConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

func Load() *Config {
	return &Config{
		Port:  getEnv("PORT", "8080"),
		DBURL: os.Getenv("DB_URL"),
		Mail: MailConfig{
			Host:     os.Getenv("MAIL_SERVER"),
			Port:     getEnvInt("MAIL_PORT", 587),
			Username: os.Getenv("MAIL_USERNAME"),
			Password: os.Getenv("MAIL_PASSWORD"),
			Sender:   getEnv("MAIL_DEFAULT_SENDER", "noreply@marquisesservices.com"),
			Timeout:  time.Duration(getEnvInt("MAIL_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Twilio: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
		},
		Assistant: AssistantConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		},
		EnforceCapacity: getEnv("ENFORCE_BOOKING_CAPACITY", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

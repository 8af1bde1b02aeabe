package app

import (
	"os"
	"strconv"
	"time"

	"github.com/longevlabs/longev-auth/internal/auth/service"
	"github.com/longevlabs/longev-auth/pkg/jwtx"
)

type Config struct {
	Issuer         string // Issuer claim for tokens (default: longev-auth)
	DatabaseFile   string // Path to SQLite database file (default: ./auth.db)
	PepperFile     string // Path to file containing pepper for password hashing (default: ./pepper)
	SigningKeyFile string // Optional: Ed25519 PKCS8 PEM; ephemeral key is generated when unset

	OTPDigits      int           // Passcode length (default: 6)
	OTPTTL         time.Duration // Passcode lifetime (default: 10m)
	AccessTokenTTL time.Duration // Access token lifetime (default: 1h)

	SMTPHost      string // Optional: mail falls back to log-only delivery when unset
	SMTPPort      int    // SMTP relay port (default: 587)
	SMTPUsername  string
	SMTPPassword  string
	SMTPFrom      string // From address for outbound mail
	MailQueueSize int    // Dispatcher buffer size (default: 64)
	MailSendRate  int    // Outbound messages per second (default: 1)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired credential sweep interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:         getEnvOrDefault("AUTH_ISSUER", "longev-auth"),
		DatabaseFile:   getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		PepperFile:     getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),
		SigningKeyFile: os.Getenv("AUTH_SIGNING_KEY_FILE"),

		OTPDigits:      getEnvIntOrDefault("OTP_DIGITS", service.DefaultOTPDigits),
		OTPTTL:         getEnvDurationOrDefault("OTP_TTL", service.DefaultOTPTTL),
		AccessTokenTTL: getEnvDurationOrDefault("ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:      os.Getenv("SMTP_FROM"),
		MailQueueSize: getEnvIntOrDefault("MAIL_QUEUE_SIZE", 64),
		MailSendRate:  getEnvIntOrDefault("MAIL_SEND_RATE", 1),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accept duration strings (e.g. "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

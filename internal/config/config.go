package config

import (
	"crypto/rsa"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

const AppName = "marketplace-backend"

type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	RealtimePort     string
	AppUrl           string

	// Database
	MongoURL    string
	MongoDBName string

	// Redis (rate limiting)
	RedisURL string

	// Twilio / SendGrid
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromPhone   string
	SendGridAPIKey    string
	SendgridFromEmail string
	SendgridSandbox   bool

	// Auth (validation only; token issuance lives in the auth service)
	RSAPublicKey *rsa.PublicKey

	// OTP / staging
	VerificationCodeLength int
	VerificationCodeExpiry time.Duration

	// Rate limiting
	RateLimitWindow           time.Duration
	GlobalEmailLimitPerHour   int
	EmailLimitPerIPPerHour    int
	EmailLimitPerEmailPerHour int
}

func LoadConfig() *Config {
	cfg := &Config{
		OrganizationName: getEnv("ORGANIZATION_NAME", "Worklane"),
		AppName:          AppName,
		AppPort:          getEnv("APP_PORT", "8080"),
		RealtimePort:     getEnv("REALTIME_PORT", "8081"),
		AppUrl:           getEnv("APP_URL", "http://localhost:3000"),

		MongoURL:    mustGetEnv("MONGO_URL"),
		MongoDBName: getEnv("MONGO_DB_NAME", "marketplace"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:   os.Getenv("TWILIO_FROM_PHONE"),
		SendGridAPIKey:    mustGetEnv("SENDGRID_API_KEY"),
		SendgridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "no-reply@worklane.app"),
		SendgridSandbox:   getEnvBool("SENDGRID_SANDBOX_MODE", false),

		VerificationCodeLength: getEnvInt("VERIFICATION_CODE_LENGTH", 6),
		VerificationCodeExpiry: getEnvDuration("VERIFICATION_CODE_EXPIRY", 10*time.Minute),

		RateLimitWindow:           getEnvDuration("RATE_LIMIT_WINDOW", time.Hour),
		GlobalEmailLimitPerHour:   getEnvInt("GLOBAL_EMAIL_LIMIT_PER_HOUR", 1000),
		EmailLimitPerIPPerHour:    getEnvInt("EMAIL_LIMIT_PER_IP_PER_HOUR", 10),
		EmailLimitPerEmailPerHour: getEnvInt("EMAIL_LIMIT_PER_EMAIL_PER_HOUR", 5),
	}

	pubPEM := mustGetEnv("JWT_RSA_PUBLIC_KEY")
	pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pubPEM))
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse JWT_RSA_PUBLIC_KEY PEM")
	}
	cfg.RSAPublicKey = pub

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustGetEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Logger.Fatalf("Required env var %s is not set", key)
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to %s", key, v, fallback)
		return fallback
	}
	return d
}

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Mail transport selection values
const (
	TransportSMTP = "smtp"
	TransportAPI  = "api"
)

type Config struct {
	Port        string
	FrontendURL string
	// Mail transport: "smtp" (authenticated relay) or "api" (Brevo HTTP API)
	MailTransport string
	// SMTP Configuration (Brevo relay by default)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPSecure   bool // Implicit SSL instead of STARTTLS
	// Transactional API Configuration
	BrevoAPIKey string
	BrevoAPIURL string
	// Sender/recipient addresses
	MailFrom     string // Must be a verified sender at the provider
	MailFromName string
	MailTo       string
	// Career form: whether a resume attachment is mandatory
	ResumeRequired bool
	// Fire-and-forget queue depth for the loan application endpoint
	MailQueueSize int
	// Redis/Upstash Configuration (rate limit backend)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitSubmitThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Mail transport selection
		MailTransport: strings.ToLower(getEnv("MAIL_TRANSPORT", TransportSMTP)),
		// SMTP Configuration
		SMTPHost:     getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPSecure:   getEnvBool("SMTP_SECURE", false),
		// Transactional API Configuration
		BrevoAPIKey: getEnv("BREVO_API_KEY", ""),
		BrevoAPIURL: strings.TrimRight(getEnv("BREVO_API_URL", "https://api.brevo.com"), "/"),
		// Addresses
		MailFrom:     getEnv("MAIL_FROM", "noreply@credify.in"),
		MailFromName: getEnv("MAIL_FROM_NAME", "Credify Website"),
		MailTo:       getEnv("MAIL_TO", "info@credify.in"),
		// Career form behaviour
		ResumeRequired: getEnvBool("RESUME_REQUIRED", false),
		MailQueueSize:  getEnvInt("MAIL_QUEUE_SIZE", 64),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		RateLimitSubmitThreshold: getEnvInt("RATE_LIMIT_SUBMIT_THRESHOLD", 10),  // 10 form submissions per window
	}

	if cfg.MailTransport != TransportSMTP && cfg.MailTransport != TransportAPI {
		cfg.MailTransport = TransportSMTP
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

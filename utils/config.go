package utils

import (
	"log"
	"os"
	"strconv"
)

// Config carries everything the process reads from the environment. It is
// loaded once at startup so no handler reaches for os.Getenv directly.
type Config struct {
	Port           string
	DBPath         string
	JWTSecret      string
	AllowedOrigins string
	WatiURL        string
	WatiAPIKey     string
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	SMTPSender     string
}

var Cfg Config

// LoadConfig reads the process configuration from the environment. The JWT
// signing secret is mandatory: sessions must survive restarts, so it is never
// generated on the fly.
func LoadConfig() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DBPath:         getEnv("RENTAL_DB", "rental_management.db"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		WatiURL:        os.Getenv("WATI_URL"),
		WatiAPIKey:     os.Getenv("WATI_API_KEY"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       getEnvInt("SMTP_PORT", 465),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		SMTPSender:     os.Getenv("SMTP_SENDER"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set in the environment")
	}

	Cfg = cfg
	JwtSecret = []byte(cfg.JWTSecret)

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %v; using %d", key, err, fallback)
		return fallback
	}
	return n
}

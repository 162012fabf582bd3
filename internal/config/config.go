package config

import (
	"os"
	"strconv"
)

// Config carries everything read from the environment. Every field has a
// development default so the binary runs with no configuration at all.
type Config struct {
	Port         string
	DatabasePath string

	// SecretKey is the session signing value. The JSON surface has no
	// sessions today; it is loaded for parity with deployments that set it.
	SecretKey string

	NewsFeedURL string

	// SMTP is optional; with an empty host the generated emails are only
	// returned, never delivered.
	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	CORSAllowedOrigins []string
}

func Load() Config {
	return Config{
		Port:         getenv("PORT", "8080"),
		DatabasePath: getenv("DATABASE_PATH", "stormcommand.db"),
		SecretKey:    getenv("SECRET_KEY", "storm-command-secret-2024"),
		NewsFeedURL:  getenv("NEWS_FEED_URL", "https://www.nhc.noaa.gov/xml/ATCF_ATL.xml"),
		MailHost:     os.Getenv("MAIL_HOST"),
		MailPort:     getenvInt("MAIL_PORT", 587),
		MailUser:     os.Getenv("MAIL_USER"),
		MailPass:     os.Getenv("MAIL_PASS"),
		MailFrom:     getenv("MAIL_FROM", "outreach@stormcommand.com"),
		CORSAllowedOrigins: []string{
			getenv("CORS_ALLOWED_ORIGIN", "*"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

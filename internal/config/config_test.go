package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "stormcommand.db", cfg.DatabasePath)
	assert.Equal(t, "storm-command-secret-2024", cfg.SecretKey)
	assert.Equal(t, "https://www.nhc.noaa.gov/xml/ATCF_ATL.xml", cfg.NewsFeedURL)
	assert.Empty(t, cfg.MailHost)
	assert.Equal(t, 587, cfg.MailPort)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/leads.db")
	t.Setenv("SECRET_KEY", "prod-secret")
	t.Setenv("MAIL_PORT", "2525")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/leads.db", cfg.DatabasePath)
	assert.Equal(t, "prod-secret", cfg.SecretKey)
	assert.Equal(t, 2525, cfg.MailPort)
}

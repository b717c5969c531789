package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "DB_PATH", "LOG_LEVEL", "DEFAULT_LANGUAGE", "AGENT_NAME", "SHORTCUT_NAME", "WHATSAPP_ENABLED", "WHATSAPP_SESSION_DB"} {
		unsetenv(t, key)
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "leadcomposer.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "es", cfg.DefaultLanguage)
	assert.Empty(t, cfg.AgentName)
	assert.Equal(t, "Enviar Leads WhatsApp", cfg.ShortcutName)
	assert.False(t, cfg.WhatsAppEnabled)
	assert.False(t, cfg.EnvFileLoaded)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", ":9090")
	t.Setenv("DEFAULT_LANGUAGE", " CA ")
	t.Setenv("AGENT_NAME", "  Marta ")
	t.Setenv("WHATSAPP_ENABLED", "true")
	t.Setenv("SHORTCUT_NAME", "Leads")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "ca", cfg.DefaultLanguage)
	assert.Equal(t, "Marta", cfg.AgentName)
	assert.True(t, cfg.WhatsAppEnabled)
	assert.Equal(t, "Leads", cfg.ShortcutName)
}

func TestGetEnvAsBoolInvalidFallsBack(t *testing.T) {
	t.Setenv("WHATSAPP_ENABLED", "maybe")
	assert.True(t, getEnvAsBool("WHATSAPP_ENABLED", true))
	assert.False(t, getEnvAsBool("WHATSAPP_ENABLED", false))
}

// unsetenv removes key for the duration of the test; t.Setenv restores it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

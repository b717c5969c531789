package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port              string
	DBPath            string
	LogLevel          string
	DefaultLanguage   string
	AgentName         string
	ShortcutName      string
	WhatsAppEnabled   bool
	WhatsAppSessionDB string

	// EnvFileLoaded is false when no .env file was found; callers may log it.
	EnvFileLoaded bool
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() *Config {
	loaded := godotenv.Load() == nil

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DBPath:            getEnv("DB_PATH", "leadcomposer.db"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DefaultLanguage:   strings.ToLower(strings.TrimSpace(getEnv("DEFAULT_LANGUAGE", "es"))),
		AgentName:         strings.TrimSpace(getEnv("AGENT_NAME", "")),
		ShortcutName:      getEnv("SHORTCUT_NAME", "Enviar Leads WhatsApp"),
		WhatsAppEnabled:   getEnvAsBool("WHATSAPP_ENABLED", false),
		WhatsAppSessionDB: getEnv("WHATSAPP_SESSION_DB", "whatsapp_session.db"),
		EnvFileLoaded:     loaded,
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

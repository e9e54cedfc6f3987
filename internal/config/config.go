// Package config loads the backend configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds everything the backend reads from the environment.
type Config struct {
	// HTTP server
	Port             string
	CORSAllowOrigins string
	EnablePprof      bool

	// Database. The default keeps the ledger in memory for the lifetime
	// of the process.
	DBDSN string

	// External APIs
	NewsAPIKey   string
	OpenAIAPIKey string
}

// Load reads the configuration. A .env file in the working directory is
// loaded first if present; real environment variables win over it.
func Load() *Config {
	err := godotenv.Load()
	if err == nil {
		log.Debug().Msg("loaded configuration from .env")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", ""),
		EnablePprof:      getEnv("ENABLE_PPROF", "") == "true",

		DBDSN: getEnv("DB_DSN", ":memory:"),

		NewsAPIKey:   getEnv("NEWS_API_KEY", ""),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

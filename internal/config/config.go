package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	LogLevel     string
	OpenAIAPIKey string
	OpenAIModel  string
	NatsURL      string
	NatsToken    string
	Timezone     string
}

func Load() Config {
	return Config{
		Port:         envInt("RAPPEL_PORT", 8680),
		DatabaseURL:  envStr("DATABASE_URL", ""),
		LogLevel:     envStr("LOG_LEVEL", "info"),
		OpenAIAPIKey: envStr("OPENAI_API_KEY", ""),
		OpenAIModel:  envStr("RAPPEL_MODEL", "gpt-4o-mini"),
		NatsURL:      envStr("NATS_URL", ""),
		NatsToken:    envStr("NATS_TOKEN", ""),
		Timezone:     envStr("RAPPEL_TIMEZONE", "Europe/Paris"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

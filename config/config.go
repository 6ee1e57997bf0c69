package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	LLMProvider string
	LLMAPIKey   string
	LLMModel    string
	MaxFileSize int64
}

func LoadConfig() *Config {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		LLMProvider: getEnv("LLM_PROVIDER", "gemini"),
		LLMAPIKey:   getEnv("LLM_API_KEY", ""),
		LLMModel:    getEnv("LLM_MODEL", ""),
		MaxFileSize: 10 * 1024 * 1024, // 10 MB
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

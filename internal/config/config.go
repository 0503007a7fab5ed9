package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Twilio TwilioConfig
	Gemini GeminiConfig
	Sheets SheetsConfig
	Chat   ChatConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type SheetsConfig struct {
	SheetID         string
	CredentialsFile string
	CredentialsJSON string
}

type ChatConfig struct {
	SessionTTL time.Duration
	MaxTurns   int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Twilio: TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GOOGLE_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Sheets: SheetsConfig{
			SheetID:         getEnv("GOOGLE_SHEET_ID", ""),
			CredentialsFile: getEnv("GOOGLE_SHEETS_CREDENTIALS_FILE", "service-account-key.json"),
			CredentialsJSON: getEnv("GOOGLE_SHEETS_CREDENTIALS_JSON", ""),
		},
		Chat: ChatConfig{
			SessionTTL: getEnvAsDuration("CHAT_SESSION_TTL", "30m"),
			MaxTurns:   getEnvAsInt("CHAT_MAX_TURNS", 50),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

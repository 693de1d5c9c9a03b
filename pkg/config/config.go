package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	RateLimitSpec string
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	dbURL := viper.GetString("PGSQL_URL")
	if dbURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	return &Config{
		DatabaseURL:   dbURL,
		Port:          viper.GetString("PORT"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		RateLimitSpec: viper.GetString("RATE_LIMIT"),
	}, nil
}

package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Db_path              string `mapstructure:"DB_PATH"`
	Firebase_credentials string `mapstructure:"FIREBASE_CREDENTIALS"`
	Openlibrary_url      string `mapstructure:"OPENLIBRARY_URL"`
	Covers_url           string `mapstructure:"COVERS_URL"`
	Cors_origins         string `mapstructure:"CORS_ORIGINS"`
	Rate_limit           int    `mapstructure:"RATE_LIMIT"`
}

// Load reads configuration from the given .env file (if present) and the
// process environment, environment taking precedence.
func Load(path string) (*Config, error) {
	godotenv.Load(path)

	v := viper.New()

	v.SetDefault("DB_PATH", "bookclub.db")
	v.SetDefault("FIREBASE_CREDENTIALS", "service-account-private.json")
	v.SetDefault("OPENLIBRARY_URL", "https://openlibrary.org")
	v.SetDefault("COVERS_URL", "https://covers.openlibrary.org")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", 100)

	for _, key := range []string{"DB_PATH", "FIREBASE_CREDENTIALS", "OPENLIBRARY_URL", "COVERS_URL", "CORS_ORIGINS", "RATE_LIMIT"} {
		v.BindEnv(key)
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %v", err)
	}

	return &cfg, nil
}

// Package config loads CLI configuration from config files, environment
// variables and .env files.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the CLI configuration.
type Config struct {
	DatabaseURL string
	Debug       bool
}

// LoadConfig loads configuration from .fluentsql.yaml (cwd, home,
// ~/.config/fluentsql), FLUENTSQL_* environment variables and .env files.
// DATABASE_URL carries the connection string.
func LoadConfig() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName(".fluentsql")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "fluentsql"))

	viper.SetEnvPrefix("FLUENTSQL")
	viper.AutomaticEnv()

	viper.SetDefault("debug", false)

	// Config file is optional.
	_ = viper.ReadInConfig()

	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	// .env.local wins over .env.
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Debug:       viper.GetBool("debug"),
	}
	if url := viper.GetString("database_url"); cfg.DatabaseURL == "" && url != "" {
		cfg.DatabaseURL = url
	}
	return cfg, nil
}

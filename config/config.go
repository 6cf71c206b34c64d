package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server         Server
	Database       Database
	GeminiApiKey   string
	LogDir         string
	BackupDebounce time.Duration
}

type Server struct {
	Port string
}
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("LOG_DIR", "logs")
	viper.SetDefault("BACKUP_DEBOUNCE_MS", 2000)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	// Fallback key when no key has been saved in application settings.
	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	config.LogDir = viper.GetString("LOG_DIR")
	config.BackupDebounce = time.Duration(viper.GetInt("BACKUP_DEBOUNCE_MS")) * time.Millisecond

	log.Info().
		Str("server_port", config.Server.Port).
		Str("database_host", config.Database.Host).
		Str("database_name", config.Database.Name).
		Bool("gemini_key_present", config.GeminiApiKey != "").
		Msg("Config loaded")
	return &config, nil
}

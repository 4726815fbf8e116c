package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Sources
		Export
		Log
	}

	Database struct {
		Path string
	}
	Sources struct {
		UsersPath string // CSV with username,password rows
		BooksPath string // JSON list of {title, author, publisher, year}
	}
	Export struct {
		Path string
	}
	Log struct {
		Level string // logrus level name: debug, info, warn, error
	}
)

// NewConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables win.
func NewConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("users_source_path", DefaultUsersSourcePath)
	v.SetDefault("books_source_path", DefaultBooksSourcePath)
	v.SetDefault("export_path", DefaultExportPath)
	v.SetDefault("log_level", "info")

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Sources: Sources{
			UsersPath: v.GetString("USERS_SOURCE_PATH"),
			BooksPath: v.GetString("BOOKS_SOURCE_PATH"),
		},
		Export: Export{
			Path: v.GetString("EXPORT_PATH"),
		},
		Log: Log{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}

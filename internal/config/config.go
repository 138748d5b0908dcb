// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string `json:"server_address"`

	// StorePath is the JSON file used by the default storage backend.
	StorePath string `json:"store_path"`

	// DatabaseDSN selects the PostgreSQL backend when set.
	DatabaseDSN string `json:"database_dsn"`

	// SQLitePath selects the SQLite backend when set.
	SQLitePath string `json:"sqlite_path"`

	// RedisURL selects the Redis backend when set.
	RedisURL string `json:"redis_url"`

	// WhatsAppNumber receives quote-request hand-offs.
	WhatsAppNumber string `json:"whatsapp_number"`

	// LogLevel is the zap level name.
	LogLevel string `json:"log_level"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.StorePath, "s", "sitekeeper.json", "path to file store")
	flag.StringVar(&options.DatabaseDSN, "d", "", "postgres dsn (overrides file store)")
	flag.StringVar(&options.SQLitePath, "q", "", "sqlite path (overrides file store)")
	flag.StringVar(&options.RedisURL, "r", "", "redis url (overrides file store)")
	flag.StringVar(&options.WhatsAppNumber, "w", "", "whatsapp number for quote requests")
	flag.StringVar(&options.LogLevel, "l", "Info", "log level")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}
	if storePath := os.Getenv("STORE_PATH"); storePath != "" {
		options.StorePath = storePath
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if sqlitePath := os.Getenv("SQLITE_PATH"); sqlitePath != "" {
		options.SQLitePath = sqlitePath
	}
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		options.RedisURL = redisURL
	}
	if number := os.Getenv("WHATSAPP_NUMBER"); number != "" {
		options.WhatsAppNumber = number
	}

	return options
}

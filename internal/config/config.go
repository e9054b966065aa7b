// Package config holds application configuration read from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// DataDir is where the file-backed store keeps its keys.
	DataDir string `env:"OTD_DATA_DIR" envDefault:"~/.local/share/onthisday"`
	// DBPath, when set, switches persistence to a sqlite store at this path.
	DBPath string `env:"OTD_DB_PATH"`
	// ReadingListDB is the optional reading-list database for saved-page
	// annotation.
	ReadingListDB string `env:"OTD_READING_LIST_DB"`
	// FeedBaseURL is the Wikipedia REST API root.
	FeedBaseURL string `env:"OTD_FEED_BASE_URL" envDefault:"https://en.wikipedia.org/api/rest_v1"`
	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string `env:"OTD_LOG_LEVEL" envDefault:"INFO"`
	// CacheTTL is how long fetched event lists stay cached.
	CacheTTL time.Duration `env:"OTD_CACHE_TTL" envDefault:"24h"`
}

// Load reads configuration from the environment, first folding in a .env
// file if one is present.
func Load() (*Config, error) {
	// A missing .env file is the normal case, not an error.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

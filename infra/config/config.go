package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application-level configuration.
type Config struct {
	APIBaseURL  string // Backend base URL including the /api prefix
	MaxResults  int    // Page size for root comment fetches
	HistoryPath string // Path to the URL history JSON file
	LogPath     string // Debug log file; empty disables logging
}

// Load reads configuration from the environment and an optional YAML file.
//
//	COMMENT_UMPIRE_API_BASE_URL  — backend URL (default: http://localhost:8000/api)
//	COMMENT_UMPIRE_MAX_RESULTS   — comments per page (default: 100)
//	COMMENT_UMPIRE_HISTORY_PATH  — URL history file (default: ~/.config/comment-umpire/history.json)
//	COMMENT_UMPIRE_LOG_PATH      — debug log file (default: none)
//
// A config file at ~/.config/comment-umpire/config.yaml may set the same
// keys in snake_case; environment variables win.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("COMMENT_UMPIRE")
	v.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "comment-umpire")

	v.SetDefault("api_base_url", "http://localhost:8000/api")
	v.SetDefault("max_results", 100)
	v.SetDefault("history_path", filepath.Join(configDir, "history.json"))
	v.SetDefault("log_path", "")

	v.AddConfigPath(configDir)
	v.SetConfigType("yaml")
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	base := strings.TrimRight(v.GetString("api_base_url"), "/")
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid api_base_url: must be an absolute URL")
	}
	switch parsed.Scheme {
	case "http", "https":
	default:
		return Config{}, fmt.Errorf("invalid api_base_url: scheme must be http or https")
	}

	maxResults := v.GetInt("max_results")
	if maxResults < 1 || maxResults > 100 {
		return Config{}, fmt.Errorf("invalid max_results: must be between 1 and 100")
	}

	return Config{
		APIBaseURL:  base,
		MaxResults:  maxResults,
		HistoryPath: v.GetString("history_path"),
		LogPath:     v.GetString("log_path"),
	}, nil
}

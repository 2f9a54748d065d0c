// Package config reads landing settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/justcloud/landing/internal/blog"
	"github.com/justcloud/landing/internal/display"
	"github.com/justcloud/landing/internal/page"
	"github.com/justcloud/landing/internal/youtube"
)

const envPrefix = "LANDING_"

// Config holds every tunable of the widgets and the CLI around them.
type Config struct {
	FeedURL          string
	OEmbedURL        string
	Locale           string
	FallbackTitle    string
	PlaceholderImage string
	ReadMoreLabel    string
	// TitleConcurrency above 1 fans title lookups out; 1 keeps them sequential.
	TitleConcurrency int
	// TitleRPS throttles oEmbed requests; 0 disables throttling.
	TitleRPS float64
	// HTTPTimeout bounds each outbound request; 0 means no timeout.
	HTTPTimeout time.Duration
	LogLevel    string
	LogFormat   string
}

// Default returns the landing page defaults.
func Default() Config {
	return Config{
		FeedURL:          blog.DefaultFeedURL,
		OEmbedURL:        youtube.DefaultEndpoint,
		Locale:           display.DefaultLocale,
		FallbackTitle:    page.DefaultFallbackTitle,
		PlaceholderImage: display.DefaultPlaceholderImage,
		ReadMoreLabel:    display.DefaultReadMoreLabel,
		TitleConcurrency: 1,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables already set, then builds a Config from LANDING_*
// variables on top of the defaults. An empty envFile skips the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	setString(getenv, "FEED_URL", &cfg.FeedURL)
	setString(getenv, "OEMBED_URL", &cfg.OEmbedURL)
	setString(getenv, "LOCALE", &cfg.Locale)
	setString(getenv, "FALLBACK_TITLE", &cfg.FallbackTitle)
	setString(getenv, "PLACEHOLDER_IMAGE", &cfg.PlaceholderImage)
	setString(getenv, "READ_MORE_LABEL", &cfg.ReadMoreLabel)
	setString(getenv, "LOG_LEVEL", &cfg.LogLevel)
	setString(getenv, "LOG_FORMAT", &cfg.LogFormat)

	if v := getenv(envPrefix + "TITLE_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid %sTITLE_CONCURRENCY %q: must be a positive integer", envPrefix, v)
		}
		cfg.TitleConcurrency = n
	}

	if v := getenv(envPrefix + "TITLE_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps < 0 {
			return Config{}, fmt.Errorf("invalid %sTITLE_RPS %q: must be a non-negative number", envPrefix, v)
		}
		cfg.TitleRPS = rps
	}

	if v := getenv(envPrefix + "HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid %sHTTP_TIMEOUT %q: must be a duration such as 10s", envPrefix, v)
		}
		cfg.HTTPTimeout = d
	}

	return cfg, nil
}

func setString(getenv func(string) string, key string, dst *string) {
	if v := getenv(envPrefix + key); v != "" {
		*dst = v
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg != Default() {
		t.Errorf("empty environment should yield defaults, got %+v", cfg)
	}
	if cfg.FeedURL != "https://blog.justcloud.pl/rss.xml" {
		t.Errorf("unexpected default feed URL %q", cfg.FeedURL)
	}
	if cfg.TitleConcurrency != 1 {
		t.Errorf("title lookups should be sequential by default, got %d", cfg.TitleConcurrency)
	}
	if cfg.HTTPTimeout != 0 {
		t.Errorf("no timeout by default, got %v", cfg.HTTPTimeout)
	}
	if cfg.FallbackTitle != "Prezentacja" {
		t.Errorf("unexpected fallback title %q", cfg.FallbackTitle)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"LANDING_FEED_URL":          "http://localhost/feed.xml",
		"LANDING_OEMBED_URL":        "http://localhost/oembed",
		"LANDING_LOCALE":            "en-US",
		"LANDING_FALLBACK_TITLE":    "Talk",
		"LANDING_PLACEHOLDER_IMAGE": "img/x.png",
		"LANDING_READ_MORE_LABEL":   "Read more",
		"LANDING_TITLE_CONCURRENCY": "4",
		"LANDING_TITLE_RPS":         "2.5",
		"LANDING_HTTP_TIMEOUT":      "15s",
		"LANDING_LOG_LEVEL":         "debug",
		"LANDING_LOG_FORMAT":        "json",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Config{
		FeedURL:          "http://localhost/feed.xml",
		OEmbedURL:        "http://localhost/oembed",
		Locale:           "en-US",
		FallbackTitle:    "Talk",
		PlaceholderImage: "img/x.png",
		ReadMoreLabel:    "Read more",
		TitleConcurrency: 4,
		TitleRPS:         2.5,
		HTTPTimeout:      15 * time.Second,
		LogLevel:         "debug",
		LogFormat:        "json",
	}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestFromEnv_RejectsInvalidNumbers(t *testing.T) {
	testCases := []struct {
		key, value string
	}{
		{"LANDING_TITLE_CONCURRENCY", "zero"},
		{"LANDING_TITLE_CONCURRENCY", "0"},
		{"LANDING_TITLE_RPS", "-1"},
		{"LANDING_TITLE_RPS", "fast"},
		{"LANDING_HTTP_TIMEOUT", "ten seconds"},
	}

	for _, tc := range testCases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			_, err := FromEnv(envMap(map[string]string{tc.key: tc.value}))
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoad_ReadsDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LANDING_LOCALE=de-DE\nLANDING_FALLBACK_TITLE=Vortrag\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// registers cleanup, then leaves the variable unset for godotenv
	t.Setenv("LANDING_LOCALE", "")
	_ = os.Unsetenv("LANDING_LOCALE")
	t.Setenv("LANDING_FALLBACK_TITLE", "already set")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Locale != "de-DE" {
		t.Errorf("expected locale from .env, got %q", cfg.Locale)
	}
	if cfg.FallbackTitle != "already set" {
		t.Errorf("environment should win over .env, got %q", cfg.FallbackTitle)
	}
}

func TestLoad_MissingDotEnvIsNotAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

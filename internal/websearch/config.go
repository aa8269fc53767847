package websearch

import (
	"os"
	"time"
)

// Config holds web search provider configuration.
type Config struct {
	TavilyAPIKey string
	ExaAPIKey    string
	SerperAPIKey string

	// MaxResults caps how many results one query returns. Default: 5.
	MaxResults int

	// Timeout bounds a single search HTTP request. Default: 10s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults and no credentials.
func DefaultConfig() Config {
	return Config{
		MaxResults: 5,
		Timeout:    10 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := os.Getenv("MATHROUTE_TAVILY_API_KEY"); k != "" {
		cfg.TavilyAPIKey = k
	}
	if k := os.Getenv("MATHROUTE_EXA_API_KEY"); k != "" {
		cfg.ExaAPIKey = k
	}
	if k := os.Getenv("MATHROUTE_SERPER_API_KEY"); k != "" {
		cfg.SerperAPIKey = k
	}

	return cfg
}

// DiscoverConfig probes the standard API key env vars in priority order
// (Tavily → Exa → Serper) and returns a Config holding whichever keys are
// found. The second return is false when no key is set.
func DiscoverConfig() (Config, bool) {
	cfg := ConfigFromEnv()

	if cfg.TavilyAPIKey == "" {
		cfg.TavilyAPIKey = os.Getenv("TAVILY_API_KEY")
	}
	if cfg.ExaAPIKey == "" {
		cfg.ExaAPIKey = os.Getenv("EXA_API_KEY")
	}
	if cfg.SerperAPIKey == "" {
		cfg.SerperAPIKey = os.Getenv("SERPER_API_KEY")
	}

	found := cfg.TavilyAPIKey != "" || cfg.ExaAPIKey != "" || cfg.SerperAPIKey != ""
	return cfg, found
}

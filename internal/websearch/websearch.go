// Package websearch is the last-resort solving path: it queries an external
// search API for mathematical content and synthesizes a sourced guidance
// response from the snippets. Exactly one provider is active per client,
// chosen by credential availability in Tavily → Exa → Serper order; without
// credentials a deterministic placeholder keeps the pipeline demoable.
package websearch

import (
	"context"
	"net/http"

	"github.com/abhisek/mathroute/internal/logger"
)

// Result is one search hit.
type Result struct {
	Title     string
	Content   string
	URL       string
	Relevance float64
}

// Provider answers math content queries against one search backend.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]Result, error)
}

// Client routes queries to the configured provider and falls back to
// placeholder results when the provider fails.
type Client struct {
	provider    Provider
	placeholder *placeholderProvider
	log         *logger.Logger

	// Placeholder is true when no search credential was configured and
	// every result is synthetic.
	Placeholder bool
}

// NewClient picks the provider for the first configured credential. A nil
// log disables output.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultConfig().MaxResults
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if log == nil {
		log = logger.Nop()
	}
	httpClient := &http.Client{Timeout: cfg.Timeout}

	c := &Client{placeholder: &placeholderProvider{}, log: log}
	switch {
	case cfg.TavilyAPIKey != "":
		c.provider = &tavilyProvider{apiKey: cfg.TavilyAPIKey, maxResults: cfg.MaxResults, http: httpClient}
	case cfg.ExaAPIKey != "":
		c.provider = &exaProvider{apiKey: cfg.ExaAPIKey, maxResults: cfg.MaxResults, http: httpClient}
	case cfg.SerperAPIKey != "":
		c.provider = &serperProvider{apiKey: cfg.SerperAPIKey, maxResults: cfg.MaxResults, http: httpClient}
	default:
		c.provider = c.placeholder
		c.Placeholder = true
	}
	return c
}

// ProviderName reports which backend is active.
func (c *Client) ProviderName() string { return c.provider.Name() }

// Search queries the active provider. Provider failures and empty result
// sets degrade to placeholder results; the error is logged, never surfaced.
// The second return reports whether the results are synthetic.
func (c *Client) Search(ctx context.Context, query string) ([]Result, bool) {
	results, err := c.provider.Search(ctx, query)
	if err != nil {
		c.log.Warn("search provider failed, using placeholder results",
			"provider", c.provider.Name(), "error", err.Error())
	}
	if err != nil || len(results) == 0 {
		results, _ = c.placeholder.Search(ctx, query)
		return results, true
	}
	return results, c.Placeholder
}

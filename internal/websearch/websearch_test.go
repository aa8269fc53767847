package websearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/mathroute/internal/logger"
)

func TestNewClientProviderSelection(t *testing.T) {
	cases := []struct {
		name        string
		cfg         Config
		provider    string
		placeholder bool
	}{
		{"tavily wins", Config{TavilyAPIKey: "t", ExaAPIKey: "e", SerperAPIKey: "s"}, "tavily", false},
		{"exa second", Config{ExaAPIKey: "e", SerperAPIKey: "s"}, "exa", false},
		{"serper third", Config{SerperAPIKey: "s"}, "serper", false},
		{"placeholder without credentials", Config{}, "placeholder", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			client := NewClient(c.cfg, nil)
			if got := client.ProviderName(); got != c.provider {
				t.Fatalf("provider = %q, want %q", got, c.provider)
			}
			if client.Placeholder != c.placeholder {
				t.Fatalf("placeholder = %v, want %v", client.Placeholder, c.placeholder)
			}
		})
	}
}

func TestTavilySearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer key" {
			t.Errorf("authorization = %q", got)
		}
		var req tavilyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if !strings.HasPrefix(req.Query, "mathematics ") || !strings.HasSuffix(req.Query, " step by step solution") {
			t.Errorf("query = %q", req.Query)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"title": "Quadratics", "content": "Solve by factoring", "url": "https://example.org/q", "score": 0.9},
				{"title": "Unscored", "content": "No score field", "url": "https://example.org/u"},
			},
		})
	}))
	defer srv.Close()

	p := &tavilyProvider{apiKey: "key", maxResults: 5, http: srv.Client(), url: srv.URL}
	results, err := p.Search(context.Background(), "solve x^2 = 4")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Relevance != 0.9 || results[1].Relevance != 0.5 {
		t.Fatalf("relevance = %f, %f", results[0].Relevance, results[1].Relevance)
	}
}

func TestSerperSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-API-KEY"); got != "key" {
			t.Errorf("api key header = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"organic": []map[string]any{
				{"title": "Derivatives", "snippet": "Power rule", "link": "https://example.org/d"},
			},
		})
	}))
	defer srv.Close()

	p := &serperProvider{apiKey: "key", maxResults: 5, http: srv.Client(), url: srv.URL}
	results, err := p.Search(context.Background(), "derivative of x^2")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Relevance != serperRelevance {
		t.Fatalf("results = %v", results)
	}
}

func TestSearchFallsBackToPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	core, observed := observer.New(zapcore.WarnLevel)
	client := NewClient(Config{ExaAPIKey: "key"}, logger.FromZap(zap.New(core)))
	client.provider = &exaProvider{apiKey: "key", maxResults: 5, http: srv.Client(), url: srv.URL}

	results, synthetic := client.Search(context.Background(), "solve something hard")
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if !synthetic {
		t.Fatal("degraded results not marked synthetic")
	}
	if !strings.Contains(results[0].Title, "MIT OpenCourseWare") {
		t.Fatalf("title = %q", results[0].Title)
	}

	// The provider failure is logged, not surfaced.
	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["provider"] != "exa" {
		t.Fatalf("logged provider = %v", fields["provider"])
	}
	if msg, ok := fields["error"].(string); !ok || msg == "" {
		t.Fatalf("logged error = %v", fields["error"])
	}
}

func TestSearchHealthyProviderNotSynthetic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"organic": []map[string]any{
				{"title": "Limits", "snippet": "Epsilon delta", "link": "https://example.org/l"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{SerperAPIKey: "key"}, nil)
	client.provider = &serperProvider{apiKey: "key", maxResults: 5, http: srv.Client(), url: srv.URL}

	results, synthetic := client.Search(context.Background(), "limit of 1/x")
	if synthetic {
		t.Fatal("healthy provider results marked synthetic")
	}
	if len(results) != 1 || results[0].Title != "Limits" {
		t.Fatalf("results = %v", results)
	}
}

func TestSynthesizeNoResults(t *testing.T) {
	var s Synthesizer
	sol := s.Synthesize(context.Background(), "obscure topic", nil)
	if err := sol.Validate(); err != nil {
		t.Fatalf("invalid solution: %v", err)
	}
	if len(sol.Sources) != 0 {
		t.Fatalf("sources = %v", sol.Sources)
	}
	if sol.Confidence != fallbackConfidence {
		t.Fatalf("confidence = %f", sol.Confidence)
	}
}

func TestSynthesizeHeuristic(t *testing.T) {
	results := []Result{
		{Title: "A", Content: "How to solve this equation step by step", URL: "https://a", Relevance: 0.85},
		{Title: "B", Content: "More context", URL: "https://b", Relevance: 0.78},
		{Title: "C", Content: "Even more", URL: "https://c", Relevance: 0.5},
		{Title: "D", Content: "Dropped from sources", URL: "https://d", Relevance: 0.4},
	}

	var s Synthesizer
	sol := s.Synthesize(context.Background(), "hard problem", results)
	if err := sol.Validate(); err != nil {
		t.Fatalf("invalid solution: %v", err)
	}
	// "solve" and "equation" appear in the snippets, so the method step
	// is appended.
	if len(sol.Steps) != 3 {
		t.Fatalf("got %d steps", len(sol.Steps))
	}
	if len(sol.Sources) != 3 {
		t.Fatalf("sources = %v", sol.Sources)
	}
	if sol.Confidence != 0.85 {
		t.Fatalf("confidence = %f", sol.Confidence)
	}
}

func TestSynthesizeTruncatesAnalysis(t *testing.T) {
	long := strings.Repeat("necessary background material ", 20)
	results := []Result{{Title: "A", Content: long, URL: "https://a", Relevance: 0.6}}

	var s Synthesizer
	sol := s.Synthesize(context.Background(), "hard problem", results)
	if !strings.HasSuffix(sol.Steps[0].Content, "...") {
		t.Fatalf("analysis step not truncated: %q", sol.Steps[0].Content)
	}
	// Two steps only: the snippets name no concrete procedure.
	if len(sol.Steps) != 2 {
		t.Fatalf("got %d steps", len(sol.Steps))
	}
}

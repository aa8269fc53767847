package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const tavilyURL = "https://api.tavily.com/search"

// academicDomains biases Tavily toward sites with worked math content.
var academicDomains = []string{
	"mathworld.wolfram.com",
	"khanacademy.org",
	"math.stackexchange.com",
	"brilliant.org",
	"mit.edu",
	"stanford.edu",
}

type tavilyProvider struct {
	apiKey     string
	maxResults int
	http       *http.Client
	url        string // defaults to tavilyURL
}

func (*tavilyProvider) Name() string { return "tavily" }

type tavilyRequest struct {
	Query             string   `json:"query"`
	SearchDepth       string   `json:"search_depth"`
	IncludeAnswer     bool     `json:"include_answer"`
	IncludeRawContent bool     `json:"include_raw_content"`
	MaxResults        int      `json:"max_results"`
	IncludeDomains    []string `json:"include_domains"`
}

type tavilyResponse struct {
	Results []struct {
		Title   string  `json:"title"`
		Content string  `json:"content"`
		URL     string  `json:"url"`
		Score   float64 `json:"score"`
	} `json:"results"`
}

func (t *tavilyProvider) Search(ctx context.Context, query string) ([]Result, error) {
	body, err := json.Marshal(tavilyRequest{
		Query:             fmt.Sprintf("mathematics %s step by step solution", query),
		SearchDepth:       "advanced",
		IncludeAnswer:     true,
		IncludeRawContent: true,
		MaxResults:        t.maxResults,
		IncludeDomains:    academicDomains,
	})
	if err != nil {
		return nil, err
	}

	endpoint := t.url
	if endpoint == "" {
		endpoint = tavilyURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily search: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily search: unexpected status %d", resp.StatusCode)
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("tavily search: decode response: %w", err)
	}

	out := make([]Result, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		score := r.Score
		if score == 0 {
			score = 0.5
		}
		out = append(out, Result{Title: r.Title, Content: r.Content, URL: r.URL, Relevance: score})
	}
	return out, nil
}

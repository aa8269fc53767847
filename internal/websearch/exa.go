package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const exaURL = "https://api.exa.ai/search"

type exaProvider struct {
	apiKey     string
	maxResults int
	http       *http.Client
	url        string // defaults to exaURL
}

func (*exaProvider) Name() string { return "exa" }

type exaRequest struct {
	Query         string      `json:"query"`
	Type          string      `json:"type"`
	UseAutoprompt bool        `json:"useAutoprompt"`
	NumResults    int         `json:"numResults"`
	Contents      exaContents `json:"contents"`
}

type exaContents struct {
	Text       bool          `json:"text"`
	Highlights exaHighlights `json:"highlights"`
}

type exaHighlights struct {
	NumSentences int `json:"numSentences"`
}

type exaResponse struct {
	Results []struct {
		Title string  `json:"title"`
		Text  string  `json:"text"`
		URL   string  `json:"url"`
		Score float64 `json:"score"`
	} `json:"results"`
}

func (e *exaProvider) Search(ctx context.Context, query string) ([]Result, error) {
	body, err := json.Marshal(exaRequest{
		Query:         "mathematics " + query,
		Type:          "keyword",
		UseAutoprompt: true,
		NumResults:    e.maxResults,
		Contents:      exaContents{Text: true, Highlights: exaHighlights{NumSentences: 3}},
	})
	if err != nil {
		return nil, err
	}

	endpoint := e.url
	if endpoint == "" {
		endpoint = exaURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exa search: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exa search: unexpected status %d", resp.StatusCode)
	}

	var parsed exaResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("exa search: decode response: %w", err)
	}

	out := make([]Result, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		score := r.Score
		if score == 0 {
			score = 0.5
		}
		out = append(out, Result{Title: r.Title, Content: r.Text, URL: r.URL, Relevance: score})
	}
	return out, nil
}

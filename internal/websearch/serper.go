package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const serperURL = "https://google.serper.dev/search"

// serperRelevance is assigned to every Serper hit: the API reports no score.
const serperRelevance = 0.7

type serperProvider struct {
	apiKey     string
	maxResults int
	http       *http.Client
	url        string // defaults to serperURL
}

func (*serperProvider) Name() string { return "serper" }

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"organic"`
}

func (s *serperProvider) Search(ctx context.Context, query string) ([]Result, error) {
	body, err := json.Marshal(serperRequest{
		Q:   fmt.Sprintf("mathematics %s step by step solution", query),
		Num: s.maxResults,
	})
	if err != nil {
		return nil, err
	}

	endpoint := s.url
	if endpoint == "" {
		endpoint = serperURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", s.apiKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serper search: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serper search: unexpected status %d", resp.StatusCode)
	}

	var parsed serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("serper search: decode response: %w", err)
	}

	out := make([]Result, 0, len(parsed.Organic))
	for _, r := range parsed.Organic {
		out = append(out, Result{Title: r.Title, Content: r.Snippet, URL: r.Link, Relevance: serperRelevance})
	}
	return out, nil
}

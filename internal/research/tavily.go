// Package research looks hackathons up on the web for queries that are
// names rather than URLs.
package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"whattohack-api/internal/scrape"
)

const defaultEndpoint = "https://api.tavily.com/search"

// TavilyRequest describes the request body sent to the Tavily API
type TavilyRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	IncludeAnswer bool   `json:"include_answer"`
	MaxResults    int    `json:"max_results"`
}

// TavilyResponse describes the part of the Tavily answer we read
type TavilyResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Tavily searches the web for hackathon details.
type Tavily struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewTavily(apiKey string, client *http.Client) *Tavily {
	if client == nil {
		client = http.DefaultClient
	}
	return &Tavily{apiKey: apiKey, endpoint: defaultEndpoint, client: client}
}

// WithEndpoint points the client at another search URL.
func (t *Tavily) WithEndpoint(endpoint string) *Tavily {
	t.endpoint = endpoint
	return t
}

// Gather returns numbered search snippets for query. URL queries are left
// to the page reader and return "".
func (t *Tavily) Gather(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" || scrape.IsURL(query) {
		return "", nil
	}

	body, err := json.Marshal(TavilyRequest{
		APIKey:      t.apiKey,
		Query:       query + " hackathon sponsors judges prizes",
		SearchDepth: "basic",
		MaxResults:  3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal Tavily request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach Tavily API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("tavily returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out TavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode Tavily response: %w", err)
	}

	var b strings.Builder
	for i, r := range out.Results {
		fmt.Fprintf(&b, "--- RESULT %d: %s (%s) ---\n%s\n", i+1, r.Title, r.URL, r.Content)
	}
	slog.Debug("Web search finished", "query", query, "results", len(out.Results))
	return strings.TrimSpace(b.String()), nil
}

// Package remote implements a search provider that forwards broadcasts to
// an HTTP skill endpoint.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
)

// Provider queries one remote skill over HTTP.
type Provider struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a remote provider for the given endpoint.
func New(name, baseURL, apiKey string) *Provider {
	return &Provider{
		name:       name,
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ID returns the provider identifier used in result diagnostics.
func (p *Provider) ID() string {
	return p.name
}

// searchRequest is the wire request for a search broadcast.
type searchRequest struct {
	Phrase    string          `json:"phrase"`
	MediaType media.MediaType `json:"media_type"`
}

// searchResponse is the wire response: a batch of candidate results.
type searchResponse struct {
	Results []media.Result `json:"results"`
}

// Search forwards the broadcast to the skill endpoint and returns its
// result batch.
func (p *Provider) Search(ctx context.Context, phrase string, mediaType media.MediaType) ([]media.Result, error) {
	body := searchRequest{Phrase: phrase, MediaType: mediaType}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/search", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	p.setHeaders(req)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("skill returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	// Results keep the responding skill accountable even if it mislabels
	// itself on the wire.
	for i := range result.Results {
		if result.Results[i].ProviderID == "" {
			result.Results[i].ProviderID = p.name
		}
	}

	return result.Results, nil
}

// setHeaders sets common headers for API requests.
func (p *Provider) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("X-API-Key", p.apiKey)
	}
}

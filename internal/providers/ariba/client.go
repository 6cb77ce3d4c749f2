package ariba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sandevgo/eventdash/internal/config"
	"github.com/sandevgo/eventdash/internal/core"
)

// Client performs authenticated reads against the Ariba sourcing REST
// API. All calls are GETs; responses are passed through untouched.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	realm   string
}

func NewClient(cfg *config.AribaConfig) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		realm:   cfg.Realm,
	}
}

func (c *Client) Get(ctx context.Context, endpoint, token string) (core.Resource, error) {
	target := fmt.Sprintf("%s/%s?realm=%s", c.baseURL, endpoint, url.QueryEscape(c.realm))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", core.AppUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &core.UpstreamError{Status: resp.StatusCode, Body: string(data)}
	}

	var resource core.Resource
	if err := json.Unmarshal(data, &resource); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return resource, nil
}

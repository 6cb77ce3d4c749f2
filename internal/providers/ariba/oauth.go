package ariba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sandevgo/eventdash/internal/config"
	"github.com/sandevgo/eventdash/internal/core"
)

// TokenClient acquires short-lived bearer tokens from the Ariba OAuth
// endpoint via the client-credentials grant. Tokens are not cached;
// every composition run asks for a fresh one.
type TokenClient struct {
	client       *http.Client
	oauthURL     string
	clientID     string
	clientSecret string
}

func NewTokenClient(cfg *config.AribaConfig) *TokenClient {
	return &TokenClient{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		oauthURL:     cfg.OAuthURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
	}
}

func (t *TokenClient) AccessToken(ctx context.Context) (string, error) {
	body := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.oauthURL, body)
	if err != nil {
		return "", &core.AuthError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.SetBasicAuth(t.clientID, t.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", &core.AuthError{Err: fmt.Errorf("request: %w", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &core.AuthError{Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &core.AuthError{Err: fmt.Errorf("http %d: %s", resp.StatusCode, string(data))}
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", &core.AuthError{Err: fmt.Errorf("decode: %w", err)}
	}
	if result.AccessToken == "" {
		return "", &core.AuthError{Err: fmt.Errorf("no access_token in response: %s", string(data))}
	}
	return result.AccessToken, nil
}

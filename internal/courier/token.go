// Package courier implements the client for the external courier-quote API
// (a Parcel2Go-style OAuth2 + quotes contract). The API is treated as a
// black box: any shape mismatch or transport failure surfaces as an error
// and the caller degrades to static pricing.
package courier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// accessToken is the cached credential with its refresh deadline.
type accessToken struct {
	value     string
	expiresAt time.Time
}

// tokenCache holds the shared access token. Reads are lock-free; refresh is
// serialized behind a mutex and replaces the value atomically, so concurrent
// requests can keep using the previous token while one request refreshes.
type tokenCache struct {
	token atomic.Value // holds accessToken
	mu    sync.Mutex
}

// get returns the cached token if it is still valid.
func (c *tokenCache) get(now time.Time) (string, bool) {
	if v := c.token.Load(); v != nil {
		if tok, ok := v.(accessToken); ok && now.Before(tok.expiresAt) {
			return tok.value, true
		}
	}
	return "", false
}

// set stores a fresh token.
func (c *tokenCache) set(value string, expiresAt time.Time) {
	c.token.Store(accessToken{value: value, expiresAt: expiresAt})
}

// tokenResponse is the OAuth2 client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// getAccessToken returns a valid token, refreshing it when expired. The
// expiry is shortened by the configured safety margin so a token is never
// used right at its deadline.
func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	now := time.Now()
	if tok, ok := c.tokens.get(now); ok {
		return tok, nil
	}

	c.tokens.mu.Lock()
	defer c.tokens.mu.Unlock()

	// Another request may have refreshed while we waited for the lock.
	if tok, ok := c.tokens.get(time.Now()); ok {
		return tok, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.AuthURL+"/auth/connect/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request access token: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	lifetime := time.Duration(tr.ExpiresIn)*time.Second - c.cfg.TokenExpirySafety
	if lifetime < 0 {
		lifetime = 0
	}
	c.tokens.set(tr.AccessToken, time.Now().Add(lifetime))

	return tr.AccessToken, nil
}

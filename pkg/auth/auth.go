// Package auth supplies bearer tokens to the gateway. Tokens come from
// the environment or from a cached OAuth credential refreshed via the
// refresh-token grant; the rest of the program never inspects them.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"tableflip.dev/redline/pkg/store"
)

// EnvToken names the environment variable that short-circuits the
// credential cache with a literal bearer token.
const EnvToken = "REDLINE_TOKEN"

// Provider supplies a bearer token on demand.
type Provider interface {
	Token(ctx context.Context) (string, error)
}

// Static is a fixed token.
type Static string

func (s Static) Token(context.Context) (string, error) { return string(s), nil }

// FromConfig builds the provider for one invocation: the environment
// token when set, otherwise the cached credential.
func FromConfig(cfg store.Config, creds *store.Credentials) (Provider, error) {
	if token := os.Getenv(EnvToken); token != "" {
		return Static(token), nil
	}
	return &Cached{
		Creds:        creds,
		TokenURL:     cfg.TokenURL(),
		ClientID:     cfg.ClientID(),
		ClientSecret: cfg.ClientSecret(),
	}, nil
}

// Cached serves the cached access token, renewing it through the
// refresh-token grant when it has expired.
type Cached struct {
	Creds        *store.Credentials
	TokenURL     string
	ClientID     string
	ClientSecret string

	// HTTP overrides the client used for the token endpoint.
	HTTP *http.Client
}

func (c *Cached) Token(ctx context.Context) (string, error) {
	rec, err := c.Creds.Load()
	if err != nil {
		if errors.Is(err, store.ErrNoCredential) {
			return "", fmt.Errorf("no credential: set %s or cache one", EnvToken)
		}
		return "", err
	}
	if !rec.Expired() {
		return rec.AccessToken, nil
	}
	if rec.RefreshToken == "" {
		return "", fmt.Errorf("cached token expired and no refresh token is stored; re-authenticate")
	}
	rec, err = c.refresh(ctx, rec)
	if err != nil {
		return "", err
	}
	if err := c.Creds.Save(rec); err != nil {
		return "", err
	}
	return rec.AccessToken, nil
}

func (c *Cached) refresh(ctx context.Context, rec store.Record) (store.Record, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {rec.RefreshToken},
		"client_id":     {c.ClientID},
		"client_secret": {c.ClientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return store.Record{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return store.Record{}, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return store.Record{}, err
	}
	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(body, "error_description").String()
		if msg == "" {
			msg = gjson.GetBytes(body, "error").String()
		}
		return store.Record{}, fmt.Errorf("token refresh failed (%d): %s", resp.StatusCode, msg)
	}

	access := gjson.GetBytes(body, "access_token").String()
	if access == "" {
		return store.Record{}, fmt.Errorf("token endpoint returned no access_token")
	}
	rec.AccessToken = access
	if ttl := gjson.GetBytes(body, "expires_in").Int(); ttl > 0 {
		rec.Expiry = time.Now().Add(time.Duration(ttl) * time.Second)
	}
	if rt := gjson.GetBytes(body, "refresh_token").String(); rt != "" {
		rec.RefreshToken = rt
	}
	return rec, nil
}

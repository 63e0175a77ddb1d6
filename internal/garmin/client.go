// Package garmin is a thin client for the Garmin Connect API.
//
// It authenticates against the Garmin SSO endpoints, persists the session
// to disk so repeated runs skip the login, and exposes one getter per data
// category. Requests are rate limited and wrapped in a circuit breaker
// with exponential backoff.
package garmin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"github.com/catgar/catgar/internal/config"
	"github.com/catgar/catgar/internal/logging"
)

const (
	defaultAPIBase = "https://connectapi.garmin.com"
	defaultSSOBase = "https://sso.garmin.com/sso"

	defaultTimeout = 30 * time.Second

	// sessionSlack re-authenticates slightly before the token expires.
	sessionSlack = 5 * time.Minute
)

// ticketRe extracts the SSO service ticket from the login response body.
var ticketRe = regexp.MustCompile(`ticket=([^"&]+)`)

// session is the persisted authentication state.
type session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	DisplayName string    `json:"display_name"`
}

func (s *session) valid() bool {
	return s != nil && s.AccessToken != "" && time.Until(s.ExpiresAt) > sessionSlack
}

// Client is a Garmin Connect API client.
type Client struct {
	http    *http.Client
	apiBase string
	ssoBase string

	email       string
	password    string
	sessionPath string

	rateLimit time.Duration
	backoff   BackoffConfig
	cb        *gobreaker.CircuitBreaker
	log       *logging.Logger

	mu       sync.Mutex
	sess     *session
	lastCall time.Time
}

// NewClient creates a Garmin Connect client. An existing session file is
// loaded if present; no network access happens until the first call.
func NewClient(cfg *config.Config, log *logging.Logger) *Client {
	jar, _ := cookiejar.New(nil)

	c := &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
			Jar:     jar,
		},
		apiBase:     defaultAPIBase,
		ssoBase:     defaultSSOBase,
		email:       cfg.GarminEmail,
		password:    cfg.GarminPassword,
		sessionPath: cfg.SessionPath,
		rateLimit:   cfg.RateLimit,
		backoff: BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		cb:  newBreaker("garmin-connect"),
		log: log.With("component", "garmin"),
	}

	if err := c.loadSession(); err != nil {
		c.log.Debug("no reusable session", "error", err)
	}

	return c
}

// Authenticate ensures a valid session, logging in through SSO if needed.
func (c *Client) Authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticateLocked(ctx)
}

func (c *Client) authenticateLocked(ctx context.Context) error {
	if c.sess.valid() {
		return nil
	}

	c.log.Info("logging in to Garmin Connect")

	ticket, err := c.ssoLogin(ctx)
	if err != nil {
		return err
	}

	sess, err := c.exchangeTicket(ctx, ticket)
	if err != nil {
		return err
	}
	c.sess = sess

	if err := c.fetchDisplayName(ctx); err != nil {
		return err
	}

	if err := c.saveSession(); err != nil {
		c.log.Warn("failed to persist session", "error", err)
	}

	c.log.Info("Garmin login successful", "display_name", c.sess.DisplayName)
	return nil
}

// ssoLogin posts credentials to the SSO sign-in endpoint and extracts the
// service ticket from the response.
func (c *Client) ssoLogin(ctx context.Context) (string, error) {
	form := url.Values{
		"username": {c.email},
		"password": {c.password},
		"embed":    {"false"},
	}

	signin := c.ssoBase + "/signin?" + url.Values{
		"service": {"https://connect.garmin.com/modern"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, signin, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: sso returned status %d", ErrAuthFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: reading sso response: %v", ErrAuthFailed, err)
	}

	m := ticketRe.FindSubmatch(body)
	if m == nil {
		return "", fmt.Errorf("%w: no service ticket in sso response (check credentials)", ErrAuthFailed)
	}

	return string(m[1]), nil
}

// exchangeTicket trades the SSO ticket for an API bearer token.
func (c *Client) exchangeTicket(ctx context.Context, ticket string) (*session, error) {
	form := url.Values{"ticket": {ticket}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiBase+"/oauth/exchange", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build exchange request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: token exchange: %v", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: token exchange returned status %d", ErrAuthFailed, resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding token response: %v", ErrAuthFailed, err)
	}
	if payload.AccessToken == "" {
		return nil, fmt.Errorf("%w: empty access token", ErrAuthFailed)
	}

	expires := time.Duration(payload.ExpiresIn) * time.Second
	if expires <= 0 {
		expires = time.Hour
	}

	return &session{
		AccessToken: payload.AccessToken,
		ExpiresAt:   time.Now().Add(expires),
	}, nil
}

// fetchDisplayName resolves the profile display name used in wellness URLs.
func (c *Client) fetchDisplayName(ctx context.Context) error {
	var profile struct {
		DisplayName string `json:"displayName"`
	}
	if err := c.getJSONLocked(ctx, "/userprofile-service/socialProfile", nil, &profile); err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}
	if profile.DisplayName == "" {
		return fmt.Errorf("%w: profile has no display name", ErrAuthFailed)
	}
	c.sess.DisplayName = profile.DisplayName
	return nil
}

// displayName returns the cached profile name, authenticating if needed.
func (c *Client) displayName(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.authenticateLocked(ctx); err != nil {
		return "", err
	}
	if c.sess.DisplayName == "" {
		if err := c.fetchDisplayName(ctx); err != nil {
			return "", err
		}
	}
	return c.sess.DisplayName, nil
}

// getJSON performs an authenticated GET against the connect API and decodes
// the JSON response into out. A rejected session triggers one re-login.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.authenticateLocked(ctx); err != nil {
		return err
	}

	err := c.getJSONLocked(ctx, path, query, out)
	if err == nil || !errors.Is(err, ErrUnauthorized) {
		return err
	}

	// Session rejected server-side: discard it and retry once.
	c.sess = nil
	if err := c.authenticateLocked(ctx); err != nil {
		return err
	}
	return c.getJSONLocked(ctx, path, query, out)
}

func (c *Client) getJSONLocked(ctx context.Context, path string, query url.Values, out any) error {
	c.throttleLocked()

	u := c.apiBase + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	buildRequest := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if c.sess != nil {
			req.Header.Set("Authorization", "Bearer "+c.sess.AccessToken)
		}
		return req, nil
	}

	resp, err := doWithResilience(c.http, c.backoff, c.cb, buildRequest)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decoding response: %w", path, err)
	}

	return nil
}

// throttleLocked enforces the configured minimum spacing between API calls.
func (c *Client) throttleLocked() {
	if c.rateLimit <= 0 {
		return
	}
	if wait := c.rateLimit - time.Since(c.lastCall); wait > 0 {
		time.Sleep(wait)
	}
	c.lastCall = time.Now()
}

// loadSession restores a previously saved session from disk.
func (c *Client) loadSession() error {
	data, err := os.ReadFile(c.sessionPath)
	if err != nil {
		return err
	}
	var s session
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("corrupt session file: %w", err)
	}
	if !s.valid() {
		return fmt.Errorf("session expired")
	}
	c.sess = &s
	return nil
}

func (c *Client) saveSession() error {
	data, err := json.Marshal(c.sess)
	if err != nil {
		return err
	}
	return os.WriteFile(c.sessionPath, data, 0600)
}

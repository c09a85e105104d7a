package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// errNoSession is returned when a request needs the session cookie but none
// is configured.
var errNoSession = errors.New("session cookie not configured (set " + envSessionCookie + " or session_cookie in config)")

// sessionCookieName is the cookie the puzzle site authenticates with.
const sessionCookieName = "session"

// apiClient fetches puzzle pages and inputs from the puzzle site.
type apiClient struct {
	baseURL   string
	hasCookie bool
	userAgent string
	http      *http.Client
}

// newAPIClient creates a new client with the given configuration.
func newAPIClient(cfg appConfig) (*apiClient, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base_url is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base_url: %q", cfg.BaseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	session := strings.TrimSpace(cfg.SessionCookie)
	if session != "" {
		jar.SetCookies(u, []*http.Cookie{{Name: sessionCookieName, Value: session, Path: "/"}})
	}

	c := &apiClient{
		baseURL:   u.String(),
		hasCookie: session != "",
		userAgent: cfg.UserAgent,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}
	if c.userAgent == "" {
		c.userAgent = defaultUA
	}
	return c, nil
}

// apiError represents a non-2xx response from the puzzle site.
type apiError struct {
	StatusCode int
	Message    string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d", e.StatusCode)
}

// getText performs a GET and returns the response body.
func (c *apiClient) getText(ctx context.Context, path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	const maxResponseSize = 10 * 1024 * 1024 // 10MB limit
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(b))
		if len(msg) > 200 {
			msg = msg[:200]
		}
		return "", &apiError{StatusCode: resp.StatusCode, Message: msg}
	}
	return string(b), nil
}

// fetchPuzzle returns the HTML page describing the given day.
func (c *apiClient) fetchPuzzle(ctx context.Context, year, day int) (string, error) {
	return c.getText(ctx, fmt.Sprintf("/%d/day/%d", year, day))
}

// fetchInput returns the personalized input for the given day.
func (c *apiClient) fetchInput(ctx context.Context, year, day int) (string, error) {
	if !c.hasCookie {
		return "", errNoSession
	}
	return c.getText(ctx, fmt.Sprintf("/%d/day/%d/input", year, day))
}

func isAuthError(err error) bool {
	var ae *apiError
	return errors.As(err, &ae) && (ae.StatusCode == 400 || ae.StatusCode == 401 || ae.StatusCode == 403)
}

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSite(t *testing.T, wantSession string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/2025/day/1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, defaultUA, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`<html><body><main><article class="day-desc"><h2>--- Day 1: Secret Entrance ---</h2><p>Turn the dial.</p></article></main></body></html>`))
	})
	mux.HandleFunc("/2025/day/1/input", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(sessionCookieName)
		if err != nil || c.Value != wantSession {
			http.Error(w, "Puzzle inputs differ by user.  Please log in to get your puzzle input.", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("L50\nR100\n"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL, session string) appConfig {
	cfg := defaultConfig()
	cfg.BaseURL = baseURL
	cfg.SessionCookie = session
	return cfg
}

func TestFetchPuzzle(t *testing.T) {
	srv := newTestSite(t, "s3cret")
	c, err := newAPIClient(testConfig(srv.URL, ""))
	require.NoError(t, err)

	page, err := c.fetchPuzzle(context.Background(), 2025, 1)
	require.NoError(t, err)
	assert.Contains(t, page, "Secret Entrance")
}

func TestFetchInputSendsSessionCookie(t *testing.T) {
	srv := newTestSite(t, "s3cret")
	c, err := newAPIClient(testConfig(srv.URL+"/", "s3cret"))
	require.NoError(t, err)

	input, err := c.fetchInput(context.Background(), 2025, 1)
	require.NoError(t, err)
	assert.Equal(t, "L50\nR100\n", input)
}

func TestFetchInputWithoutSession(t *testing.T) {
	srv := newTestSite(t, "s3cret")
	c, err := newAPIClient(testConfig(srv.URL, ""))
	require.NoError(t, err)

	_, err = c.fetchInput(context.Background(), 2025, 1)
	assert.ErrorIs(t, err, errNoSession)
}

func TestFetchInputRejectedSession(t *testing.T) {
	srv := newTestSite(t, "s3cret")
	c, err := newAPIClient(testConfig(srv.URL, "wrong"))
	require.NoError(t, err)

	_, err = c.fetchInput(context.Background(), 2025, 1)
	var ae *apiError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusBadRequest, ae.StatusCode)
	assert.Contains(t, ae.Message, "log in")
	assert.True(t, isAuthError(err))
}

func TestFetchPuzzleNotFound(t *testing.T) {
	srv := newTestSite(t, "")
	c, err := newAPIClient(testConfig(srv.URL, ""))
	require.NoError(t, err)

	_, err = c.fetchPuzzle(context.Background(), 2025, 7)
	var ae *apiError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusNotFound, ae.StatusCode)
	assert.False(t, isAuthError(err))
}

func TestNewAPIClientRejectsBadBaseURL(t *testing.T) {
	_, err := newAPIClient(testConfig("not a url", ""))
	assert.Error(t, err)
	_, err = newAPIClient(testConfig("", ""))
	assert.Error(t, err)
}

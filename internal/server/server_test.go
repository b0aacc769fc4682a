package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuriken-cli/tour/internal/docs"
	"github.com/shuriken-cli/tour/internal/log"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(New().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var index []PageInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&index))
	require.Len(t, index, len(docs.Pages()))

	assert.Equal(t, "overview", index[0].Slug)
	assert.Equal(t, "/docs/overview", index[0].URL)
}

func TestPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(New().Handler())
	defer srv.Close()

	t.Run("known page returns markdown", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/docs/packages")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/markdown; charset=utf-8", resp.Header.Get("Content-Type"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "# Packages")
	})

	t.Run("unknown page is 404", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/docs/nope")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(New().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsCountPageRequests(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(New().Handler())
	defer srv.Close()

	// One hit on a page, then the counter must show up on /metrics.
	resp, err := http.Get(srv.URL + "/docs/overview")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "shuriken_tour_page_requests_total")
	assert.Contains(t, string(body), `slug="overview"`)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- New().Run(ctx, "127.0.0.1:0", log.New(io.Discard, false, true))
	}()

	// Give the listener a moment, then cancel.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}

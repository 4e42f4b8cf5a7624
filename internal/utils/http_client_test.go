package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Defaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	assert.Equal(t, time.Second, client.GetClient().Timeout)

	resp, err := client.R().Get("/status")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, 20*time.Millisecond).R().Get("/")
	require.Error(t, err)
}

func TestNewHTTPClient_Independent(t *testing.T) {
	first := NewHTTPClient("http://a.example", 0)
	second := NewHTTPClient("http://b.example", 0)

	assert.NotSame(t, first.Client, second.Client)
	assert.Equal(t, "http://a.example", first.BaseURL)
	assert.Zero(t, first.GetClient().Timeout)
}

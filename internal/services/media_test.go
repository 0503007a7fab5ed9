package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaFetcherSendsBasicAuth(t *testing.T) {
	var gotUser, gotPass string
	var gotAuth bool

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotAuth = r.BasicAuth()
		w.Write([]byte("%PDF-1.4 bytes"))
	}))
	defer ts.Close()

	fetcher := NewMediaFetcher("AC123", "secret-token")
	data, err := fetcher.Fetch(context.Background(), ts.URL)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 bytes"), data)
	assert.True(t, gotAuth)
	assert.Equal(t, "AC123", gotUser)
	assert.Equal(t, "secret-token", gotPass)
}

func TestMediaFetcherNon200IsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "media not found", http.StatusNotFound)
	}))
	defer ts.Close()

	fetcher := NewMediaFetcher("AC123", "secret-token")
	_, err := fetcher.Fetch(context.Background(), ts.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "media not found")
}

func TestMediaFetcherTransportError(t *testing.T) {
	fetcher := NewMediaFetcher("AC123", "secret-token")

	_, err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1/unreachable")
	assert.Error(t, err)
}

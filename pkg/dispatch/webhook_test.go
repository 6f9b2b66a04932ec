package dispatch

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
)

// fastSender returns a 3-attempt sender with no sleeps so retry tests
// stay quick.
func fastSender() *WebhookSender {
	return NewWebhookSender(3, []time.Duration{0, 0})
}

func TestSendSuccess(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	ok := fastSender().Send(context.Background(), srv.URL, SingleEmbed(sampleMatch()))

	assert.True(t, ok)
	require.Len(t, got.Embeds, 1)
	assert.Equal(t, "Keyword Match in r/sportsbook", got.Embeds[0].Title)
}

func TestSendRetriesThenSucceeds(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	ok := fastSender().Send(context.Background(), srv.URL, SingleEmbed(sampleMatch()))

	assert.True(t, ok)
	assert.Equal(t, 3, attempts)
}

func TestSendExhaustsAttempts(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	ok := fastSender().Send(context.Background(), srv.URL, SingleEmbed(sampleMatch()))

	assert.False(t, ok)
	assert.Equal(t, 3, attempts)
}

func TestSendStopsOnCancelledContext(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := NewWebhookSender(3, []time.Duration{time.Second, 2 * time.Second})
	ok := sender.Send(ctx, srv.URL, SingleEmbed(sampleMatch()))

	assert.False(t, ok)
	// The cancelled context stops the backoff before a second attempt.
	assert.LessOrEqual(t, attempts, 1)
}

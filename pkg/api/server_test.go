package api

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/pkg/dispatch"
	"github.com/reddalert/reddalert/pkg/services"
	"github.com/reddalert/reddalert/test/util"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestServer builds a router over a fresh schema and registers one
// tenant through the HTTP API, returning its plaintext key.
func newTestServer(t *testing.T) (*gin.Engine, *ent.Client, string) {
	t.Helper()
	db, sqlDB := util.SetupTestDatabase(t)

	sender := dispatch.NewWebhookSender(1, nil)
	router := NewServer(db, sqlDB, nil, sender).Router()

	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"email": "owner@example.com"})
	require.Equal(t, http.StatusCreated, resp.Code)

	var reg registerResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &reg))
	require.NotEmpty(t, reg.APIKey)
	require.NotEmpty(t, reg.ClientID)

	return router, db, reg.APIKey
}

func doJSON(t *testing.T, router *gin.Engine, method, path, apiKey string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAuthRequired(t *testing.T) {
	router, _, apiKey := newTestServer(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/keywords", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/keywords", "rda_bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/keywords", apiKey, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestClientsMe(t *testing.T) {
	router, _, apiKey := newTestServer(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/clients/me", apiKey, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var me map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &me))
	assert.Equal(t, "owner@example.com", me["email"])
	// The key hash is a sensitive field and never serialized.
	assert.NotContains(t, resp.Body.String(), "api_key_hash")

	resp = doJSON(t, router, http.MethodPatch, "/api/v1/clients/me", apiKey,
		map[string]string{"email": "new@example.com"})
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &me))
	assert.Equal(t, "new@example.com", me["email"])
}

func TestKeywordEndpoints(t *testing.T) {
	router, _, apiKey := newTestServer(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/keywords", apiKey, map[string]any{
		"phrases":    []string{" arbitrage <b>betting</b> "},
		"exclusions": []string{"paper trading"},
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var rule map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &rule))
	ruleID := rule["id"].(string)
	assert.Equal(t, []any{"arbitrage bbetting/b"}, rule["phrases"])
	assert.Equal(t, float64(15), rule["proximity_window"])

	resp = doJSON(t, router, http.MethodPost, "/api/v1/keywords", apiKey, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodPatch, "/api/v1/keywords/"+ruleID, apiKey,
		map[string]any{"proximity_window": 5})
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &rule))
	assert.Equal(t, float64(5), rule["proximity_window"])

	resp = doJSON(t, router, http.MethodPost, "/api/v1/keywords/"+ruleID+"/silence", apiKey,
		map[string]any{"minutes": 60})
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &rule))
	assert.NotNil(t, rule["silenced_until"])

	resp = doJSON(t, router, http.MethodDelete, "/api/v1/keywords/"+ruleID, apiKey, nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/keywords", apiKey, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "[]", resp.Body.String())
}

func TestSubredditEndpoints(t *testing.T) {
	router, _, apiKey := newTestServer(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/subreddits", apiKey,
		map[string]string{"name": "r/SportsBook"})
	require.Equal(t, http.StatusCreated, resp.Code)

	var community map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &community))
	communityID := community["id"].(string)
	assert.Equal(t, "sportsbook", community["name"])

	// The normalized name collides with the first subscription.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/subreddits", apiKey,
		map[string]string{"name": "sportsbook"})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/v1/subreddits", apiKey,
		map[string]string{"name": "not a subreddit!"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodPatch, "/api/v1/subreddits/"+communityID, apiKey,
		map[string]string{"status": "private"})
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &community))
	assert.Equal(t, "private", community["status"])

	resp = doJSON(t, router, http.MethodDelete, "/api/v1/subreddits/"+communityID, apiKey, nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestWebhookEndpoints(t *testing.T) {
	orig := lookupIP
	lookupIP = func(string) ([]net.IP, error) {
		return []net.IP{net.ParseIP("162.159.128.233")}, nil
	}
	t.Cleanup(func() { lookupIP = orig })

	router, _, apiKey := newTestServer(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/webhooks", apiKey, map[string]any{
		"url":        "https://discord.com/api/webhooks/123/token-abc",
		"guild_name": "Alerts HQ",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var endpoint map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &endpoint))
	endpointID := endpoint["id"].(string)
	assert.Equal(t, true, endpoint["is_primary"])

	resp = doJSON(t, router, http.MethodPost, "/api/v1/webhooks", apiKey,
		map[string]string{"url": "https://example.com/hook"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	inactive := false
	resp = doJSON(t, router, http.MethodPatch, "/api/v1/webhooks/"+endpointID, apiKey,
		map[string]any{"is_active": inactive})
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &endpoint))
	assert.Equal(t, false, endpoint["is_active"])

	resp = doJSON(t, router, http.MethodDelete, "/api/v1/webhooks/"+endpointID, apiKey, nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestWebhookTestEndpoint(t *testing.T) {
	router, db, apiKey := newTestServer(t)

	receiver := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(receiver.Close)

	tenant, err := services.NewTenantService(db).Authenticate(t.Context(), apiKey)
	require.NoError(t, err)

	// Created through the service so the delivery target can be local.
	endpoint, err := services.NewWebhookService(db).Create(t.Context(), tenant.ID,
		services.CreateWebhookInput{URL: receiver.URL})
	require.NoError(t, err)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/webhooks/"+endpoint.ID+"/test", apiKey, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var tested map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tested))
	assert.NotNil(t, tested["last_tested_at"])
}

func TestWebhookTestEndpointFailure(t *testing.T) {
	router, db, apiKey := newTestServer(t)

	receiver := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(receiver.Close)

	tenant, err := services.NewTenantService(db).Authenticate(t.Context(), apiKey)
	require.NoError(t, err)
	endpoint, err := services.NewWebhookService(db).Create(t.Context(), tenant.ID,
		services.CreateWebhookInput{URL: receiver.URL})
	require.NoError(t, err)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/webhooks/"+endpoint.ID+"/test", apiKey, nil)
	assert.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestMatchesAndStatsEndpoints(t *testing.T) {
	router, _, apiKey := newTestServer(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/matches?per_page=5", apiKey, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var page map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))
	assert.Equal(t, float64(0), page["total"])
	assert.Equal(t, float64(5), page["per_page"])

	resp = doJSON(t, router, http.MethodGet, "/api/v1/matches?start_date=yesterday", apiKey, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/matches/missing", apiKey, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/stats", apiKey, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var stats map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stats))
	assert.Equal(t, float64(0), stats["total_matches"])
}

func TestPollNowUnavailable(t *testing.T) {
	router, _, apiKey := newTestServer(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/poll-now", apiKey, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := newTestServer(t)

	resp := doJSON(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"healthy"`)
	assert.Equal(t, "DENY", resp.Header().Get("X-Frame-Options"))
}

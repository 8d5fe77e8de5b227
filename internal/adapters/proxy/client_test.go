package proxy_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kub1991/4sciana/internal/adapters/proxy"
	"github.com/Kub1991/4sciana/internal/domain"
)

func TestSendTurnSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "No.", "threadId": "t_abc"})
	}))
	defer srv.Close()

	c := proxy.NewClient(srv.URL, "anon-token")
	out, err := c.SendTurn(context.Background(), domain.TurnRequest{
		Message:     "Czy żałujesz?",
		CharacterID: "walter-white",
		ThreadID:    "t_prev",
	})
	require.NoError(t, err)
	assert.Equal(t, "No.", out.Message)
	assert.Equal(t, domain.ThreadID("t_abc"), out.ThreadID)

	assert.Equal(t, "Bearer anon-token", gotAuth)
	assert.Equal(t, "t_prev", gotBody["threadId"])
}

func TestSendTurnStructuredError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":   "Failed to process chat request",
			"details": "failed to create thread: 502 Bad Gateway",
		})
	}))
	defer srv.Close()

	c := proxy.NewClient(srv.URL, "")
	_, err := c.SendTurn(context.Background(), domain.TurnRequest{Message: "hej", CharacterID: "eleven"})

	var apiErr *proxy.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to process chat request", apiErr.Message)
	assert.Contains(t, apiErr.Details, "502")
}

func TestSendTurnUndecodableError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "<html>boom</html>", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := proxy.NewClient(srv.URL, "")
	_, err := c.SendTurn(context.Background(), domain.TurnRequest{Message: "hej", CharacterID: "eleven"})

	var apiErr *proxy.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "HTTP error! status: 502", apiErr.Message)
}

package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kub1991/4sciana/internal/adapters/openai"
	"github.com/Kub1991/4sciana/internal/domain"
)

func TestMissingAPIKey(t *testing.T) {
	c := openai.NewClient("http://example.invalid", "")

	_, err := c.CreateThread(context.Background())
	require.ErrorIs(t, err, openai.ErrAPIKeyMissing)
}

func TestFullTurnAgainstFakeGateway(t *testing.T) {
	var gotAuth, gotBeta string
	polls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBeta = r.Header.Get("OpenAI-Beta")

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/threads":
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "t_abc"})
		case r.Method == http.MethodPost && r.URL.Path == "/threads/t_abc/messages":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "user", body["role"])
			assert.Equal(t, "Czy żałujesz?", body["content"])
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPost && r.URL.Path == "/threads/t_abc/runs":
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "run_1", "status": "queued"})
		case r.Method == http.MethodGet && r.URL.Path == "/threads/t_abc/runs/run_1":
			polls++
			status := "in_progress"
			if polls > 1 {
				status = "completed"
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "run_1", "status": status})
		case r.Method == http.MethodGet && r.URL.Path == "/threads/t_abc/messages":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{
					{
						"id": "msg_2", "role": "assistant", "created_at": 1700000001,
						"content": []map[string]any{
							{"type": "text", "text": map[string]string{"value": "No."}},
						},
					},
					{
						"id": "msg_1", "role": "user", "created_at": 1700000000,
						"content": []map[string]any{
							{"type": "text", "text": map[string]string{"value": "Czy żałujesz?"}},
						},
					},
				},
			})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	c := openai.NewClient(srv.URL, "sk-test")

	threadID, err := c.CreateThread(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThreadID("t_abc"), threadID)

	require.NoError(t, c.AddUserMessage(ctx, threadID, "Czy żałujesz?"))

	runID, err := c.CreateRun(ctx, threadID, "asst_w1")
	require.NoError(t, err)

	status, err := c.GetRunStatus(ctx, threadID, runID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunInProgress, status)
	assert.False(t, status.Terminal())

	status, err = c.GetRunStatus(ctx, threadID, runID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunCompleted, status)
	assert.True(t, status.Terminal())

	msgs, err := c.ListMessages(ctx, threadID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleAssistant, msgs[0].Role)
	assert.Equal(t, "No.", msgs[0].Text)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "assistants=v2", gotBeta)
}

func TestGatewayErrorCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := openai.NewClient(srv.URL, "sk-test")
	_, err := c.CreateThread(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create thread")
	assert.Contains(t, err.Error(), "502")
	// The credential never leaks into the error chain.
	assert.NotContains(t, err.Error(), "sk-test")
}

// Package openai implements domain.AssistantGateway against the OpenAI
// Assistants v2 HTTP API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Kub1991/4sciana/internal/domain"
)

// ErrAPIKeyMissing is returned on every call when no credential was
// configured. Checked lazily so the server can still start (and serve the
// catalog) in an unconfigured environment.
var ErrAPIKeyMissing = errors.New("OpenAI API key not configured")

const DefaultBaseURL = "https://api.openai.com/v1"

type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates an assistant gateway client. baseURL is injectable so
// tests can point it at an httptest server; pass "" for the real API.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		// Per-call deadlines come from the request context; this is only a
		// backstop against a wedged connection.
		http:    &http.Client{Timeout: 90 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type threadResponse struct {
	ID string `json:"id"`
}

type runResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type messageContent struct {
	Type string `json:"type"`
	Text struct {
		Value string `json:"value"`
	} `json:"text"`
}

type threadMessage struct {
	ID        string           `json:"id"`
	Role      string           `json:"role"`
	CreatedAt int64            `json:"created_at"`
	Content   []messageContent `json:"content"`
}

type messageList struct {
	Data []threadMessage `json:"data"`
}

func (c *Client) CreateThread(ctx context.Context) (domain.ThreadID, error) {
	var out threadResponse
	if err := c.do(ctx, http.MethodPost, "/threads", map[string]any{}, &out); err != nil {
		return "", fmt.Errorf("failed to create thread: %w", err)
	}
	return domain.ThreadID(out.ID), nil
}

func (c *Client) AddUserMessage(ctx context.Context, threadID domain.ThreadID, text string) error {
	body := map[string]any{
		"role":    "user",
		"content": text,
	}
	if err := c.do(ctx, http.MethodPost, "/threads/"+string(threadID)+"/messages", body, nil); err != nil {
		return fmt.Errorf("failed to add message: %w", err)
	}
	return nil
}

func (c *Client) CreateRun(ctx context.Context, threadID domain.ThreadID, assistantID string) (domain.RunID, error) {
	body := map[string]any{
		"assistant_id": assistantID,
	}
	var out runResponse
	if err := c.do(ctx, http.MethodPost, "/threads/"+string(threadID)+"/runs", body, &out); err != nil {
		return "", fmt.Errorf("failed to run assistant: %w", err)
	}
	return domain.RunID(out.ID), nil
}

func (c *Client) GetRunStatus(ctx context.Context, threadID domain.ThreadID, runID domain.RunID) (domain.RunStatus, error) {
	var out runResponse
	path := "/threads/" + string(threadID) + "/runs/" + string(runID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", fmt.Errorf("failed to check run status: %w", err)
	}
	return domain.RunStatus(out.Status), nil
}

func (c *Client) ListMessages(ctx context.Context, threadID domain.ThreadID) ([]domain.ThreadMessage, error) {
	var out messageList
	if err := c.do(ctx, http.MethodGet, "/threads/"+string(threadID)+"/messages", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	msgs := make([]domain.ThreadMessage, 0, len(out.Data))
	for _, m := range out.Data {
		text := ""
		for _, part := range m.Content {
			if part.Type == "text" {
				text = part.Text.Value
				break
			}
		}
		msgs = append(msgs, domain.ThreadMessage{
			ID:        m.ID,
			Role:      domain.Role(m.Role),
			Text:      text,
			CreatedAt: time.Unix(m.CreatedAt, 0),
		})
	}
	return msgs, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.apiKey == "" {
		return ErrAPIKeyMissing
	}

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("OpenAI-Beta", "assistants=v2")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Status line only; the body may echo request content and the error
		// travels back to the client in the details field.
		return fmt.Errorf("%s", resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

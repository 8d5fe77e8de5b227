// Package proxy is the client-side HTTP adapter for the chat proxy service.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Kub1991/4sciana/internal/domain"
)

// APIError is a non-success response from the proxy, carrying its structured
// error payload when one could be decoded.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s\n\nDetails: %s", e.Message, e.Details)
	}
	return e.Message
}

type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

// NewClient creates a proxy client. token is the hosting platform's bearer
// credential (not character-specific); empty means no Authorization header.
func NewClient(baseURL, token string) *Client {
	return &Client{
		// Deadlines come from the caller's context; the turn controller owns
		// the 30s budget.
		http:    &http.Client{},
		baseURL: baseURL,
		token:   token,
	}
}

type turnRequest struct {
	Message     string `json:"message"`
	CharacterID string `json:"characterId"`
	ThreadID    string `json:"threadId,omitempty"`
}

type turnResponse struct {
	Message  string `json:"message"`
	ThreadID string `json:"threadId"`
	Error    string `json:"error,omitempty"`
	Details  string `json:"details,omitempty"`
}

// SendTurn implements domain.ChatService.
func (c *Client) SendTurn(ctx context.Context, req domain.TurnRequest) (*domain.TurnResult, error) {
	raw, err := json.Marshal(turnRequest{
		Message:     req.Message,
		CharacterID: string(req.CharacterID),
		ThreadID:    string(req.ThreadID),
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body turnResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
		}
		if decodeErr == nil && body.Error != "" {
			apiErr.Message = body.Error
			apiErr.Details = body.Details
		}
		return nil, apiErr
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if body.Error != "" {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: body.Error, Details: body.Details}
	}

	return &domain.TurnResult{
		Message:  body.Message,
		ThreadID: domain.ThreadID(body.ThreadID),
	}, nil
}

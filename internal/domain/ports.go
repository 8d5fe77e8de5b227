package domain

import (
	"context"
	"errors"
)

// ErrThreadNotFound is returned by thread stores when a handle is unknown.
var ErrThreadNotFound = errors.New("thread not found")

// AssistantGateway defines how the proxy talks to the external assistant
// service: threads accumulate messages, runs execute an assistant against a
// thread and progress through RunStatus values.
type AssistantGateway interface {
	CreateThread(ctx context.Context) (ThreadID, error)
	AddUserMessage(ctx context.Context, threadID ThreadID, text string) error
	CreateRun(ctx context.Context, threadID ThreadID, assistantID string) (RunID, error)
	GetRunStatus(ctx context.Context, threadID ThreadID, runID RunID) (RunStatus, error)
	// ListMessages returns the thread's messages newest first, matching the
	// gateway's wire order.
	ListMessages(ctx context.Context, threadID ThreadID) ([]ThreadMessage, error)
}

// ThreadStore persists locally emulated conversation threads. Only the local
// gateway backend uses it; the real gateway keeps threads on its own side.
type ThreadStore interface {
	CreateThread(ctx context.Context, id ThreadID, createdAt Timestamp) error
	AppendThreadMessage(ctx context.Context, id ThreadID, msg ThreadMessage) error
	ListThreadMessages(ctx context.Context, id ThreadID) ([]ThreadMessage, error)
}

// TurnRequest is one chat turn as the client sends it to the proxy.
type TurnRequest struct {
	Message     string
	CharacterID CharacterID
	ThreadID    ThreadID // empty on the first turn of a session
}

// TurnResult is the proxy's answer to a turn.
type TurnResult struct {
	Message  string
	ThreadID ThreadID
}

// ChatService is the client-side view of the proxy.
type ChatService interface {
	SendTurn(ctx context.Context, req TurnRequest) (*TurnResult, error)
}

// NetworkStatus is the locally observed connection quality.
type NetworkStatus string

const (
	NetworkOnline  NetworkStatus = "online"
	NetworkOffline NetworkStatus = "offline"
	NetworkSlow    NetworkStatus = "slow"
)

// NetworkMonitor exposes the current network status plus change notification,
// so the turn controller can be driven by a fake in tests.
type NetworkMonitor interface {
	Status() NetworkStatus
	// Subscribe registers fn for status changes and returns a cancel func.
	Subscribe(fn func(NetworkStatus)) (cancel func())
}

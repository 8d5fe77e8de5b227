// Package chatproxy drives one chat turn against the assistant gateway:
// ensure a thread, append the user message, start a run, poll to completion
// and extract the reply. The service is stateless; the thread handle is the
// only cross-request state and it travels with the client.
package chatproxy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kub1991/4sciana/internal/characters"
	"github.com/Kub1991/4sciana/internal/domain"
	"github.com/Kub1991/4sciana/internal/observability"
)

// ErrRunTimeout means the run did not reach a terminal status within the
// polling budget. The run is presumed abandoned; retrying is the caller's
// decision.
var ErrRunTimeout = errors.New("Assistant response timeout")

// ErrNoAssistantReply means the run completed but the thread holds no
// assistant-authored message.
var ErrNoAssistantReply = errors.New("No assistant response found")

// RunFailedError reports a run that ended in a terminal status other than
// completed.
type RunFailedError struct {
	Status domain.RunStatus
}

func (e *RunFailedError) Error() string {
	return fmt.Sprintf("Assistant run failed with status: %s", e.Status)
}

// fallbackReply stands in when a completed run produced a structurally empty
// message.
const fallbackReply = "I apologize, but I cannot provide a response right now."

const (
	defaultPollInterval    = time.Second
	defaultMaxPollAttempts = 30
)

type Service struct {
	gateway  domain.AssistantGateway
	registry *characters.Registry

	pollInterval    time.Duration
	maxPollAttempts int
}

type Option func(*Service)

// WithPolling overrides the poll cadence; tests shrink it to keep the
// 30-attempt ceiling fast.
func WithPolling(interval time.Duration, maxAttempts int) Option {
	return func(s *Service) {
		s.pollInterval = interval
		s.maxPollAttempts = maxAttempts
	}
}

func NewService(gateway domain.AssistantGateway, registry *characters.Registry, opts ...Option) *Service {
	s := &Service{
		gateway:         gateway,
		registry:        registry,
		pollInterval:    defaultPollInterval,
		maxPollAttempts: defaultMaxPollAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Turn performs one full chat turn. Input validation (non-empty message and
// characterId) belongs to the HTTP adapter; by the time a request reaches
// here both are present.
func (s *Service) Turn(ctx context.Context, req domain.TurnRequest) (*domain.TurnResult, error) {
	assistantID, err := s.registry.AssistantFor(req.CharacterID)
	if err != nil {
		return nil, err
	}

	log := observability.LoggerFromContext(ctx).With(
		"character_id", req.CharacterID,
	)

	threadID := req.ThreadID
	if threadID == "" {
		// Lazily create on the first turn. A stale handle passed by the
		// client is not validated here; it surfaces as a gateway failure.
		threadID, err = s.gateway.CreateThread(ctx)
		if err != nil {
			return nil, err
		}
		log.Info("created thread", "thread_id", threadID)
	}
	log = log.With("thread_id", threadID)

	if err := s.gateway.AddUserMessage(ctx, threadID, req.Message); err != nil {
		return nil, err
	}

	runID, err := s.gateway.CreateRun(ctx, threadID, assistantID)
	if err != nil {
		return nil, err
	}

	status, err := s.pollRun(ctx, threadID, runID)
	if err != nil {
		return nil, err
	}
	if status != domain.RunCompleted {
		log.Warn("run ended without completing", "run_id", runID, "status", status)
		return nil, &RunFailedError{Status: status}
	}

	reply, err := s.latestAssistantReply(ctx, threadID)
	if err != nil {
		return nil, err
	}

	log.Info("turn completed", "run_id", runID)

	return &domain.TurnResult{
		Message:  reply,
		ThreadID: threadID,
	}, nil
}

// pollRun checks the run once a second until it reaches a terminal status or
// the attempt ceiling passes. The ceiling caps the whole wait at roughly
// maxPollAttempts seconds.
func (s *Service) pollRun(ctx context.Context, threadID domain.ThreadID, runID domain.RunID) (domain.RunStatus, error) {
	status := domain.RunQueued
	attempts := 0

	for !status.Terminal() {
		if attempts >= s.maxPollAttempts {
			return "", ErrRunTimeout
		}

		if err := sleep(ctx, s.pollInterval); err != nil {
			return "", err
		}

		var err error
		status, err = s.gateway.GetRunStatus(ctx, threadID, runID)
		if err != nil {
			return "", err
		}
		attempts++
	}

	return status, nil
}

func (s *Service) latestAssistantReply(ctx context.Context, threadID domain.ThreadID) (string, error) {
	msgs, err := s.gateway.ListMessages(ctx, threadID)
	if err != nil {
		return "", err
	}

	// Messages arrive newest first; the first assistant-authored one is the
	// reply to this turn.
	for _, m := range msgs {
		if m.Role != domain.RoleAssistant {
			continue
		}
		if m.Text == "" {
			return fallbackReply, nil
		}
		return m.Text, nil
	}
	return "", ErrNoAssistantReply
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package chatproxy_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kub1991/4sciana/internal/app/chatproxy"
	"github.com/Kub1991/4sciana/internal/characters"
	"github.com/Kub1991/4sciana/internal/domain"
)

// fakeGateway scripts the assistant gateway for one turn.
type fakeGateway struct {
	createThreadID domain.ThreadID
	createErr      error
	runStatuses    []domain.RunStatus // consumed one per poll; last repeats
	messages       []domain.ThreadMessage

	threadsCreated int
	appended       []string
	statusCalls    int
}

func (g *fakeGateway) CreateThread(context.Context) (domain.ThreadID, error) {
	g.threadsCreated++
	return g.createThreadID, g.createErr
}

func (g *fakeGateway) AddUserMessage(_ context.Context, _ domain.ThreadID, text string) error {
	g.appended = append(g.appended, text)
	return nil
}

func (g *fakeGateway) CreateRun(context.Context, domain.ThreadID, string) (domain.RunID, error) {
	return "run_1", nil
}

func (g *fakeGateway) GetRunStatus(context.Context, domain.ThreadID, domain.RunID) (domain.RunStatus, error) {
	i := g.statusCalls
	g.statusCalls++
	if i >= len(g.runStatuses) {
		i = len(g.runStatuses) - 1
	}
	return g.runStatuses[i], nil
}

func (g *fakeGateway) ListMessages(context.Context, domain.ThreadID) ([]domain.ThreadMessage, error) {
	return g.messages, nil
}

func newService(g *fakeGateway) *chatproxy.Service {
	reg := characters.NewRegistry(map[domain.CharacterID]string{
		"walter-white": "asst_w1",
	})
	return chatproxy.NewService(g, reg, chatproxy.WithPolling(time.Millisecond, 30))
}

func TestTurnCreatesThreadAndReturnsReply(t *testing.T) {
	g := &fakeGateway{
		createThreadID: "t_abc",
		runStatuses:    []domain.RunStatus{domain.RunInProgress, domain.RunCompleted},
		messages: []domain.ThreadMessage{
			{ID: "m_2", Role: domain.RoleAssistant, Text: "No."},
			{ID: "m_1", Role: domain.RoleUser, Text: "Czy żałujesz?"},
		},
	}

	out, err := newService(g).Turn(context.Background(), domain.TurnRequest{
		Message:     "Czy żałujesz?",
		CharacterID: "walter-white",
	})
	require.NoError(t, err)
	assert.Equal(t, "No.", out.Message)
	assert.Equal(t, domain.ThreadID("t_abc"), out.ThreadID)
	assert.Equal(t, 1, g.threadsCreated)
	assert.Equal(t, []string{"Czy żałujesz?"}, g.appended)
}

func TestTurnReusesGivenThreadHandle(t *testing.T) {
	g := &fakeGateway{
		runStatuses: []domain.RunStatus{domain.RunCompleted},
		messages: []domain.ThreadMessage{
			{ID: "m_4", Role: domain.RoleAssistant, Text: "Jessie, we need to cook."},
		},
	}

	out, err := newService(g).Turn(context.Background(), domain.TurnRequest{
		Message:     "Co dalej?",
		CharacterID: "walter-white",
		ThreadID:    "t_prev",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ThreadID("t_prev"), out.ThreadID)
	assert.Zero(t, g.threadsCreated, "an existing handle must be reused, not validated")
}

func TestTurnUnknownCharacter(t *testing.T) {
	g := &fakeGateway{}

	_, err := newService(g).Turn(context.Background(), domain.TurnRequest{
		Message:     "hej",
		CharacterID: "unknown-character",
	})
	var noAssistant *characters.NoAssistantError
	require.ErrorAs(t, err, &noAssistant)
	assert.Zero(t, g.threadsCreated, "no gateway call before configuration resolves")
}

func TestTurnPollTimeout(t *testing.T) {
	g := &fakeGateway{
		createThreadID: "t_slow",
		runStatuses:    []domain.RunStatus{domain.RunInProgress},
	}

	_, err := newService(g).Turn(context.Background(), domain.TurnRequest{
		Message:     "halo?",
		CharacterID: "walter-white",
	})
	require.ErrorIs(t, err, chatproxy.ErrRunTimeout)
	assert.Equal(t, 30, g.statusCalls, "exactly the attempt ceiling, then give up")
}

func TestTurnRunFailedStatus(t *testing.T) {
	g := &fakeGateway{
		createThreadID: "t_1",
		runStatuses:    []domain.RunStatus{domain.RunQueued, domain.RunFailed},
	}

	_, err := newService(g).Turn(context.Background(), domain.TurnRequest{
		Message:     "hej",
		CharacterID: "walter-white",
	})
	var failed *chatproxy.RunFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, domain.RunFailed, failed.Status)
}

func TestTurnEmptyReplyFallsBackToApology(t *testing.T) {
	g := &fakeGateway{
		createThreadID: "t_1",
		runStatuses:    []domain.RunStatus{domain.RunCompleted},
		messages: []domain.ThreadMessage{
			{ID: "m_2", Role: domain.RoleAssistant, Text: ""},
		},
	}

	out, err := newService(g).Turn(context.Background(), domain.TurnRequest{
		Message:     "hej",
		CharacterID: "walter-white",
	})
	require.NoError(t, err)
	assert.Equal(t, "I apologize, but I cannot provide a response right now.", out.Message)
}

func TestTurnNoAssistantMessage(t *testing.T) {
	g := &fakeGateway{
		createThreadID: "t_1",
		runStatuses:    []domain.RunStatus{domain.RunCompleted},
		messages: []domain.ThreadMessage{
			{ID: "m_1", Role: domain.RoleUser, Text: "hej"},
		},
	}

	_, err := newService(g).Turn(context.Background(), domain.TurnRequest{
		Message:     "hej",
		CharacterID: "walter-white",
	})
	require.ErrorIs(t, err, chatproxy.ErrNoAssistantReply)
}

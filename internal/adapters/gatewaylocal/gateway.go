// Package gatewaylocal emulates the assistant gateway in-process, backed by
// Vertex AI (Gemini). It exists so the whole system can run without an OpenAI
// account: threads live in a ThreadStore, runs execute asynchronously and move
// through the same statuses the real gateway reports, so the proxy's poll
// loop works unchanged.
package gatewaylocal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/Kub1991/4sciana/internal/characters"
	"github.com/Kub1991/4sciana/internal/domain"
	"github.com/Kub1991/4sciana/internal/observability"
)

const (
	runDeadline = 60 * time.Second

	// How long a finished run stays queryable when nobody polls it again,
	// e.g. after the proxy gave up waiting.
	runRetention = 10 * time.Minute
)

type Config struct {
	ProjectID string
	Location  string
	ModelName string
}

type Gateway struct {
	client   *genai.Client
	model    string
	registry *characters.Registry
	store    domain.ThreadStore

	mu   sync.Mutex
	runs map[domain.RunID]*run
}

type run struct {
	threadID domain.ThreadID
	status   domain.RunStatus
}

func New(ctx context.Context, cfg Config, registry *characters.Registry, store domain.ThreadStore) (*Gateway, error) {
	if cfg.ProjectID == "" || cfg.Location == "" {
		return nil, fmt.Errorf("project and location are required for the local gateway")
	}
	model := cfg.ModelName
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  cfg.ProjectID,
		Location: cfg.Location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &Gateway{
		client:   client,
		model:    model,
		registry: registry,
		store:    store,
		runs:     make(map[domain.RunID]*run),
	}, nil
}

func (g *Gateway) CreateThread(ctx context.Context) (domain.ThreadID, error) {
	id := domain.ThreadID("t_local_" + uuid.NewString())
	if err := g.store.CreateThread(ctx, id, time.Now()); err != nil {
		return "", err
	}
	return id, nil
}

func (g *Gateway) AddUserMessage(ctx context.Context, threadID domain.ThreadID, text string) error {
	return g.store.AppendThreadMessage(ctx, threadID, domain.ThreadMessage{
		ID:        "m_" + uuid.NewString(),
		Role:      domain.RoleUser,
		Text:      text,
		CreatedAt: time.Now(),
	})
}

// CreateRun starts generating a reply in the background. In local mode the
// assistant id doubles as the character id.
func (g *Gateway) CreateRun(ctx context.Context, threadID domain.ThreadID, assistantID string) (domain.RunID, error) {
	character, ok := g.registry.Get(domain.CharacterID(assistantID))
	if !ok {
		return "", fmt.Errorf("local gateway: no persona for assistant %q", assistantID)
	}

	history, err := g.store.ListThreadMessages(ctx, threadID)
	if err != nil {
		return "", err
	}

	runID := domain.RunID("run_local_" + uuid.NewString())
	g.mu.Lock()
	g.runs[runID] = &run{threadID: threadID, status: domain.RunQueued}
	g.mu.Unlock()

	// The run outlives the poll requests; it gets its own deadline.
	go g.execute(runID, threadID, character, history)

	return runID, nil
}

func (g *Gateway) GetRunStatus(_ context.Context, _ domain.ThreadID, runID domain.RunID) (domain.RunStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.runs[runID]
	if !ok {
		return "", fmt.Errorf("local gateway: unknown run %q", runID)
	}
	// The poll loop stops at the first terminal status, so the entry can go
	// as soon as one has been reported.
	if r.status.Terminal() {
		delete(g.runs, runID)
	}
	return r.status, nil
}

// ListMessages returns newest first, matching the real gateway's wire order.
func (g *Gateway) ListMessages(ctx context.Context, threadID domain.ThreadID) ([]domain.ThreadMessage, error) {
	msgs, err := g.store.ListThreadMessages(ctx, threadID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ThreadMessage, len(msgs))
	for i, m := range msgs {
		out[len(msgs)-1-i] = m
	}
	return out, nil
}

func (g *Gateway) setStatus(runID domain.RunID, status domain.RunStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.runs[runID]
	if !ok {
		return
	}
	r.status = status
	if status.Terminal() {
		// Runs nobody polls again (the proxy may have timed out and moved
		// on) would otherwise sit in the map forever.
		time.AfterFunc(runRetention, func() {
			g.mu.Lock()
			delete(g.runs, runID)
			g.mu.Unlock()
		})
	}
}

func (g *Gateway) execute(runID domain.RunID, threadID domain.ThreadID, character domain.Character, history []domain.ThreadMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), runDeadline)
	defer cancel()

	log := observability.WithFields("run_id", runID, "thread_id", threadID, "character_id", character.ID)
	g.setStatus(runID, domain.RunInProgress)

	reply, err := g.generate(ctx, character, history)
	if err != nil {
		log.Error("local run failed", "error", err)
		g.setStatus(runID, domain.RunFailed)
		return
	}

	if err := g.store.AppendThreadMessage(ctx, threadID, domain.ThreadMessage{
		ID:        "m_" + uuid.NewString(),
		Role:      domain.RoleAssistant,
		Text:      reply,
		CreatedAt: time.Now(),
	}); err != nil {
		log.Error("failed to append assistant message", "error", err)
		g.setStatus(runID, domain.RunFailed)
		return
	}

	g.setStatus(runID, domain.RunCompleted)
}

func (g *Gateway) generate(ctx context.Context, character domain.Character, history []domain.ThreadMessage) (string, error) {
	system := fmt.Sprintf(
		"You are %s from %s. Personality: %s. Stay fully in character, answer in the language the user writes in, and keep replies to a few sentences.",
		character.Name, character.Source, character.Personality,
	)

	var contents []*genai.Content
	for _, m := range history {
		var role genai.Role
		switch m.Role {
		case domain.RoleAssistant:
			role = genai.RoleModel
		default:
			role = genai.RoleUser
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}

	temp := float32(0.8)
	topP := float32(0.9)
	outputTokens := int32(1024)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       &temp,
		TopP:              &topP,
		MaxOutputTokens:   outputTokens,
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("vertex generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("vertex returned empty text")
	}
	return text, nil
}

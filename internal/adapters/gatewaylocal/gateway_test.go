package gatewaylocal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kub1991/4sciana/internal/domain"
)

func TestRunEntryDroppedAfterTerminalRead(t *testing.T) {
	g := &Gateway{runs: map[domain.RunID]*run{
		"run_1": {threadID: "t_1", status: domain.RunInProgress},
	}}
	ctx := context.Background()

	status, err := g.GetRunStatus(ctx, "t_1", "run_1")
	require.NoError(t, err)
	assert.Equal(t, domain.RunInProgress, status)

	g.setStatus("run_1", domain.RunCompleted)

	status, err = g.GetRunStatus(ctx, "t_1", "run_1")
	require.NoError(t, err)
	assert.Equal(t, domain.RunCompleted, status)

	// The poll loop stops on a terminal status, so the entry is gone.
	_, err = g.GetRunStatus(ctx, "t_1", "run_1")
	require.Error(t, err)

	g.mu.Lock()
	assert.Empty(t, g.runs)
	g.mu.Unlock()
}

func TestRunEntryKeptWhileActive(t *testing.T) {
	g := &Gateway{runs: map[domain.RunID]*run{
		"run_1": {threadID: "t_1", status: domain.RunQueued},
	}}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		status, err := g.GetRunStatus(ctx, "t_1", "run_1")
		require.NoError(t, err)
		assert.False(t, status.Terminal())
	}
}

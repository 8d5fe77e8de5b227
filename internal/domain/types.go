package domain

import "time"

type CharacterID string
type MessageID string
type ThreadID string
type RunID string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// RunStatus is the assistant gateway's run lifecycle state.
type RunStatus string

const (
	RunQueued     RunStatus = "queued"
	RunInProgress RunStatus = "in_progress"
	RunRunning    RunStatus = "running"
	RunCompleted  RunStatus = "completed"
	RunFailed     RunStatus = "failed"
	RunCancelled  RunStatus = "cancelled"
	RunExpired    RunStatus = "expired"
)

// Terminal reports whether a run has stopped progressing. Any status the
// gateway may invent beyond the three active ones counts as terminal.
func (s RunStatus) Terminal() bool {
	switch s {
	case RunQueued, RunInProgress, RunRunning:
		return false
	}
	return true
}

type Timestamp = time.Time

// Package session holds the client-side conversational state machine for one
// selected character, and the turn controller that drives it: optimistic
// appends, timeout and error classification, automatic retry with backoff,
// thread-handle continuity.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/Kub1991/4sciana/internal/domain"
)

// Session is the per-character, in-memory conversation state. All mutation
// goes through the Controller; readers get copies.
type Session struct {
	character domain.Character

	messages   []domain.Message
	threadID   domain.ThreadID
	composing  bool
	retrying   bool
	retryCount int
	lastFailed string
	errText    string
	showHints  bool
}

func newSession(character domain.Character, now time.Time) *Session {
	s := &Session{character: character}
	s.reset(now)
	return s
}

// reset returns the session to its initial state: greeting only, no thread,
// suggestions visible.
func (s *Session) reset(now time.Time) {
	s.messages = []domain.Message{{
		ID:        newMessageID(),
		Author:    domain.RoleAssistant,
		Text:      s.character.Greeting,
		CreatedAt: now,
	}}
	s.threadID = ""
	s.composing = false
	s.retrying = false
	s.retryCount = 0
	s.lastFailed = ""
	s.errText = ""
	s.showHints = true
}

func (s *Session) append(author domain.Role, text string, now time.Time) {
	s.messages = append(s.messages, domain.Message{
		ID:        newMessageID(),
		Author:    author,
		Text:      text,
		CreatedAt: now,
	})
}

func newMessageID() domain.MessageID {
	return domain.MessageID(uuid.NewString())
}

// Snapshot is a read-only copy of the session for the presentation layer.
type Snapshot struct {
	Character          domain.Character
	Messages           []domain.Message
	ThreadID           domain.ThreadID
	Composing          bool
	Retrying           bool
	RetryCount         int
	LastFailedMessage  string
	Error              string
	SuggestionsVisible bool
}

func (s *Session) snapshot() Snapshot {
	msgs := make([]domain.Message, len(s.messages))
	copy(msgs, s.messages)
	return Snapshot{
		Character:          s.character,
		Messages:           msgs,
		ThreadID:           s.threadID,
		Composing:          s.composing,
		Retrying:           s.retrying,
		RetryCount:         s.retryCount,
		LastFailedMessage:  s.lastFailed,
		Error:              s.errText,
		SuggestionsVisible: s.showHints,
	}
}

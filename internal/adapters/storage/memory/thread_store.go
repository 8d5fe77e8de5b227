package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Kub1991/4sciana/internal/domain"
)

// ThreadStore keeps locally emulated conversation threads in memory.
type ThreadStore struct {
	mu      sync.RWMutex
	threads map[domain.ThreadID][]domain.ThreadMessage
	created map[domain.ThreadID]domain.Timestamp
}

func NewThreadStore() *ThreadStore {
	return &ThreadStore{
		threads: make(map[domain.ThreadID][]domain.ThreadMessage),
		created: make(map[domain.ThreadID]domain.Timestamp),
	}
}

func (s *ThreadStore) CreateThread(_ context.Context, id domain.ThreadID, createdAt domain.Timestamp) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.created[id]; exists {
		return errors.New("thread already exists")
	}

	s.created[id] = createdAt
	s.threads[id] = nil
	return nil
}

func (s *ThreadStore) AppendThreadMessage(_ context.Context, id domain.ThreadID, msg domain.ThreadMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.created[id]; !exists {
		return domain.ErrThreadNotFound
	}

	s.threads[id] = append(s.threads[id], msg)
	return nil
}

// ListThreadMessages returns the thread's messages in append (chronological)
// order.
func (s *ThreadStore) ListThreadMessages(_ context.Context, id domain.ThreadID) ([]domain.ThreadMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.created[id]; !exists {
		return nil, domain.ErrThreadNotFound
	}

	out := make([]domain.ThreadMessage, len(s.threads[id]))
	copy(out, s.threads[id])
	return out, nil
}

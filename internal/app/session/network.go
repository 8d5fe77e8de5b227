package session

import (
	"sync"

	"github.com/Kub1991/4sciana/internal/domain"
)

// Monitor is a settable domain.NetworkMonitor. The terminal client flips it
// by hand; tests script it.
type Monitor struct {
	mu     sync.Mutex
	status domain.NetworkStatus
	subs   map[int]func(domain.NetworkStatus)
	nextID int
}

func NewMonitor(initial domain.NetworkStatus) *Monitor {
	if initial == "" {
		initial = domain.NetworkOnline
	}
	return &Monitor{
		status: initial,
		subs:   make(map[int]func(domain.NetworkStatus)),
	}
}

func (m *Monitor) Status() domain.NetworkStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// SetStatus updates the observed status and notifies subscribers.
func (m *Monitor) SetStatus(status domain.NetworkStatus) {
	m.mu.Lock()
	if m.status == status {
		m.mu.Unlock()
		return
	}
	m.status = status
	fns := make([]func(domain.NetworkStatus), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(status)
	}
}

func (m *Monitor) Subscribe(fn func(domain.NetworkStatus)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.subs[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

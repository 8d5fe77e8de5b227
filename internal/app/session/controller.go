package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Kub1991/4sciana/internal/domain"
	"github.com/Kub1991/4sciana/internal/observability"
)

// TurnTimeout is the client-side deadline for one proxy round trip, sized to
// the proxy's own ~30s polling cap.
const TurnTimeout = 30 * time.Second

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// TimerFactory schedules fn after d. Production uses time.AfterFunc; tests
// substitute a manual one.
type TimerFactory func(d time.Duration, fn func()) Timer

func afterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Controller drives chat turns for one session. At most one turn is in
// flight at a time; a pending automatic retry is a single timer, cancelled
// whenever a newer schedule supersedes it.
type Controller struct {
	chat    domain.ChatService
	network domain.NetworkMonitor

	timeout  time.Duration
	newTimer TimerFactory
	now      func() time.Time
	onChange func()

	mu         sync.Mutex
	session    *Session
	inFlight   bool
	retryTimer Timer

	unsubscribe func()
}

type Option func(*Controller)

// WithTimeout overrides the per-turn deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

// WithTimerFactory substitutes the retry scheduler.
func WithTimerFactory(f TimerFactory) Option {
	return func(c *Controller) { c.newTimer = f }
}

// WithOnChange registers a callback fired after every state change, so a
// presentation layer can re-render. Called without the controller lock held.
func WithOnChange(fn func()) Option {
	return func(c *Controller) { c.onChange = fn }
}

func withClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func NewController(chat domain.ChatService, network domain.NetworkMonitor, character domain.Character, opts ...Option) *Controller {
	c := &Controller{
		chat:     chat,
		network:  network,
		timeout:  TurnTimeout,
		newTimer: afterFunc,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.session = newSession(character, c.now())

	// Network flips only need a re-render; the offline guard itself reads
	// the live status at send time.
	c.unsubscribe = network.Subscribe(func(domain.NetworkStatus) {
		c.notify()
	})

	return c
}

// Close releases the network subscription and any pending retry timer.
func (c *Controller) Close() {
	c.mu.Lock()
	c.cancelRetryLocked()
	c.mu.Unlock()
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}

// State returns a read-only copy of the session.
func (c *Controller) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.snapshot()
}

// NetworkStatus reports the monitor's current view.
func (c *Controller) NetworkStatus() domain.NetworkStatus {
	return c.network.Status()
}

// Send runs one full turn for the user-entered text. It blocks until the
// turn settles (reply, scheduled retry, or terminal error); run it from its
// own goroutine when driving a UI. Empty input is a silent no-op.
func (c *Controller) Send(text string) {
	c.send(text, false)
}

// RetryNow is the user-triggered retry: counter back to zero, any pending
// automatic retry cancelled, last failed text re-sent.
func (c *Controller) RetryNow() {
	c.mu.Lock()
	text := c.session.lastFailed
	if text == "" {
		c.mu.Unlock()
		return
	}
	c.session.retryCount = 0
	c.session.retrying = false
	c.cancelRetryLocked()
	c.mu.Unlock()

	c.send(text, true)
}

// NewConversation resets the log to the greeting and drops the thread
// handle; the next turn starts a fresh thread.
func (c *Controller) NewConversation() {
	c.mu.Lock()
	c.cancelRetryLocked()
	c.session.reset(c.now())
	c.mu.Unlock()
	c.notify()
}

// Share builds a share snapshot from the current log.
func (c *Controller) Share(baseURL string) *domain.ShareSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Share(c.session.character, c.session.messages, baseURL)
}

func (c *Controller) send(text string, isRetry bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	c.mu.Lock()

	if c.network.Status() == domain.NetworkOffline {
		c.session.errText = msgOffline
		c.session.lastFailed = trimmed
		c.mu.Unlock()
		c.notify()
		return
	}

	if c.inFlight {
		// Callers must serialize turns; drop the overlap instead of racing
		// two appends onto the same thread.
		c.mu.Unlock()
		return
	}
	c.inFlight = true

	// A newly started turn supersedes any pending automatic retry.
	c.cancelRetryLocked()
	c.session.retrying = false

	if !isRetry {
		c.session.append(domain.RoleUser, trimmed, c.now())
		c.session.retryCount = 0
	}
	c.session.showHints = false
	c.session.composing = true
	c.session.errText = ""
	c.session.lastFailed = ""

	req := domain.TurnRequest{
		Message:     trimmed,
		CharacterID: c.session.character.ID,
		ThreadID:    c.session.threadID,
	}
	c.mu.Unlock()
	c.notify()

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	res, err := c.chat.SendTurn(ctx, req)
	cancel()

	c.mu.Lock()
	c.inFlight = false
	c.session.composing = false

	if err == nil {
		if res.ThreadID != "" {
			c.session.threadID = res.ThreadID
		}
		c.session.append(domain.RoleAssistant, res.Message, c.now())
		c.session.retryCount = 0
		c.session.retrying = false
		c.mu.Unlock()
		c.notify()
		return
	}

	kind, message := classify(err, c.session.character.ID)
	observability.WithFields(
		"character_id", c.session.character.ID,
		"retry_count", c.session.retryCount,
		"retryable", kind.Retryable(),
	).Warn("turn failed", "error", err)

	c.session.errText = message
	c.session.lastFailed = trimmed

	if kind.Retryable() && c.session.retryCount < maxAutoRetries {
		c.session.retrying = true
		delay := RetryDelay(c.session.retryCount)
		c.cancelRetryLocked()
		c.retryTimer = c.newTimer(delay, func() {
			c.mu.Lock()
			c.session.retryCount++
			c.session.retrying = false
			c.mu.Unlock()
			c.notify()
			c.send(trimmed, true)
		})
		c.mu.Unlock()
		c.notify()
		return
	}

	// Retry budget spent or not worth retrying: the error stays visible and
	// the log gets one fallback reply.
	c.session.retrying = false
	c.session.append(domain.RoleAssistant, msgFallback, c.now())
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) cancelRetryLocked() {
	if c.retryTimer != nil {
		c.retryTimer.Stop()
		c.retryTimer = nil
	}
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}

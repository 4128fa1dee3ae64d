// Package notify implements the transient notification service used by the
// site components. Messages are held in a managed queue with a fixed time to
// live instead of being appended to the host document directly, so the
// behaviour is testable and rendering stays declarative. Message text is
// always reduced to plain text before storage; markup never survives.
package notify

import (
	"html"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// Kind classifies a notification for styling and cue selection.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// DefaultTTL matches the auto-dismiss window of the site toasts.
const DefaultTTL = 6 * time.Second

// Notification is a single queued toast. Role and Live carry the ARIA
// live-region semantics renderers must emit so assistive technology announces
// the message.
type Notification struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Kind    Kind      `json:"kind"`
	Role    string    `json:"role"`
	Live    string    `json:"live"`
	Expires time.Time `json:"expires"`
}

// Notifier is the minimal surface components depend on.
type Notifier interface {
	Show(message string, kind Kind) Notification
}

var textPolicy = bluemonday.StrictPolicy()

// Center owns the notification queue. The zero value is not usable; construct
// with NewCenter.
type Center struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	after func(time.Duration, func())
	queue []Notification
}

// Option configures a Center.
type Option func(*Center)

// WithTTL overrides the auto-dismiss window. Non-positive values keep the
// default.
func WithTTL(ttl time.Duration) Option {
	return func(c *Center) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock injects a time source for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Center) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCenter constructs a notification center with default TTL plus any
// overrides.
func NewCenter(options ...Option) *Center {
	center := &Center{
		ttl: DefaultTTL,
		now: time.Now,
		after: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(center)
	}
	return center
}

// Show queues a notification. The message is sanitized to plain text; empty
// messages after sanitization are still queued so callers can rely on the
// returned ID.
func (c *Center) Show(message string, kind Kind) Notification {
	if kind == "" {
		kind = KindInfo
	}

	notification := Notification{
		ID:      uuid.NewString(),
		Message: PlainText(message),
		Kind:    kind,
		Role:    "alert",
		Live:    "polite",
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	notification.Expires = c.now().Add(c.ttl)
	c.prune()
	c.queue = append(c.queue, notification)
	// Expired entries are also dropped lazily on read; the sweep keeps the
	// queue from holding dismissed toasts when nothing reads for a while.
	c.after(c.ttl, c.Sweep)
	return notification
}

// Sweep drops every expired notification. It runs automatically one TTL after
// each Show; exposing it lets hosts with their own timers reclaim eagerly.
func (c *Center) Sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prune()
}

// Active returns the unexpired notifications in insertion order.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune()
	if len(c.queue) == 0 {
		return nil
	}
	out := make([]Notification, len(c.queue))
	copy(out, c.queue)
	return out
}

// Dismiss removes a notification before its TTL elapses. Unknown IDs are a
// no-op.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, notification := range c.queue {
		if notification.ID == id {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return
		}
	}
}

func (c *Center) prune() {
	now := c.now()
	kept := c.queue[:0]
	for _, notification := range c.queue {
		if notification.Expires.After(now) {
			kept = append(kept, notification)
		}
	}
	c.queue = kept
}

// PlainText strips all markup from raw and unescapes entities, yielding the
// text a toast may carry.
func PlainText(raw string) string {
	cleaned := textPolicy.Sanitize(raw)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// Discard returns a Notifier that drops every message; useful in tests and in
// hosts without a toast surface.
func Discard() Notifier {
	return discard{}
}

type discard struct{}

func (discard) Show(message string, kind Kind) Notification {
	return Notification{Message: PlainText(message), Kind: kind, Role: "alert", Live: "polite"}
}

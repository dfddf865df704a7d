// Package notify holds the transient banners shown at the top of the
// dashboard after an action ("School added successfully!").
//
// Banners are kept newest first. Each one is removed automatically once its
// TTL elapses; an admin may also dismiss it earlier. Removal is idempotent,
// so an expiry timer that fires after a manual dismissal does nothing.
package notify

import (
	"sync"
	"time"

	"github.com/dalemusser/stemboard/internal/app/system/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTTL is how long a banner stays up when nobody dismisses it.
const DefaultTTL = 5 * time.Second

// Severity selects the banner's styling.
type Severity string

const (
	Success Severity = "success"
	Info    Severity = "info"
	Danger  Severity = "danger"
)

// Banner is one visible notification.
type Banner struct {
	ID        string
	Message   string
	Severity  Severity
	ShownAt   time.Time
	ExpiresAt time.Time
}

// Notifier tracks the active banners. It is safe for concurrent use.
type Notifier struct {
	mu      sync.Mutex
	clock   clock.Clock
	ttl     time.Duration
	banners []Banner
	log     *zap.Logger
}

// New creates a Notifier. A non-positive ttl falls back to DefaultTTL.
func New(c clock.Clock, ttl time.Duration, logger *zap.Logger) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if c == nil {
		c = clock.Real{}
	}
	return &Notifier{
		clock: c,
		ttl:   ttl,
		log:   logger,
	}
}

// TTL returns the auto-dismiss delay.
func (n *Notifier) TTL() time.Duration {
	return n.ttl
}

// Show prepends a banner and schedules its removal.
func (n *Notifier) Show(message string, sev Severity) Banner {
	now := n.clock.Now()
	b := Banner{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  sev,
		ShownAt:   now,
		ExpiresAt: now.Add(n.ttl),
	}

	n.mu.Lock()
	n.banners = append([]Banner{b}, n.banners...)
	n.mu.Unlock()

	n.clock.AfterFunc(n.ttl, func() {
		if n.remove(b.ID) {
			n.log.Debug("notification expired", zap.String("id", b.ID))
		}
	})
	return b
}

// Dismiss removes the banner with id. It reports whether a banner was
// removed; dismissing an unknown or already-expired banner is not an error.
func (n *Notifier) Dismiss(id string) bool {
	return n.remove(id)
}

// Active returns the visible banners, newest first.
func (n *Notifier) Active() []Banner {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Banner, len(n.banners))
	copy(out, n.banners)
	return out
}

func (n *Notifier) remove(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, b := range n.banners {
		if b.ID == id {
			n.banners = append(n.banners[:i], n.banners[i+1:]...)
			return true
		}
	}
	return false
}

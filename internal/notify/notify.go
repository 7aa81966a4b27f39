package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
	Warning Kind = "warning"
	Call    Kind = "call"
)

const DefaultTTL = 5 * time.Second

const (
	// DefaultModalAge is how long an undismissed modal is kept.
	DefaultModalAge = 24 * time.Hour
	// DefaultFeedCap bounds one audience's feed; the oldest notice goes first.
	DefaultFeedCap = 50
)

// Notice is one user-visible message. Blocking notices (modals) stay until
// dismissed or aged out; the rest expire on their own. Modals carry no
// ExpiresAt.
type Notice struct {
	ID        string     `json:"id"`
	Kind      Kind       `json:"kind"`
	Message   string     `json:"message"`
	Blocking  bool       `json:"blocking"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// live reports whether a toast is before its expiry, or a modal younger than maxAge.
func (n Notice) live(now time.Time, maxAge time.Duration) bool {
	if n.Blocking {
		return now.Before(n.CreatedAt.Add(maxAge))
	}
	return n.ExpiresAt != nil && now.Before(*n.ExpiresAt)
}

// Notifier keeps a feed of notices per audience (a session or a client).
// Notices stack in arrival order; nothing is de-duplicated.
type Notifier struct {
	mu       sync.Mutex
	ttl      time.Duration
	modalAge time.Duration
	feedCap  int
	now      func() time.Time
	feeds    map[string][]Notice
	log      *zap.Logger
}

func New(ttl time.Duration, log *zap.Logger) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{
		ttl:      ttl,
		modalAge: DefaultModalAge,
		feedCap:  DefaultFeedCap,
		now:      time.Now,
		feeds:    make(map[string][]Notice),
		log:      log,
	}
}

// WithClock replaces the time source; used by tests.
func (n *Notifier) WithClock(now func() time.Time) *Notifier {
	n.now = now
	return n
}

// WithLimits sets the modal age and the per-audience feed cap.
// Non-positive values keep the defaults.
func (n *Notifier) WithLimits(modalAge time.Duration, feedCap int) *Notifier {
	if modalAge > 0 {
		n.modalAge = modalAge
	}
	if feedCap > 0 {
		n.feedCap = feedCap
	}
	return n
}

// Toast posts a non-blocking notice that disappears after the TTL.
func (n *Notifier) Toast(audience string, kind Kind, msg string) Notice {
	now := n.now()
	expires := now.Add(n.ttl)
	return n.push(audience, Notice{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   msg,
		CreatedAt: now,
		ExpiresAt: &expires,
	})
}

// Modal posts a blocking notice that stays until Dismiss or until it is
// older than the modal age.
func (n *Notifier) Modal(audience string, kind Kind, msg string) Notice {
	return n.push(audience, Notice{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   msg,
		Blocking:  true,
		CreatedAt: n.now(),
	})
}

func (n *Notifier) push(audience string, nt Notice) Notice {
	n.log.Debug("notice",
		zap.String("audience", audience),
		zap.String("kind", string(nt.Kind)),
		zap.Bool("blocking", nt.Blocking),
		zap.String("message", nt.Message),
	)
	// anonymous callers get the notice in the response only
	if audience == "" {
		return nt
	}
	n.mu.Lock()
	feed := append(n.feeds[audience], nt)
	if over := len(feed) - n.feedCap; over > 0 {
		feed = append(feed[:0:0], feed[over:]...)
	}
	n.feeds[audience] = feed
	n.mu.Unlock()
	return nt
}

// Pending returns the live notices of an audience, oldest first.
func (n *Notifier) Pending(audience string) []Notice {
	now := n.now()
	n.mu.Lock()
	defer n.mu.Unlock()

	var out []Notice
	for _, nt := range n.feeds[audience] {
		if nt.live(now, n.modalAge) {
			out = append(out, nt)
		}
	}
	return out
}

// Dismiss removes a notice explicitly. It reports false for unknown ids.
func (n *Notifier) Dismiss(audience, id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	feed := n.feeds[audience]
	for i, nt := range feed {
		if nt.ID == id {
			n.feeds[audience] = append(feed[:i:i], feed[i+1:]...)
			if len(n.feeds[audience]) == 0 {
				delete(n.feeds, audience)
			}
			return true
		}
	}
	return false
}

// Sweep drops dead notices and empty feeds, returning how many notices went.
func (n *Notifier) Sweep() int {
	now := n.now()
	n.mu.Lock()
	defer n.mu.Unlock()

	dropped := 0
	for aud, feed := range n.feeds {
		kept := feed[:0]
		for _, nt := range feed {
			if nt.live(now, n.modalAge) {
				kept = append(kept, nt)
			} else {
				dropped++
			}
		}
		if len(kept) == 0 {
			delete(n.feeds, aud)
		} else {
			n.feeds[aud] = kept
		}
	}
	return dropped
}

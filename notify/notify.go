// Package notify holds transient user-facing messages (toasts).
package notify

import "time"

type Severity int

const (
	Info Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "info"
}

// Notification is a fire-and-forget message. Nothing keeps it after it
// expires.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

func Infof(title string, description string) Notification {
	return Notification{Title: title, Description: description, Severity: Info}
}

func Errorf(title string, description string) Notification {
	return Notification{Title: title, Description: description, Severity: Error}
}

// Toast is a notification that is on screen.
type Toast struct {
	ID        int
	Message   Notification
	ExpiresAt time.Time
}

// Center tracks visible toasts. The newest toast is last.
type Center struct {
	ttl    time.Duration
	nextID int
	toasts []Toast
	limit  int
}

const (
	DefaultTTL   = 3 * time.Second
	defaultLimit = 3
)

func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl, limit: defaultLimit}
}

func (c *Center) TTL() time.Duration {
	return c.ttl
}

// Push shows n and returns the toast ID, which Dismiss expects later. When
// the limit is reached the oldest toast is dropped.
func (c *Center) Push(n Notification, now time.Time) int {
	c.nextID++
	c.toasts = append(c.toasts, Toast{ID: c.nextID, Message: n, ExpiresAt: now.Add(c.ttl)})
	if len(c.toasts) > c.limit {
		c.toasts = c.toasts[len(c.toasts)-c.limit:]
	}
	return c.nextID
}

func (c *Center) Dismiss(id int) {
	for i, toast := range c.toasts {
		if toast.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return
		}
	}
}

// Active returns the toasts that have not expired by now.
func (c *Center) Active(now time.Time) []Toast {
	out := make([]Toast, 0, len(c.toasts))
	for _, toast := range c.toasts {
		if now.Before(toast.ExpiresAt) {
			out = append(out, toast)
		}
	}
	return out
}

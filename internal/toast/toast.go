package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level is the visual severity of a toast
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Toast is a single transient user-facing notification
type Toast struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier raises transient user-facing notifications. The outbound HTTP
// layer depends on this interface so error normalization can be tested
// without a real toast sink.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
	Warning(message string)
}

// DefaultRetain is how many recent toasts the center keeps for late readers
const DefaultRetain = 50

// Center collects toasts and fans them out to subscribers. Pure in-process
// state; no I/O and no transition can fail.
type Center struct {
	mu          sync.Mutex
	recent      []Toast
	retain      int
	subscribers map[int]chan Toast
	nextSub     int
}

// NewCenter creates a toast center retaining the given number of recent
// toasts (DefaultRetain if n <= 0).
func NewCenter(n int) *Center {
	if n <= 0 {
		n = DefaultRetain
	}
	return &Center{
		retain:      n,
		subscribers: make(map[int]chan Toast),
	}
}

// Success raises a success toast
func (c *Center) Success(message string) { c.push(LevelSuccess, message) }

// Error raises an error toast
func (c *Center) Error(message string) { c.push(LevelError, message) }

// Info raises an info toast
func (c *Center) Info(message string) { c.push(LevelInfo, message) }

// Warning raises a warning toast
func (c *Center) Warning(message string) { c.push(LevelWarning, message) }

func (c *Center) push(level Level, message string) {
	t := Toast{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.recent = append(c.recent, t)
	if len(c.recent) > c.retain {
		c.recent = c.recent[len(c.recent)-c.retain:]
	}

	for _, ch := range c.subscribers {
		select {
		case ch <- t:
		default:
			// Slow subscriber, drop rather than block the caller
		}
	}
}

// Recent returns the retained toasts, oldest first
func (c *Center) Recent() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Toast, len(c.recent))
	copy(out, c.recent)
	return out
}

// Subscribe returns a channel receiving future toasts and a cancel function.
// The channel is buffered; toasts are dropped for subscribers that fall behind.
func (c *Center) Subscribe() (<-chan Toast, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan Toast, 16)
	c.subscribers[id] = ch

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subscribers[id]; ok {
			delete(c.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}

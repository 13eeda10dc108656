// Package notify holds the single transient status message shown to the
// user after an action. A message clears itself after a timeout.
package notify

import (
	"sync"
	"time"
)

// DefaultTimeout is how long a message stays visible
const DefaultTimeout = 3 * time.Second

// Kind classifies a message for display
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

// Message is one user-facing status line
type Message struct {
	Text string `json:"text"`
	Kind Kind   `json:"type"`
}

// Notifier keeps the currently visible message. Showing a new message
// cancels the pending clear of the previous one.
type Notifier struct {
	mu        sync.Mutex
	timeout   time.Duration
	current   *Message
	timer     *time.Timer
	seq       uint64
	listeners []func(Message)
}

// New returns a notifier whose messages clear after timeout.
// A non-positive timeout means DefaultTimeout.
func New(timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Notifier{timeout: timeout}
}

// Show replaces the visible message and arms its clear timer
func (n *Notifier) Show(text string, kind Kind) {
	msg := Message{Text: text, Kind: kind}

	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	seq := n.seq
	n.current = &msg
	n.timer = time.AfterFunc(n.timeout, func() { n.clear(seq) })
	listeners := append([]func(Message){}, n.listeners...)
	n.mu.Unlock()

	for _, fn := range listeners {
		fn(msg)
	}
}

// clear drops the message only if it is still the one armed with seq
func (n *Notifier) clear(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seq == seq {
		n.current = nil
		n.timer = nil
	}
}

// Current returns a copy of the visible message, or nil
func (n *Notifier) Current() *Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	msg := *n.current
	return &msg
}

// Dismiss clears the visible message immediately
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.seq++
	n.current = nil
}

// Subscribe registers fn to be called with every shown message
func (n *Notifier) Subscribe(fn func(Message)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

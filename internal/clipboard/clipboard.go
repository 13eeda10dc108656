// SPDX-License-Identifier: MIT
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// ErrUnavailable means the host has no usable system clipboard
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer puts text on a clipboard
type Writer interface {
	WriteText(text string) error
}

// WriterFunc adapts a function to Writer
type WriterFunc func(text string) error

func (f WriterFunc) WriteText(text string) error {
	return f(text)
}

// System writes to the OS clipboard. It is initialized lazily on first use.
type System struct {
	once    sync.Once
	initErr error
}

// NewSystem returns a writer for the OS clipboard
func NewSystem() *System {
	return &System{}
}

func (s *System) WriteText(text string) error {
	s.once.Do(func() {
		s.initErr = clipboard.Init()
	})
	if s.initErr != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, s.initErr)
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// Unavailable is a Writer for hosts without clipboard support
type Unavailable struct{}

func (Unavailable) WriteText(string) error {
	return ErrUnavailable
}

// SPDX-License-Identifier: MIT
package themes

import (
	"sync"

	"github.com/muesli/termenv"
)

// ColorScheme reports the host's preferred color scheme
type ColorScheme interface {
	PrefersDark() bool
}

// Document receives the root element attributes
type Document interface {
	SetAttribute(name, value string)
}

// TerminalScheme asks the terminal for its background color
type TerminalScheme struct{}

func (TerminalScheme) PrefersDark() bool {
	return termenv.HasDarkBackground()
}

// StaticScheme is a color scheme the caller sets, such as the one a
// browser client reports over the API
type StaticScheme struct {
	mu   sync.RWMutex
	dark bool
}

// NewStaticScheme returns a scheme starting at dark
func NewStaticScheme(dark bool) *StaticScheme {
	return &StaticScheme{dark: dark}
}

func (s *StaticScheme) PrefersDark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// SetDark updates the reported preference
func (s *StaticScheme) SetDark(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = dark
}

// Attributes is an in-memory Document
type Attributes struct {
	mu    sync.RWMutex
	attrs map[string]string
}

// NewAttributes returns an empty attribute set
func NewAttributes() *Attributes {
	return &Attributes{attrs: map[string]string{}}
}

func (a *Attributes) SetAttribute(name, value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.attrs[name] = value
}

// Get returns the attribute value, or "" when unset
func (a *Attributes) Get(name string) string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.attrs[name]
}

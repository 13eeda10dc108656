// SPDX-License-Identifier: MIT

// Package themes holds the app themes, the light/dark mode preference and
// the CSS generated from them.
package themes

import (
	"sync"

	"github.com/thatcatcamp/workbench/internal/logging"
	"github.com/thatcatcamp/workbench/internal/storage"
	"go.uber.org/zap"
)

// ModePreference is the stored mode choice
type ModePreference string

const (
	PreferenceLight  ModePreference = "light"
	PreferenceDark   ModePreference = "dark"
	PreferenceSystem ModePreference = "system"
)

// DefaultPreference is used when nothing valid is stored
const DefaultPreference = PreferenceSystem

var preferenceCycle = []ModePreference{PreferenceSystem, PreferenceLight, PreferenceDark}

// ValidPreference reports whether p is a known preference
func ValidPreference(p string) bool {
	for _, v := range preferenceCycle {
		if string(v) == p {
			return true
		}
	}
	return false
}

// Mode is the resolved mode applied to the document
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Root element attributes
const (
	AttrTheme = "data-theme"
	AttrMode  = "data-mode"
)

// Platform describes what the host supports. Without Browser, stored
// preferences are neither read nor written and the color scheme is never
// queried.
type Platform struct {
	Browser bool
}

// State is a snapshot of the active theme and mode
type State struct {
	Theme      ThemeName      `json:"theme"`
	Preference ModePreference `json:"preference"`
	Mode       Mode           `json:"mode"`
}

// Service tracks the active theme and mode and applies them to a document
type Service struct {
	mu         sync.Mutex
	platform   Platform
	store      storage.Store
	scheme     ColorScheme
	doc        Document
	logger     *zap.Logger
	theme      ThemeName
	preference ModePreference
	mode       Mode
}

// NewService returns a service with the default theme and preference
func NewService(platform Platform, store storage.Store, scheme ColorScheme, doc Document, logger *zap.Logger) *Service {
	if scheme == nil {
		scheme = NewStaticScheme(false)
	}
	if doc == nil {
		doc = NewAttributes()
	}
	return &Service{
		platform:   platform,
		store:      storage.ForPlatform(platform.Browser, store),
		scheme:     scheme,
		doc:        doc,
		logger:     logging.OrNop(logger).Named("themes"),
		theme:      DefaultTheme,
		preference: DefaultPreference,
		mode:       ModeLight,
	}
}

// Initialize applies the stored theme and mode
func (s *Service) Initialize() {
	if !s.platform.Browser {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activateTheme(s.storedTheme())
	s.activateMode(s.storedPreference())
}

// ToggleTheme moves to the next theme
func (s *Service) ToggleTheme() ThemeName {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activateTheme(nextTheme(s.theme))
	return s.theme
}

// ToggleMode moves system -> light -> dark -> system
func (s *Service) ToggleMode() ModePreference {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := preferenceCycle[0]
	for i, p := range preferenceCycle {
		if p == s.preference {
			next = preferenceCycle[(i+1)%len(preferenceCycle)]
			break
		}
	}
	s.activateMode(next)
	return s.preference
}

// HandleColorSchemeChange re-resolves the mode after the host's color
// scheme changed
func (s *Service) HandleColorSchemeChange() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activateMode(s.preference)
}

// ActiveTheme returns the active theme
func (s *Service) ActiveTheme() ThemeName {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ActivePreference returns the active mode preference
func (s *Service) ActivePreference() ModePreference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preference
}

// ActiveMode returns the resolved mode
func (s *Service) ActiveMode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// State returns a snapshot of theme, preference and mode
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Theme: s.theme, Preference: s.preference, Mode: s.mode}
}

// Colors returns the role colors for the active theme and mode
func (s *Service) Colors() (*Colors, error) {
	st := s.State()
	return GenerateColors(GetTheme(st.Theme), st.Mode == ModeDark)
}

func (s *Service) activateTheme(theme ThemeName) {
	s.theme = theme
	if err := s.store.SetItem(storage.KeyTheme, string(theme)); err != nil {
		s.logger.Warn("failed to store theme", zap.Error(err))
	}
	s.doc.SetAttribute(AttrTheme, string(theme))
}

func (s *Service) activateMode(preference ModePreference) {
	s.preference = preference
	mode := Mode(preference)
	if preference == PreferenceSystem {
		mode = ModeLight
		if s.platform.Browser && s.scheme.PrefersDark() {
			mode = ModeDark
		}
	}
	s.mode = mode
	if err := s.store.SetItem(storage.KeyMode, string(preference)); err != nil {
		s.logger.Warn("failed to store mode preference", zap.Error(err))
	}
	s.doc.SetAttribute(AttrMode, string(mode))
}

func (s *Service) storedTheme() ThemeName {
	v, ok, err := s.store.GetItem(storage.KeyTheme)
	if err != nil || !ok || !ValidTheme(v) {
		return DefaultTheme
	}
	return ThemeName(v)
}

func (s *Service) storedPreference() ModePreference {
	v, ok, err := s.store.GetItem(storage.KeyMode)
	if err != nil || !ok || !ValidPreference(v) {
		return DefaultPreference
	}
	return ModePreference(v)
}

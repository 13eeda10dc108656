// SPDX-License-Identifier: MIT

// Package commit composes conventional commit messages and keeps a list
// of saved messages in the local store.
package commit

import (
	"fmt"
	"strings"
)

// Breaking change indicators
const (
	IndicatorBang   = "bang"
	IndicatorFooter = "footer"
)

// DefaultType is the type a fresh form starts with
const DefaultType = "feat"

// Types are the commit types offered by the form
var Types = []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "build", "ci", "chore", "revert"}

// Footer is one user-defined "token: value" trailer
type Footer struct {
	ID    int    `json:"id"`
	Token string `json:"token"`
	Value string `json:"value"`
}

// Form holds every field of the composer
type Form struct {
	Type                      string   `json:"type"`
	Scope                     string   `json:"scope"`
	Description               string   `json:"description"`
	Body                      string   `json:"body"`
	IsBreakingChange          bool     `json:"isBreakingChange"`
	BreakingChangeIndicator   string   `json:"breakingChangeIndicator"`
	BreakingChangeDescription string   `json:"breakingChangeDescription"`
	Footers                   []Footer `json:"footers"`
}

// NewForm returns an empty form with the default type and indicator
func NewForm() Form {
	return Form{
		Type:                    DefaultType,
		BreakingChangeIndicator: IndicatorBang,
		Footers:                 []Footer{},
	}
}

// Clone returns a copy that shares no footer storage with f
func (f Form) Clone() Form {
	out := f
	out.Footers = append([]Footer{}, f.Footers...)
	return out
}

// Header returns the first line: type[(scope)][!]: description
func (f Form) Header() string {
	var b strings.Builder
	b.WriteString(f.Type)
	if scope := strings.TrimSpace(f.Scope); scope != "" {
		fmt.Fprintf(&b, "(%s)", scope)
	}
	if f.IsBreakingChange && f.BreakingChangeIndicator == IndicatorBang {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(strings.TrimSpace(f.Description))
	return b.String()
}

// Trailers returns the footer lines in order, skipping incomplete footers
func (f Form) Trailers() []string {
	var lines []string
	desc := strings.TrimSpace(f.BreakingChangeDescription)
	if f.IsBreakingChange && f.BreakingChangeIndicator == IndicatorFooter && desc != "" {
		lines = append(lines, "BREAKING CHANGE: "+desc)
	}
	for _, footer := range f.Footers {
		token := strings.TrimSpace(footer.Token)
		value := strings.TrimSpace(footer.Value)
		if token == "" || value == "" {
			continue
		}
		lines = append(lines, token+": "+value)
	}
	return lines
}

// Message renders the full commit message
func (f Form) Message() string {
	parts := []string{f.Header()}
	if body := strings.TrimSpace(f.Body); body != "" {
		parts = append(parts, "", body)
	}
	if trailers := f.Trailers(); len(trailers) > 0 {
		parts = append(parts, "")
		parts = append(parts, trailers...)
	}
	return strings.Join(parts, "\n")
}

// ParseFooter splits "token: value" or "token=value"
func ParseFooter(s string) (token, value string, err error) {
	for _, sep := range []string{": ", "=", ":"} {
		if i := strings.Index(s, sep); i > 0 {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(sep):]), nil
		}
	}
	return "", "", fmt.Errorf("footer %q must look like token=value", s)
}

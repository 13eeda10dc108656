// SPDX-License-Identifier: MIT
package palette

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/thatcatcamp/workbench/internal/clipboard"
	"github.com/thatcatcamp/workbench/internal/colorspace"
	"github.com/thatcatcamp/workbench/internal/logging"
	"github.com/thatcatcamp/workbench/internal/notify"
	"github.com/thatcatcamp/workbench/internal/storage"
	"go.uber.org/zap"
)

var (
	hexInput6 = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
	hexInput3 = regexp.MustCompile(`^[0-9A-Fa-f]{3}$`)
)

// Editor is the interactive palette generator. Every setter recomputes
// the derived state; a failed recompute keeps the previous result.
type Editor struct {
	mu       sync.Mutex
	input    Input
	result   *Result
	autoSave bool

	store    storage.Store
	notifier *notify.Notifier
	logger   *zap.Logger
}

// NewEditor returns an editor holding the default input. Call Init to
// restore persisted state and run the first generation.
func NewEditor(store storage.Store, notifier *notify.Notifier, logger *zap.Logger) *Editor {
	if store == nil {
		store = storage.Disabled{}
	}
	if notifier == nil {
		notifier = notify.New(notify.DefaultTimeout)
	}
	return &Editor{
		input:    DefaultInput(),
		store:    store,
		notifier: notifier,
		logger:   logging.OrNop(logger).Named("palette"),
	}
}

// Init restores the persisted input, if any, and generates from it
func (e *Editor) Init() (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loadLocked()
	return e.recomputeLocked()
}

// Input returns the current generation input
func (e *Editor) Input() Input {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.input
}

// Result returns the last successful generation, or nil
func (e *Editor) Result() *Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

// Notifier returns the editor's message channel
func (e *Editor) Notifier() *notify.Notifier {
	return e.notifier
}

// SetAutoSave toggles persisting the input after every successful recompute
func (e *Editor) SetAutoSave(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.autoSave = on
}

// AutoSave reports whether auto-save is on
func (e *Editor) AutoSave() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.autoSave
}

// SetInput replaces the whole input
func (e *Editor) SetInput(in Input) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.input = in
	return e.recomputeLocked()
}

// SetBaseColor sets the base color as picked, uppercased
func (e *Editor) SetBaseColor(hex string) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.input.BaseColorHex = strings.ToUpper(hex)
	return e.recomputeLocked()
}

// SetHexInput accepts typed hex text with or without '#', in 3- or
// 6-digit form. Anything else is ignored and the current result returned.
func (e *Editor) SetHexInput(raw string) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cleaned := strings.TrimPrefix(raw, "#")
	var hex string
	switch {
	case hexInput6.MatchString(cleaned):
		hex = "#" + cleaned
	case hexInput3.MatchString(cleaned):
		hex = "#" + string([]byte{cleaned[0], cleaned[0], cleaned[1], cleaned[1], cleaned[2], cleaned[2]})
	default:
		return e.result, nil
	}

	e.input.BaseColorHex = strings.ToUpper(hex)
	return e.recomputeLocked()
}

// SetSaturation moves the saturation slider and re-tints the base color
// to the new saturation, keeping its hue and lightness.
func (e *Editor) SetSaturation(v float64) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.input.Saturation = v
	if c, err := colorspace.HexToRGB(e.input.BaseColorHex); err == nil {
		hsl := c.HSL()
		e.input.BaseColorHex = colorspace.HSLToRGB(hsl.H, v/100, hsl.L).Hex()
	}
	return e.recomputeLocked()
}

// SetLightness moves the lightness slider and re-tints the base color
// to the new lightness, keeping its hue and saturation.
func (e *Editor) SetLightness(v float64) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.input.Lightness = v
	if c, err := colorspace.HexToRGB(e.input.BaseColorHex); err == nil {
		hsl := c.HSL()
		e.input.BaseColorHex = colorspace.HSLToRGB(hsl.H, hsl.S, v/100).Hex()
	}
	return e.recomputeLocked()
}

// ApplyRecommendation makes a recommended color the new base, moving
// both sliders to its saturation and lightness.
func (e *Editor) ApplyRecommendation(rec Recommendation) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := colorspace.HexToRGB(rec.Hex)
	if err != nil {
		e.notifier.Show(fmt.Sprintf("Recommendation %q has an invalid color.", rec.Name), notify.Error)
		return e.result, err
	}
	hsl := c.HSL()
	e.input = Input{
		BaseColorHex: strings.ToUpper(rec.Hex),
		Saturation:   math.Round(hsl.S * 100),
		Lightness:    math.Round(hsl.L * 100),
	}

	res, err := e.recomputeLocked()
	if err != nil {
		return res, err
	}
	e.notifier.Show(fmt.Sprintf("Using %s as the new base color.", rec.Name), notify.Info)
	return res, nil
}

// Recompute regenerates everything from the current input
func (e *Editor) Recompute() (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.recomputeLocked()
}

func (e *Editor) recomputeLocked() (*Result, error) {
	res, err := Generate(e.input)
	if err != nil {
		e.logger.Debug("generation rejected", zap.String("base", e.input.BaseColorHex), zap.Error(err))
		e.notifier.Show(fmt.Sprintf("Enter a valid HEX base color (e.g. #3B82F6): %v", err), notify.Error)
		return e.result, err
	}

	e.result = res
	e.logger.Debug("palette generated",
		zap.String("base", e.input.BaseColorHex),
		zap.Float64("saturation", e.input.Saturation),
		zap.Float64("lightness", e.input.Lightness))
	e.notifier.Show("Palette and recommendations generated.", notify.Success)

	if e.autoSave {
		if err := e.saveLocked(); err != nil {
			e.logger.Error("failed to save color state", zap.Error(err))
		}
	}
	return res, nil
}

// Save persists the current input
func (e *Editor) Save() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.saveLocked(); err != nil {
		e.logger.Error("failed to save color state", zap.Error(err))
		e.notifier.Show("Could not save the color state.", notify.Error)
		return err
	}
	return nil
}

func (e *Editor) saveLocked() error {
	if err := storage.SetJSON(e.store, storage.KeyPaletteState, e.input); err != nil {
		return err
	}
	e.notifier.Show("Color state saved.", notify.Info)
	return nil
}

// Load restores the persisted input without recomputing. It reports
// whether a valid state was found.
func (e *Editor) Load() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadLocked()
}

func (e *Editor) loadLocked() bool {
	raw, ok, err := e.store.GetItem(storage.KeyPaletteState)
	if err != nil {
		e.logger.Error("failed to load color state", zap.Error(err))
		return false
	}
	if !ok {
		return false
	}

	in, err := decodeState(raw)
	if err != nil {
		e.logger.Warn("stored color state is corrupt or incomplete", zap.Error(err))
		return false
	}
	e.input = in
	e.notifier.Show("Color state loaded.", notify.Info)
	return true
}

// decodeState requires a string base color and two numbers
func decodeState(raw string) (Input, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return Input{}, fmt.Errorf("malformed JSON: %w", err)
	}
	hex, ok := fields["baseColorHex"].(string)
	if !ok {
		return Input{}, fmt.Errorf("baseColorHex is not a string")
	}
	sat, ok := fields["saturation"].(float64)
	if !ok {
		return Input{}, fmt.Errorf("saturation is not a number")
	}
	light, ok := fields["lightness"].(float64)
	if !ok {
		return Input{}, fmt.Errorf("lightness is not a number")
	}
	return Input{BaseColorHex: hex, Saturation: sat, Lightness: light}, nil
}

// CopyCode puts the generated Sass code on the clipboard. The outcome
// is reported through the notifier.
func (e *Editor) CopyCode(w clipboard.Writer) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.result == nil {
		e.notifier.Show("No palette has been generated yet.", notify.Error)
		return fmt.Errorf("no palette generated")
	}
	if w == nil {
		w = clipboard.Unavailable{}
	}
	if err := w.WriteText(e.result.Code); err != nil {
		e.logger.Error("failed to copy palette code", zap.Error(err))
		e.notifier.Show("Could not copy the text.", notify.Error)
		return err
	}
	e.notifier.Show("Sass palette code copied.", notify.Success)
	return nil
}

package palette

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/thatcatcamp/workbench/internal/colorspace"
)

// Defaults for a fresh generation input
const (
	DefaultBaseColor  = "#3B82F6"
	DefaultSaturation = 100
	DefaultLightness  = 50
)

var (
	// ErrInvalidBaseColor is returned when the base color is not #RRGGBB
	ErrInvalidBaseColor = errors.New("base color must be a 6-digit hex value such as #3B82F6")
	// ErrOutOfRange is returned when a slider value is outside 0..100
	ErrOutOfRange = errors.New("value must be between 0 and 100")
)

var strictHex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Input is the durable state that drives a generation run
type Input struct {
	BaseColorHex string  `json:"baseColorHex"`
	Saturation   float64 `json:"saturation"`
	Lightness    float64 `json:"lightness"`
}

// DefaultInput returns the initial generation input
func DefaultInput() Input {
	return Input{
		BaseColorHex: DefaultBaseColor,
		Saturation:   DefaultSaturation,
		Lightness:    DefaultLightness,
	}
}

// Validate checks the base color format and slider ranges
func (in Input) Validate() error {
	if !strictHex.MatchString(in.BaseColorHex) {
		return fmt.Errorf("%w: %q", ErrInvalidBaseColor, in.BaseColorHex)
	}
	if !inPercentRange(in.Saturation) {
		return fmt.Errorf("saturation %v: %w", in.Saturation, ErrOutOfRange)
	}
	if !inPercentRange(in.Lightness) {
		return fmt.Errorf("lightness %v: %w", in.Lightness, ErrOutOfRange)
	}
	return nil
}

// inPercentRange rejects NaN along with anything outside 0..100
func inPercentRange(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 100
}

// Result is everything derived from one Input
type Result struct {
	Input           Input            `json:"input"`
	Set             *Set             `json:"palettes"`
	Recommendations []Recommendation `json:"recommendations"`
	Code            string           `json:"code"`
}

// Primary is the primary tonal palette of the result
func (r *Result) Primary() TonalPalette {
	if r == nil || r.Set == nil {
		return nil
	}
	return r.Set.Primary
}

// Generate runs the full pipeline: palettes, recommendations and Sass code.
// It is deterministic for a given input.
func Generate(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	base, err := colorspace.HexToRGB(in.BaseColorHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base color: %w", err)
	}

	set, err := BuildSet(in.BaseColorHex, in.Saturation, in.Lightness)
	if err != nil {
		return nil, err
	}

	return &Result{
		Input:           in,
		Set:             set,
		Recommendations: Recommend(set, base.HSL().H, in.Saturation, in.Lightness),
		Code:            EmitSass(set),
	}, nil
}

// SPDX-License-Identifier: MIT
package palette

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/thatcatcamp/workbench/internal/colorspace"
)

// Tone is a step on the 0..100 tonal scale
type Tone int

// BaseTone is the representative tone of a palette
const BaseTone Tone = 50

// ToneSteps is the main tonal ramp
var ToneSteps = []Tone{0, 10, 20, 25, 30, 35, 40, 50, 60, 70, 80, 90, 95, 98, 99, 100}

// SupplementarySteps are the extra surface tones
var SupplementarySteps = []Tone{4, 6, 12, 17, 22, 24, 87, 92, 94, 96}

// TonalPalette maps tones to #RRGGBB colors
type TonalPalette map[Tone]string

// Keys returns the tones in ascending order
func (p TonalPalette) Keys() []Tone {
	keys := make([]Tone, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Get returns the color at tone, if present
func (p TonalPalette) Get(tone Tone) (string, bool) {
	hex, ok := p[tone]
	return hex, ok
}

// Base returns the tone-50 color, or "" if the palette has none
func (p TonalPalette) Base() string {
	return p[BaseTone]
}

// MarshalJSON writes tones in ascending order
func (p TonalPalette) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(int(k))))
		buf.WriteByte(':')
		v, err := json.Marshal(p[k])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// toneLightness maps a tone onto HSL lightness: tones up to 50 scale
// toward the target lightness, tones above it blend toward white.
func toneLightness(tone Tone, target float64) float64 {
	step := float64(tone)
	var l float64
	if step <= 50 {
		l = target * (step / 50)
	} else {
		l = target + (1-target)*((step-50)/50)
	}
	return math.Max(0, math.Min(1, l))
}

// GenerateTonal builds a tonal palette that keeps the hue of baseHex and
// the target saturation, spreading lightness across the tone steps.
// saturation and lightness are percentages (0..100).
func GenerateTonal(baseHex string, saturation, lightness float64) (TonalPalette, error) {
	base, err := colorspace.HexToRGB(baseHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base color: %w", err)
	}
	hue := base.HSL().H
	s := saturation / 100
	l := lightness / 100

	p := make(TonalPalette, len(ToneSteps)+len(SupplementarySteps))
	for _, step := range ToneSteps {
		p[step] = colorspace.HSLToRGB(hue, s, toneLightness(step, l)).Hex()
	}
	for _, step := range SupplementarySteps {
		if _, ok := p[step]; ok {
			continue
		}
		p[step] = colorspace.HSLToRGB(hue, s, toneLightness(step, l)).Hex()
	}
	return p, nil
}

// SPDX-License-Identifier: MIT
package colorspace

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a string is not a 3- or 6-digit hex color
var ErrInvalidHex = errors.New("invalid hex color")

var (
	shorthandHex = regexp.MustCompile(`^#?([0-9a-fA-F])([0-9a-fA-F])([0-9a-fA-F])$`)
	fullHex      = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
)

// RGB is an sRGB color with 8-bit channels
type RGB struct {
	R, G, B uint8
}

// HSL holds hue, saturation and lightness, each normalized to [0,1].
// Hue is a fraction of a full turn.
type HSL struct {
	H, S, L float64
}

// Hex returns the canonical #RRGGBB form
func (c RGB) Hex() string {
	return RGBToHex(float64(c.R), float64(c.G), float64(c.B))
}

// HSL converts the color to HSL
func (c RGB) HSL() HSL {
	return RGBToHSL(c.R, c.G, c.B)
}

// RGB converts the color to 8-bit RGB
func (c HSL) RGB() RGB {
	return HSLToRGB(c.H, c.S, c.L)
}

// Hex returns the canonical #RRGGBB form
func (c HSL) Hex() string {
	return c.RGB().Hex()
}

// HexToRGB parses "#RGB", "RGB", "#RRGGBB" or "RRGGBB", case-insensitive
func HexToRGB(hex string) (RGB, error) {
	hex = shorthandHex.ReplaceAllString(hex, "$1$1$2$2$3$3")

	m := fullHex.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	var out [3]uint8
	for i := range out {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
		out[i] = uint8(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// NormalizeHex expands shorthand and returns the uppercase #RRGGBB form
func NormalizeHex(hex string) (string, error) {
	c, err := HexToRGB(strings.TrimSpace(hex))
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// RGBToHSL converts 8-bit channels to HSL
func RGBToHSL(r, g, b uint8) HSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	hi := math.Max(rf, math.Max(gf, bf))
	lo := math.Min(rf, math.Min(gf, bf))
	l := (hi + lo) / 2

	if hi == lo {
		// achromatic
		return HSL{H: 0, S: 0, L: l}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h /= 6

	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts HSL to 8-bit channels. Channels are rounded and
// clamped so out-of-range saturation or lightness cannot wrap.
func HSLToRGB(h, s, l float64) RGB {
	var r, g, b float64

	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToChannel(p, q, h+1.0/3)
		g = hueToChannel(p, q, h)
		b = hueToChannel(p, q, h-1.0/3)
	}

	return RGB{R: toByte(r * 255), G: toByte(g * 255), B: toByte(b * 255)}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// RGBToHex rounds each channel to the nearest integer, clamps it to
// [0,255] and formats the result as uppercase #RRGGBB.
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02X%02X%02X", toByte(r), toByte(g), toByte(b))
}

// toByte rounds half up and clamps to the 8-bit range
func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Floor(v + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// RotateHue shifts a hue fraction by the given number of degrees,
// wrapping into [0,1).
func RotateHue(h, degrees float64) float64 {
	deg := math.Mod(h*360+degrees, 360)
	if deg < 0 {
		deg += 360
	}
	return deg / 360
}

// TextColor picks a readable foreground for the given background:
// "#333" for light backgrounds and "#fff" for dark ones.
func TextColor(hex string) string {
	c, err := HexToRGB(hex)
	if err != nil {
		return "#333"
	}
	luminance := 0.2126*(float64(c.R)/255) + 0.7152*(float64(c.G)/255) + 0.0722*(float64(c.B)/255)
	if luminance > 0.5 {
		return "#333"
	}
	return "#fff"
}

// RelativeLuminance returns the WCAG relative luminance (CIE Y) of the color
func RelativeLuminance(c RGB) float64 {
	_, y, _ := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Xyz()
	return y
}

// ContrastRatio returns the WCAG contrast ratio between two colors (1..21)
func ContrastRatio(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

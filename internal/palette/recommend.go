package palette

import (
	"math"

	"github.com/thatcatcamp/workbench/internal/colorspace"
)

// Recommendation names, in output order
const (
	RecPrimary            = "Primary"
	RecSecondary          = "Secondary"
	RecTertiary           = "Tertiary"
	RecLightNeutral       = "Light Neutral"
	RecDarkNeutralVariant = "Dark Neutral Variant"
	RecComplementary      = "Complementary"
	RecAccent             = "Accent"
	RecError              = "Error"
)

// Recommendation is a named color suggested from a palette set
type Recommendation struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// RepresentativeShade returns the color at preferred, or at the nearest
// tone when it is missing. Ties go to the lower tone. An empty palette
// yields black.
func RepresentativeShade(p TonalPalette, preferred Tone) string {
	if hex, ok := p[preferred]; ok && hex != "" {
		return hex
	}
	keys := p.Keys()
	if len(keys) == 0 {
		return "#000000"
	}
	closest := keys[0]
	for _, k := range keys[1:] {
		if distance(k, preferred) < distance(closest, preferred) {
			closest = k
		}
	}
	return p[closest]
}

func distance(a, b Tone) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Recommend picks the eight suggested colors for a generated set.
// baseHue is the hue fraction of the base color; saturation and
// lightness are the slider percentages.
func Recommend(set *Set, baseHue, saturation, lightness float64) []Recommendation {
	s := saturation / 100
	l := lightness / 100

	complementary := colorspace.HSLToRGB(math.Mod(baseHue+0.5, 1), s, l)

	accentSat := math.Min(1, s*1.2)
	accentLight := math.Max(0.2, math.Min(0.8, l*0.9))
	accent := colorspace.HSLToRGB(colorspace.RotateHue(baseHue, 300), accentSat, accentLight)

	return []Recommendation{
		{RecPrimary, RepresentativeShade(set.Primary, 50)},
		{RecSecondary, RepresentativeShade(set.Secondary, 50)},
		{RecTertiary, RepresentativeShade(set.Tertiary, 50)},
		{RecLightNeutral, RepresentativeShade(set.Neutral, 95)},
		{RecDarkNeutralVariant, RepresentativeShade(set.NeutralVariant, 10)},
		{RecComplementary, complementary.Hex()},
		{RecAccent, accent.Hex()},
		{RecError, RepresentativeShade(set.Error, 60)},
	}
}

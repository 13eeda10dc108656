package palette

import (
	"fmt"

	"github.com/thatcatcamp/workbench/internal/colorspace"
)

// ErrorSeed is the fixed brand error color
const ErrorSeed = "#B00020"

// Palette names in emission order
const (
	NamePrimary        = "primary"
	NameSecondary      = "secondary"
	NameTertiary       = "tertiary"
	NameNeutral        = "neutral"
	NameNeutralVariant = "neutral-variant"
	NameError          = "error"
)

// recipe is a fixed saturation/lightness pair in percent
type recipe struct {
	saturation, lightness float64
}

var (
	neutralRecipe        = recipe{saturation: 15, lightness: 60}
	neutralVariantRecipe = recipe{saturation: 20, lightness: 45}
	errorRecipe          = recipe{saturation: 80, lightness: 55}
)

// Set is the six palettes generated from one base color
type Set struct {
	Primary        TonalPalette `json:"primary"`
	Secondary      TonalPalette `json:"secondary"`
	Tertiary       TonalPalette `json:"tertiary"`
	Neutral        TonalPalette `json:"neutral"`
	NeutralVariant TonalPalette `json:"neutral-variant"`
	Error          TonalPalette `json:"error"`
}

// NamedPalette pairs a palette with its name
type NamedPalette struct {
	Name    string
	Palette TonalPalette
}

// Named returns the palettes in their fixed order
func (s *Set) Named() []NamedPalette {
	return []NamedPalette{
		{NamePrimary, s.Primary},
		{NameSecondary, s.Secondary},
		{NameTertiary, s.Tertiary},
		{NameNeutral, s.Neutral},
		{NameNeutralVariant, s.NeutralVariant},
		{NameError, s.Error},
	}
}

// ByName looks up a palette by its emitted name
func (s *Set) ByName(name string) (TonalPalette, bool) {
	for _, np := range s.Named() {
		if np.Name == name {
			return np.Palette, true
		}
	}
	return nil, false
}

// BuildSet derives all six palettes from the base color and sliders.
// Secondary and tertiary rotate the base hue by 60 and 120 degrees;
// neutral, neutral-variant and error use fixed recipes.
func BuildSet(baseHex string, saturation, lightness float64) (*Set, error) {
	base, err := colorspace.HexToRGB(baseHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base color: %w", err)
	}
	hue := base.HSL().H
	s := saturation / 100
	l := lightness / 100

	set := &Set{}
	build := []struct {
		dst        *TonalPalette
		seed       string
		sat, light float64
	}{
		{&set.Primary, baseHex, saturation, lightness},
		{&set.Secondary, colorspace.HSLToRGB(colorspace.RotateHue(hue, 60), s, l).Hex(), saturation, lightness},
		{&set.Tertiary, colorspace.HSLToRGB(colorspace.RotateHue(hue, 120), s, l).Hex(), saturation, lightness},
		{&set.Neutral, seedFor(hue, neutralRecipe), neutralRecipe.saturation, neutralRecipe.lightness},
		{&set.NeutralVariant, seedFor(hue, neutralVariantRecipe), neutralVariantRecipe.saturation, neutralVariantRecipe.lightness},
		{&set.Error, ErrorSeed, errorRecipe.saturation, errorRecipe.lightness},
	}
	for _, b := range build {
		p, err := GenerateTonal(b.seed, b.sat, b.light)
		if err != nil {
			return nil, err
		}
		*b.dst = p
	}
	return set, nil
}

func seedFor(hue float64, r recipe) string {
	return colorspace.HSLToRGB(hue, r.saturation/100, r.lightness/100).Hex()
}

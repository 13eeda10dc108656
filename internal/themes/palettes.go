package themes

import (
	"fmt"

	"github.com/thatcatcamp/workbench/internal/palette"
)

// ThemeName identifies one of the app themes
type ThemeName string

const (
	StoneGray   ThemeName = "stoneGray"
	CasbahRock  ThemeName = "casbahRock"
	ForestGreen ThemeName = "forestGreen"
)

// DefaultTheme is used when nothing valid is stored
const DefaultTheme = StoneGray

// themeCycle is the ToggleTheme order
var themeCycle = []ThemeName{StoneGray, CasbahRock, ForestGreen}

// Theme defines the seed color a theme's palettes are generated from
type Theme struct {
	Name       ThemeName
	Label      string  // "Stone Gray", etc.
	Seed       string  // hex color #RRGGBB
	Saturation float64 // 0..100
	Lightness  float64 // 0..100
}

// GetTheme returns a theme by name, or nil when unknown
func GetTheme(name ThemeName) *Theme {
	themes := map[ThemeName]*Theme{
		StoneGray: {
			Name:       StoneGray,
			Label:      "Stone Gray",
			Seed:       "#78716C",
			Saturation: 12,
			Lightness:  45,
		},
		CasbahRock: {
			Name:       CasbahRock,
			Label:      "Casbah Rock",
			Seed:       "#B45309",
			Saturation: 70,
			Lightness:  40,
		},
		ForestGreen: {
			Name:       ForestGreen,
			Label:      "Forest Green",
			Seed:       "#15803D",
			Saturation: 60,
			Lightness:  35,
		},
	}

	return themes[name]
}

// ListThemes returns all themes in toggle order
func ListThemes() []*Theme {
	var themes []*Theme
	for _, name := range themeCycle {
		if t := GetTheme(name); t != nil {
			themes = append(themes, t)
		}
	}
	return themes
}

// ValidTheme reports whether name is a known theme
func ValidTheme(name string) bool {
	return GetTheme(ThemeName(name)) != nil
}

// Set builds the theme's derived palettes
func (t *Theme) Set() (*palette.Set, error) {
	set, err := palette.BuildSet(t.Seed, t.Saturation, t.Lightness)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", t.Name, err)
	}
	return set, nil
}

func nextTheme(current ThemeName) ThemeName {
	for i, name := range themeCycle {
		if name == current {
			return themeCycle[(i+1)%len(themeCycle)]
		}
	}
	return themeCycle[0]
}

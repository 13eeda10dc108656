package themes

import (
	"github.com/thatcatcamp/workbench/internal/colorspace"
	"github.com/thatcatcamp/workbench/internal/palette"
)

// Colors represents all generated role colors for a theme
type Colors struct {
	Primary         string // Main brand color
	PrimaryContrast string // Text on primary
	Secondary       string // Accent/highlight color
	Background      string // Page background
	Surface         string // Card/container background
	Text            string // Main text color
	TextMuted       string // Secondary/muted text
	Border          string // Border/divider color
	Success         string // Success state color
	Error           string // Error state color
	Warning         string // Warning state color
}

// GenerateColors maps a theme's tonal palettes to role colors for light or dark mode
func GenerateColors(theme *Theme, darkMode bool) (*Colors, error) {
	set, err := theme.Set()
	if err != nil {
		return nil, err
	}
	var colors *Colors
	if darkMode {
		colors = generateDarkColors(set)
	} else {
		colors = generateLightColors(set)
	}
	colors.PrimaryContrast = contrastFor(colors.Primary)
	return colors, nil
}

// generateLightColors creates colors for light mode
func generateLightColors(set *palette.Set) *Colors {
	return &Colors{
		Primary:    set.Primary[40],
		Secondary:  set.Secondary[40],
		Background: set.Neutral[99],
		Surface:    set.Neutral[95],
		Text:       set.Neutral[10],
		TextMuted:  set.NeutralVariant[30],
		Border:     set.NeutralVariant[80],
		Success:    "#22c55e",
		Error:      set.Error[40],
		Warning:    "#f59e0b",
	}
}

// generateDarkColors creates colors for dark mode
func generateDarkColors(set *palette.Set) *Colors {
	return &Colors{
		Primary:    set.Primary[80],
		Secondary:  set.Secondary[80],
		Background: set.Neutral[6],
		Surface:    set.Neutral[12],
		Text:       set.Neutral[90],
		TextMuted:  set.NeutralVariant[80],
		Border:     set.NeutralVariant[30],
		Success:    "#22c55e",
		Error:      set.Error[80],
		Warning:    "#f59e0b",
	}
}

// contrastFor picks black or white, whichever reads better on hex
func contrastFor(hex string) string {
	bg, err := colorspace.HexToRGB(hex)
	if err != nil {
		return "#FFFFFF"
	}
	black := colorspace.RGB{}
	white := colorspace.RGB{R: 255, G: 255, B: 255}
	if colorspace.ContrastRatio(bg, black) > colorspace.ContrastRatio(bg, white) {
		return "#000000"
	}
	return "#FFFFFF"
}

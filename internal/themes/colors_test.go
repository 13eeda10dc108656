package themes

import (
	"strings"
	"testing"

	"github.com/thatcatcamp/workbench/internal/colorspace"
)

func TestThemeExists(t *testing.T) {
	theme := GetTheme(StoneGray)
	if theme == nil {
		t.Fatal("stoneGray theme not found")
	}
	if GetTheme("slate") != nil {
		t.Fatal("unknown theme should be nil")
	}
}

func TestGenerateLightModeColors(t *testing.T) {
	colors, err := GenerateColors(GetTheme(StoneGray), false)
	if err != nil {
		t.Fatalf("GenerateColors failed: %v", err)
	}

	if colors.Primary == "" {
		t.Fatal("Primary color not generated")
	}
	if colors.Background == "" {
		t.Fatal("Background color not generated")
	}
	if colors.Text == "" {
		t.Fatal("Text color not generated")
	}
}

func TestGenerateDarkModeColors(t *testing.T) {
	colors, err := GenerateColors(GetTheme(StoneGray), true)
	if err != nil {
		t.Fatalf("GenerateColors failed: %v", err)
	}

	if colors.Primary == "" {
		t.Fatal("Primary color not generated")
	}
	if colors.Background == "" {
		t.Fatal("Background color not generated")
	}
}

func TestListThemes(t *testing.T) {
	themes := ListThemes()
	if len(themes) != 3 {
		t.Fatalf("expected 3 themes, got %d", len(themes))
	}
	want := []ThemeName{StoneGray, CasbahRock, ForestGreen}
	for i, theme := range themes {
		if theme.Name != want[i] {
			t.Errorf("theme %d: expected %s, got %s", i, want[i], theme.Name)
		}
	}
}

func TestThemeNamesUnique(t *testing.T) {
	names := make(map[ThemeName]bool)
	for _, theme := range ListThemes() {
		if names[theme.Name] {
			t.Errorf("duplicate theme name: %s", theme.Name)
		}
		names[theme.Name] = true
	}
}

func TestGeneratedColorsAreHex(t *testing.T) {
	for _, theme := range ListThemes() {
		for _, dark := range []bool{false, true} {
			colors, err := GenerateColors(theme, dark)
			if err != nil {
				t.Fatalf("GenerateColors(%s, %v) failed: %v", theme.Name, dark, err)
			}

			colorMap := map[string]string{
				"Primary":         colors.Primary,
				"PrimaryContrast": colors.PrimaryContrast,
				"Secondary":       colors.Secondary,
				"Background":      colors.Background,
				"Surface":         colors.Surface,
				"Text":            colors.Text,
				"Error":           colors.Error,
			}

			for name, color := range colorMap {
				if !strings.HasPrefix(color, "#") {
					t.Errorf("%s should be hex format, got: %s", name, color)
				}
				if len(color) != 7 && len(color) != 4 { // #RRGGBB or #RGB
					t.Errorf("%s invalid hex length: %s", name, color)
				}
			}
		}
	}
}

func TestDarkBackgroundIsDarker(t *testing.T) {
	light, _ := GenerateColors(GetTheme(ForestGreen), false)
	dark, _ := GenerateColors(GetTheme(ForestGreen), true)

	lightBg, _ := colorspace.HexToRGB(light.Background)
	darkBg, _ := colorspace.HexToRGB(dark.Background)
	if colorspace.RelativeLuminance(darkBg) >= colorspace.RelativeLuminance(lightBg) {
		t.Errorf("dark background %s should be darker than %s", dark.Background, light.Background)
	}
}

func TestPrimaryContrast(t *testing.T) {
	if got := contrastFor("#FFFFFF"); got != "#000000" {
		t.Errorf("expected black on white, got %s", got)
	}
	if got := contrastFor("#000080"); got != "#FFFFFF" {
		t.Errorf("expected white on navy, got %s", got)
	}
}

// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"
)

// GenerateCSS generates CSS with color variables on :root from colors struct
func GenerateCSS(colors *Colors) string {
	return variables(":root", colors) + "\n" + baseStyles
}

// GenerateStylesheet renders every theme in both modes, keyed on the
// data-theme and data-mode attributes of the root element
func GenerateStylesheet() (string, error) {
	var b strings.Builder
	for _, theme := range ListThemes() {
		for _, mode := range []Mode{ModeLight, ModeDark} {
			colors, err := GenerateColors(theme, mode == ModeDark)
			if err != nil {
				return "", err
			}
			selector := fmt.Sprintf(`[data-theme="%s"][data-mode="%s"]`, theme.Name, mode)
			b.WriteString(variables(selector, colors))
			b.WriteString("\n")
		}
	}
	b.WriteString(baseStyles)
	return b.String(), nil
}

func variables(selector string, colors *Colors) string {
	return fmt.Sprintf(`%s {
  --color-primary: %s;
  --color-primary-contrast: %s;
  --color-accent: var(--color-primary);
  --color-accent-contrast: var(--color-primary-contrast);
  --color-secondary: %s;
  --color-bg: %s;
  --color-surface: %s;
  --color-text: %s;
  --color-text-muted: %s;
  --color-border: %s;
  --color-success: %s;
  --color-error: %s;
  --color-warning: %s;
}
`, selector, colors.Primary, colors.PrimaryContrast, colors.Secondary, colors.Background,
		colors.Surface, colors.Text, colors.TextMuted, colors.Border,
		colors.Success, colors.Error, colors.Warning)
}

const baseStyles = `/* Base element styles */
body {
  background-color: var(--color-bg);
  color: var(--color-text);
  transition: background-color 0.2s, color 0.2s;
}

a {
  color: var(--color-primary);
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

/* Button styles */
button, .btn {
  background-color: var(--color-primary);
  color: var(--color-primary-contrast);
  border: none;
  padding: 8px 16px;
  border-radius: 4px;
  cursor: pointer;
  transition: opacity 0.2s;
}

button:hover, .btn:hover {
  opacity: 0.9;
}

/* Card/surface styles */
.card, .surface {
  background-color: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: 8px;
  padding: 16px;
}

/* Input styles */
input, textarea, select {
  border: 1px solid var(--color-border);
  background-color: var(--color-surface);
  color: var(--color-text);
  padding: 8px;
  border-radius: 4px;
}

input:focus, textarea:focus, select:focus {
  outline: none;
  border-color: var(--color-primary);
}

/* Palette swatches */
.swatch {
  display: inline-block;
  min-width: 3rem;
  padding: 4px;
  border-radius: 4px;
  font-family: monospace;
}

/* Muted text */
.text-muted, .muted {
  color: var(--color-text-muted);
}

/* Transient messages */
.message.success { color: var(--color-success); }
.message.error { color: var(--color-error); }
.message.info { color: var(--color-primary); }
`

// SPDX-License-Identifier: MIT

// Package swatch renders palettes as colored blocks for the terminal.
package swatch

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thatcatcamp/workbench/internal/colorspace"
	"github.com/thatcatcamp/workbench/internal/palette"
)

// cellWidth fits the widest label, "100"
const cellWidth = 5

var nameStyle = lipgloss.NewStyle().Width(18).Bold(true)

func cell(hex, label string) string {
	fg, err := colorspace.NormalizeHex(colorspace.TextColor(hex))
	if err != nil {
		fg = "#FFFFFF"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Width(cellWidth).
		Align(lipgloss.Center).
		Render(label)
}

// Row renders the given tones of p on one line, labelled with name.
// Tones missing from p are skipped.
func Row(name string, p palette.TonalPalette, tones []palette.Tone) string {
	cells := []string{nameStyle.Render(name)}
	for _, tone := range tones {
		hex, ok := p.Get(tone)
		if !ok {
			continue
		}
		cells = append(cells, cell(hex, fmt.Sprint(int(tone))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// Set renders the main tonal ramp of every palette in the set
func Set(set *palette.Set) string {
	rows := make([]string, 0, 6)
	for _, np := range set.Named() {
		rows = append(rows, Row(np.Name, np.Palette, palette.ToneSteps))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Recommendations renders one line per recommendation: a block, the name
// and the hex value
func Recommendations(recs []palette.Recommendation) string {
	var b strings.Builder
	for _, rec := range recs {
		block := lipgloss.NewStyle().Background(lipgloss.Color(rec.Hex)).Render("      ")
		fmt.Fprintf(&b, "%s %s %s\n", block, nameStyle.Render(rec.Name), rec.Hex)
	}
	return b.String()
}

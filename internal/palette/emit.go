// SPDX-License-Identifier: MIT
package palette

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an unsupported output format
var ErrUnknownFormat = errors.New("unknown output format")

// Format names an output syntax for a palette set
type Format string

const (
	FormatSCSS Format = "scss"
	FormatCSS  Format = "css"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported output formats
var Formats = []Format{FormatSCSS, FormatCSS, FormatJSON, FormatYAML}

// ParseFormat accepts a format name, case-insensitive. "sass" is an
// alias for scss.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSCSS, FormatCSS, FormatJSON, FormatYAML:
		return f, nil
	case "sass", "":
		return FormatSCSS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Emit renders the set in the given format
func Emit(format Format, set *Set) (string, error) {
	switch format {
	case FormatSCSS:
		return EmitSass(set), nil
	case FormatCSS:
		return EmitCSS(set), nil
	case FormatJSON:
		return EmitJSON(set)
	case FormatYAML:
		return EmitYAML(set)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// EmitSass renders the set as a Sass map of maps
func EmitSass(set *Set) string {
	var b strings.Builder
	b.WriteString("$palettes: (\n")
	for _, np := range set.Named() {
		fmt.Fprintf(&b, "  %s: (\n", np.Name)
		keys := np.Palette.Keys()
		for i, k := range keys {
			sep := ","
			if i == len(keys)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "    %d: %s%s\n", k, np.Palette[k], sep)
		}
		b.WriteString("  ),\n")
	}
	b.WriteString(");\n")
	return b.String()
}

// EmitCSS renders the set as custom properties on :root
func EmitCSS(set *Set) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, np := range set.Named() {
		for _, k := range np.Palette.Keys() {
			fmt.Fprintf(&b, "  --%s-%d: %s;\n", np.Name, k, np.Palette[k])
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// EmitJSON renders the set as an indented JSON object
func EmitJSON(set *Set) (string, error) {
	var raw bytes.Buffer
	raw.WriteByte('{')
	for i, np := range set.Named() {
		if i > 0 {
			raw.WriteByte(',')
		}
		raw.WriteString(strconv.Quote(np.Name))
		raw.WriteByte(':')
		data, err := np.Palette.MarshalJSON()
		if err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", np.Name, err)
		}
		raw.Write(data)
	}
	raw.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, raw.Bytes(), "", "  "); err != nil {
		return "", fmt.Errorf("failed to indent JSON: %w", err)
	}
	out.WriteByte('\n')
	return out.String(), nil
}

// EmitYAML renders the set as a YAML mapping with integer tone keys
func EmitYAML(set *Set) (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, np := range set.Named() {
		tones := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range np.Palette.Keys() {
			tones.Content = append(tones.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(int(k))},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: np.Palette[k], Style: yaml.DoubleQuotedStyle},
			)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: np.Name},
			tones,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.String(), nil
}

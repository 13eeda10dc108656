package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/workbench/internal/config"
	"github.com/thatcatcamp/workbench/internal/palette"
	"github.com/thatcatcamp/workbench/internal/swatch"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Generate tonal palettes from a base color",
	Long: `Generate the primary, secondary, tertiary, neutral, neutral-variant and
error tonal palettes from a base color and print them as code.

Without flags the last saved state is used, or the configured defaults.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fail(err)
		}
		defer a.close()

		ed, res, err := runPalette(cmd, a)
		if err != nil {
			fail(err)
		}

		formatName, _ := cmd.Flags().GetString("format")
		if formatName == "" {
			formatName = config.GetString("palette.format")
		}
		format, err := palette.ParseFormat(formatName)
		if err != nil {
			fail(err)
		}

		if show, _ := cmd.Flags().GetBool("swatches"); show {
			fmt.Println(swatch.Set(res.Set))
			fmt.Println()
		}

		code, err := palette.Emit(format, res.Set)
		if err != nil {
			fail(err)
		}
		fmt.Print(code)

		if save, _ := cmd.Flags().GetBool("save"); save {
			if err := ed.Save(); err != nil {
				fail(err)
			}
		}
		if cp, _ := cmd.Flags().GetBool("copy"); cp {
			if err := ed.CopyCode(a.clipboard); err != nil {
				fail(err)
			}
		}
	},
}

var paletteRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show the recommended colors for the base color",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fail(err)
		}
		defer a.close()

		_, res, err := runPalette(cmd, a)
		if err != nil {
			fail(err)
		}

		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			for _, rec := range res.Recommendations {
				fmt.Printf("%s\t%s\n", rec.Name, rec.Hex)
			}
			return
		}
		fmt.Print(swatch.Recommendations(res.Recommendations))
	},
}

// runPalette restores the editor state, applies the input flags and
// generates once
func runPalette(cmd *cobra.Command, a *app) (*palette.Editor, *palette.Result, error) {
	ed := a.editor()

	in := configInput()
	if ed.Load() {
		in = ed.Input()
	}

	flags := cmd.Flags()
	if flags.Changed("base") {
		in.BaseColorHex, _ = flags.GetString("base")
	}
	if flags.Changed("saturation") {
		in.Saturation, _ = flags.GetFloat64("saturation")
	}
	if flags.Changed("lightness") {
		in.Lightness, _ = flags.GetFloat64("lightness")
	}

	res, err := ed.SetInput(in)
	if err != nil {
		return nil, nil, err
	}
	return ed, res, nil
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("base", "", "Base color as #RRGGBB")
	cmd.Flags().Float64("saturation", palette.DefaultSaturation, "Saturation 0-100")
	cmd.Flags().Float64("lightness", palette.DefaultLightness, "Lightness 0-100")
}

func init() {
	addInputFlags(paletteCmd)
	paletteCmd.Flags().String("format", "", "Output format: scss, css, json or yaml")
	paletteCmd.Flags().Bool("save", false, "Save the input as the new default state")
	paletteCmd.Flags().Bool("copy", false, "Copy the Sass code to the clipboard")
	paletteCmd.Flags().Bool("swatches", false, "Print colored swatches before the code")

	addInputFlags(paletteRecommendCmd)
	paletteRecommendCmd.Flags().Bool("plain", false, "Print name and hex without colors")

	paletteCmd.AddCommand(paletteRecommendCmd)
	rootCmd.AddCommand(paletteCmd)
}

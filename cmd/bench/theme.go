package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/workbench/internal/themes"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show and switch the theme and mode",
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active theme and mode",
	Run: func(cmd *cobra.Command, args []string) {
		svc := openThemes()
		printState(svc.State())
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch to the next theme",
	Run: func(cmd *cobra.Command, args []string) {
		svc := openThemes()
		svc.ToggleTheme()
		printState(svc.State())
	},
}

var themeModeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Switch to the next mode: system, light, dark",
	Run: func(cmd *cobra.Command, args []string) {
		svc := openThemes()
		svc.ToggleMode()
		printState(svc.State())
	},
}

var themeCSSCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the stylesheet for every theme and mode",
	Run: func(cmd *cobra.Command, args []string) {
		if active, _ := cmd.Flags().GetBool("active"); active {
			css, err := activeCSS(openThemes())
			if err != nil {
				fail(err)
			}
			fmt.Print(css)
			return
		}

		css, err := themes.GenerateStylesheet()
		if err != nil {
			fail(err)
		}
		fmt.Print(css)
	},
}

// activeCSS renders only the active theme and mode as :root variables
func activeCSS(svc *themes.Service) (string, error) {
	colors, err := svc.Colors()
	if err != nil {
		return "", err
	}
	return themes.GenerateCSS(colors), nil
}

func openThemes() *themes.Service {
	a, err := newApp()
	if err != nil {
		fail(err)
	}
	return a.themes(themes.TerminalScheme{}, themes.NewAttributes())
}

func printState(st themes.State) {
	label := string(st.Theme)
	if t := themes.GetTheme(st.Theme); t != nil {
		label = t.Label
	}
	fmt.Printf("Theme: %s\n", label)
	fmt.Printf("Mode:  %s (%s)\n", st.Mode, st.Preference)
}

func init() {
	themeCSSCmd.Flags().Bool("active", false, "Only the active theme and mode, on :root")

	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeModeCmd)
	themeCmd.AddCommand(themeCSSCmd)
	rootCmd.AddCommand(themeCmd)
}

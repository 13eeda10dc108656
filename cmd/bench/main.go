// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bench",
	Short: "workbench - palette generator and commit message composer",
	Long: `workbench bundles two small developer tools behind one CLI and API:

a Material-style color palette generator that derives tonal palettes,
recommendations and Sass code from a base color, and a conventional commit
message composer with saved messages. Both share a theme/mode switcher.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fail prints the error the way every command reports it and exits
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/workbench/internal/commit"
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Compose conventional commit messages",
	Long:  "Compose conventional commit messages and manage saved ones",
}

var commitPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the message built from the flags",
	Run: func(cmd *cobra.Command, args []string) {
		form, err := formFromFlags(cmd)
		if err != nil {
			fail(err)
		}
		fmt.Println(form.Message())

		if cp, _ := cmd.Flags().GetBool("copy"); cp {
			a, err := newApp()
			if err != nil {
				fail(err)
			}
			defer a.close()
			c := commit.NewComposer(a.store, a.notifier, a.logger)
			c.SetForm(form)
			if err := c.Copy(a.clipboard); err != nil {
				fail(err)
			}
		}
	},
}

var commitSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the message built from the flags",
	Run: func(cmd *cobra.Command, args []string) {
		form, err := formFromFlags(cmd)
		if err != nil {
			fail(err)
		}

		a, err := newApp()
		if err != nil {
			fail(err)
		}
		defer a.close()

		saved, err := a.composer().SaveForm(form)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Saved %s\n\n%s\n", saved.ID, saved.Message)
	},
}

var commitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved messages",
	Run: func(cmd *cobra.Command, args []string) {
		c := openComposer()

		saved := c.Saved()
		if len(saved) == 0 {
			fmt.Println("No saved messages")
			return
		}
		for _, m := range saved {
			fmt.Printf("%s  %s\n", m.ID, m.Header())
		}
	},
}

var commitShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved message",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openComposer()

		m, err := c.Get(args[0])
		if err != nil {
			fail(err)
		}
		fmt.Println(m.Message)
	},
}

var commitDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved message",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openComposer()

		if _, err := c.Get(args[0]); err != nil {
			fail(err)
		}
		if err := c.RemoveSaved(args[0]); err != nil {
			fail(err)
		}
		fmt.Printf("Deleted %s\n", args[0])
	},
}

var commitLoadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Load a saved message into the form and preview it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		preview, err := loadCommit(openComposer(), args[0])
		if err != nil {
			fail(err)
		}
		fmt.Println(preview)
	},
}

// loadCommit restores a saved message into the composer's form and
// renders it again from the restored fields
func loadCommit(c *commit.Composer, id string) (string, error) {
	if err := c.LoadMessage(id); err != nil {
		return "", err
	}
	return c.Preview(), nil
}

func openComposer() *commit.Composer {
	a, err := newApp()
	if err != nil {
		fail(err)
	}
	return a.composer()
}

// formFromFlags builds a form; footers are numbered in flag order
func formFromFlags(cmd *cobra.Command) (commit.Form, error) {
	flags := cmd.Flags()
	form := commit.NewForm()

	form.Type, _ = flags.GetString("type")
	form.Scope, _ = flags.GetString("scope")
	form.Description, _ = flags.GetString("description")
	form.Body, _ = flags.GetString("body")
	form.IsBreakingChange, _ = flags.GetBool("breaking")
	form.BreakingChangeIndicator, _ = flags.GetString("indicator")
	form.BreakingChangeDescription, _ = flags.GetString("breaking-description")

	valid := false
	for _, t := range commit.Types {
		if t == form.Type {
			valid = true
			break
		}
	}
	if !valid {
		return form, fmt.Errorf("unknown type %q, expected one of %s", form.Type, strings.Join(commit.Types, ", "))
	}
	if form.BreakingChangeIndicator != commit.IndicatorBang && form.BreakingChangeIndicator != commit.IndicatorFooter {
		return form, fmt.Errorf("indicator must be %q or %q", commit.IndicatorBang, commit.IndicatorFooter)
	}

	footers, _ := flags.GetStringArray("footer")
	for i, raw := range footers {
		token, value, err := commit.ParseFooter(raw)
		if err != nil {
			return form, err
		}
		form.Footers = append(form.Footers, commit.Footer{ID: i, Token: token, Value: value})
	}
	return form, nil
}

func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", commit.DefaultType, "Commit type")
	cmd.Flags().StringP("scope", "s", "", "Optional scope")
	cmd.Flags().StringP("description", "m", "", "Short description")
	cmd.Flags().String("body", "", "Longer body")
	cmd.Flags().Bool("breaking", false, "Mark as a breaking change")
	cmd.Flags().String("indicator", commit.IndicatorBang, "Breaking change indicator: bang or footer")
	cmd.Flags().String("breaking-description", "", "BREAKING CHANGE footer text")
	cmd.Flags().StringArray("footer", nil, "Footer as token=value (repeatable)")
}

func init() {
	addFormFlags(commitPreviewCmd)
	commitPreviewCmd.Flags().Bool("copy", false, "Copy the message to the clipboard")
	addFormFlags(commitSaveCmd)

	commitCmd.AddCommand(commitPreviewCmd)
	commitCmd.AddCommand(commitSaveCmd)
	commitCmd.AddCommand(commitListCmd)
	commitCmd.AddCommand(commitShowCmd)
	commitCmd.AddCommand(commitLoadCmd)
	commitCmd.AddCommand(commitDeleteCmd)
	rootCmd.AddCommand(commitCmd)
}

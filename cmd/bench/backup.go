package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/workbench/internal/backup"
	"github.com/thatcatcamp/workbench/internal/config"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up and restore saved state",
	Long:  "Snapshot the saved palette, commit messages, theme and mode to JSON files",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a backup now",
	Run: func(cmd *cobra.Command, args []string) {
		manager := openBackups()

		note, _ := cmd.Flags().GetString("note")
		filename, err := manager.CreateBackup(note)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Created %s\n", filename)

		if retention := config.GetInt("backups.retention"); retention > 0 {
			if _, err := manager.Prune(retention); err != nil {
				fail(err)
			}
		}
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		names, err := openBackups().ListBackups()
		if err != nil {
			fail(err)
		}
		if len(names) == 0 {
			fmt.Println("No backups")
			return
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore a backup into the store",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		snap, err := openBackups().Restore(args[0])
		if err != nil {
			fail(err)
		}
		fmt.Printf("Restored %d items from %s\n", len(snap.Items), snap.Timestamp.Format("2006-01-02 15:04:05"))
	},
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a snapshot to stdout",
	Run: func(cmd *cobra.Command, args []string) {
		snap, err := openBackups().Snapshot("export")
		if err != nil {
			fail(err)
		}
		if err := backup.Export(os.Stdout, snap); err != nil {
			fail(err)
		}
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Load an exported snapshot into the store",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		in := os.Stdin
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				fail(err)
			}
			defer f.Close()
			in = f
		}

		snap, err := backup.Import(in)
		if err != nil {
			fail(err)
		}
		a, err := newApp()
		if err != nil {
			fail(err)
		}
		if err := backup.Apply(a.store, snap); err != nil {
			fail(err)
		}
		fmt.Printf("Imported %d items\n", len(snap.Items))
	},
}

func openBackups() *backup.BackupManager {
	a, err := newApp()
	if err != nil {
		fail(err)
	}
	return backup.NewBackupManager(config.GetString("backups.path"), a.store)
}

func init() {
	backupCreateCmd.Flags().String("note", "", "Note stored with the backup")

	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
	rootCmd.AddCommand(backupCmd)
}

package thrive

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up and restore all data",
}

var backupExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write every collection to a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			snap, err := service.ExportSnapshot(repo)
			if err != nil {
				return err
			}
			raw, err := service.EncodeSnapshot(snap)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], raw, 0o600); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote snapshot to %s\n", args[0])
			return nil
		})
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace every collection with a snapshot's contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		snap, err := service.DecodeSnapshot(raw)
		if err != nil {
			return err
		}
		return withRepo(func(repo *store.Repository) error {
			if err := service.ImportSnapshot(repo, snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored snapshot from %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupExportCmd, backupImportCmd)
}

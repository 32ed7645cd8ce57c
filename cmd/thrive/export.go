package thrive

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

var (
	exportKind string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export measurement history as CSV",
	Long:  "Export measurement history as CSV. The file name is fixed per kind: weight-progress.csv, bodyfat-progress.csv or body-measurements.csv.",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := service.ParseExportKind(exportKind)
		if err != nil {
			return err
		}
		dir := exportOut
		if dir == "" {
			dir, err = exportDir()
			if err != nil {
				return err
			}
		}
		return withRepo(func(repo *store.Repository) error {
			measurements, err := repo.Measurements()
			if err != nil {
				return err
			}
			csv, err := service.ExportCSV(measurements, kind)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, service.ExportFileName(kind))
			if err := os.WriteFile(path, []byte(csv+"\n"), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportKind, "kind", "weight", "Series to export: weight, bodyfat or measurements")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output directory (default from config)")
}

package thrive

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	dataDirFlag string
	backendFlag string
)

var rootCmd = &cobra.Command{
	Use:   "thrive",
	Short: "thrive tracks workouts, meals and body measurements from your terminal",
	Long:  "thrive is a local-first fitness tracker: log workouts, meals and body measurements, review progress and export your data. Everything stays on your machine.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Path to the data directory")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Storage backend: file or sqlite")
}

package thrive

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

var demoForce bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed the store with a demo dataset",
	Long:  "Seed the store with a month of generated workouts, meals and measurements. Refuses to overwrite existing data unless --force is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			if err := service.SeedDemo(repo, demoForce); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Demo data loaded.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().BoolVar(&demoForce, "force", false, "Overwrite existing data")
}

package thrive

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check every stored collection for corruption",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			report := service.RunDoctor(repo)
			out := cmd.OutOrStdout()
			for _, check := range report.Checks {
				switch {
				case check.Err != "":
					fmt.Fprintf(out, "%s %s: %s\n", color.RedString("BROKEN"), check.Key, check.Err)
				case !check.Present:
					fmt.Fprintf(out, "%s %s: not yet written\n", color.YellowString("EMPTY "), check.Key)
				default:
					fmt.Fprintf(out, "%s %s: %d record(s)\n", color.GreenString("OK    "), check.Key, check.Records)
				}
			}
			if report.Broken > 0 {
				return fmt.Errorf("%d collection(s) failed to decode", report.Broken)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

package thrive

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

var (
	summaryDate          string
	summaryCalorieTarget float64
	summaryProteinTarget float64
	summaryCarbsTarget   float64
	summaryFatTarget     float64
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Daily nutrition and activity summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrNow(summaryDate)
		if err != nil {
			return err
		}
		return withRepo(func(repo *store.Repository) error {
			meals, err := service.MealsForDay(repo, date)
			if err != nil {
				return err
			}
			workouts, err := repo.WorkoutsByDate(date)
			if err != nil {
				return err
			}
			totals := service.DailyTotals(meals)
			var burned float64
			var minutes int
			for _, w := range workouts {
				burned += w.Calories
				minutes += w.Duration
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Summary for %s\n\n", date.Format("2006-01-02"))
			fmt.Fprintf(out, "Meals:    %d\n", len(meals))
			fmt.Fprintf(out, "Calories: %s\n", withTarget(totals.Calories, summaryCalorieTarget))
			fmt.Fprintf(out, "Protein:  %s\n", withTarget(totals.Protein, summaryProteinTarget))
			fmt.Fprintf(out, "Carbs:    %s\n", withTarget(totals.Carbs, summaryCarbsTarget))
			fmt.Fprintf(out, "Fat:      %s\n", withTarget(totals.Fat, summaryFatTarget))
			fmt.Fprintf(out, "\nWorkouts: %d (%d min, %.0f kcal burned)\n", len(workouts), minutes, burned)
			return nil
		})
	},
}

// withTarget renders a total, appending the percentage of the target when
// one was given.
func withTarget(value, target float64) string {
	if target <= 0 {
		return fmt.Sprintf("%.1f", value)
	}
	return fmt.Sprintf("%.1f / %.1f (%.0f%%)", value, target, service.GoalRatio(value, target))
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "Date YYYY-MM-DD (default today)")
	summaryCmd.Flags().Float64Var(&summaryCalorieTarget, "calorie-target", 0, "Daily calorie target (kcal)")
	summaryCmd.Flags().Float64Var(&summaryProteinTarget, "protein-target", 0, "Daily protein target (g)")
	summaryCmd.Flags().Float64Var(&summaryCarbsTarget, "carbs-target", 0, "Daily carbs target (g)")
	summaryCmd.Flags().Float64Var(&summaryFatTarget, "fat-target", 0, "Daily fat target (g)")
}

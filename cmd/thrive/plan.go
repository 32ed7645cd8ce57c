package thrive

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage meal plans",
}

var (
	planName        string
	planDescription string
	planMeals       []string
)

var planAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a meal plan",
	Long:  "Create a meal plan. Each --meal takes name|time, e.g. --meal 'Oatmeal|08:00'.",
	RunE: func(cmd *cobra.Command, args []string) error {
		meals := make([]service.PlannedMealInput, 0, len(planMeals))
		for _, spec := range planMeals {
			parts := strings.SplitN(spec, "|", 2)
			pm := service.PlannedMealInput{Name: strings.TrimSpace(parts[0])}
			if len(parts) == 2 {
				pm.Time = strings.TrimSpace(parts[1])
			}
			meals = append(meals, pm)
		}
		return withRepo(func(repo *store.Repository) error {
			plan, err := service.CreateMealPlan(repo, service.CreateMealPlanInput{
				Name:        planName,
				Description: planDescription,
				Meals:       meals,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created plan %s (%s)\n", plan.Name, plan.ID)
			return nil
		})
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meal plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			plans, err := service.MealPlans(repo)
			if err != nil {
				return err
			}
			for _, p := range plans {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", p.ID, p.Name, p.Description)
				for _, m := range p.Meals {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%s\n", m.Time, m.Name)
				}
			}
			return nil
		})
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a meal plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			if err := service.DeleteMealPlan(repo, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planAddCmd, planListCmd, planDeleteCmd)

	planAddCmd.Flags().StringVar(&planName, "name", "", "Plan name")
	planAddCmd.Flags().StringVar(&planDescription, "description", "", "Plan description")
	planAddCmd.Flags().StringArrayVar(&planMeals, "meal", nil, "Planned meal name|time (repeatable)")
	_ = planAddCmd.MarkFlagRequired("name")
}

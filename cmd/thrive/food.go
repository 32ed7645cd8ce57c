package thrive

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the food library",
}

var (
	foodName     string
	foodServing  string
	foodCalories float64
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food item to the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			f, err := service.AddFoodItem(repo, service.FoodItemInput{
				Name:        foodName,
				ServingSize: foodServing,
				Calories:    foodCalories,
				Protein:     foodProtein,
				Carbs:       foodCarbs,
				Fat:         foodFat,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added food %s (%s)\n", f.Name, f.ID)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List library food items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			foods, err := service.FoodItems(repo)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tSERVING\tCALORIES\tPROTEIN\tCARBS\tFAT")
			for _, f := range foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n",
					f.ID, f.Name, f.ServingSize, f.Calories, f.Protein, f.Carbs, f.Fat)
			}
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food item from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			if err := service.DeleteFoodItem(repo, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodDeleteCmd)

	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().StringVar(&foodServing, "serving", "", "Serving size, e.g. 100g")
	foodAddCmd.Flags().Float64Var(&foodCalories, "calories", 0, "Calories per serving (kcal)")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein (g)")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs (g)")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat (g)")
	_ = foodAddCmd.MarkFlagRequired("name")
}

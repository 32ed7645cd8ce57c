package thrive

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Manage meals and the food log",
}

var (
	mealName     string
	mealType     string
	mealCalories float64
	mealProtein  float64
	mealCarbs    float64
	mealFat      float64
	mealDate     string
	mealItems    []string
	mealFoods    []string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	Long:  "Log a meal with either direct macro totals or food items. When items are given (inline via --item or from the library via --food), the meal totals are the sum of the item macros.",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrNow(mealDate)
		if err != nil {
			return err
		}
		items := make([]service.FoodItemInput, 0, len(mealItems)+len(mealFoods))
		for _, spec := range mealItems {
			item, err := parseItemSpec(spec)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		return withRepo(func(repo *store.Repository) error {
			for _, ref := range mealFoods {
				f, err := service.FindFoodItem(repo, ref)
				if err != nil {
					return err
				}
				items = append(items, service.FoodItemInput{
					Name:        f.Name,
					ServingSize: f.ServingSize,
					Calories:    f.Calories,
					Protein:     f.Protein,
					Carbs:       f.Carbs,
					Fat:         f.Fat,
				})
			}
			m, err := service.CreateMeal(repo, service.CreateMealInput{
				Name:     mealName,
				Type:     model.MealType(mealType),
				Calories: mealCalories,
				Protein:  mealProtein,
				Carbs:    mealCarbs,
				Fat:      mealFat,
				Date:     date,
				Items:    items,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged meal %s (%s, %.0f kcal)\n", m.ID, m.Type, m.Calories)
			return nil
		})
	},
}

var mealListDate string

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrNow(mealListDate)
		if err != nil {
			return err
		}
		return withRepo(func(repo *store.Repository) error {
			meals, err := service.MealsForDay(repo, date)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTYPE\tNAME\tCALORIES\tPROTEIN\tCARBS\tFAT\tITEMS")
			for _, m := range meals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\t%d\n",
					m.ID, m.Type, m.Name, m.Calories, m.Protein, m.Carbs, m.Fat, len(m.Items))
			}
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			if err := service.DeleteMeal(repo, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealDeleteCmd)

	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Meal name")
	mealAddCmd.Flags().StringVar(&mealType, "type", "", "Meal type: breakfast, lunch, dinner or snack")
	mealAddCmd.Flags().Float64Var(&mealCalories, "calories", 0, "Calories (kcal)")
	mealAddCmd.Flags().Float64Var(&mealProtein, "protein", 0, "Protein (g)")
	mealAddCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "Carbs (g)")
	mealAddCmd.Flags().Float64Var(&mealFat, "fat", 0, "Fat (g)")
	mealAddCmd.Flags().StringVar(&mealDate, "date", "", "Date YYYY-MM-DD (default today)")
	mealAddCmd.Flags().StringArrayVar(&mealItems, "item", nil, "Inline food item name|serving|calories|protein|carbs|fat (repeatable)")
	mealAddCmd.Flags().StringArrayVar(&mealFoods, "food", nil, "Library food item id or name (repeatable)")
	_ = mealAddCmd.MarkFlagRequired("name")
	_ = mealAddCmd.MarkFlagRequired("type")

	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "Date YYYY-MM-DD (default today)")
}

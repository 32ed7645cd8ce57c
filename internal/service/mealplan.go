package service

import (
	"fmt"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

type PlannedMealInput struct {
	Name  string
	Time  string
	Items []FoodItemInput
}

type CreateMealPlanInput struct {
	Name        string
	Description string
	Meals       []PlannedMealInput
}

func CreateMealPlan(repo *store.Repository, in CreateMealPlanInput) (model.MealPlan, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return model.MealPlan{}, err
	}
	plan := model.MealPlan{
		ID:          newTimeID(),
		Name:        name,
		Description: in.Description,
		Meals:       make([]model.PlannedMeal, 0, len(in.Meals)),
	}
	for _, pm := range in.Meals {
		pmName, err := requireName(pm.Name)
		if err != nil {
			return model.MealPlan{}, fmt.Errorf("planned meal: %w", err)
		}
		planned := model.PlannedMeal{Name: pmName, Time: pm.Time, Items: make([]model.FoodItem, 0, len(pm.Items))}
		for _, it := range pm.Items {
			item, err := buildFoodItem(it)
			if err != nil {
				return model.MealPlan{}, err
			}
			planned.Items = append(planned.Items, item)
		}
		plan.Meals = append(plan.Meals, planned)
	}
	if err := repo.SaveMealPlan(plan); err != nil {
		return model.MealPlan{}, err
	}
	return plan, nil
}

func MealPlans(repo *store.Repository) ([]model.MealPlan, error) {
	return repo.MealPlans()
}

func DeleteMealPlan(repo *store.Repository, id string) error {
	plans, err := repo.MealPlans()
	if err != nil {
		return err
	}
	kept := make([]model.MealPlan, 0, len(plans))
	for _, p := range plans {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(plans) {
		return fmt.Errorf("meal plan %s not found", id)
	}
	return repo.ReplaceMealPlans(kept)
}

package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

type FoodItemInput struct {
	Name        string
	ServingSize string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
}

type CreateMealInput struct {
	Name     string
	Type     model.MealType
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Date     time.Time
	Items    []FoodItemInput
}

// CreateMeal validates and persists a meal. When food items are given the
// meal totals are recomputed as the sum of the item macros; the direct-entry
// totals only stand for an item-less meal.
func CreateMeal(repo *store.Repository, in CreateMealInput) (model.Meal, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return model.Meal{}, err
	}
	if !in.Type.Valid() {
		return model.Meal{}, fmt.Errorf("invalid meal type %q (use breakfast, lunch, dinner or snack)", in.Type)
	}
	for _, check := range []struct {
		field string
		value float64
	}{
		{"calories", in.Calories},
		{"protein", in.Protein},
		{"carbs", in.Carbs},
		{"fat", in.Fat},
	} {
		if err := validateNonNegative(check.field, check.value); err != nil {
			return model.Meal{}, err
		}
	}

	meal := model.Meal{
		ID:       newTimeID(),
		Name:     name,
		Type:     in.Type,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Date:     orNow(in.Date),
		Items:    make([]model.FoodItem, 0, len(in.Items)),
	}
	for _, it := range in.Items {
		item, err := buildFoodItem(it)
		if err != nil {
			return model.Meal{}, err
		}
		meal.Items = append(meal.Items, item)
	}
	if len(meal.Items) > 0 {
		meal.Calories, meal.Protein, meal.Carbs, meal.Fat = sumItems(meal.Items)
	}

	if err := repo.SaveMeal(meal); err != nil {
		return model.Meal{}, err
	}
	return meal, nil
}

func buildFoodItem(in FoodItemInput) (model.FoodItem, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return model.FoodItem{}, fmt.Errorf("food item: %w", err)
	}
	for _, check := range []struct {
		field string
		value float64
	}{
		{"calories", in.Calories},
		{"protein", in.Protein},
		{"carbs", in.Carbs},
		{"fat", in.Fat},
	} {
		if err := validateNonNegative("food item "+check.field, check.value); err != nil {
			return model.FoodItem{}, err
		}
	}
	return model.FoodItem{
		ID:          uuid.New().String(),
		Name:        name,
		ServingSize: in.ServingSize,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
	}, nil
}

func sumItems(items []model.FoodItem) (calories, protein, carbs, fat float64) {
	for _, it := range items {
		calories += it.Calories
		protein += it.Protein
		carbs += it.Carbs
		fat += it.Fat
	}
	return calories, protein, carbs, fat
}

func MealsForDay(repo *store.Repository, date time.Time) ([]model.Meal, error) {
	return repo.MealsByDate(date)
}

func DeleteMeal(repo *store.Repository, id string) error {
	meals, err := repo.Meals()
	if err != nil {
		return err
	}
	kept := make([]model.Meal, 0, len(meals))
	for _, m := range meals {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(meals) {
		return fmt.Errorf("meal %s not found", id)
	}
	return repo.ReplaceMeals(kept)
}

type NutritionTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// DailyTotals sums each macro field across the given meals. An empty input
// yields the zero totals.
func DailyTotals(meals []model.Meal) NutritionTotals {
	var t NutritionTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	return t
}

package service

import (
	"fmt"
	"strings"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

// AddFoodItem adds a reusable item to the food library.
func AddFoodItem(repo *store.Repository, in FoodItemInput) (model.FoodItem, error) {
	item, err := buildFoodItem(in)
	if err != nil {
		return model.FoodItem{}, err
	}
	existing, err := repo.FoodItems()
	if err != nil {
		return model.FoodItem{}, err
	}
	for _, f := range existing {
		if strings.EqualFold(f.Name, item.Name) {
			return model.FoodItem{}, fmt.Errorf("food item %q already exists", item.Name)
		}
	}
	if err := repo.SaveFoodItem(item); err != nil {
		return model.FoodItem{}, err
	}
	return item, nil
}

func FoodItems(repo *store.Repository) ([]model.FoodItem, error) {
	return repo.FoodItems()
}

func DeleteFoodItem(repo *store.Repository, id string) error {
	items, err := repo.FoodItems()
	if err != nil {
		return err
	}
	kept := make([]model.FoodItem, 0, len(items))
	for _, f := range items {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(items) {
		return fmt.Errorf("food item %s not found", id)
	}
	return repo.ReplaceFoodItems(kept)
}

// FindFoodItem resolves a library item by id, or by name when no id
// matches. Name lookup is case-insensitive.
func FindFoodItem(repo *store.Repository, ref string) (model.FoodItem, error) {
	items, err := repo.FoodItems()
	if err != nil {
		return model.FoodItem{}, err
	}
	for _, f := range items {
		if f.ID == ref {
			return f, nil
		}
	}
	for _, f := range items {
		if strings.EqualFold(f.Name, ref) {
			return f, nil
		}
	}
	return model.FoodItem{}, fmt.Errorf("food item %q not found in library", ref)
}

package service

import (
	"encoding/json"
	"fmt"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

// Snapshot is every collection in one document, for backup and restore.
// Field names mirror the storage keys minus the app prefix.
type Snapshot struct {
	Meals            []model.Meal     `json:"meals"`
	Workouts         []model.Workout  `json:"workouts"`
	MealPlans        []model.MealPlan `json:"mealPlans"`
	Measurements     []model.Progress `json:"measurements"`
	Profile          model.Profile    `json:"profile"`
	FavoriteWorkouts []string         `json:"favoriteWorkouts"`
	FoodItems        []model.FoodItem `json:"foodItems"`
}

func ExportSnapshot(repo *store.Repository) (*Snapshot, error) {
	snap := &Snapshot{}
	var err error
	if snap.Meals, err = repo.Meals(); err != nil {
		return nil, fmt.Errorf("snapshot meals: %w", err)
	}
	if snap.Workouts, err = repo.Workouts(); err != nil {
		return nil, fmt.Errorf("snapshot workouts: %w", err)
	}
	if snap.MealPlans, err = repo.MealPlans(); err != nil {
		return nil, fmt.Errorf("snapshot meal plans: %w", err)
	}
	if snap.Measurements, err = repo.Measurements(); err != nil {
		return nil, fmt.Errorf("snapshot measurements: %w", err)
	}
	if snap.Profile, err = repo.Profile(); err != nil {
		return nil, fmt.Errorf("snapshot profile: %w", err)
	}
	if snap.FavoriteWorkouts, err = repo.FavoriteWorkoutIDs(); err != nil {
		return nil, fmt.Errorf("snapshot favorites: %w", err)
	}
	if snap.FoodItems, err = repo.FoodItems(); err != nil {
		return nil, fmt.Errorf("snapshot food items: %w", err)
	}
	return snap, nil
}

func EncodeSnapshot(snap *Snapshot) ([]byte, error) {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return raw, nil
}

func DecodeSnapshot(raw []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// ImportSnapshot replaces every collection with the snapshot contents.
func ImportSnapshot(repo *store.Repository, snap *Snapshot) error {
	if err := repo.ReplaceMeals(snap.Meals); err != nil {
		return fmt.Errorf("restore meals: %w", err)
	}
	if err := repo.ReplaceWorkouts(snap.Workouts); err != nil {
		return fmt.Errorf("restore workouts: %w", err)
	}
	if err := repo.ReplaceMealPlans(snap.MealPlans); err != nil {
		return fmt.Errorf("restore meal plans: %w", err)
	}
	if err := repo.ReplaceMeasurements(snap.Measurements); err != nil {
		return fmt.Errorf("restore measurements: %w", err)
	}
	if err := repo.SaveProfile(snap.Profile); err != nil {
		return fmt.Errorf("restore profile: %w", err)
	}
	if err := repo.ReplaceFavoriteWorkoutIDs(snap.FavoriteWorkouts); err != nil {
		return fmt.Errorf("restore favorites: %w", err)
	}
	if err := repo.ReplaceFoodItems(snap.FoodItems); err != nil {
		return fmt.Errorf("restore food items: %w", err)
	}
	return nil
}

package service

import (
	"errors"

	"github.com/shrek198/thrive-well-tracker/internal/store"
)

type CollectionCheck struct {
	Key     string
	Present bool
	Records int
	Err     string
}

type DoctorReport struct {
	Checks []CollectionCheck
	Broken int
}

// RunDoctor decodes every collection and reports which ones parse. Stored
// data is normally only validated lazily; this surfaces tampering or schema
// drift in one pass instead of at the first unlucky read.
func RunDoctor(repo *store.Repository) *DoctorReport {
	report := &DoctorReport{}
	for _, key := range store.CollectionKeys {
		check := CollectionCheck{Key: key}
		_, ok, err := repo.RawCollection(key)
		if err != nil {
			check.Err = err.Error()
			report.Broken++
			report.Checks = append(report.Checks, check)
			continue
		}
		if !ok {
			report.Checks = append(report.Checks, check)
			continue
		}
		check.Present = true
		check.Records, err = countRecords(repo, key)
		if err != nil {
			var decodeErr *store.DecodeError
			if errors.As(err, &decodeErr) {
				check.Err = decodeErr.Error()
			} else {
				check.Err = err.Error()
			}
			report.Broken++
		}
		report.Checks = append(report.Checks, check)
	}
	return report
}

func countRecords(repo *store.Repository, key string) (int, error) {
	switch key {
	case store.KeyMeals:
		items, err := repo.Meals()
		return len(items), err
	case store.KeyWorkouts:
		items, err := repo.Workouts()
		return len(items), err
	case store.KeyMealPlans:
		items, err := repo.MealPlans()
		return len(items), err
	case store.KeyMeasurements:
		items, err := repo.Measurements()
		return len(items), err
	case store.KeyProfile:
		_, err := repo.Profile()
		if err != nil {
			return 0, err
		}
		return 1, nil
	case store.KeyFavoriteWorkouts:
		items, err := repo.FavoriteWorkoutIDs()
		return len(items), err
	case store.KeyFoodItems:
		items, err := repo.FoodItems()
		return len(items), err
	}
	return 0, nil
}

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shrek198/thrive-well-tracker/internal/model"
)

// Collection keys. The stored layout is one JSON array (or, for the
// profile, one JSON object) per key, dates as ISO-8601 strings.
const (
	KeyMeals            = "fitness-app-meals"
	KeyWorkouts         = "fitness-app-workouts"
	KeyMealPlans        = "fitness-app-meal-plans"
	KeyMeasurements     = "fitness-app-measurements"
	KeyProfile          = "fitness-app-profile"
	KeyFavoriteWorkouts = "fitness-app-favorite-workouts"
	KeyFoodItems        = "fitness-app-food-items"
)

// CollectionKeys lists every key the repository manages, in storage order.
var CollectionKeys = []string{
	KeyMeals,
	KeyWorkouts,
	KeyMealPlans,
	KeyMeasurements,
	KeyProfile,
	KeyFavoriteWorkouts,
	KeyFoodItems,
}

// Repository reads and rewrites whole collections against a KV store.
// Storage-level failures degrade: reads fall back to empty collections and
// writes complete in memory even when the KV rejects them; both are logged
// rather than surfaced. Decode failures are the exception and come back as
// *DecodeError.
type Repository struct {
	kv  KV
	log *logrus.Logger
}

func NewRepository(kv KV, log *logrus.Logger) *Repository {
	if log == nil {
		log = logrus.New()
	}
	return &Repository{kv: kv, log: log}
}

func loadCollection[T any](r *Repository, key string) ([]T, error) {
	raw, ok, err := r.kv.Get(key)
	if err != nil {
		r.log.WithError(err).WithField("key", key).Error("read collection; returning empty")
		return []T{}, nil
	}
	if !ok {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &DecodeError{Key: key, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func storeCollection[T any](r *Repository, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", key, err)
	}
	if err := r.kv.Set(key, raw); err != nil {
		// Best-effort write: callers keep the in-memory result.
		r.log.WithError(err).WithField("key", key).Error("write collection; data not persisted")
	}
	return nil
}

func appendToCollection[T any](r *Repository, key string, item T) error {
	items, err := loadCollection[T](r, key)
	if err != nil {
		return err
	}
	return storeCollection(r, key, append(items, item))
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Meals

func (r *Repository) Meals() ([]model.Meal, error) {
	return loadCollection[model.Meal](r, KeyMeals)
}

func (r *Repository) SaveMeal(m model.Meal) error {
	return appendToCollection(r, KeyMeals, m)
}

func (r *Repository) ReplaceMeals(meals []model.Meal) error {
	return storeCollection(r, KeyMeals, meals)
}

func (r *Repository) MealsByDate(date time.Time) ([]model.Meal, error) {
	meals, err := r.Meals()
	if err != nil {
		return nil, err
	}
	out := make([]model.Meal, 0)
	for _, m := range meals {
		if SameDay(m.Date, date) {
			out = append(out, m)
		}
	}
	return out, nil
}

// Workouts

func (r *Repository) Workouts() ([]model.Workout, error) {
	return loadCollection[model.Workout](r, KeyWorkouts)
}

func (r *Repository) SaveWorkout(w model.Workout) error {
	return appendToCollection(r, KeyWorkouts, w)
}

func (r *Repository) ReplaceWorkouts(workouts []model.Workout) error {
	return storeCollection(r, KeyWorkouts, workouts)
}

func (r *Repository) WorkoutsByDate(date time.Time) ([]model.Workout, error) {
	workouts, err := r.Workouts()
	if err != nil {
		return nil, err
	}
	out := make([]model.Workout, 0)
	for _, w := range workouts {
		if SameDay(w.Date, date) {
			out = append(out, w)
		}
	}
	return out, nil
}

// Meal plans

func (r *Repository) MealPlans() ([]model.MealPlan, error) {
	return loadCollection[model.MealPlan](r, KeyMealPlans)
}

func (r *Repository) SaveMealPlan(p model.MealPlan) error {
	return appendToCollection(r, KeyMealPlans, p)
}

func (r *Repository) ReplaceMealPlans(plans []model.MealPlan) error {
	return storeCollection(r, KeyMealPlans, plans)
}

// Measurements

func (r *Repository) Measurements() ([]model.Progress, error) {
	return loadCollection[model.Progress](r, KeyMeasurements)
}

func (r *Repository) SaveMeasurement(p model.Progress) error {
	return appendToCollection(r, KeyMeasurements, p)
}

func (r *Repository) ReplaceMeasurements(measurements []model.Progress) error {
	return storeCollection(r, KeyMeasurements, measurements)
}

// Profile. Stored as a single record, not an array; a missing key yields
// the zero profile with initialized goal slices.

func (r *Repository) Profile() (model.Profile, error) {
	empty := model.Profile{Goals: []model.Goal{}, CompletedGoals: []model.CompletedGoal{}}
	raw, ok, err := r.kv.Get(KeyProfile)
	if err != nil {
		r.log.WithError(err).WithField("key", KeyProfile).Error("read profile; returning empty")
		return empty, nil
	}
	if !ok {
		return empty, nil
	}
	var p model.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return empty, &DecodeError{Key: KeyProfile, Err: err}
	}
	if p.Goals == nil {
		p.Goals = []model.Goal{}
	}
	if p.CompletedGoals == nil {
		p.CompletedGoals = []model.CompletedGoal{}
	}
	return p, nil
}

func (r *Repository) SaveProfile(p model.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := r.kv.Set(KeyProfile, raw); err != nil {
		r.log.WithError(err).WithField("key", KeyProfile).Error("write profile; data not persisted")
	}
	return nil
}

// Favorite workout ids

func (r *Repository) FavoriteWorkoutIDs() ([]string, error) {
	return loadCollection[string](r, KeyFavoriteWorkouts)
}

func (r *Repository) ReplaceFavoriteWorkoutIDs(ids []string) error {
	return storeCollection(r, KeyFavoriteWorkouts, ids)
}

// Food item library

func (r *Repository) FoodItems() ([]model.FoodItem, error) {
	return loadCollection[model.FoodItem](r, KeyFoodItems)
}

func (r *Repository) SaveFoodItem(f model.FoodItem) error {
	return appendToCollection(r, KeyFoodItems, f)
}

func (r *Repository) ReplaceFoodItems(items []model.FoodItem) error {
	return storeCollection(r, KeyFoodItems, items)
}

// RawCollection exposes the undecoded value for a key. Used by integrity
// checks; everything else goes through the typed accessors.
func (r *Repository) RawCollection(key string) ([]byte, bool, error) {
	return r.kv.Get(key)
}

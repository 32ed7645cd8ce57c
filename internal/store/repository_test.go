package store_test

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

func newRepo(kv store.KV) *store.Repository {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return store.NewRepository(kv, log)
}

func TestRepositoryMealRoundTripKeepsDates(t *testing.T) {
	t.Parallel()
	repo := newRepo(store.NewMemoryKV())
	date := time.Date(2025, 5, 1, 13, 45, 0, 0, time.Local)

	if err := repo.SaveMeal(model.Meal{ID: "m1", Name: "Lunch", Type: model.MealLunch, Calories: 500, Date: date}); err != nil {
		t.Fatalf("save meal: %v", err)
	}
	meals, err := repo.Meals()
	if err != nil {
		t.Fatalf("load meals: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("expected 1 meal, got %d", len(meals))
	}
	if !meals[0].Date.Equal(date) {
		t.Fatalf("date lost in round trip: got %v want %v", meals[0].Date, date)
	}
}

func TestRepositoryMissingKeyYieldsEmptyCollection(t *testing.T) {
	t.Parallel()
	repo := newRepo(store.NewMemoryKV())

	workouts, err := repo.Workouts()
	if err != nil {
		t.Fatalf("load workouts: %v", err)
	}
	if workouts == nil || len(workouts) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", workouts)
	}
}

func TestRepositoryMalformedCollectionIsLoud(t *testing.T) {
	t.Parallel()
	kv := store.NewMemoryKV()
	if err := kv.Set(store.KeyMeals, []byte("not json at all")); err != nil {
		t.Fatalf("seed kv: %v", err)
	}
	repo := newRepo(kv)

	_, err := repo.Meals()
	if err == nil {
		t.Fatalf("expected decode error for malformed collection")
	}
	var decodeErr *store.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *store.DecodeError, got %T: %v", err, err)
	}
	if decodeErr.Key != store.KeyMeals {
		t.Fatalf("expected key %s, got %s", store.KeyMeals, decodeErr.Key)
	}
}

// failingKV rejects every operation, standing in for a broken backend.
type failingKV struct{}

func (failingKV) Get(key string) ([]byte, bool, error) { return nil, false, errors.New("kv down") }
func (failingKV) Set(key string, value []byte) error   { return errors.New("kv down") }
func (failingKV) Delete(key string) error              { return errors.New("kv down") }
func (failingKV) Keys() ([]string, error)              { return nil, errors.New("kv down") }

func TestRepositoryDegradesWhenBackendFails(t *testing.T) {
	t.Parallel()
	repo := newRepo(failingKV{})

	meals, err := repo.Meals()
	if err != nil {
		t.Fatalf("expected read failure to degrade, got %v", err)
	}
	if len(meals) != 0 {
		t.Fatalf("expected empty fallback, got %d meals", len(meals))
	}

	// Writes are best-effort: the caller is not interrupted.
	if err := repo.SaveMeal(model.Meal{ID: "m1", Name: "Lunch", Type: model.MealLunch}); err != nil {
		t.Fatalf("expected best-effort save to succeed, got %v", err)
	}
}

func TestRepositoryByDateMatchesCalendarDay(t *testing.T) {
	t.Parallel()
	repo := newRepo(store.NewMemoryKV())
	morning := time.Date(2025, 5, 1, 7, 0, 0, 0, time.Local)
	night := time.Date(2025, 5, 1, 23, 30, 0, 0, time.Local)
	nextDay := time.Date(2025, 5, 2, 0, 30, 0, 0, time.Local)

	for i, d := range []time.Time{morning, night, nextDay} {
		if err := repo.SaveWorkout(model.Workout{ID: string(rune('a' + i)), Name: "W", Type: model.WorkoutCardio, Duration: 30, Date: d}); err != nil {
			t.Fatalf("save workout %d: %v", i, err)
		}
	}

	got, err := repo.WorkoutsByDate(time.Date(2025, 5, 1, 12, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("workouts by date: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 workouts on May 1, got %d", len(got))
	}
}

func TestRepositoryProfileDefaultsWhenAbsent(t *testing.T) {
	t.Parallel()
	repo := newRepo(store.NewMemoryKV())

	p, err := repo.Profile()
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if p.Goals == nil || p.CompletedGoals == nil {
		t.Fatalf("expected initialized slices, got %+v", p)
	}

	p.Name = "Alex"
	if err := repo.SaveProfile(p); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	again, err := repo.Profile()
	if err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	if again.Name != "Alex" {
		t.Fatalf("expected saved profile back, got %+v", again)
	}
}

func TestRepositoryReplaceOverwritesCollection(t *testing.T) {
	t.Parallel()
	repo := newRepo(store.NewMemoryKV())

	if err := repo.SaveMeal(model.Meal{ID: "m1", Name: "A", Type: model.MealSnack}); err != nil {
		t.Fatalf("save meal: %v", err)
	}
	if err := repo.ReplaceMeals([]model.Meal{{ID: "m2", Name: "B", Type: model.MealSnack}}); err != nil {
		t.Fatalf("replace meals: %v", err)
	}
	meals, err := repo.Meals()
	if err != nil {
		t.Fatalf("load meals: %v", err)
	}
	if len(meals) != 1 || meals[0].ID != "m2" {
		t.Fatalf("expected only replacement meal, got %+v", meals)
	}
}

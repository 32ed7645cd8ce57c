package service_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

func TestDoctorReportsEmptyStore(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	report := service.RunDoctor(repo)
	if report.Broken != 0 {
		t.Fatalf("expected nothing broken, got %d", report.Broken)
	}
	if len(report.Checks) != len(store.CollectionKeys) {
		t.Fatalf("expected %d checks, got %d", len(store.CollectionKeys), len(report.Checks))
	}
	for _, check := range report.Checks {
		if check.Present {
			t.Fatalf("expected %s absent in a fresh store", check.Key)
		}
	}
}

func TestDoctorCountsRecords(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	if _, err := service.CreateMeal(repo, service.CreateMealInput{Name: "Lunch", Type: model.MealLunch, Calories: 400}); err != nil {
		t.Fatalf("create meal: %v", err)
	}
	if _, err := service.CreateMeal(repo, service.CreateMealInput{Name: "Dinner", Type: model.MealDinner, Calories: 600}); err != nil {
		t.Fatalf("create meal: %v", err)
	}

	report := service.RunDoctor(repo)
	for _, check := range report.Checks {
		if check.Key != store.KeyMeals {
			continue
		}
		if !check.Present || check.Records != 2 {
			t.Fatalf("expected 2 meal records, got %+v", check)
		}
		return
	}
	t.Fatalf("meals collection missing from report")
}

func TestDoctorFlagsMalformedCollection(t *testing.T) {
	t.Parallel()
	kv := store.NewMemoryKV()
	if err := kv.Set(store.KeyWorkouts, []byte("{broken")); err != nil {
		t.Fatalf("seed malformed data: %v", err)
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	repo := store.NewRepository(kv, log)

	report := service.RunDoctor(repo)
	if report.Broken != 1 {
		t.Fatalf("expected 1 broken collection, got %d", report.Broken)
	}
	for _, check := range report.Checks {
		if check.Key == store.KeyWorkouts && check.Err == "" {
			t.Fatalf("expected workouts flagged, got %+v", check)
		}
	}
}

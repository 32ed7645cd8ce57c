package service_test

import (
	"testing"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/service"
)

func TestSeedDemoPopulatesEveryCollection(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	if err := service.SeedDemo(repo, false); err != nil {
		t.Fatalf("seed demo: %v", err)
	}

	meals, err := repo.Meals()
	if err != nil {
		t.Fatalf("meals: %v", err)
	}
	if len(meals) == 0 {
		t.Fatalf("expected demo meals")
	}
	workouts, err := repo.Workouts()
	if err != nil {
		t.Fatalf("workouts: %v", err)
	}
	if len(workouts) == 0 {
		t.Fatalf("expected demo workouts")
	}
	for _, w := range workouts {
		if w.Calories != float64(w.Duration)*service.CaloriesPerMinute {
			t.Fatalf("demo workout %s breaks the calorie rule: %+v", w.ID, w)
		}
	}
	measurements, err := repo.Measurements()
	if err != nil {
		t.Fatalf("measurements: %v", err)
	}
	if len(measurements) != 5 {
		t.Fatalf("expected 5 demo snapshots, got %d", len(measurements))
	}
	p, err := repo.Profile()
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.Name == "" || len(p.Goals) == 0 {
		t.Fatalf("expected demo profile, got %+v", p)
	}
}

func TestSeedDemoRefusesToOverwriteProfile(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	// A profile with goals but no logged entries is still user data.
	if _, err := service.AddGoal(repo, service.AddGoalInput{Name: "Run a marathon", Target: "42 km"}); err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if err := service.SeedDemo(repo, false); err == nil {
		t.Fatalf("expected seeding over an existing profile to fail")
	}
	p, err := repo.Profile()
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if len(p.Goals) != 1 || p.Goals[0].Name != "Run a marathon" {
		t.Fatalf("expected user goals untouched, got %+v", p.Goals)
	}
	if p.Name != "" {
		t.Fatalf("expected profile not replaced, got %q", p.Name)
	}
}

func TestSeedDemoRefusesToOverwrite(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	if _, err := service.CreateMeal(repo, service.CreateMealInput{Name: "Mine", Type: model.MealLunch, Calories: 400}); err != nil {
		t.Fatalf("create meal: %v", err)
	}
	if err := service.SeedDemo(repo, false); err == nil {
		t.Fatalf("expected seeding over existing data to fail")
	}
	if err := service.SeedDemo(repo, true); err != nil {
		t.Fatalf("forced seed: %v", err)
	}
	meals, err := repo.Meals()
	if err != nil {
		t.Fatalf("meals: %v", err)
	}
	for _, m := range meals {
		if m.Name == "Mine" {
			t.Fatalf("forced seed kept old data")
		}
	}
}

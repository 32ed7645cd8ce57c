package service_test

import (
	"testing"
	"time"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/service"
)

func TestCreateWorkoutDerivesCalories(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	w, err := service.CreateWorkout(repo, service.CreateWorkoutInput{
		Name:     "Morning Run",
		Type:     model.WorkoutCardio,
		Duration: 40,
	})
	if err != nil {
		t.Fatalf("create workout: %v", err)
	}
	if w.Calories != 40*service.CaloriesPerMinute {
		t.Fatalf("expected %.1f kcal, got %.1f", 40*service.CaloriesPerMinute, w.Calories)
	}
	if w.ID == "" {
		t.Fatalf("expected generated workout id")
	}
}

func TestCreateWorkoutValidatesExercises(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	if _, err := service.CreateWorkout(repo, service.CreateWorkoutInput{
		Name: "Leg Day", Type: model.WorkoutStrength, Duration: 45,
		Exercises: []service.ExerciseInput{{Name: "Squat", Sets: intPtr(0)}},
	}); err == nil {
		t.Fatalf("expected zero sets to fail")
	}
	if _, err := service.CreateWorkout(repo, service.CreateWorkoutInput{
		Name: "Leg Day", Type: model.WorkoutStrength, Duration: 45,
		Exercises: []service.ExerciseInput{{Name: "Squat", Weight: floatPtr(-10)}},
	}); err == nil {
		t.Fatalf("expected negative weight to fail")
	}

	w, err := service.CreateWorkout(repo, service.CreateWorkoutInput{
		Name: "Leg Day", Type: model.WorkoutStrength, Duration: 45,
		Exercises: []service.ExerciseInput{
			{Name: "Squat", Sets: intPtr(5), Reps: intPtr(5), Weight: floatPtr(100)},
			{Name: "Plank", Duration: intPtr(3)},
		},
	})
	if err != nil {
		t.Fatalf("create workout: %v", err)
	}
	if len(w.Exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(w.Exercises))
	}
	if w.Exercises[1].Sets != nil {
		t.Fatalf("expected absent sets to stay nil")
	}
}

func TestCreateWorkoutRejectsBadInput(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	if _, err := service.CreateWorkout(repo, service.CreateWorkoutInput{Name: "x", Type: "swimming", Duration: 30}); err == nil {
		t.Fatalf("expected invalid type to fail")
	}
	if _, err := service.CreateWorkout(repo, service.CreateWorkoutInput{Name: "x", Type: model.WorkoutCardio, Duration: 0}); err == nil {
		t.Fatalf("expected zero duration to fail")
	}
}

func TestRecentWorkoutsLimitsAndOrders(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.Local)

	for i := 0; i < 5; i++ {
		if _, err := service.CreateWorkout(repo, service.CreateWorkoutInput{
			Name: "Session", Type: model.WorkoutCardio, Duration: 30, Date: base.AddDate(0, 0, i),
		}); err != nil {
			t.Fatalf("create workout %d: %v", i, err)
		}
	}

	recent, err := service.RecentWorkouts(repo, 0)
	if err != nil {
		t.Fatalf("recent workouts: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected default limit of 3, got %d", len(recent))
	}
	if !recent[0].Date.After(recent[1].Date) || !recent[1].Date.After(recent[2].Date) {
		t.Fatalf("expected newest first")
	}
}

func TestDeleteWorkoutRemovesFavorite(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	w, err := service.CreateWorkout(repo, service.CreateWorkoutInput{Name: "HIIT", Type: model.WorkoutCardio, Duration: 20})
	if err != nil {
		t.Fatalf("create workout: %v", err)
	}
	if err := service.FavoriteWorkout(repo, w.ID); err != nil {
		t.Fatalf("favorite workout: %v", err)
	}
	if err := service.DeleteWorkout(repo, w.ID); err != nil {
		t.Fatalf("delete workout: %v", err)
	}

	favs, err := repo.FavoriteWorkoutIDs()
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(favs) != 0 {
		t.Fatalf("expected favorites cleared, got %v", favs)
	}
}

func TestFavoriteWorkoutIsIdempotent(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	w, err := service.CreateWorkout(repo, service.CreateWorkoutInput{Name: "Yoga", Type: model.WorkoutFlexibility, Duration: 30})
	if err != nil {
		t.Fatalf("create workout: %v", err)
	}
	if err := service.FavoriteWorkout(repo, w.ID); err != nil {
		t.Fatalf("first favorite: %v", err)
	}
	if err := service.FavoriteWorkout(repo, w.ID); err != nil {
		t.Fatalf("second favorite: %v", err)
	}
	favs, err := repo.FavoriteWorkoutIDs()
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(favs) != 1 {
		t.Fatalf("expected a single favorite entry, got %v", favs)
	}
}

package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

// CaloriesPerMinute is the flat burn coefficient applied to every workout.
const CaloriesPerMinute = 8.5

type ExerciseInput struct {
	Name     string
	Sets     *int
	Reps     *int
	Weight   *float64
	Duration *int
	Distance *float64
}

type CreateWorkoutInput struct {
	Name      string
	Type      model.WorkoutType
	Duration  int
	Date      time.Time
	Exercises []ExerciseInput
}

func CreateWorkout(repo *store.Repository, in CreateWorkoutInput) (model.Workout, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return model.Workout{}, err
	}
	if !in.Type.Valid() {
		return model.Workout{}, fmt.Errorf("invalid workout type %q (use strength, cardio or flexibility)", in.Type)
	}
	if in.Duration <= 0 {
		return model.Workout{}, fmt.Errorf("duration must be > 0")
	}

	w := model.Workout{
		ID:        newTimeID(),
		Name:      name,
		Type:      in.Type,
		Duration:  in.Duration,
		Calories:  float64(in.Duration) * CaloriesPerMinute,
		Date:      orNow(in.Date),
		Exercises: make([]model.Exercise, 0, len(in.Exercises)),
	}
	for _, ex := range in.Exercises {
		exName, err := requireName(ex.Name)
		if err != nil {
			return model.Workout{}, fmt.Errorf("exercise: %w", err)
		}
		if ex.Sets != nil && *ex.Sets <= 0 {
			return model.Workout{}, fmt.Errorf("exercise sets must be > 0")
		}
		if ex.Reps != nil && *ex.Reps <= 0 {
			return model.Workout{}, fmt.Errorf("exercise reps must be > 0")
		}
		if ex.Weight != nil && *ex.Weight < 0 {
			return model.Workout{}, fmt.Errorf("exercise weight must be >= 0")
		}
		w.Exercises = append(w.Exercises, model.Exercise{
			ID:       uuid.New().String(),
			Name:     exName,
			Sets:     ex.Sets,
			Reps:     ex.Reps,
			Weight:   ex.Weight,
			Duration: ex.Duration,
			Distance: ex.Distance,
		})
	}

	if err := repo.SaveWorkout(w); err != nil {
		return model.Workout{}, err
	}
	return w, nil
}

func DeleteWorkout(repo *store.Repository, id string) error {
	workouts, err := repo.Workouts()
	if err != nil {
		return err
	}
	kept := make([]model.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(workouts) {
		return fmt.Errorf("workout %s not found", id)
	}
	if err := repo.ReplaceWorkouts(kept); err != nil {
		return err
	}
	// A deleted workout leaves the favorites list too.
	favs, err := repo.FavoriteWorkoutIDs()
	if err != nil {
		return err
	}
	keptFavs := make([]string, 0, len(favs))
	for _, f := range favs {
		if f != id {
			keptFavs = append(keptFavs, f)
		}
	}
	if len(keptFavs) != len(favs) {
		return repo.ReplaceFavoriteWorkoutIDs(keptFavs)
	}
	return nil
}

// RecentWorkouts returns the newest workouts first, at most limit of them.
func RecentWorkouts(repo *store.Repository, limit int) ([]model.Workout, error) {
	workouts, err := repo.Workouts()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 3
	}
	sorted := make([]model.Workout, len(workouts))
	copy(sorted, workouts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func FavoriteWorkout(repo *store.Repository, id string) error {
	workouts, err := repo.Workouts()
	if err != nil {
		return err
	}
	found := false
	for _, w := range workouts {
		if w.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("workout %s not found", id)
	}
	favs, err := repo.FavoriteWorkoutIDs()
	if err != nil {
		return err
	}
	for _, f := range favs {
		if f == id {
			return nil
		}
	}
	return repo.ReplaceFavoriteWorkoutIDs(append(favs, id))
}

func UnfavoriteWorkout(repo *store.Repository, id string) error {
	favs, err := repo.FavoriteWorkoutIDs()
	if err != nil {
		return err
	}
	kept := make([]string, 0, len(favs))
	for _, f := range favs {
		if f != id {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(favs) {
		return fmt.Errorf("workout %s is not a favorite", id)
	}
	return repo.ReplaceFavoriteWorkoutIDs(kept)
}

func FavoriteWorkouts(repo *store.Repository) ([]model.Workout, error) {
	workouts, err := repo.Workouts()
	if err != nil {
		return nil, err
	}
	favs, err := repo.FavoriteWorkoutIDs()
	if err != nil {
		return nil, err
	}
	favSet := make(map[string]struct{}, len(favs))
	for _, f := range favs {
		favSet[f] = struct{}{}
	}
	out := make([]model.Workout, 0, len(favs))
	for _, w := range workouts {
		if _, ok := favSet[w.ID]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

package service

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

var demoWorkoutNames = map[model.WorkoutType][]string{
	model.WorkoutStrength:    {"Upper Body Strength", "Leg Day", "Full Body Strength", "Push Day", "Pull Day"},
	model.WorkoutCardio:      {"Morning Run", "Evening Run", "Cycling", "Rowing Intervals", "HIIT Session"},
	model.WorkoutFlexibility: {"Yoga Flow", "Mobility Work", "Stretching Routine"},
}

var demoMealNames = map[model.MealType][]string{
	model.MealBreakfast: {"Oatmeal with fruits", "Greek Yogurt Bowl", "Scrambled Eggs"},
	model.MealLunch:     {"Chicken Salad", "Turkey Sandwich", "Rice and Beans"},
	model.MealDinner:    {"Grilled Salmon", "Pasta with Vegetables", "Steak and Potatoes"},
	model.MealSnack:     {"Protein Shake", "Apple with Peanut Butter", "Trail Mix"},
}

// SeedDemo loads a demo dataset: a fixed month of measurement history plus
// generated workouts and meals. Seeding never happens implicitly on first
// read; it is this explicit action only, and it refuses to touch existing
// data unless forced.
func SeedDemo(repo *store.Repository, force bool) error {
	if !force {
		empty, err := collectionsEmpty(repo)
		if err != nil {
			return err
		}
		if !empty {
			return fmt.Errorf("store already holds data; rerun with --force to overwrite")
		}
	}

	faker := gofakeit.New(0)
	now := time.Now()

	if err := repo.ReplaceMeasurements(demoMeasurements(now)); err != nil {
		return err
	}
	if err := repo.ReplaceWorkouts(demoWorkouts(faker, now)); err != nil {
		return err
	}
	if err := repo.ReplaceMeals(demoMeals(faker, now)); err != nil {
		return err
	}
	if err := repo.SaveProfile(demoProfile()); err != nil {
		return err
	}
	return nil
}

func collectionsEmpty(repo *store.Repository) (bool, error) {
	meals, err := repo.Meals()
	if err != nil {
		return false, err
	}
	workouts, err := repo.Workouts()
	if err != nil {
		return false, err
	}
	measurements, err := repo.Measurements()
	if err != nil {
		return false, err
	}
	profile, err := repo.Profile()
	if err != nil {
		return false, err
	}
	return len(meals) == 0 && len(workouts) == 0 && len(measurements) == 0 && profileEmpty(profile), nil
}

// Seeding writes the profile too, so an existing one counts as data even
// when no entries were ever logged.
func profileEmpty(p model.Profile) bool {
	return p.Name == "" && p.Bio == "" && len(p.Goals) == 0 && len(p.CompletedGoals) == 0 && p.GoalsCompleted == 0
}

func demoMeasurements(now time.Time) []model.Progress {
	weights := []float64{81.2, 80.5, 79.8, 79.2, 78.5}
	bodyFats := []float64{20.1, 19.5, 19.1, 18.6, 18.2}
	chests := []float64{102, 103, 104, 104, 105}
	waists := []float64{89, 88, 87, 86, 85}
	hips := []float64{101, 101, 100, 99, 98}
	biceps := []float64{33, 34, 34, 35, 36}
	thighs := []float64{56, 57, 57, 58, 58}

	out := make([]model.Progress, 0, len(weights))
	for i := range weights {
		weeksAgo := len(weights) - 1 - i
		out = append(out, model.Progress{
			ID:      uuid.New().String(),
			Date:    now.AddDate(0, 0, -7*weeksAgo),
			Weight:  &weights[i],
			BodyFat: &bodyFats[i],
			Measurements: &model.BodyMeasurements{
				Chest:  &chests[i],
				Waist:  &waists[i],
				Hips:   &hips[i],
				Biceps: &biceps[i],
				Thighs: &thighs[i],
			},
		})
	}
	return out
}

func demoWorkouts(faker *gofakeit.Faker, now time.Time) []model.Workout {
	types := []model.WorkoutType{model.WorkoutStrength, model.WorkoutCardio, model.WorkoutFlexibility}
	out := make([]model.Workout, 0, 10)
	for day := 28; day >= 0; day -= 3 {
		t := types[faker.Number(0, len(types)-1)]
		duration := faker.Number(20, 75)
		out = append(out, model.Workout{
			ID:        fmt.Sprintf("%d", now.AddDate(0, 0, -day).UnixNano()),
			Name:      faker.RandomString(demoWorkoutNames[t]),
			Type:      t,
			Duration:  duration,
			Calories:  float64(duration) * CaloriesPerMinute,
			Date:      now.AddDate(0, 0, -day),
			Exercises: []model.Exercise{},
		})
	}
	return out
}

func demoMeals(faker *gofakeit.Faker, now time.Time) []model.Meal {
	mealTypes := []model.MealType{model.MealBreakfast, model.MealLunch, model.MealDinner, model.MealSnack}
	out := make([]model.Meal, 0, 28)
	for day := 6; day >= 0; day-- {
		for _, t := range mealTypes {
			date := now.AddDate(0, 0, -day)
			out = append(out, model.Meal{
				ID:       fmt.Sprintf("%d", date.UnixNano()+int64(len(out))),
				Name:     faker.RandomString(demoMealNames[t]),
				Type:     t,
				Calories: float64(faker.Number(150, 750)),
				Protein:  float64(faker.Number(5, 50)),
				Carbs:    float64(faker.Number(10, 90)),
				Fat:      float64(faker.Number(3, 30)),
				Date:     date,
				Items:    []model.FoodItem{},
			})
		}
	}
	return out
}

func demoProfile() model.Profile {
	return model.Profile{
		Name:           "Alex Smith",
		Bio:            "Fitness Enthusiast",
		Workouts:       48,
		ActiveDays:     86,
		Achievements:   12,
		GoalsCompleted: 5,
		Goals: []model.Goal{
			{ID: "1", Name: "Lose 10 lbs", Progress: 70, Target: "10 lbs", Current: "7 lbs lost, 3 lbs to go"},
			{ID: "2", Name: "Run 5K in under 25 minutes", Progress: 40, Target: "25:00", Current: "Current best: 28:15"},
			{ID: "3", Name: "Do 10 pull-ups in a row", Progress: 60, Target: "10", Current: "Current best: 6 pull-ups"},
		},
		CompletedGoals: []model.CompletedGoal{
			{Goal: "Work out 3 times a week for a month", Date: "March 2025"},
			{Goal: "Complete a 10K run", Date: "February 2025"},
			{Goal: "Bench press 150 lbs", Date: "January 2025"},
		},
	}
}

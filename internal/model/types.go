package model

import "time"

type WorkoutType string

const (
	WorkoutStrength    WorkoutType = "strength"
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutFlexibility WorkoutType = "flexibility"
)

func (t WorkoutType) Valid() bool {
	switch t {
	case WorkoutStrength, WorkoutCardio, WorkoutFlexibility:
		return true
	}
	return false
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

type Workout struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      WorkoutType `json:"type"`
	Duration  int         `json:"duration"`
	Calories  float64     `json:"calories"`
	Date      time.Time   `json:"date"`
	Exercises []Exercise  `json:"exercises"`
}

type Exercise struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Sets     *int     `json:"sets,omitempty"`
	Reps     *int     `json:"reps,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Duration *int     `json:"duration,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
}

type Meal struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     MealType   `json:"type"`
	Calories float64    `json:"calories"`
	Protein  float64    `json:"protein"`
	Carbs    float64    `json:"carbs"`
	Fat      float64    `json:"fat"`
	Date     time.Time  `json:"date"`
	Items    []FoodItem `json:"items"`
}

type FoodItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ServingSize string  `json:"servingSize"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

// Progress is one point-in-time measurement snapshot. Any subset of the
// optional fields may be present; an entry carrying none of them is
// rejected before it is ever persisted.
type Progress struct {
	ID           string            `json:"id"`
	Date         time.Time         `json:"date"`
	Weight       *float64          `json:"weight,omitempty"`
	BodyFat      *float64          `json:"bodyFat,omitempty"`
	Measurements *BodyMeasurements `json:"measurements,omitempty"`
	Photos       []string          `json:"photos,omitempty"`
}

type BodyMeasurements struct {
	Chest  *float64 `json:"chest,omitempty"`
	Waist  *float64 `json:"waist,omitempty"`
	Hips   *float64 `json:"hips,omitempty"`
	Biceps *float64 `json:"biceps,omitempty"`
	Thighs *float64 `json:"thighs,omitempty"`
}

type MealPlan struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Meals       []PlannedMeal `json:"meals"`
}

type PlannedMeal struct {
	Name  string     `json:"name"`
	Time  string     `json:"time"`
	Items []FoodItem `json:"items"`
}

type Profile struct {
	Name           string          `json:"name"`
	Bio            string          `json:"bio"`
	Avatar         string          `json:"avatar,omitempty"`
	Workouts       int             `json:"workouts"`
	ActiveDays     int             `json:"activeDays"`
	Achievements   int             `json:"achievements"`
	GoalsCompleted int             `json:"goalsCompleted"`
	Goals          []Goal          `json:"goals"`
	CompletedGoals []CompletedGoal `json:"completedGoals"`
}

type Goal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Progress float64 `json:"progress"`
	Target   string  `json:"target"`
	Current  string  `json:"current"`
}

type CompletedGoal struct {
	Goal string `json:"goal"`
	Date string `json:"date"`
}

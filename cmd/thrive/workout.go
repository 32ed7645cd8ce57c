package thrive

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Manage workouts",
}

var (
	workoutName      string
	workoutType      string
	workoutDuration  int
	workoutDate      string
	workoutExercises []string
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrNow(workoutDate)
		if err != nil {
			return err
		}
		exercises := make([]service.ExerciseInput, 0, len(workoutExercises))
		for _, spec := range workoutExercises {
			ex, err := parseExerciseSpec(spec)
			if err != nil {
				return err
			}
			exercises = append(exercises, ex)
		}
		in := service.CreateWorkoutInput{
			Name:      workoutName,
			Type:      model.WorkoutType(workoutType),
			Duration:  workoutDuration,
			Date:      date,
			Exercises: exercises,
		}
		return withRepo(func(repo *store.Repository) error {
			w, err := service.CreateWorkout(repo, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged workout %s (%s, %d min, %.0f kcal)\n", w.ID, w.Type, w.Duration, w.Calories)
			return nil
		})
	},
}

var (
	workoutListTypes     []string
	workoutListDurations []string
	workoutListSort      string
)

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts with filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		types := make([]model.WorkoutType, 0, len(workoutListTypes))
		for _, raw := range workoutListTypes {
			t := model.WorkoutType(raw)
			if !t.Valid() {
				return fmt.Errorf("invalid workout type %q (use strength, cardio or flexibility)", raw)
			}
			types = append(types, t)
		}
		buckets := make([]service.DurationBucket, 0, len(workoutListDurations))
		for _, raw := range workoutListDurations {
			b, err := service.ParseDurationBucket(raw)
			if err != nil {
				return err
			}
			buckets = append(buckets, b)
		}
		sortKey, err := service.ParseSortKey(workoutListSort)
		if err != nil {
			return err
		}
		return withRepo(func(repo *store.Repository) error {
			workouts, err := repo.Workouts()
			if err != nil {
				return err
			}
			printWorkouts(cmd, service.FilterWorkouts(workouts, types, buckets, sortKey))
			return nil
		})
	},
}

var workoutRecentLimit int

var workoutRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recent workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			workouts, err := service.RecentWorkouts(repo, workoutRecentLimit)
			if err != nil {
				return err
			}
			printWorkouts(cmd, workouts)
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			if err := service.DeleteWorkout(repo, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout %s\n", args[0])
			return nil
		})
	},
}

var workoutFavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Mark a workout as favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			if err := service.FavoriteWorkout(repo, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Favorited workout %s\n", args[0])
			return nil
		})
	},
}

var workoutUnfavoriteCmd = &cobra.Command{
	Use:   "unfavorite <id>",
	Short: "Remove a workout from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			if err := service.UnfavoriteWorkout(repo, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unfavorited workout %s\n", args[0])
			return nil
		})
	},
}

var workoutFavoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			workouts, err := service.FavoriteWorkouts(repo)
			if err != nil {
				return err
			}
			printWorkouts(cmd, workouts)
			return nil
		})
	},
}

func printWorkouts(cmd *cobra.Command, workouts []model.Workout) {
	fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tNAME\tTYPE\tDURATION\tCALORIES\tEXERCISES")
	for _, w := range workouts {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d min\t%.0f\t%d\n",
			w.ID, w.Date.Format("2006-01-02"), w.Name, w.Type, w.Duration, w.Calories, len(w.Exercises))
	}
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutRecentCmd, workoutDeleteCmd,
		workoutFavoriteCmd, workoutUnfavoriteCmd, workoutFavoritesCmd)

	workoutAddCmd.Flags().StringVar(&workoutName, "name", "", "Workout name")
	workoutAddCmd.Flags().StringVar(&workoutType, "type", "", "Workout type: strength, cardio or flexibility")
	workoutAddCmd.Flags().IntVar(&workoutDuration, "duration", 0, "Duration in minutes")
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "Date YYYY-MM-DD (default today)")
	workoutAddCmd.Flags().StringArrayVar(&workoutExercises, "exercise", nil, "Exercise spec name|sets|reps|weight|duration|distance (repeatable)")
	_ = workoutAddCmd.MarkFlagRequired("name")
	_ = workoutAddCmd.MarkFlagRequired("type")
	_ = workoutAddCmd.MarkFlagRequired("duration")

	workoutListCmd.Flags().StringSliceVar(&workoutListTypes, "type", nil, "Filter by type (repeatable)")
	workoutListCmd.Flags().StringSliceVar(&workoutListDurations, "duration", nil, "Filter by duration bucket: <15, 15-30, 30-60, >60 (repeatable)")
	workoutListCmd.Flags().StringVar(&workoutListSort, "sort", "recent", "Sort: recent, oldest, duration-shortest, duration-longest")

	workoutRecentCmd.Flags().IntVar(&workoutRecentLimit, "limit", 3, "Number of workouts to show")
}

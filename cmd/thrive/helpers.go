package thrive

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shrek198/thrive-well-tracker/internal/app"
	"github.com/shrek198/thrive-well-tracker/internal/config"
	"github.com/shrek198/thrive-well-tracker/internal/logging"
	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

const sqliteFileName = "thrive.db"

func withRepo(run func(*store.Repository) error) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
	}
	if backendFlag != "" {
		cfg.Backend = backendFlag
	}
	log := logging.New(cfg.LogLevel)

	switch cfg.Backend {
	case config.BackendSQLite:
		if err := app.EnsureDir(cfg.DataDir); err != nil {
			return err
		}
		kv, err := store.OpenSQLiteKV(filepath.Join(cfg.DataDir, sqliteFileName))
		if err != nil {
			return err
		}
		defer kv.Close()
		return run(store.NewRepository(kv, log))
	default:
		kv, err := store.NewFileKV(cfg.DataDir)
		if err != nil {
			return err
		}
		return run(store.NewRepository(kv, log))
	}
}

func exportDir() (string, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return "", err
	}
	return cfg.ExportDir, nil
}

func parseDateOrNow(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

func optionalFloat(v float64) *float64 {
	if v < 0 {
		return nil
	}
	return &v
}

// parseItemSpec reads a food item flag of the form
// "name|serving|calories|protein|carbs|fat"; serving and the trailing
// macros may be left empty.
func parseItemSpec(spec string) (service.FoodItemInput, error) {
	parts := strings.Split(spec, "|")
	if len(parts) < 3 {
		return service.FoodItemInput{}, fmt.Errorf("invalid item %q (expected name|serving|calories[|protein|carbs|fat])", spec)
	}
	in := service.FoodItemInput{
		Name:        strings.TrimSpace(parts[0]),
		ServingSize: strings.TrimSpace(parts[1]),
	}
	fields := []*float64{&in.Calories, &in.Protein, &in.Carbs, &in.Fat}
	names := []string{"calories", "protein", "carbs", "fat"}
	for i, target := range fields {
		if len(parts) <= i+2 {
			break
		}
		raw := strings.TrimSpace(parts[i+2])
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return service.FoodItemInput{}, fmt.Errorf("invalid item %s %q", names[i], raw)
		}
		*target = v
	}
	return in, nil
}

// parseExerciseSpec reads an exercise flag of the form
// "name|sets|reps|weight|duration|distance"; every numeric field may be
// left empty.
func parseExerciseSpec(spec string) (service.ExerciseInput, error) {
	parts := strings.Split(spec, "|")
	in := service.ExerciseInput{Name: strings.TrimSpace(parts[0])}
	parseInt := func(raw, name string) (*int, error) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid exercise %s %q", name, raw)
		}
		return &v, nil
	}
	parseFloat := func(raw, name string) (*float64, error) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid exercise %s %q", name, raw)
		}
		return &v, nil
	}

	var err error
	if len(parts) > 1 {
		if in.Sets, err = parseInt(parts[1], "sets"); err != nil {
			return service.ExerciseInput{}, err
		}
	}
	if len(parts) > 2 {
		if in.Reps, err = parseInt(parts[2], "reps"); err != nil {
			return service.ExerciseInput{}, err
		}
	}
	if len(parts) > 3 {
		if in.Weight, err = parseFloat(parts[3], "weight"); err != nil {
			return service.ExerciseInput{}, err
		}
	}
	if len(parts) > 4 {
		if in.Duration, err = parseInt(parts[4], "duration"); err != nil {
			return service.ExerciseInput{}, err
		}
	}
	if len(parts) > 5 {
		if in.Distance, err = parseFloat(parts[5], "distance"); err != nil {
			return service.ExerciseInput{}, err
		}
	}
	return in, nil
}

package thrive

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/shrek198/thrive-well-tracker/internal/model"
)

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestPrintWorkoutsRendersStoredDate(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	date := time.Date(2025, 5, 1, 9, 0, 0, 0, time.Local)
	printWorkouts(cmd, []model.Workout{
		{ID: "w1", Name: "Run", Type: model.WorkoutCardio, Duration: 30, Calories: 255, Date: date},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "2025-05-01") {
		t.Fatalf("expected stored date rendered as 2025-05-01, got %q", lines[1])
	}
}

func TestParseDateOrNow(t *testing.T) {
	got, err := parseDateOrNow("2025-05-01")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if got.Year() != 2025 || got.Month() != 5 || got.Day() != 1 {
		t.Fatalf("unexpected date: %v", got)
	}
	if _, err := parseDateOrNow("05/01/2025"); err == nil {
		t.Fatalf("expected slash format to fail")
	}
	now, err := parseDateOrNow("")
	if err != nil {
		t.Fatalf("parse empty date: %v", err)
	}
	if now.IsZero() {
		t.Fatalf("expected empty date to default to now")
	}
}

func TestParseItemSpec(t *testing.T) {
	in, err := parseItemSpec("Rice|150g|200|4|44|1")
	if err != nil {
		t.Fatalf("parse item: %v", err)
	}
	if in.Name != "Rice" || in.ServingSize != "150g" || in.Calories != 200 || in.Carbs != 44 {
		t.Fatalf("unexpected item: %+v", in)
	}

	// Trailing macros are optional.
	in, err = parseItemSpec("Apple||90")
	if err != nil {
		t.Fatalf("parse short item: %v", err)
	}
	if in.Calories != 90 || in.Protein != 0 {
		t.Fatalf("unexpected short item: %+v", in)
	}

	if _, err := parseItemSpec("Apple"); err == nil {
		t.Fatalf("expected item without calories to fail")
	}
	if _, err := parseItemSpec("Apple||many"); err == nil {
		t.Fatalf("expected non-numeric calories to fail")
	}
}

func TestParseExerciseSpec(t *testing.T) {
	in, err := parseExerciseSpec("Squat|5|5|100||")
	if err != nil {
		t.Fatalf("parse exercise: %v", err)
	}
	if in.Name != "Squat" {
		t.Fatalf("unexpected name: %q", in.Name)
	}
	if in.Sets == nil || *in.Sets != 5 || in.Reps == nil || *in.Reps != 5 {
		t.Fatalf("unexpected sets/reps: %+v", in)
	}
	if in.Weight == nil || *in.Weight != 100 {
		t.Fatalf("unexpected weight: %+v", in)
	}
	if in.Duration != nil || in.Distance != nil {
		t.Fatalf("expected empty fields to stay nil: %+v", in)
	}

	if _, err := parseExerciseSpec("Plank|x"); err == nil {
		t.Fatalf("expected non-numeric sets to fail")
	}
}

func TestOptionalFloat(t *testing.T) {
	if optionalFloat(-1) != nil {
		t.Fatalf("expected negative sentinel to mean absent")
	}
	v := optionalFloat(80.5)
	if v == nil || *v != 80.5 {
		t.Fatalf("unexpected value: %v", v)
	}
	zero := optionalFloat(0)
	if zero == nil || *zero != 0 {
		t.Fatalf("expected zero to be a real value")
	}
}

package service_test

import (
	"testing"

	"github.com/shrek198/thrive-well-tracker/internal/service"
)

func TestProfileStartsEmpty(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	p, err := service.LoadProfile(repo)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if p.Name != "" || p.GoalsCompleted != 0 {
		t.Fatalf("expected zero profile, got %+v", p)
	}
	if p.Goals == nil || p.CompletedGoals == nil {
		t.Fatalf("expected initialized goal slices")
	}
}

func TestUpdateProfilePatchesOnlyGivenFields(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	name := "Alex"
	bio := "Runner"
	if _, err := service.UpdateProfile(repo, service.UpdateProfileInput{Name: &name, Bio: &bio}); err != nil {
		t.Fatalf("first update: %v", err)
	}

	newBio := "Trail runner"
	p, err := service.UpdateProfile(repo, service.UpdateProfileInput{Bio: &newBio})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if p.Name != "Alex" {
		t.Fatalf("expected name untouched, got %q", p.Name)
	}
	if p.Bio != "Trail runner" {
		t.Fatalf("expected bio updated, got %q", p.Bio)
	}

	blank := "   "
	if _, err := service.UpdateProfile(repo, service.UpdateProfileInput{Name: &blank}); err == nil {
		t.Fatalf("expected blank name to fail")
	}
}

func TestGoalLifecycle(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	g, err := service.AddGoal(repo, service.AddGoalInput{
		Name: "Lose 5 kg", Target: "75 kg", Current: "80 kg", Progress: 0,
	})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}

	if err := service.UpdateGoal(repo, g.ID, 60, "77 kg"); err != nil {
		t.Fatalf("update goal: %v", err)
	}
	if err := service.UpdateGoal(repo, g.ID, 120, ""); err == nil {
		t.Fatalf("expected progress above 100 to fail")
	}
	if err := service.UpdateGoal(repo, "missing", 10, ""); err == nil {
		t.Fatalf("expected missing goal to fail")
	}

	if err := service.CompleteGoal(repo, g.ID); err != nil {
		t.Fatalf("complete goal: %v", err)
	}
	p, err := service.LoadProfile(repo)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if len(p.Goals) != 0 {
		t.Fatalf("expected active goals empty, got %d", len(p.Goals))
	}
	if len(p.CompletedGoals) != 1 || p.CompletedGoals[0].Goal != "Lose 5 kg" {
		t.Fatalf("expected completed goal recorded, got %+v", p.CompletedGoals)
	}
	if p.CompletedGoals[0].Date == "" {
		t.Fatalf("expected completion date stamp")
	}
	if p.GoalsCompleted != 1 {
		t.Fatalf("expected completed counter bumped, got %d", p.GoalsCompleted)
	}

	if err := service.CompleteGoal(repo, g.ID); err == nil {
		t.Fatalf("expected completing twice to fail")
	}
}

func TestGoalRatio(t *testing.T) {
	t.Parallel()
	if got := service.GoalRatio(50, 200); got != 25 {
		t.Fatalf("expected 25, got %.1f", got)
	}
	// Exceeding the target stays unclamped.
	if got := service.GoalRatio(250, 200); got != 125 {
		t.Fatalf("expected 125, got %.1f", got)
	}
	if got := service.GoalRatio(50, 0); got != 0 {
		t.Fatalf("expected 0 for zero target, got %.1f", got)
	}
}

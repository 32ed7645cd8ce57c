package service

import (
	"fmt"
	"time"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

type UpdateProfileInput struct {
	Name   *string
	Bio    *string
	Avatar *string
}

func LoadProfile(repo *store.Repository) (model.Profile, error) {
	return repo.Profile()
}

func UpdateProfile(repo *store.Repository, in UpdateProfileInput) (model.Profile, error) {
	p, err := repo.Profile()
	if err != nil {
		return model.Profile{}, err
	}
	if in.Name != nil {
		name, err := requireName(*in.Name)
		if err != nil {
			return model.Profile{}, err
		}
		p.Name = name
	}
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.Avatar != nil {
		p.Avatar = *in.Avatar
	}
	if err := repo.SaveProfile(p); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

type AddGoalInput struct {
	Name     string
	Target   string
	Progress float64
	Current  string
}

func AddGoal(repo *store.Repository, in AddGoalInput) (model.Goal, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return model.Goal{}, err
	}
	if in.Progress < 0 || in.Progress > 100 {
		return model.Goal{}, fmt.Errorf("progress must be between 0 and 100")
	}
	p, err := repo.Profile()
	if err != nil {
		return model.Goal{}, err
	}
	goal := model.Goal{
		ID:       newTimeID(),
		Name:     name,
		Progress: in.Progress,
		Target:   in.Target,
		Current:  in.Current,
	}
	p.Goals = append(p.Goals, goal)
	if err := repo.SaveProfile(p); err != nil {
		return model.Goal{}, err
	}
	return goal, nil
}

func UpdateGoal(repo *store.Repository, id string, progress float64, current string) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100")
	}
	p, err := repo.Profile()
	if err != nil {
		return err
	}
	for i := range p.Goals {
		if p.Goals[i].ID == id {
			p.Goals[i].Progress = progress
			p.Goals[i].Current = current
			return repo.SaveProfile(p)
		}
	}
	return fmt.Errorf("goal %s not found", id)
}

// CompleteGoal moves a goal to the completed log, stamped with the month
// and year, and bumps the completed counter.
func CompleteGoal(repo *store.Repository, id string) error {
	p, err := repo.Profile()
	if err != nil {
		return err
	}
	idx := -1
	for i := range p.Goals {
		if p.Goals[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("goal %s not found", id)
	}
	completed := model.CompletedGoal{
		Goal: p.Goals[idx].Name,
		Date: time.Now().Format("January 2006"),
	}
	p.Goals = append(p.Goals[:idx], p.Goals[idx+1:]...)
	p.CompletedGoals = append([]model.CompletedGoal{completed}, p.CompletedGoals...)
	p.GoalsCompleted++
	return repo.SaveProfile(p)
}

// GoalRatio is current over target as a percentage, deliberately unclamped:
// exceeding the target reads as more than 100 and callers clamp for display.
// A zero target has no meaningful ratio and yields 0.
func GoalRatio(current, target float64) float64 {
	if target == 0 {
		return 0
	}
	return current / target * 100
}

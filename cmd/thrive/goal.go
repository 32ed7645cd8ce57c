package thrive

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage fitness goals",
}

var (
	goalName     string
	goalTarget   string
	goalCurrent  string
	goalProgress float64
)

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			g, err := service.AddGoal(repo, service.AddGoalInput{
				Name:     goalName,
				Target:   goalTarget,
				Current:  goalCurrent,
				Progress: goalProgress,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added goal %s (%s)\n", g.Name, g.ID)
			return nil
		})
	},
}

var goalUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a goal's progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			if err := service.UpdateGoal(repo, args[0], goalProgress, goalCurrent); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated goal %s\n", args[0])
			return nil
		})
	},
}

var goalCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a goal as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			if err := service.CompleteGoal(repo, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed goal %s\n", args[0])
			return nil
		})
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			p, err := service.LoadProfile(repo)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tPROGRESS\tCURRENT\tTARGET")
			for _, g := range p.Goals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f%%\t%s\t%s\n",
					g.ID, g.Name, g.Progress, g.Current, g.Target)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalAddCmd, goalUpdateCmd, goalCompleteCmd, goalListCmd)

	goalAddCmd.Flags().StringVar(&goalName, "name", "", "Goal name")
	goalAddCmd.Flags().StringVar(&goalTarget, "target", "", "Target value, e.g. 75kg")
	goalAddCmd.Flags().StringVar(&goalCurrent, "current", "", "Current value")
	goalAddCmd.Flags().Float64Var(&goalProgress, "progress", 0, "Progress percentage (0-100)")
	_ = goalAddCmd.MarkFlagRequired("name")

	goalUpdateCmd.Flags().Float64Var(&goalProgress, "progress", 0, "Progress percentage (0-100)")
	goalUpdateCmd.Flags().StringVar(&goalCurrent, "current", "", "Current value")
	_ = goalUpdateCmd.MarkFlagRequired("progress")
}

package thrive

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			p, err := service.LoadProfile(repo)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:            %s\n", p.Name)
			if p.Bio != "" {
				fmt.Fprintf(out, "Bio:             %s\n", p.Bio)
			}
			fmt.Fprintf(out, "Workouts:        %d\n", p.Workouts)
			fmt.Fprintf(out, "Active days:     %d\n", p.ActiveDays)
			fmt.Fprintf(out, "Achievements:    %d\n", p.Achievements)
			fmt.Fprintf(out, "Goals completed: %d\n", p.GoalsCompleted)
			if len(p.Goals) > 0 {
				fmt.Fprintln(out, "Goals:")
				for _, g := range p.Goals {
					fmt.Fprintf(out, "  %s\t%s\t%.0f%%\t(current %s, target %s)\n",
						g.ID, g.Name, g.Progress, g.Current, g.Target)
				}
			}
			if len(p.CompletedGoals) > 0 {
				fmt.Fprintln(out, "Completed:")
				for _, g := range p.CompletedGoals {
					fmt.Fprintf(out, "  %s\t%s\n", g.Date, g.Goal)
				}
			}
			return nil
		})
	},
}

var (
	profileName   string
	profileBio    string
	profileAvatar string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.UpdateProfileInput{}
		if cmd.Flags().Changed("name") {
			in.Name = &profileName
		}
		if cmd.Flags().Changed("bio") {
			in.Bio = &profileBio
		}
		if cmd.Flags().Changed("avatar") {
			in.Avatar = &profileAvatar
		}
		return withRepo(func(repo *store.Repository) error {
			p, err := service.UpdateProfile(repo, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated profile for %s\n", p.Name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)

	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileUpdateCmd.Flags().StringVar(&profileBio, "bio", "", "Short bio")
	profileUpdateCmd.Flags().StringVar(&profileAvatar, "avatar", "", "Avatar path or URL")
}

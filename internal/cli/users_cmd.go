package cli

import (
	"context"
	"fmt"

	"github.com/adilzhanb/zhospar/internal/domain"
	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users that have an active plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := app.Profiles.ListIDsWithPlan(context.Background())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d user(s)\n", len(ids))
			return nil
		},
	}
}

func newRemindCmd(app *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Fire one reminder fan-out immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			k := domain.ReminderKind(kind)
			switch k {
			case domain.ReminderMorning, domain.ReminderAfternoon, domain.ReminderEvening:
			default:
				return fmt.Errorf("invalid kind %q (use morning, afternoon or evening)", kind)
			}
			app.Scheduler.Fire(cmd.Context(), k)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "morning", "Reminder kind: morning, afternoon or evening")

	return cmd
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/adilzhanb/zhospar/internal/domain"
	"github.com/adilzhanb/zhospar/internal/service"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show a user's overall plan progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Progress.Stats(context.Background(), userID)
			if err != nil {
				if errors.Is(err, service.ErrNoPlan) {
					fmt.Fprintln(cmd.OutOrStdout(), "No plan yet. Create one with: zhospar plan")
					return nil
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Day %d of %d (%.1f%%)\n", stats.DayIndex, domain.PlanLengthDays, stats.ProgressPercent)
			fmt.Fprintf(out, "Tasks completed: %d across %d active days\n", stats.TotalCompleted, stats.DaysActive)
			fmt.Fprintf(out, "Streak: %d (best %d)\n", stats.CurrentStreak, stats.BestStreak)
			fmt.Fprintf(out, "Last 7 days: %.0f%% completed\n", stats.RecentCompletionRate)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User identifier")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newWeekCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show a user's trailing 7-day summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Progress.WeeklySummary(context.Background(), userID)
			if err != nil {
				if errors.Is(err, service.ErrNoPlan) {
					fmt.Fprintln(cmd.OutOrStdout(), "No plan yet. Create one with: zhospar plan")
					return nil
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Week %s .. %s\n", summary.WeekStart, summary.WeekEnd)
			for _, day := range summary.Entries {
				fmt.Fprintf(out, "  %s %-9s %d/%d (%.0f%%)\n",
					day.Date, day.Weekday, day.Completed, day.Total, day.Rate)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User identifier")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

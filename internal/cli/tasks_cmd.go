package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/adilzhanb/zhospar/internal/service"
	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show today's tasks for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Tasks.GetDailyTasks(context.Background(), userID)
			if err != nil {
				if errors.Is(err, service.ErrNoPlan) {
					fmt.Fprintln(cmd.OutOrStdout(), "No plan yet. Create one with: zhospar plan")
					return nil
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Day %d (year %d) %s\n", resp.DayIndex, resp.Year, resp.Date)
			for _, e := range resp.Entries {
				mark := " "
				if e.Completed {
					mark = "x"
				}
				fmt.Fprintf(out, "  [%s] %d. %s\n", mark, e.Seq, e.Text)
			}
			fmt.Fprintf(out, "Completed %d of %d\n", resp.CompletedCount, resp.TotalCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User identifier")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	var (
		userID string
		seq    int
	)

	cmd := &cobra.Command{
		Use:   "done",
		Short: "Mark one of today's tasks complete",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Tasks.MarkComplete(context.Background(), userID, seq)
			if err != nil {
				if errors.Is(err, service.ErrNoUser) {
					fmt.Fprintln(cmd.OutOrStdout(), "Unknown user. Create a plan first: zhospar plan")
					return nil
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Task %d marked complete for %s (streak %d, best %d)\n",
				resp.Seq, resp.Date, resp.CurrentStreak, resp.BestStreak)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User identifier")
	cmd.Flags().IntVar(&seq, "seq", 0, "Task sequence number (1-based)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("seq")

	return cmd
}

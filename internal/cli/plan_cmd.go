package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/adilzhanb/zhospar/internal/domain"
	"github.com/adilzhanb/zhospar/internal/message"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		userID string
		name   string
		goal   string
		lang   string
		formal bool
		emoji  bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and store a five-year plan for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			style := domain.Style{
				Language:   message.ResolveLanguage(lang),
				Formality:  domain.FormalityCasual,
				EmojiUsage: domain.EmojiLow,
			}
			if formal {
				style.Formality = domain.FormalityFormal
			}
			if emoji {
				style.EmojiUsage = domain.EmojiHigh
			}

			plan, err := app.Plans.Create(context.Background(), userID, name, goal, style)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Plan %s created for %s\n\n", plan.ID, userID)
			for _, y := range plan.Years {
				fmt.Fprintf(out, "Year %d: %s\n", y.Year, y.Title)
				if y.Description != "" {
					fmt.Fprintf(out, "  %s\n", y.Description)
				}
				for _, m := range y.Milestones {
					fmt.Fprintf(out, "  - %s\n", m)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User identifier")
	cmd.Flags().StringVar(&name, "name", "", "User display name")
	cmd.Flags().StringVar(&goal, "goal", "", "The user's five-year goal")
	cmd.Flags().StringVar(&lang, "lang", "ru", "Language tag (ru or kk)")
	cmd.Flags().BoolVar(&formal, "formal", false, "Use the formal register")
	cmd.Flags().BoolVar(&emoji, "emoji", false, "Use heavy emoji decoration")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("goal")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(goal) == "" {
			return fmt.Errorf("--goal must not be empty")
		}
		return nil
	}

	return cmd
}

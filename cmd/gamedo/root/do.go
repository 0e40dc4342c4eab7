package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamedo/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteTask(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s +%d XP\n", ui.Good.Render(ui.IconDone), ui.Good.Render("Done!"), res.XPGained)
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s You reached level %d!\n", ui.IconSparkle, ui.BadgeLevelUp, res.NewLevel)
			}
			for _, a := range res.NewAchievements {
				fmt.Fprintf(out, "%s %s %s  %s %s\n",
					ui.IconTrophy, a.Icon, ui.Gold.Render(a.Title),
					ui.RarityText(a.Rarity),
					ui.Muted.Render(fmt.Sprintf("+%d XP", a.Points)),
				)
			}
			return nil
		},
	}

	return cmd
}

package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gamedo/internal/game"
	"gamedo/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	var showLocked bool

	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "Show unlocked (and locked) achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Progress(ctx)
			if err != nil {
				return err
			}

			unlockedAt := map[string]string{}
			for _, a := range p.Achievements {
				unlockedAt[a.ID] = a.UnlockedAt.Format("2006-01-02")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements (%d/%d)", len(p.Achievements), len(game.Catalog()))))

			for _, def := range game.Catalog() {
				when, earned := unlockedAt[def.ID]
				if !earned && !showLocked {
					continue
				}
				if earned {
					fmt.Fprintf(out, "%s %s  %s  %s %s\n",
						def.Icon, ui.Gold.Render(def.Title), ui.RarityText(string(def.Rarity)),
						ui.Muted.Render(def.Description), ui.Muted.Render("— "+when))
				} else {
					fmt.Fprintf(out, "🔒 %s  %s  %s\n",
						ui.Muted.Render(def.Title), ui.RarityText(string(def.Rarity)), ui.Muted.Render(def.Description))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showLocked, "all", "a", false, "Include locked achievements")

	return cmd
}

package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gamedo/internal/game"
	"gamedo/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streak, and unlocks",
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
			tasks, err := svc.ListTasks(ctx)
			if err != nil {
				return err
			}

			level := game.LevelForXP(p.TotalXP)
			floor := game.XPThresholdForLevel(level)
			next := game.XPThresholdForLevel(level + 1)

			avatar := ""
			if a, ok := game.AvatarByID(p.Avatar); ok {
				avatar = a.Emoji + " "
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, avatar+"Player Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", level))
			fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("%d (next level at %d, %d to go)", p.TotalXP, next, game.XPToNextLevel(p.TotalXP))))
			fmt.Fprintf(out, "%s %s\n", ui.Key.Render("Progress:"), ui.XPBar(p.TotalXP-floor, next-floor, 24))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconFlame+" Streak"))
			fmt.Fprintln(out, ui.LabelValue("Current", fmt.Sprintf("%d days", p.CurrentStreak)))
			fmt.Fprintln(out, ui.LabelValue("Longest", fmt.Sprintf("%d days", p.LongestStreak)))
			fmt.Fprintln(out, "")

			earned := len(p.Achievements)
			total := len(game.Catalog())
			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			fmt.Fprintln(out, ui.LabelValue("Unlocked", fmt.Sprintf("%d / %d", earned, total)))
			fmt.Fprintln(out, "")

			theme, _ := game.ThemeByID(p.Theme)
			fmt.Fprintln(out, ui.H2.Render(ui.IconPalette+" Cosmetics"))
			fmt.Fprintln(out, ui.LabelValue("Theme", theme.Name))
			fmt.Fprintln(out, ui.LabelValue("Avatars unlocked", fmt.Sprintf("%d / %d", len(game.AvailableAvatars(level)), len(game.Avatars()))))

			unlockedThemes := 0
			for _, t := range game.Themes() {
				if t.Requirement.MetBy(tasks, *p) {
					unlockedThemes++
				}
			}
			fmt.Fprintln(out, ui.LabelValue("Themes unlocked", fmt.Sprintf("%d / %d", unlockedThemes, len(game.Themes()))))
			return nil
		},
	}

	return cmd
}

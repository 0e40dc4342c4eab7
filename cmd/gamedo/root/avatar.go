package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamedo/internal/game"
	"gamedo/internal/ui"
)

func newAvatarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avatar",
		Short: "List or switch avatars",
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
			level := game.LevelForXP(p.TotalXP)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Avatars"))
			for _, a := range game.Avatars() {
				marker := "  "
				if a.ID == p.Avatar {
					marker = ui.Good.Render("▶ ")
				}
				if level >= a.UnlockLevel {
					fmt.Fprintf(out, "%s%s %s %s\n", marker, a.Emoji, ui.Key.Render(a.Name), ui.Muted.Render("(id: "+a.ID+")"))
				} else {
					fmt.Fprintf(out, "%s🔒 %s %s\n", marker, ui.Muted.Render(a.Name), ui.Muted.Render(fmt.Sprintf("unlocks at level %d", a.UnlockLevel)))
				}
			}
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <id>",
		Short: "Switch the active avatar",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("avatar id is required")
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

			if err := svc.SetAvatar(ctx, args[0]); err != nil {
				return err
			}
			a, _ := game.AvatarByID(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s Avatar set to %s %s.\n", ui.IconSparkle, a.Emoji, ui.Good.Render(a.Name))
			return nil
		},
	}

	cmd.AddCommand(set)
	return cmd
}

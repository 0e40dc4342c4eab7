package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamedo/internal/game"
	"gamedo/internal/ui"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List or switch color themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listThemes(cmd)
		},
	}

	set := &cobra.Command{
		Use:   "set <id>",
		Short: "Switch the active theme",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("theme id is required")
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

			if err := svc.SetTheme(ctx, args[0]); err != nil {
				return err
			}
			theme, _ := game.ThemeByID(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s Theme set to %s.\n", ui.IconPalette, ui.Good.Render(theme.Name))
			return nil
		},
	}

	cmd.AddCommand(set)
	return cmd
}

func listThemes(cmd *cobra.Command) error {
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

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconPalette, "Themes"))
	for _, t := range game.Themes() {
		marker := "  "
		if t.ID == p.Theme {
			marker = ui.Good.Render("▶ ")
		}
		if t.Requirement.MetBy(tasks, *p) {
			fmt.Fprintf(out, "%s%s  %s\n", marker, ui.Key.Render(t.Name), ui.Muted.Render(t.Description))
		} else {
			fmt.Fprintf(out, "%s🔒 %s  %s\n", marker, ui.Muted.Render(t.Name), ui.Muted.Render(t.Requirement.String()))
		}
		fmt.Fprintln(out, ui.Muted.Render("   id: "+t.ID))
	}
	return nil
}

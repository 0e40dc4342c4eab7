package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gamedo/internal/ui"
)

const Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:           "gamedo",
	Short:         "GameDo — gamified offline task tracker",
	Long:          "GameDo is a local-first task tracker with RPG progression: XP, levels, daily streaks, achievements, and unlockable themes and avatars.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newDoCmd(),
		newUndoCmd(),
		newRmCmd(),
		newStatusCmd(),
		newAchievementsCmd(),
		newStreakCmd(),
		newStatsCmd(),
		newThemeCmd(),
		newAvatarCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

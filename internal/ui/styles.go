package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GameDo CLI/TUI styling. Kept intentionally small: reusable styles and a few
// emojis. The primary/accent colors follow the active cosmetic theme.

const (
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconFlame   = "🔥"
	IconTarget  = "🎯"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconPalette = "🎨"
	IconChart   = "📊"
	IconPackage = "📦"
)

var (
	cPrimary = lipgloss.Color("161") // rose (default theme)
	cAccent  = lipgloss.Color("205")
	cGood    = lipgloss.Color("42")
	cWarn    = lipgloss.Color("214")
	cBad     = lipgloss.Color("196")
	cMuted   = lipgloss.Color("244")
	cGold    = lipgloss.Color("220")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

// ApplyTheme recolors the primary/accent styles. Called once at startup with
// the colors of the player's active theme.
func ApplyTheme(primary, accent string) {
	cPrimary = lipgloss.Color(primary)
	cAccent = lipgloss.Color(accent)
	Title = Title.Foreground(cAccent)
	H2 = H2.Foreground(cPrimary)
	Key = Key.Foreground(cPrimary)
	SelectedRow = SelectedRow.Background(cPrimary)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// PriorityText renders a priority with its conventional color.
func PriorityText(priority string) string {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case "high":
		return Bad.Render("high")
	case "medium":
		return Warn.Render("medium")
	case "low":
		return Good.Render("low")
	default:
		return Muted.Render(priority)
	}
}

// RarityText renders an achievement rarity.
func RarityText(rarity string) string {
	switch strings.ToLower(strings.TrimSpace(rarity)) {
	case "legendary":
		return Gold.Render("legendary")
	case "epic":
		return Title.Render("epic")
	case "rare":
		return H2.Render("rare")
	default:
		return Muted.Render("common")
	}
}

// XPBar renders a simple progress bar of the XP earned inside the current
// level band.
func XPBar(into, span, width int) string {
	if width < 4 {
		width = 4
	}
	if span <= 0 {
		return Good.Render(strings.Repeat("█", width))
	}
	filled := into * width / span
	if filled > width {
		filled = width
	}
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}

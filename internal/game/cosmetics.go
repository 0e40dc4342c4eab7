package game

import (
	"fmt"

	"gamedo/internal/storage"
)

// RequirementKind selects how an UnlockRequirement is compared. The kinds and
// their comparison semantics are shared with the achievement catalog so that
// "streak 7" means the same thing everywhere.
type RequirementKind string

const (
	RequireLevel       RequirementKind = "level"
	RequireStreak      RequirementKind = "streak"
	RequireTasks       RequirementKind = "tasks"
	RequireAchievement RequirementKind = "achievement"
)

type UnlockRequirement struct {
	Kind          RequirementKind
	Threshold     int
	AchievementID string
}

// MetBy reports whether the requirement is satisfied. A nil requirement is
// always unlocked.
func (r *UnlockRequirement) MetBy(tasks []storage.Task, p storage.Progress) bool {
	if r == nil {
		return true
	}
	switch r.Kind {
	case RequireLevel:
		return LevelForXP(p.TotalXP) >= r.Threshold
	case RequireStreak:
		return p.CurrentStreak >= r.Threshold
	case RequireTasks:
		return completedCount(tasks) >= r.Threshold
	case RequireAchievement:
		for i := range p.Achievements {
			if p.Achievements[i].ID == r.AchievementID {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (r *UnlockRequirement) String() string {
	if r == nil {
		return "always available"
	}
	switch r.Kind {
	case RequireLevel:
		return fmt.Sprintf("reach level %d", r.Threshold)
	case RequireStreak:
		return fmt.Sprintf("hold a %d-day streak", r.Threshold)
	case RequireTasks:
		return fmt.Sprintf("complete %d tasks", r.Threshold)
	case RequireAchievement:
		return fmt.Sprintf("unlock the %q achievement", r.AchievementID)
	default:
		return "locked"
	}
}

// Theme is a cosmetic color scheme. Primary/Accent are ANSI color codes fed to
// lipgloss when the theme is active.
type Theme struct {
	ID          string
	Name        string
	Description string
	Primary     string
	Accent      string
	Requirement *UnlockRequirement
}

// Themes returns the static theme catalog.
func Themes() []Theme {
	return []Theme{
		{
			ID: "default", Name: "Rose Garden", Description: "The classic GameDo theme with vibrant rose colors",
			Primary: "161", Accent: "205",
		},
		{
			ID: "ocean", Name: "Ocean Breeze", Description: "Cool blues and teals for a calming experience",
			Primary: "31", Accent: "44",
			Requirement: &UnlockRequirement{Kind: RequireLevel, Threshold: 5},
		},
		{
			ID: "forest", Name: "Forest Path", Description: "Natural greens for productivity in harmony with nature",
			Primary: "29", Accent: "42",
			Requirement: &UnlockRequirement{Kind: RequireStreak, Threshold: 7},
		},
		{
			ID: "sunset", Name: "Sunset Glow", Description: "Warm oranges and yellows for energetic productivity",
			Primary: "166", Accent: "214",
			Requirement: &UnlockRequirement{Kind: RequireTasks, Threshold: 50},
		},
		{
			ID: "midnight", Name: "Midnight Purple", Description: "Deep purples for the night owls",
			Primary: "93", Accent: "135",
			Requirement: &UnlockRequirement{Kind: RequireAchievement, AchievementID: "night-owl"},
		},
		{
			ID: "champion", Name: "Champion Gold", Description: "Luxurious gold theme for true achievers",
			Primary: "172", Accent: "220",
			Requirement: &UnlockRequirement{Kind: RequireLevel, Threshold: 10},
		},
	}
}

func ThemeByID(id string) (Theme, bool) {
	for _, t := range Themes() {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// Avatar is a cosmetic profile emoji gated purely by level.
type Avatar struct {
	ID          string
	Emoji       string
	Name        string
	UnlockLevel int
}

func Avatars() []Avatar {
	return []Avatar{
		{ID: "gamer", Emoji: "🎮", Name: "Gamer", UnlockLevel: 1},
		{ID: "rocket", Emoji: "🚀", Name: "Rocket", UnlockLevel: 3},
		{ID: "star", Emoji: "⭐", Name: "Star", UnlockLevel: 5},
		{ID: "crown", Emoji: "👑", Name: "Crown", UnlockLevel: 7},
		{ID: "diamond", Emoji: "💎", Name: "Diamond", UnlockLevel: 10},
		{ID: "trophy", Emoji: "🏆", Name: "Trophy", UnlockLevel: 15},
		{ID: "fire", Emoji: "🔥", Name: "Fire", UnlockLevel: 20},
		{ID: "lightning", Emoji: "⚡", Name: "Lightning", UnlockLevel: 25},
	}
}

func AvatarByID(id string) (Avatar, bool) {
	for _, a := range Avatars() {
		if a.ID == id {
			return a, true
		}
	}
	return Avatar{}, false
}

// AvailableAvatars returns the avatars unlocked at the given level.
func AvailableAvatars(level int) []Avatar {
	var out []Avatar
	for _, a := range Avatars() {
		if level >= a.UnlockLevel {
			out = append(out, a)
		}
	}
	return out
}

package game

import (
	"math"

	"gamedo/internal/storage"
)

// XPPerLevelBase is the constant of the leveling curve:
// XPThresholdForLevel(L) = (L-1)^2 * XPPerLevelBase.
const XPPerLevelBase = 100

// XPForTask computes the XP awarded for completing a task:
// floor(points * priority multiplier). Priorities the boundary failed to
// reject map to multiplier 0, never a negative award.
func XPForTask(t storage.Task) int {
	mult := Priority(t.Priority).Multiplier()
	return int(math.Floor(float64(t.Points) * mult))
}

// XPThresholdForLevel returns the total XP required to reach the given level.
// Level 1 (and below) requires 0 XP.
func XPThresholdForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * XPPerLevelBase
}

// LevelForXP returns the highest level L such that totalXP >= XPThresholdForLevel(L).
// It is monotonically non-decreasing in XP and LevelForXP(0) == 1.
func LevelForXP(totalXP int) int {
	if totalXP <= 0 {
		return 1
	}
	level := int(math.Sqrt(float64(totalXP)/XPPerLevelBase)) + 1

	// Settle float rounding against the integer thresholds.
	for XPThresholdForLevel(level+1) <= totalXP {
		level++
	}
	for level > 1 && XPThresholdForLevel(level) > totalXP {
		level--
	}
	return level
}

// XPToNextLevel returns how much XP is still missing to reach the next level.
func XPToNextLevel(totalXP int) int {
	next := XPThresholdForLevel(LevelForXP(totalXP) + 1)
	if d := next - totalXP; d > 0 {
		return d
	}
	return 0
}

package game

import (
	"time"

	"gamedo/internal/storage"
)

// TransitionResult describes what a single task-completion transition did.
// It is plain data for presentation consumers; the engine itself never
// triggers output.
type TransitionResult struct {
	XPGained        int
	LevelUp         bool
	NewLevel        int
	NewAchievements []storage.AchievementRecord
}

// ApplyTaskCompletion folds one false→true completion transition into a new
// progress snapshot. tasks must already contain the completed task with its
// completion timestamp set. The input progress is not mutated.
//
// Order matters: task XP first, then streak (so streak predicates see the
// post-update value), then achievements, then achievement bonus XP, then the
// final level. LevelUp is measured against the pre-transition level, which is
// recomputed from stored XP rather than trusted.
func ApplyTaskCompletion(tasks []storage.Task, completed storage.Task, progress storage.Progress, now time.Time) (storage.Progress, TransitionResult) {
	levelBefore := LevelForXP(progress.TotalXP)

	next := progress
	next.Achievements = append([]storage.AchievementRecord(nil), progress.Achievements...)

	xpGained := XPForTask(completed)
	next.TotalXP += xpGained
	next.Level = LevelForXP(next.TotalXP)

	streak := ComputeStreak(tasks, progress.LastCompletionDate, now)
	next.CurrentStreak = streak.Current
	next.LongestStreak = streak.Longest
	if progress.LongestStreak > next.LongestStreak {
		// Longest only ever grows, even if history was trimmed.
		next.LongestStreak = progress.LongestStreak
	}
	next.LastCompletionDate = DayString(now)

	newAchievements := CheckForNewAchievements(tasks, next, next.Achievements, now)
	if len(newAchievements) > 0 {
		for i := range newAchievements {
			next.TotalXP += newAchievements[i].Points
		}
		next.Achievements = append(next.Achievements, newAchievements...)
		next.Level = LevelForXP(next.TotalXP)
	}

	return next, TransitionResult{
		XPGained:        xpGained,
		LevelUp:         next.Level > levelBefore,
		NewLevel:        next.Level,
		NewAchievements: newAchievements,
	}
}

// RevertTaskCompletion handles the true→false toggle. XP and achievements are
// not clawed back; only the streak counters are recomputed with the reverted
// task already excluded from the completed set in tasks.
func RevertTaskCompletion(tasks []storage.Task, progress storage.Progress, now time.Time) storage.Progress {
	next := progress
	next.Level = LevelForXP(next.TotalXP)

	streak := ComputeStreak(tasks, progress.LastCompletionDate, now)
	next.CurrentStreak = streak.Current
	if streak.Longest > progress.LongestStreak {
		next.LongestStreak = streak.Longest
	}
	return next
}

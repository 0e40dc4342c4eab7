package game

import (
	"math"
	"sort"
	"time"

	"gamedo/internal/storage"
)

// StreakState is derived on demand from completion timestamps; it is never
// stored beyond the two counters and the last-completion-day marker.
type StreakState struct {
	Current int
	Longest int
}

// DayString is the canonical calendar-day form used for lastCompletionDate
// and day equality.
func DayString(t time.Time) string {
	return t.Format("2006-01-02")
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dayGap returns the calendar-day distance between two start-of-day values.
// Rounding absorbs DST transitions.
func dayGap(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// ComputeStreak derives the current and longest daily-completion streak from
// the task history. lastCompletionDate disambiguates the grace period: a
// streak whose latest day is yesterday is still alive until the end of today.
//
// now is injected by the caller; all day math happens in its location.
func ComputeStreak(tasks []storage.Task, lastCompletionDate string, now time.Time) StreakState {
	loc := now.Location()

	seen := map[string]struct{}{}
	var days []time.Time
	for i := range tasks {
		t := &tasks[i]
		if !t.Completed || t.CompletedAt == nil {
			continue
		}
		day := startOfDay(t.CompletedAt.In(loc))
		key := DayString(day)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, day)
	}
	if len(days) == 0 {
		return StreakState{}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if dayGap(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// run now holds the length of the most recent run of consecutive days.
	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)
	latest := days[len(days)-1]

	current := 0
	switch {
	case latest.Equal(today):
		current = run
	case latest.Equal(yesterday) && lastCompletionDate == DayString(yesterday):
		// Grace period: nothing completed yet today.
		current = run
	}

	if current > longest {
		longest = current
	}
	return StreakState{Current: current, Longest: longest}
}

// Streak milestones pay a one-time XP bonus at exact streak lengths. They are
// display-level rewards and are not folded into ApplyTaskCompletion.
var streakMilestones = []struct {
	Days   int
	Reward int
}{
	{3, 25},
	{7, 50},
	{14, 100},
	{30, 200},
	{60, 400},
	{100, 1000},
}

// StreakMilestoneReward returns the bonus for exactly the given streak length,
// or 0 when the length is not a milestone.
func StreakMilestoneReward(days int) int {
	for _, m := range streakMilestones {
		if m.Days == days {
			return m.Reward
		}
	}
	return 0
}

// NextStreakMilestone returns the first milestone strictly above the given
// streak length. ok is false past the last milestone.
func NextStreakMilestone(days int) (milestone int, reward int, ok bool) {
	for _, m := range streakMilestones {
		if m.Days > days {
			return m.Days, m.Reward, true
		}
	}
	return 0, 0, false
}

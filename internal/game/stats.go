package game

import (
	"sort"
	"time"

	"gamedo/internal/storage"
)

// Stats is a derived summary for the stats dashboard.
type Stats struct {
	TasksCompleted    int
	TotalTasks        int
	CompletionRate    float64 // 0..1
	AveragePerDay     float64 // completions per day since the first completion
	MostProductiveDay string  // weekday name, empty when nothing completed
	CategoriesUsed    []string
}

func ComputeStats(tasks []storage.Task, now time.Time) Stats {
	s := Stats{TotalTasks: len(tasks)}

	categories := map[string]struct{}{}
	byWeekday := map[time.Weekday]int{}
	var first time.Time

	for i := range tasks {
		t := &tasks[i]
		if t.Category != "" {
			categories[t.Category] = struct{}{}
		}
		if !t.Completed || t.CompletedAt == nil {
			continue
		}
		s.TasksCompleted++
		local := t.CompletedAt.In(now.Location())
		byWeekday[local.Weekday()]++
		if first.IsZero() || local.Before(first) {
			first = local
		}
	}

	if s.TotalTasks > 0 {
		s.CompletionRate = float64(s.TasksCompleted) / float64(s.TotalTasks)
	}
	if s.TasksCompleted > 0 {
		days := dayGap(startOfDay(first), startOfDay(now)) + 1
		if days < 1 {
			days = 1
		}
		s.AveragePerDay = float64(s.TasksCompleted) / float64(days)

		best := time.Sunday
		bestCount := -1
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if byWeekday[wd] > bestCount {
				best, bestCount = wd, byWeekday[wd]
			}
		}
		s.MostProductiveDay = best.String()
	}

	for c := range categories {
		s.CategoriesUsed = append(s.CategoriesUsed, c)
	}
	sort.Strings(s.CategoriesUsed)
	return s
}

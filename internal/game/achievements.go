package game

import (
	"time"

	"gamedo/internal/storage"
)

// AchievementDefinition is a static catalog entry. Condition must be pure and
// re-evaluable; once the id is in the unlocked set the evaluator never calls
// it again for unlocking purposes.
type AchievementDefinition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Points      int
	Category    string
	Rarity      Rarity
	Condition   func(tasks []storage.Task, p storage.Progress, now time.Time) bool
}

func completedCount(tasks []storage.Task) int {
	n := 0
	for i := range tasks {
		if tasks[i].Completed {
			n++
		}
	}
	return n
}

func taskCountCondition(threshold int) func([]storage.Task, storage.Progress, time.Time) bool {
	return func(tasks []storage.Task, _ storage.Progress, _ time.Time) bool {
		return completedCount(tasks) >= threshold
	}
}

func streakCondition(days int) func([]storage.Task, storage.Progress, time.Time) bool {
	return func(_ []storage.Task, p storage.Progress, _ time.Time) bool {
		return p.CurrentStreak >= days
	}
}

func priorityCountCondition(priority Priority, threshold int) func([]storage.Task, storage.Progress, time.Time) bool {
	return func(tasks []storage.Task, _ storage.Progress, _ time.Time) bool {
		n := 0
		for i := range tasks {
			if tasks[i].Completed && Priority(tasks[i].Priority) == priority {
				n++
			}
		}
		return n >= threshold
	}
}

func categoryCountCondition(category string, threshold int) func([]storage.Task, storage.Progress, time.Time) bool {
	return func(tasks []storage.Task, _ storage.Progress, _ time.Time) bool {
		n := 0
		for i := range tasks {
			if tasks[i].Completed && tasks[i].Category == category {
				n++
			}
		}
		return n >= threshold
	}
}

// hourCondition matches any completion whose local hour h satisfies
// from <= h < to.
func hourCondition(from, to int) func([]storage.Task, storage.Progress, time.Time) bool {
	return func(tasks []storage.Task, _ storage.Progress, now time.Time) bool {
		for i := range tasks {
			t := &tasks[i]
			if !t.Completed || t.CompletedAt == nil {
				continue
			}
			h := t.CompletedAt.In(now.Location()).Hour()
			if h >= from && h < to {
				return true
			}
		}
		return false
	}
}

// Catalog returns the achievement definitions in declaration order. The order
// is stable so that multi-unlock transitions are deterministic.
func Catalog() []AchievementDefinition {
	return []AchievementDefinition{
		{
			ID: "first-task", Title: "Getting Started", Description: "Complete your first task",
			Icon: "🎯", Points: 10, Category: "Getting Started", Rarity: RarityCommon,
			Condition: taskCountCondition(1),
		},
		{
			ID: "first-day", Title: "Day One", Description: "Complete your first day of tasks",
			Icon: "🌅", Points: 15, Category: "Getting Started", Rarity: RarityCommon,
			Condition: func(tasks []storage.Task, _ storage.Progress, now time.Time) bool {
				today := DayString(startOfDay(now))
				for i := range tasks {
					t := &tasks[i]
					if t.Completed && t.CompletedAt != nil && DayString(t.CompletedAt.In(now.Location())) == today {
						return true
					}
				}
				return false
			},
		},

		{
			ID: "streak-3", Title: "3-Day Warrior", Description: "Complete tasks for 3 days in a row",
			Icon: "🔥", Points: 25, Category: "Streaks", Rarity: RarityCommon,
			Condition: streakCondition(3),
		},
		{
			ID: "streak-7", Title: "Week Champion", Description: "Complete tasks for 7 days in a row",
			Icon: "👑", Points: 50, Category: "Streaks", Rarity: RarityRare,
			Condition: streakCondition(7),
		},
		{
			ID: "streak-30", Title: "Monthly Master", Description: "Complete tasks for 30 days in a row",
			Icon: "💎", Points: 200, Category: "Streaks", Rarity: RarityEpic,
			Condition: streakCondition(30),
		},
		{
			ID: "streak-100", Title: "Century Legend", Description: "Complete tasks for 100 days in a row",
			Icon: "🌟", Points: 1000, Category: "Streaks", Rarity: RarityLegendary,
			Condition: streakCondition(100),
		},

		{
			ID: "task-10", Title: "Getting Things Done", Description: "Complete 10 tasks",
			Icon: "✅", Points: 30, Category: "Productivity", Rarity: RarityCommon,
			Condition: taskCountCondition(10),
		},
		{
			ID: "task-50", Title: "Task Master", Description: "Complete 50 tasks",
			Icon: "⭐", Points: 100, Category: "Productivity", Rarity: RarityRare,
			Condition: taskCountCondition(50),
		},
		{
			ID: "task-100", Title: "Productivity Pro", Description: "Complete 100 tasks",
			Icon: "🏆", Points: 250, Category: "Productivity", Rarity: RarityEpic,
			Condition: taskCountCondition(100),
		},
		{
			ID: "task-500", Title: "Task Titan", Description: "Complete 500 tasks",
			Icon: "🚀", Points: 1000, Category: "Productivity", Rarity: RarityLegendary,
			Condition: taskCountCondition(500),
		},

		{
			ID: "high-priority-5", Title: "Priority Focused", Description: "Complete 5 high-priority tasks",
			Icon: "🎯", Points: 25, Category: "Priority", Rarity: RarityCommon,
			Condition: priorityCountCondition(PriorityHigh, 5),
		},
		{
			ID: "high-priority-25", Title: "Priority Pro", Description: "Complete 25 high-priority tasks",
			Icon: "🚀", Points: 75, Category: "Priority", Rarity: RarityRare,
			Condition: priorityCountCondition(PriorityHigh, 25),
		},

		{
			ID: "work-specialist", Title: "Work Specialist", Description: "Complete 20 work tasks",
			Icon: "💼", Points: 50, Category: "Categories", Rarity: RarityRare,
			Condition: categoryCountCondition("Work", 20),
		},
		{
			ID: "health-guru", Title: "Health Guru", Description: "Complete 15 health tasks",
			Icon: "💪", Points: 50, Category: "Categories", Rarity: RarityRare,
			Condition: categoryCountCondition("Health", 15),
		},
		{
			ID: "learning-enthusiast", Title: "Learning Enthusiast", Description: "Complete 25 learning tasks",
			Icon: "📚", Points: 75, Category: "Categories", Rarity: RarityRare,
			Condition: categoryCountCondition("Learning", 25),
		},

		{
			ID: "early-bird", Title: "Early Bird", Description: "Complete a task before 8 AM",
			Icon: "🌅", Points: 20, Category: "Special", Rarity: RarityCommon,
			Condition: hourCondition(0, 8),
		},
		{
			ID: "night-owl", Title: "Night Owl", Description: "Complete a task after 10 PM",
			Icon: "🦉", Points: 20, Category: "Special", Rarity: RarityCommon,
			Condition: hourCondition(22, 24),
		},
		{
			ID: "perfectionist", Title: "Perfectionist", Description: "Complete all tasks in a day",
			Icon: "💯", Points: 100, Category: "Special", Rarity: RarityEpic,
			// Evaluated against tasks created today; intentionally flips back
			// to false when a new open task is added the same day.
			Condition: func(tasks []storage.Task, _ storage.Progress, now time.Time) bool {
				today := DayString(startOfDay(now))
				total := 0
				for i := range tasks {
					t := &tasks[i]
					if DayString(t.CreatedAt.In(now.Location())) != today {
						continue
					}
					total++
					if !t.Completed {
						return false
					}
				}
				return total > 0
			},
		},
	}
}

// CheckForNewAchievements evaluates the catalog and returns records for every
// definition that is satisfied and not yet unlocked, in catalog order. Ids
// already present in unlocked are skipped, which is what makes re-evaluation
// idempotent.
func CheckForNewAchievements(tasks []storage.Task, p storage.Progress, unlocked []storage.AchievementRecord, now time.Time) []storage.AchievementRecord {
	have := make(map[string]struct{}, len(unlocked))
	for i := range unlocked {
		have[unlocked[i].ID] = struct{}{}
	}

	var out []storage.AchievementRecord
	for _, def := range Catalog() {
		if _, ok := have[def.ID]; ok {
			continue
		}
		if !def.Condition(tasks, p, now) {
			continue
		}
		out = append(out, storage.AchievementRecord{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			Points:      def.Points,
			Category:    def.Category,
			Rarity:      string(def.Rarity),
			UnlockedAt:  now,
		})
	}
	return out
}

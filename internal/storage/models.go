package storage

import "time"

const MainProgressKey = "main_user"

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	Points      int        `json:"points"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Progress is the single persisted progression record. Achievements are stored
// in their own table but travel with the record; the slice is ordered by
// unlock time (insertion order).
type Progress struct {
	Key                string              `json:"-"`
	Level              int                 `json:"level"`
	TotalXP            int                 `json:"totalXP"`
	CurrentStreak      int                 `json:"currentStreak"`
	LongestStreak      int                 `json:"longestStreak"`
	LastCompletionDate string              `json:"lastCompletionDate,omitempty"`
	Achievements       []AchievementRecord `json:"achievements"`
	Theme              string              `json:"theme"`
	Avatar             string              `json:"avatar"`
}

// AchievementRecord is an unlocked achievement. The display fields are a
// snapshot of the catalog definition at unlock time and never change after.
type AchievementRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Points      int       `json:"points"`
	Category    string    `json:"category"`
	Rarity      string    `json:"rarity"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

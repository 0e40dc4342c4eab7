package game

import (
	"fmt"
	"time"

	"gamedo/internal/storage"
)

// testNow pins "today" to a Saturday noon so hour- and day-based predicates
// are deterministic.
func testNow() time.Time {
	return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
}

func daysAgo(n int) time.Time {
	return testNow().AddDate(0, 0, -n)
}

var taskSeq int

func nextTaskID() string {
	taskSeq++
	return fmt.Sprintf("task-%d", taskSeq)
}

// completedTask builds a completed medium-priority task worth 10 points,
// created the day before it was completed.
func completedTask(at time.Time) storage.Task {
	created := at.AddDate(0, 0, -1)
	return storage.Task{
		ID:          nextTaskID(),
		Title:       "done",
		Priority:    string(PriorityMedium),
		Points:      10,
		Completed:   true,
		CreatedAt:   created,
		CompletedAt: &at,
	}
}

func pendingTask(created time.Time) storage.Task {
	return storage.Task{
		ID:        nextTaskID(),
		Title:     "todo",
		Priority:  string(PriorityMedium),
		Points:    10,
		CreatedAt: created,
	}
}

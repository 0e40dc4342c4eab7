package game

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gamedo/internal/storage"
)

func newTestService(t *testing.T) (context.Context, *Service) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "gamedo.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := NewService(db)
	svc.SetClock(testNow)
	return ctx, svc
}

func TestCreateTaskValidation(t *testing.T) {
	ctx, svc := newTestService(t)

	if _, err := svc.CreateTask(ctx, CreateTaskInput{Title: "   ", Points: 10}); err == nil {
		t.Fatal("blank title accepted")
	}
	if _, err := svc.CreateTask(ctx, CreateTaskInput{Title: "x", Priority: "urgent", Points: 10}); err == nil {
		t.Fatal("unknown priority accepted")
	}
	if _, err := svc.CreateTask(ctx, CreateTaskInput{Title: "x", Points: -1}); err == nil {
		t.Fatal("negative points accepted")
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	ctx, svc := newTestService(t)

	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "  write tests  ", Points: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Title != "write tests" {
		t.Fatalf("title=%q, want trimmed", task.Title)
	}
	if task.Priority != string(PriorityMedium) {
		t.Fatalf("priority=%q, want medium default", task.Priority)
	}
	if task.ID == "" {
		t.Fatal("no id assigned")
	}
	if !task.CreatedAt.Equal(testNow()) {
		t.Fatalf("createdAt=%v, want clock value", task.CreatedAt)
	}
}

func TestCompleteTaskTransition(t *testing.T) {
	ctx, svc := newTestService(t)

	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "ship it", Priority: PriorityHigh, Points: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	result, err := svc.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if result.XPGained != 20 {
		t.Fatalf("xp gained=%d, want 20", result.XPGained)
	}

	// Created and completed today at noon: first-task, first-day and
	// perfectionist all unlock in one transition.
	want := []string{"first-task", "first-day", "perfectionist"}
	ids := unlockedIDs(result.NewAchievements)
	if len(ids) != len(want) {
		t.Fatalf("unlocked %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("unlocked %v, want %v", ids, want)
		}
	}

	// 20 task XP + 125 achievement XP crosses the level 2 threshold.
	if !result.LevelUp || result.NewLevel != 2 {
		t.Fatalf("levelUp=%v newLevel=%d, want true/2", result.LevelUp, result.NewLevel)
	}

	p, err := svc.Progress(ctx)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.TotalXP != 145 {
		t.Fatalf("totalXP=%d, want 145", p.TotalXP)
	}
	if p.Level != 2 {
		t.Fatalf("level=%d, want 2", p.Level)
	}
	if p.CurrentStreak != 1 || p.LongestStreak != 1 {
		t.Fatalf("streak=%d/%d, want 1/1", p.CurrentStreak, p.LongestStreak)
	}
	if p.LastCompletionDate != DayString(testNow()) {
		t.Fatalf("lastCompletionDate=%q, want today", p.LastCompletionDate)
	}
	if len(p.Achievements) != 3 {
		t.Fatalf("persisted %d achievements, want 3", len(p.Achievements))
	}
}

func TestCompleteTaskTwiceFails(t *testing.T) {
	ctx, svc := newTestService(t)

	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "once", Points: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, task.ID); err == nil {
		t.Fatal("second complete succeeded")
	}
}

func TestCompleteTaskUnknownID(t *testing.T) {
	ctx, svc := newTestService(t)
	if _, err := svc.CompleteTask(ctx, "nope"); err == nil {
		t.Fatal("unknown id accepted")
	}
}

func TestUndoKeepsXPAndAchievements(t *testing.T) {
	ctx, svc := newTestService(t)

	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "oops", Priority: PriorityHigh, Points: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := svc.UndoTask(ctx, task.ID); err != nil {
		t.Fatalf("undo: %v", err)
	}

	got, err := svc.TaskRepo().Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Completed || got.CompletedAt != nil {
		t.Fatalf("task still completed: %+v", got)
	}

	p, err := svc.Progress(ctx)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.TotalXP != 145 {
		t.Fatalf("totalXP=%d, want 145 (no clawback)", p.TotalXP)
	}
	if len(p.Achievements) != 3 {
		t.Fatalf("achievements clawed back: %v", unlockedIDs(p.Achievements))
	}
	if p.CurrentStreak != 0 {
		t.Fatalf("current streak=%d, want 0", p.CurrentStreak)
	}
	if p.LongestStreak != 1 {
		t.Fatalf("longest streak=%d, want 1", p.LongestStreak)
	}
}

func TestProgressDecaysLapsedStreak(t *testing.T) {
	ctx, svc := newTestService(t)

	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "today only", Points: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// Next day the streak is still alive (grace period).
	svc.SetClock(func() time.Time { return testNow().AddDate(0, 0, 1) })
	p, err := svc.Progress(ctx)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.CurrentStreak != 1 {
		t.Fatalf("day after: current streak=%d, want 1", p.CurrentStreak)
	}

	// Two quiet days later it has lapsed, but longest survives.
	svc.SetClock(func() time.Time { return testNow().AddDate(0, 0, 2) })
	p, err = svc.Progress(ctx)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.CurrentStreak != 0 {
		t.Fatalf("two days after: current streak=%d, want 0", p.CurrentStreak)
	}
	if p.LongestStreak != 1 {
		t.Fatalf("longest streak=%d, want 1", p.LongestStreak)
	}
}

func TestRecompleteDoesNotDuplicateAchievements(t *testing.T) {
	ctx, svc := newTestService(t)

	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "again", Priority: PriorityHigh, Points: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := svc.UndoTask(ctx, task.ID); err != nil {
		t.Fatalf("undo: %v", err)
	}

	result, err := svc.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("recomplete: %v", err)
	}
	if len(result.NewAchievements) != 0 {
		t.Fatalf("re-unlocked %v", unlockedIDs(result.NewAchievements))
	}

	p, err := svc.Progress(ctx)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.TotalXP != 165 {
		t.Fatalf("totalXP=%d, want 165", p.TotalXP)
	}
	if len(p.Achievements) != 3 {
		t.Fatalf("achievement rows duplicated: %d", len(p.Achievements))
	}
}

func TestSetThemeEnforcesRequirement(t *testing.T) {
	ctx, svc := newTestService(t)

	err := svc.SetTheme(ctx, "ocean")
	var locked LockedError
	if !errors.As(err, &locked) {
		t.Fatalf("err=%v, want LockedError", err)
	}
	if locked.Kind != "theme" || locked.ID != "ocean" {
		t.Fatalf("locked=%+v", locked)
	}

	if err := svc.SetTheme(ctx, "default"); err != nil {
		t.Fatalf("default theme should always unlock: %v", err)
	}
	p, err := svc.Progress(ctx)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.Theme != "default" {
		t.Fatalf("theme=%q, want default", p.Theme)
	}

	if err := svc.SetTheme(ctx, "vaporwave"); err == nil {
		t.Fatal("unknown theme accepted")
	}
}

func TestSetAvatarEnforcesLevel(t *testing.T) {
	ctx, svc := newTestService(t)

	err := svc.SetAvatar(ctx, "rocket")
	var locked LockedError
	if !errors.As(err, &locked) {
		t.Fatalf("err=%v, want LockedError", err)
	}

	if err := svc.SetAvatar(ctx, "gamer"); err != nil {
		t.Fatalf("level 1 avatar: %v", err)
	}

	// Push past level 3 (400 XP) and retry.
	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "big one", Priority: PriorityHigh, Points: 250})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := svc.SetAvatar(ctx, "rocket"); err != nil {
		t.Fatalf("avatar still locked: %v", err)
	}
}

func TestResetAll(t *testing.T) {
	ctx, svc := newTestService(t)

	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "gone soon", Points: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("%d tasks survived reset", len(tasks))
	}

	p, err := svc.Progress(ctx)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.TotalXP != 0 || p.Level != 1 || len(p.Achievements) != 0 {
		t.Fatalf("progress not fresh: %+v", p)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx, svc := newTestService(t)

	done, err := svc.CreateTask(ctx, CreateTaskInput{Title: "exported", Priority: PriorityHigh, Points: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, done.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := svc.CreateTask(ctx, CreateTaskInput{Title: "still open", Points: 5}); err != nil {
		t.Fatalf("create: %v", err)
	}

	path := filepath.Join(t.TempDir(), "backup.json")
	if err := svc.ExportData(ctx, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if err := svc.ImportData(ctx, path); err != nil {
		t.Fatalf("import: %v", err)
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("%d tasks after import, want 2", len(tasks))
	}

	p, err := svc.Progress(ctx)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.TotalXP != 145 {
		t.Fatalf("totalXP=%d, want 145", p.TotalXP)
	}
	if len(p.Achievements) != 3 {
		t.Fatalf("%d achievements after import, want 3", len(p.Achievements))
	}
}

package game

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"gamedo/internal/storage"
)

// Service wires the pure progression functions to SQLite-backed repos. The
// engine itself never touches the database; the Service owns the
// read-modify-write cycle and keeps it single-writer via transactions.
type Service struct {
	db           *sql.DB
	tasks        *storage.TaskRepo
	progress     *storage.ProgressRepo
	achievements *storage.AchievementRepo
	validate     *validator.Validate
	now          func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:           db,
		tasks:        storage.NewTaskRepo(db),
		progress:     storage.NewProgressRepo(db),
		achievements: storage.NewAchievementRepo(db),
		validate:     validator.New(),
		now:          time.Now,
	}
}

// SetClock overrides the time source. Tests use this to pin "today".
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) TaskRepo() *storage.TaskRepo               { return s.tasks }
func (s *Service) ProgressRepo() *storage.ProgressRepo       { return s.progress }
func (s *Service) AchievementRepo() *storage.AchievementRepo { return s.achievements }

// Progress returns the main progress record with its achievements attached.
// Stored counters are repaired on read: a level that disagrees with the XP
// total, and a streak that has lapsed since the last write (the stored value
// only changes on completions, so a quiet day would otherwise never decay it).
func (s *Service) Progress(ctx context.Context) (*storage.Progress, error) {
	p, err := s.progress.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	changed := false
	if computed := LevelForXP(p.TotalXP); p.Level != computed {
		p.Level = computed
		changed = true
	}
	streak := ComputeStreak(tasks, p.LastCompletionDate, s.now())
	if p.CurrentStreak != streak.Current {
		p.CurrentStreak = streak.Current
		changed = true
	}
	if streak.Longest > p.LongestStreak {
		p.LongestStreak = streak.Longest
		changed = true
	}
	if changed {
		if err := s.progress.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	p.Achievements, err = s.achievements.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListTasks(ctx context.Context) ([]storage.Task, error) {
	return s.tasks.ListAll(ctx)
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("task %s not found", id)
	}
	return s.tasks.Delete(ctx, id)
}

// SetTheme switches the active theme, enforcing its unlock requirement.
func (s *Service) SetTheme(ctx context.Context, id string) error {
	theme, ok := ThemeByID(id)
	if !ok {
		return fmt.Errorf("unknown theme %q", id)
	}
	p, err := s.Progress(ctx)
	if err != nil {
		return err
	}
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return err
	}
	if !theme.Requirement.MetBy(tasks, *p) {
		return LockedError{Kind: "theme", ID: id, Requirement: theme.Requirement}
	}
	p.Theme = id
	return s.progress.Update(ctx, p)
}

// SetAvatar switches the active avatar, enforcing its level gate.
func (s *Service) SetAvatar(ctx context.Context, id string) error {
	avatar, ok := AvatarByID(id)
	if !ok {
		return fmt.Errorf("unknown avatar %q", id)
	}
	p, err := s.Progress(ctx)
	if err != nil {
		return err
	}
	if LevelForXP(p.TotalXP) < avatar.UnlockLevel {
		return LockedError{
			Kind: "avatar", ID: id,
			Requirement: &UnlockRequirement{Kind: RequireLevel, Threshold: avatar.UnlockLevel},
		}
	}
	p.Avatar = id
	return s.progress.Update(ctx, p)
}

// ResetAll wipes tasks, achievements, and the progress record.
func (s *Service) ResetAll(ctx context.Context) error {
	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := storage.NewTaskRepo(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := storage.NewAchievementRepo(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return storage.NewProgressRepo(tx).Delete(ctx, storage.MainProgressKey)
	})
}

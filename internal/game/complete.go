package game

import (
	"context"
	"database/sql"
	"fmt"

	"gamedo/internal/storage"
)

// CompleteTask marks a pending task completed and folds the transition into
// the progress record. The whole read-modify-write runs in one transaction so
// concurrent completions cannot drop an increment.
func (s *Service) CompleteTask(ctx context.Context, id string) (*TransitionResult, error) {
	now := s.now()

	var result TransitionResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		tasks := storage.NewTaskRepo(tx)
		progress := storage.NewProgressRepo(tx)
		achievements := storage.NewAchievementRepo(tx)

		t, err := tasks.Get(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("task %s not found", id)
		}
		if t.Completed {
			return fmt.Errorf("task %s is already completed", id)
		}

		p, err := progress.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		p.Achievements, err = achievements.ListAll(ctx)
		if err != nil {
			return err
		}

		if err := tasks.MarkCompleted(ctx, id, now); err != nil {
			return err
		}
		all, err := tasks.ListAll(ctx)
		if err != nil {
			return err
		}
		completed := *t
		completed.Completed = true
		completed.CompletedAt = &now

		next, res := ApplyTaskCompletion(all, completed, *p, now)
		next.Key = p.Key

		if err := progress.Update(ctx, &next); err != nil {
			return err
		}
		for i := range res.NewAchievements {
			if err := achievements.Insert(ctx, &res.NewAchievements[i]); err != nil {
				return err
			}
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UndoTask reverses a completion. XP and achievements stay where they are;
// the streak counters are recomputed without the reverted task.
func (s *Service) UndoTask(ctx context.Context, id string) error {
	now := s.now()

	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		tasks := storage.NewTaskRepo(tx)
		progress := storage.NewProgressRepo(tx)

		t, err := tasks.Get(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("task %s not found", id)
		}
		if !t.Completed {
			return fmt.Errorf("task %s is not completed", id)
		}

		p, err := progress.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}

		if err := tasks.MarkPending(ctx, id); err != nil {
			return err
		}
		all, err := tasks.ListAll(ctx)
		if err != nil {
			return err
		}

		next := RevertTaskCompletion(all, *p, now)
		next.Key = p.Key
		return progress.Update(ctx, &next)
	})
}

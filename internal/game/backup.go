package game

import (
	"context"
	"database/sql"

	"gamedo/internal/archive"
	"gamedo/internal/storage"
)

// ExportData writes the full game state to a JSON archive at path.
func (s *Service) ExportData(ctx context.Context, path string) error {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return err
	}
	p, err := s.Progress(ctx)
	if err != nil {
		return err
	}
	return archive.WriteFile(path, tasks, p, s.now())
}

// ImportData replaces the current game state with the archive at path. The
// swap is transactional: a malformed document leaves the database untouched.
func (s *Service) ImportData(ctx context.Context, path string) error {
	doc, err := archive.ReadFile(path)
	if err != nil {
		return err
	}

	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		tasks := storage.NewTaskRepo(tx)
		progress := storage.NewProgressRepo(tx)
		achievements := storage.NewAchievementRepo(tx)

		if err := tasks.DeleteAll(ctx); err != nil {
			return err
		}
		if err := achievements.DeleteAll(ctx); err != nil {
			return err
		}
		for i := range doc.Tasks {
			if err := tasks.Insert(ctx, &doc.Tasks[i]); err != nil {
				return err
			}
		}

		p, err := progress.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		imported := *doc.Progress
		imported.Key = p.Key
		// Never trust an imported level; recompute from XP.
		imported.Level = LevelForXP(imported.TotalXP)
		if err := progress.Update(ctx, &imported); err != nil {
			return err
		}
		for i := range imported.Achievements {
			if err := achievements.Insert(ctx, &imported.Achievements[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

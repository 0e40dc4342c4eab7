package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			priority TEXT NOT NULL DEFAULT 'medium',
			category TEXT NOT NULL DEFAULT '',
			points INTEGER NOT NULL DEFAULT 10,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			completed_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS progress (
			key TEXT PRIMARY KEY,
			level INTEGER NOT NULL DEFAULT 1,
			total_xp INTEGER NOT NULL DEFAULT 0,
			current_streak INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0,
			last_completion_date TEXT NOT NULL DEFAULT '',
			theme TEXT NOT NULL DEFAULT 'default',
			avatar TEXT NOT NULL DEFAULT 'gamer'
		);`,
		// Position preserves unlock order; timestamps alone can collide when
		// several achievements unlock in one transition.
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			icon TEXT NOT NULL,
			points INTEGER NOT NULL,
			category TEXT NOT NULL,
			rarity TEXT NOT NULL,
			unlocked_at DATETIME NOT NULL,
			position INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_category ON tasks(category);`,
		`CREATE INDEX IF NOT EXISTS idx_achievements_position ON achievements(position);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

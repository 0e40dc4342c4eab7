package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ProgressRepo struct {
	db DBTX
}

func NewProgressRepo(db DBTX) *ProgressRepo {
	return &ProgressRepo{db: db}
}

func (r *ProgressRepo) Get(ctx context.Context, key string) (*Progress, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, level, total_xp, current_streak, longest_streak, last_completion_date, theme, avatar
		FROM progress
		WHERE key = ?
	`, key)

	var p Progress
	if err := row.Scan(&p.Key, &p.Level, &p.TotalXP, &p.CurrentStreak, &p.LongestStreak, &p.LastCompletionDate, &p.Theme, &p.Avatar); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("progress get: %w", err)
	}
	return &p, nil
}

func (r *ProgressRepo) GetOrCreateMain(ctx context.Context) (*Progress, error) {
	p, err := r.Get(ctx, MainProgressKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	if _, err := r.db.ExecContext(ctx, `INSERT INTO progress (key) VALUES (?)`, MainProgressKey); err != nil {
		return nil, fmt.Errorf("progress insert: %w", err)
	}
	return r.Get(ctx, MainProgressKey)
}

// Update persists the scalar fields. Achievements live in their own table and
// are written through AchievementRepo.
func (r *ProgressRepo) Update(ctx context.Context, p *Progress) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE progress
		SET level = ?, total_xp = ?, current_streak = ?, longest_streak = ?, last_completion_date = ?, theme = ?, avatar = ?
		WHERE key = ?
	`, p.Level, p.TotalXP, p.CurrentStreak, p.LongestStreak, p.LastCompletionDate, p.Theme, p.Avatar, p.Key)
	if err != nil {
		return fmt.Errorf("progress update: %w", err)
	}
	return nil
}

func (r *ProgressRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM progress WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("progress delete: %w", err)
	}
	return nil
}

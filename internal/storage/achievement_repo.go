package storage

import (
	"context"
	"fmt"
)

type AchievementRepo struct {
	db DBTX
}

func NewAchievementRepo(db DBTX) *AchievementRepo {
	return &AchievementRepo{db: db}
}

func (r *AchievementRepo) Insert(ctx context.Context, a *AchievementRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO achievements (id, title, description, icon, points, category, rarity, unlocked_at, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM achievements))
	`, a.ID, a.Title, a.Description, a.Icon, a.Points, a.Category, a.Rarity, a.UnlockedAt)
	if err != nil {
		return fmt.Errorf("achievement insert: %w", err)
	}
	return nil
}

func (r *AchievementRepo) ListAll(ctx context.Context) ([]AchievementRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, icon, points, category, rarity, unlocked_at
		FROM achievements
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []AchievementRecord
	for rows.Next() {
		var a AchievementRecord
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Icon, &a.Points, &a.Category, &a.Rarity, &a.UnlockedAt); err != nil {
			return nil, fmt.Errorf("achievement scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement rows: %w", err)
	}
	return out, nil
}

func (r *AchievementRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM achievements`)
	if err != nil {
		return fmt.Errorf("achievement delete all: %w", err)
	}
	return nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type TaskRepo struct {
	db DBTX
}

func NewTaskRepo(db DBTX) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Insert(ctx context.Context, t *Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, description, priority, category, points, completed, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Title, t.Description, t.Priority, t.Category, t.Points, boolToInt(t.Completed), t.CreatedAt, t.CompletedAt)
	if err != nil {
		return fmt.Errorf("task insert: %w", err)
	}
	return nil
}

func (r *TaskRepo) Get(ctx context.Context, id string) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, priority, category, points, completed, created_at, completed_at
		FROM tasks
		WHERE id = ?
	`, id)
	return scanTask(row)
}

func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, priority, category, points, completed, created_at, completed_at
		FROM tasks
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

func (r *TaskRepo) MarkCompleted(ctx context.Context, id string, completedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = 1, completed_at = ? WHERE id = ?`, completedAt, id)
	if err != nil {
		return fmt.Errorf("task mark completed: %w", err)
	}
	return nil
}

// MarkPending reverses a completion. completed_at is cleared so the
// "completed_at set iff completed" invariant holds.
func (r *TaskRepo) MarkPending(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = 0, completed_at = NULL WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task mark pending: %w", err)
	}
	return nil
}

func (r *TaskRepo) Update(ctx context.Context, t *Task) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, priority = ?, category = ?, points = ?
		WHERE id = ?
	`, t.Title, t.Description, t.Priority, t.Category, t.Points, t.ID)
	if err != nil {
		return fmt.Errorf("task update: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

func (r *TaskRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks`)
	if err != nil {
		return fmt.Errorf("task delete all: %w", err)
	}
	return nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*Task, error) {
	var (
		t           Task
		description sql.NullString
		completed   int
		completedAt sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.Title, &description, &t.Priority, &t.Category, &t.Points, &completed, &t.CreatedAt, &completedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}
	if description.Valid {
		v := description.String
		t.Description = &v
	}
	t.Completed = completed != 0
	if completedAt.Valid {
		v := completedAt.Time
		t.CompletedAt = &v
	}
	return &t, nil
}

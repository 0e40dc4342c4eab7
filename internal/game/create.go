package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gamedo/internal/storage"
)

// CreateTaskInput is the validated boundary for new tasks. The engine assumes
// anything past this point is well-formed.
type CreateTaskInput struct {
	Title       string `validate:"required"`
	Description string
	Priority    Priority `validate:"required,oneof=low medium high"`
	Category    string
	Points      int `validate:"gte=0"`
}

func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (*storage.Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Priority == "" {
		in.Priority = DefaultPriority
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	t := &storage.Task{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Priority:  string(in.Priority),
		Category:  in.Category,
		Points:    in.Points,
		CreatedAt: s.now(),
	}
	if d := strings.TrimSpace(in.Description); d != "" {
		t.Description = &d
	}
	if err := s.tasks.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTask edits the mutable fields of an uncompleted task.
func (s *Service) UpdateTask(ctx context.Context, id string, in CreateTaskInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Priority == "" {
		in.Priority = DefaultPriority
	}
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("task %s not found", id)
	}
	if t.Completed {
		return fmt.Errorf("task %s is already completed; undo it first", id)
	}

	t.Title = in.Title
	t.Priority = string(in.Priority)
	t.Category = in.Category
	t.Points = in.Points
	t.Description = nil
	if d := strings.TrimSpace(in.Description); d != "" {
		t.Description = &d
	}
	return s.tasks.Update(ctx, t)
}

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"lingua/backend/internal/model"
	"lingua/backend/internal/repository"
)

// deadlineLayouts are tried in order; the local forms come from datetime-local inputs.
var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type TaskService interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, title, deadline, reminderFrequency string) (model.Task, error)
	Toggle(ctx context.Context, id int64) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) List(ctx context.Context) ([]model.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) Create(ctx context.Context, title, deadline, reminderFrequency string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, ErrInvalid
	}
	due, err := parseDeadline(deadline)
	if err != nil {
		return model.Task{}, err
	}
	return s.tasks.Create(ctx, title, due, strings.TrimSpace(reminderFrequency))
}

// Toggle flips the completed flag.
func (s *taskService) Toggle(ctx context.Context, id int64) (model.Task, error) {
	updated, err := s.tasks.ToggleCompleted(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, fmt.Errorf("update task: %w", err)
	}
	return updated, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// parseDeadline accepts RFC 3339 and ISO 8601 local date-times. Values without a
// zone are read as UTC.
func parseDeadline(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: deadline is required", ErrInvalid)
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized deadline %q", ErrInvalid, value)
}

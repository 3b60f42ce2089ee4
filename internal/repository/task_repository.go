//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lingua/backend/internal/model"
	"lingua/backend/pkg/snowflake"
)

// TaskRepository defines the interface for to-do task storage.
type TaskRepository interface {
	Create(ctx context.Context, title string, deadline time.Time, reminderFrequency string) (model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	ToggleCompleted(ctx context.Context, id int64) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}

type taskRepository struct {
	db dbtx
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, title, deadline, reminder_frequency, completed, completed_at, created_at, updated_at`

func (r *taskRepository) Create(ctx context.Context, title string, deadline time.Time, reminderFrequency string) (model.Task, error) {
	now := time.Now().UTC()
	task := model.Task{
		ID:                snowflake.NextID(),
		Title:             title,
		Deadline:          deadline.UTC(),
		ReminderFrequency: reminderFrequency,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	var reminder *string
	if reminderFrequency != "" {
		reminder = &reminderFrequency
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, deadline, reminder_frequency, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, ?)
	`, task.ID, task.Title, formatTime(task.Deadline), nullableString(reminder), formatTime(now), formatTime(now))
	if err != nil {
		return model.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

// List returns tasks ordered by deadline, earliest first.
func (r *taskRepository) List(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY deadline ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// ToggleCompleted flips the completed flag in a single statement and returns
// the updated row. completed_at is set when the task becomes completed and
// cleared otherwise.
func (r *taskRepository) ToggleCompleted(ctx context.Context, id int64) (model.Task, error) {
	now := formatTime(time.Now().UTC())
	row := r.db.QueryRowContext(ctx, `
		UPDATE tasks
		SET completed = 1 - completed,
		    completed_at = CASE WHEN completed = 0 THEN ? ELSE NULL END,
		    updated_at = ?
		WHERE id = ?
		RETURNING `+taskColumns, now, now, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, err
		}
		return model.Task{}, fmt.Errorf("toggle task: %w", err)
	}
	return task, nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return requireAffected(result)
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		task                           model.Task
		deadline, createdAt, updatedAt string
		reminder, completedAt          sql.NullString
		completed                      int
	)
	if err := row.Scan(&task.ID, &task.Title, &deadline, &reminder, &completed, &completedAt, &createdAt, &updatedAt); err != nil {
		return model.Task{}, err
	}

	task.ReminderFrequency = reminder.String
	task.Completed = completed != 0

	var err error
	if task.Deadline, err = parseTime(deadline); err != nil {
		return model.Task{}, fmt.Errorf("task %d deadline: %w", task.ID, err)
	}
	if task.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Task{}, fmt.Errorf("task %d created_at: %w", task.ID, err)
	}
	if task.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Task{}, fmt.Errorf("task %d updated_at: %w", task.ID, err)
	}
	if completedAt.Valid {
		done, err := parseTime(completedAt.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %d completed_at: %w", task.ID, err)
		}
		task.CompletedAt = &done
	}
	return task, nil
}

package model

import "time"

type Task struct {
	ID                int64
	Title             string
	Deadline          time.Time
	ReminderFrequency string
	Completed         bool
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

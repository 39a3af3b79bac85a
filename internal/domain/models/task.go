package models

import "time"

type TaskStatus string

const (
	TaskStatusRequirement TaskStatus = "requirement"
	TaskStatusDeveloping  TaskStatus = "developing"
	TaskStatusTesting     TaskStatus = "testing"
	TaskStatusDone        TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusRequirement, TaskStatusDeveloping, TaskStatusTesting, TaskStatusDone:
		return true
	}
	return false
}

// Task is one unit of work, optionally tied to a requirement and an
// assignee. Generated artifacts attach to tasks as documents.
type Task struct {
	ID            string     `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	Status        TaskStatus `json:"status" db:"status"`
	AssigneeID    *string    `json:"assignee_id,omitempty" db:"assignee_id"`
	RequirementID *string    `json:"requirement_id,omitempty" db:"requirement_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

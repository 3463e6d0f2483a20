package models

import "time"

// TaskStatus defines the workflow stage of a task
type TaskStatus string

const (
	TaskStatusTodo      TaskStatus = "todo"
	TaskStatusProgress  TaskStatus = "progress"
	TaskStatusReview    TaskStatus = "review"
	TaskStatusCompleted TaskStatus = "completed"
)

// ValidTaskStatuses contains all valid task status values in board column order
var ValidTaskStatuses = []TaskStatus{
	TaskStatusTodo,
	TaskStatusProgress,
	TaskStatusReview,
	TaskStatusCompleted,
}

// IsValidTaskStatus checks if a status string is a valid TaskStatus
func IsValidTaskStatus(s string) bool {
	for _, status := range ValidTaskStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// Title returns the column heading for the stage.
func (s TaskStatus) Title() string {
	switch s {
	case TaskStatusTodo:
		return "To Do"
	case TaskStatusProgress:
		return "In Progress"
	case TaskStatusReview:
		return "Review"
	case TaskStatusCompleted:
		return "Completed"
	}
	return string(s)
}

// TaskPriority defines how urgent a task is
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// ValidTaskPriorities contains all valid task priority values, lowest first
var ValidTaskPriorities = []TaskPriority{
	TaskPriorityLow,
	TaskPriorityMedium,
	TaskPriorityHigh,
	TaskPriorityUrgent,
}

// IsValidTaskPriority checks if a priority string is a valid TaskPriority
func IsValidTaskPriority(s string) bool {
	for _, p := range ValidTaskPriorities {
		if string(p) == s {
			return true
		}
	}
	return false
}

// Next returns the following priority, wrapping from urgent back to low.
func (p TaskPriority) Next() TaskPriority {
	for i, v := range ValidTaskPriorities {
		if v == p {
			return ValidTaskPriorities[(i+1)%len(ValidTaskPriorities)]
		}
	}
	return TaskPriorityLow
}

// Task represents a unit of work on the board.
// Assignee and Project are opaque lookup keys into the directory.
type Task struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Description         string       `json:"description,omitempty"`
	Status              TaskStatus   `json:"status"`
	Priority            TaskPriority `json:"priority"`
	Assignee            string       `json:"assignee,omitempty"`
	Project             string       `json:"project,omitempty"`
	DueDate             *time.Time   `json:"due_date,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
	CreatedBy           string       `json:"created_by,omitempty"`
	NotificationEnabled bool         `json:"notification_enabled"`
}

// Clone returns a copy of the task that shares no pointers with t.
func (t Task) Clone() Task {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

// TaskInput is the payload for creating a task.
// An empty Status defaults to todo and an empty Priority to medium.
type TaskInput struct {
	Title               string       `json:"title"`
	Description         string       `json:"description,omitempty"`
	Status              TaskStatus   `json:"status,omitempty"`
	Priority            TaskPriority `json:"priority,omitempty"`
	Assignee            string       `json:"assignee,omitempty"`
	Project             string       `json:"project,omitempty"`
	DueDate             *time.Time   `json:"due_date,omitempty"`
	CreatedBy           string       `json:"created_by,omitempty"`
	NotificationEnabled bool         `json:"notification_enabled"`

	// Position inserts the task at this index of its stage instead of the tail.
	Position *int `json:"position,omitempty"`
}

// TaskPatch carries a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title               *string       `json:"title,omitempty"`
	Description         *string       `json:"description,omitempty"`
	Status              *TaskStatus   `json:"status,omitempty"`
	Priority            *TaskPriority `json:"priority,omitempty"`
	Assignee            *string       `json:"assignee,omitempty"`
	Project             *string       `json:"project,omitempty"`
	DueDate             *time.Time    `json:"due_date,omitempty"`
	ClearDueDate        bool          `json:"clear_due_date,omitempty"`
	NotificationEnabled *bool         `json:"notification_enabled,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.Assignee == nil && p.Project == nil &&
		p.DueDate == nil && !p.ClearDueDate && p.NotificationEnabled == nil
}

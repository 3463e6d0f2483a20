package tools

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fitz/taskboard/internal/board"
	"github.com/fitz/taskboard/internal/directory"
	"github.com/fitz/taskboard/internal/models"
)

const timeLayout = "2006-01-02T15:04:05Z"

// Handler provides the dependencies needed by tool handlers.
type Handler struct {
	Board     *board.Controller
	Directory *directory.Directory
	Logger    *slog.Logger
}

// NewHandler creates a new Handler with the given dependencies.
func NewHandler(ctrl *board.Controller, dir *directory.Directory, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if dir == nil {
		dir = directory.New(nil, nil)
	}
	return &Handler{
		Board:     ctrl,
		Directory: dir,
		Logger:    logger,
	}
}

// TaskOutput is the wire shape of a task returned by every tool.
type TaskOutput struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Description         string `json:"description,omitempty"`
	Status              string `json:"status"`
	Priority            string `json:"priority"`
	Assignee            string `json:"assignee,omitempty"`
	AssigneeName        string `json:"assignee_name,omitempty"`
	Project             string `json:"project,omitempty"`
	ProjectName         string `json:"project_name,omitempty"`
	DueDate             string `json:"due_date,omitempty"`
	CreatedBy           string `json:"created_by,omitempty"`
	NotificationEnabled bool   `json:"notification_enabled"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}

func (h *Handler) toOutput(t models.Task) TaskOutput {
	out := TaskOutput{
		ID:                  t.ID,
		Title:               t.Title,
		Description:         t.Description,
		Status:              string(t.Status),
		Priority:            string(t.Priority),
		Assignee:            t.Assignee,
		Project:             t.Project,
		CreatedBy:           t.CreatedBy,
		NotificationEnabled: t.NotificationEnabled,
		CreatedAt:           t.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:           t.UpdatedAt.UTC().Format(timeLayout),
	}
	if t.Assignee != "" {
		out.AssigneeName = h.Directory.MemberName(t.Assignee)
	}
	if t.Project != "" {
		out.ProjectName = h.Directory.ProjectName(t.Project)
	}
	if t.DueDate != nil {
		out.DueDate = t.DueDate.Format("2006-01-02")
	}
	return out
}

func (h *Handler) toOutputs(tasks []models.Task) []TaskOutput {
	out := make([]TaskOutput, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, h.toOutput(t))
	}
	return out
}

func statusList() string {
	names := make([]string, len(models.ValidTaskStatuses))
	for i, s := range models.ValidTaskStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func priorityList() string {
	names := make([]string, len(models.ValidTaskPriorities))
	for i, p := range models.ValidTaskPriorities {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// parseStatus validates a status string. Empty input returns "".
func parseStatus(s string) (models.TaskStatus, error) {
	if s == "" {
		return "", nil
	}
	if !models.IsValidTaskStatus(s) {
		return "", fmt.Errorf("invalid status: %s (must be one of: %s)", s, statusList())
	}
	return models.TaskStatus(s), nil
}

// parsePriority validates a priority string. Empty input returns "".
func parsePriority(s string) (models.TaskPriority, error) {
	if s == "" {
		return "", nil
	}
	if !models.IsValidTaskPriority(s) {
		return "", fmt.Errorf("invalid priority: %s (must be one of: %s)", s, priorityList())
	}
	return models.TaskPriority(s), nil
}

// parseDueDate accepts a calendar date or an RFC 3339 timestamp.
func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid due_date: %s (expected YYYY-MM-DD or RFC 3339)", s)
}

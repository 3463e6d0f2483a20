package tools

import (
	"context"
	"fmt"

	"github.com/fitz/taskboard/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CreateTaskInput defines the input for the create_task tool.
type CreateTaskInput struct {
	Title               string `json:"title" jsonschema:"required,Short title of the task"`
	Description         string `json:"description,omitempty" jsonschema:"Longer description of the work"`
	Status              string `json:"status,omitempty" jsonschema:"Stage to create the task in: todo, progress, review, completed (default: todo)"`
	Priority            string `json:"priority,omitempty" jsonschema:"Priority: low, medium, high, urgent (default: medium)"`
	Assignee            string `json:"assignee,omitempty" jsonschema:"Member ID the task is assigned to (see list_members)"`
	Project             string `json:"project,omitempty" jsonschema:"Project ID the task belongs to"`
	DueDate             string `json:"due_date,omitempty" jsonschema:"Due date as YYYY-MM-DD or RFC 3339"`
	CreatedBy           string `json:"created_by,omitempty" jsonschema:"Member ID of the creator"`
	NotificationEnabled bool   `json:"notification_enabled,omitempty" jsonschema:"Whether the assignee is notified about changes"`
	Position            *int   `json:"position,omitempty" jsonschema:"Zero-based index within the stage. If not specified, appends to end."`
}

// CreateTaskOutput defines the output for the create_task tool.
type CreateTaskOutput struct {
	Task TaskOutput `json:"task"`
}

// CreateTaskTool returns the tool definition for create_task.
func CreateTaskTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_task",
		Description: "Create a new task on the board. The task is placed at the end of its stage unless a position is given. Returns the created task with its ID.",
	}
}

// HandleCreateTask handles the create_task tool call.
func (h *Handler) HandleCreateTask(ctx context.Context, req *mcp.CallToolRequest, input CreateTaskInput) (*mcp.CallToolResult, CreateTaskOutput, error) {
	h.Logger.Info("create_task", "title_len", len(input.Title), "status", input.Status, "priority", input.Priority)

	if input.Title == "" {
		return nil, CreateTaskOutput{}, fmt.Errorf("title is required")
	}
	status, err := parseStatus(input.Status)
	if err != nil {
		return nil, CreateTaskOutput{}, err
	}
	priority, err := parsePriority(input.Priority)
	if err != nil {
		return nil, CreateTaskOutput{}, err
	}
	due, err := parseDueDate(input.DueDate)
	if err != nil {
		return nil, CreateTaskOutput{}, err
	}

	created, err := h.Board.CreateTask(models.TaskInput{
		Title:               input.Title,
		Description:         input.Description,
		Status:              status,
		Priority:            priority,
		Assignee:            input.Assignee,
		Project:             input.Project,
		DueDate:             due,
		CreatedBy:           input.CreatedBy,
		NotificationEnabled: input.NotificationEnabled,
		Position:            input.Position,
	})
	if err != nil {
		h.Logger.Error("create_task failed", "error", err)
		return nil, CreateTaskOutput{}, fmt.Errorf("failed to create task: %w", err)
	}

	h.Logger.Info("create_task complete", "id", created.ID, "status", created.Status)
	return nil, CreateTaskOutput{Task: h.toOutput(created)}, nil
}

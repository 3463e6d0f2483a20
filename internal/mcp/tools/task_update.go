package tools

import (
	"context"
	"fmt"

	"github.com/fitz/taskboard/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// UpdateTaskInput defines the input for the update_task tool.
type UpdateTaskInput struct {
	ID                  string  `json:"id" jsonschema:"required,The ID of the task to update"`
	Title               *string `json:"title,omitempty" jsonschema:"New title"`
	Description         *string `json:"description,omitempty" jsonschema:"New description"`
	Status              *string `json:"status,omitempty" jsonschema:"New stage: todo, progress, review, completed. A changed stage appends the task to the end of the new stage."`
	Priority            *string `json:"priority,omitempty" jsonschema:"New priority: low, medium, high, urgent"`
	Assignee            *string `json:"assignee,omitempty" jsonschema:"New assignee member ID (empty string unassigns)"`
	Project             *string `json:"project,omitempty" jsonschema:"New project ID (empty string clears)"`
	DueDate             *string `json:"due_date,omitempty" jsonschema:"New due date as YYYY-MM-DD or RFC 3339 (empty string clears)"`
	NotificationEnabled *bool   `json:"notification_enabled,omitempty" jsonschema:"Enable or disable notifications"`
}

// UpdateTaskOutput defines the output for the update_task tool.
type UpdateTaskOutput struct {
	Task TaskOutput `json:"task"`
}

// UpdateTaskTool returns the tool definition for update_task.
func UpdateTaskTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_task",
		Description: "Update fields of an existing task. Only provided fields are changed. Use move_task to place a task at a specific position.",
	}
}

// HandleUpdateTask handles the update_task tool call.
func (h *Handler) HandleUpdateTask(ctx context.Context, req *mcp.CallToolRequest, input UpdateTaskInput) (*mcp.CallToolResult, UpdateTaskOutput, error) {
	h.Logger.Info("update_task", "id", input.ID)

	if input.ID == "" {
		return nil, UpdateTaskOutput{}, fmt.Errorf("id is required")
	}

	patch, err := buildPatch(input)
	if err != nil {
		return nil, UpdateTaskOutput{}, err
	}

	updated, err := h.Board.UpdateTask(input.ID, patch)
	if err != nil {
		h.Logger.Error("update_task failed", "error", err)
		return nil, UpdateTaskOutput{}, fmt.Errorf("failed to update task: %w", err)
	}

	h.Logger.Info("update_task complete", "id", updated.ID, "status", updated.Status)
	return nil, UpdateTaskOutput{Task: h.toOutput(updated)}, nil
}

func buildPatch(input UpdateTaskInput) (models.TaskPatch, error) {
	patch := models.TaskPatch{
		Title:               input.Title,
		Description:         input.Description,
		Assignee:            input.Assignee,
		Project:             input.Project,
		NotificationEnabled: input.NotificationEnabled,
	}
	if input.Status != nil {
		status, err := parseStatus(*input.Status)
		if err != nil || status == "" {
			return patch, fmt.Errorf("invalid status: %s (must be one of: %s)", *input.Status, statusList())
		}
		patch.Status = &status
	}
	if input.Priority != nil {
		priority, err := parsePriority(*input.Priority)
		if err != nil || priority == "" {
			return patch, fmt.Errorf("invalid priority: %s (must be one of: %s)", *input.Priority, priorityList())
		}
		patch.Priority = &priority
	}
	if input.DueDate != nil {
		if *input.DueDate == "" {
			patch.ClearDueDate = true
		} else {
			due, err := parseDueDate(*input.DueDate)
			if err != nil {
				return patch, err
			}
			patch.DueDate = due
		}
	}
	return patch, nil
}

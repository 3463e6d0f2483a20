package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DeleteTaskInput defines the input for the delete_task tool.
type DeleteTaskInput struct {
	ID string `json:"id" jsonschema:"required,The ID of the task to delete"`
}

// DeleteTaskOutput defines the output for the delete_task tool.
type DeleteTaskOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteTaskTool returns the tool definition for delete_task.
func DeleteTaskTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task from the board. It is removed from its stage and can no longer be referenced.",
	}
}

// HandleDeleteTask handles the delete_task tool call.
func (h *Handler) HandleDeleteTask(ctx context.Context, req *mcp.CallToolRequest, input DeleteTaskInput) (*mcp.CallToolResult, DeleteTaskOutput, error) {
	h.Logger.Info("delete_task", "id", input.ID)

	if input.ID == "" {
		return nil, DeleteTaskOutput{}, fmt.Errorf("id is required")
	}

	if err := h.Board.DeleteTask(input.ID); err != nil {
		h.Logger.Error("delete_task failed", "error", err)
		return nil, DeleteTaskOutput{}, fmt.Errorf("failed to delete task: %w", err)
	}

	h.Logger.Info("delete_task complete", "id", input.ID)
	return nil, DeleteTaskOutput{
		Success: true,
		Message: fmt.Sprintf("Task %s deleted", input.ID),
	}, nil
}

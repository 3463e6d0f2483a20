package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetTaskInput defines the input for the get_task tool.
type GetTaskInput struct {
	ID string `json:"id" jsonschema:"required,The ID of the task to retrieve"`
}

// GetTaskOutput defines the output for the get_task tool.
type GetTaskOutput struct {
	Task TaskOutput `json:"task"`
}

// GetTaskTool returns the tool definition for get_task.
func GetTaskTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_task",
		Description: "Retrieve a task by ID, including the display names of its assignee and project.",
	}
}

// HandleGetTask handles the get_task tool call.
func (h *Handler) HandleGetTask(ctx context.Context, req *mcp.CallToolRequest, input GetTaskInput) (*mcp.CallToolResult, GetTaskOutput, error) {
	h.Logger.Info("get_task", "id", input.ID)

	if input.ID == "" {
		return nil, GetTaskOutput{}, fmt.Errorf("id is required")
	}

	task, err := h.Board.GetTask(input.ID)
	if err != nil {
		h.Logger.Error("get_task failed", "error", err)
		return nil, GetTaskOutput{}, fmt.Errorf("failed to get task: %w", err)
	}

	return nil, GetTaskOutput{Task: h.toOutput(task)}, nil
}

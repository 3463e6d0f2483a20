package tools

import (
	"context"
	"fmt"

	"github.com/fitz/taskboard/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MoveTaskInput defines the input for the move_task tool.
type MoveTaskInput struct {
	ID     string `json:"id" jsonschema:"required,The ID of the task to move"`
	Status string `json:"status" jsonschema:"required,Destination stage: todo, progress, review, completed"`
	Index  int    `json:"index" jsonschema:"required,Zero-based position in the destination stage, counted after the task is removed from its current place"`
}

// MoveTaskOutput defines the output for the move_task tool.
type MoveTaskOutput struct {
	Task  TaskOutput `json:"task"`
	Stage []string   `json:"stage"`
}

// MoveTaskTool returns the tool definition for move_task.
func MoveTaskTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "move_task",
		Description: "Move a task to an exact position in a stage. Works for reordering within a stage and for moving between stages. Returns the task and the resulting order of the destination stage.",
	}
}

// HandleMoveTask handles the move_task tool call.
func (h *Handler) HandleMoveTask(ctx context.Context, req *mcp.CallToolRequest, input MoveTaskInput) (*mcp.CallToolResult, MoveTaskOutput, error) {
	h.Logger.Info("move_task", "id", input.ID, "status", input.Status, "index", input.Index)

	if input.ID == "" {
		return nil, MoveTaskOutput{}, fmt.Errorf("id is required")
	}
	status, err := parseStatus(input.Status)
	if err != nil {
		return nil, MoveTaskOutput{}, err
	}
	if status == "" {
		return nil, MoveTaskOutput{}, fmt.Errorf("status is required")
	}

	moved, err := h.Board.MoveTask(input.ID, status, input.Index)
	if err != nil {
		h.Logger.Error("move_task failed", "error", err)
		return nil, MoveTaskOutput{}, fmt.Errorf("failed to move task: %w", err)
	}

	col, _ := h.Board.BoardView().Column(status)
	h.Logger.Info("move_task complete", "id", moved.ID, "status", moved.Status)
	return nil, MoveTaskOutput{Task: h.toOutput(moved), Stage: taskIDs(col.Tasks)}, nil
}

func taskIDs(tasks []models.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

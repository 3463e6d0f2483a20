package tools

import (
	"context"
	"fmt"

	"github.com/fitz/taskboard/internal/board"
	"github.com/fitz/taskboard/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LocationInput addresses a card by stage and index as last rendered.
type LocationInput struct {
	Status string `json:"status" jsonschema:"required,Stage of the card: todo, progress, review, completed"`
	Index  int    `json:"index" jsonschema:"required,Zero-based index of the card within the stage"`
}

// DragTaskInput defines the input for the drag_task tool.
type DragTaskInput struct {
	Source      LocationInput  `json:"source" jsonschema:"required,Where the drag started"`
	Destination *LocationInput `json:"destination,omitempty" jsonschema:"Where the card was dropped. Omit when the card was dropped outside any column."`
}

// DragTaskOutput defines the output for the drag_task tool.
type DragTaskOutput struct {
	Outcome string         `json:"outcome"`
	TaskID  string         `json:"task_id,omitempty"`
	Task    *TaskOutput    `json:"task,omitempty"`
	Reason  string         `json:"reason,omitempty"`
	Board   GetBoardOutput `json:"board"`
}

// DragTaskTool returns the tool definition for drag_task.
func DragTaskTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "drag_task",
		Description: "Apply a drag-and-drop gesture using positions from the last get_board. Outcome is noop (no destination or dropped in place), moved, or discarded (the positions no longer match the board). The current board is always returned.",
	}
}

// HandleDragTask handles the drag_task tool call.
func (h *Handler) HandleDragTask(ctx context.Context, req *mcp.CallToolRequest, input DragTaskInput) (*mcp.CallToolResult, DragTaskOutput, error) {
	h.Logger.Info("drag_task", "source", input.Source.Status, "source_index", input.Source.Index, "has_destination", input.Destination != nil)

	source := board.Location{Stage: models.TaskStatus(input.Source.Status), Index: input.Source.Index}
	var dest *board.Location
	if input.Destination != nil {
		dest = &board.Location{Stage: models.TaskStatus(input.Destination.Status), Index: input.Destination.Index}
	}

	res := h.Board.OnDragEnd(source, dest)

	out := DragTaskOutput{
		Outcome: res.Outcome.String(),
		TaskID:  res.TaskID,
		Board:   h.boardOutput(res.View),
	}
	switch res.Outcome {
	case board.DragMoved:
		task := h.toOutput(res.Task)
		out.Task = &task
	case board.DragDiscarded:
		out.Reason = fmt.Sprintf("board changed since it was rendered: %v", res.Err)
	}

	h.Logger.Info("drag_task complete", "outcome", out.Outcome, "task_id", out.TaskID)
	return nil, out, nil
}

func (h *Handler) boardOutput(view board.BoardView) GetBoardOutput {
	out := GetBoardOutput{Columns: make([]ColumnOutput, 0, len(view.Columns)), Total: view.Total}
	for _, col := range view.Columns {
		out.Columns = append(out.Columns, ColumnOutput{
			Status: string(col.Stage),
			Title:  col.Title,
			Count:  col.Count,
			Tasks:  h.toOutputs(col.Tasks),
		})
	}
	return out
}

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetBoardInput defines the input for the get_board tool.
type GetBoardInput struct {
	Status string `json:"status,omitempty" jsonschema:"Only return this stage: todo, progress, review, completed. If not specified, returns all four."`
}

// ColumnOutput is one stage of the board.
type ColumnOutput struct {
	Status string       `json:"status"`
	Title  string       `json:"title"`
	Count  int          `json:"count"`
	Tasks  []TaskOutput `json:"tasks"`
}

// GetBoardOutput defines the output for the get_board tool.
type GetBoardOutput struct {
	Columns []ColumnOutput `json:"columns"`
	Total   int            `json:"total"`
}

// GetBoardTool returns the tool definition for get_board.
func GetBoardTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_board",
		Description: "Get the kanban board: the ordered tasks of each stage (To Do, In Progress, Review, Completed). Indices in each column are the positions used by move_task and drag_task.",
	}
}

// HandleGetBoard handles the get_board tool call.
func (h *Handler) HandleGetBoard(ctx context.Context, req *mcp.CallToolRequest, input GetBoardInput) (*mcp.CallToolResult, GetBoardOutput, error) {
	h.Logger.Info("get_board", "status", input.Status)

	status, err := parseStatus(input.Status)
	if err != nil {
		return nil, GetBoardOutput{}, err
	}

	out := h.boardOutput(h.Board.BoardView())
	if status != "" {
		filtered := out.Columns[:0]
		for _, col := range out.Columns {
			if col.Status == string(status) {
				filtered = append(filtered, col)
			}
		}
		out.Columns = filtered
	}
	return nil, out, nil
}

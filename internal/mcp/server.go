// Package mcp exposes the board over the Model Context Protocol.
package mcp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fitz/taskboard/internal/board"
	"github.com/fitz/taskboard/internal/directory"
	"github.com/fitz/taskboard/internal/mcp/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName    = "taskboard"
	ServerVersion = "v1.0.0"
)

// Server wraps the MCP server with the board's tool set.
type Server struct {
	mcpServer *mcp.Server
	logger    *slog.Logger
	handler   *tools.Handler
}

// NewServer creates a new taskboard MCP server backed by ctrl.
func NewServer(ctrl *board.Controller, dir *directory.Directory, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		logger:    logger,
		handler:   tools.NewHandler(ctrl, dir, logger),
	}

	s.registerTools()
	return s
}

// registerTools adds all MCP tools to the server
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, tools.CreateTaskTool(), s.handler.HandleCreateTask)
	mcp.AddTool(s.mcpServer, tools.GetTaskTool(), s.handler.HandleGetTask)
	mcp.AddTool(s.mcpServer, tools.UpdateTaskTool(), s.handler.HandleUpdateTask)
	mcp.AddTool(s.mcpServer, tools.MoveTaskTool(), s.handler.HandleMoveTask)
	mcp.AddTool(s.mcpServer, tools.DeleteTaskTool(), s.handler.HandleDeleteTask)
	mcp.AddTool(s.mcpServer, tools.GetBoardTool(), s.handler.HandleGetBoard)
	mcp.AddTool(s.mcpServer, tools.DragTaskTool(), s.handler.HandleDragTask)
	mcp.AddTool(s.mcpServer, tools.ListMembersTool(), s.handler.HandleListMembers)
}

// HTTPHandler returns an http.Handler for the MCP server
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(
		func(r *http.Request) *mcp.Server {
			return s.mcpServer
		},
		&mcp.StreamableHTTPOptions{
			Logger: s.logger,
		},
	)
}

// Run starts the MCP server over stdio (for CLI usage)
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves a single session over transport. It is used to embed the
// server in-process.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.mcpServer.Connect(ctx, transport, nil)
}

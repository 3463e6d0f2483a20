package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fitz/taskboard/internal/config"
	mcpserver "github.com/fitz/taskboard/internal/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server for AI agent integration",
	Long: `Start the Model Context Protocol (MCP) server that lets AI agents
read and change the board.

By default the server speaks JSON-RPC over stdio, which is how agents
usually launch it. With --http it serves the streamable HTTP transport
on TASKBOARD_HTTP_ADDR (or --addr) until interrupted.

Logs go to stderr; stdout is reserved for the protocol.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		httpMode, _ := cmd.Flags().GetBool("http")
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.HTTPAddr
		}

		logger := config.NewLogger(cfg, os.Stderr)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			logger.Info("shutting down...")
			cancel()
		}()

		sess, err := newSession(cfg, logger)
		if err != nil {
			exitWithError(err)
		}
		server := mcpserver.NewServer(sess.Controller, sess.Directory, logger)

		if httpMode {
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           server.HTTPHandler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				_ = httpServer.Shutdown(shutdownCtx)
			}()

			logger.Info("starting HTTP server", "addr", addr)
			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				exitWithError(fmt.Errorf("HTTP server error: %w", err))
			}
		} else {
			logger.Info("starting MCP server on stdio")
			if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				exitWithError(fmt.Errorf("MCP server error: %w", err))
			}
		}

		logger.Info("server stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Bool("http", false, "Run as HTTP server (default: stdio for MCP)")
	serveCmd.Flags().String("addr", "", "HTTP listen address (overrides TASKBOARD_HTTP_ADDR)")
}

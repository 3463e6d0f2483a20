// Package cmd contains all CLI command definitions.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fitz/taskboard/internal/config"
	"github.com/spf13/cobra"
)

// cfg is resolved once per invocation by PersistentPreRunE.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Taskboard - in-memory kanban board for a small team",
	Long: `Taskboard keeps a team's tasks in memory and shows them as a kanban
board with four stages: To Do, In Progress, Review and Completed.

Cards can be reordered and moved between stages from the terminal board
or by AI agents through the MCP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip configuration loading for these commands
		skipCommands := map[string]bool{
			"completion": true,
			"help":       true,
			"config":     true,
			"set":        true,
			"get":        true,
			"list":       true,
		}

		if skipCommands[cmd.Name()] {
			return nil
		}

		return loadConfig(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("dir", "d", ".", "Directory containing the .env configuration file")
}

// exitWithError prints an error message and exits with code 1.
func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func loadConfig(cmd *cobra.Command) error {
	absDir, err := workDir(cmd)
	if err != nil {
		return err
	}

	loaded, err := config.Load(absDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'taskboard config list' to inspect the resolved values", err)
	}
	cfg = loaded
	return nil
}

func workDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid directory: %w", err)
	}
	return absDir, nil
}

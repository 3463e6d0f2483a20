package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fitz/taskboard/internal/config"
	"github.com/fitz/taskboard/internal/tui"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive kanban board",
	Long: `Open the board in the terminal.

Pick a card up with space, move it with the arrow keys and drop it with
space or enter. Press ? for all key bindings.

The board owns the terminal, so logs are discarded unless --log-file
is given.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logPath, _ := cmd.Flags().GetString("log-file")

		var logOut io.Writer = io.Discard
		if logPath != "" {
			f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				exitWithError(fmt.Errorf("failed to open log file: %w", err))
			}
			defer f.Close()
			logOut = f
		}
		logger := config.NewLogger(cfg, logOut)

		sess, err := newSession(cfg, logger)
		if err != nil {
			exitWithError(err)
		}

		err = tui.Run(tui.Options{
			Controller: sess.Controller,
			Directory:  sess.Directory,
			Toasts:     sess.Toasts,
			User:       cfg.User,
		})
		if err != nil {
			exitWithError(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.Flags().String("log-file", "", "Append structured logs to this file")
}

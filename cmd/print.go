package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fitz/taskboard/internal/board"
	"github.com/fitz/taskboard/internal/config"
	"github.com/fitz/taskboard/internal/directory"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the seeded board and exit",
	Long: `Print the board as plain text, one stage after another, or as JSON
with --json. Useful for checking a seed file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		asJSON, _ := cmd.Flags().GetBool("json")

		sess, err := newSession(cfg, config.NewLogger(cfg, io.Discard))
		if err != nil {
			exitWithError(err)
		}
		view := sess.Controller.BoardView()

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(view); err != nil {
				exitWithError(fmt.Errorf("failed to encode board: %w", err))
			}
			return
		}
		writeBoard(os.Stdout, view, sess.Directory)
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().Bool("json", false, "Print the board as JSON")
}

func writeBoard(w io.Writer, view board.BoardView, dir *directory.Directory) {
	for i, col := range view.Columns {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", col.Title, col.Count)
		fmt.Fprintln(w, strings.Repeat("-", len(col.Title)+4))
		for j, task := range col.Tasks {
			line := fmt.Sprintf("  %d. %s [%s]", j+1, task.Title, task.Priority)
			if task.Assignee != "" {
				line += " @" + dir.MemberName(task.Assignee)
			}
			if task.DueDate != nil {
				line += " due " + task.DueDate.Format("2006-01-02")
			}
			fmt.Fprintln(w, line)
		}
	}
}

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/fitz/taskboard/internal/board"
	"github.com/fitz/taskboard/internal/config"
	"github.com/fitz/taskboard/internal/directory"
	"github.com/fitz/taskboard/internal/seed"
)

// session is one running board: the store behind its controller plus the
// lookups and collaborators the front ends share.
type session struct {
	Controller *board.Controller
	Directory  *directory.Directory
	Toasts     *board.RecordingNotifier
}

// newSession builds a store, seeds it according to c and wires notifications
// to the log and to an in-memory toast buffer.
func newSession(c *config.Config, logger *slog.Logger) (*session, error) {
	store := board.NewStore()
	dir := directory.New(nil, nil)

	if c.Seed {
		data, err := loadSeed(c.SeedFile)
		if err != nil {
			return nil, err
		}
		if err := data.Apply(store); err != nil {
			return nil, fmt.Errorf("failed to seed board: %w", err)
		}
		dir = data.Directory()
		logger.Info("board seeded", "tasks", store.Len(), "members", len(dir.Members()))
	}

	toasts := board.NewRecordingNotifier(50)
	notifier := board.Notifiers{board.LogNotifier{Logger: logger}, toasts}

	return &session{
		Controller: board.NewController(store, notifier, logger),
		Directory:  dir,
		Toasts:     toasts,
	}, nil
}

func loadSeed(path string) (*seed.Data, error) {
	if path == "" {
		data, err := seed.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in seed data: %w", err)
		}
		return data, nil
	}
	data, err := seed.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file: %w", err)
	}
	return data, nil
}

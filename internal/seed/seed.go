// Package seed provides the mock data set the dashboard starts with.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fitz/taskboard/internal/board"
	"github.com/fitz/taskboard/internal/directory"
	"github.com/fitz/taskboard/internal/models"
)

//go:embed data.json
var defaultData []byte

// Data is a complete mock data set.
type Data struct {
	Members  []models.Member    `json:"members"`
	Projects []models.Project   `json:"projects"`
	Tasks    []models.TaskInput `json:"tasks"`
}

// Default returns the built-in data set.
func Default() (*Data, error) {
	return Parse(defaultData)
}

// Parse decodes a data set from JSON.
func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &d, nil
}

// LoadFile reads a data set from path.
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

// Directory returns the member and project lookup for the data set.
func (d *Data) Directory() *directory.Directory {
	return directory.New(d.Members, d.Projects)
}

// Apply creates every task through the store, in file order, so the
// board columns follow the order tasks appear in the data set.
func (d *Data) Apply(store *board.Store) error {
	for i, in := range d.Tasks {
		if _, err := store.Create(in); err != nil {
			return fmt.Errorf("seed task %d (%q): %w", i, in.Title, err)
		}
	}
	return nil
}

package board

import (
	"fmt"

	"github.com/fitz/taskboard/internal/models"
)

// Partition is the ordered list of task IDs shown in one board column.
// It holds no task data; the store's canonical map does.
type Partition struct {
	stage models.TaskStatus
	ids   []string
}

func newPartition(stage models.TaskStatus) *Partition {
	return &Partition{stage: stage}
}

// Stage returns the status this partition holds.
func (p *Partition) Stage() models.TaskStatus {
	return p.stage
}

// Len returns the number of tasks in the partition.
func (p *Partition) Len() int {
	return len(p.ids)
}

// At returns the task ID at index i.
func (p *Partition) At(i int) (string, error) {
	if i < 0 || i >= len(p.ids) {
		return "", fmt.Errorf("%w: index %d in %s (len %d)", ErrOutOfRange, i, p.stage, len(p.ids))
	}
	return p.ids[i], nil
}

// IndexOf returns the position of id, or -1.
func (p *Partition) IndexOf(id string) int {
	for i, v := range p.ids {
		if v == id {
			return i
		}
	}
	return -1
}

// Append adds id at the tail.
func (p *Partition) Append(id string) {
	p.ids = append(p.ids, id)
}

// InsertAt places id at index i, shifting later entries right. Valid range is 0..Len().
func (p *Partition) InsertAt(i int, id string) error {
	if i < 0 || i > len(p.ids) {
		return fmt.Errorf("%w: insert index %d in %s (len %d)", ErrOutOfRange, i, p.stage, len(p.ids))
	}
	p.ids = append(p.ids, "")
	copy(p.ids[i+1:], p.ids[i:])
	p.ids[i] = id
	return nil
}

// RemoveAt deletes and returns the entry at index i.
func (p *Partition) RemoveAt(i int) (string, error) {
	if i < 0 || i >= len(p.ids) {
		return "", fmt.Errorf("%w: remove index %d in %s (len %d)", ErrOutOfRange, i, p.stage, len(p.ids))
	}
	id := p.ids[i]
	copy(p.ids[i:], p.ids[i+1:])
	p.ids[len(p.ids)-1] = ""
	p.ids = p.ids[:len(p.ids)-1]
	return id, nil
}

// IDs returns a copy of the ordered IDs.
func (p *Partition) IDs() []string {
	out := make([]string, len(p.ids))
	copy(out, p.ids)
	return out
}

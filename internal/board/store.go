package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/fitz/taskboard/internal/models"
	"github.com/google/uuid"
)

// Store owns every task twice over: a canonical map keyed by ID and one
// ordered Partition per stage. Each task sits in exactly the partition that
// matches its Status.
//
// Store is single-writer and not safe for concurrent use; see Controller.
type Store struct {
	tasks      map[string]*models.Task
	partitions map[models.TaskStatus]*Partition
	now        func() time.Time
	newID      func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator sets the function used to assign task IDs on Create.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// NewStore creates an empty store with one partition per stage.
func NewStore(opts ...Option) *Store {
	s := &Store{
		tasks:      make(map[string]*models.Task),
		partitions: make(map[models.TaskStatus]*Partition, len(models.ValidTaskStatuses)),
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
	for _, stage := range models.ValidTaskStatuses {
		s.partitions[stage] = newPartition(stage)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create adds a task to the canonical map and to its stage partition, at the
// tail unless in.Position is set.
func (s *Store) Create(in models.TaskInput) (models.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.Task{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Status == "" {
		in.Status = models.TaskStatusTodo
	}
	if in.Priority == "" {
		in.Priority = models.TaskPriorityMedium
	}
	if !models.IsValidTaskStatus(string(in.Status)) {
		return models.Task{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}
	if !models.IsValidTaskPriority(string(in.Priority)) {
		return models.Task{}, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, in.Priority)
	}

	part := s.partitions[in.Status]
	index := part.Len()
	if in.Position != nil {
		index = *in.Position
		if index < 0 || index > part.Len() {
			return models.Task{}, fmt.Errorf("%w: position %d in %s (valid 0..%d)", ErrOutOfRange, index, in.Status, part.Len())
		}
	}

	id := s.newID()
	if id == "" {
		return models.Task{}, fmt.Errorf("id generator returned an empty id")
	}
	if _, exists := s.tasks[id]; exists {
		return models.Task{}, fmt.Errorf("id generator returned duplicate id %s", id)
	}

	now := s.now()
	task := models.Task{
		ID:                  id,
		Title:               in.Title,
		Description:         in.Description,
		Status:              in.Status,
		Priority:            in.Priority,
		Assignee:            in.Assignee,
		Project:             in.Project,
		CreatedAt:           now,
		UpdatedAt:           now,
		CreatedBy:           in.CreatedBy,
		NotificationEnabled: in.NotificationEnabled,
	}
	if in.DueDate != nil {
		due := *in.DueDate
		task.DueDate = &due
	}

	if err := part.InsertAt(index, id); err != nil {
		return models.Task{}, err
	}
	s.tasks[id] = &task
	return task.Clone(), nil
}

// Update merges patch into the task. A status change relocates the task to
// the tail of the new stage; otherwise its position is kept.
func (s *Store) Update(id string, patch models.TaskPatch) (models.Task, error) {
	current, part, index, err := s.locate(id)
	if err != nil {
		return models.Task{}, err
	}
	if err := validatePatch(patch); err != nil {
		return models.Task{}, err
	}

	next := current.Clone()
	applyPatch(&next, patch)
	next.UpdatedAt = s.now()

	if next.Status != current.Status {
		if _, err := part.RemoveAt(index); err != nil {
			return models.Task{}, err
		}
		s.partitions[next.Status].Append(id)
	}
	s.tasks[id] = &next
	return next.Clone(), nil
}

// Move removes the task from its partition and inserts it at index in the
// dest partition. The valid range for index is 0..len(dest) measured after
// the removal. Status and UpdatedAt change only when the stage does.
func (s *Store) Move(id string, dest models.TaskStatus, index int) (models.Task, error) {
	current, src, from, err := s.locate(id)
	if err != nil {
		return models.Task{}, err
	}
	dst, ok := s.partitions[dest]
	if !ok {
		return models.Task{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, dest)
	}

	bound := dst.Len()
	if dst == src {
		bound--
	}
	if index < 0 || index > bound {
		return models.Task{}, fmt.Errorf("%w: move index %d in %s (valid 0..%d)", ErrOutOfRange, index, dest, bound)
	}
	if dst == src && index == from {
		return current.Clone(), nil
	}

	if _, err := src.RemoveAt(from); err != nil {
		return models.Task{}, err
	}
	if err := dst.InsertAt(index, id); err != nil {
		// unreachable after the bound check; restore the source anyway
		_ = src.InsertAt(from, id)
		return models.Task{}, err
	}

	if current.Status != dest {
		next := current.Clone()
		next.Status = dest
		next.UpdatedAt = s.now()
		s.tasks[id] = &next
		return next.Clone(), nil
	}
	return current.Clone(), nil
}

// Delete removes the task from the canonical map and its partition.
// Deleting an ID twice returns ErrNotFound the second time.
func (s *Store) Delete(id string) error {
	_, part, index, err := s.locate(id)
	if err != nil {
		return err
	}
	if _, err := part.RemoveAt(index); err != nil {
		return err
	}
	delete(s.tasks, id)
	return nil
}

// Get returns a copy of the task.
func (s *Store) Get(id string) (models.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return t.Clone(), nil
}

// Partition returns copies of the tasks in stage, in board order.
// Unknown stages yield nil.
func (s *Store) Partition(stage models.TaskStatus) []models.Task {
	part, ok := s.partitions[stage]
	if !ok {
		return nil
	}
	out := make([]models.Task, 0, part.Len())
	for _, id := range part.ids {
		out = append(out, s.tasks[id].Clone())
	}
	return out
}

// IDs returns the ordered task IDs of stage.
func (s *Store) IDs(stage models.TaskStatus) []string {
	part, ok := s.partitions[stage]
	if !ok {
		return nil
	}
	return part.IDs()
}

// TaskAt resolves the task ID rendered at index of stage.
func (s *Store) TaskAt(stage models.TaskStatus, index int) (string, error) {
	part, ok := s.partitions[stage]
	if !ok {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, stage)
	}
	return part.At(index)
}

// Len returns the number of tasks in the canonical map.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Validate checks that the canonical map and the partitions describe the same
// task set, with every task in the one partition matching its status.
func (s *Store) Validate() error {
	seen := make(map[string]models.TaskStatus, len(s.tasks))
	for _, stage := range models.ValidTaskStatuses {
		for _, id := range s.partitions[stage].ids {
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("task %s listed in both %s and %s", id, prev, stage)
			}
			seen[id] = stage
			t, ok := s.tasks[id]
			if !ok {
				return fmt.Errorf("task %s in %s partition but not in canonical map", id, stage)
			}
			if t.Status != stage {
				return fmt.Errorf("task %s has status %s but sits in %s partition", id, t.Status, stage)
			}
		}
	}
	if len(seen) != len(s.tasks) {
		for id := range s.tasks {
			if _, ok := seen[id]; !ok {
				return fmt.Errorf("task %s in canonical map but in no partition", id)
			}
		}
	}
	return nil
}

// locate finds the canonical record, its partition and its index there.
func (s *Store) locate(id string) (*models.Task, *Partition, int, error) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, nil, -1, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	part := s.partitions[t.Status]
	index := part.IndexOf(id)
	if index < 0 {
		return nil, nil, -1, fmt.Errorf("task %s missing from %s partition", id, t.Status)
	}
	return t, part, index, nil
}

func validatePatch(p models.TaskPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}
	if p.Status != nil && !models.IsValidTaskStatus(string(*p.Status)) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *p.Status)
	}
	if p.Priority != nil && !models.IsValidTaskPriority(string(*p.Priority)) {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *p.Priority)
	}
	return nil
}

func applyPatch(t *models.Task, p models.TaskPatch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.Project != nil {
		t.Project = *p.Project
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	if p.NotificationEnabled != nil {
		t.NotificationEnabled = *p.NotificationEnabled
	}
}

package board

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/fitz/taskboard/internal/models"
)

// Location addresses a card by stage and zero-based index as rendered.
type Location struct {
	Stage models.TaskStatus `json:"stage"`
	Index int               `json:"index"`
}

// DragOutcome describes what OnDragEnd did with a gesture
type DragOutcome int

const (
	// DragNoop means the gesture required no change.
	DragNoop DragOutcome = iota
	// DragMoved means the task was moved.
	DragMoved
	// DragDiscarded means the gesture referred to stale board state and was dropped.
	DragDiscarded
)

func (o DragOutcome) String() string {
	switch o {
	case DragNoop:
		return "noop"
	case DragMoved:
		return "moved"
	case DragDiscarded:
		return "discarded"
	}
	return fmt.Sprintf("DragOutcome(%d)", int(o))
}

// DragResult reports the outcome of a drag gesture along with the board to
// render next.
type DragResult struct {
	Outcome DragOutcome
	TaskID  string
	From    models.TaskStatus
	To      models.TaskStatus
	Task    models.Task
	View    BoardView
	Err     error
}

// Controller is the board's entry point for the UI and the MCP tools. It
// serializes every call so that operations apply in the order issued.
type Controller struct {
	mu       sync.Mutex
	store    *Store
	notifier Notifier
	logger   *slog.Logger
}

// NewController creates a controller over store. A nil notifier discards
// notifications; a nil logger uses slog.Default().
func NewController(store *Store, notifier Notifier, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = Notifiers(nil)
	}
	return &Controller{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// BoardView returns the current per-stage task lists. It never mutates.
func (c *Controller) BoardView() BoardView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return projectView(c.store)
}

// OnDragEnd applies a drop. A nil destination or a drop back onto the source
// is a no-op. Stale gestures (unknown task, bad index) are discarded and the
// result carries a fresh view; they are never retried.
func (c *Controller) OnDragEnd(source Location, destination *Location) DragResult {
	c.mu.Lock()
	if destination == nil || *destination == source {
		res := DragResult{Outcome: DragNoop, From: source.Stage, View: projectView(c.store)}
		c.mu.Unlock()
		return res
	}

	res := DragResult{From: source.Stage, To: destination.Stage}
	id, err := c.store.TaskAt(source.Stage, source.Index)
	if err == nil {
		res.TaskID = id
		res.Task, err = c.store.Move(id, destination.Stage, destination.Index)
	}
	res.View = projectView(c.store)
	c.mu.Unlock()

	if err != nil {
		res.Outcome = DragDiscarded
		res.Err = err
		c.logger.Warn("drag discarded",
			"from", source.Stage, "from_index", source.Index,
			"to", destination.Stage, "to_index", destination.Index,
			"error", err)
		return res
	}

	res.Outcome = DragMoved
	c.logger.Debug("drag applied", "id", id, "from", source.Stage, "to", destination.Stage, "index", destination.Index)
	if source.Stage != destination.Stage {
		c.notify(Notification{
			Kind:    NotifyMoved,
			TaskID:  id,
			Message: fmt.Sprintf("Task moved to %s", destination.Stage.Title()),
		})
	}
	return res
}

// CreateTask adds a task and announces it.
func (c *Controller) CreateTask(in models.TaskInput) (models.Task, error) {
	c.mu.Lock()
	task, err := c.store.Create(in)
	c.mu.Unlock()
	if err != nil {
		return models.Task{}, err
	}
	c.notify(Notification{
		Kind:    NotifyCreated,
		TaskID:  task.ID,
		Message: fmt.Sprintf("Task %q created", task.Title),
	})
	return task, nil
}

// UpdateTask merges patch into the task and announces it.
func (c *Controller) UpdateTask(id string, patch models.TaskPatch) (models.Task, error) {
	c.mu.Lock()
	before, _ := c.store.Get(id)
	task, err := c.store.Update(id, patch)
	c.mu.Unlock()
	if err != nil {
		return models.Task{}, err
	}
	msg := fmt.Sprintf("Task %q updated", task.Title)
	if before.Status != task.Status {
		msg = fmt.Sprintf("Task %q updated and moved to %s", task.Title, task.Status.Title())
	}
	c.notify(Notification{Kind: NotifyUpdated, TaskID: task.ID, Message: msg})
	return task, nil
}

// MoveTask places the task at index of dest. Stage changes are announced.
func (c *Controller) MoveTask(id string, dest models.TaskStatus, index int) (models.Task, error) {
	c.mu.Lock()
	before, _ := c.store.Get(id)
	task, err := c.store.Move(id, dest, index)
	c.mu.Unlock()
	if err != nil {
		return models.Task{}, err
	}
	if before.Status != task.Status {
		c.notify(Notification{
			Kind:    NotifyMoved,
			TaskID:  task.ID,
			Message: fmt.Sprintf("Task moved to %s", task.Status.Title()),
		})
	}
	return task, nil
}

// DeleteTask removes the task and announces it.
func (c *Controller) DeleteTask(id string) error {
	c.mu.Lock()
	before, _ := c.store.Get(id)
	err := c.store.Delete(id)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.notify(Notification{
		Kind:    NotifyDeleted,
		TaskID:  id,
		Message: fmt.Sprintf("Task %q deleted", before.Title),
	})
	return nil
}

// GetTask returns a copy of the task.
func (c *Controller) GetTask(id string) (models.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Get(id)
}

// notify runs outside the lock and swallows notifier panics.
func (c *Controller) notify(n Notification) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("notifier failed", "kind", n.Kind, "task_id", n.TaskID, "panic", r)
		}
	}()
	c.notifier.Notify(n)
}

package board

import (
	"log/slog"
	"sync"
)

// NotificationKind identifies which operation produced a notification
type NotificationKind string

const (
	NotifyCreated NotificationKind = "created"
	NotifyUpdated NotificationKind = "updated"
	NotifyDeleted NotificationKind = "deleted"
	NotifyMoved   NotificationKind = "moved"
)

// Notification is a user-facing message about a successful store change.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	TaskID  string           `json:"task_id"`
	Message string           `json:"message"`
}

// Notifier receives fire-and-forget notifications. It cannot fail a
// mutation: the controller ignores whatever happens inside Notify.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// Notifiers fans a notification out to several notifiers in order.
type Notifiers []Notifier

// Notify delivers n to every notifier.
func (ns Notifiers) Notify(n Notification) {
	for _, notifier := range ns {
		if notifier != nil {
			notifier.Notify(n)
		}
	}
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify logs n at info level.
func (l LogNotifier) Notify(n Notification) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("notification", "kind", n.Kind, "task_id", n.TaskID, "message", n.Message)
}

// RecordingNotifier keeps the most recent notifications in memory.
type RecordingNotifier struct {
	mu    sync.Mutex
	limit int
	items []Notification
}

// NewRecordingNotifier keeps at most limit notifications (minimum 1).
func NewRecordingNotifier(limit int) *RecordingNotifier {
	if limit < 1 {
		limit = 1
	}
	return &RecordingNotifier{limit: limit}
}

// Notify records n, dropping the oldest entry when full.
func (r *RecordingNotifier) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
	if len(r.items) > r.limit {
		r.items = r.items[len(r.items)-r.limit:]
	}
}

// Last returns the newest notification, if any.
func (r *RecordingNotifier) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// All returns recorded notifications, oldest first.
func (r *RecordingNotifier) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

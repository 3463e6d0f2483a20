package board

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/fitz/taskboard/internal/models"
)

// stepClock advances one second on every reading.
type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func newTestStore(t *testing.T) (*Store, *stepClock) {
	t.Helper()
	clock := &stepClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	s := NewStore(WithClock(clock.Now), WithIDGenerator(sequentialIDs("T")))
	return s, clock
}

func mustCreate(t *testing.T, s *Store, title string, status models.TaskStatus) models.Task {
	t.Helper()
	task, err := s.Create(models.TaskInput{Title: title, Status: status})
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", title, err)
	}
	return task
}

func assertIDs(t *testing.T, s *Store, stage models.TaskStatus, want ...string) {
	t.Helper()
	got := s.IDs(stage)
	if want == nil {
		want = []string{}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s partition = %v, want %v", stage, got, want)
	}
}

func assertValid(t *testing.T, s *Store) {
	t.Helper()
	if err := s.Validate(); err != nil {
		t.Fatalf("store invariant broken: %v", err)
	}
}

// snapshot captures both views for byte-for-byte comparison.
type snapshot struct {
	partitions map[models.TaskStatus][]models.Task
	count      int
}

func takeSnapshot(s *Store) snapshot {
	snap := snapshot{partitions: make(map[models.TaskStatus][]models.Task), count: s.Len()}
	for _, stage := range models.ValidTaskStatuses {
		snap.partitions[stage] = s.Partition(stage)
	}
	return snap
}

func assertUnchanged(t *testing.T, before snapshot, s *Store) {
	t.Helper()
	after := takeSnapshot(s)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("store changed:\nbefore %+v\nafter  %+v", before, after)
	}
}

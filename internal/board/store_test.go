package board

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/fitz/taskboard/internal/models"
)

func TestStore_Scenarios(t *testing.T) {
	s, _ := newTestStore(t)

	// 1. create T1 in todo
	t1 := mustCreate(t, s, "Design login", models.TaskStatusTodo)
	assertIDs(t, s, models.TaskStatusTodo, t1.ID)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}

	// 2. move T1 to progress
	moved, err := s.Move(t1.ID, models.TaskStatusProgress, 0)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if moved.Status != models.TaskStatusProgress {
		t.Errorf("status = %s, want progress", moved.Status)
	}
	assertIDs(t, s, models.TaskStatusTodo)
	assertIDs(t, s, models.TaskStatusProgress, t1.ID)

	// 3. pure reorder inside todo
	t2 := mustCreate(t, s, "Write API docs", models.TaskStatusTodo)
	t3 := mustCreate(t, s, "Fix flaky test", models.TaskStatusTodo)
	assertIDs(t, s, models.TaskStatusTodo, t2.ID, t3.ID)
	if _, err := s.Move(t3.ID, models.TaskStatusTodo, 0); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	assertIDs(t, s, models.TaskStatusTodo, t3.ID, t2.ID)

	// 4. field update keeps position
	urgent := models.TaskPriorityUrgent
	updated, err := s.Update(t2.ID, models.TaskPatch{Priority: &urgent})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Priority != models.TaskPriorityUrgent {
		t.Errorf("priority = %s, want urgent", updated.Priority)
	}
	if !updated.UpdatedAt.After(t2.UpdatedAt) {
		t.Errorf("UpdatedAt did not advance: %v -> %v", t2.UpdatedAt, updated.UpdatedAt)
	}
	assertIDs(t, s, models.TaskStatusTodo, t3.ID, t2.ID)

	// 5. delete T3, then again
	if err := s.Delete(t3.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	assertIDs(t, s, models.TaskStatusTodo, t2.ID)
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if err := s.Delete(t3.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete: expected ErrNotFound, got %v", err)
	}

	// 6. unknown id leaves state alone
	before := takeSnapshot(s)
	if _, err := s.Move("unknown-id", models.TaskStatusTodo, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	assertUnchanged(t, before, s)
	assertValid(t, s)
}

func TestStore_CreateDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	task, err := s.Create(models.TaskInput{Title: "Plan sprint", CreatedBy: "u-admin"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if task.ID != "T1" {
		t.Errorf("ID = %q, want T1", task.ID)
	}
	if task.Status != models.TaskStatusTodo {
		t.Errorf("Status = %s, want todo", task.Status)
	}
	if task.Priority != models.TaskPriorityMedium {
		t.Errorf("Priority = %s, want medium", task.Priority)
	}
	if task.CreatedAt.IsZero() || !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Errorf("expected CreatedAt == UpdatedAt, got %v / %v", task.CreatedAt, task.UpdatedAt)
	}
	if task.CreatedBy != "u-admin" {
		t.Errorf("CreatedBy = %q", task.CreatedBy)
	}
}

func TestStore_CreateUsesUUIDByDefault(t *testing.T) {
	s := NewStore()
	a, err := s.Create(models.TaskInput{Title: "a"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	b, _ := s.Create(models.TaskInput{Title: "b"})
	if len(a.ID) != 36 || a.ID == b.ID {
		t.Errorf("expected distinct uuid ids, got %q and %q", a.ID, b.ID)
	}
}

func TestStore_CreateInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input models.TaskInput
	}{
		{"empty title", models.TaskInput{}},
		{"blank title", models.TaskInput{Title: "   "}},
		{"unknown status", models.TaskInput{Title: "x", Status: "blocked"}},
		{"unknown priority", models.TaskInput{Title: "x", Priority: "critical"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestStore(t)
			_, err := s.Create(tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if s.Len() != 0 {
				t.Errorf("store should stay empty, Len() = %d", s.Len())
			}
		})
	}
}

func TestStore_CreateAtPosition(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustCreate(t, s, "a", models.TaskStatusReview)
	b := mustCreate(t, s, "b", models.TaskStatusReview)

	zero := 0
	c, err := s.Create(models.TaskInput{Title: "c", Status: models.TaskStatusReview, Position: &zero})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	assertIDs(t, s, models.TaskStatusReview, c.ID, a.ID, b.ID)

	tooFar := 4
	before := takeSnapshot(s)
	if _, err := s.Create(models.TaskInput{Title: "d", Status: models.TaskStatusReview, Position: &tooFar}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	assertUnchanged(t, before, s)
}

func TestStore_CreateRejectsDuplicateID(t *testing.T) {
	s := NewStore(WithIDGenerator(func() string { return "same" }))
	if _, err := s.Create(models.TaskInput{Title: "first"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := s.Create(models.TaskInput{Title: "second"}); err == nil {
		t.Fatal("expected duplicate id error")
	}
	assertIDs(t, s, models.TaskStatusTodo, "same")
	assertValid(t, s)
}

func TestStore_UpdateStatusAppendsToTail(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustCreate(t, s, "a", models.TaskStatusTodo)
	b := mustCreate(t, s, "b", models.TaskStatusReview)
	c := mustCreate(t, s, "c", models.TaskStatusReview)

	review := models.TaskStatusReview
	updated, err := s.Update(a.ID, models.TaskPatch{Status: &review})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != models.TaskStatusReview {
		t.Errorf("Status = %s, want review", updated.Status)
	}
	assertIDs(t, s, models.TaskStatusTodo)
	assertIDs(t, s, models.TaskStatusReview, b.ID, c.ID, a.ID)
	assertValid(t, s)
}

func TestStore_UpdateSameStatusKeepsPosition(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustCreate(t, s, "a", models.TaskStatusTodo)
	b := mustCreate(t, s, "b", models.TaskStatusTodo)

	todo := models.TaskStatusTodo
	title := "a, renamed"
	if _, err := s.Update(a.ID, models.TaskPatch{Status: &todo, Title: &title}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	assertIDs(t, s, models.TaskStatusTodo, a.ID, b.ID)
	got, _ := s.Get(a.ID)
	if got.Title != title {
		t.Errorf("Title = %q, want %q", got.Title, title)
	}
}

func TestStore_UpdateMergesFields(t *testing.T) {
	s, _ := newTestStore(t)
	due := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	created, err := s.Create(models.TaskInput{
		Title:       "Quarterly report",
		Description: "numbers",
		Assignee:    "u-1",
		Project:     "p-1",
		DueDate:     &due,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	assignee := "u-2"
	enabled := true
	updated, err := s.Update(created.ID, models.TaskPatch{Assignee: &assignee, NotificationEnabled: &enabled})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Assignee != "u-2" || !updated.NotificationEnabled {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.Description != "numbers" || updated.Project != "p-1" || updated.DueDate == nil {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt changed")
	}

	cleared, err := s.Update(created.ID, models.TaskPatch{ClearDueDate: true})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if cleared.DueDate != nil {
		t.Errorf("expected due date cleared, got %v", cleared.DueDate)
	}
}

func TestStore_UpdateErrors(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustCreate(t, s, "a", models.TaskStatusTodo)
	before := takeSnapshot(s)

	empty := ""
	bogusStatus := models.TaskStatus("archived")
	bogusPriority := models.TaskPriority("p0")

	tests := []struct {
		name  string
		id    string
		patch models.TaskPatch
		want  error
	}{
		{"unknown id", "nope", models.TaskPatch{}, ErrNotFound},
		{"empty title", a.ID, models.TaskPatch{Title: &empty}, ErrInvalidInput},
		{"bad status", a.ID, models.TaskPatch{Status: &bogusStatus}, ErrInvalidInput},
		{"bad priority", a.ID, models.TaskPatch{Priority: &bogusPriority}, ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Update(tc.id, tc.patch); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			assertUnchanged(t, before, s)
		})
	}
}

func TestStore_MoveBounds(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustCreate(t, s, "a", models.TaskStatusTodo)
	mustCreate(t, s, "b", models.TaskStatusTodo)
	mustCreate(t, s, "c", models.TaskStatusProgress)

	tests := []struct {
		name  string
		dest  models.TaskStatus
		index int
		ok    bool
	}{
		{"same stage last slot", models.TaskStatusTodo, 1, true},
		{"same stage past end", models.TaskStatusTodo, 2, false},
		{"other stage tail", models.TaskStatusProgress, 1, true},
		{"other stage past tail", models.TaskStatusProgress, 2, false},
		{"empty stage head", models.TaskStatusCompleted, 0, true},
		{"empty stage past head", models.TaskStatusCompleted, 1, false},
		{"negative", models.TaskStatusProgress, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// restore a to the head of todo for each case
			if cur, _ := s.Get(a.ID); cur.Status != models.TaskStatusTodo || s.IDs(models.TaskStatusTodo)[0] != a.ID {
				if _, err := s.Move(a.ID, models.TaskStatusTodo, 0); err != nil {
					t.Fatalf("reset failed: %v", err)
				}
			}
			before := takeSnapshot(s)
			_, err := s.Move(a.ID, tc.dest, tc.index)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got := s.IDs(tc.dest)[tc.index]; got != a.ID {
					t.Errorf("%s[%d] = %s, want %s", tc.dest, tc.index, got, a.ID)
				}
			} else {
				if !errors.Is(err, ErrOutOfRange) {
					t.Fatalf("expected ErrOutOfRange, got %v", err)
				}
				assertUnchanged(t, before, s)
			}
			assertValid(t, s)
		})
	}
}

func TestStore_MoveUnknownStage(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustCreate(t, s, "a", models.TaskStatusTodo)
	before := takeSnapshot(s)
	if _, err := s.Move(a.ID, "backlog", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	assertUnchanged(t, before, s)
}

func TestStore_MoveNoopIsIdentical(t *testing.T) {
	s, _ := newTestStore(t)
	mustCreate(t, s, "a", models.TaskStatusTodo)
	b := mustCreate(t, s, "b", models.TaskStatusTodo)
	mustCreate(t, s, "c", models.TaskStatusTodo)

	before := takeSnapshot(s)
	got, err := s.Move(b.ID, models.TaskStatusTodo, 1)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !got.UpdatedAt.Equal(b.UpdatedAt) {
		t.Errorf("no-op move touched UpdatedAt")
	}
	assertUnchanged(t, before, s)
}

func TestStore_MoveChangesOnlyStageAndOrder(t *testing.T) {
	s, _ := newTestStore(t)
	due := time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)
	orig, err := s.Create(models.TaskInput{
		Title:               "Ship release",
		Description:         "tag and publish",
		Priority:            models.TaskPriorityHigh,
		Assignee:            "u-3",
		Project:             "p-2",
		DueDate:             &due,
		CreatedBy:           "u-admin",
		NotificationEnabled: true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	moved, err := s.Move(orig.ID, models.TaskStatusReview, 0)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if moved.Status != models.TaskStatusReview {
		t.Errorf("Status = %s, want review", moved.Status)
	}
	if !moved.UpdatedAt.After(orig.UpdatedAt) {
		t.Errorf("UpdatedAt did not advance")
	}

	// everything else must match the original record
	moved.Status = orig.Status
	moved.UpdatedAt = orig.UpdatedAt
	if moved.Title != orig.Title || moved.Description != orig.Description ||
		moved.Priority != orig.Priority || moved.Assignee != orig.Assignee ||
		moved.Project != orig.Project || !moved.DueDate.Equal(*orig.DueDate) ||
		!moved.CreatedAt.Equal(orig.CreatedAt) || moved.CreatedBy != orig.CreatedBy ||
		moved.NotificationEnabled != orig.NotificationEnabled {
		t.Errorf("move changed unrelated fields:\norig  %+v\nmoved %+v", orig, moved)
	}
}

func TestStore_ReorderKeepsUpdatedAt(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustCreate(t, s, "a", models.TaskStatusTodo)
	mustCreate(t, s, "b", models.TaskStatusTodo)

	got, err := s.Move(a.ID, models.TaskStatusTodo, 1)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !got.UpdatedAt.Equal(a.UpdatedAt) {
		t.Errorf("pure reorder changed UpdatedAt: %v -> %v", a.UpdatedAt, got.UpdatedAt)
	}
}

func TestStore_DeletedTaskRejectsEverything(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustCreate(t, s, "a", models.TaskStatusProgress)
	if err := s.Delete(a.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	title := "again"
	if _, err := s.Update(a.ID, models.TaskPatch{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Move(a.ID, models.TaskStatusTodo, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("Move: expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Get(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}
	assertIDs(t, s, models.TaskStatusProgress)
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	s, _ := newTestStore(t)
	due := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	a, _ := s.Create(models.TaskInput{Title: "a", DueDate: &due})

	tasks := s.Partition(models.TaskStatusTodo)
	tasks[0].Title = "hacked"
	*tasks[0].DueDate = due.Add(time.Hour)

	got, _ := s.Get(a.ID)
	if got.Title != "a" || !got.DueDate.Equal(due) {
		t.Errorf("store state mutated through a read: %+v", got)
	}
	if s.Partition("nope") != nil || s.IDs("nope") != nil {
		t.Errorf("unknown stage should yield nil")
	}
}

func TestStore_TaskAt(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustCreate(t, s, "a", models.TaskStatusTodo)

	id, err := s.TaskAt(models.TaskStatusTodo, 0)
	if err != nil || id != a.ID {
		t.Fatalf("TaskAt = %q, %v", id, err)
	}
	if _, err := s.TaskAt(models.TaskStatusTodo, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := s.TaskAt("nope", 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStore_ValidateDetectsCorruption(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustCreate(t, s, "a", models.TaskStatusTodo)

	s.partitions[models.TaskStatusReview].Append(a.ID)
	if err := s.Validate(); err == nil {
		t.Error("expected duplicate partition membership to be reported")
	}
	s.partitions[models.TaskStatusReview].RemoveAt(0)

	s.partitions[models.TaskStatusTodo].RemoveAt(0)
	if err := s.Validate(); err == nil {
		t.Error("expected canonical-only task to be reported")
	}
	s.partitions[models.TaskStatusTodo].Append(a.ID)

	s.tasks[a.ID].Status = models.TaskStatusCompleted
	if err := s.Validate(); err == nil {
		t.Error("expected status/partition mismatch to be reported")
	}
	s.tasks[a.ID].Status = models.TaskStatusTodo

	s.partitions[models.TaskStatusTodo].Append("ghost")
	if err := s.Validate(); err == nil {
		t.Error("expected partition-only task to be reported")
	}
}

func TestStore_RandomOperationsPreserveInvariant(t *testing.T) {
	s, _ := newTestStore(t)
	rng := rand.New(rand.NewSource(42))
	var ids []string

	pickStage := func() models.TaskStatus {
		return models.ValidTaskStatuses[rng.Intn(len(models.ValidTaskStatuses))]
	}
	pickID := func() string {
		if len(ids) == 0 || rng.Intn(10) == 0 {
			return "missing"
		}
		return ids[rng.Intn(len(ids))]
	}

	for step := 0; step < 2000; step++ {
		switch rng.Intn(4) {
		case 0:
			task, err := s.Create(models.TaskInput{Title: "task", Status: pickStage()})
			if err != nil {
				t.Fatalf("step %d: Create failed: %v", step, err)
			}
			ids = append(ids, task.ID)
		case 1:
			stage := pickStage()
			_, err := s.Update(pickID(), models.TaskPatch{Status: &stage})
			if err != nil && !errors.Is(err, ErrNotFound) {
				t.Fatalf("step %d: Update failed: %v", step, err)
			}
		case 2:
			stage := pickStage()
			_, err := s.Move(pickID(), stage, rng.Intn(len(s.IDs(stage))+2))
			if err != nil && !IsDesync(err) {
				t.Fatalf("step %d: Move failed: %v", step, err)
			}
		case 3:
			if rng.Intn(3) != 0 {
				continue
			}
			id := pickID()
			if err := s.Delete(id); err != nil && !errors.Is(err, ErrNotFound) {
				t.Fatalf("step %d: Delete failed: %v", step, err)
			}
		}

		if err := s.Validate(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		total := 0
		for _, stage := range models.ValidTaskStatuses {
			for _, task := range s.Partition(stage) {
				if task.Status != stage {
					t.Fatalf("step %d: task %s status %s in %s column", step, task.ID, task.Status, stage)
				}
			}
			total += len(s.IDs(stage))
		}
		if total != s.Len() {
			t.Fatalf("step %d: partitions hold %d tasks, canonical map %d", step, total, s.Len())
		}
	}
}

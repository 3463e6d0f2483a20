package board

import "github.com/fitz/taskboard/internal/models"

// Column is one stage of the board, ready to render.
type Column struct {
	Stage models.TaskStatus `json:"stage"`
	Title string            `json:"title"`
	Tasks []models.Task     `json:"tasks"`
	Count int               `json:"count"`
}

// BoardView is a read-only projection of the store: four columns in stage order.
type BoardView struct {
	Columns []Column `json:"columns"`
	Total   int      `json:"total"`
}

// Column returns the column for stage.
func (v BoardView) Column(stage models.TaskStatus) (Column, bool) {
	for _, col := range v.Columns {
		if col.Stage == stage {
			return col, true
		}
	}
	return Column{}, false
}

// Counts returns the per-stage task counts.
func (v BoardView) Counts() map[models.TaskStatus]int {
	counts := make(map[models.TaskStatus]int, len(v.Columns))
	for _, col := range v.Columns {
		counts[col.Stage] = col.Count
	}
	return counts
}

func projectView(s *Store) BoardView {
	view := BoardView{Columns: make([]Column, 0, len(models.ValidTaskStatuses))}
	for _, stage := range models.ValidTaskStatuses {
		tasks := s.Partition(stage)
		view.Columns = append(view.Columns, Column{
			Stage: stage,
			Title: stage.Title(),
			Tasks: tasks,
			Count: len(tasks),
		})
		view.Total += len(tasks)
	}
	return view
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fitz/taskboard/internal/board"
	"github.com/fitz/taskboard/internal/models"
)

const defaultColumnWidth = 26

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Task Board"))
	b.WriteString(subtleStyle.Render(fmt.Sprintf("  %d tasks", m.view.Total)))
	b.WriteString("\n\n")

	cols := make([]string, 0, len(m.view.Columns))
	for i, col := range m.view.Columns {
		cols = append(cols, m.renderColumn(i, col))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n")

	switch m.mode {
	case modeCreate:
		b.WriteString(fmt.Sprintf("New task in %s: %s\n", m.stage(m.col).Title(), m.input.View()))
	case modeEdit:
		b.WriteString(fmt.Sprintf("Rename: %s\n", m.input.View()))
	case modeDrag:
		b.WriteString(subtleStyle.Render(fmt.Sprintf("Moving to %s #%d", m.target.Stage.Title(), m.target.Index+1)))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) columnWidth() int {
	if m.width == 0 || len(m.view.Columns) == 0 {
		return defaultColumnWidth
	}
	// border and padding take four cells per column
	w := m.width/len(m.view.Columns) - 4
	if w < 12 {
		w = 12
	}
	return w
}

func (m Model) renderColumn(i int, col board.Column) string {
	width := m.columnWidth()
	dragging := m.mode == modeDrag

	lines := []string{titleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, col.Count)), ""}

	// While dragging, cards are laid out as they would be after removal so
	// that the drop marker sits at the index OnDragEnd will receive.
	visible := 0
	for j, task := range col.Tasks {
		if dragging && col.Stage == m.source.Stage && j == m.source.Index {
			lines = append(lines, draggedCardStyle.Width(width).Render(task.Title))
			continue
		}
		if dragging && col.Stage == m.target.Stage && visible == m.target.Index {
			lines = append(lines, dropTargetStyle.Render("▸ drop here"))
		}
		lines = append(lines, m.renderCard(task, !dragging && i == m.col && j == m.row, width))
		visible++
	}
	if dragging && col.Stage == m.target.Stage && visible == m.target.Index {
		lines = append(lines, dropTargetStyle.Render("▸ drop here"))
	}
	if len(col.Tasks) == 0 && !(dragging && col.Stage == m.target.Stage) {
		lines = append(lines, subtleStyle.Render("No tasks"))
	}

	style := columnStyle
	if (!dragging && i == m.col) || (dragging && col.Stage == m.target.Stage) {
		style = focusedColumnStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderCard(task models.Task, selected bool, width int) string {
	meta := priorityStyles[string(task.Priority)].Render(string(task.Priority))
	if task.Assignee != "" {
		meta += subtleStyle.Render(" · " + m.dir.MemberName(task.Assignee))
	}
	if task.DueDate != nil {
		meta += subtleStyle.Render(" · " + task.DueDate.Format("Jan 2"))
	}
	body := task.Title + "\n" + meta
	if selected {
		return selectedCardStyle.Width(width).Render(body)
	}
	return cardStyle.Width(width).Render(body)
}

func (m Model) statusLine() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	if last, ok := m.toasts.Last(); ok {
		return statusStyle.Render(last.Message)
	}
	return ""
}

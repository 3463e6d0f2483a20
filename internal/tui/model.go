// Package tui renders the board in the terminal and turns key presses into
// controller calls. Drag-and-drop is modelled as pick up, move, drop.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitz/taskboard/internal/board"
	"github.com/fitz/taskboard/internal/directory"
	"github.com/fitz/taskboard/internal/models"
)

type mode int

const (
	modeBrowse mode = iota
	modeDrag
	modeCreate
	modeEdit
)

// Options configures a Model.
type Options struct {
	Controller *board.Controller
	Directory  *directory.Directory
	// Toasts is read for the status line. It should also be registered as
	// one of the controller's notifiers.
	Toasts *board.RecordingNotifier
	// User is stamped as CreatedBy on tasks created from the board.
	User string
}

// Model is the board screen.
type Model struct {
	ctrl   *board.Controller
	dir    *directory.Directory
	toasts *board.RecordingNotifier
	user   string

	view   board.BoardView
	col    int
	row    int
	mode   mode
	source board.Location
	target board.Location
	editID string

	input  textinput.Model
	help   help.Model
	keys   keyMap
	errMsg string

	width  int
	height int
}

// New creates the board screen.
func New(opts Options) Model {
	if opts.Directory == nil {
		opts.Directory = directory.New(nil, nil)
	}
	if opts.Toasts == nil {
		opts.Toasts = board.NewRecordingNotifier(1)
	}

	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.CharLimit = 200
	ti.Width = 40

	return Model{
		ctrl:   opts.Controller,
		dir:    opts.Directory,
		toasts: opts.Toasts,
		user:   opts.User,
		view:   opts.Controller.BoardView(),
		input:  ti,
		help:   help.New(),
		keys:   defaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeDrag:
			return m.updateDrag(msg)
		case modeCreate, modeEdit:
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
		m.clampRow()
	case key.Matches(msg, m.keys.Right):
		if m.col < len(m.view.Columns)-1 {
			m.col++
		}
		m.clampRow()
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < m.columnLen(m.col)-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Grab):
		if m.columnLen(m.col) == 0 {
			return m, nil
		}
		m.source = board.Location{Stage: m.stage(m.col), Index: m.row}
		m.target = m.source
		m.mode = modeDrag
		m.errMsg = ""
	case key.Matches(msg, m.keys.New):
		m.mode = modeCreate
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Edit):
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeEdit
		m.editID = task.ID
		m.input.SetValue(task.Title)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Priority):
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		next := task.Priority.Next()
		_, err := m.ctrl.UpdateTask(task.ID, models.TaskPatch{Priority: &next})
		m.afterMutation(err)
	case key.Matches(msg, m.keys.Delete):
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.afterMutation(m.ctrl.DeleteTask(task.ID))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		res := m.ctrl.OnDragEnd(m.source, nil)
		m.finishDrag(res)
	case key.Matches(msg, m.keys.Drop):
		target := m.target
		res := m.ctrl.OnDragEnd(m.source, &target)
		m.finishDrag(res)
	case key.Matches(msg, m.keys.Left):
		if i := m.stageIndex(m.target.Stage); i > 0 {
			m.target.Stage = m.stage(i - 1)
		}
		m.clampTarget()
	case key.Matches(msg, m.keys.Right):
		if i := m.stageIndex(m.target.Stage); i < len(m.view.Columns)-1 {
			m.target.Stage = m.stage(i + 1)
		}
		m.clampTarget()
	case key.Matches(msg, m.keys.Up):
		if m.target.Index > 0 {
			m.target.Index--
		}
	case key.Matches(msg, m.keys.Down):
		if m.target.Index < m.maxTargetIndex() {
			m.target.Index++
		}
	}
	return m, nil
}

func (m *Model) finishDrag(res board.DragResult) {
	m.view = res.View
	m.mode = modeBrowse
	switch res.Outcome {
	case board.DragMoved:
		m.errMsg = ""
		m.col = m.stageIndex(res.Task.Status)
		m.row = m.target.Index
	case board.DragDiscarded:
		m.errMsg = "Board changed, drag discarded"
		if errors.Is(res.Err, board.ErrInvalidInput) {
			m.errMsg = fmt.Sprintf("Drag discarded: %v", res.Err)
		}
	}
	m.clampRow()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		title := strings.TrimSpace(m.input.Value())
		creating := m.mode == modeCreate
		var err error
		if creating {
			_, err = m.ctrl.CreateTask(models.TaskInput{
				Title:     title,
				Status:    m.stage(m.col),
				CreatedBy: m.user,
			})
		} else {
			_, err = m.ctrl.UpdateTask(m.editID, models.TaskPatch{Title: &title})
		}
		if errors.Is(err, board.ErrInvalidInput) {
			// keep the form open so the title can be fixed
			m.errMsg = "Title cannot be empty"
			return m, nil
		}
		m.mode = modeBrowse
		m.input.Blur()
		m.afterMutation(err)
		if creating && err == nil {
			m.row = m.columnLen(m.col) - 1
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// afterMutation refreshes the view and records err for the status line.
func (m *Model) afterMutation(err error) {
	m.view = m.ctrl.BoardView()
	m.errMsg = ""
	if err != nil {
		m.errMsg = err.Error()
	}
	m.clampRow()
}

func (m Model) stage(col int) models.TaskStatus {
	if col < 0 || col >= len(m.view.Columns) {
		return ""
	}
	return m.view.Columns[col].Stage
}

func (m Model) stageIndex(stage models.TaskStatus) int {
	for i, col := range m.view.Columns {
		if col.Stage == stage {
			return i
		}
	}
	return 0
}

func (m Model) columnLen(col int) int {
	if col < 0 || col >= len(m.view.Columns) {
		return 0
	}
	return len(m.view.Columns[col].Tasks)
}

func (m Model) selected() (models.Task, bool) {
	if m.row < 0 || m.row >= m.columnLen(m.col) {
		return models.Task{}, false
	}
	return m.view.Columns[m.col].Tasks[m.row], true
}

func (m *Model) clampRow() {
	if n := m.columnLen(m.col); m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

// maxTargetIndex is the last valid drop index, counted after the dragged
// card leaves its column.
func (m Model) maxTargetIndex() int {
	n := m.columnLen(m.stageIndex(m.target.Stage))
	if m.target.Stage == m.source.Stage {
		return n - 1
	}
	return n
}

func (m *Model) clampTarget() {
	if last := m.maxTargetIndex(); m.target.Index > last {
		m.target.Index = last
	}
	if m.target.Index < 0 {
		m.target.Index = 0
	}
}

// Cursor returns the focused column and row.
func (m Model) Cursor() (int, int) {
	return m.col, m.row
}

// Dragging reports whether a card is picked up, and where it would land.
func (m Model) Dragging() (board.Location, board.Location, bool) {
	return m.source, m.target, m.mode == modeDrag
}

// Editing reports whether the title form is open.
func (m Model) Editing() bool {
	return m.mode == modeCreate || m.mode == modeEdit
}

// Board returns the view currently rendered.
func (m Model) Board() board.BoardView {
	return m.view
}

// Err returns the message shown in the status line for the last failure.
func (m Model) Err() string {
	return m.errMsg
}

// Package tui implements the terminal board view on top of the board
// client: columns and cards, a search filter, create/edit/delete dialogs,
// and pick-up/drop task moves with optimistic local updates.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fyrsmithlabs/boardd/internal/board"
	"github.com/fyrsmithlabs/boardd/internal/column"
	"github.com/fyrsmithlabs/boardd/internal/task"
)

// mode is the current interaction state of the board view.
type mode int

const (
	modeBoard mode = iota
	modeSearch
	modeMove
	modeTaskDialog
	modeColumnDialog
	modeConfirmDeleteTask
	modeConfirmDeleteColumn
)

// Message types.
type tickMsg time.Time
type snapshotMsg *board.Snapshot
type fetchErrMsg struct{ err error }
type mutationMsg struct{ err error }
type moveResultMsg struct {
	refetch bool
	err     error
}

// Model is the bubbletea model for the board view.
type Model struct {
	client   *board.Client
	interval time.Duration

	snap    *board.Snapshot
	loading bool
	lastErr error

	mode    mode
	colIdx  int
	cardIdx int

	search textinput.Model
	picked board.MoveMessage

	taskDlg     taskDialog
	colDlg      columnDialog
	deleteColID string

	quitting bool
}

// NewModel creates the board model polling at the given interval.
func NewModel(client *board.Client, interval time.Duration) Model {
	search := textinput.New()
	search.Placeholder = "Filter tasks..."
	search.CharLimit = 80

	return Model{
		client:   client,
		interval: interval,
		loading:  true,
		search:   search,
	}
}

// Init starts the first fetch and the poll ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), m.fetchCmd())
}

// tick creates a tick command for the poll interval.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchCmd refetches the full board state.
func (m Model) fetchCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		snap, err := board.FetchAll(ctx, client)
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return snapshotMsg(snap)
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Unconditional poll while the board is mounted. A poll and a
		// user mutation can race; whichever response lands last wins.
		return m, tea.Batch(tick(m.interval), m.fetchCmd())

	case snapshotMsg:
		m.snap = (*board.Snapshot)(msg)
		m.loading = false
		m.lastErr = nil
		m.clampSelection()
		return m, nil

	case fetchErrMsg:
		// Keep the stale snapshot; the next poll may heal it.
		m.lastErr = msg.err
		return m, nil

	case mutationMsg:
		if msg.err != nil {
			m.lastErr = msg.err
		}
		return m, m.fetchCmd()

	case moveResultMsg:
		if msg.err != nil {
			m.lastErr = msg.err
		}
		if msg.refetch {
			return m, m.fetchCmd()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeBoard:
		return m.handleBoardKey(msg)
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeMove:
		return m.handleMoveKey(msg)
	case modeTaskDialog:
		return m.handleTaskDialogKey(msg)
	case modeColumnDialog:
		return m.handleColumnDialogKey(msg)
	case modeConfirmDeleteTask:
		return m.handleConfirmDeleteTaskKey(msg)
	case modeConfirmDeleteColumn:
		return m.handleConfirmDeleteColumnKey(msg)
	}
	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "r":
		return m, m.fetchCmd()
	case "left", "h":
		if m.colIdx > 0 {
			m.colIdx--
			m.cardIdx = 0
		}
	case "right", "l":
		if m.colIdx < len(m.columns())-1 {
			m.colIdx++
			m.cardIdx = 0
		}
	case "up", "k":
		if m.cardIdx > 0 {
			m.cardIdx--
		}
	case "down", "j":
		if m.cardIdx < len(m.selectedColumnTasks())-1 {
			m.cardIdx++
		}
	case "/":
		m.mode = modeSearch
		m.search.Focus()
		return m, textinput.Blink
	case "a":
		if col := m.selectedColumn(); col != nil {
			m.taskDlg = newTaskDialog(nil, col.ID)
			m.mode = modeTaskDialog
			return m, textinput.Blink
		}
	case "enter":
		if t := m.selectedTask(); t != nil {
			m.taskDlg = newTaskDialog(t, t.ColumnID)
			m.mode = modeTaskDialog
			return m, textinput.Blink
		}
	case "m", " ":
		if t := m.selectedTask(); t != nil {
			m.picked = board.MoveMessage{TaskID: t.ID, FromColumnID: t.ColumnID}
			m.mode = modeMove
		}
	case "c":
		m.colDlg = newColumnDialog()
		m.mode = modeColumnDialog
		return m, textinput.Blink
	case "X":
		if col := m.selectedColumn(); col != nil {
			m.deleteColID = col.ID
			m.mode = modeConfirmDeleteColumn
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.mode = modeBoard
		m.search.Blur()
		m.cardIdx = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleMoveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBoard
		m.picked = board.MoveMessage{}
		return m, nil
	case "left", "h":
		if m.colIdx > 0 {
			m.colIdx--
		}
		return m, nil
	case "right", "l":
		if m.colIdx < len(m.columns())-1 {
			m.colIdx++
		}
		return m, nil
	case "enter", " ":
		col := m.selectedColumn()
		if col == nil {
			m.mode = modeBoard
			return m, nil
		}
		picked := m.picked
		m.mode = modeBoard
		m.picked = board.MoveMessage{}
		m.cardIdx = 0

		// The optimistic flip happens here, on the UI goroutine, so
		// it is visible immediately and the command goroutine never
		// touches the snapshot being rendered.
		if picked.Validate() == nil && picked.FromColumnID != col.ID {
			m.snap.ApplyMove(picked.TaskID, col.ID)
		}
		return m, m.moveCmd(picked, col.ID)
	}
	return m, nil
}

func (m Model) handleTaskDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBoard
		return m, nil
	case "tab":
		m.taskDlg.nextField()
		return m, nil
	case "ctrl+p":
		m.taskDlg.cyclePriority()
		return m, nil
	case "ctrl+d":
		if m.taskDlg.editing != nil {
			m.mode = modeConfirmDeleteTask
		}
		return m, nil
	case "ctrl+s", "enter":
		// Enter inside the description textarea inserts a newline
		// instead of submitting.
		if msg.String() == "enter" && m.taskDlg.focus == 1 {
			break
		}
		if !m.taskDlg.CanSave() {
			return m, nil
		}
		dlg := m.taskDlg
		m.mode = modeBoard
		if dlg.editing != nil {
			return m, m.updateTaskCmd(dlg.updateRequest())
		}
		return m, m.createTaskCmd(dlg.createRequest())
	}

	var cmd tea.Cmd
	m.taskDlg, cmd = m.taskDlg.update(msg)
	return m, cmd
}

func (m Model) handleColumnDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBoard
		return m, nil
	case "left":
		m.colDlg.prevColor()
		return m, nil
	case "right":
		m.colDlg.nextColor()
		return m, nil
	case "enter":
		if !m.colDlg.CanSave() {
			return m, nil
		}
		req := m.colDlg.createRequest()
		m.mode = modeBoard
		m.colDlg = newColumnDialog()
		return m, m.createColumnCmd(req)
	}

	var cmd tea.Cmd
	m.colDlg, cmd = m.colDlg.update(msg)
	return m, cmd
}

func (m Model) handleConfirmDeleteTaskKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		id := m.taskDlg.editing.ID
		m.mode = modeBoard
		return m, m.deleteTaskCmd(id)
	case "n", "esc":
		m.mode = modeTaskDialog
	}
	return m, nil
}

func (m Model) handleConfirmDeleteColumnKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		id := m.deleteColID
		m.mode = modeBoard
		m.deleteColID = ""
		m.colIdx = 0
		return m, m.deleteColumnCmd(id)
	case "n", "esc":
		m.mode = modeBoard
		m.deleteColID = ""
	}
	return m, nil
}

// Mutation commands. Each reports back through mutationMsg, which always
// triggers a refetch, mirroring the web client's fetch-after-mutate.

func (m Model) createTaskCmd(req *task.CreateRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := client.CreateTask(ctx, req)
		return mutationMsg{err: err}
	}
}

func (m Model) updateTaskCmd(req *task.UpdateRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := client.UpdateTask(ctx, req)
		return mutationMsg{err: err}
	}
}

func (m Model) deleteTaskCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return mutationMsg{err: client.DeleteTask(ctx, id)}
	}
}

func (m Model) createColumnCmd(req *column.CreateRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := client.CreateColumn(ctx, req)
		return mutationMsg{err: err}
	}
}

func (m Model) deleteColumnCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return mutationMsg{err: client.DeleteColumn(ctx, id)}
	}
}

// moveCmd issues the server update for a drop whose optimistic flip has
// already been applied. A rejected move is reconciled by the refetch the
// command requests.
func (m Model) moveCmd(msg board.MoveMessage, toColumnID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		refetch, err := board.Move(ctx, client, msg, toColumnID)
		return moveResultMsg{refetch: refetch, err: err}
	}
}

// Selection helpers.

func (m Model) columns() []column.Column {
	if m.snap == nil {
		return nil
	}
	return m.snap.Columns
}

func (m Model) selectedColumn() *column.Column {
	cols := m.columns()
	if m.colIdx < 0 || m.colIdx >= len(cols) {
		return nil
	}
	return &cols[m.colIdx]
}

// visibleTasks applies the search filter to the snapshot's tasks.
func (m Model) visibleTasks() []task.Task {
	if m.snap == nil {
		return nil
	}
	return board.Filter(m.snap.Tasks, m.search.Value())
}

// groups buckets the visible tasks by column, dropping orphans.
func (m Model) groups() map[string][]task.Task {
	if m.snap == nil {
		return nil
	}
	return board.GroupByColumn(m.visibleTasks(), m.snap.Columns)
}

func (m Model) selectedColumnTasks() []task.Task {
	col := m.selectedColumn()
	if col == nil {
		return nil
	}
	return m.groups()[col.ID]
}

func (m Model) selectedTask() *task.Task {
	tasks := m.selectedColumnTasks()
	if m.cardIdx < 0 || m.cardIdx >= len(tasks) {
		return nil
	}
	return &tasks[m.cardIdx]
}

// clampSelection keeps the selection in range after a refetch changes the
// column or task counts.
func (m *Model) clampSelection() {
	cols := m.columns()
	if m.colIdx >= len(cols) {
		m.colIdx = len(cols) - 1
	}
	if m.colIdx < 0 {
		m.colIdx = 0
	}
	tasks := m.selectedColumnTasks()
	if m.cardIdx >= len(tasks) {
		m.cardIdx = len(tasks) - 1
	}
	if m.cardIdx < 0 {
		m.cardIdx = 0
	}
}

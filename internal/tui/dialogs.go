package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fyrsmithlabs/boardd/internal/column"
	"github.com/fyrsmithlabs/boardd/internal/task"
)

// taskDialog is the create/edit task form. When editing is non-nil the
// fields are populated from it; otherwise they start empty with priority
// medium, matching the web dialog.
type taskDialog struct {
	editing  *task.Task
	columnID string
	title    textinput.Model
	desc     textarea.Model
	priority task.Priority
	focus    int // 0 title, 1 description
}

func newTaskDialog(editing *task.Task, columnID string) taskDialog {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 120
	title.Focus()

	desc := textarea.New()
	desc.Placeholder = "Description"
	desc.SetHeight(3)

	d := taskDialog{
		editing:  editing,
		columnID: columnID,
		title:    title,
		desc:     desc,
		priority: task.PriorityMedium,
	}
	if editing != nil {
		d.title.SetValue(editing.Title)
		d.desc.SetValue(editing.Description)
		d.priority = editing.Priority
	}
	return d
}

// CanSave reports whether the form is submittable: title must be non-empty.
func (d taskDialog) CanSave() bool {
	return d.title.Value() != ""
}

// cyclePriority steps low -> medium -> high and wraps.
func (d *taskDialog) cyclePriority() {
	switch d.priority {
	case task.PriorityLow:
		d.priority = task.PriorityMedium
	case task.PriorityMedium:
		d.priority = task.PriorityHigh
	default:
		d.priority = task.PriorityLow
	}
}

// nextField moves focus between title and description.
func (d *taskDialog) nextField() {
	d.focus = (d.focus + 1) % 2
	if d.focus == 0 {
		d.title.Focus()
		d.desc.Blur()
	} else {
		d.title.Blur()
		d.desc.Focus()
	}
}

func (d taskDialog) update(msg tea.Msg) (taskDialog, tea.Cmd) {
	var cmd tea.Cmd
	if d.focus == 0 {
		d.title, cmd = d.title.Update(msg)
	} else {
		d.desc, cmd = d.desc.Update(msg)
	}
	return d, cmd
}

// createRequest builds the create payload. New tasks start unassigned,
// like the web client submits them.
func (d taskDialog) createRequest() *task.CreateRequest {
	return &task.CreateRequest{
		Title:       d.title.Value(),
		Description: d.desc.Value(),
		Priority:    d.priority,
		Assignee:    "Unassigned",
		ColumnID:    d.columnID,
	}
}

// updateRequest builds the partial update payload for the edited task.
func (d taskDialog) updateRequest() *task.UpdateRequest {
	title := d.title.Value()
	desc := d.desc.Value()
	prio := d.priority
	return &task.UpdateRequest{
		ID:          d.editing.ID,
		Title:       &title,
		Description: &desc,
		Priority:    &prio,
	}
}

// columnDialog is the create-column form: a required title and a color
// picked from the palette, defaulting to the first entry.
type columnDialog struct {
	title    textinput.Model
	colorIdx int
}

func newColumnDialog() columnDialog {
	title := textinput.New()
	title.Placeholder = "e.g. QA, Review"
	title.CharLimit = 60
	title.Focus()
	return columnDialog{title: title}
}

func (d columnDialog) CanSave() bool {
	return d.title.Value() != ""
}

func (d *columnDialog) nextColor() {
	d.colorIdx = (d.colorIdx + 1) % len(column.Palette)
}

func (d *columnDialog) prevColor() {
	d.colorIdx = (d.colorIdx + len(column.Palette) - 1) % len(column.Palette)
}

func (d columnDialog) update(msg tea.Msg) (columnDialog, tea.Cmd) {
	var cmd tea.Cmd
	d.title, cmd = d.title.Update(msg)
	return d, cmd
}

func (d columnDialog) createRequest() *column.CreateRequest {
	return &column.CreateRequest{
		Title: d.title.Value(),
		Color: column.Palette[d.colorIdx],
	}
}

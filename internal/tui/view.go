package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fyrsmithlabs/boardd/internal/column"
	"github.com/fyrsmithlabs/boardd/internal/task"
)

const maxCardsShown = 8

// View renders the board.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return dimStyle.Render("Loading board...") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.mode {
	case modeTaskDialog:
		b.WriteString(m.renderTaskDialog())
	case modeColumnDialog:
		b.WriteString(m.renderColumnDialog())
	case modeConfirmDeleteTask:
		b.WriteString(m.renderConfirm("Delete this task?",
			"This action cannot be undone."))
	case modeConfirmDeleteColumn:
		b.WriteString(m.renderConfirm("Delete this space?",
			"Tasks within this space will remain but will be hidden from the board until moved."))
	default:
		b.WriteString(m.renderColumns())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	header := headerStyle.Render(" Project Board ")

	search := ""
	if m.mode == modeSearch {
		search = m.search.View()
	} else if q := m.search.Value(); q != "" {
		search = dimStyle.Render("filter: ") + q
	}

	if search == "" {
		return header
	}
	return header + "  " + search
}

func (m Model) renderColumns() string {
	groups := m.groups()

	rendered := make([]string, 0, len(m.columns()))
	for i, col := range m.columns() {
		rendered = append(rendered, m.renderColumn(i, col, groups[col.ID]))
	}
	if len(rendered) == 0 {
		return dimStyle.Render("No columns")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderColumn(idx int, col column.Column, tasks []task.Task) string {
	title := fmt.Sprintf("%s %s %s",
		colorDot(col.Color),
		columnTitleStyle.Render(col.Title),
		badgeStyle.Render(fmt.Sprintf("(%d)", len(tasks))),
	)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString("\n" + dimStyle.Render("No tasks") + "\n")
	}
	for i, t := range tasks {
		if i >= maxCardsShown {
			b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(tasks)-maxCardsShown)))
			break
		}
		b.WriteString(m.renderCard(idx, i, t))
		b.WriteString("\n")
	}

	style := columnStyle
	if m.mode == modeMove && idx == m.colIdx {
		style = dropTargetStyle
	}
	return style.Render(b.String())
}

func (m Model) renderCard(colIdx, cardIdx int, t task.Task) string {
	style := cardStyle
	switch {
	case m.mode == modeMove && t.ID == m.picked.TaskID:
		style = pickedCardStyle
	case m.mode == modeBoard && colIdx == m.colIdx && cardIdx == m.cardIdx:
		style = selectedCardStyle
	}

	prio := priorityStyles[string(t.Priority)]
	initial := "?"
	if t.Assignee != "" {
		initial = strings.ToUpper(string([]rune(t.Assignee)[0]))
	}

	var b strings.Builder
	b.WriteString(cardTitleStyle.Render(truncate(t.Title, 24)))
	if t.Description != "" {
		b.WriteString("\n" + dimStyle.Render(truncate(t.Description, 24)))
	}
	b.WriteString("\n" + prio.Render(string(t.Priority)) + dimStyle.Render("  @"+initial))

	return style.Render(b.String())
}

func (m Model) renderTaskDialog() string {
	title := "Add New Task"
	if m.taskDlg.editing != nil {
		title = "Edit Task"
	}

	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Title") + "\n" + m.taskDlg.title.View() + "\n\n")
	b.WriteString(dimStyle.Render("Description") + "\n" + m.taskDlg.desc.View() + "\n\n")

	prio := priorityStyles[string(m.taskDlg.priority)]
	b.WriteString(dimStyle.Render("Priority ") + prio.Render(string(m.taskDlg.priority)))
	b.WriteString(dimStyle.Render("  (ctrl+p to change)"))
	b.WriteString("\n\n")

	save := "[enter] save"
	if !m.taskDlg.CanSave() {
		save = dimStyle.Render("[enter] save (title required)")
	}
	help := save + "  [tab] next field  [esc] cancel"
	if m.taskDlg.editing != nil {
		help += "  [ctrl+d] delete"
	}
	b.WriteString(footerStyle.Render(help))

	return dialogStyle.Render(b.String())
}

func (m Model) renderColumnDialog() string {
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render("Create New Space"))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Space Name") + "\n" + m.colDlg.title.View() + "\n\n")

	b.WriteString(dimStyle.Render("Color") + "\n")
	for i, token := range column.Palette {
		dot := colorDot(token)
		if i == m.colDlg.colorIdx {
			dot = "[" + dot + "]"
		} else {
			dot = " " + dot + " "
		}
		b.WriteString(dot)
	}
	b.WriteString("\n" + dimStyle.Render(column.Palette[m.colDlg.colorIdx]))
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("[enter] create  [←/→] color  [esc] cancel"))

	return dialogStyle.Render(b.String())
}

func (m Model) renderConfirm(title, detail string) string {
	var b strings.Builder
	b.WriteString(errorStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(detail))
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("[y] delete  [n] cancel"))
	return dialogStyle.Render(b.String())
}

func (m Model) renderFooter() string {
	if m.mode == modeMove {
		return footerKeyStyle.Render("[←/→]") + footerStyle.Render(" target  ") +
			footerKeyStyle.Render("[enter]") + footerStyle.Render(" drop  ") +
			footerKeyStyle.Render("[esc]") + footerStyle.Render(" cancel")
	}

	footer := footerKeyStyle.Render("[←/→/↑/↓]") + footerStyle.Render(" navigate  ") +
		footerKeyStyle.Render("[m]") + footerStyle.Render(" move  ") +
		footerKeyStyle.Render("[a]") + footerStyle.Render(" add card  ") +
		footerKeyStyle.Render("[enter]") + footerStyle.Render(" edit  ") +
		footerKeyStyle.Render("[c]") + footerStyle.Render(" add space  ") +
		footerKeyStyle.Render("[X]") + footerStyle.Render(" delete space  ") +
		footerKeyStyle.Render("[/]") + footerStyle.Render(" filter  ") +
		footerKeyStyle.Render("[q]") + footerStyle.Render(" quit")

	if m.lastErr != nil {
		footer += "\n" + errorStyle.Render("✗ "+m.lastErr.Error())
	}
	return footer
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

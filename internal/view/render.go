package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/playperu/trivia/internal/trivia"
)

var (
	colorAccent = lipgloss.Color("#7D56F4")
	colorMuted  = lipgloss.Color("#8A8A8A")
	colorWarn   = lipgloss.Color("#E06C75")

	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	paneStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
	activePaneStyle = paneStyle.BorderForeground(colorAccent)
	cursorStyle     = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	answerStyle     = lipgloss.NewStyle().Italic(true)
	currentPage     = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorAccent)
	modalStyle      = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 3)
	alertStyle      = modalStyle.BorderForeground(colorWarn)
	confirmStyle    = modalStyle.BorderForeground(colorAccent)
)

const categoriesWidth = 28

func (m Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderCategories(), m.renderQuestions())
	out := lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))

	if m.modal == modalNone {
		return out
	}
	box := m.renderModal()
	if m.width == 0 || m.height == 0 {
		return box + "\n" + out
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderCategories() string {
	state := m.ctrl.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Categories"))
	b.WriteString("\n")
	for i, id := range state.Categories.IDs() {
		name := state.Categories[id]
		line := "  " + name
		if state.CurrentCategory != nil && *state.CurrentCategory == id {
			line = "• " + name
		}
		if m.focus == paneCategories && i == m.catCursor {
			line = cursorStyle.Render("> " + strings.TrimLeft(line, " •"))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.search.View())

	style := paneStyle
	if m.focus == paneCategories || m.focus == paneSearch {
		style = activePaneStyle
	}
	return style.Width(categoriesWidth).Render(b.String())
}

func (m Model) renderQuestions() string {
	state := m.ctrl.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Questions"))
	b.WriteString("\n")
	if len(state.Questions) == 0 {
		b.WriteString(mutedStyle.Render("No questions."))
		b.WriteString("\n")
	}
	for i, q := range state.Questions {
		b.WriteString(m.renderQuestion(i, q, state.Categories))
		b.WriteString("\n")
	}
	b.WriteString(CreatePagination(state))

	style := paneStyle
	if m.focus == paneQuestions {
		style = activePaneStyle
	}
	if m.width > categoriesWidth+8 {
		style = style.Width(m.width - categoriesWidth - 8)
	}
	return style.Render(b.String())
}

func (m Model) renderQuestion(i int, q trivia.Question, cats trivia.CategoryMap) string {
	prefix := "  "
	text := q.Question
	if m.focus == paneQuestions && i == m.qCursor {
		prefix = cursorStyle.Render("> ")
		text = cursorStyle.Render(text)
	}

	meta := mutedStyle.Render(fmt.Sprintf("%s · difficulty %d", cats.Name(q.Category), q.Difficulty))
	lines := []string{prefix + text, "  " + meta}
	if m.revealed[q.ID] {
		lines = append(lines, "  "+answerStyle.Render("Answer: "+q.Answer))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderModal() string {
	switch m.modal {
	case modalConfirm:
		return confirmStyle.Render(m.modalText + "\n\n" + mutedStyle.Render("[y] yes   [n] no"))
	case modalAlert:
		return alertStyle.Render(m.modalText + "\n\n" + mutedStyle.Render("[enter] ok"))
	}
	return ""
}

// CreatePagination renders one link per page with the current page
// highlighted, or nothing when there are no questions.
func CreatePagination(s State) string {
	n := s.PageCount()
	if n == 0 {
		return ""
	}
	links := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		label := strconv.Itoa(i)
		if i == s.Page {
			links = append(links, currentPage.Render("["+label+"]"))
			continue
		}
		links = append(links, " "+label+" ")
	}
	return strings.Join(links, " ")
}

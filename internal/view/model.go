package view

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/playperu/trivia/internal/trivia"
)

type pane int

const (
	paneQuestions pane = iota
	paneCategories
	paneSearch
)

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirm
	modalAlert
)

// queuedModal is a dialog waiting for the open one to close.
type queuedModal struct {
	kind  modalKind
	text  string
	onYes tea.Cmd
}

// Model is the Bubble Tea program for the question view.
type Model struct {
	ctrl   *Controller
	keys   keyMap
	help   help.Model
	search textinput.Model

	focus     pane
	lastFocus pane
	catCursor int
	qCursor   int
	revealed  map[int]bool

	modal     modalKind
	modalText string
	onYes     tea.Cmd
	pending   []queuedModal

	width  int
	height int
}

func NewModel(ctrl *Controller) Model {
	search := textinput.New()
	search.Placeholder = "search questions"
	search.Prompt = "/ "
	search.CharLimit = 200

	return Model{
		ctrl:     ctrl,
		keys:     defaultKeyMap(),
		help:     help.New(),
		search:   search,
		revealed: map[int]bool{},
	}
}

func (m Model) Init() tea.Cmd {
	return m.ctrl.GetQuestions()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.ctrl.Apply(msg); ok {
		m.syncCursors()
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case alertMsg:
		m.openModal(queuedModal{kind: modalAlert, text: msg.text})
		return m, nil

	case confirmMsg:
		m.openModal(queuedModal{kind: modalConfirm, text: msg.text, onYes: msg.onYes})
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.modal {
		case modalAlert:
			return m.updateAlert(msg)
		case modalConfirm:
			return m.updateConfirm(msg)
		}
		if m.focus == paneSearch {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

// openModal shows d, or queues it behind the dialog already open.
func (m *Model) openModal(d queuedModal) {
	if m.modal != modalNone {
		m.pending = append(m.pending[:len(m.pending):len(m.pending)], d)
		return
	}
	m.modal, m.modalText, m.onYes = d.kind, d.text, d.onYes
}

// closeModal closes the open dialog and shows the next queued one.
func (m *Model) closeModal() {
	m.modal, m.modalText, m.onYes = modalNone, "", nil
	if len(m.pending) == 0 {
		return
	}
	next := m.pending[0]
	m.pending = m.pending[1:]
	m.openModal(next)
}

func (m Model) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Dismiss) {
		m.closeModal()
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		cmd := m.onYes
		m.closeModal()
		return m, cmd
	case key.Matches(msg, m.keys.No):
		m.closeModal()
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		term := m.search.Value()
		m.search.Blur()
		m.focus = paneQuestions
		return m, m.ctrl.SubmitSearch(term)
	case tea.KeyEsc:
		m.search.Blur()
		m.focus = m.lastFocus
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.ctrl.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Switch):
		if m.focus == paneQuestions {
			m.focus = paneCategories
		} else {
			m.focus = paneQuestions
		}
	case key.Matches(msg, m.keys.Search):
		m.lastFocus = m.focus
		m.focus = paneSearch
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.AllCats):
		return m, m.ctrl.GetQuestions()
	case key.Matches(msg, m.keys.PrevPage):
		if state.Page > 1 {
			return m, m.ctrl.SelectPage(state.Page - 1)
		}
	case key.Matches(msg, m.keys.NextPage):
		if state.Page < state.PageCount() {
			return m, m.ctrl.SelectPage(state.Page + 1)
		}
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case m.focus == paneCategories && key.Matches(msg, m.keys.Select):
		ids := state.Categories.IDs()
		if m.catCursor < len(ids) {
			return m, m.ctrl.GetByCategory(ids[m.catCursor])
		}
	case m.focus == paneQuestions && key.Matches(msg, m.keys.Reveal):
		if q, ok := m.selectedQuestion(); ok {
			m.revealed[q.ID] = !m.revealed[q.ID]
		}
	case m.focus == paneQuestions && key.Matches(msg, m.keys.Delete):
		if q, ok := m.selectedQuestion(); ok {
			return m, m.ctrl.QuestionAction(q.ID)(trivia.DeleteAction)
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	state := m.ctrl.State()
	switch m.focus {
	case paneCategories:
		m.catCursor = clamp(m.catCursor+delta, len(state.Categories))
	case paneQuestions:
		m.qCursor = clamp(m.qCursor+delta, len(state.Questions))
	}
}

// syncCursors keeps cursors inside the lists after a reload.
func (m *Model) syncCursors() {
	state := m.ctrl.State()
	m.catCursor = clamp(m.catCursor, len(state.Categories))
	m.qCursor = clamp(m.qCursor, len(state.Questions))
	m.revealed = map[int]bool{}
}

func (m Model) selectedQuestion() (trivia.Question, bool) {
	qs := m.ctrl.State().Questions
	if m.qCursor < 0 || m.qCursor >= len(qs) {
		return trivia.Question{}, false
	}
	return qs[m.qCursor], true
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Package view implements the terminal question browser: a list of trivia
// questions that can be paged, filtered by category, searched and pruned.
package view

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/playperu/trivia/internal/trivia"
)

const (
	loadFailedText   = "Unable to load questions. Please try your request again"
	deleteFailedText = "Unable to delete the question. Please try your request again"
	confirmDelete    = "Are you sure you want to delete the question?"
)

// API is the part of the trivia client the view calls.
type API interface {
	Questions(ctx context.Context, page int) (trivia.QuestionPage, error)
	CategoryQuestions(ctx context.Context, categoryID int) (trivia.QuestionList, error)
	Search(ctx context.Context, term string) (trivia.QuestionList, error)
	DeleteQuestion(ctx context.Context, id int) error
}

type pageLoadedMsg struct{ page trivia.QuestionPage }

type listLoadedMsg struct{ list trivia.QuestionList }

type deletedMsg struct{ id int }

// alertMsg asks the model to block on a message until dismissed.
type alertMsg struct{ text string }

// confirmMsg asks the model for a yes/no answer; onYes runs on yes.
type confirmMsg struct {
	text  string
	onYes tea.Cmd
}

// Controller owns the view State and turns user intents into requests.
// Requests run as Bubble Tea commands; their results come back through
// Apply on the program loop, so the last response to arrive wins.
type Controller struct {
	ctx    context.Context
	api    API
	logger *slog.Logger
	state  State
}

func NewController(ctx context.Context, api API, logger *slog.Logger) *Controller {
	return &Controller{ctx: ctx, api: api, logger: logger, state: NewState()}
}

func (c *Controller) State() State { return c.state }

// GetQuestions loads the current page of all questions.
func (c *Controller) GetQuestions() tea.Cmd {
	page := c.state.Page
	return func() tea.Msg {
		res, err := c.api.Questions(c.ctx, page)
		if err != nil {
			c.logger.Warn("loading questions failed", "page", page, "error", err)
			return alertMsg{loadFailedText}
		}
		return pageLoadedMsg{res}
	}
}

// GetByCategory loads the questions of one category.
func (c *Controller) GetByCategory(id int) tea.Cmd {
	return func() tea.Msg {
		res, err := c.api.CategoryQuestions(c.ctx, id)
		if err != nil {
			c.logger.Warn("loading category failed", "category", id, "error", err)
			return alertMsg{loadFailedText}
		}
		return listLoadedMsg{res}
	}
}

// SubmitSearch sends term to the server exactly as typed.
func (c *Controller) SubmitSearch(term string) tea.Cmd {
	return func() tea.Msg {
		res, err := c.api.Search(c.ctx, term)
		if err != nil {
			c.logger.Warn("search failed", "term", term, "error", err)
			return alertMsg{loadFailedText}
		}
		return listLoadedMsg{res}
	}
}

// QuestionAction binds a question id and returns the handler for actions
// taken on it. Only trivia.DeleteAction does anything: it asks for
// confirmation before deleting.
func (c *Controller) QuestionAction(id int) func(action string) tea.Cmd {
	return func(action string) tea.Cmd {
		if action != trivia.DeleteAction {
			return nil
		}
		return func() tea.Msg {
			return confirmMsg{text: confirmDelete, onYes: c.deleteQuestion(id)}
		}
	}
}

func (c *Controller) deleteQuestion(id int) tea.Cmd {
	return func() tea.Msg {
		if err := c.api.DeleteQuestion(c.ctx, id); err != nil {
			c.logger.Warn("deleting question failed", "id", id, "error", err)
			return alertMsg{deleteFailedText}
		}
		return deletedMsg{id}
	}
}

// SelectPage moves to page n and loads it.
func (c *Controller) SelectPage(n int) tea.Cmd {
	if n < 1 {
		return nil
	}
	c.state.Page = n
	return c.GetQuestions()
}

// Apply folds a request result into the state and returns any follow-up
// request. It reports whether msg belonged to the controller.
func (c *Controller) Apply(msg tea.Msg) (tea.Cmd, bool) {
	switch m := msg.(type) {
	case pageLoadedMsg:
		c.state.applyPage(m.page)
		return nil, true
	case listLoadedMsg:
		c.state.applyList(m.list)
		return nil, true
	case deletedMsg:
		c.logger.Info("question deleted", "id", m.id)
		return c.GetQuestions(), true
	}
	return nil, false
}

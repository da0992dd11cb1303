package view

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/playperu/trivia/internal/trivia"
)

var errDown = errors.New("connection refused")

// fakeAPI records every call and answers from canned responses.
type fakeAPI struct {
	page    trivia.QuestionPage
	list    trivia.QuestionList
	err     error
	delErr  error
	pages   []int
	cats    []int
	terms   []string
	deletes []int
}

func (f *fakeAPI) Questions(_ context.Context, page int) (trivia.QuestionPage, error) {
	f.pages = append(f.pages, page)
	return f.page, f.err
}

func (f *fakeAPI) CategoryQuestions(_ context.Context, id int) (trivia.QuestionList, error) {
	f.cats = append(f.cats, id)
	return f.list, f.err
}

func (f *fakeAPI) Search(_ context.Context, term string) (trivia.QuestionList, error) {
	f.terms = append(f.terms, term)
	return f.list, f.err
}

func (f *fakeAPI) DeleteQuestion(_ context.Context, id int) error {
	f.deletes = append(f.deletes, id)
	return f.delErr
}

func newTestController(api API) *Controller {
	return NewController(context.Background(), api, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func intPtr(i int) *int { return &i }

var (
	science = trivia.Question{ID: 1, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3}
	art     = trivia.Question{ID: 4, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3}
	twoCats = trivia.CategoryMap{1: "Science", 2: "Art"}
)

// apply runs cmd and feeds its message back, returning the follow-up.
func apply(t *testing.T, c *Controller, cmd tea.Cmd) (tea.Msg, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	next, _ := c.Apply(msg)
	return msg, next
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if s.Page != 1 || s.TotalQuestions != 0 || s.CurrentCategory != nil {
		t.Errorf("unexpected initial state %+v", s)
	}
	if s.Questions == nil || s.Categories == nil {
		t.Error("initial collections must be empty, not nil")
	}
}

func TestGetQuestionsReplacesState(t *testing.T) {
	api := &fakeAPI{page: trivia.QuestionPage{
		Questions:       []trivia.Question{science, art},
		TotalQuestions:  12,
		Categories:      twoCats,
		CurrentCategory: nil,
	}}
	c := newTestController(api)

	msg, next := apply(t, c, c.GetQuestions())
	if _, ok := msg.(pageLoadedMsg); !ok {
		t.Fatalf("msg = %T, want pageLoadedMsg", msg)
	}
	if next != nil {
		t.Error("page load must not trigger a follow-up")
	}

	s := c.State()
	if !reflect.DeepEqual(s.Questions, api.page.Questions) {
		t.Errorf("questions = %+v", s.Questions)
	}
	if s.TotalQuestions != 12 || !reflect.DeepEqual(s.Categories, twoCats) {
		t.Errorf("state = %+v", s)
	}
	if !reflect.DeepEqual(api.pages, []int{1}) {
		t.Errorf("requested pages %v, want [1]", api.pages)
	}
}

func TestFailedFetchesLeaveStateUnchanged(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Controller) tea.Cmd
	}{
		{"questions", func(c *Controller) tea.Cmd { return c.GetQuestions() }},
		{"category", func(c *Controller) tea.Cmd { return c.GetByCategory(2) }},
		{"search", func(c *Controller) tea.Cmd { return c.SubmitSearch("soccer") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{page: trivia.QuestionPage{
				Questions: []trivia.Question{science}, TotalQuestions: 1, Categories: twoCats,
			}}
			c := newTestController(api)
			apply(t, c, c.GetQuestions())
			before := c.State()

			api.err = errDown
			msg, next := apply(t, c, tt.call(c))

			alert, ok := msg.(alertMsg)
			if !ok {
				t.Fatalf("msg = %T, want alertMsg", msg)
			}
			if alert.text != "Unable to load questions. Please try your request again" {
				t.Errorf("alert = %q", alert.text)
			}
			if next != nil {
				t.Error("failure must not trigger a follow-up")
			}
			if !reflect.DeepEqual(c.State(), before) {
				t.Errorf("state changed on failure: %+v, was %+v", c.State(), before)
			}
		})
	}
}

func TestGetByCategoryKeepsCategories(t *testing.T) {
	api := &fakeAPI{
		page: trivia.QuestionPage{Questions: []trivia.Question{science, art}, TotalQuestions: 2, Categories: twoCats},
		list: trivia.QuestionList{Questions: []trivia.Question{art}, TotalQuestions: 1, CurrentCategory: intPtr(2)},
	}
	c := newTestController(api)
	apply(t, c, c.GetQuestions())

	apply(t, c, c.GetByCategory(2))

	s := c.State()
	if !reflect.DeepEqual(api.cats, []int{2}) {
		t.Errorf("requested categories %v, want [2]", api.cats)
	}
	if s.CurrentCategory == nil || *s.CurrentCategory != 2 {
		t.Errorf("current category = %v, want 2", s.CurrentCategory)
	}
	if !reflect.DeepEqual(s.Questions, []trivia.Question{art}) || s.TotalQuestions != 1 {
		t.Errorf("questions = %+v total %d", s.Questions, s.TotalQuestions)
	}
	if !reflect.DeepEqual(s.Categories, twoCats) {
		t.Errorf("categories = %v, want untouched", s.Categories)
	}
}

func TestSubmitSearchSendsExactTerm(t *testing.T) {
	api := &fakeAPI{list: trivia.QuestionList{Questions: []trivia.Question{science}, TotalQuestions: 1}}
	c := newTestController(api)

	apply(t, c, c.SubmitSearch("  Penicillin "))

	if !reflect.DeepEqual(api.terms, []string{"  Penicillin "}) {
		t.Errorf("terms = %q", api.terms)
	}
	if !reflect.DeepEqual(c.State().Questions, []trivia.Question{science}) {
		t.Errorf("questions = %+v", c.State().Questions)
	}
}

func TestQuestionActionIgnoresOtherActions(t *testing.T) {
	api := &fakeAPI{}
	c := newTestController(api)

	if cmd := c.QuestionAction(1)("EDIT"); cmd != nil {
		t.Fatal("non-delete action must do nothing")
	}
	if len(api.deletes) != 0 {
		t.Errorf("deletes = %v", api.deletes)
	}
}

func TestQuestionActionDeleteAsksFirst(t *testing.T) {
	api := &fakeAPI{}
	c := newTestController(api)

	msg := c.QuestionAction(7)(trivia.DeleteAction)()
	confirm, ok := msg.(confirmMsg)
	if !ok {
		t.Fatalf("msg = %T, want confirmMsg", msg)
	}
	if confirm.text != "Are you sure you want to delete the question?" {
		t.Errorf("prompt = %q", confirm.text)
	}
	if len(api.deletes) != 0 {
		t.Fatal("DELETE sent before confirmation")
	}

	// Confirming issues the delete, and success refetches exactly once.
	c.state.Page = 2
	msg, next := apply(t, c, confirm.onYes)
	if _, ok := msg.(deletedMsg); !ok {
		t.Fatalf("msg = %T, want deletedMsg", msg)
	}
	if !reflect.DeepEqual(api.deletes, []int{7}) {
		t.Errorf("deletes = %v, want [7]", api.deletes)
	}
	if next == nil {
		t.Fatal("successful delete must refetch")
	}
	apply(t, c, next)
	if !reflect.DeepEqual(api.pages, []int{2}) {
		t.Errorf("refetched pages %v, want [2]", api.pages)
	}
}

func TestDeleteFailureAlertsWithoutRefetch(t *testing.T) {
	api := &fakeAPI{delErr: errDown}
	c := newTestController(api)
	before := c.State()

	confirm := c.QuestionAction(3)(trivia.DeleteAction)().(confirmMsg)
	msg, next := apply(t, c, confirm.onYes)

	alert, ok := msg.(alertMsg)
	if !ok {
		t.Fatalf("msg = %T, want alertMsg", msg)
	}
	if alert.text != "Unable to delete the question. Please try your request again" {
		t.Errorf("alert = %q", alert.text)
	}
	if next != nil || len(api.pages) != 0 {
		t.Error("failed delete must not refetch")
	}
	if !reflect.DeepEqual(c.State(), before) {
		t.Error("state changed on failed delete")
	}
}

func TestSelectPage(t *testing.T) {
	api := &fakeAPI{page: trivia.QuestionPage{Questions: []trivia.Question{art}, TotalQuestions: 25, Categories: twoCats}}
	c := newTestController(api)

	if cmd := c.SelectPage(0); cmd != nil {
		t.Error("page 0 must be ignored")
	}
	apply(t, c, c.SelectPage(3))

	if c.State().Page != 3 {
		t.Errorf("page = %d, want 3", c.State().Page)
	}
	if !reflect.DeepEqual(api.pages, []int{3}) {
		t.Errorf("requested pages %v, want [3]", api.pages)
	}
}

func TestLastResponseWins(t *testing.T) {
	api := &fakeAPI{}
	c := newTestController(api)

	first := c.GetByCategory(1)
	second := c.GetByCategory(2)

	// The second request resolves first; the first one lands last and wins.
	api.list = trivia.QuestionList{Questions: []trivia.Question{art}, TotalQuestions: 1, CurrentCategory: intPtr(2)}
	c.Apply(second())
	api.list = trivia.QuestionList{Questions: []trivia.Question{science}, TotalQuestions: 1, CurrentCategory: intPtr(1)}
	c.Apply(first())

	if got := c.State().CurrentCategory; got == nil || *got != 1 {
		t.Errorf("current category = %v, want 1", got)
	}
	if !reflect.DeepEqual(c.State().Questions, []trivia.Question{science}) {
		t.Errorf("questions = %+v", c.State().Questions)
	}
}

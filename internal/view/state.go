package view

import "github.com/playperu/trivia/internal/trivia"

// State is what the question view shows. Each successful response
// replaces the fields it carries; failed requests leave it untouched.
type State struct {
	Questions       []trivia.Question
	Page            int
	TotalQuestions  int
	Categories      trivia.CategoryMap
	CurrentCategory *int
}

func NewState() State {
	return State{
		Questions:  []trivia.Question{},
		Page:       1,
		Categories: trivia.CategoryMap{},
	}
}

func (s *State) applyPage(p trivia.QuestionPage) {
	s.Questions = nonNil(p.Questions)
	s.TotalQuestions = p.TotalQuestions
	s.Categories = p.Categories
	if s.Categories == nil {
		s.Categories = trivia.CategoryMap{}
	}
	s.CurrentCategory = p.CurrentCategory
}

// applyList keeps Categories, which list responses do not carry.
func (s *State) applyList(l trivia.QuestionList) {
	s.Questions = nonNil(l.Questions)
	s.TotalQuestions = l.TotalQuestions
	s.CurrentCategory = l.CurrentCategory
}

// PageCount is the number of pagination links to render.
func (s State) PageCount() int {
	return trivia.PageCount(s.TotalQuestions)
}

func nonNil(qs []trivia.Question) []trivia.Question {
	if qs == nil {
		return []trivia.Question{}
	}
	return qs
}

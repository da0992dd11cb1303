package server

import (
	"context"
	"errors"

	"github.com/playperu/trivia/internal/trivia"
)

var ErrNotFound = errors.New("not found")

// QuestionFilter narrows a question listing. Zero values match everything.
type QuestionFilter struct {
	CategoryID int
	Term       string
}

// Page selects a window of a listing; Number is 1-based.
type Page struct {
	Number int
	Size   int
}

func (p Page) offset() int { return (p.Number - 1) * p.Size }

type Store interface {
	ListCategories(ctx context.Context) (trivia.CategoryMap, error)
	GetCategory(ctx context.Context, id int) (trivia.Category, error)

	// ListQuestions returns one page of matching questions ordered by id,
	// along with the total number of matches.
	ListQuestions(ctx context.Context, filter QuestionFilter, page Page) ([]trivia.Question, int, error)
	CreateQuestion(ctx context.Context, req trivia.CreateQuestionRequest) (int, error)
	DeleteQuestion(ctx context.Context, id int) error

	// RandomQuestion picks a question not in exclude, limited to categoryID
	// unless it is 0. It returns ErrNotFound when nothing is left.
	RandomQuestion(ctx context.Context, categoryID int, exclude []int) (trivia.Question, error)
}

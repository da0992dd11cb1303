// Package trivia defines the core domain and wire types shared by the API
// server and its clients. It has zero external dependencies.
package trivia

import (
	"sort"
	"strconv"
)

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// DeleteAction is the only question action the view acts on.
const DeleteAction = "DELETE"

type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap maps a category id to its display name. encoding/json
// renders the keys as strings, e.g. {"1": "Science"}.
type CategoryMap map[int]string

// IDs returns the category ids in ascending order.
func (m CategoryMap) IDs() []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Name returns the display name for id, or the id itself when unknown.
func (m CategoryMap) Name(id int) string {
	if name, ok := m[id]; ok {
		return name
	}
	return strconv.Itoa(id)
}

// QuestionPage is the body of GET /questions.
type QuestionPage struct {
	Success         bool        `json:"success"`
	Questions       []Question  `json:"questions"`
	TotalQuestions  int         `json:"total_questions"`
	Categories      CategoryMap `json:"categories"`
	CurrentCategory *int        `json:"current_category"`
}

// QuestionList is the body of the category listing and search endpoints.
type QuestionList struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory *int       `json:"current_category"`
}

type CategoriesResponse struct {
	Success    bool        `json:"success"`
	Categories CategoryMap `json:"categories"`
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type CreateQuestionResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
}

type DeleteQuestionResponse struct {
	Success bool `json:"success"`
	Deleted int  `json:"deleted"`
}

// QuizRequest asks for a random question not in PreviousQuestions.
// A nil QuizCategory or one with ID 0 means any category.
type QuizRequest struct {
	PreviousQuestions []int     `json:"previous_questions"`
	QuizCategory      *Category `json:"quiz_category"`
}

type QuizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// PageCount returns how many pages total questions span.
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + QuestionsPerPage - 1) / QuestionsPerPage
}

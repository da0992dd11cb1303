package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/playperu/trivia/internal/trivia"
)

type pageInput struct {
	Page int `query:"page" minimum:"1" default:"1"`
}

type questionIDInput struct {
	ID int `path:"id"`
}

type categoryQuestionsInput struct {
	ID   int `path:"id"`
	Page int `query:"page" minimum:"1" default:"1"`
}

type searchQuestionsInput struct {
	Page       int    `query:"page" minimum:"1" default:"1"`
	SearchTerm string `json:"searchTerm" required:"true" minLength:"1"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Trivia API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Questions, categories and quizzes for the trivia game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /categories
	listCategories, _ := r.NewOperationContext(http.MethodGet, "/categories")
	listCategories.SetSummary("List categories")
	listCategories.SetDescription("Returns every category keyed by id.")
	listCategories.AddRespStructure(trivia.CategoriesResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listCategories)

	// GET /categories/{id}/questions
	categoryQuestions, _ := r.NewOperationContext(http.MethodGet, "/categories/{id}/questions")
	categoryQuestions.SetSummary("Questions in category")
	categoryQuestions.SetDescription("Returns one page of the questions in a category.")
	categoryQuestions.AddReqStructure(categoryQuestionsInput{})
	categoryQuestions.AddRespStructure(trivia.QuestionList{}, openapi.WithHTTPStatus(http.StatusOK))
	categoryQuestions.AddRespStructure(trivia.ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(categoryQuestions)

	// GET /questions
	listQuestions, _ := r.NewOperationContext(http.MethodGet, "/questions")
	listQuestions.SetSummary("List questions")
	listQuestions.SetDescription("Returns one page of questions together with all categories. Pages hold 10 questions.")
	listQuestions.AddReqStructure(pageInput{})
	listQuestions.AddRespStructure(trivia.QuestionPage{}, openapi.WithHTTPStatus(http.StatusOK))
	listQuestions.AddRespStructure(trivia.ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(listQuestions)

	// POST /questions
	createQuestion, _ := r.NewOperationContext(http.MethodPost, "/questions")
	createQuestion.SetSummary("Create question")
	createQuestion.SetDescription("Adds a question to an existing category. Difficulty ranges from 1 to 5.")
	createQuestion.AddReqStructure(trivia.CreateQuestionRequest{})
	createQuestion.AddRespStructure(trivia.CreateQuestionResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	createQuestion.AddRespStructure(trivia.ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	createQuestion.AddRespStructure(trivia.ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(createQuestion)

	// POST /questions/search
	searchQuestions, _ := r.NewOperationContext(http.MethodPost, "/questions/search")
	searchQuestions.SetSummary("Search questions")
	searchQuestions.SetDescription("Case-insensitive substring search over question text.")
	searchQuestions.AddReqStructure(searchQuestionsInput{})
	searchQuestions.AddRespStructure(trivia.QuestionList{}, openapi.WithHTTPStatus(http.StatusOK))
	searchQuestions.AddRespStructure(trivia.ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(searchQuestions)

	// DELETE /questions/{id}
	deleteQuestion, _ := r.NewOperationContext(http.MethodDelete, "/questions/{id}")
	deleteQuestion.SetSummary("Delete question")
	deleteQuestion.AddReqStructure(questionIDInput{})
	deleteQuestion.AddRespStructure(trivia.DeleteQuestionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	deleteQuestion.AddRespStructure(trivia.ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deleteQuestion)

	// POST /quizzes
	playQuiz, _ := r.NewOperationContext(http.MethodPost, "/quizzes")
	playQuiz.SetSummary("Next quiz question")
	playQuiz.SetDescription("Returns a random question not yet asked. Category id 0 means all categories. question is null once the pool is exhausted.")
	playQuiz.AddReqStructure(trivia.QuizRequest{})
	playQuiz.AddRespStructure(trivia.QuizResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	playQuiz.AddRespStructure(trivia.ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(playQuiz)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

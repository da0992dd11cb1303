package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, store Store, checks map[string]Checker) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Trivia API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, checks))

	r.Get("/categories", handleListCategories(logger, store))
	r.Get("/categories/{id}/questions", handleCategoryQuestions(logger, store))

	r.Route("/questions", func(r chi.Router) {
		r.Get("/", handleListQuestions(logger, store))
		r.Post("/", handleCreateQuestion(logger, store))
		r.Post("/search", handleSearchQuestions(logger, store))
		r.Delete("/{id}", handleDeleteQuestion(logger, store))
	})

	r.Post("/quizzes", handlePlayQuiz(logger, store))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed)
	})
}

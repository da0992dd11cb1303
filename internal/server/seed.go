package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/playperu/trivia/internal/trivia"
)

type demoQuestion struct {
	category   string
	question   string
	answer     string
	difficulty int
}

var demoCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

var demoQuestions = []demoQuestion{
	{"Science", "What is the heaviest organ in the human body?", "The Liver", 4},
	{"Science", "Who discovered penicillin?", "Alexander Fleming", 3},
	{"Science", "Hematology is a branch of medicine involving the study of what?", "Blood", 4},
	{"Art", "Which Dutch graphic artist, initials M C, was a creator of optical illusions?", "Escher", 1},
	{"Art", "La Giaconda is better known as what?", "Mona Lisa", 3},
	{"Art", "How many paintings did Van Gogh sell in his lifetime?", "One", 4},
	{"Geography", "What is the largest lake in Africa?", "Lake Victoria", 2},
	{"Geography", "In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", 3},
	{"Geography", "The Taj Mahal is located in which Indian city?", "Agra", 2},
	{"History", "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 2},
	{"History", "What boxer's original name is Cassius Clay?", "Muhammad Ali", 1},
	{"History", "Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", 4},
	{"Entertainment", "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", 4},
	{"Entertainment", "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", 4},
	{"Sports", "Which is the only team to play in every soccer World Cup tournament?", "Brazil", 3},
	{"Sports", "Which country won the first ever soccer World Cup in 1930?", "Uruguay", 4},
}

// SeedDemo fills an empty database with the demo categories and questions.
// Idempotent: does nothing if any category already exists.
func SeedDemo(ctx context.Context, logger *slog.Logger, store *SQLiteStore) error {
	existing, err := store.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	ids := make(map[string]int, len(demoCategories))
	for _, name := range demoCategories {
		id, err := store.CreateCategory(ctx, name)
		if err != nil {
			return fmt.Errorf("seeding category %q: %w", name, err)
		}
		ids[name] = id
	}

	for _, q := range demoQuestions {
		_, err := store.CreateQuestion(ctx, trivia.CreateQuestionRequest{
			Question:   q.question,
			Answer:     q.answer,
			Category:   ids[q.category],
			Difficulty: q.difficulty,
		})
		if err != nil {
			return fmt.Errorf("seeding question: %w", err)
		}
	}

	logger.Info("demo trivia seeded", "categories", len(demoCategories), "questions", len(demoQuestions))
	return nil
}

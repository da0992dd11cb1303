package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/playperu/trivia/internal/trivia"
)

type quizAPI interface {
	NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*trivia.Question, error)
}

func newQuizCmd(a *app) *cobra.Command {
	var category, rounds int

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Play a quiz round in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds < 1 {
				return fmt.Errorf("rounds must be at least 1, got %d", rounds)
			}
			_, err := playQuiz(cmd.Context(), a.api, category, rounds, cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().IntVarP(&category, "category", "c", 0, "category id (0 plays all categories)")
	cmd.Flags().IntVarP(&rounds, "rounds", "n", 5, "number of questions")
	return cmd
}

// playQuiz asks up to rounds unseen questions and returns the number of
// correct answers. It stops early when the pool or the input runs out.
func playQuiz(ctx context.Context, api quizAPI, category, rounds int, in io.Reader, out io.Writer) (int, error) {
	scanner := bufio.NewScanner(in)
	previous := []int{}
	score := 0

	for len(previous) < rounds {
		q, err := api.NextQuizQuestion(ctx, category, previous)
		if err != nil {
			return score, fmt.Errorf("fetching quiz question: %w", err)
		}
		if q == nil {
			break
		}
		fmt.Fprintf(out, "\n%d. %s\n> ", len(previous)+1, q.Question)
		if !scanner.Scan() {
			break
		}
		previous = append(previous, q.ID)
		if trivia.CheckAnswer(strings.TrimSpace(scanner.Text()), q.Answer) {
			score++
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Wrong. The answer was %s.\n", q.Answer)
		}
	}

	fmt.Fprintf(out, "\nYour score: %d/%d\n", score, len(previous))
	return score, scanner.Err()
}

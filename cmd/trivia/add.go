package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playperu/trivia/internal/trivia"
)

func newAddCmd(a *app) *cobra.Command {
	var req trivia.CreateQuestionRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.api.CreateQuestion(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("adding question: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added question %d.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Question, "question", "q", "", "question text")
	cmd.Flags().StringVarP(&req.Answer, "answer", "a", "", "answer text")
	cmd.Flags().IntVarP(&req.Category, "category", "c", 0, "category id")
	cmd.Flags().IntVarP(&req.Difficulty, "difficulty", "d", 1, "difficulty from 1 to 5")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("answer")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

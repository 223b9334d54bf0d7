package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abiral/quizsight/internal/concepts"
	"github.com/abiral/quizsight/internal/report"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts <file>",
	Short: "Show concept mastery for a session",
	Long:  "Roll results up by concept tag, infer dependencies between weak concepts, and print teaching insights.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := loadRecord(cmd, args[0])
		if err != nil {
			return err
		}
		rec.EnsureQuestions()

		mastery := concepts.Analyze(rec.QuestionList(), rec.Results)
		deps := concepts.InferDependencies(mastery, rec.Results)
		insights := concepts.BuildInsights(mastery, deps)

		fmt.Fprint(cmd.OutOrStdout(), report.RenderConcepts(mastery, deps, insights))
		return nil
	},
}

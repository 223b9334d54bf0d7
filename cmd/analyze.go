package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abiral/quizsight/internal/analytics"
	"github.com/abiral/quizsight/internal/concepts"
	"github.com/abiral/quizsight/internal/record"
	"github.com/abiral/quizsight/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze one session result file",
	Long:  "Compute per-question statistics, problem flags, and the quiz summary for a saved session. The argument is a JSON file on disk or the filename of an imported archive.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		asJSON, _ := cmd.Flags().GetBool("json")
		withConcepts, _ := cmd.Flags().GetBool("concepts")

		if strict {
			if data, err := os.ReadFile(args[0]); err == nil {
				if err := record.Validate(data); err != nil {
					return err
				}
			}
		}

		rec, err := loadRecord(cmd, args[0])
		if err != nil {
			return err
		}

		analyses := analytics.AnalyzeQuestions(rec)
		summary := analytics.Summarize(analyses)

		if asJSON {
			out := map[string]any{
				"questionAnalytics": analyses,
				"summary":           summary,
			}
			if withConcepts {
				mastery := concepts.Analyze(rec.QuestionList(), rec.Results)
				deps := concepts.InferDependencies(mastery, rec.Results)
				out["conceptMastery"] = mastery
				out["conceptDependencies"] = deps
				out["insights"] = concepts.BuildInsights(mastery, deps)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Fprint(cmd.OutOrStdout(), report.RenderAnalysis(rec.QuizTitle, analyses, summary))
		if withConcepts {
			mastery := concepts.Analyze(rec.QuestionList(), rec.Results)
			deps := concepts.InferDependencies(mastery, rec.Results)
			insights := concepts.BuildInsights(mastery, deps)
			fmt.Fprint(cmd.OutOrStdout(), "\n"+report.RenderConcepts(mastery, deps, insights))
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "Emit raw JSON instead of a styled report")
	analyzeCmd.Flags().Bool("concepts", false, "Include concept mastery in the output")
	analyzeCmd.Flags().Bool("strict", false, "Validate the file against the record schema before analyzing")
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abiral/quizsight/internal/analytics"
	"github.com/abiral/quizsight/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse a session's questions interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := loadRecord(cmd, args[0])
		if err != nil {
			return err
		}

		analyses := analytics.AnalyzeQuestions(rec)
		summary := analytics.Summarize(analyses)
		return tui.Run(rec.QuizTitle, analyses, summary)
	},
}

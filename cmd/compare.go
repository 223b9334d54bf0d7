package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abiral/quizsight/internal/compare"
	"github.com/abiral/quizsight/internal/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare [files...]",
	Short: "Compare sessions of the same quiz over time",
	Long:  "Compare two or more sessions and report the success-rate trend overall and per question. Pass session files directly, or --quiz to compare every archived session of one quiz.",
	RunE: func(cmd *cobra.Command, args []string) error {
		quiz, _ := cmd.Flags().GetString("quiz")

		var sessions []compare.Session
		switch {
		case quiz != "":
			if len(args) > 0 {
				return fmt.Errorf("pass either files or --quiz, not both")
			}
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			stored, err := s.Archives().ByQuiz(cmd.Context(), quiz)
			if err != nil {
				return err
			}
			for _, sr := range stored {
				sessions = append(sessions, compare.Session{
					Filename: sr.Meta.Filename,
					Record:   sr.Record,
				})
			}
		case len(args) >= 2:
			for _, name := range args {
				rec, err := loadRecord(cmd, name)
				if err != nil {
					return err
				}
				sessions = append(sessions, compare.Session{Filename: name, Record: rec})
			}
		default:
			return fmt.Errorf("need at least two session files or --quiz")
		}

		result := compare.Compare(sessions)
		if result == nil {
			return fmt.Errorf("need at least two sessions to compare, have %d", len(sessions))
		}

		fmt.Fprint(cmd.OutOrStdout(), report.RenderComparison(result))
		return nil
	},
}

func init() {
	compareCmd.Flags().String("quiz", "", "Compare all archived sessions with this quiz title")
}

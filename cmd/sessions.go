package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List imported sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		sessions, err := s.Archives().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No sessions imported yet. Use `quizsight import <file>` first.")
			return nil
		}

		for _, sess := range sessions {
			saved := "unknown date"
			if !sess.Saved.IsZero() {
				saved = sess.Saved.Format("2006-01-02 15:04")
			}
			title := sess.QuizTitle
			if title == "" {
				title = "(untitled quiz)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-32s %s  %d players, %d questions\n",
				sess.Filename, title, saved, sess.ParticipantCount, sess.QuestionCount)
		}
		return nil
	},
}

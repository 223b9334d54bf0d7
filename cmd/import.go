package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abiral/quizsight/internal/record"
)

var importCmd = &cobra.Command{
	Use:   "import <files...>",
	Short: "Import session result files into the archive",
	Long:  "Validate session result files and store them in the local archive. Re-importing a filename replaces its stored payload.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		repo := s.Archives()
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			if err := record.Validate(data); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			rec, err := record.Decode(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			meta, err := repo.Save(cmd.Context(), filepath.Base(path), rec, data)
			if err != nil {
				return err
			}

			title := meta.QuizTitle
			if title == "" {
				title = "(untitled quiz)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %s, %d players, %d questions\n",
				meta.Filename, title, meta.ParticipantCount, meta.QuestionCount)
		}
		return nil
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abiral/quizsight/internal/record"
	"github.com/abiral/quizsight/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizsight",
	Short: "Quiz results analytics",
	Long:  "Quizsight — terminal analytics for saved quiz session results: per-question breakdowns, concept mastery, and cross-session trends.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZSIGHT_DB env var)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(conceptsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZSIGHT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the archive database for a command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

// loadRecord reads a session record from a file on disk, or from the
// archive when no such file exists.
func loadRecord(cmd *cobra.Command, name string) (*record.SessionRecord, error) {
	data, err := os.ReadFile(name)
	if err == nil {
		rec, err := record.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return rec, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	s, err := openStore(cmd)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	stored, err := s.Archives().Get(cmd.Context(), name)
	if err != nil {
		return nil, err
	}
	return stored.Record, nil
}

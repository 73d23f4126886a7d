package main

import (
	"os"

	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "recitectl",
		Short:         "Inspect corpora and replay recorded reading sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(corpusCmd(), replayCmd(), watchCmd())
	return cmd
}

// envOr returns the environment value for key, or def when unset.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

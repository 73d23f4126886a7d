package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/voicetyped/recite/pkg/corpus"
)

func corpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Validate and inspect reference corpus files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Load a corpus file and report its totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := corpus.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d lines (%d with reference audio), %d frames\n",
				c.TotalLines(), c.LastRealIndex()+1, c.TotalFrames())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "inspect <file>",
		Short: "Print per-phrase frame counts and durations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := corpus.Load(args[0])
			if err != nil {
				return err
			}
			return inspectCorpus(cmd, c)
		},
	})

	return cmd
}

func inspectCorpus(cmd *cobra.Command, c *corpus.Corpus) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tID\tFRAMES\tDURATION\tTEXT")
	for _, p := range c.Phrases() {
		text := p.TextSecondary
		if text == "" {
			text = p.TextPrimary
		}
		duration := fmt.Sprintf("%.2fs", p.Duration)
		if p.Terminal {
			duration = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", p.Index, p.ID, len(p.Frames), duration, text)
	}
	return w.Flush()
}

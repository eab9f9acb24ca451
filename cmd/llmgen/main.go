// llmgen inspects model catalogs used with the llm client: it validates
// catalog files, lists aliases with their pricing, and estimates per-call
// costs for hypothetical token counts.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/C41M50N/llm"
	"github.com/C41M50N/llm/config"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	root := &cobra.Command{
		Use:           "llmgen",
		Short:         "Inspect llm model catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(validateCmd(), modelsCmd(), estimateCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog.yaml>",
		Short: "Parse a catalog file and report problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := config.Load(args[0])
			if err != nil {
				return err
			}
			log.Info().Int("models", len(catalog.Models)).Msg("catalog is valid")
			return nil
		},
	}
}

func modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models <catalog.yaml>",
		Short: "List model aliases with pricing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := config.Load(args[0])
			if err != nil {
				return err
			}
			for _, alias := range catalog.Aliases() {
				m := catalog.Models[alias]
				pricing := "pricing not configured"
				if m.Costs != nil {
					pricing = fmt.Sprintf("in %s/Mtok, out %s/Mtok",
						llm.FormatUSD(m.Costs.Input), llm.FormatUSD(m.Costs.Output))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s/%s  %s\n", alias, m.Provider, m.Model, pricing)
			}
			return nil
		},
	}
}

func estimateCmd() *cobra.Command {
	var alias string
	var inputTokens, outputTokens int

	cmd := &cobra.Command{
		Use:   "estimate <catalog.yaml>",
		Short: "Estimate the cost of a call for given token counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := config.Load(args[0])
			if err != nil {
				return err
			}
			entries := catalog.ModelEntries()
			entry, ok := entries[alias]
			if !ok {
				return fmt.Errorf("model %q not in catalog (available: %v)", alias, catalog.Aliases())
			}
			cost := entry.Costs.Breakdown(inputTokens, outputTokens)
			if cost == nil {
				return fmt.Errorf("model %q has no pricing configured", alias)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (in: %s, out: %s)\n",
				alias, llm.FormatUSD(cost.TotalUSD), llm.FormatUSD(cost.InputUSD), llm.FormatUSD(cost.OutputUSD))
			return nil
		},
	}
	cmd.Flags().StringVar(&alias, "model", "", "model alias from the catalog")
	cmd.Flags().IntVar(&inputTokens, "input", 0, "input token count")
	cmd.Flags().IntVar(&outputTokens, "output", 0, "output token count")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

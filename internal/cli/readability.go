package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"seokit/internal/usecase"
)

var readabilityCmd = &cobra.Command{
	Use:   "readability [file|-]",
	Short: "Score readability with six classic formulas",
	Long: `Compute Flesch Reading Ease, Flesch-Kincaid, SMOG, Coleman-Liau, ARI and
Gunning Fog, plus a composite 0-100 score and sentence length buckets.

Examples:
  seokit readability post.md
  seokit readability page.html --json
  cat post.txt | seokit readability -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReadability,
}

func init() {
	rootCmd.AddCommand(readabilityCmd)
	readabilityCmd.Flags().StringVar(&inputFormat, "format", "auto", "input format: auto, text or html")
}

func runReadability(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	result := usecase.NewAnalyzeUseCase(GetConfig().Analysis).Readability(text)

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderReadability(result))
	return nil
}

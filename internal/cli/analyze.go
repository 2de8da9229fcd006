package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"seokit/internal/usecase"
)

var analyzeCompare string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file|-]",
	Short: "Run every analysis and print the full report",
	Long: `Run readability, keyword density, TF-IDF and sentiment in one pass.

Examples:
  seokit analyze post.md
  seokit analyze page.html --compare competitor.html --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeCompare, "compare", "c", "", "competitor document for TF-IDF")
	analyzeCmd.Flags().StringVar(&inputFormat, "format", "auto", "input format: auto, text or html")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	comparison, err := readComparison(analyzeCompare)
	if err != nil {
		return err
	}

	report, err := usecase.NewAnalyzeUseCase(GetConfig().Analysis).Analyze(cmd.Context(), text, comparison)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderReport(report, comparison != nil))
	return nil
}

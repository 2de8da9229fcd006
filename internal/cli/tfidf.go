package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"seokit/internal/usecase"
)

var (
	tfidfCompare string
	tfidfTop     int
)

var tfidfCmd = &cobra.Command{
	Use:   "tfidf [file|-]",
	Short: "Score terms by TF-IDF, optionally against a competitor",
	Long: `Rank the terms of a document by TF-IDF. Without --compare every IDF is 1
and the ranking is plain term frequency. With --compare, terms the competitor
also uses score 0 and terms unique to your document rise to the top.

Examples:
  seokit tfidf post.md
  seokit tfidf post.md --compare competitor.html --top 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTfIdf,
}

func init() {
	rootCmd.AddCommand(tfidfCmd)
	tfidfCmd.Flags().StringVarP(&tfidfCompare, "compare", "c", "", "competitor document to compare against")
	tfidfCmd.Flags().IntVarP(&tfidfTop, "top", "n", 0, "number of terms, -1 for all (default from config)")
	tfidfCmd.Flags().StringVar(&inputFormat, "format", "auto", "input format: auto, text or html")
}

func runTfIdf(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	comparison, err := readComparison(tfidfCompare)
	if err != nil {
		return err
	}

	entries := usecase.NewAnalyzeUseCase(GetConfig().Analysis).TfIdf(text, comparison, tfidfTop)

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), entries)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTfIdf(entries, comparison != nil))
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"seokit/internal/usecase"
)

var keywordsTop int

var keywordsCmd = &cobra.Command{
	Use:   "keywords [file|-]",
	Short: "Rank keywords by density",
	Long: `Count keywords after stopword and short-word filtering and report each
term's share of all counted words.

Examples:
  seokit keywords post.md
  seokit keywords post.md --top 5 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeywords,
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
	keywordsCmd.Flags().IntVarP(&keywordsTop, "top", "n", 0, "number of keywords, -1 for all (default from config)")
	keywordsCmd.Flags().StringVar(&inputFormat, "format", "auto", "input format: auto, text or html")
}

func runKeywords(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	summary := usecase.NewAnalyzeUseCase(GetConfig().Analysis).Keywords(text, keywordsTop)

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), summary)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderKeywords(summary))
	return nil
}

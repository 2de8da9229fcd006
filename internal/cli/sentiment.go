package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"seokit/internal/usecase"
)

var sentimentCmd = &cobra.Command{
	Use:   "sentiment [file|-]",
	Short: "Classify tone with a word lexicon",
	Long: `Score positive and negative words, honouring negations ("not good") and
intensifiers ("very good"), and classify the text as Positive, Negative or Neutral.

Examples:
  seokit sentiment review.txt
  echo "This is not good" | seokit sentiment - --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSentiment,
}

func init() {
	rootCmd.AddCommand(sentimentCmd)
	sentimentCmd.Flags().StringVar(&inputFormat, "format", "auto", "input format: auto, text or html")
}

func runSentiment(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	report := usecase.NewAnalyzeUseCase(GetConfig().Analysis).Sentiment(text)

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderSentiment(report))
	return nil
}

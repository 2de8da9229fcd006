package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"seokit/config"
	"seokit/internal/logger"
)

var (
	cfgFile    string
	cfg        *config.Config
	rootDir    string
	logLevel   string
	logJSON    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "seokit",
	Short: "Content scoring for SEO - readability, keywords, TF-IDF and sentiment",
	Long: `seokit scores plain text or HTML content with classic readability formulas,
keyword density, TF-IDF against a competitor page, and lexicon sentiment.

Example usage:
  seokit readability post.md            # Readability scores
  seokit keywords post.md --top 5       # Keyword density
  seokit tfidf post.md --compare rival.html
  cat post.txt | seokit sentiment -     # Sentiment from stdin
  seokit batch ./content                # Score every page in a directory`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		logCfg := logger.DefaultConfig()
		logCfg.Level = logger.ParseLevel(level)
		logCfg.JSON = cfg.Logging.JSON || logJSON
		logger.Init(logCfg)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(logger.ContextWithLogger(ctx, logger.GetDefault()))
		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./seokit.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error, off")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"seokit/config"
	"seokit/internal/adapter/cache"
	"seokit/internal/adapter/fs"
	"seokit/internal/adapter/store"
	"seokit/internal/logger"
	"seokit/internal/usecase"
)

var (
	batchList    bool
	batchRebuild bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [path]",
	Short: "Analyze every content file in a directory",
	Long: `Analyze all matching files under a directory and store one report per file
in .seokit/reports.db. Unchanged files are skipped on later runs and reports
for deleted files are removed.

Examples:
  seokit batch .                # Analyze current directory
  seokit batch ./content --json # Print stored reports as JSON
  seokit batch --list           # Show stored reports without analyzing`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().BoolVar(&batchList, "list", false, "list stored reports without analyzing")
	batchCmd.Flags().BoolVar(&batchRebuild, "rebuild", false, "discard stored reports and analyze everything")
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	log := logger.FromContext(cmd.Context())

	if err := config.EnsureDir(path); err != nil {
		return fmt.Errorf("failed to create .seokit directory: %w", err)
	}

	dbPath := config.ReportDBPath(path)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open report store: %w", err)
	}
	defer st.Close()

	if batchList {
		reports, err := st.List()
		if err != nil {
			return fmt.Errorf("failed to list reports: %w", err)
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), reports)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderStoredReports(reports))
		return nil
	}

	if batchRebuild {
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear reports: %w", err)
		}
	}
	rebuilt, reason, err := st.Prepare(cfg)
	if err != nil {
		return fmt.Errorf("failed to prepare report store: %w", err)
	}
	if rebuilt {
		log.Info("stored reports discarded", "reason", reason)
	}

	analyzer := cache.NewCachedAnalyzer(
		usecase.NewAnalyzeUseCase(cfg.Analysis),
		cache.NewReportCache(cfg.Cache.Size, cfg.Cache.TTL),
	)
	walker := fs.NewWalker(cfg.Batch.Includes, cfg.Batch.Excludes)
	batchUC := usecase.NewBatchUseCase(st, walker, fs.Reader{}, analyzer, cfg.Batch.Format, cfg.Batch.Workers)

	log.Info("scanning", "path", path)

	// Progress bar is created on the first callback, once the total is known.
	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	progressCallback := func(processed, total int) {
		if jsonOutput {
			return
		}
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Analyzing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}

		bar.Set(processed)

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			remaining := total - processed
			if rate > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Analyzing[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	result, err := batchUC.Run(cmd.Context(), path, progressCallback)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if jsonOutput {
		reports, err := st.List()
		if err != nil {
			return fmt.Errorf("failed to list reports: %w", err)
		}
		return writeJSON(cmd.OutOrStdout(), reports)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderBatch(result, dbPath))
	return nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}

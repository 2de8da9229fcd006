package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"seokit/internal/adapter/extract"
	"seokit/internal/domain"
	"seokit/internal/logger"
	"seokit/internal/port"
)

// ProgressFunc is called after each file with the number of files handled so far.
type ProgressFunc func(done, total int)

// BatchUseCase analyzes every content file under a directory and keeps
// the reports in a store, skipping files whose content has not changed.
type BatchUseCase struct {
	store    port.ReportStore
	walker   port.FileWalker
	reader   port.FileReader
	analyzer port.Analyzer
	format   string
	workers  int
}

// NewBatchUseCase creates a new batch use case.
func NewBatchUseCase(
	store port.ReportStore,
	walker port.FileWalker,
	reader port.FileReader,
	analyzer port.Analyzer,
	format string,
	workers int,
) *BatchUseCase {
	if workers < 1 {
		workers = 1
	}
	return &BatchUseCase{
		store:    store,
		walker:   walker,
		reader:   reader,
		analyzer: analyzer,
		format:   format,
		workers:  workers,
	}
}

// BatchResult contains the results of a batch run.
type BatchResult struct {
	FilesFound    int
	FilesAnalyzed int
	FilesSkipped  int
	FilesDeleted  int
	Errors        []string
}

// Run analyzes files under root. Per-file failures are collected in
// BatchResult.Errors; only walk, listing and cancellation errors abort the run.
func (u *BatchUseCase) Run(ctx context.Context, root string, progress ProgressFunc) (*BatchResult, error) {
	log := logger.FromContext(ctx).With("root", root)

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	existing, err := u.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list existing reports: %w", err)
	}
	existingMap := make(map[string]domain.StoredReport, len(existing))
	for _, r := range existing {
		existingMap[r.Path] = r
	}

	result := &BatchResult{FilesFound: len(files)}
	seenPaths := make(map[string]bool, len(files))
	for _, f := range files {
		seenPaths[f.Path] = true
	}

	var (
		mu   sync.Mutex
		done int
	)
	record := func(fn func()) {
		mu.Lock()
		defer mu.Unlock()
		fn()
		done++
		if progress != nil {
			progress(done, len(files))
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(u.workers)
	for _, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			analyzed, err := u.analyzeFile(groupCtx, file, existingMap[file.Path])
			if err != nil {
				if groupCtx.Err() != nil {
					return groupCtx.Err()
				}
				log.Warn("file analysis failed", "path", file.Path, "error", err)
				record(func() {
					result.Errors = append(result.Errors, fmt.Sprintf("failed to analyze %s: %v", file.Path, err))
				})
				return nil
			}
			record(func() {
				if analyzed {
					result.FilesAnalyzed++
				} else {
					result.FilesSkipped++
				}
			})
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	for path := range existingMap {
		if seenPaths[path] {
			continue
		}
		if err := u.store.Delete(path); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to delete %s: %v", path, err))
			continue
		}
		result.FilesDeleted++
	}

	sort.Strings(result.Errors)
	log.Info("batch finished",
		"found", result.FilesFound,
		"analyzed", result.FilesAnalyzed,
		"skipped", result.FilesSkipped,
		"deleted", result.FilesDeleted,
		"errors", len(result.Errors),
	)
	return result, nil
}

// analyzeFile reports false when the stored report is still current.
func (u *BatchUseCase) analyzeFile(ctx context.Context, file port.FileInfo, prev domain.StoredReport) (bool, error) {
	content, err := u.reader.ReadFile(file.Path)
	if err != nil {
		return false, fmt.Errorf("failed to read file: %w", err)
	}

	hash := contentHash(content)
	if prev.Path != "" && prev.ContentHash == hash {
		return false, nil
	}

	text, err := extract.PlainText(content, extract.FormatForPath(file.Path, u.format))
	if err != nil {
		return false, err
	}

	report, err := u.analyzer.Analyze(ctx, text, nil)
	if err != nil {
		return false, err
	}

	stored := domain.StoredReport{
		Path:        file.Path,
		ContentHash: hash,
		ModTime:     time.Unix(file.ModTime, 0),
		AnalyzedAt:  time.Now(),
		Report:      *report,
	}
	if err := u.store.Put(stored); err != nil {
		return false, fmt.Errorf("failed to store report: %w", err)
	}

	logger.FromContext(ctx).Debug("file analyzed", "path", file.Path, "words", report.Readability.Stats.WordCount)
	return true, nil
}

func contentHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:16])
}

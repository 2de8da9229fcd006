package usecase

import (
	"context"
	"fmt"

	"seokit/config"
	"seokit/internal/adapter/analyzer"
	"seokit/internal/adapter/keyword"
	"seokit/internal/adapter/readability"
	"seokit/internal/adapter/sentiment"
	"seokit/internal/domain"
	"seokit/internal/logger"
)

// AnalyzeUseCase runs readability, keyword, TF-IDF and sentiment scoring
// over a single text.
type AnalyzeUseCase struct {
	keywords    *keyword.Engine
	sentiment   *sentiment.Scorer
	keywordTopN int
	tfidfTopN   int
}

// NewAnalyzeUseCase creates a new analyze use case from the analysis config.
func NewAnalyzeUseCase(cfg config.AnalysisConfig) *AnalyzeUseCase {
	tokenizer := analyzer.NewTokenizer(cfg.RemoveStopwords, cfg.MinKeywordLength)
	return &AnalyzeUseCase{
		keywords:    keyword.NewEngine(tokenizer),
		sentiment:   sentiment.NewScorer(cfg.SentimentThreshold),
		keywordTopN: cfg.KeywordTopN,
		tfidfTopN:   cfg.TfIdfTopN,
	}
}

func (u *AnalyzeUseCase) Readability(text string) domain.ReadabilityResult {
	return readability.Analyze(text)
}

// Keywords returns keyword density. topN 0 uses the configured default,
// a negative topN returns every term.
func (u *AnalyzeUseCase) Keywords(text string, topN int) domain.KeywordSummary {
	if topN == 0 {
		topN = u.keywordTopN
	}
	return u.keywords.Density(text, topN)
}

func (u *AnalyzeUseCase) TfIdf(text string, comparison *string, topN int) []domain.TfIdfEntry {
	if topN == 0 {
		topN = u.tfidfTopN
	}
	return u.keywords.TfIdf(text, comparison, topN)
}

func (u *AnalyzeUseCase) Sentiment(text string) domain.SentimentReport {
	return u.sentiment.Score(text)
}

// Analyze builds the full report. A nil or blank comparison scores TF-IDF
// against text alone.
func (u *AnalyzeUseCase) Analyze(ctx context.Context, text string, comparison *string) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	report := &domain.Report{
		Readability: u.Readability(text),
		Keywords:    u.Keywords(text, u.keywordTopN),
		TfIdf:       u.TfIdf(text, comparison, u.tfidfTopN),
		Sentiment:   u.Sentiment(text),
	}

	logger.FromContext(ctx).Debug("text analyzed",
		"words", report.Readability.Stats.WordCount,
		"sentences", report.Readability.Stats.SentenceCount,
		"sentiment", report.Sentiment.Category,
	)
	return report, nil
}

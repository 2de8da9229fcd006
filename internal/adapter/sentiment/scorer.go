// Package sentiment implements a lexicon based sentiment heuristic with
// negation and intensifier handling.
package sentiment

import (
	"seokit/internal/adapter/analyzer"
	"seokit/internal/domain"
)

// DefaultThreshold is the overall score magnitude needed to leave Neutral.
const DefaultThreshold = 0.25

type Scorer struct {
	threshold float64
}

// NewScorer creates a Scorer. A threshold outside (0, 1) falls back to
// DefaultThreshold.
func NewScorer(threshold float64) *Scorer {
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultThreshold
	}
	return &Scorer{threshold: threshold}
}

func (s *Scorer) Threshold() float64 {
	return s.threshold
}

// Score rates text sentence by sentence and aggregates the buckets.
func (s *Scorer) Score(text string) domain.SentimentReport {
	var report domain.SentimentReport

	for _, sentence := range analyzer.Sentences(text) {
		words := analyzer.Terms(sentence)
		scored := scoreSentence(sentence, words)

		report.PositiveScore += scored.Positive
		report.NegativeScore += scored.Negative
		report.WordCount += len(words)
		report.Sentences = append(report.Sentences, scored)
	}

	total := float64(max(1, report.WordCount))
	report.PositivePercent = report.PositiveScore / total * 100
	report.NegativePercent = report.NegativeScore / total * 100
	report.NeutralPercent = 100 - report.PositivePercent - report.NegativePercent
	report.NeutralOverflow = report.NeutralPercent < 0

	if sum := report.PositiveScore + report.NegativeScore; sum > 0 {
		report.OverallScore = (report.PositiveScore - report.NegativeScore) / sum
	}
	report.Category = s.Category(report.OverallScore)

	return report
}

// Category maps an overall score in [-1, 1] to a sentiment label.
func (s *Scorer) Category(score float64) domain.SentimentCategory {
	switch {
	case score > s.threshold:
		return domain.Positive
	case score < -s.threshold:
		return domain.Negative
	default:
		return domain.Neutral
	}
}

func scoreSentence(text string, words []string) domain.SentenceSentiment {
	out := domain.SentenceSentiment{Text: text}

	hasNegation := false
	intensity := 1.0

	for _, word := range words {
		if _, ok := negations[word]; ok {
			hasNegation = true
			continue
		}
		if v, ok := intensifiers[word]; ok {
			intensity = v
			continue
		}

		_, isPositive := positiveWords[word]
		_, isNegative := negativeWords[word]
		switch {
		case isPositive:
			if hasNegation {
				out.Negative += intensity
			} else {
				out.Positive += intensity
			}
		case isNegative:
			if hasNegation {
				out.Positive += intensity
			} else {
				out.Negative += intensity
			}
		default:
			out.Neutral++
			continue
		}

		hasNegation = false
		intensity = 1.0
	}

	return out
}

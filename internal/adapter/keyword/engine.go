// Package keyword implements keyword density counting and the two-document
// TF-IDF scorer.
package keyword

import (
	"math"
	"sort"
	"strings"

	"seokit/internal/domain"
	"seokit/internal/port"
)

// Engine scores terms produced by a tokenizer.
type Engine struct {
	tokenizer port.Tokenizer
}

func NewEngine(tokenizer port.Tokenizer) *Engine {
	return &Engine{tokenizer: tokenizer}
}

// frequencies holds term counts in first-encountered order.
type frequencies struct {
	order  []string
	counts map[string]int
	total  int
}

func (e *Engine) count(text string) frequencies {
	tokens := e.tokenizer.Keywords(text)
	f := frequencies{
		counts: make(map[string]int, len(tokens)),
		total:  len(tokens),
	}
	for _, t := range tokens {
		if _, seen := f.counts[t]; !seen {
			f.order = append(f.order, t)
		}
		f.counts[t]++
	}
	return f
}

// Density returns the topN most frequent terms with their share of all
// filtered words. Ties keep first-encountered order. topN <= 0 returns every term.
func (e *Engine) Density(text string, topN int) domain.KeywordSummary {
	f := e.count(text)

	summary := domain.KeywordSummary{
		TotalWords:  f.total,
		UniqueTerms: len(f.order),
		Keywords:    []domain.KeywordEntry{},
	}
	if f.total == 0 {
		return summary
	}

	entries := make([]domain.KeywordEntry, 0, len(f.order))
	for _, term := range f.order {
		count := f.counts[term]
		entries = append(entries, domain.KeywordEntry{
			Term:           term,
			Count:          count,
			DensityPercent: float64(count) / float64(f.total) * 100,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	summary.Keywords = entries
	return summary
}

// TfIdf scores terms of main against an optional comparison document.
// Without a comparison (nil or blank) every IDF is 1. With one, IDF is
// ln(2/docsWithTerm), so terms shared by both documents score 0 and terms
// unique to main score ln(2)*TF. topN <= 0 returns every term.
func (e *Engine) TfIdf(main string, comparison *string, topN int) []domain.TfIdfEntry {
	mainDoc := e.count(main)
	if mainDoc.total == 0 {
		return []domain.TfIdfEntry{}
	}

	var other *frequencies
	if comparison != nil && strings.TrimSpace(*comparison) != "" {
		f := e.count(*comparison)
		other = &f
	}

	entries := make([]domain.TfIdfEntry, 0, len(mainDoc.order))
	for _, term := range mainDoc.order {
		count := mainDoc.counts[term]
		tf := float64(count) / float64(mainDoc.total)
		idf := inverseDocFrequency(term, other)

		entries = append(entries, domain.TfIdfEntry{
			Term:                term,
			TermFrequency:       tf,
			InverseDocFrequency: idf,
			Score:               tf * idf,
			RawCount:            count,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

// inverseDocFrequency is only called for terms present in the main document,
// so docsWithTerm is 1 or 2.
func inverseDocFrequency(term string, other *frequencies) float64 {
	if other == nil {
		return 1
	}
	docsWithTerm := 1.0
	if other.counts[term] > 0 {
		docsWithTerm++
	}
	return math.Log(2 / docsWithTerm)
}

package analyzer

import (
	"strings"

	"gonum.org/v1/gonum/stat"

	"seokit/internal/domain"
)

// Sentence length buckets, in words.
const (
	shortSentenceMax = 4
	idealSentenceMax = 15
	longSentenceMax  = 25
)

// ComputeStats aggregates the counts readability formulas need. Word and
// sentence counts are clamped to 1 so every ratio is defined, including for
// empty input.
func ComputeStats(text string) domain.TextStats {
	clean := NormalizeSpace(text)

	stats := domain.TextStats{
		SentenceCount: max(1, len(Sentences(clean))),
	}

	words := Words(clean)
	stats.WordCount = max(1, len(words))

	for _, word := range words {
		stats.CharCount += len([]rune(word))

		n := CountSyllables(word)
		stats.SyllableCount += n
		if n >= 3 && !IsNameOrAbbreviation(word) {
			stats.ComplexWordCount++
		}
	}

	return stats
}

// SentenceLengths buckets each sentence by its word count and reports the
// mean and standard deviation of those counts.
func SentenceLengths(text string) domain.SentenceLengths {
	var out domain.SentenceLengths

	sentences := Sentences(text)
	if len(sentences) == 0 {
		return out
	}

	out.Lengths = make([]float64, 0, len(sentences))
	for _, s := range sentences {
		n := len(strings.Fields(s))
		out.Lengths = append(out.Lengths, float64(n))

		switch {
		case n <= shortSentenceMax:
			out.Short++
		case n <= idealSentenceMax:
			out.Ideal++
		case n <= longSentenceMax:
			out.Long++
		default:
			out.VeryLong++
		}
	}

	if len(out.Lengths) == 1 {
		out.Mean = out.Lengths[0]
		return out
	}
	out.Mean, out.StdDev = stat.MeanStdDev(out.Lengths, nil)
	return out
}

// Package readability scores text with the Flesch, Flesch-Kincaid, SMOG,
// Coleman-Liau, ARI and Gunning Fog formulas.
//
// Scores are not clamped: pathological input may produce negative values or
// values above 100. Use Normalize when a bounded display value is needed.
package readability

import (
	"math"

	"seokit/internal/adapter/analyzer"
	"seokit/internal/domain"
)

type rating struct {
	min   float64
	label string
	grade string
}

// fleschRatings is ordered by descending threshold; first match wins.
var fleschRatings = []rating{
	{90, "Very Easy", "5th grade level"},
	{80, "Easy", "6th grade level"},
	{70, "Fairly Easy", "7th grade level"},
	{60, "Standard", "8th-9th grade level"},
	{50, "Fairly Difficult", "10th-12th grade level"},
	{30, "Difficult", "College level"},
}

var veryDifficult = rating{label: "Very Difficult", grade: "College graduate level"}

// Score computes every formula from stats.
func Score(stats domain.TextStats) domain.ReadabilityReport {
	flesch := FleschReadingEase(stats)
	r := rate(flesch)

	return domain.ReadabilityReport{
		FleschReadingEase: flesch,
		FleschKincaid:     FleschKincaidGrade(stats),
		SMOG:              SMOG(stats),
		ColemanLiau:       ColemanLiau(stats),
		ARI:               ARI(stats),
		GunningFog:        GunningFog(stats),
		Rating:            r.label,
		GradeDescription:  r.grade,
	}
}

// FleschReadingEase = 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
func FleschReadingEase(stats domain.TextStats) float64 {
	return 206.835 - 1.015*stats.WordsPerSentence() - 84.6*stats.SyllablesPerWord()
}

// FleschKincaidGrade = 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59.
func FleschKincaidGrade(stats domain.TextStats) float64 {
	return 0.39*stats.WordsPerSentence() + 11.8*stats.SyllablesPerWord() - 15.59
}

// SMOG = 1.043*sqrt(30*complex/sentences) + 3.1291.
func SMOG(stats domain.TextStats) float64 {
	ratio := float64(stats.ComplexWordCount) / float64(stats.SentenceCount)
	return 1.043*math.Sqrt(30*ratio) + 3.1291
}

// ColemanLiau = 0.0588*L - 0.296*S - 15.8, where L is letters per 100 words
// and S is sentences per 100 words.
func ColemanLiau(stats domain.TextStats) float64 {
	l := stats.AvgCharsPerWord() * 100
	s := float64(stats.SentenceCount) / float64(stats.WordCount) * 100
	return 0.0588*l - 0.296*s - 15.8
}

// ARI = 4.71*(chars/words) + 0.5*(words/sentences) - 21.43.
func ARI(stats domain.TextStats) float64 {
	return 4.71*stats.AvgCharsPerWord() + 0.5*stats.WordsPerSentence() - 21.43
}

// GunningFog = 0.4*((words/sentences) + 100*(complex/words)).
func GunningFog(stats domain.TextStats) float64 {
	return 0.4 * (stats.WordsPerSentence() + 100*stats.ComplexWordRatio())
}

// Rating maps a Flesch Reading Ease score to its label.
func Rating(flesch float64) string {
	return rate(flesch).label
}

func rate(flesch float64) rating {
	for _, r := range fleschRatings {
		if flesch >= r.min {
			return r
		}
	}
	return veryDifficult
}

// Normalize rescales score from [min, max] to [0, 100] and clamps.
// A degenerate range yields 0.
func Normalize(score, min, max float64) float64 {
	if max == min {
		return 0
	}
	return clamp((score-min)/(max-min)*100, 0, 100)
}

// MapToRange linearly maps value from one range onto another without clamping.
func MapToRange(value, fromMin, fromMax, toMin, toMax float64) float64 {
	if fromMax == fromMin {
		return toMin
	}
	scaled := (value - fromMin) / (fromMax - fromMin)
	return toMin + scaled*(toMax-toMin)
}

// Composite averages the normalized Flesch, Flesch-Kincaid and SMOG scores
// into one 0..100 value, higher meaning easier.
func Composite(report domain.ReadabilityReport) float64 {
	return (Normalize(report.FleschReadingEase, 0, 100) +
		Normalize(100-report.FleschKincaid*6.25, 0, 100) +
		Normalize(100-report.SMOG*6.25, 0, 100)) / 3
}

// Profile computes five 0..100 display axes.
func Profile(stats domain.TextStats, report domain.ReadabilityReport) domain.ReadabilityProfile {
	return domain.ReadabilityProfile{
		ReadingEase:    clamp(MapToRange(report.FleschReadingEase, 0, 100, 0, 100), 0, 100),
		GradeLevel:     clamp(MapToRange(math.Min(report.FleschKincaid, 16), 0, 16, 100, 0), 0, 100),
		SentenceLength: clamp(MapToRange(stats.WordsPerSentence(), 10, 25, 100, 0), 0, 100),
		WordLength:     clamp(MapToRange(stats.SyllablesPerWord(), 1, 3, 100, 0), 0, 100),
		ContentLength:  clamp(MapToRange(math.Min(float64(stats.WordCount), 1000), 0, 1000, 0, 100), 0, 100),
	}
}

// Analyze runs the full readability pipeline over text.
func Analyze(text string) domain.ReadabilityResult {
	stats := analyzer.ComputeStats(text)
	report := Score(stats)

	return domain.ReadabilityResult{
		Stats:           stats,
		Scores:          report,
		Composite:       Composite(report),
		Profile:         Profile(stats, report),
		SentenceLengths: analyzer.SentenceLengths(text),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

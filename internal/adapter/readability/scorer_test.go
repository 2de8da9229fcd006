package readability

import (
	"math"
	"testing"

	"seokit/internal/domain"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestScore_ShortSentence(t *testing.T) {
	stats := domain.TextStats{SentenceCount: 1, WordCount: 3, SyllableCount: 3, CharCount: 10}
	report := Score(stats)

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"flesch", report.FleschReadingEase, 206.835 - 1.015*3 - 84.6},
		{"flesch-kincaid", report.FleschKincaid, 0.39*3 + 11.8 - 15.59},
		{"smog", report.SMOG, 3.1291},
		{"coleman-liau", report.ColemanLiau, 0.0588*(10.0/3*100) - 0.296*(1.0/3*100) - 15.8},
		{"ari", report.ARI, 4.71*(10.0/3) + 0.5*3 - 21.43},
		{"gunning-fog", report.GunningFog, 1.2},
	}
	for _, tt := range tests {
		if !approxEqual(tt.got, tt.expected) {
			t.Errorf("%s = %f, want %f", tt.name, tt.got, tt.expected)
		}
	}

	if report.Rating != "Very Easy" {
		t.Errorf("expected rating 'Very Easy', got %q", report.Rating)
	}
	if report.GradeDescription != "5th grade level" {
		t.Errorf("expected grade '5th grade level', got %q", report.GradeDescription)
	}
}

func TestScore_ComplexWords(t *testing.T) {
	stats := domain.TextStats{SentenceCount: 2, WordCount: 20, SyllableCount: 30, ComplexWordCount: 4, CharCount: 100}
	report := Score(stats)

	if want := 1.043*math.Sqrt(30*2.0) + 3.1291; !approxEqual(report.SMOG, want) {
		t.Errorf("SMOG = %f, want %f", report.SMOG, want)
	}
	if want := 0.4 * (10 + 100*0.2); !approxEqual(report.GunningFog, want) {
		t.Errorf("GunningFog = %f, want %f", report.GunningFog, want)
	}
}

func TestFleschReadingEase_DecreasesWithSyllables(t *testing.T) {
	prev := math.Inf(1)
	for syllables := 10; syllables <= 40; syllables += 5 {
		stats := domain.TextStats{SentenceCount: 2, WordCount: 10, SyllableCount: syllables}
		score := FleschReadingEase(stats)
		if score >= prev {
			t.Errorf("expected score to decrease: syllables=%d score=%f prev=%f", syllables, score, prev)
		}
		prev = score
	}
}

func TestRating(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{120, "Very Easy"},
		{90, "Very Easy"},
		{89.99, "Easy"},
		{80, "Easy"},
		{70, "Fairly Easy"},
		{65, "Standard"},
		{50, "Fairly Difficult"},
		{30, "Difficult"},
		{29.9, "Very Difficult"},
		{-45, "Very Difficult"},
	}

	for _, tt := range tests {
		if got := Rating(tt.score); got != tt.expected {
			t.Errorf("Rating(%v) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		score, min, max float64
		expected        float64
	}{
		{50, 0, 100, 50},
		{150, 0, 100, 100},
		{-20, 0, 100, 0},
		{5, 0, 10, 50},
		{7, 7, 7, 0},
	}

	for _, tt := range tests {
		if got := Normalize(tt.score, tt.min, tt.max); !approxEqual(got, tt.expected) {
			t.Errorf("Normalize(%v, %v, %v) = %v, want %v", tt.score, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestMapToRange(t *testing.T) {
	if got := MapToRange(17.5, 10, 25, 100, 0); !approxEqual(got, 50) {
		t.Errorf("expected 50, got %f", got)
	}
	if got := MapToRange(40, 10, 25, 100, 0); !approxEqual(got, -100) {
		t.Errorf("expected unclamped -100, got %f", got)
	}
	if got := MapToRange(3, 5, 5, 10, 20); got != 10 {
		t.Errorf("expected toMin for empty range, got %f", got)
	}
}

func TestComposite(t *testing.T) {
	report := domain.ReadabilityReport{FleschReadingEase: 60, FleschKincaid: 8, SMOG: 8}
	// (60 + 50 + 50) / 3
	if got := Composite(report); !approxEqual(got, 160.0/3) {
		t.Errorf("expected %f, got %f", 160.0/3, got)
	}

	extreme := domain.ReadabilityReport{FleschReadingEase: 150, FleschKincaid: -5, SMOG: 30}
	if got := Composite(extreme); got < 0 || got > 100 {
		t.Errorf("composite out of range: %f", got)
	}
}

func TestProfile_Bounded(t *testing.T) {
	inputs := []domain.TextStats{
		{SentenceCount: 1, WordCount: 1},
		{SentenceCount: 1, WordCount: 200, SyllableCount: 900, ComplexWordCount: 150, CharCount: 2000},
		{SentenceCount: 50, WordCount: 5000, SyllableCount: 5000, CharCount: 15000},
	}
	for _, stats := range inputs {
		p := Profile(stats, Score(stats))
		for name, v := range map[string]float64{
			"reading_ease":    p.ReadingEase,
			"grade_level":     p.GradeLevel,
			"sentence_length": p.SentenceLength,
			"word_length":     p.WordLength,
			"content_length":  p.ContentLength,
		} {
			if v < 0 || v > 100 || math.IsNaN(v) {
				t.Errorf("%s out of range for %+v: %f", name, stats, v)
			}
		}
	}
}

func TestAnalyze_NoInvalidNumbers(t *testing.T) {
	inputs := []string{"", " ", "?!", "The cat sat.", "ANTIDISESTABLISHMENTARIANISM", "a b c d e f g"}
	for _, input := range inputs {
		res := Analyze(input)
		values := []float64{
			res.Scores.FleschReadingEase, res.Scores.FleschKincaid, res.Scores.SMOG,
			res.Scores.ColemanLiau, res.Scores.ARI, res.Scores.GunningFog,
			res.Composite, res.SentenceLengths.Mean, res.SentenceLengths.StdDev,
		}
		for i, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("Analyze(%q) value %d is %v", input, i, v)
			}
		}
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	res := Analyze("")
	if res.Stats.WordCount != 1 || res.Stats.SentenceCount != 1 {
		t.Errorf("expected clamped counts, got %+v", res.Stats)
	}
	if want := 206.835 - 1.015; !approxEqual(res.Scores.FleschReadingEase, want) {
		t.Errorf("expected Flesch=%f at the boundary, got %f", want, res.Scores.FleschReadingEase)
	}
}

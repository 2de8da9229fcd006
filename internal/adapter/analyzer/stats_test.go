package analyzer

import (
	"math"
	"testing"

	"seokit/internal/domain"
)

func TestComputeStats_ShortSentence(t *testing.T) {
	stats := ComputeStats("The cat sat.")

	expected := domain.TextStats{
		SentenceCount:    1,
		WordCount:        3,
		SyllableCount:    3,
		ComplexWordCount: 0,
		CharCount:        10,
	}
	if stats != expected {
		t.Errorf("expected %+v, got %+v", expected, stats)
	}
}

func TestComputeStats_EmptyInputClamps(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t", "... !!!"} {
		stats := ComputeStats(input)
		if stats.WordCount != 1 {
			t.Errorf("ComputeStats(%q).WordCount = %d, want 1", input, stats.WordCount)
		}
		if stats.SentenceCount != 1 {
			t.Errorf("ComputeStats(%q).SentenceCount = %d, want 1", input, stats.SentenceCount)
		}
		if stats.SyllableCount != 0 || stats.ComplexWordCount != 0 || stats.CharCount != 0 {
			t.Errorf("ComputeStats(%q) expected zero counts, got %+v", input, stats)
		}
	}
}

func TestComputeStats_RepeatedSentences(t *testing.T) {
	stats := ComputeStats("SEO is very good. SEO is very good.")

	if stats.SentenceCount != 2 {
		t.Errorf("expected SentenceCount=2, got %d", stats.SentenceCount)
	}
	if stats.WordCount != 8 {
		t.Errorf("expected WordCount=8, got %d", stats.WordCount)
	}
	if stats.SyllableCount != 10 {
		t.Errorf("expected SyllableCount=10, got %d", stats.SyllableCount)
	}
}

func TestComputeStats_ComplexWords(t *testing.T) {
	stats := ComputeStats("Beautiful wonderful creativity flourishes everywhere. WONDERFUL NASA.")

	// Beautiful and WONDERFUL look like names; flourishes has two syllables.
	if stats.ComplexWordCount != 3 {
		t.Errorf("expected ComplexWordCount=3, got %d", stats.ComplexWordCount)
	}
	if stats.SentenceCount != 2 {
		t.Errorf("expected SentenceCount=2, got %d", stats.SentenceCount)
	}
}

func TestComputeStats_Idempotent(t *testing.T) {
	text := "Readability formulas estimate difficulty. Shorter sentences help readers!"
	a := ComputeStats(text)
	b := ComputeStats(text)
	if a != b {
		t.Errorf("expected identical stats, got %+v and %+v", a, b)
	}
}

func TestComputeStats_RatiosFinite(t *testing.T) {
	inputs := []string{"", "a", "The cat sat.", "!!!", "word " + "x"}
	for _, input := range inputs {
		stats := ComputeStats(input)
		for name, v := range map[string]float64{
			"AvgCharsPerWord":  stats.AvgCharsPerWord(),
			"WordsPerSentence": stats.WordsPerSentence(),
			"SyllablesPerWord": stats.SyllablesPerWord(),
			"ComplexWordRatio": stats.ComplexWordRatio(),
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("ComputeStats(%q).%s = %v", input, name, v)
			}
		}
	}
}

func TestSentenceLengths(t *testing.T) {
	lengths := SentenceLengths("Short one. This sentence has exactly six words.")

	if lengths.Short != 1 || lengths.Ideal != 1 || lengths.Long != 0 || lengths.VeryLong != 0 {
		t.Errorf("unexpected buckets: %+v", lengths)
	}
	if lengths.Mean != 4 {
		t.Errorf("expected Mean=4, got %f", lengths.Mean)
	}
	if math.Abs(lengths.StdDev-math.Sqrt(8)) > 1e-9 {
		t.Errorf("expected StdDev=%f, got %f", math.Sqrt(8), lengths.StdDev)
	}
}

func TestSentenceLengths_SingleAndEmpty(t *testing.T) {
	single := SentenceLengths("Just one sentence here.")
	if single.Mean != 4 || single.StdDev != 0 {
		t.Errorf("expected Mean=4 StdDev=0, got %+v", single)
	}

	empty := SentenceLengths("")
	if empty.Mean != 0 || empty.StdDev != 0 || len(empty.Lengths) != 0 {
		t.Errorf("expected zero value for empty input, got %+v", empty)
	}
}

func TestSentenceLengths_LongBuckets(t *testing.T) {
	long := "one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen sixteen seventeen."
	veryLong := "a b c d e f g h i j k l m n o p q r s t u v w x y z."
	lengths := SentenceLengths(long + " " + "Then " + veryLong)

	if lengths.Long != 1 || lengths.VeryLong != 1 {
		t.Errorf("unexpected buckets: %+v", lengths)
	}
}

func TestSentenceLengths_UsesReadabilitySplit(t *testing.T) {
	// Terminators not followed by an uppercase letter do not end a sentence,
	// so the buckets agree with SentenceCount.
	text := "Version 2.5 is out. it works well! Great."
	got := SentenceLengths(text)

	if len(got.Lengths) != ComputeStats(text).SentenceCount {
		t.Fatalf("expected %d lengths, got %v", ComputeStats(text).SentenceCount, got.Lengths)
	}
	if len(got.Lengths) != 2 || got.Lengths[0] != 7 || got.Lengths[1] != 1 {
		t.Errorf("expected lengths [7 1], got %v", got.Lengths)
	}
}

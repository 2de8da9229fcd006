package keyword

import (
	"math"
	"testing"

	"seokit/internal/adapter/analyzer"
)

func newTestEngine(minLength int) *Engine {
	return NewEngine(analyzer.NewTokenizer(true, minLength))
}

func strPtr(s string) *string {
	return &s
}

const article = `Content marketing drives organic traffic. Great content earns links,
and links improve rankings. Marketing teams should measure traffic, rankings and
conversions. Content, content, content.`

func TestDensity_SortedByCount(t *testing.T) {
	engine := newTestEngine(analyzer.DefaultMinKeywordLength)
	summary := engine.Density(article, 0)

	if len(summary.Keywords) == 0 {
		t.Fatal("expected keywords")
	}
	top, _ := summary.Top()
	if top.Term != "content" || top.Count != 5 {
		t.Errorf("expected top keyword content x5, got %+v", top)
	}

	total := 0.0
	for i, kw := range summary.Keywords {
		if i > 0 && kw.Count > summary.Keywords[i-1].Count {
			t.Errorf("keywords not sorted at %d: %v", i, summary.Keywords)
		}
		total += kw.DensityPercent
	}
	if total > 100+1e-9 {
		t.Errorf("density sum exceeds 100: %f", total)
	}
	if math.Abs(total-100) > 1e-9 {
		t.Errorf("expected full density sum of 100 with no cap, got %f", total)
	}
}

func TestDensity_TiesKeepFirstSeenOrder(t *testing.T) {
	engine := newTestEngine(analyzer.DefaultMinKeywordLength)
	summary := engine.Density("zebra apple mango apple zebra mango kiwis", 0)

	expected := []string{"zebra", "apple", "mango", "kiwis"}
	if len(summary.Keywords) != len(expected) {
		t.Fatalf("expected %d keywords, got %v", len(expected), summary.Keywords)
	}
	for i, term := range expected {
		if summary.Keywords[i].Term != term {
			t.Errorf("position %d: expected %s, got %s", i, term, summary.Keywords[i].Term)
		}
	}
}

func TestDensity_TopN(t *testing.T) {
	engine := newTestEngine(analyzer.DefaultMinKeywordLength)
	summary := engine.Density(article, 3)

	if len(summary.Keywords) != 3 {
		t.Errorf("expected 3 keywords, got %d", len(summary.Keywords))
	}
	if summary.UniqueTerms <= 3 {
		t.Errorf("expected unique terms to count every term, got %d", summary.UniqueTerms)
	}
	for _, kw := range summary.Keywords {
		want := float64(kw.Count) / float64(summary.TotalWords) * 100
		if math.Abs(kw.DensityPercent-want) > 1e-9 {
			t.Errorf("%s density = %f, want %f", kw.Term, kw.DensityPercent, want)
		}
	}
}

func TestDensity_EmptyInput(t *testing.T) {
	engine := newTestEngine(analyzer.DefaultMinKeywordLength)

	for _, input := range []string{"", "a an the", "!!!"} {
		summary := engine.Density(input, 10)
		if summary.TotalWords != 0 || len(summary.Keywords) != 0 {
			t.Errorf("Density(%q) expected empty summary, got %+v", input, summary)
		}
		if _, ok := summary.Top(); ok {
			t.Errorf("Density(%q) expected no top keyword", input)
		}
	}
}

func TestDensity_RepeatedSentenceExample(t *testing.T) {
	// With the default minimum, three-letter terms such as "seo" are dropped.
	engine := newTestEngine(2)
	summary := engine.Density("SEO is very good. SEO is very good.", 1)

	if len(summary.Keywords) != 1 {
		t.Fatalf("expected 1 keyword, got %d", len(summary.Keywords))
	}
	if summary.Keywords[0].Term != "seo" || summary.Keywords[0].Count != 2 {
		t.Errorf("expected seo x2, got %+v", summary.Keywords[0])
	}
}

func TestTfIdf_SingleDocument(t *testing.T) {
	engine := newTestEngine(2)
	entries := engine.TfIdf("SEO is very good. SEO is very good.", nil, 0)

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %v", entries)
	}
	for _, e := range entries {
		if e.InverseDocFrequency != 1 {
			t.Errorf("%s idf = %f, want 1", e.Term, e.InverseDocFrequency)
		}
	}
	if entries[0].Term != "seo" {
		t.Errorf("expected seo first, got %s", entries[0].Term)
	}
	if want := 2.0 / 6.0; math.Abs(entries[0].Score-want) > 1e-12 {
		t.Errorf("seo score = %f, want %f", entries[0].Score, want)
	}
	if entries[0].RawCount != 2 {
		t.Errorf("expected raw count 2, got %d", entries[0].RawCount)
	}
}

func TestTfIdf_IdenticalDocumentsScoreZero(t *testing.T) {
	engine := newTestEngine(analyzer.DefaultMinKeywordLength)
	entries := engine.TfIdf(article, strPtr(article), 0)

	if len(entries) == 0 {
		t.Fatal("expected entries")
	}
	for _, e := range entries {
		if e.Score != 0 || e.InverseDocFrequency != 0 {
			t.Errorf("%s expected zero score, got idf=%f score=%f", e.Term, e.InverseDocFrequency, e.Score)
		}
	}
}

func TestTfIdf_RewardsUniqueTerms(t *testing.T) {
	engine := newTestEngine(analyzer.DefaultMinKeywordLength)
	entries := engine.TfIdf("shared shared unique", strPtr("shared words only"), 0)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %v", entries)
	}
	if entries[0].Term != "unique" {
		t.Errorf("expected unique term first, got %s", entries[0].Term)
	}
	if math.Abs(entries[0].InverseDocFrequency-math.Ln2) > 1e-12 {
		t.Errorf("expected idf ln2, got %f", entries[0].InverseDocFrequency)
	}
	if want := math.Ln2 / 3; math.Abs(entries[0].Score-want) > 1e-12 {
		t.Errorf("expected score %f, got %f", want, entries[0].Score)
	}
	if entries[1].Term != "shared" || entries[1].Score != 0 {
		t.Errorf("expected shared with zero score, got %+v", entries[1])
	}
}

func TestTfIdf_BlankComparisonIsSingleDocument(t *testing.T) {
	engine := newTestEngine(analyzer.DefaultMinKeywordLength)
	entries := engine.TfIdf("ranking signals", strPtr("   "), 0)

	for _, e := range entries {
		if e.InverseDocFrequency != 1 {
			t.Errorf("%s idf = %f, want 1", e.Term, e.InverseDocFrequency)
		}
	}
}

func TestTfIdf_ComparisonWithoutTermsIsEmptyDocument(t *testing.T) {
	engine := newTestEngine(analyzer.DefaultMinKeywordLength)
	entries := engine.TfIdf("ranking signals", strPtr("the a is"), 0)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %v", entries)
	}
	for _, e := range entries {
		if math.Abs(e.InverseDocFrequency-math.Ln2) > 1e-12 {
			t.Errorf("%s idf = %f, want ln 2", e.Term, e.InverseDocFrequency)
		}
	}
}

func TestTfIdf_CapAndEmpty(t *testing.T) {
	engine := newTestEngine(analyzer.DefaultMinKeywordLength)

	if entries := engine.TfIdf(article, nil, 2); len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
	if entries := engine.TfIdf("", strPtr(article), 20); len(entries) != 0 {
		t.Errorf("expected no entries for empty main document, got %d", len(entries))
	}
}

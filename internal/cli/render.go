package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seokit/internal/domain"
	"seokit/internal/usecase"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Width(22)
	valueStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("69")).
			Padding(0, 1)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	categoryColors = map[domain.SentimentCategory]lipgloss.Color{
		domain.Positive: lipgloss.Color("42"),
		domain.Negative: lipgloss.Color("196"),
		domain.Neutral:  lipgloss.Color("245"),
	}
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func row(label string, value any) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(fmt.Sprint(value)))
}

func section(title string, rows ...string) string {
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), body))
}

func renderReadability(r domain.ReadabilityResult) string {
	s := r.Scores
	l := r.SentenceLengths
	return section("Readability",
		row("Rating", fmt.Sprintf("%s (%s)", s.Rating, s.GradeDescription)),
		row("Composite", fmt.Sprintf("%.0f / 100", r.Composite)),
		row("Flesch Reading Ease", fmt.Sprintf("%.1f", s.FleschReadingEase)),
		row("Flesch-Kincaid Grade", fmt.Sprintf("%.1f", s.FleschKincaid)),
		row("SMOG", fmt.Sprintf("%.1f", s.SMOG)),
		row("Coleman-Liau", fmt.Sprintf("%.1f", s.ColemanLiau)),
		row("ARI", fmt.Sprintf("%.1f", s.ARI)),
		row("Gunning Fog", fmt.Sprintf("%.1f", s.GunningFog)),
		"",
		row("Words", r.Stats.WordCount),
		row("Sentences", r.Stats.SentenceCount),
		row("Syllables", r.Stats.SyllableCount),
		row("Complex words", r.Stats.ComplexWordCount),
		row("Sentence length", fmt.Sprintf("%.1f ± %.1f words", l.Mean, l.StdDev)),
		row("Short/ideal/long/very", fmt.Sprintf("%d / %d / %d / %d", l.Short, l.Ideal, l.Long, l.VeryLong)),
	)
}

func renderKeywords(k domain.KeywordSummary) string {
	rows := []string{row("Words counted", k.TotalWords), row("Unique terms", k.UniqueTerms), ""}
	if len(k.Keywords) == 0 {
		rows = append(rows, warnStyle.Render("no keywords found"))
	}
	for i, e := range k.Keywords {
		rows = append(rows, row(fmt.Sprintf("%2d. %s", i+1, e.Term), fmt.Sprintf("%d  (%.2f%%)", e.Count, e.DensityPercent)))
	}
	return section("Keyword density", rows...)
}

func renderTfIdf(entries []domain.TfIdfEntry, compared bool) string {
	mode := "single document"
	if compared {
		mode = "against comparison"
	}
	rows := []string{row("Mode", mode), ""}
	if len(entries) == 0 {
		rows = append(rows, warnStyle.Render("no terms found"))
	}
	for i, e := range entries {
		rows = append(rows, row(fmt.Sprintf("%2d. %s", i+1, e.Term),
			fmt.Sprintf("%.4f  tf=%.4f idf=%.3f n=%d", e.Score, e.TermFrequency, e.InverseDocFrequency, e.RawCount)))
	}
	return section("TF-IDF", rows...)
}

func renderSentiment(r domain.SentimentReport) string {
	category := lipgloss.NewStyle().Bold(true).Foreground(categoryColors[r.Category]).Render(string(r.Category))
	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Category"), category),
		row("Overall score", fmt.Sprintf("%+.2f", r.OverallScore)),
		row("Positive", fmt.Sprintf("%.1f%%", r.PositivePercent)),
		row("Negative", fmt.Sprintf("%.1f%%", r.NegativePercent)),
		row("Neutral", fmt.Sprintf("%.1f%%", r.NeutralPercent)),
		row("Words", r.WordCount),
	}
	if r.NeutralOverflow {
		rows = append(rows, warnStyle.Render("weighted sentiment exceeds word count"))
	}
	return section("Sentiment", rows...)
}

func renderReport(r *domain.Report, compared bool) string {
	return strings.Join([]string{
		renderReadability(r.Readability),
		renderKeywords(r.Keywords),
		renderTfIdf(r.TfIdf, compared),
		renderSentiment(r.Sentiment),
	}, "\n")
}

func renderBatch(r *usecase.BatchResult, dbPath string) string {
	rows := []string{
		row("Files found", r.FilesFound),
		row("Files analyzed", r.FilesAnalyzed),
		row("Files skipped", fmt.Sprintf("%d (unchanged)", r.FilesSkipped)),
		row("Reports deleted", fmt.Sprintf("%d (removed)", r.FilesDeleted)),
		row("Reports stored at", dbPath),
	}
	for _, e := range r.Errors {
		rows = append(rows, warnStyle.Render("- "+e))
	}
	return section("Batch complete", rows...)
}

func renderStoredReports(reports []domain.StoredReport) string {
	if len(reports) == 0 {
		return warnStyle.Render("no stored reports")
	}
	rows := make([]string, 0, len(reports))
	for _, r := range reports {
		top := "-"
		if k, ok := r.Report.Keywords.Top(); ok {
			top = k.Term
		}
		rows = append(rows, row(r.Path, fmt.Sprintf("flesch=%.0f  %s  top=%s",
			r.Report.Readability.Scores.FleschReadingEase, r.Report.Sentiment.Category, top)))
	}
	return section("Stored reports", rows...)
}

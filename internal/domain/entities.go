package domain

import "time"

// TextStats holds the raw counts readability formulas are computed from.
// WordCount and SentenceCount are never below 1.
type TextStats struct {
	SentenceCount    int `json:"sentence_count"`
	WordCount        int `json:"word_count"`
	SyllableCount    int `json:"syllable_count"`
	ComplexWordCount int `json:"complex_word_count"`
	CharCount        int `json:"char_count"`
}

func (s TextStats) AvgCharsPerWord() float64 {
	return float64(s.CharCount) / float64(s.WordCount)
}

func (s TextStats) WordsPerSentence() float64 {
	return float64(s.WordCount) / float64(s.SentenceCount)
}

func (s TextStats) SyllablesPerWord() float64 {
	return float64(s.SyllableCount) / float64(s.WordCount)
}

// ComplexWordRatio is the share of complex words, 0..1.
func (s TextStats) ComplexWordRatio() float64 {
	return float64(s.ComplexWordCount) / float64(s.WordCount)
}

type ReadabilityReport struct {
	FleschReadingEase float64 `json:"flesch_reading_ease"`
	FleschKincaid     float64 `json:"flesch_kincaid_grade"`
	SMOG              float64 `json:"smog"`
	ColemanLiau       float64 `json:"coleman_liau"`
	ARI               float64 `json:"ari"`
	GunningFog        float64 `json:"gunning_fog"`
	Rating            string  `json:"rating"`
	GradeDescription  string  `json:"grade_description"`
}

// ReadabilityProfile is a set of 0..100 display axes, higher is easier.
type ReadabilityProfile struct {
	ReadingEase    float64 `json:"reading_ease"`
	GradeLevel     float64 `json:"grade_level"`
	SentenceLength float64 `json:"sentence_length"`
	WordLength     float64 `json:"word_length"`
	ContentLength  float64 `json:"content_length"`
}

type SentenceLengths struct {
	Short    int       `json:"short"`
	Ideal    int       `json:"ideal"`
	Long     int       `json:"long"`
	VeryLong int       `json:"very_long"`
	Mean     float64   `json:"mean"`
	StdDev   float64   `json:"std_dev"`
	Lengths  []float64 `json:"lengths,omitempty"`
}

type ReadabilityResult struct {
	Stats           TextStats          `json:"stats"`
	Scores          ReadabilityReport  `json:"scores"`
	Composite       float64            `json:"composite"`
	Profile         ReadabilityProfile `json:"profile"`
	SentenceLengths SentenceLengths    `json:"sentence_lengths"`
}

type KeywordEntry struct {
	Term           string  `json:"term"`
	Count          int     `json:"count"`
	DensityPercent float64 `json:"density_percent"`
}

type KeywordSummary struct {
	TotalWords  int            `json:"total_words"`
	UniqueTerms int            `json:"unique_terms"`
	Keywords    []KeywordEntry `json:"keywords"`
}

// Top returns the highest ranked keyword, if any.
func (s KeywordSummary) Top() (KeywordEntry, bool) {
	if len(s.Keywords) == 0 {
		return KeywordEntry{}, false
	}
	return s.Keywords[0], true
}

type TfIdfEntry struct {
	Term                string  `json:"term"`
	TermFrequency       float64 `json:"term_frequency"`
	InverseDocFrequency float64 `json:"inverse_doc_frequency"`
	Score               float64 `json:"score"`
	RawCount            int     `json:"raw_count"`
}

type SentimentCategory string

const (
	Positive SentimentCategory = "Positive"
	Negative SentimentCategory = "Negative"
	Neutral  SentimentCategory = "Neutral"
)

type SentenceSentiment struct {
	Text     string  `json:"text"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  int     `json:"neutral"`
}

type SentimentReport struct {
	OverallScore    float64             `json:"overall_score"`
	Category        SentimentCategory   `json:"category"`
	PositivePercent float64             `json:"positive_percent"`
	NegativePercent float64             `json:"negative_percent"`
	NeutralPercent  float64             `json:"neutral_percent"`
	PositiveScore   float64             `json:"positive_score"`
	NegativeScore   float64             `json:"negative_score"`
	WordCount       int                 `json:"word_count"`
	NeutralOverflow bool                `json:"neutral_overflow,omitempty"`
	Sentences       []SentenceSentiment `json:"sentences,omitempty"`
}

// Report bundles every analysis run over one input.
type Report struct {
	Readability ReadabilityResult `json:"readability"`
	Keywords    KeywordSummary    `json:"keywords"`
	TfIdf       []TfIdfEntry      `json:"tfidf"`
	Sentiment   SentimentReport   `json:"sentiment"`
}

// StoredReport is a Report persisted for a file during batch runs.
type StoredReport struct {
	Path        string    `json:"path"`
	ContentHash string    `json:"content_hash"`
	ModTime     time.Time `json:"mod_time"`
	AnalyzedAt  time.Time `json:"analyzed_at"`
	Report      Report    `json:"report"`
}

package analyzer

import (
	"strings"
	"unicode"
)

// DefaultMinKeywordLength drops keyword tokens of this length or shorter.
const DefaultMinKeywordLength = 3

// Tokenizer extracts keyword terms with a length filter and optional stopword removal.
type Tokenizer struct {
	stopwords map[string]struct{}
	minLength int
}

// Tokens is the word and sentence split of one text.
type Tokens struct {
	Words     []string
	Sentences []string
}

// NewTokenizer creates a new Tokenizer. A minLength of 0 keeps every term;
// a negative minLength falls back to DefaultMinKeywordLength.
func NewTokenizer(removeStopwords bool, minLength int) *Tokenizer {
	if minLength < 0 {
		minLength = DefaultMinKeywordLength
	}
	t := &Tokenizer{minLength: minLength}
	if removeStopwords {
		t.stopwords = stopwordSet
	}
	return t
}

// Keywords returns the lower-cased alphanumeric terms longer than the
// configured minimum, with stopwords removed when enabled.
func (t *Tokenizer) Keywords(text string) []string {
	words := Terms(text)
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		if len(word) <= t.minLength {
			continue
		}
		if _, isStop := t.stopwords[word]; isStop {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// Tokenize splits text into readability words and sentences.
func Tokenize(text string) Tokens {
	return Tokens{
		Words:     Words(text),
		Sentences: Sentences(text),
	}
}

// IsStopword reports whether word is in the fixed stopword set.
func IsStopword(word string) bool {
	_, ok := stopwordSet[strings.ToLower(word)]
	return ok
}

// Terms lower-cases text, drops everything outside [a-z0-9] and whitespace,
// then splits on whitespace. No length or stopword filter is applied.
func Terms(text string) []string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	return strings.Fields(b.String())
}

// Words splits on whitespace and keeps every token carrying at least one
// ASCII letter or digit. Punctuation attached to a word is kept.
func Words(text string) []string {
	fields := strings.Fields(text)
	words := fields[:0]
	for _, f := range fields {
		if hasAlphanumeric(f) {
			words = append(words, f)
		}
	}
	return words
}

func hasAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return true
		}
	}
	return false
}

// NormalizeSpace collapses whitespace runs to a single space and trims.
func NormalizeSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Sentences splits on runs of '.', '!' or '?' that are followed by
// whitespace and an uppercase letter, or by the end of the text.
// Non-empty input always yields at least one sentence.
func Sentences(text string) []string {
	clean := NormalizeSpace(text)
	if clean == "" {
		return nil
	}

	var sentences []string
	start := 0
	for i := 0; i < len(clean); {
		if !isTerminator(clean[i]) {
			i++
			continue
		}
		runEnd := i
		for runEnd < len(clean) && isTerminator(clean[runEnd]) {
			runEnd++
		}
		if endsSentence(clean, runEnd) {
			if s := strings.TrimSpace(clean[start:i]); s != "" {
				sentences = append(sentences, s)
			}
			start = runEnd
		}
		i = runEnd
	}
	if s := strings.TrimSpace(clean[start:]); s != "" {
		sentences = append(sentences, s)
	}

	if len(sentences) == 0 {
		sentences = append(sentences, clean)
	}
	return sentences
}

func isTerminator(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

// endsSentence checks the text following a terminator run at pos.
func endsSentence(text string, pos int) bool {
	j := pos
	for j < len(text) && text[j] == ' ' {
		j++
	}
	if j == len(text) {
		return true
	}
	return j > pos && text[j] >= 'A' && text[j] <= 'Z'
}

var stopwordSet = func() map[string]struct{} {
	stops := []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for",
		"from", "has", "he", "in", "is", "it", "its", "of", "on",
		"that", "the", "to", "was", "were", "will", "with", "this",
		"have", "had", "but", "not", "you", "your", "they", "their",
		"there", "been", "what", "when", "which", "would", "about", "into",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}()

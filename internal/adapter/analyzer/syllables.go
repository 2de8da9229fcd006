package analyzer

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	silentEnding = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	vowelGroup   = regexp.MustCompile(`[aeiouy]+`)
)

// syllableExceptions are returned verbatim before any rule runs.
var syllableExceptions = map[string]int{
	"simile":    3,
	"forever":   3,
	"shoreline": 2,
}

// CountSyllables estimates syllables by counting vowel groups after dropping
// a silent ending. It is a heuristic and misjudges some words. The result is
// never below 1.
func CountSyllables(word string) int {
	word = lettersOnly(word)
	if len(word) <= 1 {
		return 1
	}

	if n, ok := syllableExceptions[word]; ok {
		return n
	}

	if len(word) > 3 {
		word = silentEnding.ReplaceAllString(word, "")
	}

	if n := len(vowelGroup.FindAllStringIndex(word, -1)); n > 0 {
		return n
	}
	return 1
}

func lettersOnly(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsNameOrAbbreviation reports whether word looks like a proper noun or an
// acronym: two characters or fewer, title case, or all upper case.
func IsNameOrAbbreviation(word string) bool {
	if len([]rune(word)) <= 2 {
		return true
	}
	if strings.ToUpper(word) == word {
		return true
	}
	return isTitleCase(word)
}

func isTitleCase(word string) bool {
	first := true
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if first {
			if !unicode.IsUpper(r) {
				return false
			}
			first = false
			continue
		}
		if unicode.IsUpper(r) {
			return false
		}
	}
	return !first
}

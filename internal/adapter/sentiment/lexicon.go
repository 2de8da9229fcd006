package sentiment

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var positiveWords = wordSet(
	"good", "great", "excellent", "amazing", "awesome", "fantastic", "wonderful",
	"best", "better", "love", "loved", "like", "happy", "helpful", "useful",
	"easy", "effective", "efficient", "reliable", "recommend", "recommended",
	"positive", "perfect", "brilliant", "outstanding", "superb", "enjoy",
	"enjoyed", "impressive", "valuable", "success", "successful", "fast",
	"clear", "friendly", "beautiful", "nice", "satisfied", "improve", "improved",
	"benefit", "quality", "powerful", "trusted", "win",
)

var negativeWords = wordSet(
	"bad", "poor", "terrible", "awful", "horrible", "worst", "worse", "hate",
	"hated", "dislike", "sad", "angry", "useless", "difficult", "hard",
	"slow", "broken", "buggy", "unreliable", "negative", "problem", "problems",
	"fail", "failed", "failure", "confusing", "annoying", "disappointing",
	"disappointed", "expensive", "error", "errors", "ugly", "weak", "boring",
	"frustrating", "spam", "penalty", "drop", "lose", "lost", "risk", "issue",
	"issues", "wrong",
)

// intensifiers scale the next sentiment word.
var intensifiers = map[string]float64{
	"somewhat":     1.1,
	"fairly":       1.1,
	"quite":        1.2,
	"too":          1.2,
	"pretty":       1.2,
	"really":       1.3,
	"so":           1.3,
	"particularly": 1.3,
	"especially":   1.3,
	"most":         1.4,
	"very":         1.5,
	"highly":       1.5,
	"super":        1.5,
	"totally":      1.6,
	"absolutely":   1.8,
	"incredibly":   1.8,
	"extremely":    2.0,
}

// negations flip the polarity of the next sentiment word. Apostrophes are
// already stripped by the tokenizer, so "don't" arrives as "dont".
var negations = wordSet(
	"not", "no", "never", "neither", "nor", "none", "nobody", "nothing",
	"nowhere", "cannot", "cant", "without", "hardly", "barely",
	"dont", "doesnt", "didnt", "isnt", "wasnt", "arent", "werent",
	"wont", "wouldnt", "couldnt", "shouldnt", "aint",
)

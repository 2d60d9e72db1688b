package textanalysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	minWordLen   = 4
	phraseWindow = 20
	maxPhraseLen = 40
)

var punctuation = regexp.MustCompile(`[^\w\s]`)

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "and", "that", "have", "for", "not", "with", "you", "this", "but",
		"his", "from", "they", "will", "would", "there", "their", "what", "about",
		"which", "when", "make", "like", "time", "just", "know", "take", "people",
		"into", "year", "your", "good", "some", "could", "them", "than", "then",
		"look", "only", "come", "over", "think", "also", "back", "after", "work",
		"first", "well", "even", "want", "because", "these", "give", "most",
	} {
		stopwords[w] = struct{}{}
	}
}

// counter counts string occurrences and remembers first-seen order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(s string) {
	if _, ok := c.counts[s]; !ok {
		c.order = append(c.order, s)
	}
	c.counts[s]++
}

// top returns up to n entries by descending count, ties in first-seen order.
func (c *counter) top(n int) []string {
	sorted := make([]string, len(c.order))
	copy(sorted, c.order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.counts[sorted[i]] > c.counts[sorted[j]]
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// ExtractKeywords returns up to maxKeywords distinct keywords and key phrases
// of text. Half of the budget goes to frequent single words, the other half to
// phrases around words that occur more than once. The result is deterministic.
func ExtractKeywords(text string, maxKeywords int) []string {
	if maxKeywords <= 0 {
		return []string{}
	}

	lower := strings.ToLower(text)
	words := significantWords(lower)

	wordCounts := newCounter()
	for _, w := range words {
		wordCounts.add(w)
	}

	// The window scan runs once per occurrence of a repeated word, so phrase
	// counts scale with the seed word's frequency.
	phrases := newCounter()
	patterns := make(map[string]*regexp.Regexp)
	for _, w := range words {
		if wordCounts.counts[w] <= 1 {
			continue
		}
		re, ok := patterns[w]
		if !ok {
			re = phrasePattern(w)
			patterns[w] = re
		}
		for _, match := range re.FindAllString(lower, -1) {
			phrase := strings.TrimSpace(match)
			if len(strings.Fields(phrase)) > 1 && len(phrase) < maxPhraseLen {
				phrases.add(phrase)
			}
		}
	}

	half := maxKeywords / 2
	candidates := append(wordCounts.top(half), phrases.top(half)...)

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}

func significantWords(lower string) []string {
	var words []string
	for _, w := range strings.Fields(punctuation.ReplaceAllString(lower, "")) {
		if len(w) < minWordLen {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		words = append(words, w)
	}
	return words
}

func phrasePattern(word string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`\b[\w\s]{0,%d}%s[\w\s]{0,%d}\b`, phraseWindow, regexp.QuoteMeta(word), phraseWindow))
}

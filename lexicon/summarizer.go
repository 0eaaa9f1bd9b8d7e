package lexicon

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/fwojciec/newslens"
)

// Ensure Summarizer implements newslens.Summarizer at compile time.
var _ newslens.Summarizer = (*Summarizer)(nil)

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"was": true, "were": true, "with": true, "that": true, "this": true,
	"from": true, "have": true, "has": true, "had": true, "its": true,
	"not": true, "you": true, "they": true, "their": true, "his": true,
	"her": true, "she": true, "him": true, "will": true, "would": true,
	"could": true, "should": true, "been": true, "being": true, "into": true,
	"than": true, "then": true, "them": true, "there": true, "which": true,
	"who": true, "what": true, "when": true, "where": true, "also": true,
	"about": true, "after": true, "before": true, "said": true, "says": true,
}

// Summarizer builds an extractive summary: sentences are ranked by the mean
// document frequency of their content words and the best ones are kept, in
// their original order, until the summary reaches the minimum length without
// exceeding the maximum. Tokens are whitespace-separated words.
type Summarizer struct{}

// NewSummarizer creates a new Summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

type sentence struct {
	pos    int
	text   string
	tokens int
	score  float64
}

// Summarize returns an extractive summary of text bounded by opts.
func (s *Summarizer) Summarize(_ context.Context, text string, opts newslens.SummaryOptions) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", newslens.Errorf(newslens.EINVALID, "text required")
	}
	if opts.MaxTokens <= 0 || opts.MinTokens > opts.MaxTokens {
		return "", newslens.Errorf(newslens.EINVALID, "invalid summary bounds %d..%d", opts.MinTokens, opts.MaxTokens)
	}

	sentences := splitSentences(text)
	freq := make(map[string]int)
	for _, w := range Tokenize(text) {
		if isContentWord(w) {
			freq[w]++
		}
	}
	for i := range sentences {
		sentences[i].score = scoreSentence(sentences[i].text, freq)
	}

	ranked := make([]sentence, len(sentences))
	copy(ranked, sentences)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	var picked []sentence
	total := 0
	for _, sent := range ranked {
		if total >= opts.MinTokens {
			break
		}
		if total+sent.tokens > opts.MaxTokens {
			continue
		}
		picked = append(picked, sent)
		total += sent.tokens
	}

	if len(picked) == 0 {
		return truncateWords(ranked[0].text, opts.MaxTokens), nil
	}

	sort.Slice(picked, func(i, j int) bool {
		return picked[i].pos < picked[j].pos
	})
	parts := make([]string, len(picked))
	for i, sent := range picked {
		parts[i] = sent.text
	}
	return strings.Join(parts, " "), nil
}

// splitSentences splits text after '.', '!' or '?' followed by whitespace,
// ignoring closing quotes and brackets.
// Whitespace inside a sentence is collapsed to single spaces.
func splitSentences(text string) []sentence {
	var sentences []sentence
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		sentences = append(sentences, sentence{
			pos:    len(sentences),
			text:   strings.Join(current, " "),
			tokens: len(current),
		})
		current = nil
	}

	for _, word := range strings.Fields(text) {
		current = append(current, word)
		if strings.ContainsAny(lastRune(strings.TrimRight(word, `"')”’`)), ".!?") {
			flush()
		}
	}
	flush()
	return sentences
}

func lastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return ""
	}
	return string(r[len(r)-1])
}

func scoreSentence(text string, freq map[string]int) float64 {
	words := Tokenize(text)
	if len(words) == 0 {
		return 0
	}
	sum := 0
	for _, w := range words {
		sum += freq[w]
	}
	return float64(sum) / float64(len(words))
}

func isContentWord(w string) bool {
	if len([]rune(w)) < 3 || stopWords[w] {
		return false
	}
	for _, r := range w {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// truncateWords keeps the first n whitespace-separated words of text.
func truncateWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ")
}

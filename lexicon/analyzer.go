// Package lexicon provides offline, deterministic implementations of the
// newslens model capabilities: a weighted-word sentiment analyzer and an
// extractive frequency-based summarizer. No network or API key is needed.
package lexicon

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/fwojciec/newslens"
)

// Ensure Analyzer implements newslens.Analyzer at compile time.
var _ newslens.Analyzer = (*Analyzer)(nil)

var positiveWords = map[string]float64{
	"good": 0.5, "great": 0.7, "excellent": 0.8, "outstanding": 0.8,
	"positive": 0.4, "success": 0.6, "successful": 0.6, "win": 0.5,
	"wins": 0.5, "won": 0.5, "gain": 0.4, "gains": 0.4, "growth": 0.4,
	"improve": 0.4, "improved": 0.5, "improvement": 0.5, "strong": 0.4,
	"record": 0.3, "surge": 0.6, "rally": 0.6, "rise": 0.3, "rises": 0.3,
	"benefit": 0.4, "benefits": 0.4, "hope": 0.4, "hopeful": 0.5,
	"happy": 0.6, "love": 0.6, "best": 0.6, "breakthrough": 0.7,
	"celebrate": 0.6, "celebrated": 0.6, "praise": 0.6, "praised": 0.6,
	"optimistic": 0.6, "recovery": 0.5, "profit": 0.4, "profits": 0.4,
	"beat": 0.4, "boost": 0.5, "boosted": 0.5, "innovative": 0.5,
	"safe": 0.3, "support": 0.3, "welcome": 0.4, "upgrade": 0.5,
}

var negativeWords = map[string]float64{
	"bad": 0.5, "poor": 0.5, "terrible": 0.8, "awful": 0.8,
	"negative": 0.4, "fail": 0.6, "failed": 0.6, "failure": 0.6,
	"loss": 0.5, "losses": 0.5, "lose": 0.4, "lost": 0.4, "decline": 0.5,
	"declined": 0.5, "drop": 0.4, "dropped": 0.4, "fall": 0.4, "fell": 0.4,
	"weak": 0.4, "crash": 0.8, "crisis": 0.7, "plunge": 0.7,
	"slump": 0.6, "risk": 0.3, "fear": 0.5, "fears": 0.5, "worry": 0.4,
	"worried": 0.5, "concern": 0.3, "concerns": 0.3, "warning": 0.5,
	"fraud": 0.8, "scandal": 0.7, "lawsuit": 0.5, "killed": 0.8,
	"death": 0.7, "dead": 0.7, "attack": 0.6, "war": 0.6, "violence": 0.7,
	"angry": 0.6, "hate": 0.7, "worst": 0.7, "cut": 0.3, "cuts": 0.3,
	"layoffs": 0.6, "downgrade": 0.5, "miss": 0.4, "delay": 0.3,
}

var negators = map[string]bool{
	"not": true, "no": true, "never": true, "without": true, "hardly": true,
}

// Analyzer scores text against a weighted word lexicon.
// A sentiment word directly preceded by a negator counts for the opposite
// polarity.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Classify returns POSITIVE or NEGATIVE with a score in [0.5,1] that grows
// with the margin between polarities and the amount of evidence. Text with
// no lexicon matches, or perfectly balanced text, is NEUTRAL with score 0.5.
func (a *Analyzer) Classify(_ context.Context, text string) (*newslens.Sentiment, error) {
	words := Tokenize(text)
	if len(words) == 0 {
		return nil, newslens.Errorf(newslens.EINVALID, "text required")
	}

	var pos, neg float64
	matches := 0
	for i, w := range words {
		p, isPos := positiveWords[w]
		n, isNeg := negativeWords[w]
		if !isPos && !isNeg {
			continue
		}
		matches++
		weight := p + n
		negated := i > 0 && isNegator(words[i-1])
		if isPos != negated {
			pos += weight
		} else {
			neg += weight
		}
	}

	if matches == 0 || pos == neg {
		return &newslens.Sentiment{Label: newslens.LabelNeutral, Score: 0.5}, nil
	}

	net := (pos - neg) / (pos + neg)
	coverage := math.Min(float64(matches)*0.15+0.2, 0.85)
	score := 0.5 + 0.5*math.Abs(net)*coverage

	label := newslens.LabelPositive
	if net < 0 {
		label = newslens.LabelNegative
	}
	return &newslens.Sentiment{Label: label, Score: score}, nil
}

// Tokenize lowercases text and splits it into words. Apostrophes inside a
// word are kept so contractions stay whole.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func isNegator(w string) bool {
	return negators[w] || strings.HasSuffix(w, "n't")
}

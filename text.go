package newslens

import (
	"math"
	"unicode/utf8"
)

// Window returns the first n characters of text.
// Characters are runes, so multi-byte text is never split mid-character.
func Window(text string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	i := 0
	for pos := range text {
		if i == n {
			return text[:pos]
		}
		i++
	}
	return text
}

// RoundConfidence rounds a model score to two decimals and clamps it to [0,1].
// Returns EINVALID for NaN or infinite scores.
func RoundConfidence(score float64) (float64, error) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, Errorf(EINVALID, "invalid confidence score %v", score)
	}
	rounded := math.Round(score*100) / 100
	return math.Min(math.Max(rounded, 0), 1), nil
}

package newslens

import (
	"encoding/json"
	"strings"
)

// NormalizeLabel upper-cases a model label and maps common synonyms onto
// LabelPositive, LabelNegative and LabelNeutral. Unknown labels return "".
func NormalizeLabel(label string) string {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "POSITIVE", "POS", "LABEL_1":
		return LabelPositive
	case "NEGATIVE", "NEG", "LABEL_0":
		return LabelNegative
	case "NEUTRAL", "NEU", "MIXED":
		return LabelNeutral
	}
	return ""
}

// ParseSentiment decodes a model response of the form
// {"label": "...", "score": 0.97}. Markdown code fences around the object
// are tolerated. Returns EINVALID for unknown labels or scores outside [0,1].
func ParseSentiment(raw string) (*Sentiment, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var s Sentiment
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &s); err != nil {
		return nil, Errorf(EINVALID, "malformed sentiment response: %v", err)
	}

	label := NormalizeLabel(s.Label)
	if label == "" {
		return nil, Errorf(EINVALID, "unknown sentiment label %q", s.Label)
	}
	if s.Score < 0 || s.Score > 1 {
		return nil, Errorf(EINVALID, "sentiment score %v out of range", s.Score)
	}

	return &Sentiment{Label: label, Score: s.Score}, nil
}

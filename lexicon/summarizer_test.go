package lexicon_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/newslens"
	"github.com/fwojciec/newslens/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultBounds = newslens.SummaryOptions{MinTokens: 25, MaxTokens: 60}

const article = `The city council approved the new transit budget on Monday evening after hours of debate. ` +
	`The transit budget adds bus routes to neighborhoods that lacked service for years. ` +
	`Several residents spoke in favor of the plan during the public comment period. ` +
	`Opponents argued that the transit budget would raise property taxes for homeowners. ` +
	`The mayor is expected to sign the budget later this week. ` +
	`Construction of new bus shelters will begin in the spring.`

func TestSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("respects length bounds", func(t *testing.T) {
		t.Parallel()

		summary, err := lexicon.NewSummarizer().Summarize(context.Background(), article, defaultBounds)

		require.NoError(t, err)
		tokens := len(strings.Fields(summary))
		assert.GreaterOrEqual(t, tokens, 25)
		assert.LessOrEqual(t, tokens, 60)
	})

	t.Run("keeps sentences in original order", func(t *testing.T) {
		t.Parallel()

		summary, err := lexicon.NewSummarizer().Summarize(context.Background(), article, defaultBounds)
		require.NoError(t, err)

		last := -1
		for _, sent := range strings.SplitAfter(summary, ". ") {
			idx := strings.Index(article, strings.TrimSpace(sent))
			require.GreaterOrEqual(t, idx, 0, "summary sentence %q not found in article", sent)
			assert.Greater(t, idx, last)
			last = idx
		}
	})

	t.Run("prefers sentences with frequent content words", func(t *testing.T) {
		t.Parallel()

		summary, err := lexicon.NewSummarizer().Summarize(context.Background(), article, defaultBounds)

		require.NoError(t, err)
		assert.Contains(t, summary, "transit budget")
	})

	t.Run("returns short text whole", func(t *testing.T) {
		t.Parallel()

		summary, err := lexicon.NewSummarizer().Summarize(context.Background(), "Short   text here.", defaultBounds)

		require.NoError(t, err)
		assert.Equal(t, "Short text here.", summary)
	})

	t.Run("truncates a single overlong sentence to the maximum", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("word ", 100) + "end."

		summary, err := lexicon.NewSummarizer().Summarize(context.Background(), text, defaultBounds)

		require.NoError(t, err)
		assert.Len(t, strings.Fields(summary), 60)
	})

	t.Run("splits sentences ending inside quotes", func(t *testing.T) {
		t.Parallel()

		text := `He said "we are done." Then he left the room quietly.`

		summary, err := lexicon.NewSummarizer().Summarize(context.Background(), text, newslens.SummaryOptions{MinTokens: 1, MaxTokens: 5})

		require.NoError(t, err)
		assert.Equal(t, `He said "we are done."`, summary)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		_, err := lexicon.NewSummarizer().Summarize(context.Background(), "   ", defaultBounds)

		require.Error(t, err)
		assert.Equal(t, newslens.EINVALID, newslens.ErrorCode(err))
	})

	t.Run("rejects inverted bounds", func(t *testing.T) {
		t.Parallel()

		_, err := lexicon.NewSummarizer().Summarize(context.Background(), article, newslens.SummaryOptions{MinTokens: 60, MaxTokens: 25})

		require.Error(t, err)
		assert.Equal(t, newslens.EINVALID, newslens.ErrorCode(err))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		s := lexicon.NewSummarizer()

		first, err := s.Summarize(context.Background(), article, defaultBounds)
		require.NoError(t, err)
		second, err := s.Summarize(context.Background(), article, defaultBounds)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestProvider_LoadModels(t *testing.T) {
	t.Parallel()

	p := lexicon.NewProvider()

	models, err := p.LoadModels(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, models.Analyzer)
	assert.NotNil(t, models.Summarizer)
	assert.Equal(t, "lexicon", p.Name())
}

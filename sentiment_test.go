package newslens_test

import (
	"testing"

	"github.com/fwojciec/newslens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, newslens.LabelPositive, newslens.NormalizeLabel("positive"))
	assert.Equal(t, newslens.LabelNegative, newslens.NormalizeLabel(" Negative "))
	assert.Equal(t, newslens.LabelNeutral, newslens.NormalizeLabel("mixed"))
	assert.Empty(t, newslens.NormalizeLabel("happy"))
}

func TestParseSentiment(t *testing.T) {
	t.Parallel()

	t.Run("parses label and score", func(t *testing.T) {
		t.Parallel()

		s, err := newslens.ParseSentiment(`{"label":"positive","score":0.9731}`)

		require.NoError(t, err)
		assert.Equal(t, newslens.LabelPositive, s.Label)
		assert.InDelta(t, 0.9731, s.Score, 1e-9)
	})

	t.Run("tolerates code fences", func(t *testing.T) {
		t.Parallel()

		s, err := newslens.ParseSentiment("```json\n{\"label\":\"NEGATIVE\",\"score\":0.6}\n```")

		require.NoError(t, err)
		assert.Equal(t, newslens.LabelNegative, s.Label)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := newslens.ParseSentiment("positive, 0.9")

		require.Error(t, err)
		assert.Equal(t, newslens.EINVALID, newslens.ErrorCode(err))
	})

	t.Run("rejects unknown label", func(t *testing.T) {
		t.Parallel()

		_, err := newslens.ParseSentiment(`{"label":"ecstatic","score":0.9}`)

		require.Error(t, err)
		assert.Contains(t, newslens.ErrorMessage(err), "ecstatic")
	})

	t.Run("rejects score outside the unit interval", func(t *testing.T) {
		t.Parallel()

		_, err := newslens.ParseSentiment(`{"label":"POSITIVE","score":1.5}`)

		require.Error(t, err)
		assert.Equal(t, newslens.EINVALID, newslens.ErrorCode(err))
	})
}

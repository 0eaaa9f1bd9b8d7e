package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/newslens"
	"github.com/fwojciec/newslens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelProvider_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ newslens.ModelProvider = &mock.ModelProvider{}
}

func TestModelProvider_LoadModels(t *testing.T) {
	t.Parallel()

	t.Run("delegates to LoadModelsFn", func(t *testing.T) {
		t.Parallel()

		analyzer := &mock.Analyzer{
			ClassifyFn: func(context.Context, string) (*newslens.Sentiment, error) {
				return &newslens.Sentiment{Label: newslens.LabelPositive, Score: 0.9}, nil
			},
		}
		p := &mock.ModelProvider{
			LoadModelsFn: func(context.Context) (*newslens.Models, error) {
				return &newslens.Models{Analyzer: analyzer}, nil
			},
		}

		models, err := p.LoadModels(context.Background())

		require.NoError(t, err)
		got, err := models.Analyzer.Classify(context.Background(), "text")
		require.NoError(t, err)
		assert.Equal(t, newslens.LabelPositive, got.Label)
	})

	t.Run("propagates error", func(t *testing.T) {
		t.Parallel()

		p := &mock.ModelProvider{
			LoadModelsFn: func(context.Context) (*newslens.Models, error) {
				return nil, newslens.Errorf(newslens.EUNAVAILABLE, "weights missing")
			},
		}

		_, err := p.LoadModels(context.Background())

		require.Error(t, err)
		assert.Equal(t, newslens.EUNAVAILABLE, newslens.ErrorCode(err))
	})
}

package mock

import (
	"context"

	"github.com/fwojciec/newslens"
)

var _ newslens.ModelProvider = (*ModelProvider)(nil)

// ModelProvider is a mock implementation of newslens.ModelProvider.
type ModelProvider struct {
	LoadModelsFn func(ctx context.Context) (*newslens.Models, error)
	NameFn       func() string
}

func (p *ModelProvider) LoadModels(ctx context.Context) (*newslens.Models, error) {
	return p.LoadModelsFn(ctx)
}

func (p *ModelProvider) Name() string {
	return p.NameFn()
}

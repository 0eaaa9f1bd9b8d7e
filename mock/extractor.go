package mock

import "github.com/fwojciec/newslens"

var _ newslens.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newslens.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*newslens.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*newslens.ExtractResult, error) {
	return e.ExtractFn(html)
}

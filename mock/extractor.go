package mock

import "github.com/fwojciec/headlines"

var _ headlines.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of headlines.Extractor.
type Extractor struct {
	ExtractFn func(pageURL, html string) (*headlines.ExtractResult, error)
}

func (e *Extractor) Extract(pageURL, html string) (*headlines.ExtractResult, error) {
	return e.ExtractFn(pageURL, html)
}

// Package goquery implements headline extraction on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/headlines"
)

// Ensure Extractor implements headlines.Extractor at compile time.
var _ headlines.Extractor = (*Extractor)(nil)

// Extractor runs an ordered fallback chain of strategies over a page.
// The first strategy that yields at least one candidate wins; its output is
// deduplicated and capped at the configured maximum.
type Extractor struct {
	config     headlines.ExtractConfig
	sites      *Registry
	strategies []Strategy
}

// NewExtractor creates an Extractor from cfg. Site-specific strategies are
// looked up in sites, which may be nil.
func NewExtractor(cfg headlines.ExtractConfig, sites *Registry) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	strategies, err := NewStrategies(cfg)
	if err != nil {
		return nil, err
	}

	return &Extractor{
		config:     cfg,
		sites:      sites,
		strategies: strategies,
	}, nil
}

// Extract returns the headlines of html. An empty page, or one where no
// strategy finds anything, yields an empty result and no error.
func (e *Extractor) Extract(pageURL, html string) (*headlines.ExtractResult, error) {
	result := &headlines.ExtractResult{}
	if strings.TrimSpace(html) == "" {
		return result, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, headlines.Errorf(headlines.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, s := range e.chain(pageURL) {
		candidates := s.Headlines(doc)
		if len(candidates) == 0 {
			continue
		}
		result.Headlines = headlines.Truncate(headlines.Dedupe(candidates), e.config.MaxHeadlines)
		result.Strategy = s.Name()
		break
	}

	return result, nil
}

// chain returns the strategies to try for pageURL, site-specific first.
func (e *Extractor) chain(pageURL string) []Strategy {
	if e.sites == nil {
		return e.strategies
	}
	site := e.sites.GetForURL(pageURL)
	if site == nil {
		return e.strategies
	}
	return append([]Strategy{site}, e.strategies...)
}

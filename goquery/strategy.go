package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/headlines"
)

// Strategy finds candidate headlines in a parsed document.
// Candidates are trimmed and in document order; deduplication and
// truncation happen later in the Extractor.
type Strategy interface {
	// Name returns the strategy's identifier (e.g., "article", "heading").
	Name() string

	// Headlines returns candidate headlines, or nil if the strategy finds none.
	Headlines(doc *goquery.Document) []string
}

var (
	articleMatcher        = cascadia.MustCompile("article")
	articleHeadingMatcher = cascadia.MustCompile("h1, h2, h3, h4")
	titleHeadingMatcher   = cascadia.MustCompile("h1, h2, h3")
	headingMatcher        = cascadia.MustCompile("h1, h2")
)

// appendText appends the trimmed text of each selected element that has
// more than minLength characters. A negative minLength only drops empty text.
func appendText(dst []string, sel *goquery.Selection, minLength int) []string {
	sel.Each(func(_ int, s *goquery.Selection) {
		text := headlines.Normalize(s.Text())
		if text == "" {
			return
		}
		if minLength >= 0 && !headlines.LongerThan(text, minLength) {
			return
		}
		dst = append(dst, text)
	})
	return dst
}

var _ Strategy = (*SiteStrategy)(nil)

// SiteStrategy selects headlines with a precise, site-specific selector.
// Its output is taken verbatim: only empty text is dropped.
type SiteStrategy struct {
	site    string
	matcher cascadia.Selector
}

// NewSiteStrategy compiles selector into a strategy for the named site.
func NewSiteStrategy(site, selector string) (*SiteStrategy, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, headlines.Errorf(headlines.EINVALID, "invalid selector %q for %s: %v", selector, site, err)
	}
	return &SiteStrategy{site: site, matcher: matcher}, nil
}

// NewHackerNewsStrategy returns the strategy for news.ycombinator.com,
// where every story title is a link inside a .titleline span.
func NewHackerNewsStrategy() *SiteStrategy {
	s, err := NewSiteStrategy("hackernews", ".titleline > a")
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns "site:" followed by the site name.
func (s *SiteStrategy) Name() string {
	return headlines.StrategySite + ":" + s.site
}

// Headlines returns the trimmed text of every element matching the site selector.
func (s *SiteStrategy) Headlines(doc *goquery.Document) []string {
	return appendText(nil, doc.FindMatcher(s.matcher), -1)
}

var _ Strategy = (*ArticleHeadingStrategy)(nil)

// ArticleHeadingStrategy collects h1-h4 headings nested in <article> elements.
type ArticleHeadingStrategy struct {
	minLength int
}

// NewArticleHeadingStrategy creates a new ArticleHeadingStrategy.
func NewArticleHeadingStrategy(minLength int) *ArticleHeadingStrategy {
	return &ArticleHeadingStrategy{minLength: minLength}
}

// Name returns the strategy's identifier.
func (s *ArticleHeadingStrategy) Name() string {
	return headlines.StrategyArticle
}

// Headlines walks articles in document order and, within each, its headings.
// Headings in nested articles are reported once per enclosing article.
func (s *ArticleHeadingStrategy) Headlines(doc *goquery.Document) []string {
	var out []string
	doc.FindMatcher(articleMatcher).Each(func(_ int, article *goquery.Selection) {
		out = appendText(out, article.FindMatcher(articleHeadingMatcher), s.minLength)
	})
	return out
}

var _ Strategy = (*ClassNameStrategy)(nil)

// ClassNameStrategy collects elements carrying common headline class names.
// Class names are probed in order; all matches of the first class come
// before any match of the second.
type ClassNameStrategy struct {
	matchers  []cascadia.Selector
	minLength int
}

// NewClassNameStrategy compiles a class selector for each name.
func NewClassNameStrategy(classNames []string, minLength int) (*ClassNameStrategy, error) {
	matchers := make([]cascadia.Selector, 0, len(classNames))
	for _, name := range classNames {
		m, err := cascadia.Compile("." + name)
		if err != nil {
			return nil, headlines.Errorf(headlines.EINVALID, "invalid class name %q: %v", name, err)
		}
		matchers = append(matchers, m)
	}
	return &ClassNameStrategy{matchers: matchers, minLength: minLength}, nil
}

// Name returns the strategy's identifier.
func (s *ClassNameStrategy) Name() string {
	return headlines.StrategyClassName
}

// Headlines returns matches grouped by class name in configured order.
func (s *ClassNameStrategy) Headlines(doc *goquery.Document) []string {
	var out []string
	for _, m := range s.matchers {
		out = appendText(out, doc.FindMatcher(m), s.minLength)
	}
	return out
}

var _ Strategy = (*TitleClassHeadingStrategy)(nil)

// TitleClassHeadingStrategy collects h1-h3 headings whose class attribute
// has a token containing one of the title tokens, ignoring case.
type TitleClassHeadingStrategy struct {
	tokens    []string
	minLength int
}

// NewTitleClassHeadingStrategy creates a new TitleClassHeadingStrategy.
func NewTitleClassHeadingStrategy(tokens []string, minLength int) *TitleClassHeadingStrategy {
	lower := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		lower = append(lower, strings.ToLower(t))
	}
	return &TitleClassHeadingStrategy{tokens: lower, minLength: minLength}
}

// Name returns the strategy's identifier.
func (s *TitleClassHeadingStrategy) Name() string {
	return headlines.StrategyTitleHeading
}

// Headlines returns matching headings in document order.
func (s *TitleClassHeadingStrategy) Headlines(doc *goquery.Document) []string {
	headings := doc.FindMatcher(titleHeadingMatcher).FilterFunction(func(_ int, h *goquery.Selection) bool {
		class, _ := h.Attr("class")
		return s.hasTitleClass(class)
	})
	return appendText(nil, headings, s.minLength)
}

func (s *TitleClassHeadingStrategy) hasTitleClass(class string) bool {
	for _, c := range strings.Fields(class) {
		c = strings.ToLower(c)
		for _, token := range s.tokens {
			if strings.Contains(c, token) {
				return true
			}
		}
	}
	return false
}

var _ Strategy = (*HeadingStrategy)(nil)

// HeadingStrategy is the last resort: every h1 and h2 on the page.
type HeadingStrategy struct {
	minLength int
}

// NewHeadingStrategy creates a new HeadingStrategy.
func NewHeadingStrategy(minLength int) *HeadingStrategy {
	return &HeadingStrategy{minLength: minLength}
}

// Name returns the strategy's identifier.
func (s *HeadingStrategy) Name() string {
	return headlines.StrategyHeading
}

// Headlines returns all h1 and h2 text in document order.
func (s *HeadingStrategy) Headlines(doc *goquery.Document) []string {
	return appendText(nil, doc.FindMatcher(headingMatcher), s.minLength)
}

// NewStrategies returns the generic fallback chain for cfg, in priority order:
// article headings, class names, title-class headings, then bare headings.
func NewStrategies(cfg headlines.ExtractConfig) ([]Strategy, error) {
	classNames, err := NewClassNameStrategy(cfg.ClassNames, cfg.MinLength)
	if err != nil {
		return nil, err
	}
	return []Strategy{
		NewArticleHeadingStrategy(cfg.MinLength),
		classNames,
		NewTitleClassHeadingStrategy(cfg.TitleTokens, cfg.MinLength),
		NewHeadingStrategy(cfg.MinLength),
	}, nil
}

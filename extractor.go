package headlines

// DefaultMaxHeadlines caps the number of headlines kept from one page.
const DefaultMaxHeadlines = 30

// DefaultMinLength is the length a headline must exceed to pass the
// heuristic strategies' length filter.
const DefaultMinLength = 5

// DefaultClassNames are the CSS class names probed, in order, by the
// class-name strategy.
var DefaultClassNames = []string{
	"headline",
	"title",
	"article-title",
	"story-title",
	"entry-title",
	"post-title",
	"news-title",
}

// DefaultTitleTokens are the substrings looked for in heading class tokens.
var DefaultTitleTokens = []string{"title", "headline"}

// Strategy names reported in ExtractResult.
const (
	StrategySite         = "site"
	StrategyArticle      = "article"
	StrategyClassName    = "class-name"
	StrategyTitleHeading = "title-heading"
	StrategyHeading      = "heading"
)

// ExtractConfig holds the tunables of the extraction pipeline.
type ExtractConfig struct {
	// MaxHeadlines caps the result after deduplication.
	MaxHeadlines int

	// MinLength is exclusive: text must have more than MinLength characters.
	// The site-specific strategy ignores it.
	MinLength int

	// ClassNames are probed in order by the class-name strategy.
	ClassNames []string

	// TitleTokens are matched case-insensitively against heading class tokens.
	TitleTokens []string
}

// DefaultExtractConfig returns the configuration used by the CLI.
func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		MaxHeadlines: DefaultMaxHeadlines,
		MinLength:    DefaultMinLength,
		ClassNames:   append([]string(nil), DefaultClassNames...),
		TitleTokens:  append([]string(nil), DefaultTitleTokens...),
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c ExtractConfig) Validate() error {
	if c.MaxHeadlines <= 0 {
		return Errorf(EINVALID, "max headlines must be positive")
	}
	if c.MinLength < 0 {
		return Errorf(EINVALID, "min length must not be negative")
	}
	for _, name := range c.ClassNames {
		if name == "" {
			return Errorf(EINVALID, "class name must not be empty")
		}
	}
	return nil
}

// ExtractResult holds the headlines found on a page.
type ExtractResult struct {
	// Headlines are trimmed, deduplicated and capped, in document order.
	Headlines []string

	// Strategy names the strategy that produced the headlines.
	// Empty when nothing was found.
	Strategy string
}

// Extractor extracts headlines from HTML pages.
type Extractor interface {
	// Extract runs the strategy chain over html. The page URL selects a
	// site-specific strategy when one is registered for its host.
	// Finding nothing is not an error: the result is simply empty.
	Extract(pageURL, html string) (*ExtractResult, error)
}

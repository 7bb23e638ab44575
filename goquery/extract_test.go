package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements headlines.Extractor at compile time.
var _ headlines.Extractor = (*goquery.Extractor)(nil)

func newExtractor(t *testing.T) *goquery.Extractor {
	t.Helper()

	e, err := goquery.NewExtractor(headlines.DefaultExtractConfig(), goquery.NewDefaultRegistry())
	require.NoError(t, err)
	return e
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts trimmed article heading", func(t *testing.T) {
		t.Parallel()

		html := `<article><h2>  Storm Hits Coast  </h2></article>`

		result, err := newExtractor(t).Extract("https://example.com", html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Storm Hits Coast"}, result.Headlines)
		assert.Equal(t, headlines.StrategyArticle, result.Strategy)
	})

	t.Run("deduplicates identical headings", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article><h2>Breaking News Today</h2></article>
<article><h2>Breaking News Today</h2></article>
</body></html>`

		result, err := newExtractor(t).Extract("https://example.com", html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Breaking News Today"}, result.Headlines)
	})

	t.Run("caps last resort headings at thirty in document order", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<html><body>")
		for i := 1; i <= 40; i++ {
			fmt.Fprintf(&b, "<h1>Headline number %02d</h1>", i)
		}
		b.WriteString("</body></html>")

		result, err := newExtractor(t).Extract("https://example.com", b.String())

		require.NoError(t, err)
		require.Len(t, result.Headlines, 30)
		assert.Equal(t, "Headline number 01", result.Headlines[0])
		assert.Equal(t, "Headline number 30", result.Headlines[29])
		assert.Equal(t, headlines.StrategyHeading, result.Strategy)
	})

	t.Run("returns empty result for empty input", func(t *testing.T) {
		t.Parallel()

		result, err := newExtractor(t).Extract("", "")

		require.NoError(t, err)
		assert.Empty(t, result.Headlines)
		assert.Empty(t, result.Strategy)
	})

	t.Run("returns empty result when nothing matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Just a paragraph of text.</p><h3>Plain subheading</h3></body></html>`

		result, err := newExtractor(t).Extract("https://example.com", html)

		require.NoError(t, err)
		assert.Empty(t, result.Headlines)
	})

	t.Run("returns empty result when every candidate is too short", func(t *testing.T) {
		t.Parallel()

		html := `<article><h2>Short</h2></article><h1>Tiny</h1><div class="title">Hi</div>`

		result, err := newExtractor(t).Extract("https://example.com", html)

		require.NoError(t, err)
		assert.Empty(t, result.Headlines)
	})

	t.Run("site rule wins over every other strategy", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<table>
<tr class="athing"><td class="title"><span class="titleline"><a href="https://a.example">  Show HN: A tiny tool  </a> <span class="sitebit">(a.example)</span></span></td></tr>
<tr class="athing"><td class="title"><span class="titleline"><a href="item?id=2">Ask</a></span></td></tr>
</table>
<article><h2>Article Heading Here</h2></article>
<h1>Top Level Heading</h1>
</body></html>`

		result, err := newExtractor(t).Extract("https://news.ycombinator.com/", html)

		require.NoError(t, err)
		// Site output skips the length filter.
		assert.Equal(t, []string{"Show HN: A tiny tool", "Ask"}, result.Headlines)
		assert.Equal(t, "site:hackernews", result.Strategy)
	})

	t.Run("site rule does not apply to other hosts", func(t *testing.T) {
		t.Parallel()

		html := `<span class="titleline"><a href="#">Show HN: A tiny tool</a></span><article><h2>Article Heading Here</h2></article>`

		result, err := newExtractor(t).Extract("https://example.com/", html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Article Heading Here"}, result.Headlines)
	})

	t.Run("falls through when site rule finds nothing", func(t *testing.T) {
		t.Parallel()

		html := `<article><h2>Article Heading Here</h2></article>`

		result, err := newExtractor(t).Extract("https://news.ycombinator.com/", html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Article Heading Here"}, result.Headlines)
		assert.Equal(t, headlines.StrategyArticle, result.Strategy)
	})

	t.Run("skips short article headings and falls back to class names", func(t *testing.T) {
		t.Parallel()

		html := `<article><h2>Short</h2></article><div class="headline">Class Based Headline</div>`

		result, err := newExtractor(t).Extract("https://example.com", html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Class Based Headline"}, result.Headlines)
		assert.Equal(t, headlines.StrategyClassName, result.Strategy)
	})

	t.Run("keeps article headings above class names", func(t *testing.T) {
		t.Parallel()

		html := `<div class="headline">Class Based Headline</div><article><h3>Article Based Headline</h3></article>`

		result, err := newExtractor(t).Extract("https://example.com", html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Article Based Headline"}, result.Headlines)
	})

	t.Run("uses heading with title class before bare headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Site Name Banner</h1><h3 class="card Post-TITLE-main">Case Insensitive Match</h3>`

		result, err := newExtractor(t).Extract("https://example.com", html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Case Insensitive Match"}, result.Headlines)
		assert.Equal(t, headlines.StrategyTitleHeading, result.Strategy)
	})

	t.Run("joins nested text of a heading", func(t *testing.T) {
		t.Parallel()

		html := `<article><h2>Markets <em>rally</em> again</h2></article>`

		result, err := newExtractor(t).Extract("https://example.com", html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Markets rally again"}, result.Headlines)
	})

	t.Run("is a pure function of its input", func(t *testing.T) {
		t.Parallel()

		html := `<article><h2>First Story Title</h2><h3>Second Story Title</h3></article>`
		e := newExtractor(t)

		first, err := e.Extract("https://example.com", html)
		require.NoError(t, err)
		second, err := e.Extract("https://example.com", html)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("works without a site registry", func(t *testing.T) {
		t.Parallel()

		e, err := goquery.NewExtractor(headlines.DefaultExtractConfig(), nil)
		require.NoError(t, err)

		html := `<span class="titleline"><a href="#">Show HN: A tiny tool</a></span><h2>Fallback Heading</h2>`
		result, err := e.Extract("https://news.ycombinator.com/", html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Fallback Heading"}, result.Headlines)
	})
}

func TestExtractor_Config(t *testing.T) {
	t.Parallel()

	t.Run("honors custom max headlines", func(t *testing.T) {
		t.Parallel()

		cfg := headlines.DefaultExtractConfig()
		cfg.MaxHeadlines = 2
		e, err := goquery.NewExtractor(cfg, nil)
		require.NoError(t, err)

		result, err := e.Extract("", `<h1>Heading One</h1><h1>Heading Two</h1><h1>Heading Three</h1>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"Heading One", "Heading Two"}, result.Headlines)
	})

	t.Run("honors custom min length", func(t *testing.T) {
		t.Parallel()

		cfg := headlines.DefaultExtractConfig()
		cfg.MinLength = 0
		e, err := goquery.NewExtractor(cfg, nil)
		require.NoError(t, err)

		result, err := e.Extract("", `<h1>Hi</h1>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"Hi"}, result.Headlines)
	})

	t.Run("honors custom class names", func(t *testing.T) {
		t.Parallel()

		cfg := headlines.DefaultExtractConfig()
		cfg.ClassNames = []string{"teaser-heading"}
		e, err := goquery.NewExtractor(cfg, nil)
		require.NoError(t, err)

		result, err := e.Extract("", `<span class="title">Default Class Title</span><span class="teaser-heading">Custom Class Title</span>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"Custom Class Title"}, result.Headlines)
	})

	t.Run("rejects invalid class name", func(t *testing.T) {
		t.Parallel()

		cfg := headlines.DefaultExtractConfig()
		cfg.ClassNames = []string{"bad["}

		_, err := goquery.NewExtractor(cfg, nil)

		assert.Equal(t, headlines.EINVALID, headlines.ErrorCode(err))
	})

	t.Run("rejects non-positive max headlines", func(t *testing.T) {
		t.Parallel()

		cfg := headlines.DefaultExtractConfig()
		cfg.MaxHeadlines = 0

		_, err := goquery.NewExtractor(cfg, nil)

		assert.Equal(t, headlines.EINVALID, headlines.ErrorCode(err))
	})
}

func TestExtractor_Properties(t *testing.T) {
	t.Parallel()

	pages := []string{
		``,
		`<h1>Repeated Heading</h1><h1>Repeated Heading</h1><h2>Another Heading</h2>`,
		`<article><h1>Outer Article Head</h1><article><h2>Inner Article Head</h2></article></article>`,
		`<div class="title">Title Class Text</div><div class="title">Title Class Text</div><p class="news-title">News Title Text</p>`,
		`<h2 class="headline-x">Heading With Class</h2><h2 class="headline-x">short</h2>`,
		strings.Repeat(`<h2>Same Old Heading</h2><h1>Different Heading</h1>`, 50),
	}

	cfg := headlines.DefaultExtractConfig()
	cfg.MaxHeadlines = 3
	e, err := goquery.NewExtractor(cfg, goquery.NewDefaultRegistry())
	require.NoError(t, err)

	for i, page := range pages {
		page := page
		t.Run(fmt.Sprintf("page %d", i), func(t *testing.T) {
			t.Parallel()

			result, err := e.Extract("https://example.com", page)
			require.NoError(t, err)

			assert.LessOrEqual(t, len(result.Headlines), cfg.MaxHeadlines)
			seen := make(map[string]bool)
			for _, h := range result.Headlines {
				assert.False(t, seen[h], "duplicate headline %q", h)
				seen[h] = true
				assert.True(t, headlines.LongerThan(h, cfg.MinLength), "headline %q too short", h)
				assert.Equal(t, strings.TrimSpace(h), h)
			}
		})
	}
}

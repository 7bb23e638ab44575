package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *gq.Document {
	t.Helper()

	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestHackerNewsStrategy(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<table>
<tr><td><span class="titleline"><a href="https://a.example">First Story</a><span class="sitebit"><a href="from?site=a.example">a.example</a></span></span></td></tr>
<tr><td><span class="titleline"><a href="item?id=2">   </a></span></td></tr>
<tr><td><span class="titleline"><a href="item?id=3">Ask</a></span></td></tr>
</table>`)

	got := goquery.NewHackerNewsStrategy().Headlines(doc)

	// Only direct child links; empty text is dropped; short text is kept.
	assert.Equal(t, []string{"First Story", "Ask"}, got)
}

func TestArticleHeadingStrategy(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<h1>Outside Any Article</h1>
<article>
  <header><h1>Lead Article Heading</h1></header>
  <h4>Level Four Heading</h4>
  <h5>Level Five Heading</h5>
  <h2>Short</h2>
</article>
<article><h3>Second Article Heading</h3></article>`)

	got := goquery.NewArticleHeadingStrategy(headlines.DefaultMinLength).Headlines(doc)

	assert.Equal(t, []string{"Lead Article Heading", "Level Four Heading", "Second Article Heading"}, got)
}

func TestClassNameStrategy(t *testing.T) {
	t.Parallel()

	t.Run("groups matches by class name order", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div class="title">Title First In Doc</div>
<div class="post-title">Post Title In Doc</div>
<div class="headline">Headline Later In Doc</div>`)

		s, err := goquery.NewClassNameStrategy(headlines.DefaultClassNames, headlines.DefaultMinLength)
		require.NoError(t, err)

		got := s.Headlines(doc)

		assert.Equal(t, []string{"Headline Later In Doc", "Title First In Doc", "Post Title In Doc"}, got)
	})

	t.Run("element with two matching classes appears once per class", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<a class="title story-title">Doubly Classed Story</a>`)

		s, err := goquery.NewClassNameStrategy(headlines.DefaultClassNames, headlines.DefaultMinLength)
		require.NoError(t, err)

		got := s.Headlines(doc)

		assert.Equal(t, []string{"Doubly Classed Story", "Doubly Classed Story"}, got)
	})
}

func TestTitleClassHeadingStrategy(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<h1 class="PageTitle">Page Title Heading</h1>
<h2 class="section">Section Heading Here</h2>
<h3 class="x lead-headline">Lead Headline Heading</h3>
<h4 class="title">Too Deep Heading</h4>
<h2 class="title">Tiny</h2>`)

	got := goquery.NewTitleClassHeadingStrategy(headlines.DefaultTitleTokens, headlines.DefaultMinLength).Headlines(doc)

	assert.Equal(t, []string{"Page Title Heading", "Lead Headline Heading"}, got)
}

func TestHeadingStrategy(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<h2>Second Level First</h2><h3>Third Level Heading</h3><h1>First Level After</h1>`)

	got := goquery.NewHeadingStrategy(headlines.DefaultMinLength).Headlines(doc)

	assert.Equal(t, []string{"Second Level First", "First Level After"}, got)
}

func TestNewStrategies(t *testing.T) {
	t.Parallel()

	strategies, err := goquery.NewStrategies(headlines.DefaultExtractConfig())
	require.NoError(t, err)

	names := make([]string, 0, len(strategies))
	for _, s := range strategies {
		names = append(names, s.Name())
	}

	assert.Equal(t, []string{
		headlines.StrategyArticle,
		headlines.StrategyClassName,
		headlines.StrategyTitleHeading,
		headlines.StrategyHeading,
	}, names)
}

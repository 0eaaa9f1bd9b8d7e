// Package goquery implements newslens.Extractor on top of goquery CSS
// selection.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newslens"
)

// Ensure Extractor implements newslens.Extractor at compile time.
var _ newslens.Extractor = (*Extractor)(nil)

// Extractor pulls article text out of HTML using an ordered fallback of
// structural heuristics. The first heuristic yielding non-empty text wins:
//
//   - paragraphs: every <p> element
//   - articles: every <article> element
//   - content blocks: the first N <div> elements whose class attribute
//     contains "content", case-insensitively
//
// The class match is a plain substring test, so "no-content-warning" matches.
type Extractor struct {
	contentBlockLimit int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithContentBlockLimit sets how many content blocks the last heuristic joins.
// Defaults to newslens.ContentBlockLimit (5); non-positive values are ignored.
func WithContentBlockLimit(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.contentBlockLimit = n
		}
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		contentBlockLimit: newslens.ContentBlockLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses HTML and returns the article text along with the element
// counts of every heuristic. No match yields an empty Text and no error.
func (e *Extractor) Extract(rawHTML string) (*newslens.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, newslens.Errorf(newslens.EINVALID, "failed to parse HTML: %v", err)
	}

	paragraphs := doc.Find("p")
	articles := doc.Find("article")
	blocks := doc.Find("div[class]").FilterFunction(hasContentClass)

	result := &newslens.ExtractResult{
		HTMLSize:      len(rawHTML),
		Paragraphs:    paragraphs.Length(),
		Articles:      articles.Length(),
		ContentBlocks: blocks.Length(),
	}

	candidates := []struct {
		strategy newslens.Strategy
		sel      *goquery.Selection
	}{
		{newslens.StrategyParagraphs, paragraphs},
		{newslens.StrategyArticles, articles},
		{newslens.StrategyContentBlock, blocks.Slice(0, min(e.contentBlockLimit, blocks.Length()))},
	}

	for _, c := range candidates {
		if c.sel.Length() == 0 {
			continue
		}
		if text := joinText(c.sel); text != "" {
			result.Text = text
			result.Strategy = c.strategy
			return result, nil
		}
	}

	return result, nil
}

// hasContentClass reports whether the element's class attribute contains
// "content" in any letter case.
func hasContentClass(_ int, sel *goquery.Selection) bool {
	class, _ := sel.Attr("class")
	return strings.Contains(strings.ToLower(class), "content")
}

// joinText joins the text of every element with single spaces and trims the
// result. Whitespace inside an element is preserved.
func joinText(sel *goquery.Selection) string {
	texts := sel.Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	return strings.TrimSpace(strings.Join(texts, " "))
}

// Package goquery provides a CSS-based implementation of
// harvest.ContentSelector for deployments that know exactly which page
// region holds their records.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/harvestkit/harvest"
)

// Ensure Selector implements harvest.ContentSelector at compile time.
var _ harvest.ContentSelector = (*Selector)(nil)

// Selector narrows a page to the fragments matching a CSS selector,
// e.g. "article, .story, .news-item". Matches are concatenated in
// document order.
type Selector struct {
	selector string
}

// NewSelector creates a Selector for the given CSS selector.
func NewSelector(selector string) *Selector {
	return &Selector{selector: selector}
}

// Select returns the HTML of all matching fragments. No matches yield an
// empty result, not an error — a listing page without record containers is
// an expected condition for the pipeline, not a malfunction.
func (s *Selector) Select(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", harvest.Errorf(harvest.EINVALID, "empty HTML input")
	}
	if s.selector == "" {
		return "", harvest.Errorf(harvest.EINVALID, "CSS selector required")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", harvest.Errorf(harvest.EINVALID, "failed to parse HTML: %v", err)
	}

	var b strings.Builder
	var outerErr error
	doc.Find(s.selector).Each(func(_ int, sel *goquery.Selection) {
		fragment, err := goquery.OuterHtml(sel)
		if err != nil {
			outerErr = err
			return
		}
		b.WriteString(fragment)
		b.WriteString("\n")
	})
	if outerErr != nil {
		return "", outerErr
	}

	return b.String(), nil
}

// Package trafilatura provides a main-content implementation of
// harvest.ContentSelector for deployments that have no CSS selector
// configured. It removes boilerplate (nav, footer, sidebar, ads) and
// keeps the content region.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/harvestkit/harvest"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Selector implements harvest.ContentSelector at compile time.
var _ harvest.ContentSelector = (*Selector)(nil)

// Selector wraps go-trafilatura to extract the main content from HTML.
type Selector struct{}

// NewSelector creates a new Selector.
func NewSelector() *Selector {
	return &Selector{}
}

// Select returns the main content region as HTML. A page where no content
// can be identified yields an empty result, not an error.
func (s *Selector) Select(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", harvest.Errorf(harvest.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}
	if result.ContentNode == nil {
		return "", nil
	}

	return renderNode(result.ContentNode)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

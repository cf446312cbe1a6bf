package mock

import "github.com/harvestkit/harvest"

var _ harvest.ContentSelector = (*ContentSelector)(nil)

// ContentSelector is a mock implementation of harvest.ContentSelector.
type ContentSelector struct {
	SelectFn func(html string) (string, error)
}

func (s *ContentSelector) Select(html string) (string, error) {
	return s.SelectFn(html)
}

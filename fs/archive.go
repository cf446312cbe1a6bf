// Package fs provides file-based capture of fetched pages.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harvestkit/harvest"
)

// Ensure ArchivingFetcher implements harvest.Fetcher at compile time.
var _ harvest.Fetcher = (*ArchivingFetcher)(nil)

// ArchivingFetcher wraps a Fetcher and saves the raw content of every
// successful fetch to a directory, numbered in fetch order. Pages are fetched
// strictly sequentially, so fetch order is page order.
type ArchivingFetcher struct {
	next harvest.Fetcher
	dir  string
	n    int
}

// NewArchivingFetcher creates a new ArchivingFetcher writing to dir.
func NewArchivingFetcher(next harvest.Fetcher, dir string) *ArchivingFetcher {
	return &ArchivingFetcher{next: next, dir: dir}
}

// Fetch delegates to the wrapped fetcher and archives the result.
func (f *ArchivingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return "", err
	}
	f.n++
	path := filepath.Join(f.dir, fmt.Sprintf("page-%03d.html", f.n))
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", err
	}

	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *ArchivingFetcher) Close() error {
	return f.next.Close()
}

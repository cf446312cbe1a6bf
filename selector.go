package harvest

// ContentSelector narrows a rendered page to the region that holds records.
// Implementations hide CSS selection vs automatic main-content extraction.
type ContentSelector interface {
	// Select returns the HTML of the matching region.
	// An empty result means the page carries no record content.
	Select(html string) (string, error)
}

package harvest

import "fmt"

// Profile is the per-deployment configuration of the pipeline: where to page,
// which region of the page holds records, how to recognize the end of the
// listing, and what shape the records take.
type Profile struct {
	Name string `json:"name"`

	// BaseURL is the listing URL without pagination parameters.
	BaseURL string `json:"baseUrl"`

	// Selector is the CSS selector for the page region that holds records.
	// When empty, main-content extraction is used instead.
	Selector string `json:"selector,omitempty"`

	// NoResultsMarker is the text that signals the end of pagination when it
	// appears in the unfiltered page content.
	NoResultsMarker string `json:"noResultsMarker"`

	// Instructions is free-form extraction guidance passed to the model.
	Instructions string `json:"instructions,omitempty"`

	Schema Schema `json:"schema"`
}

// Validate returns an error if the profile is not usable.
func (p *Profile) Validate() error {
	if p.BaseURL == "" {
		return Errorf(EINVALID, "profile base URL required")
	}
	return p.Schema.Validate()
}

// PageURL returns the URL for the given 1-based page number.
func (p *Profile) PageURL(page int) string {
	return fmt.Sprintf("%s?page=%d", p.BaseURL, page)
}

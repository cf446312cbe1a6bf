package harvest

import "context"

// ExtractionRequest carries the content and target shape for one extraction call.
type ExtractionRequest struct {
	// URL identifies the page the content came from. Informational only.
	URL string

	// Content is the page region as Markdown.
	Content string

	// Schema describes the fields each candidate record should carry.
	Schema Schema

	// Instructions is free-form guidance for the model.
	Instructions string
}

// Extractor turns page content into a raw candidate payload.
// Implementations hide the model call; the payload is expected to be a
// serialized JSON list of objects, parsed downstream by the page processor.
type Extractor interface {
	Extract(ctx context.Context, req ExtractionRequest) (payload string, err error)
}

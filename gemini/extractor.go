// Package gemini provides an LLM-based implementation of harvest.Extractor
// using Google Gemini in JSON response mode.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/harvestkit/harvest"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Extractor implements harvest.Extractor at compile time.
var _ harvest.Extractor = (*Extractor)(nil)

// Extractor implements harvest.Extractor using Google Gemini.
type Extractor struct {
	client *genai.Client
	model  string
}

// NewExtractor creates a new Extractor. An empty model selects DefaultModel.
func NewExtractor(client *genai.Client, model string) *Extractor {
	if model == "" {
		model = DefaultModel
	}
	return &Extractor{client: client, model: model}
}

// Extract asks the model for candidate records matching the request schema
// and returns the raw JSON payload text.
func (e *Extractor) Extract(ctx context.Context, req harvest.ExtractionRequest) (string, error) {
	if strings.TrimSpace(req.Content) == "" {
		return "", harvest.Errorf(harvest.EINVALID, "extraction content required")
	}
	if err := req.Schema.Validate(); err != nil {
		return "", err
	}

	prompt := BuildPrompt(req)
	config := BuildConfig()

	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", harvest.Errorf(harvest.EINTERNAL, "gemini returned nil result")
	}

	return StripFences(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for extraction calls.
// JSON response mode keeps the payload parseable without prose preambles.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You extract structured records from web page content. " +
					"Respond with a JSON array of objects, one per record, using exactly " +
					"the field names given. Use plain text values. Return an empty array " +
					"if the content contains no records.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildPrompt builds the user prompt: the field schema, the deployment's
// instructions, and the page content.
func BuildPrompt(req harvest.ExtractionRequest) string {
	var sb strings.Builder

	sb.WriteString("Extract every record from the page content below.\n\n")
	sb.WriteString("Each record has these fields:\n")
	for _, f := range req.Schema.Fields {
		if f.Description != "" {
			fmt.Fprintf(&sb, "- %s: %s\n", f.Name, f.Description)
		} else {
			fmt.Fprintf(&sb, "- %s\n", f.Name)
		}
	}

	if req.Instructions != "" {
		sb.WriteString("\nInstructions:\n")
		sb.WriteString(req.Instructions)
		sb.WriteString("\n")
	}

	sb.WriteString("\n<content>\n")
	sb.WriteString(req.Content)
	sb.WriteString("\n</content>\n")

	return sb.String()
}

// StripFences removes a Markdown code fence wrapping, which models sometimes
// emit around JSON despite the response MIME type.
func StripFences(payload string) string {
	trimmed := strings.TrimSpace(payload)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// Package harvest provides an incremental scraper for structured records
// on paginated sites. It walks a source page by page, hands rendered content
// to an LLM for schema-guided extraction, validates and deduplicates the
// candidates, and aggregates the survivors into a single ordered record set.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, gemini/, sqlite/).
package harvest

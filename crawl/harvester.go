// Package crawl provides the paginated extraction pipeline: the per-page
// processor and the pagination controller that owns the aggregate state.
package crawl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/harvestkit/harvest"
)

// Harvester drives a harvest run. Pages are processed strictly sequentially;
// the aggregate state (accepted records, seen index, page counter) is owned
// by Run and never shared with collaborators.
type Harvester struct {
	Fetcher   harvest.Fetcher
	Selector  harvest.ContentSelector
	Converter harvest.Converter
	Extractor harvest.Extractor
	Sink      harvest.RecordSink
	Seen      harvest.SeenIndex

	// Pacer enforces the inter-page politeness delay. It runs between
	// iterations only; termination skips it. May be nil.
	Pacer harvest.Pacer

	// Logger receives run progress and per-candidate discard detail.
	// May be nil.
	Logger *slog.Logger

	Profile harvest.Profile

	// MaxPages bounds the run when the source never signals an end.
	// Zero means unbounded.
	MaxPages int

	// ContinueOnEmpty makes a page with an empty extraction payload a
	// skip-and-continue instead of a run-ending condition.
	ContinueOnEmpty bool
}

// Result is the outcome of one run.
type Result struct {
	// Records is the final aggregate collection: page order, then
	// within-page extraction order.
	Records []*harvest.Record

	Pages      int
	Incomplete int
	Duplicates int
	StopReason harvest.StopReason
}

// pageResult is the outcome of processing a single page.
type pageResult struct {
	accepted   []*harvest.Record
	terminate  bool
	reason     harvest.StopReason
	incomplete int
	duplicates int
}

// Run executes the pagination loop: process pages starting at 1 until the
// source signals no more results, a fetch or parse failure occurs, or the
// page bound is reached. The final collection is handed to the sink only
// when non-empty.
func (h *Harvester) Run(ctx context.Context) (*Result, error) {
	if err := h.Profile.Validate(); err != nil {
		return nil, err
	}
	if h.Fetcher == nil || h.Selector == nil || h.Converter == nil || h.Extractor == nil {
		return nil, harvest.Errorf(harvest.EINVALID, "harvester requires fetcher, selector, converter, and extractor")
	}
	if h.Seen == nil {
		return nil, harvest.Errorf(harvest.EINVALID, "harvester requires a seen index")
	}

	var result Result
	for page := 1; ; page++ {
		if h.MaxPages > 0 && page > h.MaxPages {
			result.StopReason = harvest.StopMaxPages
			break
		}

		h.logger().Info("loading page", "page", page)
		pr := h.processPage(ctx, page)

		result.Pages++
		result.Records = append(result.Records, pr.accepted...)
		result.Incomplete += pr.incomplete
		result.Duplicates += pr.duplicates

		if pr.terminate {
			result.StopReason = pr.reason
			break
		}

		// Politeness pause before the next fetch attempt. Skipped on
		// termination because there is no next fetch.
		if h.Pacer != nil {
			if err := h.Pacer.Wait(ctx); err != nil {
				return nil, err
			}
		}
	}

	if len(result.Records) > 0 && h.Sink != nil {
		if err := h.Sink.WriteRecords(ctx, h.Profile.Schema, result.Records); err != nil {
			return nil, err
		}
	}

	h.logger().Info("run finished",
		"records", len(result.Records),
		"pages", result.Pages,
		"incomplete", result.Incomplete,
		"duplicates", result.Duplicates,
		"stop_reason", string(result.StopReason),
	)

	return &result, nil
}

// processPage fetches and processes a single page. Expected conditions
// (no-results marker, fetch failure, bad payload) never propagate as errors;
// they collapse to a terminate outcome distinguished by reason.
func (h *Harvester) processPage(ctx context.Context, page int) pageResult {
	url := h.Profile.PageURL(page)

	html, err := h.Fetcher.Fetch(ctx, url)
	if err != nil {
		h.logger().Error("fetch failed", "page", page, "url", url, "err", err)
		return pageResult{terminate: true, reason: harvest.StopFetchFailure}
	}

	// Cheap unfiltered probe: the marker is searched in the full rendered
	// content, before any content selection. When present, extraction is
	// never attempted for this page.
	if h.Profile.NoResultsMarker != "" && strings.Contains(html, h.Profile.NoResultsMarker) {
		h.logger().Info("no more results", "page", page)
		return pageResult{terminate: true, reason: harvest.StopNoResults}
	}

	content, err := h.Selector.Select(html)
	if err != nil {
		h.logger().Error("content selection failed", "page", page, "err", err)
		return pageResult{terminate: true, reason: harvest.StopFetchFailure}
	}
	if strings.TrimSpace(content) == "" {
		return h.emptyPage(page)
	}

	markdown, err := h.Converter.Convert(content)
	if err != nil {
		h.logger().Error("markdown conversion failed", "page", page, "err", err)
		return pageResult{terminate: true, reason: harvest.StopFetchFailure}
	}

	payload, err := h.Extractor.Extract(ctx, harvest.ExtractionRequest{
		URL:          url,
		Content:      markdown,
		Schema:       h.Profile.Schema,
		Instructions: h.Profile.Instructions,
	})
	if err != nil {
		h.logger().Error("extraction failed", "page", page, "url", url, "err", err)
		return pageResult{terminate: true, reason: harvest.StopFetchFailure}
	}

	candidates, err := ParseCandidates(payload)
	if err != nil {
		h.logger().Error("payload parse failed", "page", page, "err", err)
		return pageResult{terminate: true, reason: harvest.StopParseFailure}
	}
	if len(candidates) == 0 {
		return h.emptyPage(page)
	}

	var pr pageResult
	for _, c := range candidates {
		if !harvest.Complete(c, h.Profile.Schema.Required) {
			pr.incomplete++
			h.logger().Debug("incomplete candidate discarded", "page", page)
			continue
		}

		identity := c[h.Profile.Schema.Identity]
		if strings.TrimSpace(identity) == "" {
			pr.incomplete++
			h.logger().Debug("candidate without identity discarded", "page", page)
			continue
		}
		if h.Seen.Contains(identity) {
			pr.duplicates++
			h.logger().Debug("duplicate candidate discarded", "page", page, "identity", identity)
			continue
		}

		// The index is updated before the next candidate is inspected so
		// identical candidates within one page collapse to the first.
		h.Seen.Add(identity)
		pr.accepted = append(pr.accepted, harvest.NewRecord(h.Profile.Schema, c, page, len(pr.accepted)))
	}

	h.logger().Info("page processed",
		"page", page,
		"accepted", len(pr.accepted),
		"incomplete", pr.incomplete,
		"duplicates", pr.duplicates,
	)

	return pr
}

// emptyPage maps a page without candidate content to its configured outcome.
func (h *Harvester) emptyPage(page int) pageResult {
	if h.ContinueOnEmpty {
		h.logger().Info("no candidates on page, continuing", "page", page)
		return pageResult{}
	}
	h.logger().Info("no candidates on page, stopping", "page", page)
	return pageResult{terminate: true, reason: harvest.StopEmptyPayload}
}

func (h *Harvester) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/harvestkit/harvest"
)

// Ensure LoggingExtractor implements harvest.Extractor.
var _ harvest.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging of each
// extraction call.
type LoggingExtractor struct {
	next   harvest.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next harvest.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, req harvest.ExtractionRequest) (string, error) {
	begin := time.Now()
	payload, err := e.next.Extract(ctx, req)
	if err != nil {
		e.logger.Error("extract",
			"url", req.URL,
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}
	e.logger.Info("extract",
		"url", req.URL,
		"bytes", len(payload),
		"duration", time.Since(begin),
	)
	return payload, nil
}

package mock

import (
	"context"

	"github.com/harvestkit/harvest"
)

var _ harvest.RecordSink = (*RecordSink)(nil)

// RecordSink is a mock implementation of harvest.RecordSink.
type RecordSink struct {
	WriteRecordsFn func(ctx context.Context, schema harvest.Schema, records []*harvest.Record) error
}

func (s *RecordSink) WriteRecords(ctx context.Context, schema harvest.Schema, records []*harvest.Record) error {
	return s.WriteRecordsFn(ctx, schema, records)
}

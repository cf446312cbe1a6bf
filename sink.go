package harvest

import "context"

// RecordSink persists the final aggregated record set.
// The sink is never invoked with an empty record set.
type RecordSink interface {
	// WriteRecords writes the records in order, fields emitted in the
	// schema's declared order.
	WriteRecords(ctx context.Context, schema Schema, records []*Record) error
}

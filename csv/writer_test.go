package csv_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/harvestkit/harvest"
	harvestcsv "github.com/harvestkit/harvest/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Writer implements harvest.RecordSink at compile time.
var _ harvest.RecordSink = (*harvestcsv.Writer)(nil)

func testSchema() harvest.Schema {
	return harvest.Schema{
		Fields: []harvest.Field{
			{Name: "title"},
			{Name: "category"},
			{Name: "summary"},
		},
		Required: []string{"title", "summary"},
		Identity: "title",
	}
}

func testRecords(s harvest.Schema) []*harvest.Record {
	return []*harvest.Record{
		harvest.NewRecord(s, harvest.Candidate{
			"title":    "Campus Expands",
			"category": "Campus News",
			"summary":  "The campus grew.",
		}, 1, 0),
		harvest.NewRecord(s, harvest.Candidate{
			"title":   "Team Wins, \"Again\"",
			"summary": "A comma, and quotes.",
		}, 1, 1),
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	s := testSchema()

	var buf bytes.Buffer
	err := harvestcsv.Encode(&buf, s, testRecords(s))

	require.NoError(t, err)
	lines := buf.String()
	assert.Contains(t, lines, "title,category,summary\n")
	assert.Contains(t, lines, "Campus Expands,Campus News,The campus grew.\n")
	// Missing optional field emits an empty cell; quoting is handled by encoding/csv.
	assert.Contains(t, lines, "\"Team Wins, \"\"Again\"\"\",,\"A comma, and quotes.\"\n")
}

func TestWriter_WriteRecords(t *testing.T) {
	t.Parallel()

	s := testSchema()
	path := filepath.Join(t.TempDir(), "out", "records.csv")

	w := harvestcsv.NewWriter(path)
	err := w.WriteRecords(context.Background(), s, testRecords(s))

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Campus Expands")
}

func TestWriter_WriteRecords_ReplacesPreviousContent(t *testing.T) {
	t.Parallel()

	s := testSchema()
	path := filepath.Join(t.TempDir(), "records.csv")
	w := harvestcsv.NewWriter(path)

	require.NoError(t, w.WriteRecords(context.Background(), s, testRecords(s)))
	require.NoError(t, w.WriteRecords(context.Background(), s, testRecords(s)[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Team Wins")
}

func TestWriter_WriteRecords_RespectsContext(t *testing.T) {
	t.Parallel()

	s := testSchema()
	path := filepath.Join(t.TempDir(), "records.csv")
	w := harvestcsv.NewWriter(path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.WriteRecords(ctx, s, testRecords(s))

	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

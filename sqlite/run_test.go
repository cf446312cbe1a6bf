package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/harvestkit/harvest"
	"github.com/harvestkit/harvest/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testSchema() harvest.Schema {
	return harvest.Schema{
		Fields: []harvest.Field{
			{Name: "title"},
			{Name: "summary"},
		},
		Required: []string{"title", "summary"},
		Identity: "title",
	}
}

func testRun(started time.Time) *harvest.Run {
	return &harvest.Run{
		Profile:    "news",
		Schema:     testSchema(),
		StartedAt:  started,
		FinishedAt: started.Add(time.Minute),
		Pages:      2,
		Accepted:   2,
		Incomplete: 1,
		Duplicates: 1,
		StopReason: harvest.StopNoResults,
	}
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	svc := sqlite.NewRunService(db)
	ctx := context.Background()

	s := testSchema()
	records := []*harvest.Record{
		harvest.NewRecord(s, harvest.Candidate{"title": "A", "summary": "one"}, 1, 0),
		harvest.NewRecord(s, harvest.Candidate{"title": "B", "summary": "two"}, 2, 0),
	}
	run := testRun(time.Now())

	require.NoError(t, svc.CreateRun(ctx, run, records))

	assert.NotEmpty(t, run.ID)
	for _, rec := range records {
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, run.ID, rec.RunID)
		assert.NotEmpty(t, rec.ContentHash)
	}

	// Identical values hash identically; different values don't.
	same := harvest.NewRecord(s, harvest.Candidate{"title": "A", "summary": "one"}, 5, 3)
	other := []*harvest.Record{same}
	require.NoError(t, svc.CreateRun(ctx, testRun(time.Now()), other))
	assert.Equal(t, records[0].ContentHash, same.ContentHash)
	assert.NotEqual(t, records[0].ContentHash, records[1].ContentHash)
}

func TestRunService_CreateRun_ValidatesRun(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	svc := sqlite.NewRunService(db)

	run := testRun(time.Now())
	run.Profile = ""

	err := svc.CreateRun(context.Background(), run, nil)

	require.Error(t, err)
	assert.Equal(t, harvest.EINVALID, harvest.ErrorCode(err))
}

func TestRunService_FindRunByID(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	svc := sqlite.NewRunService(db)
	ctx := context.Background()

	run := testRun(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, svc.CreateRun(ctx, run, nil))

	got, err := svc.FindRunByID(ctx, run.ID)

	require.NoError(t, err)
	assert.Equal(t, "news", got.Profile)
	assert.Equal(t, run.Schema, got.Schema)
	assert.True(t, got.StartedAt.Equal(run.StartedAt))
	assert.Equal(t, harvest.StopNoResults, got.StopReason)
	assert.Equal(t, 2, got.Accepted)
}

func TestRunService_FindRunByID_NotFound(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	svc := sqlite.NewRunService(db)

	_, err := svc.FindRunByID(context.Background(), "nope")

	require.Error(t, err)
	assert.Equal(t, harvest.ENOTFOUND, harvest.ErrorCode(err))
}

func TestRunService_FindRuns_MostRecentFirst(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	svc := sqlite.NewRunService(db)
	ctx := context.Background()

	older := testRun(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := testRun(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, svc.CreateRun(ctx, older, nil))
	require.NoError(t, svc.CreateRun(ctx, newer, nil))

	runs, err := svc.FindRuns(ctx)

	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.ID, runs[0].ID)
	assert.Equal(t, older.ID, runs[1].ID)
}

func TestRunService_FindRecordsByRun(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	svc := sqlite.NewRunService(db)
	ctx := context.Background()

	s := testSchema()
	records := []*harvest.Record{
		harvest.NewRecord(s, harvest.Candidate{"title": "A", "summary": "s"}, 1, 0),
		harvest.NewRecord(s, harvest.Candidate{"title": "B", "summary": "s"}, 1, 1),
		harvest.NewRecord(s, harvest.Candidate{"title": "C", "summary": "s"}, 2, 0),
	}
	run := testRun(time.Now())
	require.NoError(t, svc.CreateRun(ctx, run, records))

	got, err := svc.FindRecordsByRun(ctx, run.ID)

	require.NoError(t, err)
	require.Len(t, got, 3)
	var titles []string
	for _, rec := range got {
		titles = append(titles, rec.Get("title"))
	}
	assert.Equal(t, []string{"A", "B", "C"}, titles)
}

func TestRunService_FindRecordsByRun_UnknownRun(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	svc := sqlite.NewRunService(db)

	_, err := svc.FindRecordsByRun(context.Background(), "nope")

	require.Error(t, err)
	assert.Equal(t, harvest.ENOTFOUND, harvest.ErrorCode(err))
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/harvestkit/harvest"
)

// Compile-time interface verification.
var _ harvest.RunService = (*RunService)(nil)

// RunService implements harvest.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// hashRecord computes a content hash over the record's values in schema
// field order, for change detection between runs of the same profile.
func hashRecord(s harvest.Schema, rec *harvest.Record) string {
	var sb strings.Builder
	for _, f := range s.Fields {
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		sb.WriteString(rec.Values[f.Name])
		sb.WriteByte('\n')
	}

	h := xxhash.Sum64String(sb.String())
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateRun stores a completed run together with its records.
func (s *RunService) CreateRun(ctx context.Context, run *harvest.Run, records []*harvest.Record) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()

	schemaJSON, err := json.Marshal(run.Schema)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, profile, schema, started_at, finished_at, pages, accepted, incomplete, duplicates, stop_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Profile, string(schemaJSON),
		run.StartedAt.UTC().Format(time.RFC3339Nano), run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.Pages, run.Accepted, run.Incomplete, run.Duplicates, string(run.StopReason))
	if err != nil {
		return err
	}

	for _, rec := range records {
		rec.ID = uuid.New().String()
		rec.RunID = run.ID
		rec.ContentHash = hashRecord(run.Schema, rec)

		fieldsJSON, err := json.Marshal(rec.Values)
		if err != nil {
			return err
		}

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO records (id, run_id, page, position, identity, content_hash, fields)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, rec.ID, rec.RunID, rec.Page, rec.Position, rec.Identity(run.Schema), rec.ContentHash, string(fieldsJSON))
		if err != nil {
			return err
		}
	}

	return nil
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*harvest.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, profile, schema, started_at, finished_at, pages, accepted, incomplete, duplicates, stop_reason
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, harvest.Errorf(harvest.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindRuns retrieves all stored runs, most recent first.
func (s *RunService) FindRuns(ctx context.Context) ([]*harvest.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, profile, schema, started_at, finished_at, pages, accepted, incomplete, duplicates, stop_reason
		FROM runs
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*harvest.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// FindRecordsByRun retrieves a run's records in acceptance order.
func (s *RunService) FindRecordsByRun(ctx context.Context, runID string) ([]*harvest.Record, error) {
	if _, err := s.FindRunByID(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, page, position, content_hash, fields
		FROM records
		WHERE run_id = ?
		ORDER BY page, position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*harvest.Record
	for rows.Next() {
		var rec harvest.Record
		var fieldsJSON string
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Page, &rec.Position, &rec.ContentHash, &fieldsJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(fieldsJSON), &rec.Values); err != nil {
			return nil, fmt.Errorf("failed to parse record fields: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for scanRun.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*harvest.Run, error) {
	var run harvest.Run
	var schemaJSON, startedAt, finishedAt, stopReason string

	err := row.Scan(&run.ID, &run.Profile, &schemaJSON, &startedAt, &finishedAt,
		&run.Pages, &run.Accepted, &run.Incomplete, &run.Duplicates, &stopReason)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(schemaJSON), &run.Schema); err != nil {
		return nil, fmt.Errorf("failed to parse run schema: %w", err)
	}
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return nil, fmt.Errorf("failed to parse started_at: %w", err)
	}
	if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt); err != nil {
		return nil, fmt.Errorf("failed to parse finished_at: %w", err)
	}
	run.StopReason = harvest.StopReason(stopReason)

	return &run, nil
}

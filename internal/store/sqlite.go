package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/nguyentantai21042004/soap-notes/internal/record"
)

// sqliteStore keeps records in a single table; rowid order is row order.
type sqliteStore struct {
	path string
}

const createTable = `CREATE TABLE IF NOT EXISTS media_records (
	file_name      TEXT PRIMARY KEY,
	duration_sec   INTEGER NOT NULL,
	generated_text TEXT NOT NULL,
	summary        TEXT NOT NULL,
	subjective     TEXT NOT NULL,
	objective      TEXT NOT NULL,
	assessment     TEXT NOT NULL,
	plan           TEXT NOT NULL
);`

const selectRecords = `SELECT file_name, duration_sec, generated_text, summary, subjective, objective, assessment, plan
	FROM media_records ORDER BY rowid`

const upsertRecord = `INSERT INTO media_records(file_name, duration_sec, generated_text, summary, subjective, objective, assessment, plan)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(file_name) DO UPDATE SET
		duration_sec=excluded.duration_sec,
		generated_text=excluded.generated_text,
		summary=excluded.summary,
		subjective=excluded.subjective,
		objective=excluded.objective,
		assessment=excluded.assessment,
		plan=excluded.plan`

func (s *sqliteStore) Path() string { return s.path }

// open connects to the store. Only the write path migrates; a read of a
// file without the table reports ErrCorrupt instead of creating it.
func (s *sqliteStore) open(migrate bool) (*sql.DB, error) {
	if migrate {
		if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if migrate {
		if _, err := db.Exec(createTable); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: migrate: %v", ErrCorrupt, err)
		}
	}
	return db, nil
}

func (s *sqliteStore) Load(ctx context.Context) ([]record.MediaRecord, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("stat store: %w", err)
	}

	db, err := s.open(false)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return loadRows(ctx, db)
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func loadRows(ctx context.Context, q queryer) ([]record.MediaRecord, error) {
	rows, err := q.QueryContext(ctx, selectRecords)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %v", ErrCorrupt, err)
	}
	defer rows.Close()

	var out []record.MediaRecord
	for rows.Next() {
		var r record.MediaRecord
		if err := rows.Scan(&r.FileName, &r.DurationSec, &r.GeneratedText, &r.Summary,
			&r.Subjective, &r.Objective, &r.Assessment, &r.Plan); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", ErrCorrupt, err)
		}
		if r.FileName == "" {
			return nil, fmt.Errorf("%w: row %d has an empty file name", ErrCorrupt, len(out)+1)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return out, nil
}

func (s *sqliteStore) Upsert(ctx context.Context, rec record.MediaRecord) (bool, error) {
	db, err := s.open(true)
	if err != nil {
		return false, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	existing, err := loadRows(ctx, tx)
	if err != nil {
		return false, err
	}
	_, replaced := merge(existing, rec)

	if _, err := tx.ExecContext(ctx, upsertRecord,
		rec.FileName, rec.DurationSec, rec.GeneratedText, rec.Summary,
		rec.Subjective, rec.Objective, rec.Assessment, rec.Plan); err != nil {
		return false, fmt.Errorf("upsert %s: %w", rec.FileName, err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return replaced, nil
}

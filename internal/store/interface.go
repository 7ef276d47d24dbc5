package store

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/soap-notes/internal/record"
)

// ErrCorrupt is returned when an existing store cannot be read or does not
// match the Media Record schema.
var ErrCorrupt = errors.New("record store is corrupt")

// ErrFieldTooLong is returned when a record field exceeds what the store
// can hold without truncation.
var ErrFieldTooLong = errors.New("record field too long for store")

// RecordStore persists Media Records keyed by file name.
// It does no cross-process locking; concurrent runs against one path must be
// serialized by the caller.
type RecordStore interface {
	// Load returns every stored record in row order. A missing store is empty.
	Load(ctx context.Context) ([]record.MediaRecord, error)
	// Upsert replaces the row with rec's file name or appends rec.
	// replaced reports which of the two happened.
	Upsert(ctx context.Context, rec record.MediaRecord) (replaced bool, err error)
	// Path is the file backing the store.
	Path() string
}

package store

import (
	"fmt"

	"github.com/nguyentantai21042004/soap-notes/internal/record"
)

// merge replaces the row sharing rec's file name in place, or appends rec.
func merge(rows []record.MediaRecord, rec record.MediaRecord) ([]record.MediaRecord, bool) {
	for i := range rows {
		if rows[i].FileName == rec.FileName {
			rows[i] = rec
			return rows, true
		}
	}
	return append(rows, rec), false
}

// checkUnique fails when two rows share a file name.
func checkUnique(rows []record.MediaRecord) error {
	seen := make(map[string]int, len(rows))
	for i, r := range rows {
		if prev, ok := seen[r.FileName]; ok {
			return fmt.Errorf("%w: duplicate file name %q in rows %d and %d", ErrCorrupt, r.FileName, prev+1, i+1)
		}
		seen[r.FileName] = i
	}
	return nil
}

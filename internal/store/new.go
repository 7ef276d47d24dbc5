package store

import "fmt"

const (
	DriverXLSX   = "xlsx"
	DriverSQLite = "sqlite"
)

// New creates a RecordStore for the given driver backed by path
func New(driver, path string) (RecordStore, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is required")
	}

	switch driver {
	case DriverXLSX, "":
		return &xlsxStore{path: path}, nil
	case DriverSQLite:
		return &sqliteStore{path: path}, nil
	default:
		return nil, fmt.Errorf("unknown store driver: %s", driver)
	}
}

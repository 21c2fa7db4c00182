package engine

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// DimColumn is a dictionary-encoded string column: every cell is an
// int32 ID into Dict. A nil IDs slice means the column is absent from
// the source file.
type DimColumn struct {
	IDs  []int32
	Dict []string
}

// Present reports whether the column exists in the loaded report.
func (d *DimColumn) Present() bool { return d.IDs != nil }

// Value returns the string value for row i, or "" when absent.
func (d *DimColumn) Value(i int) string {
	if d.IDs == nil {
		return ""
	}
	return d.Dict[d.IDs[i]]
}

// Dataset holds one loaded report in Struct-of-Arrays format.
// Raw rows are kept alongside the typed columns for the preview
// table and the export endpoint.
type Dataset struct {
	Headers []string
	Rows    [][]string

	Schema Schema

	// Typed columns, one entry per row.
	Dates   []int32   // YYYYMMDD, 0 = missing or unparseable
	Amounts []float64 // NaN = missing or unparseable
	Units   []int32   // 0 throughout when no quantity column resolved

	Category   DimColumn
	Status     DimColumn
	Fulfilment DimColumn
	Product    DimColumn
	City       DimColumn
}

// Len returns the number of rows after deduplication.
func (ds *Dataset) Len() int { return len(ds.Rows) }

// DateBounds returns the min and max non-missing dates, or (0, 0)
// when no date column resolved or every date is missing.
func (ds *Dataset) DateBounds() (lo, hi int32) {
	for _, d := range ds.Dates {
		if d == 0 {
			continue
		}
		if lo == 0 || d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}

// HasDates reports whether date filtering is applicable: a date column
// resolved and at least one cell parsed.
func (ds *Dataset) HasDates() bool {
	lo, _ := ds.DateBounds()
	return lo != 0
}

// Store memoizes Load keyed by the file's path and modification time.
// The report is read once per process start and re-read only when the
// file changes on disk; every request in between works against the
// cached Dataset.
type Store struct {
	path string

	mu      sync.Mutex
	modTime time.Time
	ds      *Dataset
	err     error
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Get returns the cached dataset, reloading when the source file's
// mtime has moved. A load failure is cached too, so a missing file
// does not trigger a re-read on every request.
func (s *Store) Get() (*Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, statErr := os.Stat(s.path)
	if statErr != nil {
		if s.ds != nil {
			// Keep serving the last good dataset if the file
			// vanished mid-process.
			return s.ds, nil
		}
		s.err = fmt.Errorf("%w: %v", ErrFileUnreadable, statErr)
		return nil, s.err
	}

	if st.ModTime().Equal(s.modTime) {
		if s.ds != nil {
			return s.ds, nil
		}
		if s.err != nil {
			return nil, s.err
		}
	}

	ds, err := Load(s.path)
	s.modTime = st.ModTime()
	s.ds, s.err = ds, err
	return ds, err
}

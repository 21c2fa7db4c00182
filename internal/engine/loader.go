package engine

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrFileUnreadable wraps any open/parse failure on the report.
	ErrFileUnreadable = errors.New("sale report missing or unreadable")
	// ErrNoAmountColumn means none of the accepted amount column
	// names appeared in the header. Nothing useful can be computed
	// without it, so the load halts.
	ErrNoAmountColumn = errors.New("no amount column found in report header")
)

// Accepted date layouts. Amazon exports use MM-DD-YY; the rest cover
// re-saved copies of the same report.
var dateLayouts = []string{
	"01-02-06",
	"2006-01-02",
	"01/02/2006",
	"2006-01-02 15:04:05",
}

// Load reads the report CSV at path into a Dataset: exact-duplicate
// rows dropped, dates and amounts coerced, dimension columns
// dictionary-encoded. Individual bad cells never fail the load; only
// an unreadable file or a missing amount column does.
func Load(path string) (*Dataset, error) {
	start := time.Now()
	log.Printf("loading report %q", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileUnreadable, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // report rows are ragged in the wild
	r.LazyQuotes = true

	headers, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileUnreadable, err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	schema := ResolveSchema(headers)
	if !schema.Amount.Resolved() {
		return nil, ErrNoAmountColumn
	}

	// Read + dedup in one pass. The key is the raw record joined on
	// a separator that cannot appear in a CSV field value.
	seen := make(map[string]struct{})
	var rows [][]string
	dropped := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFileUnreadable, err)
		}
		key := strings.Join(rec, "\x1f")
		if _, dup := seen[key]; dup {
			dropped++
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, rec)
	}

	ds := &Dataset{
		Headers: headers,
		Rows:    rows,
		Schema:  schema,
		Dates:   make([]int32, len(rows)),
		Amounts: make([]float64, len(rows)),
		Units:   make([]int32, len(rows)),
	}

	nan := math.NaN()
	for i, rec := range rows {
		if schema.Date.Resolved() {
			ds.Dates[i] = parseDate(cell(rec, schema.Date.Index))
		}
		ds.Amounts[i] = nan
		if v, ok := parseAmount(cell(rec, schema.Amount.Index)); ok {
			ds.Amounts[i] = v
		}
		if schema.Quantity.Resolved() {
			if n, err := strconv.Atoi(strings.TrimSpace(cell(rec, schema.Quantity.Index))); err == nil {
				ds.Units[i] = int32(n)
			}
		}
	}

	ds.Category = encodeDim(rows, schema.Category)
	ds.Status = encodeDim(rows, schema.Status)
	ds.Fulfilment = encodeDim(rows, schema.Fulfilment)
	ds.Product = encodeDim(rows, schema.Product)
	ds.City = encodeDim(rows, schema.City)

	log.Printf("load complete: %d rows (%d duplicates dropped) in %v",
		len(rows), dropped, time.Since(start))
	return ds, nil
}

// cell tolerates ragged rows: out-of-range columns read as empty.
func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// parseDate tries each accepted layout and returns the date as a
// YYYYMMDD int32, or 0 when nothing matches.
func parseDate(s string) int32 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return int32(t.Year()*10000 + int(t.Month())*100 + t.Day())
		}
	}
	return 0
}

// parseAmount coerces a report amount cell to a float. Thousands
// separators and currency markers are stripped first; anything still
// non-numeric is reported as missing.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(strings.TrimPrefix(s, "INR"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// encodeDim dictionary-encodes one string column: each distinct
// trimmed value gets an int32 ID, rows store IDs only. Absent column
// encodes to the zero DimColumn.
func encodeDim(rows [][]string, col Column) DimColumn {
	if !col.Resolved() {
		return DimColumn{}
	}
	d := DimColumn{IDs: make([]int32, len(rows))}
	index := make(map[string]int32)
	for i, rec := range rows {
		v := strings.TrimSpace(cell(rec, col.Index))
		id, ok := index[v]
		if !ok {
			id = int32(len(d.Dict))
			d.Dict = append(d.Dict, v)
			index[v] = id
		}
		d.IDs[i] = id
	}
	return d
}

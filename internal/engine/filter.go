package engine

import "strings"

// SelectAll is the sentinel option meaning "no restriction" on a
// dimension, matching the dashboard's default multi-select state.
const SelectAll = "All"

// Filter is one request's worth of sidebar selections. Dimensions are
// AND-combined; values within a dimension are OR-combined. A nil or
// empty value list leaves that dimension unrestricted, as does a list
// containing the SelectAll sentinel. From/To are inclusive YYYYMMDD
// bounds; 0 means unbounded on that side.
type Filter struct {
	From int32
	To   int32

	Categories  []string
	Statuses    []string
	Fulfilments []string
}

// IsEmpty reports whether the filter restricts nothing.
func (f Filter) IsEmpty() bool {
	return f.From == 0 && f.To == 0 &&
		idSet(nil, f.Categories) == nil &&
		idSet(nil, f.Statuses) == nil &&
		idSet(nil, f.Fulfilments) == nil
}

// Apply returns the indices of rows matching every active constraint,
// in dataset order. Filtering only ever narrows: the result is always
// a subset of 0..ds.Len()-1, and applying the same filter to its own
// output is a no-op.
func (f Filter) Apply(ds *Dataset) []int {
	if f.IsEmpty() {
		rows := make([]int, ds.Len())
		for i := range rows {
			rows[i] = i
		}
		return rows
	}

	// Selected values are translated to dictionary-ID sets up front
	// so the row loop compares int32s, not strings.
	catSet := idSet(ds.Category.Dict, f.Categories)
	statusSet := idSet(ds.Status.Dict, f.Statuses)
	fulSet := idSet(ds.Fulfilment.Dict, f.Fulfilments)

	// Date bounds apply only when a date column resolved and parsed;
	// otherwise the report is treated as undated.
	dateActive := (f.From != 0 || f.To != 0) && ds.HasDates()

	rows := make([]int, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		if dateActive {
			d := ds.Dates[i]
			if d == 0 {
				continue // missing date cannot satisfy a range
			}
			if f.From != 0 && d < f.From {
				continue
			}
			if f.To != 0 && d > f.To {
				continue
			}
		}
		if catSet != nil && (!ds.Category.Present() || !catSet[ds.Category.IDs[i]]) {
			continue
		}
		if statusSet != nil && (!ds.Status.Present() || !statusSet[ds.Status.IDs[i]]) {
			continue
		}
		if fulSet != nil && (!ds.Fulfilment.Present() || !fulSet[ds.Fulfilment.IDs[i]]) {
			continue
		}
		rows = append(rows, i)
	}
	return rows
}

// idSet maps the selected values onto dictionary IDs, case-insensitive
// and trimmed. Returns nil when the selection imposes no restriction
// (empty, or contains the SelectAll sentinel).
func idSet(dict []string, selected []string) map[int32]bool {
	wanted := make(map[string]bool, len(selected))
	for _, v := range selected {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if strings.EqualFold(v, SelectAll) {
			return nil
		}
		wanted[strings.ToLower(v)] = true
	}
	if len(wanted) == 0 {
		return nil
	}
	set := make(map[int32]bool)
	for id, v := range dict {
		if wanted[strings.ToLower(v)] {
			set[int32(id)] = true
		}
	}
	return set
}

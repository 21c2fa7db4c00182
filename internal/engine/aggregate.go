package engine

import (
	"fmt"
	"math"
	"sort"
)

// Top-N cutoffs for the chart tabs.
const (
	TopCategories = 12
	TopProducts   = 10
	TopCities     = 150
)

// GroupTotal is one bar/marker of a revenue breakdown.
type GroupTotal struct {
	Key     string  `json:"key"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// GroupRevenue sums the amount column per distinct value of dim over
// the filtered rows, sorted by revenue descending (key ascending on
// ties, for stable output), truncated to topN. topN <= 0 keeps all
// groups. Returns nil when the dimension column is absent.
func GroupRevenue(ds *Dataset, rows []int, dim *DimColumn, topN int) []GroupTotal {
	if !dim.Present() {
		return nil
	}

	// Accumulate into per-ID arrays: the dictionary IDs are dense,
	// so this is a plain index, no hashing in the hot loop.
	revenue := make([]float64, len(dim.Dict))
	orders := make([]int, len(dim.Dict))
	for _, i := range rows {
		id := dim.IDs[i]
		if v := ds.Amounts[i]; !math.IsNaN(v) {
			revenue[id] += v
		}
		orders[id]++
	}

	groups := make([]GroupTotal, 0, len(dim.Dict))
	for id, n := range orders {
		if n == 0 {
			continue
		}
		groups = append(groups, GroupTotal{
			Key:     dim.Dict[id],
			Revenue: revenue[id],
			Orders:  n,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Revenue != groups[j].Revenue {
			return groups[i].Revenue > groups[j].Revenue
		}
		return groups[i].Key < groups[j].Key
	})
	if topN > 0 && len(groups) > topN {
		groups = groups[:topN]
	}
	return groups
}

// DayTotal is one point of the daily revenue trend.
type DayTotal struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// DailyRevenue sums the amount column per calendar date, ascending.
// Rows with a missing date are left out. Returns nil when no date
// column resolved.
func DailyRevenue(ds *Dataset, rows []int) []DayTotal {
	if !ds.Schema.Date.Resolved() {
		return nil
	}

	revenue := make(map[int32]float64)
	orders := make(map[int32]int)
	for _, i := range rows {
		d := ds.Dates[i]
		if d == 0 {
			continue
		}
		if v := ds.Amounts[i]; !math.IsNaN(v) {
			revenue[d] += v
		}
		orders[d]++
	}

	dates := make([]int32, 0, len(orders))
	for d := range orders {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	out := make([]DayTotal, len(dates))
	for i, d := range dates {
		out[i] = DayTotal{
			Date:    formatYMD(d),
			Revenue: revenue[d],
			Orders:  orders[d],
		}
	}
	return out
}

func formatYMD(d int32) string {
	return fmt.Sprintf("%04d-%02d-%02d", d/10000, d/100%100, d%100)
}

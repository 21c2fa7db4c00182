package engine

import "math"

// Summary is the dashboard's KPI strip. Pointer fields are nil when
// the underlying value is undefined (empty selection or unresolved
// column) and render as a placeholder.
type Summary struct {
	TotalOrders   int      `json:"total_orders"`
	TotalRevenue  float64  `json:"total_revenue"`
	AvgOrderValue *float64 `json:"avg_order_value"`
	TotalUnits    *int64   `json:"total_units"`
}

// Summarize computes the four KPIs over the filtered row subset.
// Missing amount cells are skipped, not counted as zero, so the
// average matches a NaN-skipping mean.
func Summarize(ds *Dataset, rows []int) Summary {
	s := Summary{TotalOrders: len(rows)}

	var sum float64
	counted := 0
	for _, i := range rows {
		v := ds.Amounts[i]
		if math.IsNaN(v) {
			continue
		}
		sum += v
		counted++
	}
	s.TotalRevenue = sum
	if counted > 0 {
		avg := sum / float64(counted)
		s.AvgOrderValue = &avg
	}

	if ds.Schema.Quantity.Resolved() {
		var units int64
		for _, i := range rows {
			units += int64(ds.Units[i])
		}
		s.TotalUnits = &units
	}
	return s
}

package models

import (
	"github.com/pratikdevelop/amazon-sales-report-analysis-dashboard/internal/engine"
	"github.com/pratikdevelop/amazon-sales-report-analysis-dashboard/internal/geo"
)

// Options feeds the sidebar controls: distinct values per filter
// dimension plus the loaded date bounds.
type Options struct {
	DateMin     string   `json:"date_min,omitempty"`
	DateMax     string   `json:"date_max,omitempty"`
	Categories  []string `json:"categories"`
	Statuses    []string `json:"statuses"`
	Fulfilments []string `json:"fulfilments"`
}

// Chart is one breakdown tab. Unavailable marks a section whose
// backing column is absent from the report; the UI shows the reason
// instead of a chart.
type Chart struct {
	Title       string              `json:"title"`
	Unavailable bool                `json:"unavailable,omitempty"`
	Reason      string              `json:"reason,omitempty"`
	Groups      []engine.GroupTotal `json:"groups"`
}

// Series is the daily revenue trend tab.
type Series struct {
	Title       string            `json:"title"`
	Unavailable bool              `json:"unavailable,omitempty"`
	Reason      string            `json:"reason,omitempty"`
	Points      []engine.DayTotal `json:"points"`
}

// MapCity is one marker on the city revenue map.
type MapCity struct {
	City    string  `json:"city"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
	geo.Point
}

// CityMap is the scatter-map tab payload. Cities without a coordinate
// entry are excluded from markers but listed under Unmapped so the UI
// can fall back to a table when no marker resolved.
type CityMap struct {
	Unavailable bool                `json:"unavailable,omitempty"`
	Reason      string              `json:"reason,omitempty"`
	Cities      []MapCity           `json:"cities"`
	Unmapped    []engine.GroupTotal `json:"unmapped,omitempty"`
}

// Orders is the raw-data preview: filtered rows verbatim, capped.
type Orders struct {
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	Total     int        `json:"total"`
	Truncated bool       `json:"truncated"`
}

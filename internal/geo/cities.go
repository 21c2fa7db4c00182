// Package geo carries the static city coordinate table used by the
// revenue map. The report's ship-city values are free text, so lookup
// normalizes case and surrounding whitespace but nothing more; cities
// outside the table are simply unmapped.
package geo

import "strings"

// Point is a WGS 84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

var cities = map[string]Point{
	"BENGALURU": {12.9716, 77.5946},
	"HYDERABAD": {17.3850, 78.4867},
	"MUMBAI":    {19.0760, 72.8777},
	"NEW DELHI": {28.6139, 77.2090},
	"CHENNAI":   {13.0827, 80.2707},
	"PUNE":      {18.5204, 73.8567},
	"KOLKATA":   {22.5726, 88.3639},
	"AHMEDABAD": {23.0225, 72.5714},
	"SURAT":     {21.1702, 72.8311},
	"JAIPUR":    {26.9124, 75.7873},
	"LUCKNOW":   {26.8467, 80.9462},
	"KANPUR":    {26.4499, 80.3319},
	"NAGPUR":    {21.1458, 79.0882},
	"INDORE":    {22.7196, 75.8577},
	"BHOPAL":    {23.2599, 77.4126},
}

// Lookup resolves a city name to coordinates. Matching is exact after
// trimming whitespace and uppercasing, so "Mumbai " and "MUMBAI" hit
// the same entry.
func Lookup(name string) (Point, bool) {
	p, ok := cities[strings.ToUpper(strings.TrimSpace(name))]
	return p, ok
}

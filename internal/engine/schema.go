package engine

import "strings"

// Amazon seller exports are not consistent about column naming, so
// every role is resolved by first-match against a fixed candidate
// list. The lists mirror the names seen in real reports.
var (
	dateCandidates       = []string{"Date", "date"}
	amountCandidates     = []string{"Amount", "amount", "Sale Amount", "Order Value"}
	quantityCandidates   = []string{"Qty", "Quantity", "qty"}
	categoryCandidates   = []string{"Category"}
	statusCandidates     = []string{"Status"}
	fulfilmentCandidates = []string{"Fulfilment"}
	productCandidates    = []string{"SKU", "Style"}
	cityCandidates       = []string{"ship-city", "Ship City", "ship_city", "City", "city"}
)

// Column is one resolved role binding. Index is -1 when no candidate
// matched the header.
type Column struct {
	Index int
	Name  string
}

// Resolved reports whether the role was found in the header.
func (c Column) Resolved() bool { return c.Index >= 0 }

// Schema is the full set of role bindings for one loaded report.
// Only Amount is mandatory; everything else degrades to a skipped
// UI section when absent.
type Schema struct {
	Date       Column
	Amount     Column
	Quantity   Column
	Category   Column
	Status     Column
	Fulfilment Column
	Product    Column
	City       Column
}

// ResolveSchema binds each role to the first candidate present in the
// header. Matching is exact on the trimmed header cell; candidate
// order decides ties (e.g. SKU wins over Style).
func ResolveSchema(headers []string) Schema {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if _, seen := idx[h]; !seen {
			idx[h] = i
		}
	}

	resolve := func(candidates []string) Column {
		for _, name := range candidates {
			if i, ok := idx[name]; ok {
				return Column{Index: i, Name: name}
			}
		}
		return Column{Index: -1}
	}

	return Schema{
		Date:       resolve(dateCandidates),
		Amount:     resolve(amountCandidates),
		Quantity:   resolve(quantityCandidates),
		Category:   resolve(categoryCandidates),
		Status:     resolve(statusCandidates),
		Fulfilment: resolve(fulfilmentCandidates),
		Product:    resolve(productCandidates),
		City:       resolve(cityCandidates),
	}
}

package engine

import (
	"math"
	"testing"
)

// Hand-built four-row dataset:
//
//	row 0: Set,   2022-04-30, 100
//	row 1: Kurta, 2022-04-30, 200
//	row 2: Set,   2022-05-01, 300
//	row 3: Top,   missing,    missing amount
func aggFixture() *Dataset {
	return &Dataset{
		Rows: make([][]string, 4),
		Schema: Schema{
			Date:     Column{Index: 0, Name: "Date"},
			Amount:   Column{Index: 1, Name: "Amount"},
			Quantity: Column{Index: 2, Name: "Qty"},
		},
		Dates:   []int32{20220430, 20220430, 20220501, 0},
		Amounts: []float64{100, 200, 300, math.NaN()},
		Units:   []int32{1, 2, 1, 1},
		Category: DimColumn{
			IDs:  []int32{0, 1, 0, 2},
			Dict: []string{"Set", "Kurta", "Top"},
		},
	}
}

func allRows(ds *Dataset) []int {
	rows := make([]int, ds.Len())
	for i := range rows {
		rows[i] = i
	}
	return rows
}

func TestGroupRevenue(t *testing.T) {
	ds := aggFixture()
	groups := GroupRevenue(ds, allRows(ds), &ds.Category, 0)

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	// Sorted by revenue descending: Set 400, Kurta 200, Top 0.
	if groups[0].Key != "Set" || groups[0].Revenue != 400 || groups[0].Orders != 2 {
		t.Errorf("group 0: got %+v", groups[0])
	}
	if groups[1].Key != "Kurta" || groups[1].Revenue != 200 {
		t.Errorf("group 1: got %+v", groups[1])
	}
	// Missing amount contributes nothing to revenue but counts as an order.
	if groups[2].Key != "Top" || groups[2].Revenue != 0 || groups[2].Orders != 1 {
		t.Errorf("group 2: got %+v", groups[2])
	}
}

func TestGroupRevenueTopN(t *testing.T) {
	ds := aggFixture()
	groups := GroupRevenue(ds, allRows(ds), &ds.Category, 2)
	if len(groups) != 2 {
		t.Fatalf("top-2: expected 2 groups, got %d", len(groups))
	}
	if groups[0].Key != "Set" || groups[1].Key != "Kurta" {
		t.Errorf("top-2 order wrong: %+v", groups)
	}
}

func TestGroupRevenueAbsentDimension(t *testing.T) {
	ds := aggFixture()
	if groups := GroupRevenue(ds, allRows(ds), &ds.City, 0); groups != nil {
		t.Fatalf("absent dimension: expected nil, got %+v", groups)
	}
}

// Pre-truncation group revenue must add up to the filtered total.
func TestGroupRevenueConservation(t *testing.T) {
	ds := aggFixture()
	rows := allRows(ds)

	var grouped float64
	for _, g := range GroupRevenue(ds, rows, &ds.Category, 0) {
		grouped += g.Revenue
	}
	total := Summarize(ds, rows).TotalRevenue
	if math.Abs(grouped-total) > 1e-9 {
		t.Fatalf("group sum %f != total revenue %f", grouped, total)
	}
}

func TestDailyRevenue(t *testing.T) {
	ds := aggFixture()
	points := DailyRevenue(ds, allRows(ds))

	// Missing-date row dropped; days ascending.
	if len(points) != 2 {
		t.Fatalf("expected 2 days, got %d", len(points))
	}
	if points[0].Date != "2022-04-30" || points[0].Revenue != 300 || points[0].Orders != 2 {
		t.Errorf("day 0: got %+v", points[0])
	}
	if points[1].Date != "2022-05-01" || points[1].Revenue != 300 || points[1].Orders != 1 {
		t.Errorf("day 1: got %+v", points[1])
	}
}

func TestDailyRevenueNoDateColumn(t *testing.T) {
	ds := aggFixture()
	ds.Schema.Date = Column{Index: -1}
	if points := DailyRevenue(ds, allRows(ds)); points != nil {
		t.Fatalf("no date column: expected nil, got %+v", points)
	}
}

package engine

import "testing"

func TestResolveSchemaCandidates(t *testing.T) {
	cases := []struct {
		name    string
		headers []string
		pick    func(Schema) Column
		want    string
	}{
		{"amount exact", []string{"Date", "Amount"}, func(s Schema) Column { return s.Amount }, "Amount"},
		{"amount lowercase", []string{"amount"}, func(s Schema) Column { return s.Amount }, "amount"},
		{"amount sale amount", []string{"Sale Amount"}, func(s Schema) Column { return s.Amount }, "Sale Amount"},
		{"amount order value", []string{"Order Value"}, func(s Schema) Column { return s.Amount }, "Order Value"},
		{"qty", []string{"Quantity"}, func(s Schema) Column { return s.Quantity }, "Quantity"},
		{"sku beats style", []string{"Style", "SKU"}, func(s Schema) Column { return s.Product }, "SKU"},
		{"style fallback", []string{"Style"}, func(s Schema) Column { return s.Product }, "Style"},
		{"ship-city", []string{"ship-city"}, func(s Schema) Column { return s.City }, "ship-city"},
		{"plain city", []string{"City"}, func(s Schema) Column { return s.City }, "City"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			col := tc.pick(ResolveSchema(tc.headers))
			if !col.Resolved() {
				t.Fatalf("column not resolved from %v", tc.headers)
			}
			if col.Name != tc.want {
				t.Errorf("resolved %q, want %q", col.Name, tc.want)
			}
		})
	}
}

func TestResolveSchemaAbsent(t *testing.T) {
	s := ResolveSchema([]string{"Order ID", "Amount"})
	for name, col := range map[string]Column{
		"date":       s.Date,
		"quantity":   s.Quantity,
		"category":   s.Category,
		"status":     s.Status,
		"fulfilment": s.Fulfilment,
		"product":    s.Product,
		"city":       s.City,
	} {
		if col.Resolved() {
			t.Errorf("%s should be unresolved, got index %d", name, col.Index)
		}
	}
	if !s.Amount.Resolved() {
		t.Error("amount should resolve")
	}
}

func TestResolveSchemaFirstIndexWins(t *testing.T) {
	s := ResolveSchema([]string{"Amount", "Amount"})
	if s.Amount.Index != 0 {
		t.Errorf("duplicate header: expected index 0, got %d", s.Amount.Index)
	}
}

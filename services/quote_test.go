package services

import (
	"encoding/json"
	"strings"
	"testing"
)

func washer() Product {
	return Product{ID: "WN14800CN", Name: "iQ700 Washing Machine", Model: "WN14800CN", UnitPrice: 5299}
}

func dishwasher() Product {
	return Product{ID: "SN25M831TI", Name: "iQ500 Dishwasher", Model: "SN25M831TI", UnitPrice: 4899}
}

func TestAddQuoteItem(t *testing.T) {
	items := AddQuoteItem(nil, washer())
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("first add: got %+v", items)
	}

	items = AddQuoteItem(items, dishwasher())
	if len(items) != 2 {
		t.Fatalf("second product should append, got %d lines", len(items))
	}

	items = AddQuoteItem(items, washer())
	if len(items) != 2 {
		t.Fatalf("re-adding should not create a new line, got %d lines", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("re-adding should bump quantity, got %d", items[0].Quantity)
	}
}

// Quote items snapshot the product at add time; a later catalog edit
// must not reach the line.
func TestAddQuoteItem_Snapshot(t *testing.T) {
	p := washer()
	items := AddQuoteItem(nil, p)
	p.UnitPrice = 1
	p.Name = "changed"
	if items[0].UnitPrice != 5299 || items[0].Name != "iQ700 Washing Machine" {
		t.Errorf("line should keep the snapshot, got %+v", items[0])
	}
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name string
		qty  int
		want int
	}{
		{"normal", 3, 3},
		{"zero clamps to one", 0, 1},
		{"negative clamps to one", -5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := AddQuoteItem(nil, washer())
			items = SetQuantity(items, "WN14800CN", tt.qty)
			if items[0].Quantity != tt.want {
				t.Errorf("Quantity = %d, want %d", items[0].Quantity, tt.want)
			}
		})
	}
}

func TestSetQuotePrice(t *testing.T) {
	tests := []struct {
		name  string
		price *float64
		want  *float64
	}{
		{"override set", fptr(4999), fptr(4999)},
		{"nil clears", nil, nil},
		{"equal to unit price collapses", fptr(5299), nil},
		{"zero is a real override", fptr(0), fptr(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := AddQuoteItem(nil, washer())
			items = SetQuotePrice(items, "WN14800CN", tt.price)
			got := items[0].QuotePrice
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("QuotePrice = %v, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("QuotePrice = nil, want %v", *tt.want)
			case tt.want != nil && got != nil && *got != *tt.want:
				t.Errorf("QuotePrice = %v, want %v", *got, *tt.want)
			}
		})
	}
}

// A collapsed override must disappear from the serialized form, not
// just report the base price.
func TestSetQuotePrice_CollapsedOmittedFromJSON(t *testing.T) {
	items := AddQuoteItem(nil, washer())
	items = SetQuotePrice(items, "WN14800CN", fptr(5299))
	raw, err := json.Marshal(items[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "quotePrice") {
		t.Errorf("collapsed override should be omitted, got %s", raw)
	}
}

func TestRemoveQuoteItem(t *testing.T) {
	items := AddQuoteItem(nil, washer())
	items = AddQuoteItem(items, dishwasher())
	items = AddQuoteItem(items, Product{ID: "third", Name: "x", Model: "y", UnitPrice: 1})

	items = RemoveQuoteItem(items, "SN25M831TI")
	if len(items) != 2 {
		t.Fatalf("got %d lines, want 2", len(items))
	}
	if items[0].ID != "WN14800CN" || items[1].ID != "third" {
		t.Errorf("removal should preserve order, got %s, %s", items[0].ID, items[1].ID)
	}
}

func TestNormalizeOverrides(t *testing.T) {
	items := []QuoteItem{
		{Product: Product{ID: "a", UnitPrice: 100}, Quantity: 1, QuotePrice: fptr(100)},
		{Product: Product{ID: "b", UnitPrice: 100}, Quantity: 1, QuotePrice: fptr(90)},
	}
	items = NormalizeOverrides(items)
	if items[0].QuotePrice != nil {
		t.Error("override equal to unit price should collapse to nil")
	}
	if items[1].QuotePrice == nil || *items[1].QuotePrice != 90 {
		t.Error("real override should survive normalization")
	}
}

func TestClampStep(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1}, {-3, 1}, {1, 1}, {2, 2}, {4, 4}, {5, 4}, {99, 4},
	}
	for _, tt := range tests {
		if got := ClampStep(tt.in); got != tt.want {
			t.Errorf("ClampStep(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
